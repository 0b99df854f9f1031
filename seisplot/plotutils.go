package seisplot

//Some internal convenience functions.

import (
	"math"

	seis "github.com/goseis/goseis"
)

//byNetwork groups the station indexes of s by network code, keeping the
//networks in first-appearance order.
func byNetwork(s *seis.StationSet) ([]string, map[string][]int) {
	order := make([]string, 0, 4)
	idx := make(map[string][]int)
	for i, net := range s.Net {
		if _, ok := idx[net]; !ok {
			order = append(order, net)
		}
		idx[net] = append(idx[net], i)
	}
	return order, idx
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default: //case 5
		r = v
		g = p
		b = q
	}

	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

//colors spreads the steps networks over the hue circle, avoiding the yellows
//that wash out on white backgrounds.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	s := 1.0
	v := 1.0
	r, g, b = iHVS2RGB(h, v, s)
	return r, g, b
}

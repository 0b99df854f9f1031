/*
 * plot.go, part of goseis
 *
 * Copyright (c) 2024 The goSeis developers <goseis_dot_dev_at_tuta_dot_io>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package seisplot draws simple maps and profiles of receiver networks, on the
Gonum plot library. Nothing here is projection-aware: latitudes and
longitudes go on the axes as they are, which is fine for the quick looks
these plots are for.
*/
package seisplot

import (
	"fmt"
	"image/color"

	seis "github.com/goseis/goseis"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//basicMapPlot builds the frame every map here shares.
func basicMapPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Longitude (deg)"
	p.Y.Label.Text = "Latitude (deg)"
	p.Add(plotter.NewGrid())
	return p
}

// StationMap returns a longitude/latitude scatter of the receivers in s, one
// color per network, with the epicenter from ev overlaid as a red pyramid
// when ev is not nil. The caller decides what to do with the plot; Save
// covers the common case.
func StationMap(s *seis.StationSet, ev *seis.CMTSolution) (*plot.Plot, error) {
	if s == nil || s.Len() == 0 {
		return nil, Error{seis.ErrArgument, NoStations, []string{"StationMap"}}
	}
	p := basicMapPlot("Receiver network")
	nets, idx := byNetwork(s)
	for key, net := range nets {
		pts := make(plotter.XYs, len(idx[net]))
		for k, v := range idx[net] {
			pts[k].X = s.Lon[v]
			pts[k].Y = s.Lat[v]
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, Error{seis.ErrArgument, err.Error(), []string{"plotter.NewScatter", "StationMap"}}
		}
		r, g, b := colors(key, len(nets))
		sc.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		sc.GlyphStyle.Shape = draw.RingGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(net, sc)
	}
	if ev != nil {
		epi := plotter.XYs{{X: ev.Longitude, Y: ev.Latitude}}
		sc, err := plotter.NewScatter(epi)
		if err != nil {
			return nil, Error{seis.ErrArgument, err.Error(), []string{"plotter.NewScatter", "StationMap"}}
		}
		sc.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		sc.GlyphStyle.Shape = draw.PyramidGlyph{}
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
		p.Legend.Add("epicenter", sc)
	}
	return p, nil
}

// DistanceProfile returns a scatter of epicentral distance against burial
// depth for every receiver in s, which helps spotting stations that will sit
// in odd parts of the simulated wavefield.
func DistanceProfile(s *seis.StationSet, ev *seis.CMTSolution) (*plot.Plot, error) {
	if s == nil || s.Len() == 0 {
		return nil, Error{seis.ErrArgument, NoStations, []string{"DistanceProfile"}}
	}
	if ev == nil {
		return nil, Error{seis.ErrArgument, NoEvent, []string{"DistanceProfile"}}
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = "Epicentral distances"
	p.X.Label.Text = "Distance (km)"
	p.Y.Label.Text = "Burial (m)"
	p.Add(plotter.NewGrid())
	dists := s.Distances(ev.Latitude, ev.Longitude)
	pts := make(plotter.XYs, len(dists))
	for i, d := range dists {
		pts[i].X = d
		pts[i].Y = s.Bur[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, Error{seis.ErrArgument, err.Error(), []string{"plotter.NewScatter", "DistanceProfile"}}
	}
	sc.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)
	return p, nil
}

// Save writes the plot to the file called name, 14 cm a side. The format
// comes from the extension, with png, pdf, svg and the other formats the
// Gonum plot library handles.
func Save(p *plot.Plot, name string) error {
	if p == nil {
		return Error{seis.ErrArgument, "Given a nil plot", []string{"Save"}}
	}
	if err := p.Save(14*vg.Centimeter, 14*vg.Centimeter, name); err != nil {
		return Error{seis.ErrIO, fmt.Sprintf("can't save plot to %s: %s", name, err.Error()), []string{"plot.Plot.Save", "Save"}}
	}
	return nil
}

//Error is the concrete error type of this package. It fullfills seis.Error.
type Error struct {
	kind    seis.ErrKind
	message string
	deco    []string
}

func (err Error) Error() string {
	return "goSeis/seisplot: " + err.message
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Kind returns the class of the failure.
func (err Error) Kind() seis.ErrKind { return err.kind }

const (
	NoStations = "Given an empty or nil station set"
	NoEvent    = "Given a nil event"
)

/*
 * seis.go, part of goseis
 *
 *
 * Copyright (c) 2024 The goSeis developers <goseis_dot_dev_at_tuta_dot_io>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package seis

import (
	"fmt"
	"math"
)

// MomentTensor holds the six independent components of the symmetric seismic
// moment tensor, in dyne cm, in the spherical basis of the Harvard CMT
// convention: r is up (radial), t is south (theta) and p is east (phi).
// The components are kept in the canonical order rr, tt, pp, rt, rp, tp and
// the type is immutable once built.
type MomentTensor struct {
	mrr, mtt, mpp float64
	mrt, mrp, mtp float64
}

// NewMomentTensor builds a tensor from its six independent components, given
// in the canonical order rr, tt, pp, rt, rp, tp.
func NewMomentTensor(mrr, mtt, mpp, mrt, mrp, mtp float64) *MomentTensor {
	return &MomentTensor{mrr, mtt, mpp, mrt, mrp, mtp}
}

func (M *MomentTensor) Mrr() float64 { return M.mrr }
func (M *MomentTensor) Mtt() float64 { return M.mtt }
func (M *MomentTensor) Mpp() float64 { return M.mpp }
func (M *MomentTensor) Mrt() float64 { return M.mrt }
func (M *MomentTensor) Mrp() float64 { return M.mrp }
func (M *MomentTensor) Mtp() float64 { return M.mtp }

// Six returns the components as a newly allocated slice, in the canonical
// order rr, tt, pp, rt, rp, tp.
func (M *MomentTensor) Six() []float64 {
	return []float64{M.mrr, M.mtt, M.mpp, M.mrt, M.mrp, M.mtp}
}

func (M *MomentTensor) String() string {
	return fmt.Sprintf("Mrr: %v Mtt: %v Mpp: %v Mrt: %v Mrp: %v Mtp: %v",
		M.mrr, M.mtt, M.mpp, M.mrt, M.mrp, M.mtp)
}

// CMTSolution represents one seismic event the way a CMTSOLUTION file does:
// the hypocenter line from the originating catalog, kept verbatim, plus the
// source parameters the simulator actually reads.
type CMTSolution struct {
	Description  string //the first line of the file, verbatim
	EventName    string
	TimeShift    float64 //seconds
	HalfDuration float64 //seconds
	Latitude     float64 //degrees
	Longitude    float64 //degrees
	Depth        float64 //km
	MT           *MomentTensor
}

// Copy returns a new CMTSolution with the same contents as the receiver.
func (C *CMTSolution) Copy() *CMTSolution {
	ret := new(CMTSolution)
	*ret = *C
	if C.MT != nil {
		mt := *C.MT
		ret.MT = &mt
	}
	return ret
}

// Station is one row of a STATIONS file: a single receiver.
type Station struct {
	Station   string  `json:"station"`
	Network   string  `json:"network"`
	Latitude  float64 `json:"latitude"`  //degrees
	Longitude float64 `json:"longitude"` //degrees
	Elevation float64 `json:"elevation"` //m
	Burial    float64 `json:"burial"`    //m, 0 for receivers on the surface
}

// StationSet is a receiver network in column form: six parallel slices, one
// per STATIONS column. Codes that deal with whole networks at a time (which
// is what the simulator does) are better served by columns than by a slice
// of rows.
type StationSet struct {
	Sta  []string
	Net  []string
	Lat  []float64
	Lon  []float64
	Elev []float64
	Bur  []float64
}

// Len returns the number of stations in the set. It panics if the column
// slices differ in length, as such a set can only come from a programming
// error.
func (S *StationSet) Len() int {
	if !S.consistent() {
		panic(MismatchedCols)
	}
	return len(S.Sta)
}

//consistent reports whether the six column slices have all the same length.
func (S *StationSet) consistent() bool {
	n := len(S.Sta)
	return len(S.Net) == n && len(S.Lat) == n && len(S.Lon) == n &&
		len(S.Elev) == n && len(S.Bur) == n
}

// Station returns a copy of the i-th receiver as a row.
func (S *StationSet) Station(i int) *Station {
	return &Station{
		Station:   S.Sta[i],
		Network:   S.Net[i],
		Latitude:  S.Lat[i],
		Longitude: S.Lon[i],
		Elevation: S.Elev[i],
		Burial:    S.Bur[i],
	}
}

// Append adds the receiver st at the end of the set.
func (S *StationSet) Append(st *Station) {
	S.Sta = append(S.Sta, st.Station)
	S.Net = append(S.Net, st.Network)
	S.Lat = append(S.Lat, st.Latitude)
	S.Lon = append(S.Lon, st.Longitude)
	S.Elev = append(S.Elev, st.Elevation)
	S.Bur = append(S.Bur, st.Burial)
}

// Select returns a new set with the stations at the given indexes, in the
// given order. Indexes out of range are an error.
func (S *StationSet) Select(indexes []int) (*StationSet, error) {
	n := S.Len()
	ret := new(StationSet)
	for _, v := range indexes {
		if v < 0 || v >= n {
			return nil, SError{ErrArgument, fmt.Sprintf("index %d out of range for a %d-station set", v, n), "", 0, []string{"Select"}}
		}
		ret.Append(S.Station(v))
	}
	return ret, nil
}

// Distances returns the great-circle distance, in km, from the given point
// (typically the epicenter) to every station in the set, by the haversine
// formula on a spherical Earth.
func (S *StationSet) Distances(lat, lon float64) []float64 {
	const earthRadius = 6371.0 //km
	n := S.Len()
	ret := make([]float64, n)
	lat1 := lat * math.Pi / 180
	lon1 := lon * math.Pi / 180
	for i := 0; i < n; i++ {
		lat2 := S.Lat[i] * math.Pi / 180
		lon2 := S.Lon[i] * math.Pi / 180
		dLat := lat2 - lat1
		dLon := lon2 - lon1
		a := math.Sin(dLat/2)*math.Sin(dLat/2) +
			math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
		c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
		ret[i] = earthRadius * c
	}
	return ret
}

/*
 * gonum.go, part of goseis
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense returns the full symmetric 3x3 moment tensor as a gonum matrix,
// rows and columns in the r, t, p order.
func (M *MomentTensor) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		M.mrr, M.mrt, M.mrp,
		M.mrt, M.mtt, M.mtp,
		M.mrp, M.mtp, M.mpp,
	})
}

// SymDense returns the tensor as a gonum symmetric matrix, rows and columns
// in the r, t, p order.
func (M *MomentTensor) SymDense() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		M.mrr, M.mrt, M.mrp,
		M.mrt, M.mtt, M.mtp,
		M.mrp, M.mtp, M.mpp,
	})
}

// ScalarMoment returns the scalar seismic moment M0, in dyne cm, computed
// from the full tensor as its Frobenius norm over sqrt(2).
func (M *MomentTensor) ScalarMoment() float64 {
	return mat.Norm(M.Dense(), 2) / math.Sqrt2
}

// MomentMagnitude returns the moment magnitude Mw of the tensor, from the
// Hanks and Kanamori relation, with M0 in dyne cm.
func (M *MomentTensor) MomentMagnitude() float64 {
	return (2.0/3.0)*math.Log10(M.ScalarMoment()) - 10.7
}

// PrincipalAxes diagonalizes the tensor. It returns the three principal
// moments in ascending order, and the corresponding axes as the columns of
// a 3x3 matrix, in the same order.
func (M *MomentTensor) PrincipalAxes() ([]float64, *mat.Dense, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(M.SymDense(), true); !ok {
		return nil, nil, SError{ErrArgument, "eigendecomposition of the tensor failed", "", 0, []string{"PrincipalAxes"}}
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	return vals, &vecs, nil
}

// EstimatedHalfDuration returns the source half duration, in seconds,
// estimated from the scalar moment with the empirical scaling the
// simulator's CMT utilities use, hdur = 2.4e-6 * M0^(1/3).
func (C *CMTSolution) EstimatedHalfDuration() float64 {
	if C.MT == nil {
		return 0
	}
	return 2.4e-6 * math.Cbrt(C.MT.ScalarMoment())
}

// Coords returns an n x 2 matrix with one row per station, holding its
// latitude and longitude in degrees. An empty set returns nil.
func (S *StationSet) Coords() *mat.Dense {
	n := S.Len()
	if n == 0 {
		return nil
	}
	ret := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		ret.Set(i, 0, S.Lat[i])
		ret.Set(i, 1, S.Lon[i])
	}
	return ret
}

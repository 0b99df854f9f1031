/*
 * json.go, part of goseis
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

//JSON representations for the types whose fields are not exported, so events
//can be exchanged with earthquake feeds and other non-Go tooling.

package seis

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the tensor as a 6-element JSON array in the canonical
// order rr, tt, pp, rt, rp, tp.
func (M *MomentTensor) MarshalJSON() ([]byte, error) {
	return json.Marshal(M.Six())
}

// UnmarshalJSON reads back what MarshalJSON produces: exactly 6 numbers in
// the canonical order.
func (M *MomentTensor) UnmarshalJSON(b []byte) error {
	var six []float64
	if err := json.Unmarshal(b, &six); err != nil {
		return SError{ErrParse, err.Error(), "", 0, []string{"UnmarshalJSON"}}
	}
	if len(six) != 6 {
		return SError{ErrFormat, fmt.Sprintf("a JSON moment tensor takes exactly 6 components, got %d", len(six)), "", 0, []string{"UnmarshalJSON"}}
	}
	M.mrr, M.mtt, M.mpp = six[0], six[1], six[2]
	M.mrt, M.mrp, M.mtp = six[3], six[4], six[5]
	return nil
}

//jsonCMT mirrors CMTSolution with the field names earthquake feeds tend to
//use. The tensor keeps its array form.
type jsonCMT struct {
	Description  string        `json:"description"`
	EventName    string        `json:"event_name"`
	TimeShift    float64       `json:"time_shift"`
	HalfDuration float64       `json:"half_duration"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	Depth        float64       `json:"depth"`
	MT           *MomentTensor `json:"moment_tensor"`
}

// MarshalJSON encodes the event as a JSON object with snake_case field
// names and the tensor as a 6-element array.
func (C *CMTSolution) MarshalJSON() ([]byte, error) {
	j := jsonCMT{C.Description, C.EventName, C.TimeShift, C.HalfDuration,
		C.Latitude, C.Longitude, C.Depth, C.MT}
	return json.Marshal(&j)
}

// UnmarshalJSON reads back what MarshalJSON produces.
func (C *CMTSolution) UnmarshalJSON(b []byte) error {
	j := new(jsonCMT)
	if err := json.Unmarshal(b, j); err != nil {
		if _, ok := err.(Error); ok {
			return errDecorate(err, "UnmarshalJSON")
		}
		return SError{ErrParse, err.Error(), "", 0, []string{"UnmarshalJSON"}}
	}
	C.Description = j.Description
	C.EventName = j.EventName
	C.TimeShift = j.TimeShift
	C.HalfDuration = j.HalfDuration
	C.Latitude = j.Latitude
	C.Longitude = j.Longitude
	C.Depth = j.Depth
	C.MT = j.MT
	return nil
}

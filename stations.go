/*
 * stations.go, part of goseis
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//the 4 numeric STATIONS columns, in file order, for error reporting.
var stationCols = []string{"latitude", "longitude", "elevation", "burial"}

// StationsRead reads a receiver list from r, which must contain STATIONS
// formatted text: one station per line, at least 6 whitespace-separated
// columns in the order station code, network code, latitude, longitude,
// elevation and burial depth. Columns past the sixth are ignored, and so are
// blank lines. The read either fully succeeds or returns nil and an error.
func StationsRead(r io.Reader) (*StationSet, error) {
	buf := bufio.NewReader(r)
	ret := new(StationSet)
	lineno := 0
	for {
		line, rerr := buf.ReadString('\n')
		if line != "" {
			lineno++
			if err := stationParseLine(ret, line, lineno); err != nil {
				return nil, errDecorate(err, "StationsRead")
			}
		}
		if rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				return nil, SError{ErrIO, rerr.Error(), "", lineno, []string{"StationsRead"}}
			}
			break
		}
	}
	return ret, nil
}

//stationParseLine adds one STATIONS row to the set, or rejects it.
func stationParseLine(s *StationSet, line string, lineno int) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) < 6 {
		raw := strings.TrimRight(line, "\r\n")
		return SError{ErrFormat, fmt.Sprintf("%s: '%s'", TooFewColumns, raw), "", lineno, []string{"stationParseLine"}}
	}
	vals := make([]float64, 4)
	for i, v := range fields[2:6] {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return SError{ErrParse, fmt.Sprintf("can't read a number for %s from '%s'", stationCols[i], v), "", lineno, []string{"stationParseLine"}}
		}
		vals[i] = f
	}
	s.Sta = append(s.Sta, fields[0])
	s.Net = append(s.Net, fields[1])
	s.Lat = append(s.Lat, vals[0])
	s.Lon = append(s.Lon, vals[1])
	s.Elev = append(s.Elev, vals[2])
	s.Bur = append(s.Bur, vals[3])
	return nil
}

// StationsWrite writes the receiver set to w in STATIONS form, one station
// per line, columns separated by two spaces, numbers in Go's default
// representation. The six column slices must have the same length; if they
// don't, the error comes back before anything is written.
func StationsWrite(w io.Writer, s *StationSet) error {
	if s == nil {
		return SError{ErrArgument, NilData, "", 0, []string{"StationsWrite"}}
	}
	if !s.consistent() {
		return SError{ErrArgument, fmt.Sprintf("%s: %d %d %d %d %d %d", MismatchedCols,
			len(s.Sta), len(s.Net), len(s.Lat), len(s.Lon), len(s.Elev), len(s.Bur)), "", 0, []string{"StationsWrite"}}
	}
	str := ""
	for i := 0; i < len(s.Sta); i++ {
		str += fmt.Sprintf("%s  %s  %v  %v  %v  %v\n",
			s.Sta[i], s.Net[i], s.Lat[i], s.Lon[i], s.Elev[i], s.Bur[i])
	}
	if _, err := w.Write([]byte(str)); err != nil {
		return SError{ErrIO, err.Error(), "", 0, []string{"StationsWrite"}}
	}
	return nil
}

// StationsFileRead reads the STATIONS file called name, decompressing it
// first if the extension asks for that (see FileOpen).
func StationsFileRead(name string) (*StationSet, error) {
	r, err := FileOpen(name)
	if err != nil {
		return nil, errDecorate(err, "StationsFileRead")
	}
	defer r.Close()
	s, err := StationsRead(r)
	if err != nil {
		return nil, errDecorate(fileErr(err, name), "StationsFileRead")
	}
	return s, nil
}

// StationsFileWrite writes the receiver set to the file called name,
// compressing it if the extension asks for that (see FileCreate).
func StationsFileWrite(name string, s *StationSet) error {
	w, err := FileCreate(name)
	if err != nil {
		return errDecorate(err, "StationsFileWrite")
	}
	if err := StationsWrite(w, s); err != nil {
		w.Close()
		return errDecorate(fileErr(err, name), "StationsFileWrite")
	}
	return w.Close()
}

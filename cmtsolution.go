/*
 * cmtsolution.go, part of goseis
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

//The 12 labeled lines that follow the hypocenter line, in file order.
//Two-word labels carry their value on the third whitespace token, one-word
//labels on the second.
var cmtLabels = []string{"event name", "time shift", "half duration",
	"latitude", "longitude", "depth", "Mrr", "Mtt", "Mpp", "Mrt", "Mrp", "Mtp"}

const cmtLines = 13

//readLines collects up to want lines from buf, stripped of their line
//breaks. Getting fewer lines than want is a format error that reports how
//many were actually there.
func readLines(buf *bufio.Reader, want int) ([]string, error) {
	lines := make([]string, 0, want)
	for len(lines) < want {
		line, err := buf.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, SError{ErrIO, err.Error(), "", 0, []string{"readLines"}}
			}
			break
		}
	}
	if len(lines) < want {
		return nil, SError{ErrFormat, fmt.Sprintf("%s: found %d, need %d", TooFewLines, len(lines), want), "", 0, []string{"readLines"}}
	}
	return lines, nil
}

// CMTSolutionRead reads one event from r, which must contain CMTSOLUTION
// formatted text: the hypocenter line followed by the 12 labeled lines, in
// the fixed order event name, time shift, half duration, latitude,
// longitude, depth and the 6 moment tensor components rr, tt, pp, rt, rp,
// tp. Anything after the 13th line is ignored. The read either fully
// succeeds or returns nil and an error.
func CMTSolutionRead(r io.Reader) (*CMTSolution, error) {
	buf := bufio.NewReader(r)
	lines, err := readLines(buf, cmtLines)
	if err != nil {
		return nil, errDecorate(err, "CMTSolutionRead")
	}
	strvals := make([]string, 0, len(cmtLabels))
	for i, label := range cmtLabels {
		lineno := i + 2 //the first labeled line is the second of the file
		fields := strings.Fields(lines[i+1])
		pos := 1
		if strings.Contains(label, " ") {
			pos = 2
		}
		if len(fields) <= pos {
			return nil, SError{ErrFormat, fmt.Sprintf("%s: '%s'", TooFewColumns, lines[i+1]), "", lineno, []string{"CMTSolutionRead"}}
		}
		strvals = append(strvals, fields[pos])
	}
	vals := make([]float64, 0, len(strvals)-1)
	for i, v := range strvals[1:] { //all values but the event name are floats
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, SError{ErrParse, fmt.Sprintf("can't read a number for %s from '%s'", cmtLabels[i+1], v), "", i + 3, []string{"CMTSolutionRead"}}
		}
		vals = append(vals, f)
	}
	ret := new(CMTSolution)
	ret.Description = lines[0]
	ret.EventName = strvals[0]
	ret.TimeShift = vals[0]
	ret.HalfDuration = vals[1]
	ret.Latitude = vals[2]
	ret.Longitude = vals[3]
	ret.Depth = vals[4]
	ret.MT = NewMomentTensor(vals[5], vals[6], vals[7], vals[8], vals[9], vals[10])
	return ret, nil
}

// CMTSolutionWrite writes the event to w in the 13-line CMTSOLUTION layout.
// Labels sit left-aligned on a fixed-width field and numbers use Go's
// default representation, which reads back to the exact same value.
func CMTSolutionWrite(w io.Writer, c *CMTSolution) error {
	if c == nil || c.MT == nil {
		return SError{ErrArgument, NilData, "", 0, []string{"CMTSolutionWrite"}}
	}
	vals := []string{
		c.EventName,
		fmt.Sprintf("%v", c.TimeShift),
		fmt.Sprintf("%v", c.HalfDuration),
		fmt.Sprintf("%v", c.Latitude),
		fmt.Sprintf("%v", c.Longitude),
		fmt.Sprintf("%v", c.Depth),
	}
	for _, v := range c.MT.Six() {
		vals = append(vals, fmt.Sprintf("%v", v))
	}
	str := c.Description + "\n"
	for i, v := range vals {
		str += fmt.Sprintf("%-17s%s\n", cmtLabels[i]+":", v)
	}
	if _, err := w.Write([]byte(str)); err != nil {
		return SError{ErrIO, err.Error(), "", 0, []string{"CMTSolutionWrite"}}
	}
	return nil
}

// CMTSolutionFileRead reads the CMTSOLUTION file called name, decompressing
// it first if the extension asks for that (see FileOpen).
func CMTSolutionFileRead(name string) (*CMTSolution, error) {
	r, err := FileOpen(name)
	if err != nil {
		return nil, errDecorate(err, "CMTSolutionFileRead")
	}
	defer r.Close()
	c, err := CMTSolutionRead(r)
	if err != nil {
		return nil, errDecorate(fileErr(err, name), "CMTSolutionFileRead")
	}
	return c, nil
}

// CMTSolutionFileWrite writes the event to the file called name, compressing
// it if the extension asks for that (see FileCreate).
func CMTSolutionFileWrite(name string, c *CMTSolution) error {
	w, err := FileCreate(name)
	if err != nil {
		return errDecorate(err, "CMTSolutionFileWrite")
	}
	if err := CMTSolutionWrite(w, c); err != nil {
		w.Close()
		return errDecorate(fileErr(err, name), "CMTSolutionFileWrite")
	}
	return w.Close()
}

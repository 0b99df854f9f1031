/*
 * cmtsolution_test.go
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

package seis

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

//TestCMTSolutionIO reads the 2014 Iquique event from the test directory,
//checks the fields, writes it back and makes sure nothing changed on the
//way.
func TestCMTSolutionIO(Te *testing.T) {
	c, err := CMTSolutionFileRead("test/CMTSOLUTION")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("CMTSOLUTION read!", c.Description)
	if c.EventName != "201404012346A" {
		Te.Error("wrong event name", c.EventName)
	}
	if c.TimeShift != 12.0 || c.HalfDuration != 22.4 {
		Te.Error("wrong source time parameters", c.TimeShift, c.HalfDuration)
	}
	if c.Latitude != -19.7 || c.Longitude != -70.81 || c.Depth != 21.6 {
		Te.Error("wrong hypocenter", c.Latitude, c.Longitude, c.Depth)
	}
	if c.MT.Mrr() != 1.73e+28 || c.MT.Mpp() != -1.69e+28 || c.MT.Mtp() != 3.26e+27 {
		Te.Error("wrong tensor", c.MT)
	}
	err = CMTSolutionFileWrite("test/CMTSOLUTION.written", c)
	if err != nil {
		Te.Fatal(err)
	}
	c2, err := CMTSolutionFileRead("test/CMTSOLUTION.written")
	if err != nil {
		Te.Fatal(err)
	}
	if c2.Description != c.Description || c2.EventName != c.EventName {
		Te.Error("round trip changed the text fields")
	}
	if c2.TimeShift != c.TimeShift || c2.HalfDuration != c.HalfDuration ||
		c2.Latitude != c.Latitude || c2.Longitude != c.Longitude || c2.Depth != c.Depth {
		Te.Error("round trip changed the source parameters")
	}
	if *c2.MT != *c.MT {
		Te.Error("round trip changed the tensor", c.MT, c2.MT)
	}
}

//TestCMTSolutionCompressed does the write/read round trip through a gzipped
//file.
func TestCMTSolutionCompressed(Te *testing.T) {
	c, err := CMTSolutionFileRead("test/CMTSOLUTION")
	if err != nil {
		Te.Fatal(err)
	}
	err = CMTSolutionFileWrite("test/CMTSOLUTION.gz", c)
	if err != nil {
		Te.Fatal(err)
	}
	c2, err := CMTSolutionFileRead("test/CMTSOLUTION.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if c2.EventName != c.EventName || *c2.MT != *c.MT {
		Te.Error("the event didn't survive the gzip round trip")
	}
	fmt.Println("compressed CMTSOLUTION round trip done")
}

//TestCMTSolutionMalformed makes sure short and non-numeric inputs are
//rejected with the right error class.
func TestCMTSolutionMalformed(Te *testing.T) {
	data, err := os.ReadFile("test/CMTSOLUTION")
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	trunc := strings.Join(lines[:10], "\n")
	_, err = CMTSolutionRead(strings.NewReader(trunc))
	if err == nil {
		Te.Fatal("a 10-line CMTSOLUTION got through")
	}
	fe, ok := err.(FileError)
	if !ok || fe.Kind() != ErrFormat {
		Te.Error("expected a format error, got", err)
	}
	mangled := strings.Replace(string(data), "21.6000", "twentyone.six", 1)
	_, err = CMTSolutionRead(strings.NewReader(mangled))
	if err == nil {
		Te.Fatal("a non-numeric depth got through")
	}
	fe, ok = err.(FileError)
	if !ok || fe.Kind() != ErrParse {
		Te.Error("expected a parse error, got", err)
	}
	if fe.Line() != 7 {
		Te.Error("the parse error should point at line 7, got", fe.Line())
	}
	fmt.Println("malformed CMTSOLUTION rejected:", err)
}

//TestCMTSolutionTensorOrder reads a minimal synthetic event whose tensor
//components are 1 through 6, so any mixup between the file order and the
//named accessors shows up immediately.
func TestCMTSolutionTensorOrder(Te *testing.T) {
	doc := "synthetic event\n" +
		"event name:     SYN1\n" +
		"time shift:     0.0\n" +
		"half duration:  0.0\n" +
		"latitude:       0.0\n" +
		"longitude:      0.0\n" +
		"depth:          10.0\n" +
		"Mrr:            1.0\n" +
		"Mtt:            2.0\n" +
		"Mpp:            3.0\n" +
		"Mrt:            4.0\n" +
		"Mrp:            5.0\n" +
		"Mtp:            6.0\n"
	c, err := CMTSolutionRead(strings.NewReader(doc))
	if err != nil {
		Te.Fatal(err)
	}
	mt := c.MT
	if mt.Mrr() != 1 || mt.Mtt() != 2 || mt.Mpp() != 3 ||
		mt.Mrt() != 4 || mt.Mrp() != 5 || mt.Mtp() != 6 {
		Te.Error("tensor components don't follow the file order", mt)
	}
}

//TestCMTSolutionNil checks the writer refuses an event with no tensor
//before touching the output.
func TestCMTSolutionNil(Te *testing.T) {
	err := CMTSolutionWrite(os.Stderr, &CMTSolution{EventName: "x"})
	if err == nil {
		Te.Fatal("an event without a tensor got through")
	}
	if fe, ok := err.(FileError); !ok || fe.Kind() != ErrArgument {
		Te.Error("expected an argument error, got", err)
	}
}

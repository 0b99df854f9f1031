/*
 * errors.go, part of goseis
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
)

//ErrKind classifies the failures of this library so callers can branch on
//the class without matching message text.
type ErrKind int

const (
	ErrFormat   ErrKind = iota + 1 //the file doesn't have the expected structure
	ErrParse                       //a token that should be a number, isn't
	ErrArgument                    //the caller handed us something unusable
	ErrType                        //a value of an unsupported kind reached a writer
	ErrIO                          //the operating system refused to cooperate
)

func (k ErrKind) String() string {
	switch k {
	case ErrFormat:
		return "format error"
	case ErrParse:
		return "parse error"
	case ErrArgument:
		return "argument error"
	case ErrType:
		return "type error"
	case ErrIO:
		return "io error"
	}
	return "unknown error"
}

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, as it goes
// up the call stack.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate adds the given string to the "decoration" slice of strings in the error, and returns the resulting slice. If given an empty string, it just returns the current slice, without adding anything.
}

// FileError is the interface for errors raised while reading or writing one
// of the simulator's files. It adds to Error the failure class and whatever
// position information the codec had when things went wrong.
type FileError interface {
	Error
	Kind() ErrKind
	FileName() string //the problematic file, or an empty string if unknown
	Line() int        //1-based line where the problem was found, 0 if not applicable
}

// SError is the concrete error type for the root package. It fullfills Error
// and FileError.
type SError struct {
	kind     ErrKind
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int
	deco     []string
}

func (err SError) Error() string {
	m := err.message
	if err.line > 0 {
		m = fmt.Sprintf("%s (line %d)", m, err.line)
	}
	if err.filename != "" {
		return fmt.Sprintf("goSeis: file %s: %s", err.filename, m)
	}
	return "goSeis: " + m
}

//Decorate Adds new information to the error
func (E SError) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Kind returns the class of the failure.
func (err SError) Kind() ErrKind { return err.kind }

//FileName returns the file to which the failing operation was associated,
//or an empty string if there was no file involved.
func (err SError) FileName() string { return err.filename }

//Line returns the 1-based number of the offending line, or 0 when the error
//is not tied to a particular line.
func (err SError) Line() int { return err.line }

//errDecorate is a helper function that asserts that the error implements
//Error and decorates it with the caller's name before returning it.
//If used with an error from outside the library, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error) //I know the type returned by the functions here
	err2.Decorate(caller)
	return err2
}

//fileErr stamps name on errors produced below the File* wrappers, which are
//the first ones to know which file was being read or written.
func fileErr(err error, name string) error {
	if e, ok := err.(SError); ok {
		e.filename = name
		return e
	}
	return err
}

const (
	TooFewLines    = "Not enough lines in file"
	TooFewColumns  = "Not enough columns in line"
	UnableToOpen   = "Unable to open file"
	UnableToCreate = "Unable to create file"
	MismatchedCols = "Column slices differ in length"
	NilData        = "Given nil data"
)

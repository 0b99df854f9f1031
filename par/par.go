package par

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	seis "github.com/goseis/goseis"
)

// Kind tags the type a Value holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	return "invalid"
}

// Value is one Par_file value: a boolean, an integer, a float or a bare
// string, plus the tag telling which. The zero Value is invalid, and the
// writer rejects it.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Float returns a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value. The file form is trimmed of surrounding
// space when written.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the tag of the value.
func (v Value) Kind() Kind { return v.kind }

//The accessors panic on a kind mismatch, as asking a value for the wrong
//type is a programming mistake, not a runtime condition.

// Bool returns the boolean in v. It panics if v holds another kind.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic("par: Bool called on a " + v.kind.String() + " value")
	}
	return v.b
}

// Int returns the integer in v. It panics if v holds another kind.
func (v Value) Int() int {
	if v.kind != KindInt {
		panic("par: Int called on a " + v.kind.String() + " value")
	}
	return v.i
}

// Float returns the float in v. It panics if v holds another kind.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		panic("par: Float called on a " + v.kind.String() + " value")
	}
	return v.f
}

// Str returns the string in v. It panics if v holds another kind.
func (v Value) Str() string {
	if v.kind != KindString {
		panic("par: Str called on a " + v.kind.String() + " value")
	}
	return v.s
}

// String renders the value the way it would appear in a file, or
// "<invalid>" for the zero Value.
func (v Value) String() string {
	r, err := render("", v)
	if err != nil {
		return "<invalid>"
	}
	return r
}

// Table holds Par_file parameters, preserving the order in which they were
// first set. That order is the order Write puts them on disk.
type Table struct {
	keys   []string
	values map[string]Value
}

// New returns an empty table.
func New() *Table {
	return &Table{keys: make([]string, 0, 64), values: make(map[string]Value)}
}

// Len returns the number of parameters in the table.
func (T *Table) Len() int { return len(T.keys) }

// Keys returns the parameter names in insertion order. The slice is a copy.
func (T *Table) Keys() []string {
	ret := make([]string, len(T.keys))
	copy(ret, T.keys)
	return ret
}

// Get returns the value for key, and whether the key was present at all.
func (T *Table) Get(key string) (Value, bool) {
	v, ok := T.values[key]
	return v, ok
}

// Set adds the parameter at the end of the table, or, if already present,
// overwrites it without moving it.
func (T *Table) Set(key string, v Value) {
	if _, ok := T.values[key]; !ok {
		T.keys = append(T.keys, key)
	}
	T.values[key] = v
}

// Del removes the parameter, reporting whether it was there.
func (T *Table) Del(key string) bool {
	if _, ok := T.values[key]; !ok {
		return false
	}
	delete(T.values, key)
	for i, k := range T.keys {
		if k == key {
			T.keys = append(T.keys[:i], T.keys[i+1:]...)
			break
		}
	}
	return true
}

// GetBool returns the parameter key as a boolean. A missing key or one
// holding another kind is an error.
func (T *Table) GetBool(key string) (bool, error) {
	v, ok := T.values[key]
	if !ok {
		return false, Error{seis.ErrArgument, NotInTable + ": " + key, "", 0, []string{"GetBool"}}
	}
	if v.kind != KindBool {
		return false, Error{seis.ErrType, fmt.Sprintf("parameter %s is a %s, not a bool", key, v.kind), "", 0, []string{"GetBool"}}
	}
	return v.b, nil
}

// GetInt returns the parameter key as an integer. A missing key or one
// holding another kind is an error.
func (T *Table) GetInt(key string) (int, error) {
	v, ok := T.values[key]
	if !ok {
		return 0, Error{seis.ErrArgument, NotInTable + ": " + key, "", 0, []string{"GetInt"}}
	}
	if v.kind != KindInt {
		return 0, Error{seis.ErrType, fmt.Sprintf("parameter %s is a %s, not an int", key, v.kind), "", 0, []string{"GetInt"}}
	}
	return v.i, nil
}

// GetFloat returns the parameter key as a float. A stored integer is
// promoted, as Par_files often write things like "DT = 1" for 1.0. A
// missing key or one holding a non-numeric kind is an error.
func (T *Table) GetFloat(key string) (float64, error) {
	v, ok := T.values[key]
	if !ok {
		return 0, Error{seis.ErrArgument, NotInTable + ": " + key, "", 0, []string{"GetFloat"}}
	}
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	}
	return 0, Error{seis.ErrType, fmt.Sprintf("parameter %s is a %s, not a number", key, v.kind), "", 0, []string{"GetFloat"}}
}

// GetString returns the parameter key as a string. A missing key or one
// holding another kind is an error.
func (T *Table) GetString(key string) (string, error) {
	v, ok := T.values[key]
	if !ok {
		return "", Error{seis.ErrArgument, NotInTable + ": " + key, "", 0, []string{"GetString"}}
	}
	if v.kind != KindString {
		return "", Error{seis.ErrType, fmt.Sprintf("parameter %s is a %s, not a string", key, v.kind), "", 0, []string{"GetString"}}
	}
	return v.s, nil
}

// Read parses a Par_file from r. Blank lines and lines whose first
// non-whitespace character is '#' are skipped. Every other line must be a
// "KEY = value" assignment; its value is the first whitespace-delimited
// token after the first '=', so trailing comments on the line are dropped.
// Each value gets typed by trying, in order: Fortran boolean, integer,
// float (with 'd'/'D' exponents read as 'e'), and finally bare string. A
// duplicated key, or a line with no '=', no key or no value, stops the read
// with an error carrying the 1-based line number.
func Read(r io.Reader) (*Table, error) {
	buf := bufio.NewReader(r)
	T := New()
	lineno := 0
	for {
		line, rerr := buf.ReadString('\n')
		if line != "" {
			lineno++
			if err := T.parseLine(line, lineno); err != nil {
				return nil, errDecorate(err, "Read")
			}
		}
		if rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				return nil, Error{seis.ErrIO, rerr.Error(), "", lineno, []string{"Read"}}
			}
			break
		}
	}
	return T, nil
}

//parseLine handles one physical line of a Par_file.
func (T *Table) parseLine(line string, lineno int) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	eq := strings.Index(trimmed, "=")
	if eq < 0 {
		return Error{seis.ErrFormat, fmt.Sprintf("%s: '%s'", MissingEquals, trimmed), "", lineno, []string{"parseLine"}}
	}
	key := strings.TrimSpace(trimmed[:eq])
	if key == "" {
		return Error{seis.ErrFormat, fmt.Sprintf("%s: '%s'", EmptyKey, trimmed), "", lineno, []string{"parseLine"}}
	}
	rest := strings.Fields(trimmed[eq+1:])
	if len(rest) == 0 {
		return Error{seis.ErrFormat, fmt.Sprintf("%s: '%s'", EmptyValue, trimmed), "", lineno, []string{"parseLine"}}
	}
	if _, ok := T.values[key]; ok {
		return Error{seis.ErrFormat, DuplicatedKey + ": " + key, "", lineno, []string{"parseLine"}}
	}
	T.Set(key, infer(rest[0]))
	return nil
}

//infer applies the Par_file typing rules to one value token. The order
//matters: booleans first, then integers, then floats with the Fortran 'd'
//exponents turned into 'e', and whatever is left is a string, kept exactly
//as it came (model names like 1D_isotropic_prem contain a 'D' that must
//survive).
func infer(tok string) Value {
	low := strings.ToLower(tok)
	if low == ".true." {
		return Bool(true)
	}
	if low == ".false." {
		return Bool(false)
	}
	if i, err := strconv.Atoi(tok); err == nil {
		return Int(i)
	}
	ftok := strings.ReplaceAll(strings.ReplaceAll(tok, "d", "e"), "D", "e")
	if f, err := strconv.ParseFloat(ftok, 64); err == nil {
		return Float(f)
	}
	return String(tok)
}

// Write puts the table on w in Par_file form, one "KEY = value" line per
// parameter, in insertion order. Keys sit left-aligned on a 31-character
// field, the width the simulator's own files use, and floats get their 'e'
// exponent written as the Fortran 'd'.
func Write(w io.Writer, T *Table) error {
	if T == nil {
		return Error{seis.ErrArgument, NilTable, "", 0, []string{"Write"}}
	}
	str := ""
	for _, key := range T.keys {
		r, err := render(key, T.values[key])
		if err != nil {
			return errDecorate(err, "Write")
		}
		str += fmt.Sprintf("%-31s = %s\n", key, r)
	}
	if _, err := w.Write([]byte(str)); err != nil {
		return Error{seis.ErrIO, err.Error(), "", 0, []string{"Write"}}
	}
	return nil
}

//render gives the file representation of v. The key is only for error
//reporting.
func render(key string, v Value) (string, error) {
	switch v.kind {
	case KindBool:
		if v.b {
			return ".true.", nil
		}
		return ".false.", nil
	case KindInt:
		return strconv.Itoa(v.i), nil
	case KindFloat:
		return strings.ReplaceAll(fmt.Sprintf("%e", v.f), "e", "d"), nil
	case KindString:
		return strings.TrimSpace(v.s), nil
	}
	return "", Error{seis.ErrType, fmt.Sprintf("parameter %s has unsupported kind %s", key, v.kind), "", 0, []string{"render"}}
}

// FileRead reads the Par_file called name, decompressing it first if the
// extension asks for that (see seis.FileOpen).
func FileRead(name string) (*Table, error) {
	r, err := seis.FileOpen(name)
	if err != nil {
		return nil, errDecorate(err, "par.FileRead")
	}
	defer r.Close()
	T, err := Read(r)
	if err != nil {
		return nil, errDecorate(fileErr(err, name), "par.FileRead")
	}
	return T, nil
}

// FileWrite writes the table to the file called name, compressing it if the
// extension asks for that (see seis.FileCreate).
func FileWrite(name string, T *Table) error {
	w, err := seis.FileCreate(name)
	if err != nil {
		return errDecorate(err, "par.FileWrite")
	}
	if err := Write(w, T); err != nil {
		w.Close()
		return errDecorate(fileErr(err, name), "par.FileWrite")
	}
	return w.Close()
}

//Errors

//errDecorate is a helper function that asserts that the error implements
//seis.Error and decorates it with the caller's name before returning it.
//If used with an error from outside the library, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(seis.Error) //I know the type returned by the functions here
	err2.Decorate(caller)
	return err2
}

//fileErr stamps name on errors produced below the File* wrappers, which are
//the first ones to know which file was being read or written.
func fileErr(err error, name string) error {
	if e, ok := err.(Error); ok {
		e.filename = name
		return e
	}
	return err
}

//Error is the concrete error type of this package. It fullfills seis.Error
//and seis.FileError.
type Error struct {
	kind     seis.ErrKind
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int
	deco     []string
}

func (err Error) Error() string {
	m := err.message
	if err.line > 0 {
		m = fmt.Sprintf("%s (line %d)", m, err.line)
	}
	if err.filename != "" {
		return fmt.Sprintf("goSeis/par: file %s: %s", err.filename, m)
	}
	return "goSeis/par: " + m
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

//FileName returns the file to which the failing operation was associated,
//or an empty string if there was no file involved.
func (err Error) FileName() string { return err.filename }

//Line returns the 1-based number of the offending line, or 0 when the error
//is not tied to a particular line.
func (err Error) Line() int { return err.line }

const (
	MissingEquals = "No '=' sign in parameter line"
	EmptyKey      = "No parameter name before the '='"
	EmptyValue    = "No value after the '='"
	DuplicatedKey = "Parameter given more than once"
	NotInTable    = "Parameter not in the table"
	NilTable      = "Given a nil table"
)

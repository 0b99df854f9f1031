package par

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	seis "github.com/goseis/goseis"
)

//TestInference checks the typing rules on single tokens: Fortran booleans
//first, then integers, then floats with d/D exponents, then bare strings.
func TestInference(Te *testing.T) {
	cases := []struct {
		tok  string
		kind Kind
	}{
		{".true.", KindBool},
		{".FALSE.", KindBool},
		{"4", KindInt},
		{"-240", KindInt},
		{"0.05d0", KindFloat},
		{"9.0D-2", KindFloat},
		{"2.5e-3", KindFloat},
		{"1D_transversely_isotropic_prem", KindString},
		{".true.extra", KindString},
	}
	for _, c := range cases {
		v := infer(c.tok)
		if v.Kind() != c.kind {
			Te.Error("token", c.tok, "inferred as", v.Kind(), "want", c.kind)
		}
	}
	if !infer(".true.").Bool() || infer(".FALSE.").Bool() {
		Te.Error("wrong boolean values")
	}
	if infer("-240").Int() != -240 {
		Te.Error("wrong integer value")
	}
	if infer("0.05d0").Float() != 0.05 {
		Te.Error("wrong float value", infer("0.05d0").Float())
	}
	//the d->e swap must happen on a copy, never on the stored token
	if infer("1D_transversely_isotropic_prem").Str() != "1D_transversely_isotropic_prem" {
		Te.Error("a string token got mangled by the float attempt")
	}
}

//TestParFileIO reads the testing Par_file, checks some parameters of each
//kind, writes the table back and makes sure nothing changed on the way.
func TestParFileIO(Te *testing.T) {
	T, err := FileRead("../test/Par_file")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Len() != 29 {
		Te.Error("wrong number of parameters", T.Len())
	}
	keys := T.Keys()
	if keys[0] != "SIMULATION_TYPE" || keys[len(keys)-1] != "ADIOS_ENABLED" {
		Te.Error("the file order was not preserved", keys)
	}
	if n, err := T.GetInt("NEX_XI"); err != nil || n != 240 {
		Te.Error("wrong NEX_XI", n, err)
	}
	if o, err := T.GetBool("OCEANS"); err != nil || !o {
		Te.Error("wrong OCEANS", o, err)
	}
	if w, err := T.GetFloat("ANGULAR_WIDTH_XI_IN_DEGREES"); err != nil || w != 90.0 {
		Te.Error("wrong chunk width", w, err)
	}
	if m, err := T.GetString("MODEL"); err != nil || m != "1D_transversely_isotropic_prem" {
		Te.Error("wrong MODEL", m, err)
	}
	//integers promote to float on request
	if np, err := T.GetFloat("NPROC_XI"); err != nil || np != 5.0 {
		Te.Error("NPROC_XI didn't promote to float", np, err)
	}
	//but not the other way around, nor across unrelated kinds
	if _, err := T.GetInt("MODEL"); err == nil {
		Te.Error("GetInt on a string should fail")
	} else if e, ok := err.(seis.FileError); !ok || e.Kind() != seis.ErrType {
		Te.Error("wrong error for a kind mismatch", err)
	}
	if _, err := T.GetBool("NOT_A_PARAMETER"); err == nil {
		Te.Error("GetBool on a missing key should fail")
	} else if e, ok := err.(seis.FileError); !ok || e.Kind() != seis.ErrArgument {
		Te.Error("wrong error for a missing key", err)
	}
	if err := FileWrite("../test/Par_file.written", T); err != nil {
		Te.Fatal(err)
	}
	T2, err := FileRead("../test/Par_file.written")
	if err != nil {
		Te.Fatal(err)
	}
	keys2 := T2.Keys()
	if len(keys2) != len(keys) {
		Te.Fatal("the round trip changed the parameter count", len(keys), len(keys2))
	}
	for i, k := range keys {
		if keys2[i] != k {
			Te.Error("the round trip changed the order at", i, k, keys2[i])
		}
		v1, _ := T.Get(k)
		v2, _ := T2.Get(k)
		if v1 != v2 {
			Te.Error("the round trip changed", k, "from", v1, "to", v2)
		}
	}
	fmt.Println("Par_file survived the round trip:", T.Len(), "parameters")
}

//TestWriteFormat checks the exact shape of written lines: the 31-character
//key field, the Fortran float rendering and the trimming of strings.
func TestWriteFormat(Te *testing.T) {
	T := New()
	T.Set("DT", Float(0.05))
	T.Set("GPU_MODE", Bool(false))
	T.Set("MODEL", String("  prem  "))
	buf := new(bytes.Buffer)
	if err := Write(buf, T); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "DT                              = 5.000000d-02" {
		Te.Error("wrong float line:", "'"+lines[0]+"'")
	}
	if lines[1] != "GPU_MODE                        = .false." {
		Te.Error("wrong boolean line:", "'"+lines[1]+"'")
	}
	if lines[2] != "MODEL                           = prem" {
		Te.Error("the string value was not trimmed:", "'"+lines[2]+"'")
	}
	//what we write, we must be able to read back
	T2, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		Te.Fatal(err)
	}
	if dt, err := T2.GetFloat("DT"); err != nil || dt != 0.05 {
		Te.Error("the written float doesn't read back", dt, err)
	}
	if Write(nil, nil) == nil {
		Te.Error("writing a nil table should fail")
	}
}

//TestMalformed feeds the parser the classic broken lines and checks both the
//failure class and the reported line number.
func TestMalformed(Te *testing.T) {
	cases := []struct {
		name string
		text string
		line int
	}{
		{"no equals", "OCEANS = .true.\nNO_EQUALS_HERE\n", 2},
		{"empty key", "# header\n= 5\n", 2},
		{"empty value", "OCEANS = .true.\nGRAVITY =\n", 2},
		{"duplicate", "NCHUNKS = 6\nNCHUNKS = 1\n", 2},
	}
	for _, c := range cases {
		_, err := Read(strings.NewReader(c.text))
		if err == nil {
			Te.Error(c.name, "was accepted")
			continue
		}
		e, ok := err.(seis.FileError)
		if !ok {
			Te.Error(c.name, "returned a foreign error", err)
			continue
		}
		if e.Kind() != seis.ErrFormat {
			Te.Error(c.name, "has the wrong kind", e.Kind())
		}
		if e.Line() != c.line {
			Te.Error(c.name, "reported line", e.Line(), "want", c.line)
		}
		fmt.Println(c.name, "->", err)
	}
}

//TestInvalidValue makes sure a zero Value is caught by the writer instead of
//reaching the file.
func TestInvalidValue(Te *testing.T) {
	var zero Value
	if zero.String() != "<invalid>" {
		Te.Error("a zero Value renders as", zero.String())
	}
	T := New()
	T.Set("BROKEN", zero)
	err := Write(new(bytes.Buffer), T)
	if err == nil {
		Te.Fatal("a zero Value got written")
	}
	if e, ok := err.(seis.FileError); !ok || e.Kind() != seis.ErrType {
		Te.Error("wrong error for a zero Value", err)
	}
}

//TestCompressed round trips the table through a gzipped file.
func TestCompressed(Te *testing.T) {
	T, err := FileRead("../test/Par_file")
	if err != nil {
		Te.Fatal(err)
	}
	if err := FileWrite("../test/Par_file.gz", T); err != nil {
		Te.Fatal(err)
	}
	T2, err := FileRead("../test/Par_file.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if T2.Len() != T.Len() {
		Te.Error("the compressed round trip lost parameters", T2.Len())
	}
	if n, err := T2.GetInt("NTSTEP_BETWEEN_FRAMES"); err != nil || n != 100 {
		Te.Error("wrong NTSTEP_BETWEEN_FRAMES after compression", n, err)
	}
}

//TestTableEdit exercises Set, Del and Get on their own.
func TestTableEdit(Te *testing.T) {
	T := New()
	T.Set("A", Int(1))
	T.Set("B", Int(2))
	T.Set("C", Int(3))
	T.Set("B", Int(20)) //overwrite must not move B
	keys := T.Keys()
	if len(keys) != 3 || keys[1] != "B" {
		Te.Error("overwriting moved the key", keys)
	}
	if v, ok := T.Get("B"); !ok || v.Int() != 20 {
		Te.Error("overwriting didn't change the value", v)
	}
	if !T.Del("A") || T.Del("A") {
		Te.Error("Del doesn't report what it did")
	}
	if T.Len() != 2 || T.Keys()[0] != "B" {
		Te.Error("Del left the table inconsistent", T.Keys())
	}
	if _, ok := T.Get("A"); ok {
		Te.Error("a deleted key is still there")
	}
}

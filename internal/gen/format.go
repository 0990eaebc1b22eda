package gen

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"

	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/spectral"
)

// TableKind is the type of the values in a generated table.
type TableKind int

const (
	XYZTable TableKind = iota
	RGBTable
	SpectrumTable
	VectorTable
)

// Row is one swatch of a tabulated chart, ID being its table identifier.
type Row struct {
	ID, Name string
	V        colorconv.Vec3
}

type SpectrumRow struct {
	ID      string
	Samples []spectral.Sample
}

type VectorRow struct {
	ID     string
	Values []float64
}

// InsertTable names a map that GenerateReference fills with one
// statement per swatch, using the constructor Ctor.
type InsertTable struct {
	Name, Ctor string
}

// Format renders generated tables in one target language. Writes go to an
// in-memory buffer so write errors are not reported per call; Finish
// post-processes the complete document.
type Format interface {
	// Ident converts a SCREAMING_SNAKE table name to an identifier of the
	// target language.
	Ident(table string) string
	// Begin and End wrap a document. Static documents hold table
	// definitions, the others hold statements.
	Begin(w io.Writer, generator string, static bool)
	End(w io.Writer, static bool)
	Comment(w io.Writer, text string)

	OpenTable(w io.Writer, name string, kind TableKind)
	Vec3Entry(w io.Writer, kind TableKind, id string, v colorconv.Vec3)
	SpectrumEntry(w io.Writer, id string, samples []spectral.Sample)
	VectorEntry(w io.Writer, id string, values []float64)
	CloseTable(w io.Writer, kind TableKind)

	VectorConst(w io.Writer, name string, values []float64)
	MatrixConst(w io.Writer, name string, m colorconv.Mat3)

	OpenInserts(w io.Writer, tables ...InsertTable)
	InsertStatement(w io.Writer, table InsertTable, id string, v colorconv.Vec3)
	CloseInserts(w io.Writer, tables ...InsertTable)

	Finish(filename string, src []byte) ([]byte, error)
}

var _ Format = (*GoFormat)(nil)
var _ Format = (*RustFormat)(nil)

// formatNumber renders v with prec decimals, or with the language specific
// spelling for non-finite values.
func formatNumber(v float64, prec int, nan, posInf, negInf string) string {
	switch {
	case math.IsNaN(v):
		return nan
	case math.IsInf(v, 1):
		return posInf
	case math.IsInf(v, -1):
		return negInf
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func joinNumbers(values []float64, f func(float64) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = f(v)
	}
	return strings.Join(parts, ", ")
}

// GoFormat emits package level Go variables.
type GoFormat struct {
	Package   string
	Precision int
}

func (f *GoFormat) num(v float64) string {
	return formatNumber(v, f.Precision, "math.NaN()", "math.Inf(1)", "math.Inf(-1)")
}

func (f *GoFormat) short(v float64) string {
	return formatNumber(v, 6, "math.NaN()", "math.Inf(1)", "math.Inf(-1)")
}

func (f *GoFormat) Ident(table string) string { return strcase.ToCamel(strings.ToLower(table)) }

func (f *GoFormat) Begin(w io.Writer, generator string, static bool) {
	fmt.Fprintf(w, "// Code generated by %s. DO NOT EDIT.\n\npackage %s\n\n", generator, f.Package)
}

func (f *GoFormat) End(w io.Writer, static bool) {}

func (f *GoFormat) Comment(w io.Writer, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "// %s\n", line)
	}
	fmt.Fprintln(w)
}

func (f *GoFormat) OpenTable(w io.Writer, name string, kind TableKind) {
	t := "[3]float64"
	switch kind {
	case SpectrumTable:
		t = "[][2]float64"
	case VectorTable:
		t = "[]float64"
	}
	fmt.Fprintf(w, "var %s = map[string]%s{\n", f.Ident(name), t)
}

func (f *GoFormat) Vec3Entry(w io.Writer, kind TableKind, id string, v colorconv.Vec3) {
	fmt.Fprintf(w, "\t%q: {%s},\n", id, joinNumbers(v[:], f.num))
}

func (f *GoFormat) SpectrumEntry(w io.Writer, id string, samples []spectral.Sample) {
	fmt.Fprintf(w, "\t%q: {\n", id)
	for _, s := range samples {
		fmt.Fprintf(w, "\t\t{%s, %s},\n", f.short(s.Nm), f.short(s.V))
	}
	fmt.Fprint(w, "\t},\n")
}

func (f *GoFormat) VectorEntry(w io.Writer, id string, values []float64) {
	fmt.Fprintf(w, "\t%q: {\n", id)
	for _, v := range values {
		fmt.Fprintf(w, "\t\t%s,\n", f.num(v))
	}
	fmt.Fprint(w, "\t},\n")
}

func (f *GoFormat) CloseTable(w io.Writer, kind TableKind) { fmt.Fprint(w, "}\n\n") }

func (f *GoFormat) VectorConst(w io.Writer, name string, values []float64) {
	fmt.Fprintf(w, "var %s = []float64{\n", f.Ident(name))
	for _, v := range values {
		fmt.Fprintf(w, "\t%s,\n", f.num(v))
	}
	fmt.Fprint(w, "}\n\n")
}

func (f *GoFormat) MatrixConst(w io.Writer, name string, m colorconv.Mat3) {
	fmt.Fprintf(w, "var %s = [3][3]float64{\n", f.Ident(name))
	for _, row := range m {
		fmt.Fprintf(w, "\t{%s},\n", joinNumbers(row[:], f.num))
	}
	fmt.Fprint(w, "}\n\n")
}

func (f *GoFormat) OpenInserts(w io.Writer, tables ...InsertTable) {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = strcase.ToLowerCamel(t.Name)
	}
	fmt.Fprintf(w, "func referenceValues() (%s map[string][3]float64) {\n", strings.Join(names, ", "))
	for _, n := range names {
		fmt.Fprintf(w, "\t%s = make(map[string][3]float64)\n", n)
	}
}

func (f *GoFormat) InsertStatement(w io.Writer, table InsertTable, id string, v colorconv.Vec3) {
	fmt.Fprintf(w, "\t%s[%q] = [3]float64{%s}\n", strcase.ToLowerCamel(table.Name), id, joinNumbers(v[:], f.short))
}

func (f *GoFormat) CloseInserts(w io.Writer, tables ...InsertTable) { fmt.Fprint(w, "\treturn\n}\n") }

// Finish formats the source and adds the imports it needs.
func (f *GoFormat) Finish(filename string, src []byte) ([]byte, error) {
	ans, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated Go code: %w", err)
	}
	return ans, nil
}

// RustFormat emits lazy_static tables for the colorspace crate.
type RustFormat struct {
	Precision int
}

func (f *RustFormat) num(v float64) string {
	return formatNumber(v, f.Precision, "f64::NAN", "f64::INFINITY", "f64::NEG_INFINITY")
}

func (f *RustFormat) short(v float64) string {
	return formatNumber(v, 6, "f64::NAN", "f64::INFINITY", "f64::NEG_INFINITY")
}

func (f *RustFormat) Ident(table string) string {
	if strings.ToUpper(table) == table {
		return table
	}
	return strcase.ToScreamingSnake(table)
}

func (f *RustFormat) Begin(w io.Writer, generator string, static bool) {
	fmt.Fprintf(w, "// Generated by %s, do not edit.\n", generator)
	if static {
		fmt.Fprint(w, "use std::collections::HashMap;\n\nlazy_static! {\n")
	}
}

func (f *RustFormat) End(w io.Writer, static bool) {
	if static {
		fmt.Fprint(w, "}\n")
	}
}

func (f *RustFormat) Comment(w io.Writer, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "// %s\n", line)
	}
}

var rustTypes = map[TableKind]string{XYZTable: "XYZf64", RGBTable: "RGBf64", SpectrumTable: "VSPD", VectorTable: "SPD"}

func (f *RustFormat) OpenTable(w io.Writer, name string, kind TableKind) {
	fmt.Fprintf(w, "pub static ref %s: HashMap<String, %s> = hashmap! {\n", f.Ident(name), rustTypes[kind])
}

func (f *RustFormat) Vec3Entry(w io.Writer, kind TableKind, id string, v colorconv.Vec3) {
	ctor := "rgbf"
	if kind == XYZTable {
		ctor = "xyz"
	}
	fmt.Fprintf(w, "    %q.into() => %s(%s),\n", id, ctor, joinNumbers(v[:], f.num))
}

func (f *RustFormat) SpectrumEntry(w io.Writer, id string, samples []spectral.Sample) {
	fmt.Fprintf(w, "    %q.into() => vspd! {\n", id)
	for _, s := range samples {
		fmt.Fprintf(w, "        %s => %s,\n", f.short(s.Nm), f.short(s.V))
	}
	fmt.Fprint(w, "    },\n")
}

func (f *RustFormat) VectorEntry(w io.Writer, id string, values []float64) {
	fmt.Fprintf(w, "    %q.into() => SPD::new([\n", id)
	for _, v := range values {
		fmt.Fprintf(w, "        %s,\n", f.num(v))
	}
	fmt.Fprint(w, "    ]),\n")
}

func (f *RustFormat) CloseTable(w io.Writer, kind TableKind) {
	if kind == RGBTable {
		fmt.Fprint(w, "};\n\n")
		return
	}
	fmt.Fprint(w, "};\n")
}

func (f *RustFormat) VectorConst(w io.Writer, name string, values []float64) {
	fmt.Fprintf(w, "pub static ref %s: SPD = SPD::new([\n", f.Ident(name))
	for _, v := range values {
		fmt.Fprintf(w, "    %s,\n", f.num(v))
	}
	fmt.Fprint(w, "]);\n")
}

func (f *RustFormat) MatrixConst(w io.Writer, name string, m colorconv.Mat3) {
	fmt.Fprintf(w, "pub static ref %s: M3f64 = M3f64::new([\n", f.Ident(name))
	for _, row := range m {
		fmt.Fprintf(w, "    %s,\n", joinNumbers(row[:], f.num))
	}
	fmt.Fprint(w, "]);\n")
}

func (f *RustFormat) OpenInserts(w io.Writer, tables ...InsertTable) {
	for _, t := range tables {
		fmt.Fprintf(w, "let %s = HashMap::new();\n", t.Name)
	}
}

func (f *RustFormat) InsertStatement(w io.Writer, table InsertTable, id string, v colorconv.Vec3) {
	fmt.Fprintf(w, "%s.insert(%q, %s(%s));\n", table.Name, id, table.Ctor, joinNumbers(v[:], f.short))
}

func (f *RustFormat) CloseInserts(w io.Writer, tables ...InsertTable) {}

func (f *RustFormat) Finish(filename string, src []byte) ([]byte, error) { return src, nil }

// Command fetchgen writes the typed query and system registration code for
// every fetch arity from 1 to -max.
//
//	go run ./cmd/fetchgen -out ecs/fetch_generated.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"golang.org/x/tools/imports"
)

type arity struct {
	N          int
	Indexes    []int
	TypeParams string
	Pointers   string
	Values     string
	Nils       string
	Columns    string
	Types      string
	Names      string
}

func newArity(n int) arity {
	a := arity{N: n}

	var params, pointers, values, nils, columns, types []string
	for i := 1; i <= n; i++ {
		a.Indexes = append(a.Indexes, i)
		params = append(params, fmt.Sprintf("T%d", i))
		pointers = append(pointers, fmt.Sprintf("*T%d", i))
		values = append(values, fmt.Sprintf("q.v%d", i))
		nils = append(nils, "nil")
		columns = append(columns, fmt.Sprintf("q.c%d", i))
		types = append(types, fmt.Sprintf("reflect.TypeFor[T%d]()", i))
	}

	a.TypeParams = strings.Join(params, ", ")
	a.Pointers = strings.Join(pointers, ", ")
	a.Values = strings.Join(values, ", ")
	a.Nils = strings.Join(nils, ", ")
	a.Columns = strings.Join(columns, ", ")
	a.Types = strings.Join(types, ", ")
	a.Names = joinNames(params)
	return a
}

// joinNames renders [T1 T2 T3] as "T1, T2 and T3".
func joinNames(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

const fetchTemplate = `// Code generated by fetchgen. DO NOT EDIT.

package ecs

import "reflect"
{{range .}}
// Query{{.N}} iterates the entities holding {{.Names}}.
type Query{{.N}}[{{.TypeParams}} any] struct {
	scan scanner
{{- range .Indexes}}
	c{{.}} *column[T{{.}}]
{{- end}}
{{- range .Indexes}}
	v{{.}} *T{{.}}
{{- end}}
}

// NewQuery{{.N}} returns a fresh query over the table owned by src. It panics
// if a type is not registered or is requested more than once.
func NewQuery{{.N}}[{{.TypeParams}} any](src ComponentSource) *Query{{.N}}[{{.TypeParams}}] {
	table := src.componentTable()
	q := &Query{{.N}}[{{.TypeParams}}]{
{{- range .Indexes}}
		c{{.}}: columnFor[T{{.}}](table),
{{- end}}
	}
	q.scan = newScanner(table, {{.Columns}})
	return q
}

// Next advances to the next entity holding every requested component.
func (q *Query{{.N}}[{{.TypeParams}}]) Next() bool {
	if !q.scan.next() {
		{{.Values}} = {{.Nils}}
		return false
	}
	index := int(q.scan.current)
{{- range .Indexes}}
	q.v{{.}} = q.c{{.}}.get(index)
{{- end}}
	return true
}

// Entity returns the entity of the current step.
func (q *Query{{.N}}[{{.TypeParams}}]) Entity() EntityId {
	return q.scan.current
}

// Get returns the components of the current step.
func (q *Query{{.N}}[{{.TypeParams}}]) Get() {{if eq .N 1}}{{.Pointers}}{{else}}({{.Pointers}}){{end}} {
	return {{.Values}}
}

// Each calls fn for every remaining matching entity.
func (q *Query{{.N}}[{{.TypeParams}}]) Each(fn func(EntityId, {{.Pointers}})) {
	for q.Next() {
		fn(q.scan.current, {{.Values}})
	}
}

// WithSystem{{.N}} registers fn to run on every tick, once per entity holding
// {{.Names}}. Missing columns are registered.
func WithSystem{{.N}}[{{.TypeParams}}, C any](w *World[C], fn func(*C, {{.Pointers}}), opts ...SystemOption) *World[C] {
{{- range .Indexes}}
	ensureColumn[T{{.}}](w.components)
{{- end}}
	NewQuery{{.N}}[{{.TypeParams}}](w)

	components := []reflect.Type{ {{- .Types -}} }
	w.addEntitySystem(fn, components, opts, func(frame *UpdateFrame[C]) {
		q := NewQuery{{.N}}[{{.TypeParams}}](frame.World)
		for q.Next() {
			fn(frame.Ctx, {{.Values}})
		}
	})
	return w
}
{{end}}`

// render produces the formatted source for arities 1..maxArity.
func render(filename string, maxArity int) ([]byte, error) {
	if maxArity < 1 {
		return nil, eris.Errorf("max arity must be at least 1, got %d", maxArity)
	}

	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	tmpl, err := template.New("fetch").Parse(fetchTemplate)
	if err != nil {
		return nil, eris.Wrap(err, "parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return nil, eris.Wrap(err, "render template")
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "format generated code")
	}
	return src, nil
}

func main() {
	out := flag.String("out", "fetch_generated.go", "Output file.")
	maxArity := flag.Int("max", 10, "Largest fetch arity to generate.")
	flag.Parse()

	src, err := render(filepath.Base(*out), *maxArity)
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %d fetch arities to %s", *maxArity, *out)
}

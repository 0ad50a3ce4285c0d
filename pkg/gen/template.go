package gen

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"comment": comment,
	"indent":  indent,
}

// comment renders text as a line comment block.
func comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+line, " ")
	}
	return strings.Join(lines, "\n")
}

func indent(text string) string {
	return "\t" + strings.ReplaceAll(text, "\n", "\n\t")
}

var fileTemplate = template.Must(template.New("file").Funcs(funcs).Parse(fileTmpl))

const fileTmpl = `// Code generated by maparr{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.
{{- if .Header}}

{{comment .Header}}
{{- end}}

package {{.Package}}

import (
{{- range .Std}}
	{{printf "%q" .}}
{{- end}}

	{{.Runtime}}
)
{{range .Maps}}{{template "map" .}}{{end}}
{{- if .Literals}}
var (
{{- range .Literals}}{{template "literal" .}}{{end}}
)
{{- end}}
` + mapTmpl + literalTmpl

const mapTmpl = `{{define "map"}}
// {{.Size}} is the number of {{.Name}} keys.
const {{.Size}} = {{len .Keys}}

// {{.Key}} addresses one slot of a {{.Name}}. Its only values are the
// {{.Name}} key handles declared below.
type {{.Key}} struct {
	ord uint
}
{{- if .Keys}}

// {{.Name}} keys, in declaration order.
var (
{{- range .Keys}}
	{{.Ident}} = {{$.Key}}{ {{- .Index -}} }
{{- end}}
)
{{- end}}

var {{.NamesVar}} = [{{.Size}}]string{
{{- range .Keys}}
	{{printf "%q" .Name}},
{{- end}}
}

var {{.TableVar}} = keyset.MustTable({{printf "%q" .Name}}, {{.NamesVar}}[:]...)

// Index returns the position of k in declaration order.
func (k {{.Key}}) Index() int {
	return int(k.ord)
}

// Name returns k as it was declared.
func (k {{.Key}}) Name() string {
	return {{.NamesVar}}[k.ord]
}
{{- if .Stringer}}

func (k {{.Key}}) String() string {
	return {{.NamesVar}}[k.ord]
}
{{- end}}
{{- if .Text}}

// MarshalText implements encoding.TextMarshaler.
func (k {{.Key}}) MarshalText() ([]byte, error) {
	return []byte({{.NamesVar}}[k.ord]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *{{.Key}}) UnmarshalText(text []byte) error {
	parsed, err := {{.Parse}}(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
{{- end}}

// {{.Parse}} returns the {{.Name}} key declared as name.
func {{.Parse}}(name string) ({{.Key}}, error) {
	ord, err := {{.TableVar}}.Parse(name)
	if err != nil {
		return {{.Key}}{}, err
	}
	return {{.Key}}{ord}, nil
}

// {{.KeysFunc}} returns every {{.Name}} key in declaration order.
func {{.KeysFunc}}() [{{.Size}}]{{.Key}} {
	return [{{.Size}}]{{.Key}}{
{{- range .Keys}}
		{{$.Key}}{ {{- .Index -}} }, // {{.Name}}
{{- end}}
	}
}

// {{.NamesFunc}} returns the name of every {{.Name}} key in declaration order.
func {{.NamesFunc}}() [{{.Size}}]string {
	return {{.NamesVar}}
}

{{comment .Doc}}
type {{.Name}}{{.TypeDecl}} struct {
	list [{{.Size}}]{{.Elem}}
}

// {{.Entry}} pairs a {{.Name}} key with a value.
type {{.Entry}}{{.TypeDecl}} struct {
	Key   {{.Key}}
	Value {{.Elem}}
}

// {{.EntryOf}} returns the entry storing v under k.
func {{.EntryOf}}{{.TypeDecl}}(k {{.Key}}, v {{.Elem}}) {{.EntryRecv}} {
	return {{.EntryRecv}}{Key: k, Value: v}
}

// {{.New}} builds a {{.Name}} from one entry per key. The entry passed as
// parameter i must hold the key declared at position i; {{.New}} panics with
// a *keyset.Error naming the parameter otherwise.
func {{.New}}{{.TypeDecl}}(
{{- range $i, $k := .Keys}}{{if $i}}, {{end}}{{$k.Param}}{{end}}
{{- if .Keys}} {{.EntryRecv}}{{end}}) {{.Recv}} {
{{- range .Keys}}
	{{$.TableVar}}.MustParam({{.Index}}, {{.Param}}.Key.ord)
{{- end}}
	return {{.Recv}}{list: [{{.Size}}]{{.Elem}}{
{{- range .Keys}}
		{{.Param}}.Value,
{{- end}}
	}}
}

// {{.Literal}} builds a {{.Name}} from entries listed in declaration order,
// each key exactly once. It panics with a *keyset.Error when a key repeats,
// a key is out of place, or the list is too small or too big. No slot is
// written before the list passes.
func {{.Literal}}{{.TypeDecl}}(entries ...{{.EntryRecv}}) {{.Recv}} {
	ords := make([]uint, len(entries))
	for i, e := range entries {
		ords[i] = e.Key.ord
	}
	{{.TableVar}}.MustOrdinals(ords)

	var m {{.Recv}}
	for i, e := range entries {
		m.list[i] = e.Value
	}
	return m
}

// {{.Collect}} builds a {{.Name}} from entries given in any order, each key
// exactly once. It panics with a *keyset.Error when a key repeats or is
// missing.
func {{.Collect}}{{.TypeDecl}}(entries ...{{.EntryRecv}}) {{.Recv}} {
	ords := make([]uint, len(entries))
	for i, e := range entries {
		ords[i] = e.Key.ord
	}
	{{.TableVar}}.MustPermutation(ords)

	var m {{.Recv}}
	for _, e := range entries {
		m.list[e.Key.ord] = e.Value
	}
	return m
}

// Get returns the value stored under k.
func (m {{.Recv}}) Get(k {{.Key}}) {{.Elem}} {
	return m.list[k.ord]
}

// Ptr returns the slot of k, for updating its value in place.
func (m *{{.Recv}}) Ptr(k {{.Key}}) *{{.Elem}} {
	return &m.list[k.ord]
}

// Set stores v under k.
func (m *{{.Recv}}) Set(k {{.Key}}, v {{.Elem}}) {
	m.list[k.ord] = v
}

// All yields each key with its value, in declaration order.
func (m {{.Recv}}) All() iter.Seq2[{{.Key}}, {{.Elem}}] {
	return func(yield func({{.Key}}, {{.Elem}}) bool) {
		for i, v := range m.list {
			if !yield({{.Key}}{uint(i)}, v) {
				return
			}
		}
	}
}

// Values yields each value in declaration order.
func (m {{.Recv}}) Values() iter.Seq[{{.Elem}}] {
	return func(yield func({{.Elem}}) bool) {
		for _, v := range m.list {
			if !yield(v) {
				return
			}
		}
	}
}

// AllPtr yields each key with a pointer to its slot, in declaration order.
func (m *{{.Recv}}) AllPtr() iter.Seq2[{{.Key}}, *{{.Elem}}] {
	return func(yield func({{.Key}}, *{{.Elem}}) bool) {
		for i := range m.list {
			if !yield({{.Key}}{uint(i)}, &m.list[i]) {
				return
			}
		}
	}
}

// Array returns a copy of the values in declaration order.
func (m {{.Recv}}) Array() [{{.Size}}]{{.Elem}} {
	return m.list
}

// Slice returns the values in declaration order. The slice shares storage
// with m.
func (m *{{.Recv}}) Slice() []{{.Elem}} {
	return m.list[:]
}

// Len returns {{.Size}}.
func (m {{.Recv}}) Len() int {
	return {{.Size}}
}

// IsEmpty reports whether {{.Name}} declares no keys.
func (m {{.Recv}}) IsEmpty() bool {
	return {{.Size}} == 0
}

// Keys returns every key in declaration order.
func (m {{.Recv}}) Keys() [{{.Size}}]{{.Key}} {
	return {{.KeysFunc}}()
}

// Names returns every key name in declaration order.
func (m {{.Recv}}) Names() [{{.Size}}]string {
	return {{.NamesVar}}
}
{{- if .HasSum}}

// Sum adds the values of m in declaration order.
func (m {{.Recv}}) Sum() {{.Elem}} {
	return keyset.Sum(m.list[:])
}
{{- end}}
{{- if .Stringer}}

func (m {{.Recv}}) String() string {
	var b strings.Builder
	b.WriteString({{printf "%q" .Name}})
	b.WriteByte('{')
	for i, v := range m.list {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", {{.NamesVar}}[i], v)
	}
	b.WriteByte('}')
	return b.String()
}
{{- end}}
{{- if .Generic}}

// {{.MapFunc}} returns a {{.Name}} holding f applied to each value of m, in
// declaration order.
func {{.MapFunc}}[{{.MapIn}}, {{.MapOut}} any](m {{.Name}}[{{.MapIn}}], f func({{.MapIn}}) {{.MapOut}}) {{.Name}}[{{.MapOut}}] {
	var out {{.Name}}[{{.MapOut}}]
	for i, v := range m.list {
		out.list[i] = f(v)
	}
	return out
}

// {{.SumFunc}} adds the values of m in declaration order.
func {{.SumFunc}}[{{.MapIn}} keyset.Number](m {{.Name}}[{{.MapIn}}]) {{.MapIn}} {
	return keyset.Sum(m.list[:])
}
{{- end}}
{{end}}`

const literalTmpl = `{{define "literal"}}
{{comment .Doc | indent}}
	{{.Name}} = {{.Type}}{list: [{{.Size}}]{{.Elem}}{
{{- range .Entries}}
		{{.Expr}}, // {{.Key}}
{{- end}}
	}}
{{- end}}`

package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/ssargent/maparr/pkg/schema"
)

// numericTypes get a Sum method on fixed maps without sum: true.
var numericTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
	"byte": true, "rune": true,
}

// typeParamNames are tried in order for the generic value parameter; the
// first one that is neither a key nor the map name wins, since keys become
// constructor parameters.
var typeParamNames = []string{"T", "V", "E", "Elem", "Value"}

// mapParamNames name the input and output type parameters of MapM.
var mapParamNames = []string{"T", "U", "V", "W"}

// receiverName is the receiver of every generated method. A fixed value type
// must not refer to it, since method bodies spell out the value type.
const receiverName = "m"

// bodyLocals are declared by generated function bodies that later spell out
// the container type, so no map may take one of these names.
var bodyLocals = []string{receiverName, "f", "entries", "ords"}

// pickName returns the first candidate not taken, or the first candidate
// with the smallest numeric suffix that is free.
func pickName(candidates []string, taken func(string) bool) string {
	for _, c := range candidates {
		if !taken(c) {
			return c
		}
	}
	for i := 0; ; i++ {
		c := candidates[0] + strconv.Itoa(i)
		if !taken(c) {
			return c
		}
	}
}

// typeIdents lists the identifiers a type expression refers to.
func typeIdents(expr string) []string {
	if expr == "" {
		return nil
	}
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return nil
	}
	var ids []string
	ast.Inspect(x, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && !slices.Contains(ids, id.Name) {
			ids = append(ids, id.Name)
		}
		return true
	})
	return ids
}

type fileModel struct {
	Source   string
	Header   string
	Package  string
	Std      []string
	Runtime  string // import line for keyset, alias included when needed
	Maps     []*mapModel
	Literals []*literalModel
}

type keyModel struct {
	Name  string // as declared
	Ident string // package-level handle value
	Param string // constructor parameter name
	Index int
}

type mapModel struct {
	Name      string
	Doc       string
	Generic   bool
	TypeParam string
	Elem      string
	Recv      string // container type as written in receivers
	TypeDecl  string // type parameter list, empty for fixed maps
	MapIn     string // type parameters of MapFunc
	MapOut    string
	ElemIdent []string // identifiers the fixed value type refers to

	Size      string
	Key       string
	Entry     string
	EntryRecv string
	EntryOf   string
	New       string
	Literal   string
	Collect   string
	MapFunc   string
	SumFunc   string
	KeysFunc  string
	NamesFunc string
	Parse     string
	NamesVar  string
	TableVar  string

	HasSum   bool
	Stringer bool
	Text     bool
	Keys     []keyModel
}

type literalModel struct {
	Name    string
	Doc     string
	Map     string
	Type    string
	Elem    string
	Size    string
	Entries []schema.Entry
}

// ident joins a prefix and a name into one identifier that keeps the
// export status of the map: ident("New", "planets") == "newPlanets".
func ident(exported bool, parts ...string) string {
	var b strings.Builder
	for i, p := range parts {
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(upperFirst(p))
	}
	s := b.String()
	if exported {
		return upperFirst(s)
	}
	return lowerFirst(s)
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

func newMapModel(m schema.Map) *mapModel {
	exp := m.Exported()
	name := m.Name

	mm := &mapModel{
		Name:      name,
		Doc:       m.Doc,
		Generic:   m.Generic(),
		Size:      name + "Size",
		Key:       name + "Key",
		Entry:     name + "Entry",
		EntryOf:   name + "EntryOf",
		New:       ident(exp, "new", name),
		Literal:   name + "Literal",
		Collect:   ident(exp, "collect", name),
		KeysFunc:  name + "Keys",
		NamesFunc: name + "Names",
		Parse:     ident(exp, "parse", name, "Key"),
		NamesVar:  "_" + name + "_names",
		TableVar:  "_" + name + "_table",
		Stringer:  m.Derives(schema.DeriveStringer),
		Text:      m.Derives(schema.DeriveText),
	}
	if mm.Doc == "" {
		mm.Doc = fmt.Sprintf("%s is a fixed-size map from the %s keys to values, backed by an array.", name, name)
	}

	if mm.Generic {
		mm.TypeParam = pickName(typeParamNames, func(tp string) bool {
			return tp == name || slices.Contains(m.Keys, tp)
		})
		params := slices.DeleteFunc(slices.Clone(mapParamNames), func(tp string) bool { return tp == name })
		mm.MapIn, mm.MapOut = params[0], params[1]
		mm.Elem = mm.TypeParam
		mm.TypeDecl = "[" + mm.TypeParam + " any]"
		mm.Recv = name + "[" + mm.TypeParam + "]"
		mm.EntryRecv = mm.Entry + "[" + mm.TypeParam + "]"
		mm.MapFunc = ident(exp, "map", name)
		mm.SumFunc = ident(exp, "sum", name)
	} else {
		mm.Elem = m.Value
		mm.ElemIdent = typeIdents(m.Value)
		mm.Recv = name
		mm.EntryRecv = mm.Entry
		mm.HasSum = m.Sum || numericTypes[m.Value]
	}

	// Parameters must not shadow what the constructor body refers to, and
	// renaming must not make two of them equal.
	used := map[string]bool{mm.TypeParam: true, "keyset": true, name: true, mm.Size: true, mm.TableVar: true}
	for _, id := range mm.ElemIdent {
		used[id] = true
	}
	for i, key := range m.Keys {
		param := key
		for used[param] {
			param += "_"
		}
		used[param] = true
		mm.Keys = append(mm.Keys, keyModel{
			Name:  key,
			Ident: name + upperFirst(key),
			Param: param,
			Index: i,
		})
	}
	return mm
}

func newLiteralModel(l schema.Literal, m *mapModel) *literalModel {
	lm := &literalModel{
		Name:    l.Name,
		Doc:     l.Doc,
		Map:     m.Name,
		Size:    m.Size,
		Entries: l.Entries,
	}
	if m.Generic {
		lm.Elem = l.Type
		lm.Type = m.Name + "[" + l.Type + "]"
	} else {
		lm.Elem = m.Elem
		lm.Type = m.Name
	}
	if lm.Doc == "" {
		lm.Doc = fmt.Sprintf("%s holds one value per %s key, in declaration order.", l.Name, m.Name)
	}
	return lm
}

type declared struct {
	id    string
	owner string
}

// identifiers lists the package-level names m declares.
func (m *mapModel) identifiers() []declared {
	owner := "map " + m.Name
	ids := []string{
		m.Name, m.Size, m.Key, m.Entry, m.EntryOf, m.New, m.Literal, m.Collect,
		m.KeysFunc, m.NamesFunc, m.Parse, m.NamesVar, m.TableVar,
	}
	if m.Generic {
		ids = append(ids, m.MapFunc, m.SumFunc)
	}

	out := make([]declared, 0, len(ids)+len(m.Keys))
	for _, id := range ids {
		out = append(out, declared{id: id, owner: owner})
	}
	for _, k := range m.Keys {
		out = append(out, declared{id: k.Ident, owner: "key " + k.Name + " of " + owner})
	}
	return out
}

// buildModel turns a validated file into template data. It fails when two
// declarations would generate the same package-level identifier.
func buildModel(f *schema.File, opts Options) (*fileModel, error) {
	fm := &fileModel{
		Header:  opts.Header,
		Package: f.Package,
		Std:     []string{"iter"},
	}
	if f.Path != "" {
		fm.Source = filepath.Base(f.Path)
	}

	runtime := opts.RuntimeImport
	if runtime == "" {
		runtime = DefaultRuntimeImport
	}
	fm.Runtime = fmt.Sprintf("%q", runtime)
	if path.Base(runtime) != "keyset" {
		fm.Runtime = "keyset " + fm.Runtime
	}

	owners := map[string]string{
		"keyset": "import keyset",
		"iter":   "import iter",
	}
	var result *multierror.Error
	claim := func(id, owner string) {
		if prev, taken := owners[id]; taken {
			result = multierror.Append(result, fmt.Errorf("identifier %s is generated for both %s and %s", id, prev, owner))
			return
		}
		owners[id] = owner
	}

	maps := make(map[string]*mapModel, len(f.Maps))
	stringer := false
	for _, m := range f.Maps {
		mm := newMapModel(m)
		for _, d := range mm.identifiers() {
			claim(d.id, d.owner)
		}
		if slices.Contains(bodyLocals, m.Name) {
			result = multierror.Append(result, fmt.Errorf("map name %s is a local name in generated code", m.Name))
		}
		if slices.Contains(mm.ElemIdent, receiverName) {
			result = multierror.Append(result, fmt.Errorf("value type %s of map %s refers to %s, the receiver of generated methods",
				m.Value, m.Name, receiverName))
		}
		if mm.Stringer {
			stringer = true
		}
		maps[m.Name] = mm
		fm.Maps = append(fm.Maps, mm)
	}
	if stringer {
		for _, pkg := range []string{"fmt", "strings"} {
			claim(pkg, "import "+pkg)
		}
		fm.Std = append(fm.Std, "fmt", "strings")
		slices.Sort(fm.Std)
	}

	for _, l := range f.Literals {
		lm := newLiteralModel(l, maps[l.Map])
		claim(lm.Name, "literal "+l.Name)
		fm.Literals = append(fm.Literals, lm)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return fm, nil
}

package scope

import (
	"fmt"
	"sort"

	"github.com/npillmayer/gopred"
)

// --- Tags -------------------------------------------------------

// Tag is a declared name of a tinylang program. Grammar symbols are called
// symbols, names in programs are called tags.
type Tag struct {
	name  string
	Kind  TagKind
	Typ   string          // "int" or "double"
	Arity int             // number of parameters, for functions
	Pos   gopred.Position // position of the declaration
}

// TagKind tells what a name has been declared as.
type TagKind int8

// Kinds of declared names.
const (
	Variable TagKind = iota
	Array
	Parameter
	Function
)

func (k TagKind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Array:
		return "array"
	case Parameter:
		return "parameter"
	case Function:
		return "function"
	}
	return fmt.Sprintf("TagKind(%d)", k)
}

// NewTag returns a tag for name nm.
func NewTag(nm string, kind TagKind) *Tag {
	return &Tag{name: nm, Kind: kind}
}

// WithType sets the value type and returns the tag:
//
//    tag := NewTag("x", Variable).WithType("double")
//
func (s *Tag) WithType(t string) *Tag {
	s.Typ = t
	return s
}

func (s *Tag) String() string {
	return fmt.Sprintf("<%s %s '%s'>", s.Kind, s.Typ, s.Name())
}

// Name is the declared name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable maps names to tags.
type SymbolTable struct {
	tags map[string]*Tag
}

// NewSymbolTable returns a symbol table without entries.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{tags: make(map[string]*Tag)}
}

// ResolveTag returns the tag stored for name, or nil.
func (t *SymbolTable) ResolveTag(name string) *Tag {
	return t.tags[name]
}

// InsertTag stores tag under its name and returns the tag it replaces, if any.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	prev := t.tags[tag.name]
	t.tags[tag.name] = tag
	return prev
}

// Size is the number of names in t.
func (t *SymbolTable) Size() int {
	return len(t.tags)
}

// Each calls f for every tag, sorted by name.
func (t *SymbolTable) Each(f func(string, *Tag)) {
	names := make([]string, 0, len(t.tags))
	for name := range t.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f(name, t.tags[name])
	}
}

// === Scopes ================================================================

// Scope holds the declarations of a program or of a function body.
// A function scope has the program scope as its parent.
type Scope struct {
	Name   string
	Parent *Scope
	tags   *SymbolTable
}

// NewScope creates a scope nested in parent. parent may be nil.
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{Name: name, Parent: parent, tags: NewSymbolTable()}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the names declared directly in s.
func (s *Scope) Tags() *SymbolTable {
	return s.tags
}

// DefineTag declares tag in s. A previous declaration of the same name in s
// is returned.
func (s *Scope) DefineTag(tag *Tag) *Tag {
	return s.tags.InsertTag(tag)
}

// ResolveTag looks up name in s and then in its enclosing scopes. It returns
// the tag together with the scope declaring it, or (nil, nil).
func (s *Scope) ResolveTag(name string) (*Tag, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if tag := sc.tags.ResolveTag(name); tag != nil {
			return tag, sc
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree is the stack of open scopes while walking a parse tree. The first
// scope pushed is the global scope.
type ScopeTree struct {
	globals *Scope
	top     *Scope
}

// Current is the innermost open scope. It panics if no scope is open.
func (st *ScopeTree) Current() *Scope {
	if st.top == nil {
		panic("scope: no open scope")
	}
	return st.top
}

// Globals is the global scope. It panics if it has not been pushed yet.
func (st *ScopeTree) Globals() *Scope {
	if st.globals == nil {
		panic("scope: no global scope")
	}
	return st.globals
}

// PushNewScope opens a scope nested in the current one.
func (st *ScopeTree) PushNewScope(name string) *Scope {
	sc := NewScope(name, st.top)
	if st.top == nil {
		st.globals = sc
	}
	st.top = sc
	tracer().Debugf("open scope [%s]", name)
	return sc
}

// PopScope closes the innermost scope and returns it.
func (st *ScopeTree) PopScope() *Scope {
	sc := st.Current()
	tracer().Debugf("close scope [%s]", sc.Name)
	st.top = sc.Parent
	return sc
}

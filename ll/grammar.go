package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/gopred"
)

// === Rules =================================================================

// Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
type Rule struct {
	Serial int     // order number of this rule within a grammar
	LHS    *Symbol // symbol of left hand side
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. The returned slice must not
// be modified.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// Len returns the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEps is true for epsilon-rules, i.e. rules with an empty right hand side.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(r.LHS.Name)
	b.WriteString("] ::= [")
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

func (r *Rule) sameAs(lhs *Symbol, rhs []*Symbol) bool {
	if r.LHS != lhs || len(r.rhs) != len(rhs) {
		return false
	}
	for i, A := range r.rhs {
		if A != rhs[i] {
			return false
		}
	}
	return true
}

// === Grammars ==============================================================

// Grammar is a type for a context-free grammar. Grammars are created by a
// GrammarBuilder or read from BNF. Once created, a grammar is read-only and
// may be shared between goroutines.
type Grammar struct {
	Name         string
	rules        []*Rule
	start        *Symbol
	eof          *Symbol
	terminals    *treemap.Map      // token type => terminal, sorted by token type
	termNames    map[string]*Symbol // terminal name => terminal
	nonterminals []*Symbol          // indexed by serial number
	ntNames      map[string]*Symbol // non-terminal name => non-terminal
	alternatives [][]*Rule          // rules per non-terminal, indexed by serial number
	nullable     []bool             // epsilon-derivable non-terminals, indexed by serial number
}

// Size returns the number of rules in a grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules in order. The returned slice must not be modified.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Start returns the start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// EOF returns the end of input terminal.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// ProductionsFor returns the alternatives for non-terminal A, in order of
// declaration.
func (g *Grammar) ProductionsFor(A *Symbol) []*Rule {
	if A == nil || A.IsTerminal() || A.Value >= len(g.alternatives) {
		return nil
	}
	return g.alternatives[A.Value]
}

// Terminal returns the terminal for a token type, or nil.
func (g *Grammar) Terminal(tt gopred.TokType) *Symbol {
	if A, found := g.terminals.Get(int(tt)); found {
		return A.(*Symbol)
	}
	return nil
}

// TerminalByName returns the terminal with the given name, or nil.
func (g *Grammar) TerminalByName(name string) *Symbol {
	return g.termNames[name]
}

// NonTerminal returns the non-terminal with the given name, or nil.
func (g *Grammar) NonTerminal(name string) *Symbol {
	return g.ntNames[name]
}

// SymbolByName finds a terminal or non-terminal by name.
func (g *Grammar) SymbolByName(name string) *Symbol {
	if A := g.ntNames[name]; A != nil {
		return A
	}
	return g.termNames[name]
}

// TerminalCount returns the number of terminals, including end of input.
func (g *Grammar) TerminalCount() int {
	return g.terminals.Size()
}

// NonTerminalCount returns the number of non-terminals.
func (g *Grammar) NonTerminalCount() int {
	return len(g.nonterminals)
}

// EachTerminal iterates over all terminals (sorted by token type) and calls
// mapper for each. Non-nil results are collected into the returned slice.
func (g *Grammar) EachTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	it := g.terminals.Iterator()
	for it.Next() {
		if v := mapper(it.Value().(*Symbol)); v != nil {
			r = append(r, v)
		}
	}
	return r
}

// EachNonTerminal iterates over all non-terminals (by serial number) and calls
// mapper for each. Non-nil results are collected into the returned slice.
func (g *Grammar) EachNonTerminal(mapper func(N *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, N := range g.nonterminals {
		if v := mapper(N); v != nil {
			r = append(r, v)
		}
	}
	return r
}

// EachSymbol iterates over all non-terminals and then over all terminals.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	r := g.EachNonTerminal(mapper)
	return append(r, g.EachTerminal(mapper)...)
}

// IsNullable is true if non-terminal A derives the empty word.
func (g *Grammar) IsNullable(A *Symbol) bool {
	if A == nil || A.IsTerminal() || A.Value >= len(g.nullable) {
		return false
	}
	return g.nullable[A.Value]
}

// IsNullableBody is true if a sequence of symbols (usually the tail of a
// right hand side) derives the empty word. The empty sequence is nullable.
func (g *Grammar) IsNullableBody(tail []*Symbol) bool {
	for _, A := range tail {
		if !g.IsNullable(A) {
			return false
		}
	}
	return true
}

// computeNullable finds all epsilon-derivable non-terminals, iterating to a
// fixpoint.
func (g *Grammar) computeNullable() {
	g.nullable = make([]bool, len(g.nonterminals))
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for _, r := range g.rules {
			if !g.nullable[r.LHS.Value] && g.IsNullableBody(r.rhs) {
				g.nullable[r.LHS.Value] = true
				changed = true
			}
		}
	}
	tracer().Debugf("nullable non-terminals settled after %d passes", passes)
}

// Dump is a debugging helper, writing the rules of a grammar to the trace.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("Start symbol: %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// === Grammar Builder =======================================================

// symref is a reference to a symbol by name, resolved when the grammar is built.
type symref struct {
	name   string
	kind   refKind
	tokval gopred.TokType
}

type refKind uint8

const (
	refNonTerm refKind = iota // explicit non-terminal
	refTerm                   // explicit terminal
	refAny                    // resolved by declarations
)

type ruleDef struct {
	lhs  string
	rhs  []symref
	line int // source line for BNF rules, 0 otherwise
}

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder, add rules and call Grammar() to receive the grammar.
type GrammarBuilder struct {
	name      string
	rules     []ruleDef
	terms     map[string]gopred.TokType
	termOrder []string
	start     string
	problems  []string
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  gname,
		terms: make(map[string]gopred.TokType),
	}
}

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	gb   *GrammarBuilder
	def ruleDef
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	return &RuleBuilder{gb: gb, def: ruleDef{lhs: s}}
}

// Terminal declares a terminal without using it in a rule.
// Declarations are checked for consistency: a name may not be bound to two
// different token values and vice versa.
func (gb *GrammarBuilder) Terminal(s string, tokval int) *GrammarBuilder {
	gb.declare(s, gopred.TokType(tokval))
	return gb
}

// StartWith sets the start symbol. If not set, the left hand side of the
// first rule is the start symbol.
func (gb *GrammarBuilder) StartWith(s string) *GrammarBuilder {
	gb.start = s
	return gb
}

func (gb *GrammarBuilder) problem(format string, args ...interface{}) {
	gb.problems = append(gb.problems, fmt.Sprintf(format, args...))
}

func (gb *GrammarBuilder) declare(s string, tokval gopred.TokType) {
	if s == "" {
		gb.problem("terminal without a name")
		return
	}
	switch tokval {
	case gopred.Epsilon:
		gb.problem("terminal %q uses token value %d, which is reserved for epsilon", s, tokval)
		return
	case gopred.EOF:
		gb.problem("terminal %q uses token value %d, which is reserved for end of input", s, tokval)
		return
	}
	if v, ok := gb.terms[s]; ok {
		if v != tokval {
			gb.problem("terminal %q declared with token values %d and %d", s, v, tokval)
		}
		return
	}
	for _, other := range gb.termOrder {
		if gb.terms[other] == tokval {
			gb.problem("terminals %q and %q share token value %d", other, s, tokval)
			return
		}
	}
	gb.terms[s] = tokval
	gb.termOrder = append(gb.termOrder, s)
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.def.rhs = append(rb.def.rhs, symref{name: s, kind: refNonTerm})
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(s string, tokval int) *RuleBuilder {
	rb.gb.declare(s, gopred.TokType(tokval))
	rb.def.rhs = append(rb.def.rhs, symref{name: s, kind: refTerm, tokval: gopred.TokType(tokval)})
	return rb
}

// S appends a symbol which will be resolved when the grammar is built:
// it is a non-terminal if a rule for it exists, otherwise it has to be a
// declared terminal.
func (rb *RuleBuilder) S(s string) *RuleBuilder {
	rb.def.rhs = append(rb.def.rhs, symref{name: s, kind: refAny})
	return rb
}

// End closes a rule.
func (rb *RuleBuilder) End() {
	rb.gb.rules = append(rb.gb.rules, rb.def)
}

// Epsilon sets epsilon as the RHS of a production and closes the rule.
// Symbols appended before are discarded.
func (rb *RuleBuilder) Epsilon() {
	rb.def.rhs = nil
	rb.End()
}

// Grammar returns the grammar made up of the rules added so far.
// It returns an error wrapping ErrMalformedGrammar if the rules reference
// undefined symbols, if there is no start rule, or if terminal declarations
// are inconsistent. Duplicate rules are dropped.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := &Grammar{
		Name:      gb.name,
		eof:       newEOF(),
		terminals: treemap.NewWithIntComparator(),
		termNames: make(map[string]*Symbol),
		ntNames:   make(map[string]*Symbol),
	}
	problems := append([]string(nil), gb.problems...)
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	if len(gb.rules) == 0 {
		fail("grammar has no rules")
	}
	for _, def := range gb.rules { // non-terminals in order of first appearance
		if def.lhs == "" {
			fail("rule without a left hand side")
			continue
		}
		if _, ok := g.ntNames[def.lhs]; !ok {
			N := newNonTerminal(def.lhs, len(g.nonterminals))
			g.nonterminals = append(g.nonterminals, N)
			g.ntNames[def.lhs] = N
		}
	}
	g.terminals.Put(int(gopred.EOF), g.eof)
	g.termNames[EOFName] = g.eof
	for _, name := range gb.termOrder {
		if _, clash := g.ntNames[name]; clash {
			fail("symbol %q is used as terminal and non-terminal", name)
			continue
		}
		A := newTerminal(name, gb.terms[name])
		g.terminals.Put(A.Value, A)
		g.termNames[name] = A
	}
	col := 0
	g.EachTerminal(func(A *Symbol) interface{} {
		A.col = col
		col++
		return nil
	})
	g.alternatives = make([][]*Rule, len(g.nonterminals))
	for _, def := range gb.rules {
		lhs := g.ntNames[def.lhs]
		if lhs == nil {
			continue
		}
		rhs, ok := gb.resolve(g, def, fail)
		if !ok {
			continue
		}
		if dup := g.findRule(lhs, rhs); dup != nil {
			tracer().Infof("warning: dropping duplicate of rule %d %v", dup.Serial, dup)
			continue
		}
		r := &Rule{Serial: len(g.rules), LHS: lhs, rhs: rhs}
		g.rules = append(g.rules, r)
		g.alternatives[lhs.Value] = append(g.alternatives[lhs.Value], r)
	}
	if gb.start != "" {
		g.start = g.ntNames[gb.start]
		if g.start == nil {
			fail("start symbol %q has no rules", gb.start)
		}
	} else if len(g.nonterminals) > 0 {
		g.start = g.nonterminals[0]
	}
	if len(problems) > 0 {
		for _, p := range problems {
			tracer().Errorf("grammar %q: %s", gb.name, p)
		}
		return nil, &GrammarError{Grammar: gb.name, Problems: problems}
	}
	g.computeNullable()
	return g, nil
}

func (gb *GrammarBuilder) resolve(g *Grammar, def ruleDef, fail func(string, ...interface{})) ([]*Symbol, bool) {
	where := ""
	if def.line > 0 {
		where = fmt.Sprintf(" (line %d)", def.line)
	}
	rhs := make([]*Symbol, 0, len(def.rhs))
	ok := true
	for _, ref := range def.rhs {
		if ref.name == EOFName || ref.name == "$" {
			fail("end of input marker in rule for %s%s", def.lhs, where)
			ok = false
			continue
		}
		var A *Symbol
		switch ref.kind {
		case refNonTerm:
			if A = g.ntNames[ref.name]; A == nil {
				fail("undefined non-terminal %q in rule for %s%s", ref.name, def.lhs, where)
			}
		case refTerm:
			if A = g.termNames[ref.name]; A == nil && gb.terms[ref.name] == 0 {
				fail("undeclared terminal %q in rule for %s%s", ref.name, def.lhs, where)
			} // otherwise the declaration problem has been reported already
		case refAny:
			if A = g.SymbolByName(ref.name); A == nil {
				fail("symbol %q in rule for %s is neither a declared terminal nor a non-terminal%s",
					ref.name, def.lhs, where)
			}
		}
		if A == nil {
			ok = false
			continue
		}
		rhs = append(rhs, A)
	}
	return rhs, ok
}

func (g *Grammar) findRule(lhs *Symbol, rhs []*Symbol) *Rule {
	for _, r := range g.alternatives[lhs.Value] {
		if r.sameAs(lhs, rhs) {
			return r
		}
	}
	return nil
}

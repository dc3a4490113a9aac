package predictive

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll"
)

// Node is a node of a parse tree. Non-terminal nodes carry the rule they
// have been expanded with, terminal nodes carry the matched input token.
type Node struct {
	Symbol   *ll.Symbol
	Rule     *ll.Rule     // rule for non-terminals
	Token    gopred.Token // token for terminals
	Children []*Node
	Span     gopred.Span // input span covered, null for epsilon-derivations
	parent   *Node
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf is true for terminal nodes and for non-terminals expanded with an
// epsilon-rule.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) computeSpans() gopred.Span {
	if n.Symbol.IsTerminal() {
		if n.Token != nil {
			n.Span = n.Token.Span()
		}
		return n.Span
	}
	var span gopred.Span
	for _, ch := range n.Children {
		span = span.Extend(ch.computeSpans())
	}
	n.Span = span
	return span
}

// Tokens returns the input tokens of the leaves of the tree, left to right.
func (n *Node) Tokens() []gopred.Token {
	var tokens []gopred.Token
	n.collect(&tokens)
	return tokens
}

func (n *Node) collect(tokens *[]gopred.Token) {
	if n.Symbol.IsTerminal() {
		if n.Token != nil {
			*tokens = append(*tokens, n.Token)
		}
		return
	}
	for _, ch := range n.Children {
		ch.collect(tokens)
	}
}

func (n *Node) String() string {
	if n.Token != nil {
		return fmt.Sprintf("%s %q", n.Symbol, n.Token.Lexeme())
	}
	return n.Symbol.String()
}

// Indented returns a multi-line representation of the tree below n, one node
// per line, indented by depth.
func (n *Node) Indented() string {
	var b strings.Builder
	n.Each(func(node *Node, level int) {
		b.WriteString(strings.Repeat("  ", level))
		b.WriteString(node.String())
		b.WriteString("\n")
	})
	return b.String()
}

// Each calls f for all nodes of the tree in pre-order, together with the depth
// of the node (0 for n).
func (n *Node) Each(f func(node *Node, level int)) {
	n.each(f, 0)
}

func (n *Node) each(f func(*Node, int), level int) {
	f(n, level)
	for _, ch := range n.Children {
		ch.each(f, level+1)
	}
}

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking a parse tree.
type Listener interface {
	Reduce(sym *ll.Symbol, rule int, rhs []*RuleNode, span gopred.Span, level int) interface{}
	Terminal(tokenValue int, token gopred.Token, span gopred.Span, level int) interface{}
}

// RuleNode represents a node occuring during a parse tree walk.
type RuleNode struct {
	sym    *ll.Symbol
	Extent gopred.Span // span of intput symbols this rule reduced
	Value  interface{} // user defined value
}

// Symbol returns the grammar symbol a RuleNode refers to.
// It is either a terminal or the LHS of a reduced rule.
func (rnode *RuleNode) Symbol() *ll.Symbol {
	return rnode.sym
}

// Walk walks the parse tree bottom-up, i.e. children before parents. It uses
// a listener, which gets called for every terminal and for every non-terminal
// expansion. The values returned by the listener are handed upwards in the
// RuleNodes of the rhs argument. Walk returns the RuleNode of n.
func (n *Node) Walk(listener Listener) *RuleNode {
	tracer().Debugf("=== Walk ===============================")
	return n.walk(listener, 0)
}

func (n *Node) walk(listener Listener, level int) *RuleNode {
	if n.Symbol.IsTerminal() {
		value := listener.Terminal(n.Symbol.Value, n.Token, n.Span, level)
		return &RuleNode{sym: n.Symbol, Extent: n.Span, Value: value}
	}
	rhs := make([]*RuleNode, len(n.Children))
	for i, ch := range n.Children {
		rhs[i] = ch.walk(listener, level+1)
	}
	serial := -1
	if n.Rule != nil {
		serial = n.Rule.Serial
	}
	value := listener.Reduce(n.Symbol, serial, rhs, n.Span, level)
	return &RuleNode{sym: n.Symbol, Extent: n.Span, Value: value}
}

package scope

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll/predictive"
)

// Kinds of declaration errors. Test for them with errors.Is.
var (
	ErrUndeclared            = errors.New("undeclared")
	ErrRedeclared            = errors.New("already declared in this scope")
	ErrNotAFunction          = errors.New("not a function")
	ErrNotAVariable          = errors.New("not a variable")
	ErrNotAnArray            = errors.New("not an array")
	ErrArity                 = errors.New("wrong number of arguments")
	ErrReturnOutsideFunction = errors.New("return outside of function")
	ErrNoProgram             = errors.New("not a tinylang program")
)

// DeclarationError reports a problem with a name of a program.
type DeclarationError struct {
	Err  error
	Name string
	Pos  gopred.Position
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Pos, e.Name, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

type checker struct {
	scopes ScopeTree
	fn     *Tag // function currently checked, nil for the main program
	errs   []error
}

// Check checks the declarations of a program, given as a parse tree with
// root symbol Program. It returns the global scope and all problems found,
// in order of occurrence.
func Check(tree *predictive.Node) (*Scope, []error) {
	if tree == nil || tree.Symbol.Name != "Program" {
		return nil, []error{ErrNoProgram}
	}
	c := &checker{}
	globals := c.scopes.PushNewScope("globals")
	c.walk(tree)
	tracer().Infof("program declares %d global names, %d problems", globals.Tags().Size(), len(c.errs))
	return globals, c.errs
}

func (c *checker) fail(err error, name string, pos gopred.Position) {
	derr := &DeclarationError{Err: err, Name: name, Pos: pos}
	tracer().Debugf("%v", derr)
	c.errs = append(c.errs, derr)
}

func (c *checker) walk(n *predictive.Node) {
	switch n.Symbol.Name {
	case "FuncDef":
		c.funcDef(n)
		return
	case "Decl":
		c.decl(n)
		return
	case "Var":
		c.variable(n)
		return
	case "Factor":
		if first := n.Children[0]; first.Symbol.Name == "id" {
			c.factor(first, n.Children[1])
			return
		}
	case "Stmt":
		if len(n.Children) > 0 && n.Children[0].Symbol.Name == "return" && c.fn == nil {
			c.fail(ErrReturnOutsideFunction, "return", n.Children[0].Token.Pos())
		}
	}
	c.walkChildren(n)
}

func (c *checker) walkChildren(n *predictive.Node) {
	for _, ch := range n.Children {
		c.walk(ch)
	}
}

// define declares a tag in the current scope.
func (c *checker) define(tag *Tag) {
	sc := c.scopes.Current()
	if old := sc.Tags().ResolveTag(tag.Name()); old != nil {
		c.fail(ErrRedeclared, tag.Name(), tag.Pos)
		return
	}
	sc.DefineTag(tag)
}

// FuncDef ::= def type id ( Params ) Declarations StmtSeq fed
func (c *checker) funcDef(n *predictive.Node) {
	id := n.Children[2].Token
	fn := NewTag(id.Lexeme(), Function).WithType(n.Children[1].Token.Lexeme())
	fn.Pos = id.Pos()
	params := flatten(n.Children[4], "ParamsRest")
	c.define(fn)
	c.scopes.PushNewScope(fn.Name())
	outer := c.fn
	c.fn = fn
	for i, p := range params {
		if p.Symbol.Name != "id" {
			continue
		}
		tag := NewTag(p.Token.Lexeme(), Parameter).WithType(params[i-1].Token.Lexeme())
		tag.Pos = p.Token.Pos()
		c.define(tag)
		fn.Arity++
	}
	c.walk(n.Children[6])
	c.walk(n.Children[7])
	c.fn = outer
	c.scopes.PopScope()
}

// Decl ::= type VarList
func (c *checker) decl(n *predictive.Node) {
	typ := n.Children[0].Token.Lexeme()
	for _, v := range flatten(n.Children[1], "VarListRest") {
		if v.Symbol.Name != "Var" {
			continue
		}
		id, index := v.Children[0].Token, v.Children[1]
		kind := Variable
		if !index.IsLeaf() {
			kind = Array
			c.walk(index)
		}
		tag := NewTag(id.Lexeme(), kind).WithType(typ)
		tag.Pos = id.Pos()
		c.define(tag)
	}
}

// Var ::= id VarIndex, used as the target of an assignment
func (c *checker) variable(n *predictive.Node) {
	id, index := n.Children[0].Token, n.Children[1]
	tag := c.resolve(id)
	if tag != nil {
		if tag.Kind == Function {
			c.fail(ErrNotAVariable, id.Lexeme(), id.Pos())
		} else if !index.IsLeaf() && tag.Kind != Array {
			c.fail(ErrNotAnArray, id.Lexeme(), id.Pos())
		}
	}
	c.walk(index)
}

// Factor ::= id FactorRest, with FactorRest ::= [ Expr ] | ( Args ) | ε
func (c *checker) factor(idNode, rest *predictive.Node) {
	id := idNode.Token
	tag := c.resolve(id)
	switch {
	case rest.IsLeaf():
		if tag != nil && tag.Kind == Function {
			c.fail(ErrNotAVariable, id.Lexeme(), id.Pos())
		}
	case rest.Children[0].Symbol.Name == "(":
		args := 0
		for _, a := range flatten(rest.Children[1], "ArgsRest") {
			if a.Symbol.Name == "Expr" {
				args++
			}
		}
		if tag != nil {
			if tag.Kind != Function {
				c.fail(ErrNotAFunction, id.Lexeme(), id.Pos())
			} else if args != tag.Arity {
				c.fail(ErrArity, id.Lexeme(), id.Pos())
			}
		}
	default:
		if tag != nil && tag.Kind != Array {
			c.fail(ErrNotAnArray, id.Lexeme(), id.Pos())
		}
	}
	c.walk(rest)
}

func (c *checker) resolve(id gopred.Token) *Tag {
	tag, _ := c.scopes.Current().ResolveTag(id.Lexeme())
	if tag == nil {
		c.fail(ErrUndeclared, id.Lexeme(), id.Pos())
	}
	return tag
}

// flatten returns the children of a right-recursive list node, with nested
// rest-nodes replaced by their children.
func flatten(n *predictive.Node, rest string) []*predictive.Node {
	var nodes []*predictive.Node
	for _, ch := range n.Children {
		if ch.Symbol.Name == rest {
			nodes = append(nodes, flatten(ch, rest)...)
			continue
		}
		nodes = append(nodes, ch)
	}
	return nodes
}

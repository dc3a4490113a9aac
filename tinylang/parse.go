package tinylang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gopred/ll"
	"github.com/npillmayer/gopred/ll/predictive"
	"github.com/npillmayer/gopred/ll/scanner/lexmach"
)

var table *ll.ParseTable
var lexer *lexmach.LMAdapter
var startErr error

var startOnce sync.Once // monitors one-time creation of grammar, table and lexer

func setup() error {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		if lexer, startErr = Lexer(); startErr != nil {
			startErr = fmt.Errorf("cannot create tinylang lexer: %w", startErr)
			return
		}
		tracer().Infof("Creating grammar")
		g, err := makeTinyGrammar()
		if err != nil {
			startErr = err
			return
		}
		if table, err = ll.BuildTable(ll.Analysis(g)); err != nil {
			startErr = err
			return
		}
		tracer().Infof("tinylang prediction table has %d entries", table.Size())
	})
	return startErr
}

// Grammar returns the grammar of tinylang.
func Grammar() (*ll.Grammar, error) {
	if err := setup(); err != nil {
		return nil, err
	}
	return table.Grammar(), nil
}

// Table returns the prediction table of tinylang. It is created once and
// may be shared by any number of parsers.
func Table() (*ll.ParseTable, error) {
	if err := setup(); err != nil {
		return nil, err
	}
	return table, nil
}

// Parse parses a tinylang program and returns its parse tree. Syntax errors
// are reported as *predictive.SyntaxError, carrying the position of the
// offending token.
func Parse(input string) (*predictive.Node, error) {
	if err := setup(); err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	var lexErr error
	scan.SetErrorHandler(func(e error) {
		if lexErr == nil {
			lexErr = e
		}
	})
	parser := predictive.NewParser(table, predictive.GenerateTree(true))
	accept, err := parser.Parse(scan)
	if err != nil {
		return nil, err
	}
	if !accept {
		return nil, fmt.Errorf("tinylang: input not accepted")
	}
	if lexErr != nil {
		return nil, fmt.Errorf("tinylang: %w", lexErr)
	}
	tracer().Debugf("tinylang program parsed in %d steps", parser.Steps())
	return parser.ParseTree(), nil
}

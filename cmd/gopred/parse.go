package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll"
	"github.com/npillmayer/gopred/ll/predictive"
	"github.com/npillmayer/gopred/ll/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file path> <terminal>...",
		Short:   "Parse a sequence of terminals and print the parse tree",
		Example: `  gopred parse expr.bnf id + id '*' id`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	T, err := ll.BuildTable(ll.Analysis(g))
	if err != nil {
		return fmt.Errorf("Grammar %s is not LL(1): %w", args[0], err)
	}
	tokens, err := terminalTokens(g, strings.Fields(strings.Join(args[1:], " ")))
	if err != nil {
		return err
	}
	parser := predictive.NewParser(T, predictive.GenerateTree(true))
	if _, err := parser.Parse(scanner.NewTokenSlice(tokens)); err != nil {
		var serr *predictive.SyntaxError
		if errors.As(err, &serr) {
			var names []string
			for _, A := range parser.Expected(serr) {
				names = append(names, A.Name)
			}
			return fmt.Errorf("%w (expected one of: %s)", err, strings.Join(names, " "))
		}
		return err
	}
	var list pterm.LeveledList
	parser.ParseTree().Each(func(node *predictive.Node, level int) {
		list = append(list, pterm.LeveledListItem{Level: level, Text: node.Symbol.Name})
	})
	out, err := pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(list)).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// terminalTokens converts terminal names into tokens. Token i is positioned
// at column i+1 of line 1, its span is the i-th word.
func terminalTokens(g *ll.Grammar, words []string) ([]gopred.Token, error) {
	tokens := make([]gopred.Token, len(words))
	for i, w := range words {
		A := g.TerminalByName(strings.Trim(w, "'"))
		if A == nil || A.IsEOF() {
			return nil, fmt.Errorf("%q is not a terminal of grammar %s", w, g.Name)
		}
		tokens[i] = scanner.NewToken(A.TokenType(), A.Name, nil,
			gopred.Span{uint64(i), uint64(i + 1)}, gopred.Position{Line: 1, Column: i + 1})
	}
	return tokens, nil
}

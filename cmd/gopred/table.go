package main

import (
	"fmt"

	"github.com/npillmayer/gopred/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	html *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file path>",
		Short:   "Build the prediction table and report LL(1) conflicts",
		Example: `  gopred table --html expr.bnf > expr.html`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	tableFlags.html = cmd.Flags().Bool("html", false, "write the table in HTML format")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	T, err := ll.BuildTable(ll.Analysis(g))
	if err != nil {
		return fmt.Errorf("Grammar %s is not LL(1): %w", args[0], err)
	}
	if *tableFlags.html {
		ll.TableAsHTML(T, cmd.OutOrStdout())
		return nil
	}
	header := []string{""}
	g.EachTerminal(func(A *ll.Symbol) interface{} {
		header = append(header, A.Name)
		return nil
	})
	data := pterm.TableData{header}
	g.EachNonTerminal(func(N *ll.Symbol) interface{} {
		row := []string{N.Name}
		g.EachTerminal(func(A *ll.Symbol) interface{} {
			cell := ""
			if r, ok := T.Lookup(N, A.TokenType()); ok {
				cell = fmt.Sprintf("%d", r.Serial)
			}
			row = append(row, cell)
			return nil
		})
		data = append(data, row)
		return nil
	})
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	for _, r := range g.Rules() {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %v\n", r.Serial, r)
	}
	return nil
}

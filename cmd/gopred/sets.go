package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gopred/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	first := &cobra.Command{
		Use:     "first <grammar file path>",
		Short:   "Print the FIRST-sets of all non-terminals",
		Example: `  gopred first expr.bnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSets(func(ga *ll.LLAnalysis) map[string][]string { return ga.FirstSets() }, "FIRST"),
	}
	follow := &cobra.Command{
		Use:     "follow <grammar file path>",
		Short:   "Print the FOLLOW-sets of all non-terminals",
		Example: `  gopred follow expr.bnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSets(func(ga *ll.LLAnalysis) map[string][]string { return ga.FollowSets() }, "FOLLOW"),
	}
	rootCmd.AddCommand(first, follow)
}

func runSets(sets func(*ll.LLAnalysis) map[string][]string, title string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		g, err := readGrammar(args[0])
		if err != nil {
			return err
		}
		ga := ll.Analysis(g)
		S := sets(ga)
		data := pterm.TableData{{"Non-terminal", title}}
		g.EachNonTerminal(func(N *ll.Symbol) interface{} {
			data = append(data, []string{N.Name, "{ " + strings.Join(S[N.Name], " ") + " }"})
			return nil
		})
		out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/gopred/ll"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "gopred",
	Short: "Analyse LL(1) grammars and run a predictive parser",
	Long: `gopred provides these features:
- Prints FIRST- and FOLLOW-sets of a grammar.
- Builds the prediction table of a grammar and reports LL(1) conflicts.
- Parses a sequence of terminals, printing the parse tree.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.SyntaxTracer = gologadapter.New()
		tracing.Select("gopred.ll").SetTraceLevel(tracing.TraceLevelFromString(*rootFlags.trace))
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// readGrammar reads a BNF grammar file. The grammar is named after the file.
func readGrammar(path string) (*ll.Grammar, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read the grammar %s: %w", path, err)
	}
	g, err := ll.ReadBNF(path, string(src), nil)
	if err != nil {
		return nil, err
	}
	return g, nil
}

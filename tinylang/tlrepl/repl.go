package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gopred/ll"
	"github.com/npillmayer/gopred/ll/predictive"
	"github.com/npillmayer/gopred/tinylang"
	"github.com/npillmayer/gopred/tinylang/scope"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	flagTrace  = pflag.StringP("trace", "t", "", "Trace level [Debug|Info|Error]")
	flagInit   = pflag.StringP("init", "i", "", "Initial load")
	flagConfig = pflag.StringP("config", "c", "", "TOML config file")
	flagNoTree = pflag.Bool("no-tree", false, "Do not print parse trees")
)

// main() starts an interactive CLI ("TL.REPL"), where users may enter tinylang
// programs, one per line. TL.REPL will parse the program and print out the
// parse tree or the syntax error.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	pflag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	conf, err := loadConfig(*flagConfig)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	if *flagTrace != "" {
		conf.Trace = *flagTrace
	}
	if *flagNoTree {
		conf.Tree = false
	}
	pterm.Info.Println("Welcome to TL.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", conf.Trace)
	//
	// set up grammar and prediction table
	table, err := tinylang.Table()
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	tracer().SetTraceLevel(traceLevel(conf.Trace)) // now set the user supplied level
	table.Grammar().Dump()                         // only visible in debug mode
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:      conf.Prompt,
		HistoryFile: conf.History,
	})
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		table: table,
		conf:  conf,
		repl:  repl,
	}
	if input := strings.TrimSpace(strings.Join(pflag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands / programs
	tracer().Infof("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.loadInitFile(*flagInit)               // init file name provided by flag
	intp.REPL()                                // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	table *ll.ParseTable
	conf  Config
	repl  *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates an input line, which is either a command or a tinylang
// program. It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.Execute(strings.Fields(line))
	}
	tracer().Infof("----------------------- Parse ------------------------------------")
	tree, err := tinylang.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if intp.conf.Tree {
		root := pterm.NewTreeFromLeveledList(leveledTree(tree))
		pterm.DefaultTree.WithRoot(root).Render()
	}
	pterm.Info.Printf("accepted, %d tokens\n", len(tree.Tokens()))
	_, problems := scope.Check(tree)
	for _, p := range problems {
		pterm.Warning.Println(p.Error())
	}
	return false, nil
}

// Execute runs a command, given as a list of words starting with the command.
func (intp *Intp) Execute(args []string) (bool, error) {
	ga := intp.table.Analysis()
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":first":
		printSets("FIRST", ga.Grammar(), ga.FirstSets())
	case ":follow":
		printSets("FOLLOW", ga.Grammar(), ga.FollowSets())
	case ":table":
		printTable(intp.table)
	case ":rules":
		for _, r := range ga.Grammar().Rules() {
			pterm.Printf("%3d  %v\n", r.Serial, r)
		}
	default:
		err := fmt.Errorf("unknown command %s", args[0])
		pterm.Error.Println(err.Error())
		return false, err
	}
	return false, nil
}

// leveledTree flattens a parse tree into a pterm leveled list.
func leveledTree(tree *predictive.Node) pterm.LeveledList {
	var list pterm.LeveledList
	tree.Each(func(node *predictive.Node, level int) {
		text := node.String()
		if node.Rule != nil && node.Rule.IsEps() {
			text += " ε"
		}
		list = append(list, pterm.LeveledListItem{Level: level, Text: text})
	})
	return list
}

// printSets prints FIRST- or FOLLOW-sets, one non-terminal per row in order
// of declaration.
func printSets(title string, g *ll.Grammar, sets map[string][]string) {
	data := pterm.TableData{{"Non-terminal", title}}
	g.EachNonTerminal(func(N *ll.Symbol) interface{} {
		data = append(data, []string{N.Name, "{ " + strings.Join(sets[N.Name], " ") + " }"})
		return nil
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printTable prints the occupied cells of a prediction table, grouped by
// non-terminal and ordered by lookahead token type.
func printTable(T *ll.ParseTable) {
	cells := make(map[string][]string)
	var order []string
	for _, e := range T.Entries() {
		name := e.NonTerminal.Name
		if _, ok := cells[name]; !ok {
			order = append(order, name)
		}
		cells[name] = append(cells[name], fmt.Sprintf("%s:%d", e.Lookahead.Name, e.Rule.Serial))
	}
	data := pterm.TableData{{"Non-terminal", "Lookahead:Rule"}}
	for _, name := range order {
		data = append(data, []string{name, strings.Join(cells[name], "  ")})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// Command tableaux parses an argument, builds a tableau under a named
// logic, and prints its tree and stats as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alethic/tableaux"
	"github.com/alethic/tableaux/internal/config"
)

func main() {
	var (
		logicName  = flag.String("logic", "", "Logic name (overrides config default)")
		standard   = flag.Bool("standard", false, "Parse premises/conclusion in Standard notation instead of Polish")
		conclusion = flag.String("conclusion", "", "Conclusion sentence")
		premises   = flag.String("premises", "", "Semicolon-separated premise sentences")
		corpusName = flag.String("corpus", "", "Look up a named argument in the example corpus instead of -premises/-conclusion")
		logLevel   = flag.String("log-level", "", "Log level (overrides config default)")
	)
	flag.Parse()

	cfg := config.Load()
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	tableaux.SetLogLevel(cfg.LogLevel)

	logic := cfg.DefaultLogic
	if *logicName != "" {
		logic = *logicName
	}

	var arg tableaux.Argument
	var err error

	if *corpusName != "" {
		entry, ok := tableaux.Lookup(*corpusName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown corpus entry %q\n", *corpusName)
			os.Exit(1)
		}
		logic = entry.Logic
		arg, err = entry.Argument(tableaux.NewPredicateStore())
	} else {
		notation := tableaux.Polish
		if *standard {
			notation = tableaux.Standard
		}
		var premiseList []string
		if *premises != "" {
			premiseList = strings.Split(*premises, ";")
		}
		arg, err = tableaux.ParseArgument(notation, tableaux.NewPredicateStore(), premiseList, *conclusion, "")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	options := tableaux.DefaultOptions()
	options.MaxSteps = cfg.MaxSteps
	options.BuildTimeoutMs = cfg.BuildTimeoutMs

	tab, err := tableaux.BuildTableau(logic, arg, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build error: %v\n", err)
		os.Exit(1)
	}

	out := struct {
		Stats tableaux.Stats    `json:"stats"`
		Tree  tableaux.TreeNode `json:"tree"`
	}{
		Stats: tab.Stats(),
		Tree:  tab.Tree(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/expressionwhizz/whizz"
)

const (
	historyFile = ".whizz_history"
	prompt      = "Expr? "
	exprBufSize = 1024
)

var errColor = color.New(color.FgRed)

func main() {
	log.SetFlags(0)
	vars := whizz.NewDict()
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := whizz.EvalString(d[1], vars)
		if err != nil {
			return err
		}
		vars.Store(strings.TrimSpace(d[0]), v)
		return nil
	}
	echo := flag.Bool("echo", false, "print scanned tokens before parsing")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.Parse()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("Welcome to ExpressionWhizz!")

	for {
		fmt.Println()
		input, err := ln.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			if err != io.EOF {
				errColor.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return
		}
		if strings.EqualFold(strings.TrimSpace(input), "quit") {
			return
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(input)
		oneLine(input, vars, *echo)
	}
}

// oneLine runs a single REPL input to completion. Failures are reported and
// never fatal; the caller continues with the next line.
func oneLine(input string, vars *whizz.Dict, echo bool) {
	tokens, err := whizz.Tokenize(input)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return
	}
	if tokens.Len() == 0 {
		return
	}
	if echo {
		for i := 0; i < tokens.Len(); i++ {
			fmt.Printf("%d %v\n", i, tokens.At(i))
		}
	}
	if varCommand(tokens, vars) {
		return
	}

	tree, err := whizz.Parse(tokens)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return
	}
	if tree == nil {
		return
	}
	value, err := tree.Eval(vars)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf("%s  ==> %g\n", tree.Text(exprBufSize), value)
}

// varCommand handles the inspection shorthands that work on the dictionary
// directly, without the parser: a lone symbol prints its binding, "vars"
// lists all bindings, and "name = number" or "name = othername" stores one.
// Anything longer goes through the parser, which handles assignment anyway.
func varCommand(tokens *whizz.TokenStream, vars *whizz.Dict) bool {
	if tokens.PeekKind() != whizz.TokenSymbol {
		return false
	}
	name := tokens.Peek().Symbol
	switch {
	case tokens.Len() == 1:
		if name == "vars" && !vars.Contains("vars") {
			listVars(vars)
			return true
		}
		if v, ok := vars.Retrieve(name); ok {
			fmt.Printf("Variable '%s' is %g\n", name, v)
		} else {
			errColor.Fprintf(os.Stderr, "Unknown variable '%s'\n", name)
		}
		return true
	case tokens.Len() == 3 && tokens.At(1).Kind == whizz.TokenEqual:
		var value float64
		switch t := tokens.At(2); t.Kind {
		case whizz.TokenValue:
			value = t.Value
		case whizz.TokenSymbol:
			v, ok := vars.Retrieve(t.Symbol)
			if !ok {
				errColor.Fprintf(os.Stderr, "Unknown variable '%s'\n", t.Symbol)
				return true
			}
			value = v
		default:
			return false
		}
		vars.Store(name, value)
		fmt.Printf("Variable '%s' set to %g\n", name, value)
		return true
	}
	return false
}

func listVars(vars *whizz.Dict) {
	type binding struct {
		name  string
		value float64
	}
	var all []binding
	vars.ForEach(func(key string, value float64) {
		all = append(all, binding{key, value})
	})
	if len(all) == 0 {
		fmt.Println("No variables defined")
		return
	}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })
	for _, b := range all {
		fmt.Printf("  %s = %g\n", b.name, b.value)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

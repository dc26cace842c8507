// Released under an MIT license. See LICENSE.

// Package ui provides the interactive and batch front ends for the interpreter.
package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/lisp15/internal/printer"
	"github.com/michaelmacinnis/lisp15/internal/reader"
	"github.com/michaelmacinnis/lisp15/internal/store"
	"github.com/michaelmacinnis/lisp15/internal/system/history"
)

// Prompts for a new form and for the continuation of an unfinished form.
const (
	Prompt             = ">> "
	ContinuationPrompt = ">>>> "
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(form store.Cell) (store.Cell, error)
	Store() *store.T
}

// Run launches the interactive interface. Each form is evaluated as soon
// as it is complete and its value is written to stdout. Errors are written
// to stderr and the session continues. Run returns at end of input.
func Run(e Evaluator, stdout, stderr io.Writer) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintf(stderr, "history: %v\n", err)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e.Store()))

	r := reader.New(e.Store(), "repl")

	for {
		prompt := Prompt
		if r.Pending() {
			prompt = ContinuationPrompt
		}

		if err := uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(prompt)

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			r.Reset()

			continue
		case io.EOF:
			fmt.Fprintln(stdout)

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		err = r.Scan(line+"\n", func(c store.Cell) error {
			v, err := e.Evaluate(c)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "=> %s\n", printer.String(e.Store(), v))

			return nil
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
}

// Batch evaluates every form read from in and writes each value to out.
// It stops at the first error.
func Batch(e Evaluator, name string, in io.Reader, out io.Writer) error {
	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	s := e.Store()
	r := reader.New(s, name)

	err = r.Scan(string(text), func(c store.Cell) error {
		v, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, printer.String(s, v))

		return err
	})
	if err != nil {
		return err
	}

	return r.Close()
}

// Completion candidates are interned symbols that start with the word under the cursor.
func completer(s *store.T) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexFunc(head, func(r rune) bool {
			return unicode.IsSpace(r) || r == '(' || r == ')' || r == '.'
		}) + 1

		word := head[start:]
		if word == "" {
			return head, nil, tail
		}

		for _, name := range s.Names() {
			if strings.HasPrefix(name, word) {
				cs = append(cs, name)
			}
		}

		sort.Strings(cs)

		return head[:start], cs, tail
	}
}

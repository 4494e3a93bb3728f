package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/shapestone/shape-csvn/pkg/csv"
)

const (
	historyFile = ".csvn_history"
	promptMain  = "csv> "
	promptCont  = "...> "
)

func cmdRepl(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	d := registerDialect(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	tok, err := d.tokenizer()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}

	fmt.Fprintf(stdout, "csvn %s\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := historyPath(); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		entry, ok := readEntry(ln, tok.Config())
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}

		switch strings.TrimSpace(entry) {
		case "":
			continue
		case ":quit":
			return 0
		}

		describe(stdout, tok, []byte(entry))
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
	}
}

// historyPath returns the history file in the home directory. History is
// disabled when there is no home directory.
func historyPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		log.Printf("history disabled: no home directory")
		return "", false
	}
	return filepath.Join(home, historyFile), true
}

// readEntry reads lines until every quote opened in the entry is closed.
// Continuation lines are joined with the configured newline.
func readEntry(ln *liner.State, cfg csv.Config) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending entry
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte(cfg.Newline)
		}
		b.WriteString(line)

		if !openQuote(b.String()) {
			return b.String(), true
		}
	}
}

// openQuote reports whether s ends inside a quoted field. Escaped quotes come
// in pairs, so an odd quote count means a quote is still open.
func openQuote(s string) bool {
	return strings.Count(s, `"`)%2 == 1
}

// describe tokenizes one entry and prints its descriptors or the error.
func describe(w io.Writer, tok *csv.Tokenizer, buf []byte) {
	fields, err := tok.Tokenize(buf)
	if err != nil {
		fmt.Fprintf(w, "error: %v (code %d)\n", err, csv.Code(err))
		return
	}
	writeFields(w, buf, fields)
	fmt.Fprintf(w, "%d fields\n", len(fields))
}

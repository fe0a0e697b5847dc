package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mattn/lispy"
)

const banner = "Lispy Version 0.0.0.0.1\nPress Ctrl+c to Exit\n\n"

type config struct {
	prompt   string
	ast      bool
	dump     bool
	noColor  bool
	noBanner bool
	verbose  bool
}

type repl struct {
	cfg    config
	name   string
	parser *lispy.Parser
	out    io.Writer
	logger *log.Logger
	errc   *color.Color
	dumper *spew.ConfigState
}

func newREPL(cfg config, out io.Writer, logger *log.Logger) *repl {
	errc := color.New(color.FgRed)
	if cfg.noColor {
		errc.DisableColor()
	}
	return &repl{
		cfg:    cfg,
		name:   "<stdin>",
		parser: lispy.NewParser(),
		out:    out,
		logger: logger,
		errc:   errc,
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		},
	}
}

// evalLine handles one line of input and reports whether it parsed and
// evaluated without error.
func (r *repl) evalLine(line string) bool {
	r.logger.Printf("read %q", line)
	node, err := r.parser.ParseString(r.name, line)
	if err != nil {
		r.logger.Printf("parse failed: %v", err)
		r.errc.Fprintln(r.out, err)
		return false
	}

	switch {
	case r.cfg.ast:
		fmt.Fprint(r.out, node.Tree())
		return true
	case r.cfg.dump:
		r.dumper.Fdump(r.out, node)
		return true
	}

	v := lispy.Eval(node)
	r.logger.Printf("%s => %v", node, v)
	switch v.Type() {
	case lispy.ValueErr:
		r.errc.Fprintln(r.out, v)
		return false
	case lispy.ValueNum:
		fmt.Fprintln(r.out, v)
	}
	return true
}

// runBatch evaluates every line of in without prompting. Lines have no
// length limit.
func (r *repl) runBatch(in io.Reader) (ok bool, err error) {
	ok = true
	br := bufio.NewReader(in)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if !r.evalLine(strings.TrimRight(line, "\r\n")) {
				ok = false
			}
		}
		if err == io.EOF {
			return ok, nil
		}
		if err != nil {
			return ok, fmt.Errorf("read %s: %w", r.name, err)
		}
	}
}

// runInteractive reads lines from a terminal with line editing and history
// until Ctrl+C or Ctrl+D.
func (r *repl) runInteractive(in, out *os.File) error {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, r.cfg.prompt)
	r.out = t

	if !r.cfg.noBanner {
		fmt.Fprint(t, banner)
	}
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		r.evalLine(line)
	}
}

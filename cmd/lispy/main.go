package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattn/lispy"
)

// errFailed makes the process exit 1 after the failure was already printed.
var errFailed = errors.New("evaluation failed")

var (
	cfg     config
	expr    string
	grammar bool
)

var rootCmd = &cobra.Command{
	Use:   "lispy [file]",
	Short: "Evaluate integer s-expressions such as (+ 1 (* 2 3))",
	Long: `Lispy reads one expression per line, evaluates it and prints the result.

With no file and a terminal on stdin it starts an interactive prompt with
line editing and history. Otherwise every line of the file (or of stdin) is
evaluated in turn.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.prompt, "prompt", "lispy> ", "Prompt shown in interactive mode")
	flags.BoolVar(&cfg.ast, "ast", false, "Print the syntax tree instead of evaluating")
	flags.BoolVar(&cfg.dump, "dump", false, "Dump the syntax tree structure instead of evaluating")
	flags.BoolVar(&cfg.noColor, "no-color", false, "Disable colored error output")
	flags.BoolVar(&cfg.noBanner, "no-banner", false, "Do not print the banner in interactive mode")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log every line read and its outcome to stderr")
	flags.StringVarP(&expr, "expr", "e", "", "Evaluate a single expression and exit")
	flags.BoolVar(&grammar, "grammar", false, "Print the grammar and exit")
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "lispy: ", log.LstdFlags)
}

func run(cmd *cobra.Command, args []string) error {
	if grammar {
		fmt.Fprintln(cmd.OutOrStdout(), lispy.Grammar())
		return nil
	}

	logger := newLogger(cfg.verbose)
	r := newREPL(cfg, cmd.OutOrStdout(), logger)

	if cmd.Flags().Changed("expr") {
		if !r.evalLine(expr) {
			return errFailed
		}
		return nil
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r.name = args[0]
		in = f
	} else if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		logger.Print("starting interactive prompt")
		return r.runInteractive(os.Stdin, os.Stdout)
	}

	ok, err := r.runBatch(in)
	if err != nil {
		return err
	}
	if !ok {
		return errFailed
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFailed) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

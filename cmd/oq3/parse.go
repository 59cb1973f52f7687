package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/qasm3-go/oq3cst/oerr"
	"github.com/qasm3-go/oq3cst/parser"
	"github.com/qasm3-go/oq3cst/syntax"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	format *string
}{}

const (
	outputFormatTree = "tree"
	outputFormatText = "text"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse [source file path]",
		Short:   "Parse an OpenQASM 3 source file into a concrete syntax tree",
		Example: `  cat prog.qasm | oq3 parse`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin or first positional arg)")
	parseFlags.format = cmd.Flags().StringP("format", "f", outputFormatTree, "output format: one of tree|text")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if *parseFlags.format != outputFormatTree && *parseFlags.format != outputFormatText {
		return fmt.Errorf("invalid output format: %v", *parseFlags.format)
	}

	src, err := readSource(args)
	if err != nil {
		return fmt.Errorf("cannot read source: %w", err)
	}

	green, err := parser.Parse(src)

	switch *parseFlags.format {
	case outputFormatTree:
		printTree(os.Stdout, syntax.NewRoot(green), 0)
	case outputFormatText:
		fmt.Fprintln(os.Stdout, syntax.Text(green))
	}

	if err != nil {
		if errs, ok := err.(oerr.Errors); ok {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e)
			}
			return fmt.Errorf("%v error(s) detected", len(errs))
		}
		return err
	}
	return nil
}

func readSource(args []string) (string, error) {
	path := *parseFlags.source
	if path == "" && len(args) > 0 {
		path = args[0]
	}

	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func printTree(w io.Writer, n *syntax.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if tok, ok := n.Token(); ok {
		fmt.Fprintf(w, "%v%v %q\n", indent, tok.Kind(), tok.Text())
		return
	}
	fmt.Fprintf(w, "%v%v\n", indent, n.Kind())
	for _, c := range n.ChildrenWithTokens() {
		printTree(w, c, depth+1)
	}
}

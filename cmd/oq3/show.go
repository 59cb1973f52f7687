package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/qasm3-go/oq3cst/schema"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	format *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the grammar schema the ast accessors are generated from",
		Example: `  oq3 show --format json`,
		Args:    cobra.NoArgs,
		RunE:    runShow,
	}
	showFlags.format = cmd.Flags().StringP("format", "f", "text", "output format: one of text|json")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	desc := schema.Describe()

	switch *showFlags.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(desc)
	case "text":
		writeSchemaText(os.Stdout, desc)
		return nil
	default:
		return fmt.Errorf("invalid output format: %v", *showFlags.format)
	}
}

func writeSchemaText(w *os.File, desc *schema.Schema) {
	fmt.Fprintf(w, "# Terminals\n\n")
	for _, t := range desc.Terminals {
		fmt.Fprintf(w, "%-20v %v\n", t.Name, t.Pattern)
	}

	fmt.Fprintf(w, "\n# Non-terminals\n\n")
	for _, nt := range desc.NonTerminals {
		fmt.Fprintf(w, "%v\n", nt.Name)
		for _, f := range nt.Fields {
			fmt.Fprintf(w, "  %v: %v (%v)\n", f.Label, strings.Join(f.Kinds, "|"), f.Shape)
		}
		if len(nt.EnumViews) > 0 {
			fmt.Fprintf(w, "  member of: %v\n", strings.Join(nt.EnumViews, ", "))
		}
	}

	fmt.Fprintf(w, "\n# Enum views\n\n")
	for _, ev := range desc.EnumViews {
		fmt.Fprintf(w, "%v: %v\n", ev.Name, strings.Join(ev.Members, ", "))
	}

	fmt.Fprintf(w, "\n# Manual accessors\n\n")
	for _, m := range desc.ManualAccessors {
		fmt.Fprintf(w, "%v.%v: %v\n", m.NodeKind, m.Accessor, m.Reason)
	}
}

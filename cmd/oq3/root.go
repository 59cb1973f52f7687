package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oq3",
	Short: "Parse OpenQASM 3 source into a lossless concrete syntax tree",
	Long: `oq3 provides two features:
- Parses an OpenQASM 3 source file into a concrete syntax tree.
- Prints that tree, or the typed grammar schema it is shaped by, in readable form.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

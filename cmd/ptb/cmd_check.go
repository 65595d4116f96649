package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/treebank/ptb"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate that a corpus is well-formed bracket notation",
		Long: `Check parses the corpus and reports the first malformed tree with its
input line. Trees before the error still count; the summary says how many
parsed cleanly. The exit status is nonzero when the corpus has an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer closeIn()

			name := in.Name()
			trees := 0
			p := ptb.NewParser(in)
			for p.Next() {
				trees++
			}
			if err := p.Err(); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				fmt.Fprintf(os.Stderr, "%s: %d trees parsed before the error\n", name, trees)
				// the error was already reported with its position
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return err
			}
			if !quiet {
				fmt.Printf("%s: %d trees\n", name, trees)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing on success")

	return cmd
}

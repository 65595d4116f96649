package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dhamidi/treebank/grammar"
	"github.com/dhamidi/treebank/ptb"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var (
		dbPath   string
		fromDB   bool
		simplify bool
	)

	cmd := &cobra.Command{
		Use:   "grammar [file]",
		Short: "Extract a weighted grammar from a treebank corpus",
		Long: `Grammar tabulates every production rule of the corpus, lexical rules
included, and prints a weighted grammar: one "lhs -> rhs<TAB>probability"
line per rule, normalized per left-hand side.

With --db the counts are merged into a SQLite database so grammars can be
accumulated across corpora; --from-db skips reading a corpus and prints
the grammar stored in the database instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := grammar.NewTable()

			if fromDB {
				if dbPath == "" {
					return fmt.Errorf("--from-db requires --db")
				}
				store, err := grammar.OpenStore(dbPath)
				if err != nil {
					return fmt.Errorf("open grammar db: %w", err)
				}
				defer store.Close()
				table, err = store.Load()
				if err != nil {
					return fmt.Errorf("load grammar db: %w", err)
				}
			} else {
				in, closeIn, err := openInput(args)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer closeIn()

				p := ptb.NewParser(in)
				for p.Next() {
					tree := p.Tree()
					if simplify {
						tree = ptb.SimplifyLabels(tree, false)
					}
					table.Add(tree)
				}
				if err := p.Err(); err != nil {
					return err
				}

				if dbPath != "" {
					store, err := grammar.OpenStore(dbPath)
					if err != nil {
						return fmt.Errorf("open grammar db: %w", err)
					}
					defer store.Close()
					if err := store.Save(table); err != nil {
						return fmt.Errorf("save grammar db: %w", err)
					}
				}
			}

			for _, wr := range table.Weighted() {
				prob := strconv.FormatFloat(wr.Prob, 'g', -1, 64)
				fmt.Fprintf(os.Stdout, "%s -> %s\t%s\n", wr.LHS, wr.RHS, prob)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to merge rule counts into")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "print the grammar stored in --db instead of reading a corpus")
	cmd.Flags().BoolVar(&simplify, "simplify-labels", false, "strip functional tags and indices before tabulating")

	return cmd
}

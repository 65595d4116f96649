package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/treebank/format"
	"github.com/dhamidi/treebank/ptb"
	"github.com/spf13/cobra"
)

func newProcessCmd() *cobra.Command {
	var (
		removeEmpties  bool
		simplifyLabels bool
		keepSBJTags    bool
		addRoot        bool
		rootLabel      string
		annotateParent bool
		removeParent   bool
		markTop        bool
		outputFormat   string
	)

	cmd := &cobra.Command{
		Use:   "process [file]",
		Short: "Transform a treebank corpus and print it in a chosen format",
		Long: `Process reads bracket-notation trees from the given file (or stdin),
applies the requested transformations in a fixed order, and prints every
tree in the chosen output format.

Transformations run as: remove empty elements, simplify labels, add root,
annotate parents, remove parent annotations, mark top.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer closeIn()

			encoder, err := format.New(outputFormat, os.Stdout)
			if err != nil {
				return fmt.Errorf("%s (supported: %s)", err, strings.Join(format.Names(), ", "))
			}

			p := ptb.NewParser(in)
			for p.Next() {
				tree := p.Tree()
				if removeEmpties {
					tree = ptb.RemoveEmptyElements(tree)
				}
				if simplifyLabels {
					tree = ptb.SimplifyLabels(tree, keepSBJTags)
				}
				if addRoot {
					tree = ptb.AddRoot(tree, rootLabel)
				}
				if annotateParent {
					tree = ptb.AnnotParent(tree)
				}
				if removeParent {
					tree = ptb.RemoveParent(tree)
				}
				if markTop {
					if err := ptb.MarkTop(tree); err != nil {
						return fmt.Errorf("mark top: %w", err)
					}
				}
				if err := encoder.Encode(tree); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			if err := p.Err(); err != nil {
				return err
			}
			return encoder.Close()
		},
	}

	cmd.Flags().BoolVar(&removeEmpties, "remove-empties", false, "prune null elements and the constituents left empty by them")
	cmd.Flags().BoolVar(&simplifyLabels, "simplify-labels", false, "strip functional tags and indices from labels")
	cmd.Flags().BoolVar(&keepSBJTags, "keep-sbj-tags", false, "keep the SBJ functional tag when simplifying labels")
	cmd.Flags().BoolVar(&addRoot, "add-root", false, "ensure every tree has a labelled root")
	cmd.Flags().StringVar(&rootLabel, "root", "ROOT", "label for roots added by --add-root")
	cmd.Flags().BoolVar(&annotateParent, "annotate-parent", false, "annotate every label with its parent's label")
	cmd.Flags().BoolVar(&removeParent, "remove-parent", false, "strip parent annotations from labels")
	cmd.Flags().BoolVar(&markTop, "mark-top", false, "mark the top constituent under the root")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "phrases", "output format ("+strings.Join(format.Names(), ", ")+")")

	return cmd
}

// Package ptb reads and transforms constituency trees in the Penn Treebank
// bracket notation, e.g.
//
//	(S (NP-SBJ (DT the) (NN dog)) (VP (VBZ runs)))
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (lines)    │     │  (tokens)   │     │  (trees)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                              │
//	                           ┌──────────────────┤
//	                           ▼                  ▼
//	                    ┌─────────────┐    ┌─────────────┐
//	                    │ Transforms  │    │  Analyses   │
//	                    │ (in place)  │    │ (pure)      │
//	                    └─────────────┘    └─────────────┘
//
// The lexer is total: it turns any text into parentheses and atoms. The
// parser is an explicit-stack incremental reducer that yields one tree per
// balanced top-level group, so a whole corpus file can be streamed without
// holding all of its trees in memory. Unbalanced input is a fatal
// ParseError carrying the offending line number; there is no recovery.
//
// Constituent labels are decomposed by a small grammar (see ParseSymbol)
// into a bare category, functional tags, and coindexation markers, and can
// be recomposed losslessly.
//
// # Traversal
//
// Traverse is the single walk primitive: a depth-first visit with optional
// pre- and post-order callbacks and an explicit accumulator threaded
// through the walk by value. Every transform (RemoveEmptyElements,
// SimplifyLabels, AnnotParent, RemoveParent) and every analysis (AllRules,
// GrammarRules, AllSpans, MakeAnchored, Leaves, LabelledPhrases) is written
// against it.
//
// Transforms mutate the tree in place and return it; analyses never mutate.
// Transforms compose sequentially in whatever order the caller picks:
//
//	tree = ptb.RemoveEmptyElements(tree)
//	tree = ptb.SimplifyLabels(tree, false)
//	tree = ptb.AddRoot(tree, "ROOT")
//
// The package does no I/O beyond reading the supplied reader and is
// entirely single-threaded; distinct trees are independent and may be
// processed on separate goroutines.
package ptb

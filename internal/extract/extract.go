// Package extract implements the syntactic extractor: it parses one source
// file into an HCL syntax tree and yields every attribute-access chain whose
// root is the bare identifier "registry", skipping look-alikes in strings,
// comments, object keys, and non-root positions, and truncating (entirely
// discarding) any chain that hits a dynamic selector.
//
// hashicorp/hcl/v2's native syntax parser is used because its
// *hclsyntax.Body/Expression tree keeps byte-accurate hcl.Range information on
// every node and already distinguishes bare identifiers from strings, object
// keys, and computed (index/splat) traversal steps — exactly the
// distinguishing power the spec requires of "any parser for the source
// language".
package extract

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/imp-nix/regref/internal/errors"
)

// RootIdentifier is the only identifier the extractor treats as the root of
// a registry reference.
const RootIdentifier = "registry"

// Occurrence describes one extracted attribute-access chain.
type Occurrence struct {
	// File is the path of the file the chain was found in.
	File string

	// Start and End are the half-open byte range [Start, End) of the full
	// chain, from the first byte of "registry" to the last byte of the last
	// accepted static selector.
	Start, End int

	// StartPos and EndPos mirror Start/End as line/column positions, carried
	// for machine-readable output.
	StartPos, EndPos hcl.Pos

	// TailStart is the byte offset of the first character of Tail, i.e. just
	// past the "." that follows the root identifier. The rewriter replaces
	// [TailStart, End) and nothing before it, so "registry" and the leading
	// dot are always preserved verbatim.
	TailStart int

	// Root is always RootIdentifier.
	Root string

	// Tail is the dotted path after the leading "registry.", e.g. for
	// "registry.users.alice" the Tail is "users.alice".
	Tail string

	// Full is Root + "." + Tail.
	Full string
}

// Extract parses contents (the file's full byte contents) as HCL native
// syntax and returns every qualifying Occurrence, in source order.
func Extract(filename string, contents []byte) ([]Occurrence, error) {
	file, diags := hclsyntax.ParseConfig(contents, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.New(diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, nil
	}

	var occurrences []Occurrence

	w := &walker{filename: filename, out: &occurrences, skip: make(map[hclsyntax.Node]bool)}

	diags = hclsyntax.Walk(body, w)
	if diags.HasErrors() {
		return nil, errors.New(diags)
	}

	return occurrences, nil
}

// walker visits every expression node in the parsed file. A computed
// subscript (IndexExpr with a non-literal key, or any splat) never folds
// into a single ScopeTraversalExpr the way a literal index or a static
// attribute selector does; HCL instead splits it into a wrapper node whose
// Source/Collection is its own, independently-walked ScopeTraversalExpr. To
// honor "a dynamic selector discards the whole chain" in that split-tree
// case too, skip marks that inner traversal node so the walk's later visit
// to it is a no-op rather than an independent occurrence.
type walker struct {
	filename string
	out      *[]Occurrence
	skip     map[hclsyntax.Node]bool
}

func (w *walker) Enter(node hclsyntax.Node) hcl.Diagnostics {
	switch n := node.(type) {
	case *hclsyntax.RelativeTraversalExpr:
		w.markSkip(n.Source)
	case *hclsyntax.IndexExpr:
		w.markSkip(n.Collection)
	case *hclsyntax.SplatExpr:
		w.markSkip(n.Source)
	case *hclsyntax.ScopeTraversalExpr:
		if w.skip[n] {
			return nil
		}

		occ, ok := fromTraversal(w.filename, n.Traversal)
		if ok {
			*w.out = append(*w.out, occ)
		}
	}

	return nil
}

func (w *walker) Exit(hclsyntax.Node) hcl.Diagnostics { return nil }

// markSkip descends through nested Index/Relative/Splat wrappers to find the
// ScopeTraversalExpr actually feeding the dynamic selector, and marks it so
// Enter discards it when the walk reaches it.
func (w *walker) markSkip(expr hclsyntax.Expression) {
	for {
		switch e := expr.(type) {
		case *hclsyntax.ScopeTraversalExpr:
			w.skip[e] = true
			return
		case *hclsyntax.RelativeTraversalExpr:
			expr = e.Source
		case *hclsyntax.IndexExpr:
			expr = e.Collection
		case *hclsyntax.SplatExpr:
			expr = e.Source
		default:
			return
		}
	}
}

// fromTraversal inspects a single traversal's leftmost element; if it is a
// bare-identifier root named "registry", it collects the run of static
// TraverseAttr selectors that follow (stopping, and discarding nothing
// partial, at the first non-static step) and returns the resulting
// Occurrence.
func fromTraversal(filename string, traversal hcl.Traversal) (Occurrence, bool) {
	if len(traversal) == 0 {
		return Occurrence{}, false
	}

	root, ok := traversal[0].(hcl.TraverseRoot)
	if !ok || root.Name != RootIdentifier {
		return Occurrence{}, false
	}

	if len(traversal) < 2 {
		// A bare "registry" with no selectors at all is not a path
		// reference; there is nothing to classify or rewrite.
		return Occurrence{}, false
	}

	tailSegments := make([]string, 0, len(traversal)-1)

	firstAttr, ok := traversal[1].(hcl.TraverseAttr)
	if !ok {
		return Occurrence{}, false
	}

	// HCL's native syntax gives each TraverseAttr step a SrcRange running
	// from the "." that introduces it through the end of its name, so the
	// byte right after that range's start is the first byte of the tail.
	tailStart := firstAttr.SrcRange.Start.Byte + 1

	for _, step := range traversal[1:] {
		attr, ok := step.(hcl.TraverseAttr)
		if !ok {
			// A dynamic selector (index, splat, interpolated key) appears:
			// the scanner only reports statically-resolvable chains, so the
			// whole occurrence is discarded rather than truncated.
			return Occurrence{}, false
		}

		tailSegments = append(tailSegments, attr.Name)
	}

	full := RootIdentifier
	tail := ""

	for _, seg := range tailSegments {
		full += "." + seg

		if tail == "" {
			tail = seg
		} else {
			tail += "." + seg
		}
	}

	rng := traversal.SourceRange()

	return Occurrence{
		File:      filename,
		Start:     rng.Start.Byte,
		End:       rng.End.Byte,
		StartPos:  rng.Start,
		EndPos:    rng.End,
		TailStart: tailStart,
		Root:      RootIdentifier,
		Tail:      tail,
		Full:      full,
	}, true
}

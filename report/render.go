package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborEncMode = em
}

// Write renders docs to w in the given format. Structured formats emit a
// single list so that several files form one valid document.
func Write(w io.Writer, format Format, docs []*Document) error {
	switch format {
	case FormatText:
		return writeText(w, docs)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(docs))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	case FormatCBOR:
		data, err := cborEncMode.Marshal(docs)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = w.Write(data)
		return errors.WithStack(err)
	}
	return errors.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, docs []*Document) error {
	p := message.NewPrinter(language.English)
	for _, doc := range docs {
		for _, d := range doc.Diagnostics {
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
				doc.File, d.Position.Line, d.Position.Column, d.Kind, d.Message); err != nil {
				return errors.WithStack(err)
			}
		}
		for _, b := range doc.Unused {
			if _, err := fmt.Fprintf(w, "%s:%d:%d: unused %s %s\n",
				doc.File, b.Position.Line, b.Position.Column, b.Kind, b.Name); err != nil {
				return errors.WithStack(err)
			}
		}
		for _, cycle := range doc.DeadCycles {
			names := make([]string, len(cycle))
			for i, b := range cycle {
				names[i] = b.Name
			}
			first := cycle[0].Position
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s only referenced by each other\n",
				doc.File, first.Line, first.Column, strings.Join(names, ", ")); err != nil {
				return errors.WithStack(err)
			}
		}
		s := doc.Summary
		if _, err := p.Fprintf(w, "%s: %d scopes, %d bindings, %d references (%s), %d errors\n",
			doc.File, s.Scopes, s.Bindings, s.References, tally(p, doc.References), s.Errors); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// tally counts references by kind, e.g. "3 read, 1 write".
func tally(p *message.Printer, refs []Reference) string {
	counts := make(map[string]int)
	for _, ref := range refs {
		counts[ref.Kind]++
	}
	kinds := maps.Keys(counts)
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, p.Sprintf("%d %s", counts[kind], kind))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// WriteScopes prints the scope tree of doc, one scope per line indented by
// depth, followed by its bindings.
func WriteScopes(w io.Writer, doc *Document) error {
	children := make(map[int][]Scope)
	var roots []Scope
	for _, s := range doc.Scopes {
		if s.Parent == 0 {
			roots = append(roots, s)
			continue
		}
		children[s.Parent] = append(children[s.Parent], s)
	}

	var visit func(s Scope, depth int) error
	visit = func(s Scope, depth int) error {
		indent := strings.Repeat("  ", depth)
		header := fmt.Sprintf("%s%s #%d", indent, s.Kind, s.Mark)
		if s.Loop != "" {
			header += " (" + s.Loop + " head)"
		}
		if s.Strict {
			header += " strict"
		}
		if s.Start.Line > 0 {
			header += fmt.Sprintf(" @%d:%d", s.Start.Line, s.Start.Column)
		}
		if len(s.Free) > 0 {
			header += " captures " + strings.Join(s.Free, ", ")
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return errors.WithStack(err)
		}
		for _, b := range s.Bindings {
			line := fmt.Sprintf("%s  - %s %s [%s] refs=%d", indent, b.Kind, b.Name, b.Hoisting, b.References)
			if b.PerIteration {
				line += " per-iteration"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return errors.WithStack(err)
			}
		}
		for _, c := range children[s.Mark] {
			if err := visit(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, s := range roots {
		if err := visit(s, 0); err != nil {
			return err
		}
	}
	return nil
}

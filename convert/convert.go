// Package convert maps a parsed CoNLL-U document onto the multi-layer
// LiITA corpus graph and serializes it as Turtle.
package convert

import (
	"github.com/liitahub/conllu2rdf/conllu"
	"github.com/liitahub/conllu2rdf/rdf"
)

// Metadata is the fixed record of document-level fields carried into the
// graph. CorpusRef is the base IRI every synthesized URI hangs under.
type Metadata struct {
	ID          string
	Title       string
	Contributor string
	CorpusRef   string
	Author      string
	SeeAlso     string
	Description string
}

// Labels are the citation-unit level names, used both in hasRefType
// literals and in synthesized path segments.
type Labels struct {
	Document  string
	Paragraph string
	Sentence  string
}

// Options controls which graph layers a conversion emits. Start from
// DefaultOptions; the zero value disables every optional layer.
type Options struct {
	// IncludeCitationLayer emits the Document/Paragraph/Sentence citation
	// hierarchy. Tokens are emitted either way, since later layers
	// reference them.
	IncludeCitationLayer bool

	// IncludeMorphologicalLayer gates both the morphology annotation
	// layer and the dependency-relation nodes. The two layers share one
	// flag; keep them coupled.
	IncludeMorphologicalLayer bool

	Labels Labels
}

// DefaultOptions returns the standard conversion options: every layer
// enabled, English level labels.
func DefaultOptions() Options {
	return Options{
		IncludeCitationLayer:      true,
		IncludeMorphologicalLayer: true,
		Labels: Labels{
			Document:  "Document",
			Paragraph: "Paragraph",
			Sentence:  "Sentence",
		},
	}
}

func (o Options) withLabelDefaults() Options {
	defaults := DefaultOptions().Labels
	if o.Labels.Document == "" {
		o.Labels.Document = defaults.Document
	}
	if o.Labels.Paragraph == "" {
		o.Labels.Paragraph = defaults.Paragraph
	}
	if o.Labels.Sentence == "" {
		o.Labels.Sentence = defaults.Sentence
	}
	return o
}

// Convert maps a document onto the corpus graph and renders it as Turtle.
func Convert(doc *conllu.Document, meta Metadata, opts Options) (string, error) {
	g, err := MapToGraph(doc, meta, opts)
	if err != nil {
		return "", err
	}
	return rdf.WriteTurtle(g), nil
}

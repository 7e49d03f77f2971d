// Package citation groups the sentences of a parsed document into an
// optional Document → Paragraph → Sentence tree, driven by newdoc/newpar
// boundary markers embedded in sentence comments.
package citation

import (
	"regexp"

	"github.com/liitahub/conllu2rdf/conllu"
)

// SentenceGroup is one sentence inside its owning group, with its 1-based
// index within that group.
type SentenceGroup struct {
	Sentence *conllu.Sentence
	Index    int
}

// ParagraphGroup is one paragraph-level citation unit.
type ParagraphGroup struct {
	ID        string
	Index     int
	Sentences []SentenceGroup
}

// DocumentContent is the content of a DocumentGroup: either paragraph
// units or, when no newpar marker occurs anywhere, the sentences directly.
type DocumentContent interface {
	isDocumentContent()
}

// Paragraphs is document content with a paragraph level.
type Paragraphs []*ParagraphGroup

func (Paragraphs) isDocumentContent() {}

// DirectSentences is document content whose sentences attach directly to
// the document, with no paragraph-level citation unit.
type DirectSentences []SentenceGroup

func (DirectSentences) isDocumentContent() {}

// DocumentGroup is one document-level citation unit.
type DocumentGroup struct {
	ID      string
	Index   int
	Content DocumentContent
}

// Hierarchy is the grouping of one document's sentences. Exactly one of
// the three top-level shapes applies: Documents when any sentence carries
// a newdoc marker, else Paragraphs when any carries a newpar marker, else
// Sentences directly. It lives for a single conversion.
type Hierarchy struct {
	HasNewdoc bool
	HasNewpar bool

	Documents  []*DocumentGroup
	Paragraphs []*ParagraphGroup
	Sentences  []SentenceGroup
}

// Marker is a recognized newdoc or newpar boundary on a sentence.
type Marker struct {
	Present bool
	ID      string
}

var freeformMarkerPattern = regexp.MustCompile(`^(newdoc|newpar)(?:\s+id)?\s*[:=]?\s*(\S*)\s*$`)

// markerOf inspects a sentence's comments for the given marker kind
// ("newdoc" or "newpar"). Three comment shapes are recognized, in
// precedence order: the metadata shape ("# newdoc id = x"), the typed
// shape ("# newdoc = x"), and a regex-matched freeform shape.
func markerOf(s *conllu.Sentence, kind string) Marker {
	for _, c := range s.Comments {
		if c.Kind == conllu.CommentMetadata && c.Key == kind+" id" {
			return Marker{Present: true, ID: c.Value}
		}
	}
	for _, c := range s.Comments {
		if c.Kind == conllu.CommentMetadata && c.Key == kind {
			return Marker{Present: true, ID: c.Value}
		}
	}
	for _, c := range s.Comments {
		if c.Kind != conllu.CommentFreeform {
			continue
		}
		m := freeformMarkerPattern.FindStringSubmatch(c.Text)
		if m != nil && m[1] == kind {
			return Marker{Present: true, ID: m[2]}
		}
	}
	return Marker{}
}

// docBuild keeps a document's content mutable during the scan; Content is
// committed once the scan finishes.
type docBuild struct {
	group      *DocumentGroup
	paragraphs []*ParagraphGroup
	direct     []SentenceGroup
}

// Build groups sentences in a single left-to-right scan. Sentences with no
// marker attach to the most recently opened group; if none is open yet an
// implicit group numbered from 1 is created. A newdoc marker starts a new
// document group and resets the paragraph counter.
func Build(sentences []*conllu.Sentence) *Hierarchy {
	h := &Hierarchy{}

	docMarkers := make([]Marker, len(sentences))
	parMarkers := make([]Marker, len(sentences))
	for i, s := range sentences {
		docMarkers[i] = markerOf(s, "newdoc")
		parMarkers[i] = markerOf(s, "newpar")
		h.HasNewdoc = h.HasNewdoc || docMarkers[i].Present
		h.HasNewpar = h.HasNewpar || parMarkers[i].Present
	}

	switch {
	case h.HasNewdoc:
		buildDocuments(h, sentences, docMarkers, parMarkers)
	case h.HasNewpar:
		h.Paragraphs = buildParagraphs(sentences, parMarkers)
	default:
		for _, s := range sentences {
			h.Sentences = append(h.Sentences, SentenceGroup{Sentence: s, Index: len(h.Sentences) + 1})
		}
	}

	return h
}

func buildDocuments(h *Hierarchy, sentences []*conllu.Sentence, docMarkers, parMarkers []Marker) {
	var builds []*docBuild
	var current *docBuild
	var currentPar *ParagraphGroup
	docIndex, parIndex := 0, 0

	for i, s := range sentences {
		if docMarkers[i].Present || current == nil {
			docIndex++
			parIndex = 0
			current = &docBuild{group: &DocumentGroup{ID: docMarkers[i].ID, Index: docIndex}}
			builds = append(builds, current)
			currentPar = nil
		}

		if !h.HasNewpar {
			current.direct = append(current.direct, SentenceGroup{Sentence: s, Index: len(current.direct) + 1})
			continue
		}
		if parMarkers[i].Present || currentPar == nil {
			parIndex++
			currentPar = &ParagraphGroup{ID: parMarkers[i].ID, Index: parIndex}
			current.paragraphs = append(current.paragraphs, currentPar)
		}
		currentPar.Sentences = append(currentPar.Sentences, SentenceGroup{Sentence: s, Index: len(currentPar.Sentences) + 1})
	}

	for _, b := range builds {
		if h.HasNewpar {
			b.group.Content = Paragraphs(b.paragraphs)
		} else {
			b.group.Content = DirectSentences(b.direct)
		}
		h.Documents = append(h.Documents, b.group)
	}
}

func buildParagraphs(sentences []*conllu.Sentence, parMarkers []Marker) []*ParagraphGroup {
	var paragraphs []*ParagraphGroup
	var current *ParagraphGroup
	for i, s := range sentences {
		if parMarkers[i].Present || current == nil {
			current = &ParagraphGroup{ID: parMarkers[i].ID, Index: len(paragraphs) + 1}
			paragraphs = append(paragraphs, current)
		}
		current.Sentences = append(current.Sentences, SentenceGroup{Sentence: s, Index: len(current.Sentences) + 1})
	}
	return paragraphs
}

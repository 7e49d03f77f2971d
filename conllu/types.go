// Package conllu provides types, a lenient parser, a serializer and a
// structural validator for the CoNLL-U sentence-annotation format.
//
// For a description of the format see
// https://universaldependencies.org/format.html
package conllu

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Field count and separators of the tabular format.
const (
	NumFields         = 10
	FieldSeparator    = "\t"
	FeatsSeparator    = "|"
	FeatureSeparator  = "="
	MiscSeparator     = "|"
	AbsentPlaceholder = "_"
)

// MiscLinkedURIsKey is the MISC key whose value is a JSON-encoded array of
// lemma-bank link URIs attached to a token.
const MiscLinkedURIsKey = "LiITALinkedURIs"

var (
	regularIDPattern   = regexp.MustCompile(`^[0-9]+$`)
	rangeIDPattern     = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)
	emptyNodeIDPattern = regexp.MustCompile(`^([0-9]+)\.([0-9]+)$`)
)

// Feature is a single morphological feature. Feats on a token keep their
// parse order; serialization sorts them by key.
type Feature struct {
	Key   string
	Value string
}

// Token is one row of a sentence block. Absent optional fields hold the
// empty string; Feats and Misc are nil when absent.
type Token struct {
	// ID is the raw first column: an integer, a range "N-M" for a
	// multiword token, "N.M" for an empty node, or "_".
	ID     string
	Form   string
	Lemma  string
	UPos   string
	XPos   string
	Feats  []Feature
	Head   string
	Deprel string
	Deps   string
	// Misc holds the raw |-separated key=value entries in order.
	Misc []string
}

// IsMultiword reports whether the token spans an id range.
func (t Token) IsMultiword() bool {
	return rangeIDPattern.MatchString(t.ID)
}

// IsEmptyNode reports whether the token is an elided (decimal-id) node.
func (t Token) IsEmptyNode() bool {
	return emptyNodeIDPattern.MatchString(t.ID)
}

// Misc value lookup by key. Entries without "=" never match.
func (t Token) MiscValue(key string) (string, bool) {
	for _, entry := range t.Misc {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// LinkedURIs decodes the JSON array carried under the LiITALinkedURIs MISC
// key. Returns nil when the key is absent or its value does not decode.
func (t Token) LinkedURIs() []string {
	raw, ok := t.MiscValue(MiscLinkedURIsKey)
	if !ok {
		return nil
	}
	var uris []string
	if err := json.Unmarshal([]byte(raw), &uris); err != nil {
		return nil
	}
	return uris
}

// CommentKind discriminates the two comment shapes.
type CommentKind int

const (
	// CommentMetadata is a "# key = value" line.
	CommentMetadata CommentKind = iota
	// CommentFreeform is any other "#" line.
	CommentFreeform
)

// Comment is a tagged variant: metadata comments carry Key and Value,
// freeform comments carry Text.
type Comment struct {
	Kind  CommentKind
	Key   string
	Value string
	Text  string
}

// Sentence is one blank-line-delimited block: its comments followed by its
// token rows, both in file order.
type Sentence struct {
	Comments []Comment
	Tokens   []Token
}

// Metadata returns the value of the first metadata comment with the given
// key.
func (s *Sentence) Metadata(key string) (string, bool) {
	for _, c := range s.Comments {
		if c.Kind == CommentMetadata && c.Key == key {
			return c.Value, true
		}
	}
	return "", false
}

// SentID returns the sent_id metadata value, if present.
func (s *Sentence) SentID() (string, bool) { return s.Metadata("sent_id") }

// Text returns the text metadata value, if present.
func (s *Sentence) Text() (string, bool) { return s.Metadata("text") }

// Document is an ordered sequence of sentences. It is owned by the
// conversion that parsed it and is not mutated afterwards.
type Document struct {
	Sentences []Sentence
}

package conllu

import (
	"fmt"
	"strings"
)

// Parse converts raw CoNLL-U text into a Document.
//
// Parsing is lenient: token rows with fewer than NumFields columns are
// skipped, and malformed FEATS or MISC values degrade to absent on that
// token only. Rows with more than NumFields columns abort the parse, since
// extra columns shift every following field. Validate applies the strict
// rules independently.
func Parse(text string) (*Document, error) {
	doc := &Document{}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var current *Sentence
	flush := func() {
		if current != nil && (len(current.Comments) > 0 || len(current.Tokens) > 0) {
			doc.Sentences = append(doc.Sentences, *current)
		}
		current = nil
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current == nil {
			current = &Sentence{}
		}
		if strings.HasPrefix(line, "#") {
			current.Comments = append(current.Comments, parseComment(line))
			continue
		}
		fields := strings.Split(line, FieldSeparator)
		if len(fields) < NumFields {
			// Lenient mode: a short row degrades to nothing.
			continue
		}
		if len(fields) > NumFields {
			return nil, fmt.Errorf("line %d: %d fields, want %d", i+1, len(fields), NumFields)
		}
		current.Tokens = append(current.Tokens, parseToken(fields))
	}
	flush()

	return doc, nil
}

// parseComment splits a "#" line on the first "=" into a metadata comment,
// falling back to freeform.
func parseComment(line string) Comment {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	if key, value, ok := strings.Cut(body, "="); ok {
		key = strings.TrimSpace(key)
		if key != "" {
			return Comment{Kind: CommentMetadata, Key: key, Value: strings.TrimSpace(value)}
		}
	}
	return Comment{Kind: CommentFreeform, Text: body}
}

func parseToken(fields []string) Token {
	return Token{
		ID:     fields[0],
		Form:   fields[1],
		Lemma:  optional(fields[2]),
		UPos:   optional(fields[3]),
		XPos:   optional(fields[4]),
		Feats:  parseFeats(fields[5]),
		Head:   optional(fields[6]),
		Deprel: optional(fields[7]),
		Deps:   optional(fields[8]),
		Misc:   parseMisc(fields[9]),
	}
}

func optional(field string) string {
	if field == AbsentPlaceholder {
		return ""
	}
	return field
}

// parseFeats splits a FEATS column into ordered key=value pairs. Any
// malformed segment (no "=", empty key, duplicate key) swallows the whole
// column to absent.
func parseFeats(field string) []Feature {
	if field == AbsentPlaceholder || field == "" {
		return nil
	}
	segments := strings.Split(field, FeatsSeparator)
	feats := make([]Feature, 0, len(segments))
	seen := make(map[string]bool, len(segments))
	for _, seg := range segments {
		key, value, ok := strings.Cut(seg, FeatureSeparator)
		if !ok || key == "" || seen[key] {
			return nil
		}
		seen[key] = true
		feats = append(feats, Feature{Key: key, Value: value})
	}
	return feats
}

// parseMisc keeps the raw |-separated entries. An empty segment swallows
// the whole column to absent.
func parseMisc(field string) []string {
	if field == AbsentPlaceholder || field == "" {
		return nil
	}
	segments := strings.Split(field, MiscSeparator)
	for _, seg := range segments {
		if seg == "" {
			return nil
		}
	}
	return segments
}

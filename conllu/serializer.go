package conllu

import (
	"sort"
	"strings"
)

// Serialize renders a Document back into CoNLL-U text. It is the
// structural inverse of Parse: a document obtained from Parse re-parses to
// an equal document, though arbitrary input text is not byte-preserved
// (feats come out key-sorted, comment spacing is normalized).
func Serialize(doc *Document) string {
	var sb strings.Builder
	for _, sentence := range doc.Sentences {
		for _, c := range sentence.Comments {
			sb.WriteString(serializeComment(c))
			sb.WriteString("\n")
		}
		for _, t := range sentence.Tokens {
			sb.WriteString(serializeToken(t))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func serializeComment(c Comment) string {
	if c.Kind == CommentMetadata {
		return "# " + c.Key + " = " + c.Value
	}
	return "# " + c.Text
}

func serializeToken(t Token) string {
	fields := []string{
		t.ID,
		t.Form,
		placeholder(t.Lemma),
		placeholder(t.UPos),
		placeholder(t.XPos),
		serializeFeats(t.Feats),
		placeholder(t.Head),
		placeholder(t.Deprel),
		placeholder(t.Deps),
		serializeMisc(t.Misc),
	}
	return strings.Join(fields, FieldSeparator)
}

func placeholder(field string) string {
	if field == "" {
		return AbsentPlaceholder
	}
	return field
}

// serializeFeats emits features sorted by key, per the format definition.
func serializeFeats(feats []Feature) string {
	if len(feats) == 0 {
		return AbsentPlaceholder
	}
	segments := make([]string, len(feats))
	for i, f := range feats {
		segments[i] = f.Key + FeatureSeparator + f.Value
	}
	sort.Strings(segments)
	return strings.Join(segments, FeatsSeparator)
}

func serializeMisc(misc []string) string {
	if len(misc) == 0 {
		return AbsentPlaceholder
	}
	return strings.Join(misc, MiscSeparator)
}

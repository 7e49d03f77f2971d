package conllu

import (
	"fmt"
	"strconv"
	"strings"
)

// Report is the outcome of Validate. Errors holds one human-readable
// diagnostic per violated rule, each tied to a 1-based line number.
type Report struct {
	IsValid bool
	Errors  []string
}

// Validate re-scans raw CoNLL-U text and accumulates structural
// diagnostics. It never aborts: every violation it can find is reported,
// and callers decide whether any diagnostic is fatal. Validation is
// independent of Parse leniency, so text can parse successfully and still
// fail validation.
func Validate(text string) Report {
	v := &validator{}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	sentence := newSentenceState()
	for i, line := range lines {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			v.finishSentence(sentence)
			sentence = newSentenceState()
			continue
		}
		if sentence.startLine == 0 {
			sentence.startLine = lineNo
		}
		if strings.HasPrefix(line, "#") {
			c := parseComment(line)
			if c.Kind == CommentMetadata {
				sentence.metadata[c.Key] = true
			}
			continue
		}
		v.checkTokenLine(lineNo, line, sentence)
	}
	v.finishSentence(sentence)

	return Report{IsValid: len(v.errors) == 0, Errors: v.errors}
}

type validator struct {
	errors []string
}

func (v *validator) addf(lineNo int, format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf("line %d: %s", lineNo, fmt.Sprintf(format, args...)))
}

// sentenceState accumulates the cross-row facts needed for per-sentence
// rules: multiword ranges, empty-node numbering, metadata presence.
type sentenceState struct {
	startLine  int
	tokenCount int
	metadata   map[string]bool
	ranges     [][2]int // closed multiword intervals in order
	rangeLines []int
	emptySeq   map[int]int // empty-node base -> last decimal seen
}

func newSentenceState() *sentenceState {
	return &sentenceState{
		metadata: make(map[string]bool),
		emptySeq: make(map[int]int),
	}
}

// Field positions, 0-based, in the fixed 10-column order.
const (
	colID = iota
	colForm
	colLemma
	colUPos
	colXPos
	colFeats
	colHead
	colDeprel
	colDeps
	colMisc
)

var fieldNames = [NumFields]string{
	"ID", "FORM", "LEMMA", "UPOS", "XPOS", "FEATS", "HEAD", "DEPREL", "DEPS", "MISC",
}

func (v *validator) checkTokenLine(lineNo int, line string, sentence *sentenceState) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) != NumFields {
		v.addf(lineNo, "%d fields, want %d", len(fields), NumFields)
		return
	}
	sentence.tokenCount++

	// Whitespace is only allowed in FORM, LEMMA and MISC.
	for i, field := range fields {
		if i == colForm || i == colLemma || i == colMisc {
			continue
		}
		if strings.ContainsAny(field, " \t") {
			v.addf(lineNo, "%s contains whitespace: %q", fieldNames[i], field)
		}
	}

	v.checkFeats(lineNo, fields[colFeats])
	v.checkMisc(lineNo, fields[colMisc])

	id := fields[colID]
	switch {
	case id == AbsentPlaceholder:
		// Placeholder rows carry no category restrictions.
	case regularIDPattern.MatchString(id):
		v.checkRegular(lineNo, fields)
	case rangeIDPattern.MatchString(id):
		v.checkMultiword(lineNo, id, fields, sentence)
	case emptyNodeIDPattern.MatchString(id):
		v.checkEmptyNode(lineNo, id, fields, sentence)
	default:
		v.addf(lineNo, "illegal ID %q", id)
	}
}

func (v *validator) checkRegular(lineNo int, fields []string) {
	head := fields[colHead]
	if n, err := strconv.Atoi(head); err != nil || n < 0 {
		v.addf(lineNo, "HEAD must be a non-negative integer, got %q", head)
	}
	if fields[colDeprel] == AbsentPlaceholder {
		v.addf(lineNo, "DEPREL is required on regular tokens")
	}
}

func (v *validator) checkMultiword(lineNo int, id string, fields []string, sentence *sentenceState) {
	m := rangeIDPattern.FindStringSubmatch(id)
	from, _ := strconv.Atoi(m[1])
	to, _ := strconv.Atoi(m[2])
	if from >= to {
		v.addf(lineNo, "illegal multiword range %q", id)
	} else {
		for i, prev := range sentence.ranges {
			if from <= prev[1] && prev[0] <= to {
				v.addf(lineNo, "multiword range %q overlaps %d-%d (line %d)",
					id, prev[0], prev[1], sentence.rangeLines[i])
			}
		}
		sentence.ranges = append(sentence.ranges, [2]int{from, to})
		sentence.rangeLines = append(sentence.rangeLines, lineNo)
	}

	for _, col := range []int{colLemma, colUPos, colXPos, colHead, colDeprel, colDeps} {
		if fields[col] != AbsentPlaceholder {
			v.addf(lineNo, "%s must be _ on a multiword token, got %q", fieldNames[col], fields[col])
		}
	}
	if feats := fields[colFeats]; feats != AbsentPlaceholder && feats != "Typo=Yes" {
		v.addf(lineNo, "FEATS on a multiword token must be _ or Typo=Yes, got %q", feats)
	}
}

func (v *validator) checkEmptyNode(lineNo int, id string, fields []string, sentence *sentenceState) {
	m := emptyNodeIDPattern.FindStringSubmatch(id)
	base, _ := strconv.Atoi(m[1])
	decimal, _ := strconv.Atoi(m[2])
	if decimal != sentence.emptySeq[base]+1 {
		v.addf(lineNo, "empty node %q breaks consecutive numbering for base %d", id, base)
	}
	sentence.emptySeq[base] = decimal

	if fields[colHead] != AbsentPlaceholder {
		v.addf(lineNo, "HEAD must be _ on an empty node, got %q", fields[colHead])
	}
	if fields[colDeprel] != AbsentPlaceholder {
		v.addf(lineNo, "DEPREL must be _ on an empty node, got %q", fields[colDeprel])
	}
	if fields[colDeps] == AbsentPlaceholder {
		v.addf(lineNo, "DEPS is required on an empty node")
	}
}

// checkFeats enforces the FEATS grammar: every |-separated segment must
// contain = with a non-empty key.
func (v *validator) checkFeats(lineNo int, field string) {
	if field == AbsentPlaceholder {
		return
	}
	for _, seg := range strings.Split(field, FeatsSeparator) {
		key, _, ok := strings.Cut(seg, FeatureSeparator)
		if !ok || key == "" {
			v.addf(lineNo, "malformed FEATS segment %q", seg)
		}
	}
}

// checkMisc enforces the MISC constraints: segments must be non-empty,
// free of control characters, and carry no leading or trailing space.
func (v *validator) checkMisc(lineNo int, field string) {
	if field == AbsentPlaceholder {
		return
	}
	for _, seg := range strings.Split(field, MiscSeparator) {
		switch {
		case seg == "":
			v.addf(lineNo, "empty MISC segment")
		case seg != strings.TrimSpace(seg):
			v.addf(lineNo, "MISC segment %q has leading or trailing space", seg)
		case strings.ContainsFunc(seg, func(r rune) bool { return r < 0x20 || r == 0x7f }):
			v.addf(lineNo, "MISC segment %q contains control characters", seg)
		}
	}
}

func (v *validator) finishSentence(sentence *sentenceState) {
	if sentence.tokenCount == 0 {
		return
	}
	for _, key := range []string{"sent_id", "text"} {
		if !sentence.metadata[key] {
			v.addf(sentence.startLine, "sentence is missing required %s metadata comment", key)
		}
	}
}

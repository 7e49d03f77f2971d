package rdf

import (
	"fmt"
	"strings"
)

// ReadTurtle parses Turtle text back into a Graph. It is a minimal reader
// meant for round-trip testing of WriteTurtle output: it handles @prefix
// declarations, prefixed names, angle-bracket IRIs, blank nodes, literals
// with datatype or language tag, the "a" keyword, and ";" / "," object
// lists. It is not a general-purpose Turtle parser.
func ReadTurtle(text string) (*Graph, error) {
	r := &reader{input: text}
	g := NewGraph()
	namespaces := make(map[string]string)

	for {
		r.skipSpace()
		if r.done() {
			return g, nil
		}
		if r.consume("@prefix") {
			label, ns, err := r.readPrefix()
			if err != nil {
				return nil, err
			}
			g.AddPrefix(label, ns)
			namespaces[label] = ns
			continue
		}
		if err := r.readSubjectBlock(g, namespaces); err != nil {
			return nil, err
		}
	}
}

type reader struct {
	input string
	pos   int
}

func (r *reader) done() bool { return r.pos >= len(r.input) }

func (r *reader) skipSpace() {
	for !r.done() {
		switch r.input[r.pos] {
		case ' ', '\t', '\n', '\r':
			r.pos++
		default:
			return
		}
	}
}

func (r *reader) consume(keyword string) bool {
	if strings.HasPrefix(r.input[r.pos:], keyword) {
		r.pos += len(keyword)
		return true
	}
	return false
}

func (r *reader) errf(format string, args ...any) error {
	return fmt.Errorf("turtle: offset %d: %s", r.pos, fmt.Sprintf(format, args...))
}

func (r *reader) readPrefix() (label, ns string, err error) {
	r.skipSpace()
	start := r.pos
	for !r.done() && r.input[r.pos] != ':' {
		r.pos++
	}
	if r.done() {
		return "", "", r.errf("unterminated @prefix")
	}
	label = strings.TrimSpace(r.input[start:r.pos])
	r.pos++ // ':'
	r.skipSpace()
	iri, err := r.readIRIRef()
	if err != nil {
		return "", "", err
	}
	r.skipSpace()
	if !r.consume(".") {
		return "", "", r.errf("expected '.' after @prefix")
	}
	return label, string(iri), nil
}

func (r *reader) readSubjectBlock(g *Graph, namespaces map[string]string) error {
	subject, err := r.readTerm(namespaces)
	if err != nil {
		return err
	}
	for {
		r.skipSpace()
		var predicate IRI
		if r.consume("a ") || r.consume("a\n") {
			predicate = RDFType
		} else {
			term, err := r.readTerm(namespaces)
			if err != nil {
				return err
			}
			iri, ok := term.(IRI)
			if !ok {
				return r.errf("predicate is not an IRI")
			}
			predicate = iri
		}
		for {
			r.skipSpace()
			object, err := r.readTerm(namespaces)
			if err != nil {
				return err
			}
			g.AddTriple(subject, predicate, object)
			r.skipSpace()
			if !r.consume(",") {
				break
			}
		}
		if r.consume(";") {
			continue
		}
		if r.consume(".") {
			return nil
		}
		return r.errf("expected ';' or '.'")
	}
}

func (r *reader) readTerm(namespaces map[string]string) (Term, error) {
	r.skipSpace()
	if r.done() {
		return nil, r.errf("unexpected end of input")
	}
	switch r.input[r.pos] {
	case '<':
		return r.readIRIRef()
	case '"':
		return r.readLiteral(namespaces)
	case '_':
		return r.readBlankNode()
	default:
		return r.readPrefixedName(namespaces)
	}
}

func (r *reader) readIRIRef() (IRI, error) {
	if !r.consume("<") {
		return "", r.errf("expected '<'")
	}
	start := r.pos
	for !r.done() && r.input[r.pos] != '>' {
		r.pos++
	}
	if r.done() {
		return "", r.errf("unterminated IRI")
	}
	iri := r.input[start:r.pos]
	r.pos++ // '>'
	return IRI(iri), nil
}

func (r *reader) readBlankNode() (BlankNode, error) {
	if !r.consume("_:") {
		return "", r.errf("expected blank node")
	}
	start := r.pos
	for !r.done() && !isTermBoundary(r.input[r.pos]) {
		r.pos++
	}
	return BlankNode(r.input[start:r.pos]), nil
}

func (r *reader) readLiteral(namespaces map[string]string) (Literal, error) {
	r.pos++ // opening quote
	var value strings.Builder
	for {
		if r.done() {
			return Literal{}, r.errf("unterminated literal")
		}
		ch := r.input[r.pos]
		if ch == '"' {
			r.pos++
			break
		}
		if ch == '\\' && r.pos+1 < len(r.input) {
			r.pos++
			switch r.input[r.pos] {
			case 'n':
				value.WriteByte('\n')
			case 'r':
				value.WriteByte('\r')
			case 't':
				value.WriteByte('\t')
			default:
				value.WriteByte(r.input[r.pos])
			}
			r.pos++
			continue
		}
		value.WriteByte(ch)
		r.pos++
	}

	lit := Literal{Value: value.String()}
	if r.consume("^^") {
		term, err := r.readTerm(namespaces)
		if err != nil {
			return Literal{}, err
		}
		dt, ok := term.(IRI)
		if !ok {
			return Literal{}, r.errf("datatype is not an IRI")
		}
		lit.Datatype = dt
	} else if r.consume("@") {
		start := r.pos
		for !r.done() && !isTermBoundary(r.input[r.pos]) {
			r.pos++
		}
		lit.Lang = r.input[start:r.pos]
	}
	return lit, nil
}

func (r *reader) readPrefixedName(namespaces map[string]string) (IRI, error) {
	start := r.pos
	for !r.done() && r.input[r.pos] != ':' {
		if isTermBoundary(r.input[r.pos]) {
			return "", r.errf("expected prefixed name")
		}
		r.pos++
	}
	if r.done() {
		return "", r.errf("unterminated prefixed name")
	}
	label := r.input[start:r.pos]
	r.pos++ // ':'
	localStart := r.pos
	for !r.done() && !isTermBoundary(r.input[r.pos]) {
		r.pos++
	}
	local := r.input[localStart:r.pos]
	ns, ok := namespaces[label]
	if !ok {
		return "", r.errf("undeclared prefix %q", label)
	}
	return IRI(ns + local), nil
}

func isTermBoundary(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', ',', ';', '.':
		return true
	}
	return false
}

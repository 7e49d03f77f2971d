package rdf

import (
	"fmt"
	"strings"
)

const (
	indent = "    "

	// Subjects longer than this, when their first predicate is rdf:type,
	// are written alone on their line with every predicate indented below.
	subjectWrapLength = 60
)

// WriteTurtle renders a graph as Turtle: the prefix block in declaration
// order, a blank line, then one block per subject. Subjects keep
// first-occurrence order; within a subject, predicates keep
// first-occurrence order and objects sharing a predicate are comma-joined
// in insertion order. rdf:type is always abbreviated to "a", and
// xsd:integer datatypes are written with the short form xsd:int.
func WriteTurtle(g *Graph) string {
	var sb strings.Builder

	for _, p := range g.Prefixes() {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p.Label, p.Namespace)
	}
	sb.WriteString("\n")

	for _, block := range groupBySubject(g.Triples()) {
		writeSubjectBlock(&sb, g, block)
	}

	return sb.String()
}

// subjectBlock is one subject with its predicates in first-occurrence
// order and, per predicate, the objects in insertion order.
type subjectBlock struct {
	subject    Term
	predicates []IRI
	objects    map[IRI][]Term
}

func groupBySubject(triples []Triple) []*subjectBlock {
	var blocks []*subjectBlock
	index := make(map[Term]*subjectBlock)
	for _, t := range triples {
		block, ok := index[t.Subject]
		if !ok {
			block = &subjectBlock{subject: t.Subject, objects: make(map[IRI][]Term)}
			index[t.Subject] = block
			blocks = append(blocks, block)
		}
		if _, seen := block.objects[t.Predicate]; !seen {
			block.predicates = append(block.predicates, t.Predicate)
		}
		block.objects[t.Predicate] = append(block.objects[t.Predicate], t.Object)
	}
	return blocks
}

func (b *subjectBlock) tripleCount() int {
	n := 0
	for _, objects := range b.objects {
		n += len(objects)
	}
	return n
}

func writeSubjectBlock(sb *strings.Builder, g *Graph, block *subjectBlock) {
	subject := g.renderTerm(block.subject)

	if block.tripleCount() == 1 {
		pred := block.predicates[0]
		object := g.renderTerm(block.objects[pred][0])
		fmt.Fprintf(sb, "%s %s %s .\n\n", subject, g.renderPredicate(pred), object)
		return
	}

	// Long subjects whose first predicate is a type assertion get the
	// subject on its own line; everything else keeps the first predicate
	// inline.
	wrap := len(subject) > subjectWrapLength && block.predicates[0] == RDFType
	if wrap {
		sb.WriteString(subject)
		sb.WriteString("\n")
	} else {
		sb.WriteString(subject)
		sb.WriteString(" ")
	}

	for i, pred := range block.predicates {
		rendered := make([]string, len(block.objects[pred]))
		for j, object := range block.objects[pred] {
			rendered[j] = g.renderTerm(object)
		}
		line := g.renderPredicate(pred) + " " + strings.Join(rendered, ", ")
		if i > 0 || wrap {
			sb.WriteString(indent)
		}
		sb.WriteString(line)
		if i == len(block.predicates)-1 {
			sb.WriteString(" .\n")
		} else {
			sb.WriteString(" ;\n")
		}
	}
	sb.WriteString("\n")
}

func (g *Graph) renderPredicate(p IRI) string {
	if p == RDFType {
		return "a"
	}
	return g.renderIRI(p)
}

func (g *Graph) renderTerm(t Term) string {
	switch t := t.(type) {
	case IRI:
		return g.renderIRI(t)
	case BlankNode:
		return "_:" + string(t)
	case Literal:
		return g.renderLiteral(t)
	default:
		return ""
	}
}

// renderIRI compacts an IRI against the declared prefixes (longest
// namespace match wins) and otherwise wraps it in angle brackets. A local
// name that itself begins with http:// or https:// or the blank-node sigil
// is never produced; such IRIs stay in angle brackets.
func (g *Graph) renderIRI(iri IRI) string {
	s := string(iri)
	bestLabel, bestLen := "", -1
	for _, p := range g.prefixes {
		if strings.HasPrefix(s, p.Namespace) && len(p.Namespace) > bestLen {
			bestLabel, bestLen = p.Label, len(p.Namespace)
		}
	}
	if bestLen >= 0 {
		local := s[bestLen:]
		if !strings.HasPrefix(local, "http://") && !strings.HasPrefix(local, "https://") && !strings.HasPrefix(local, "_:") {
			return bestLabel + ":" + local
		}
	}
	return "<" + s + ">"
}

func (g *Graph) renderLiteral(l Literal) string {
	out := `"` + escapeLiteral(l.Value) + `"`
	switch {
	case l.Lang != "":
		out += "@" + l.Lang
	case l.Datatype == XSDInteger:
		// Fixed serialization quirk: the integer datatype is always
		// written as xsd:int, not the canonical xsd:integer.
		out += "^^xsd:int"
	case l.Datatype != "":
		out += "^^" + g.renderIRI(l.Datatype)
	}
	return out
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

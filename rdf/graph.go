// Package rdf provides a minimal ordered triple store and a Turtle writer,
// plus a reader sufficient for round-trip testing. It is independent of
// any ontology: vocabulary packages supply the IRIs.
package rdf

import "strconv"

// Term is a node of the graph: an IRI, a BlankNode or a Literal.
type Term interface {
	term()
}

// IRI is an absolute IRI reference.
type IRI string

func (IRI) term() {}

// BlankNode is a graph-scoped anonymous node label (without the "_:"
// sigil).
type BlankNode string

func (BlankNode) term() {}

// Literal is a value with an optional datatype IRI or language tag. The
// two are mutually exclusive; constructors keep it that way.
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

func (Literal) term() {}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// TypedLiteral returns a literal with a datatype IRI.
func TypedLiteral(value string, datatype IRI) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// LangLiteral returns a language-tagged literal.
func LangLiteral(value, lang string) Literal {
	return Literal{Value: value, Lang: lang}
}

// IntLiteral returns an xsd:integer-typed literal.
func IntLiteral(n int) Literal {
	return Literal{Value: strconv.Itoa(n), Datatype: XSDInteger}
}

// Triple is one statement. Subject is an IRI or BlankNode, Object any
// Term.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Prefix is one namespace declaration.
type Prefix struct {
	Label     string
	Namespace string
}

// Well-known IRIs the writer special-cases.
const (
	RDFType    IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	XSDInteger IRI = "http://www.w3.org/2001/XMLSchema#integer"
)

// Graph owns an ordered prefix list and an ordered triple list. There is
// no deduplication and no indexing: call order is preserved and affects
// only serialization grouping, never meaning. A Graph belongs to a single
// conversion and is not safe for concurrent mutation.
type Graph struct {
	prefixes []Prefix
	triples  []Triple
	bnodeSeq int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddPrefix appends a namespace declaration.
func (g *Graph) AddPrefix(label, namespace string) {
	g.prefixes = append(g.prefixes, Prefix{Label: label, Namespace: namespace})
}

// AddTriple appends one statement.
func (g *Graph) AddTriple(subject Term, predicate IRI, object Term) {
	g.triples = append(g.triples, Triple{Subject: subject, Predicate: predicate, Object: object})
}

// NewBlankNode returns a fresh blank node. Identity comes from a per-graph
// monotonic counter, so repeated calls never collide within a graph.
func (g *Graph) NewBlankNode() BlankNode {
	g.bnodeSeq++
	return BlankNode("b" + strconv.Itoa(g.bnodeSeq))
}

// Prefixes returns the declarations in insertion order.
func (g *Graph) Prefixes() []Prefix {
	return g.prefixes
}

// Triples returns the statements in insertion order.
func (g *Graph) Triples() []Triple {
	return g.triples
}

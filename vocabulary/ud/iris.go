// Package ud holds the namespace for Universal Dependencies relation
// classes used to type dependency-relation nodes.
package ud

import "net/url"

// Namespace is the base IRI for dependency-relation classes.
const Namespace = "http://liita.it/ontologies/ud/"

// Prefix is the label used when declaring the namespace.
const Prefix = "liitaUD"

// RootRelation is the relation used when a token carries no deprel.
const RootRelation = "root"

// RelationIRI builds the class IRI for a deprel value. Subtyped relations
// such as "acl:relcl" are percent-encoded into a single path segment.
func RelationIRI(deprel string) string {
	if deprel == "" {
		deprel = RootRelation
	}
	return Namespace + url.PathEscape(deprel)
}

// Package lila holds IRI constants of the LiLa linking ontology, used to
// tie token terminals to lemma-bank entries.
package lila

// Namespace is the base IRI of the LiLa ontology.
const Namespace = "http://lila-erc.eu/ontologies/lila/"

// Prefix is the label used when declaring the namespace.
const Prefix = "lilaOntology"

const (
	// PropHasLemma links a terminal to its lemma-bank entry.
	PropHasLemma = Namespace + "hasLemma"
)

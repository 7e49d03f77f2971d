// Package dc holds the standard Dublin Core and RDFS IRI constants used
// for document metadata.
package dc

// TermsNamespace is the Dublin Core terms base IRI.
const TermsNamespace = "http://purl.org/dc/terms/"

// TermsPrefix is the label used when declaring TermsNamespace.
const TermsPrefix = "dcterms"

const (
	// Identifier is the document identifier property.
	Identifier = TermsNamespace + "identifier"

	// Title is the document title property.
	Title = TermsNamespace + "title"

	// Contributor is the document contributor property.
	Contributor = TermsNamespace + "contributor"

	// Creator is the document author property.
	Creator = TermsNamespace + "creator"

	// Description is the document description property.
	Description = TermsNamespace + "description"
)

// RDFSNamespace is the RDF Schema base IRI.
const RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

// RDFSPrefix is the label used when declaring RDFSNamespace.
const RDFSPrefix = "rdfs"

// SeeAlso is the rdfs:seeAlso property.
const SeeAlso = RDFSNamespace + "seeAlso"

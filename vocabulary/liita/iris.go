// Package liita holds the LiITA-specific namespaces: the lemma bank, the
// citation-structure vocabulary and the morphological-feature bank.
package liita

// Lemma-bank namespaces. A token's linked URI selects one of the two by
// whether it points into the hypolemma subtree.
const (
	// LemmaNamespace is the base IRI for lemma entries.
	LemmaNamespace = "http://liita.it/data/id/lemma/"

	// LemmaPrefix is the declared label for LemmaNamespace.
	LemmaPrefix = "liitaLemma"

	// HypolemmaNamespace is the base IRI for hypolemma entries.
	HypolemmaNamespace = "http://liita.it/data/id/hypolemma/"

	// HypolemmaPrefix is the declared label for HypolemmaNamespace.
	HypolemmaPrefix = "liitaIpoLemma"
)

// Citation-structure vocabulary.
const (
	// CitationNamespace is the base IRI of the citation vocabulary.
	CitationNamespace = "http://liita.it/ontologies/citation-structure/"

	// CitationPrefix is the declared label for CitationNamespace.
	CitationPrefix = "liitaCitation"

	// ClassCitationUnit is one level of a document's citation structure.
	ClassCitationUnit = CitationNamespace + "CitationUnit"

	// PropHasRefType carries the level label of a citation unit
	// ("Document", "Paragraph" or "Sentence" by default).
	PropHasRefType = CitationNamespace + "hasRefType"

	// PropHasRefValue carries the identifier of a citation unit, either
	// the marker-supplied id or the synthesized label_index form.
	PropHasRefValue = CitationNamespace + "hasRefValue"
)

// Morphological-feature bank.
const (
	// MorphFeatureNamespace is the fixed base IRI for feature IRIs built
	// from key/value pairs.
	MorphFeatureNamespace = "http://liita.it/data/morphofeats/"

	// MorphFeaturePrefix is the declared label for MorphFeatureNamespace.
	MorphFeaturePrefix = "liitaMorph"

	// MorphFeatureUnspecified is the placeholder body for tokens without
	// features.
	MorphFeatureUnspecified = MorphFeatureNamespace + "unspecified"
)

// Package powla holds IRI constants of the POWLA ontology, the generic
// linguistic-corpus data model used for document structure, terminals and
// ordering relations.
package powla

// Namespace is the base IRI of the POWLA ontology.
const Namespace = "http://purl.org/powla/powla.owl#"

// Prefix is the label used when declaring the namespace.
const Prefix = "powla"

// Class IRIs for structural nodes.
const (
	// ClassDocument is a whole annotated document.
	ClassDocument = Namespace + "Document"

	// ClassDocumentLayer is one annotation layer over a document.
	ClassDocumentLayer = Namespace + "DocumentLayer"

	// ClassRoot is the root node of one sentence within a layer.
	ClassRoot = Namespace + "Root"

	// ClassTerminal is the node for one token's surface occurrence.
	ClassTerminal = Namespace + "Terminal"

	// ClassRelation is a directed relation between two nodes.
	ClassRelation = Namespace + "Relation"
)

// Property IRIs for structure and ordering.
const (
	// PropHasSubDocument links a corpus to a member document.
	PropHasSubDocument = Namespace + "hasSubDocument"

	// PropHasDocument links a layer to the document it annotates.
	PropHasDocument = Namespace + "hasDocument"

	// PropHasLayer links a node to the layer it belongs to.
	PropHasLayer = Namespace + "hasLayer"

	// PropHasChild links a structural node to an ordered child.
	PropHasChild = Namespace + "hasChild"

	// PropFirst points at the first ordered child of a node.
	PropFirst = Namespace + "first"

	// PropLast points at the last ordered child of a node.
	PropLast = Namespace + "last"

	// PropNext links a node to its following sibling.
	PropNext = Namespace + "next"

	// PropPrevious links a node to its preceding sibling.
	PropPrevious = Namespace + "previous"

	// PropFirstTerminal points at the first terminal under a root.
	PropFirstTerminal = Namespace + "firstTerminal"

	// PropLastTerminal points at the last terminal under a root.
	PropLastTerminal = Namespace + "lastTerminal"

	// PropHasTerminal links a root to each of its terminals.
	PropHasTerminal = Namespace + "hasTerminal"

	// PropHasStringValue carries the surface string of a terminal.
	PropHasStringValue = Namespace + "hasStringValue"

	// PropStart is the character offset where a terminal begins.
	PropStart = Namespace + "start"

	// PropEnd is the character offset where a terminal ends.
	PropEnd = Namespace + "end"

	// PropHasSource is the origin of a relation (the head).
	PropHasSource = Namespace + "hasSource"

	// PropHasTarget is the destination of a relation (the dependent).
	PropHasTarget = Namespace + "hasTarget"
)

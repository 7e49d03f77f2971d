// Package oa holds IRI constants of the W3C Web Annotation vocabulary,
// used for the morphology annotation layer.
package oa

// Namespace is the Web Annotation base IRI.
const Namespace = "http://www.w3.org/ns/oa#"

// Prefix is the label used when declaring the namespace.
const Prefix = "oa"

const (
	// ClassAnnotation is a single annotation.
	ClassAnnotation = Namespace + "Annotation"

	// PropHasBody links an annotation to what is said about the target.
	PropHasBody = Namespace + "hasBody"

	// PropHasTarget links an annotation to the node it describes.
	PropHasTarget = Namespace + "hasTarget"
)

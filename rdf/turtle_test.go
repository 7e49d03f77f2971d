package rdf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liitahub/conllu2rdf/rdf"
)

const exNS = "http://example.org/ns/"

func TestWriteTurtle_PrefixBlock(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	g.AddPrefix("other", "http://example.org/other/")
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.IRI(exNS+"p"), rdf.NewLiteral("x"))

	out := rdf.WriteTurtle(g)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "@prefix ex: <"+exNS+"> .", lines[0])
	assert.Equal(t, "@prefix other: <http://example.org/other/> .", lines[1])
	assert.Equal(t, "", lines[2], "blank line after prefix block")
}

func TestWriteTurtle_SingleTripleInline(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	g.AddTriple(rdf.IRI(exNS+"B"), rdf.IRI(exNS+"name"), rdf.NewLiteral("y"))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, "ex:B ex:name \"y\" .\n")
}

func TestWriteTurtle_GroupingAndTypeAbbreviation(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	subject := rdf.IRI(exNS + "A")
	g.AddTriple(subject, rdf.RDFType, rdf.IRI(exNS+"Doc"))
	g.AddTriple(subject, rdf.IRI(exNS+"name"), rdf.NewLiteral("x"))
	g.AddTriple(subject, rdf.IRI(exNS+"child"), rdf.IRI(exNS+"B"))
	g.AddTriple(subject, rdf.IRI(exNS+"child"), rdf.IRI(exNS+"C"))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, "ex:A a ex:Doc ;\n")
	assert.Contains(t, out, "    ex:name \"x\" ;\n")
	assert.Contains(t, out, "    ex:child ex:B, ex:C .\n")
}

func TestWriteTurtle_SubjectOrderIsFirstOccurrence(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.IRI(exNS+"p"), rdf.NewLiteral("1"))
	g.AddTriple(rdf.IRI(exNS+"B"), rdf.IRI(exNS+"p"), rdf.NewLiteral("2"))
	// Returning to A regroups with the earlier triple.
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.IRI(exNS+"q"), rdf.NewLiteral("3"))

	out := rdf.WriteTurtle(g)
	posA := strings.Index(out, "ex:A ")
	posB := strings.Index(out, "ex:B ")
	require.GreaterOrEqual(t, posA, 0)
	require.GreaterOrEqual(t, posB, 0)
	assert.Less(t, posA, posB)
	assert.Contains(t, out, "ex:A ex:p \"1\" ;\n    ex:q \"3\" .\n")
}

func TestWriteTurtle_LongSubjectTypeWrap(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	long := rdf.IRI("http://example.org/a/very/long/subject/path/that/goes/on/and/on/forever")
	g.AddTriple(long, rdf.RDFType, rdf.IRI(exNS+"Doc"))
	g.AddTriple(long, rdf.IRI(exNS+"name"), rdf.NewLiteral("x"))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, "<"+string(long)+">\n    a ex:Doc ;\n")
}

func TestWriteTurtle_ShortSubjectKeepsTypeInline(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.RDFType, rdf.IRI(exNS+"Doc"))
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.IRI(exNS+"name"), rdf.NewLiteral("x"))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, "ex:A a ex:Doc ;\n")
}

func TestWriteTurtle_IRICompaction(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.IRI(exNS+"see"), rdf.IRI("http://elsewhere.org/thing"))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, "<http://elsewhere.org/thing>")
}

func TestWriteTurtle_IntegerDatatypeQuirk(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	g.AddPrefix("xsd", "http://www.w3.org/2001/XMLSchema#")
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.IRI(exNS+"count"), rdf.IntLiteral(42))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, `"42"^^xsd:int`)
	assert.NotContains(t, out, "xsd:integer")
}

func TestWriteTurtle_LiteralForms(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	g.AddTriple(rdf.IRI(exNS+"A"), rdf.IRI(exNS+"label"), rdf.LangLiteral("gatto", "it"))
	g.AddTriple(rdf.IRI(exNS+"B"), rdf.IRI(exNS+"note"), rdf.NewLiteral("line1\nline\"2\""))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, `"gatto"@it`)
	assert.Contains(t, out, `"line1\nline\"2\""`)
}

func TestWriteTurtle_BlankNodes(t *testing.T) {
	g := rdf.NewGraph()
	g.AddPrefix("ex", exNS)
	b1 := g.NewBlankNode()
	b2 := g.NewBlankNode()
	assert.NotEqual(t, b1, b2)

	g.AddTriple(b1, rdf.IRI(exNS+"p"), b2)
	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, "_:"+string(b1)+" ex:p _:"+string(b2)+" .")
}

func TestWriteTurtle_BlankNodeCounterIsPerGraph(t *testing.T) {
	g1 := rdf.NewGraph()
	g2 := rdf.NewGraph()
	assert.Equal(t, g1.NewBlankNode(), g2.NewBlankNode())
}

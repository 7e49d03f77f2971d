package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liitahub/conllu2rdf/conllu"
	"github.com/liitahub/conllu2rdf/convert"
	"github.com/liitahub/conllu2rdf/rdf"
	"github.com/liitahub/conllu2rdf/vocabulary/liita"
	"github.com/liitahub/conllu2rdf/vocabulary/oa"
	"github.com/liitahub/conllu2rdf/vocabulary/powla"
	"github.com/liitahub/conllu2rdf/vocabulary/ud"
)

const corpusRef = "http://liita.it/data/corpora"

const flatDoc = "# sent_id = s1\n" +
	"# text = Il gatto dorme\n" +
	"1\tIl\til\tDET\t_\t_\t2\tdet\t_\t_\n" +
	"2\tgatto\tgatto\tNOUN\t_\tGender=Masc|Number=Sing\t3\tnsubj\t_\tLiITALinkedURIs=[\"http://liita.it/data/id/lemma/7\"]\n" +
	"3\tdorme\tdormire\tVERB\t_\t_\t0\troot\t_\t_\n" +
	"\n" +
	"# sent_id = s2\n" +
	"# text = Esso miagola\n" +
	"1\tEsso\tesso\tPRON\t_\t_\t2\tnsubj\t_\tLiITALinkedURIs=[\"http://liita.it/data/id/hypolemma/7\"]\n" +
	"2\tmiagola\tmiagolare\tVERB\t_\t_\t0\troot\t_\t_\n"

const nestedDoc = "# newdoc id = doc1\n" +
	"# newpar id = para1\n" +
	"# sent_id = s1\n" +
	"1\tIl\til\tDET\t_\t_\t0\troot\t_\t_\n" +
	"\n" +
	"# newpar id = para2\n" +
	"# sent_id = s2\n" +
	"1\tEsso\tesso\tPRON\t_\t_\t0\troot\t_\t_\n"

func parseDoc(t *testing.T, text string) *conllu.Document {
	t.Helper()
	doc, err := conllu.Parse(text)
	require.NoError(t, err)
	return doc
}

func testMeta() convert.Metadata {
	return convert.Metadata{
		ID:          "it-commedia",
		Title:       "Commedia",
		Contributor: "LiITA",
		CorpusRef:   corpusRef,
		Author:      "Dante Alighieri",
		SeeAlso:     "http://example.org/about/commedia",
		Description: "Test document",
	}
}

func objects(g *rdf.Graph, subject rdf.Term, predicate rdf.IRI) []rdf.Term {
	var out []rdf.Term
	for _, tr := range g.Triples() {
		if tr.Subject == subject && tr.Predicate == predicate {
			out = append(out, tr.Object)
		}
	}
	return out
}

func hasTriple(g *rdf.Graph, subject rdf.Term, predicate rdf.IRI, object rdf.Term) bool {
	for _, tr := range g.Triples() {
		if tr.Subject == subject && tr.Predicate == predicate && tr.Object == object {
			return true
		}
	}
	return false
}

func refTypes(g *rdf.Graph) map[string]int {
	counts := make(map[string]int)
	for _, tr := range g.Triples() {
		if tr.Predicate == rdf.IRI(liita.PropHasRefType) {
			counts[tr.Object.(rdf.Literal).Value]++
		}
	}
	return counts
}

func TestMapToGraph_DocumentMetadata(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	docNode := rdf.IRI(corpusRef + "/Commedia")
	assert.True(t, hasTriple(g, docNode, rdf.RDFType, rdf.IRI(powla.ClassDocument)))
	assert.True(t, hasTriple(g, docNode, "http://purl.org/dc/terms/title", rdf.NewLiteral("Commedia")))
	assert.True(t, hasTriple(g, docNode, "http://purl.org/dc/terms/creator", rdf.NewLiteral("Dante Alighieri")))
	assert.True(t, hasTriple(g, docNode, "http://www.w3.org/2000/01/rdf-schema#seeAlso", rdf.IRI("http://example.org/about/commedia")))
	assert.True(t, hasTriple(g, rdf.IRI(corpusRef), rdf.IRI(powla.PropHasSubDocument), docNode))

	layer := rdf.IRI(corpusRef + "/Commedia/DocumentLayer")
	assert.True(t, hasTriple(g, layer, rdf.RDFType, rdf.IRI(powla.ClassDocumentLayer)))
	assert.True(t, hasTriple(g, layer, rdf.IRI(powla.PropHasDocument), docNode))
}

func TestMapToGraph_PrefixBlockIsFixed(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	labels := make([]string, 0, len(g.Prefixes()))
	for _, p := range g.Prefixes() {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{
		"rdf", "rdfs", "xsd", "dcterms", "powla", "oa", "lilaOntology",
		"liitaLemma", "liitaIpoLemma", "liitaCitation", "liitaUD", "liitaMorph",
	}, labels)
}

func TestMapToGraph_FlatSentenceUnits(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	s1 := rdf.IRI(corpusRef + "/Commedia/Sentence_1")
	s2 := rdf.IRI(corpusRef + "/Commedia/Sentence_2")
	assert.True(t, hasTriple(g, s1, rdf.RDFType, rdf.IRI(liita.ClassCitationUnit)))
	assert.True(t, hasTriple(g, s1, rdf.IRI(liita.PropHasRefType), rdf.NewLiteral("Sentence")))
	assert.True(t, hasTriple(g, s1, rdf.IRI(liita.PropHasRefValue), rdf.NewLiteral("Sentence_1")))
	assert.True(t, hasTriple(g, s1, rdf.IRI(powla.PropNext), s2))
	assert.True(t, hasTriple(g, s2, rdf.IRI(powla.PropPrevious), s1))

	// Without markers there are no document or paragraph level units.
	counts := refTypes(g)
	assert.Zero(t, counts["Document"])
	assert.Zero(t, counts["Paragraph"])
	assert.Equal(t, 2, counts["Sentence"])

	// Terminals nest under their sentence unit and chain in order.
	t1 := rdf.IRI(string(s1) + "/t1")
	t2 := rdf.IRI(string(s1) + "/t2")
	t3 := rdf.IRI(string(s1) + "/t3")
	assert.True(t, hasTriple(g, s1, rdf.IRI(powla.PropFirst), t1))
	assert.True(t, hasTriple(g, s1, rdf.IRI(powla.PropLast), t3))
	assert.True(t, hasTriple(g, t1, rdf.RDFType, rdf.IRI(powla.ClassTerminal)))
	assert.True(t, hasTriple(g, t1, rdf.IRI(powla.PropHasStringValue), rdf.NewLiteral("Il")))
	assert.True(t, hasTriple(g, t1, rdf.IRI(powla.PropNext), t2))
	assert.True(t, hasTriple(g, t2, rdf.IRI(powla.PropPrevious), t1))
}

func TestMapToGraph_NestedHierarchy(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, nestedDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	docUnit := rdf.IRI(corpusRef + "/Commedia/doc1")
	par1 := rdf.IRI(corpusRef + "/Commedia/doc1/para1")
	par2 := rdf.IRI(corpusRef + "/Commedia/doc1/para2")
	sent := rdf.IRI(corpusRef + "/Commedia/doc1/para1/Sentence_1")

	assert.True(t, hasTriple(g, docUnit, rdf.IRI(liita.PropHasRefType), rdf.NewLiteral("Document")))
	assert.True(t, hasTriple(g, docUnit, rdf.IRI(liita.PropHasRefValue), rdf.NewLiteral("doc1")))
	assert.True(t, hasTriple(g, docUnit, rdf.IRI(powla.PropFirst), par1))
	assert.True(t, hasTriple(g, docUnit, rdf.IRI(powla.PropLast), par2))
	assert.True(t, hasTriple(g, docUnit, rdf.IRI(powla.PropHasChild), par1))

	assert.True(t, hasTriple(g, par1, rdf.IRI(liita.PropHasRefType), rdf.NewLiteral("Paragraph")))
	assert.True(t, hasTriple(g, par1, rdf.IRI(powla.PropNext), par2))
	assert.True(t, hasTriple(g, par2, rdf.IRI(powla.PropPrevious), par1))
	assert.True(t, hasTriple(g, par1, rdf.IRI(powla.PropHasChild), sent))

	assert.True(t, hasTriple(g, sent, rdf.IRI(liita.PropHasRefType), rdf.NewLiteral("Sentence")))
	assert.True(t, hasTriple(g, sent, rdf.IRI(powla.PropHasChild), rdf.IRI(string(sent)+"/t1")))
}

func TestMapToGraph_CustomLabels(t *testing.T) {
	opts := convert.DefaultOptions()
	opts.Labels = convert.Labels{Document: "Cantica", Paragraph: "Canto", Sentence: "Verso"}

	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), opts)
	require.NoError(t, err)

	v1 := rdf.IRI(corpusRef + "/Commedia/Verso_1")
	assert.True(t, hasTriple(g, v1, rdf.IRI(liita.PropHasRefType), rdf.NewLiteral("Verso")))
	assert.True(t, hasTriple(g, v1, rdf.IRI(liita.PropHasRefValue), rdf.NewLiteral("Verso_1")))
}

func TestMapToGraph_Lemmas(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	gatto := rdf.IRI(corpusRef + "/Commedia/Sentence_1/t2")
	esso := rdf.IRI(corpusRef + "/Commedia/Sentence_2/t1")
	hasLemma := rdf.IRI("http://lila-erc.eu/ontologies/lila/hasLemma")
	assert.True(t, hasTriple(g, gatto, hasLemma, rdf.IRI(liita.LemmaNamespace+"7")))
	assert.True(t, hasTriple(g, esso, hasLemma, rdf.IRI(liita.HypolemmaNamespace+"7")))

	// Tokens without a link carry no lemma triple.
	assert.Empty(t, objects(g, rdf.IRI(corpusRef+"/Commedia/Sentence_1/t1"), hasLemma))
}

func TestMapToGraph_TokenOffsets(t *testing.T) {
	doc := "# sent_id = s1\n" +
		"1\tIl\til\tDET\t_\t_\t0\troot\t_\tstart_char=0|end_char=2\n"
	g, err := convert.MapToGraph(parseDoc(t, doc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	tok := rdf.IRI(corpusRef + "/Commedia/Sentence_1/t1")
	assert.True(t, hasTriple(g, tok, rdf.IRI(powla.PropStart), rdf.IntLiteral(0)))
	assert.True(t, hasTriple(g, tok, rdf.IRI(powla.PropEnd), rdf.IntLiteral(2)))

	out := rdf.WriteTurtle(g)
	assert.Contains(t, out, `"0"^^xsd:int`)
}

func TestMapToGraph_UDLayer(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	layer := rdf.IRI(corpusRef + "/Commedia/UDAnnotationLayer")
	root1 := rdf.IRI(string(layer) + "/s1_root")
	root2 := rdf.IRI(string(layer) + "/s2_root")
	t1 := rdf.IRI(corpusRef + "/Commedia/Sentence_1/t1")
	t3 := rdf.IRI(corpusRef + "/Commedia/Sentence_1/t3")

	assert.True(t, hasTriple(g, layer, rdf.RDFType, rdf.IRI(powla.ClassDocumentLayer)))
	assert.True(t, hasTriple(g, root1, rdf.RDFType, rdf.IRI(powla.ClassRoot)))
	assert.True(t, hasTriple(g, root1, rdf.IRI(powla.PropHasLayer), layer))
	assert.True(t, hasTriple(g, root1, rdf.IRI(powla.PropFirstTerminal), t1))
	assert.True(t, hasTriple(g, root1, rdf.IRI(powla.PropLastTerminal), t3))
	assert.True(t, hasTriple(g, root1, rdf.IRI(powla.PropNext), root2))
	assert.True(t, hasTriple(g, root2, rdf.IRI(powla.PropPrevious), root1))
	assert.Len(t, objects(g, root1, rdf.IRI(powla.PropHasTerminal)), 3)
}

func TestMapToGraph_DependencyRelations(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	layer := corpusRef + "/Commedia/UDAnnotationLayer"
	root1 := rdf.IRI(layer + "/s1_root")
	t2 := rdf.IRI(corpusRef + "/Commedia/Sentence_1/t2")
	t3 := rdf.IRI(corpusRef + "/Commedia/Sentence_1/t3")

	// "gatto" (nsubj, head 3) hangs off its head token.
	rel2 := rdf.IRI(layer + "/s1_rel2")
	assert.True(t, hasTriple(g, rel2, rdf.RDFType, rdf.IRI(ud.RelationIRI("nsubj"))))
	assert.True(t, hasTriple(g, rel2, rdf.IRI(powla.PropHasSource), t3))
	assert.True(t, hasTriple(g, rel2, rdf.IRI(powla.PropHasTarget), t2))

	// "dorme" (root) hangs off the sentence root node.
	rel3 := rdf.IRI(layer + "/s1_rel3")
	assert.True(t, hasTriple(g, rel3, rdf.RDFType, rdf.IRI(ud.RelationIRI(ud.RootRelation))))
	assert.True(t, hasTriple(g, rel3, rdf.IRI(powla.PropHasSource), root1))
	assert.True(t, hasTriple(g, rel3, rdf.IRI(powla.PropHasTarget), t3))
}

func TestMapToGraph_MorphologyLayer(t *testing.T) {
	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	layer := rdf.IRI(corpusRef + "/Commedia/MorphologyAnnotationLayer")
	assert.True(t, hasTriple(g, layer, rdf.RDFType, rdf.IRI(powla.ClassDocumentLayer)))

	// "gatto" has two features, so two bodies.
	ann2 := rdf.IRI(string(layer) + "/s1_t2")
	assert.True(t, hasTriple(g, ann2, rdf.RDFType, rdf.IRI(oa.ClassAnnotation)))
	assert.True(t, hasTriple(g, ann2, rdf.IRI(oa.PropHasTarget), rdf.IRI(corpusRef+"/Commedia/Sentence_1/t2")))
	bodies := objects(g, ann2, rdf.IRI(oa.PropHasBody))
	assert.ElementsMatch(t, []rdf.Term{
		rdf.IRI(liita.MorphFeatureNamespace + "Gender/Masc"),
		rdf.IRI(liita.MorphFeatureNamespace + "Number/Sing"),
	}, bodies)

	// Featureless tokens get the placeholder body.
	ann1 := rdf.IRI(string(layer) + "/s1_t1")
	assert.True(t, hasTriple(g, ann1, rdf.IRI(oa.PropHasBody), rdf.IRI(liita.MorphFeatureUnspecified)))
	assert.True(t, hasTriple(g, ann1, rdf.IRI(powla.PropHasLayer), layer))
}

func TestMapToGraph_MorphologyGating(t *testing.T) {
	opts := convert.DefaultOptions()
	opts.IncludeMorphologicalLayer = false

	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), opts)
	require.NoError(t, err)

	// The flag gates both the morphology annotations and the dependency
	// relation nodes.
	for _, tr := range g.Triples() {
		assert.NotEqual(t, rdf.IRI(oa.ClassAnnotation), tr.Object)
		assert.NotEqual(t, rdf.IRI(powla.PropHasSource), tr.Predicate)
	}
}

func TestMapToGraph_CitationGating(t *testing.T) {
	opts := convert.DefaultOptions()
	opts.IncludeCitationLayer = false

	g, err := convert.MapToGraph(parseDoc(t, flatDoc), testMeta(), opts)
	require.NoError(t, err)

	assert.Empty(t, refTypes(g))
	// Terminals are still emitted, since the other layers reference them.
	t1 := rdf.IRI(corpusRef + "/Commedia/Sentence_1/t1")
	assert.True(t, hasTriple(g, t1, rdf.RDFType, rdf.IRI(powla.ClassTerminal)))
}

func TestMapToGraph_SkipsTokenlessSentences(t *testing.T) {
	doc := "# sent_id = s1\n" +
		"1\tIl\til\tDET\t_\t_\t0\troot\t_\t_\n" +
		"\n" +
		"# sent_id = empty\n" +
		"# text = nothing here\n" +
		"\n" +
		"# sent_id = s3\n" +
		"1\tEsso\tesso\tPRON\t_\t_\t0\troot\t_\t_\n"

	g, err := convert.MapToGraph(parseDoc(t, doc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)

	// The tokenless sentence is absent from every layer: two citation
	// units, two UD roots.
	assert.Equal(t, 2, refTypes(g)["Sentence"])
	assert.True(t, hasTriple(g, rdf.IRI(corpusRef+"/Commedia/Sentence_2/t1"), rdf.IRI(powla.PropHasStringValue), rdf.NewLiteral("Esso")))
	layer := corpusRef + "/Commedia/UDAnnotationLayer"
	assert.NotEmpty(t, objects(g, rdf.IRI(layer+"/s2_root"), rdf.IRI(powla.PropHasTerminal)))
	assert.Empty(t, objects(g, rdf.IRI(layer+"/s3_root"), rdf.IRI(powla.PropHasTerminal)))
}

func TestMapToGraph_TitleIsPathEscaped(t *testing.T) {
	meta := testMeta()
	meta.Title = "Divina Commedia"

	g, err := convert.MapToGraph(parseDoc(t, flatDoc), meta, convert.DefaultOptions())
	require.NoError(t, err)

	docNode := rdf.IRI(corpusRef + "/Divina%20Commedia")
	assert.True(t, hasTriple(g, docNode, rdf.RDFType, rdf.IRI(powla.ClassDocument)))
	assert.True(t, hasTriple(g, rdf.IRI(corpusRef+"/Divina%20Commedia/Sentence_1/t1"), rdf.RDFType, rdf.IRI(powla.ClassTerminal)))
}

func TestConvert_RoundTrip(t *testing.T) {
	out, err := convert.Convert(parseDoc(t, flatDoc), testMeta(), convert.DefaultOptions())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "@prefix rdf: "))

	parsed, err := rdf.ReadTurtle(out)
	require.NoError(t, err)
	assert.Equal(t, out, rdf.WriteTurtle(parsed))
}

package convert

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/liitahub/conllu2rdf/citation"
	"github.com/liitahub/conllu2rdf/conllu"
	"github.com/liitahub/conllu2rdf/rdf"
	"github.com/liitahub/conllu2rdf/vocabulary/dc"
	"github.com/liitahub/conllu2rdf/vocabulary/lila"
	"github.com/liitahub/conllu2rdf/vocabulary/liita"
	"github.com/liitahub/conllu2rdf/vocabulary/oa"
	"github.com/liitahub/conllu2rdf/vocabulary/powla"
	"github.com/liitahub/conllu2rdf/vocabulary/ud"
)

// MapToGraph walks a document and emits every requested graph layer, in a
// fixed order: document metadata and corpus link, the document layer node,
// the citation hierarchy with its terminals (terminals alone when the
// citation layer is off), the UD annotation layer, then dependency
// relations and the morphology layer when enabled.
//
// Sentences without tokens are excluded from every layer. URIs are
// synthesized deterministically by percent-encoding each path segment
// under {corpusRef}/{encodedTitle}. Token URIs always extend the owning
// sentence's own URI, so they nest under whatever hierarchy the sentence
// belongs to; UD-layer node URIs are positional and independent of the
// hierarchy.
func MapToGraph(doc *conllu.Document, meta Metadata, opts Options) (*rdf.Graph, error) {
	opts = opts.withLabelDefaults()

	m := &mapper{
		g:      rdf.NewGraph(),
		meta:   meta,
		opts:   opts,
		docURI: strings.TrimRight(meta.CorpusRef, "/") + "/" + url.PathEscape(meta.Title),
	}
	for i := range doc.Sentences {
		if len(doc.Sentences[i].Tokens) > 0 {
			m.sentences = append(m.sentences, &doc.Sentences[i])
		}
	}

	m.addPrefixes()
	m.emitDocument()
	m.emitDocumentLayer()

	if opts.IncludeCitationLayer {
		if err := m.emitCitationLayer(citation.Build(m.sentences)); err != nil {
			return nil, err
		}
	} else {
		// Later layers reference the tokens, so terminals are emitted
		// even without citation units around them.
		for i, s := range m.sentences {
			sentURI := m.docURI + "/" + url.PathEscape(synthesizedSegment(opts.Labels.Sentence, i+1))
			m.emitTerminals(s, sentURI)
		}
	}

	m.emitUDLayer()

	if opts.IncludeMorphologicalLayer {
		m.emitDependencyRelations()
		m.emitMorphologyLayer()
	}

	return m.g, nil
}

type mapper struct {
	g      *rdf.Graph
	meta   Metadata
	opts   Options
	docURI string

	// Token-bearing sentences, in document order. tokenURIs and rootURIs
	// are aligned with this slice.
	sentences []*conllu.Sentence
	tokenURIs [][]string
	rootURIs  []string
}

func (m *mapper) addPrefixes() {
	for _, p := range []rdf.Prefix{
		{Label: "rdf", Namespace: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
		{Label: dc.RDFSPrefix, Namespace: dc.RDFSNamespace},
		{Label: "xsd", Namespace: "http://www.w3.org/2001/XMLSchema#"},
		{Label: dc.TermsPrefix, Namespace: dc.TermsNamespace},
		{Label: powla.Prefix, Namespace: powla.Namespace},
		{Label: oa.Prefix, Namespace: oa.Namespace},
		{Label: lila.Prefix, Namespace: lila.Namespace},
		{Label: liita.LemmaPrefix, Namespace: liita.LemmaNamespace},
		{Label: liita.HypolemmaPrefix, Namespace: liita.HypolemmaNamespace},
		{Label: liita.CitationPrefix, Namespace: liita.CitationNamespace},
		{Label: ud.Prefix, Namespace: ud.Namespace},
		{Label: liita.MorphFeaturePrefix, Namespace: liita.MorphFeatureNamespace},
	} {
		m.g.AddPrefix(p.Label, p.Namespace)
	}
}

// emitDocument writes the document metadata triples and the corpus
// membership link.
func (m *mapper) emitDocument() {
	docNode := rdf.IRI(m.docURI)
	m.g.AddTriple(docNode, rdf.RDFType, rdf.IRI(powla.ClassDocument))
	for _, field := range []struct {
		predicate string
		value     string
	}{
		{dc.Identifier, m.meta.ID},
		{dc.Title, m.meta.Title},
		{dc.Contributor, m.meta.Contributor},
		{dc.Creator, m.meta.Author},
		{dc.Description, m.meta.Description},
	} {
		if field.value != "" {
			m.g.AddTriple(docNode, rdf.IRI(field.predicate), rdf.NewLiteral(field.value))
		}
	}
	if m.meta.SeeAlso != "" {
		m.g.AddTriple(docNode, rdf.IRI(dc.SeeAlso), rdf.IRI(m.meta.SeeAlso))
	}
	m.g.AddTriple(rdf.IRI(m.meta.CorpusRef), rdf.IRI(powla.PropHasSubDocument), docNode)
}

func (m *mapper) emitDocumentLayer() {
	layer := rdf.IRI(m.docURI + "/DocumentLayer")
	m.g.AddTriple(layer, rdf.RDFType, rdf.IRI(powla.ClassDocumentLayer))
	m.g.AddTriple(layer, rdf.IRI(powla.PropHasDocument), rdf.IRI(m.docURI))
}

// synthesizedSegment is the path segment of a group without an explicit
// marker id.
func synthesizedSegment(label string, index int) string {
	return label + "_" + strconv.Itoa(index)
}

// unit is one citation unit being emitted: its URI, its unencoded
// identifier and its level label.
type unit struct {
	uri     string
	segment string
	label   string
}

func newUnit(parentURI, id, label string, index int) unit {
	segment := id
	if segment == "" {
		segment = synthesizedSegment(label, index)
	}
	return unit{
		uri:     parentURI + "/" + url.PathEscape(segment),
		segment: segment,
		label:   label,
	}
}

// emitUnit writes one citation unit with its ordered child links and its
// sibling links. A unit without children is a data-contract violation.
func (m *mapper) emitUnit(u unit, siblings []unit, position int, children []string) error {
	if len(children) == 0 {
		return fmt.Errorf("citation unit %s (%s) has no children", u.segment, u.label)
	}
	s := rdf.IRI(u.uri)
	m.g.AddTriple(s, rdf.RDFType, rdf.IRI(liita.ClassCitationUnit))
	m.g.AddTriple(s, rdf.IRI(liita.PropHasRefType), rdf.NewLiteral(u.label))
	m.g.AddTriple(s, rdf.IRI(liita.PropHasRefValue), rdf.NewLiteral(u.segment))
	m.g.AddTriple(s, rdf.IRI(powla.PropFirst), rdf.IRI(children[0]))
	m.g.AddTriple(s, rdf.IRI(powla.PropLast), rdf.IRI(children[len(children)-1]))
	for _, child := range children {
		m.g.AddTriple(s, rdf.IRI(powla.PropHasChild), rdf.IRI(child))
	}
	if position < len(siblings)-1 {
		m.g.AddTriple(s, rdf.IRI(powla.PropNext), rdf.IRI(siblings[position+1].uri))
	}
	if position > 0 {
		m.g.AddTriple(s, rdf.IRI(powla.PropPrevious), rdf.IRI(siblings[position-1].uri))
	}
	return nil
}

// emitCitationLayer walks the hierarchy depth-first. Exactly one of the
// three top-level shapes applies per conversion.
func (m *mapper) emitCitationLayer(h *citation.Hierarchy) error {
	switch {
	case h.HasNewdoc:
		units := make([]unit, len(h.Documents))
		for i, dg := range h.Documents {
			units[i] = newUnit(m.docURI, dg.ID, m.opts.Labels.Document, dg.Index)
		}
		for i, dg := range h.Documents {
			if err := m.emitDocumentUnit(units[i], units, i, dg); err != nil {
				return err
			}
		}
		return nil
	case h.HasNewpar:
		units := make([]unit, len(h.Paragraphs))
		for i, pg := range h.Paragraphs {
			units[i] = newUnit(m.docURI, pg.ID, m.opts.Labels.Paragraph, pg.Index)
		}
		for i, pg := range h.Paragraphs {
			if err := m.emitParagraphUnit(units[i], units, i, pg); err != nil {
				return err
			}
		}
		return nil
	default:
		return m.emitSentenceUnits(m.docURI, h.Sentences)
	}
}

func (m *mapper) emitDocumentUnit(u unit, siblings []unit, position int, dg *citation.DocumentGroup) error {
	switch content := dg.Content.(type) {
	case citation.Paragraphs:
		children := make([]unit, len(content))
		for i, pg := range content {
			children[i] = newUnit(u.uri, pg.ID, m.opts.Labels.Paragraph, pg.Index)
		}
		if err := m.emitUnit(u, siblings, position, unitURIs(children)); err != nil {
			return err
		}
		for i, pg := range content {
			if err := m.emitParagraphUnit(children[i], children, i, pg); err != nil {
				return err
			}
		}
		return nil
	case citation.DirectSentences:
		// No newpar marker anywhere: sentences attach to the document
		// with no paragraph-level citation unit in between.
		sentenceUnits := m.sentenceUnits(u.uri, content)
		if err := m.emitUnit(u, siblings, position, unitURIs(sentenceUnits)); err != nil {
			return err
		}
		return m.emitSentenceUnitList(sentenceUnits, content)
	default:
		return fmt.Errorf("citation unit %s (%s) has no children", u.segment, u.label)
	}
}

func (m *mapper) emitParagraphUnit(u unit, siblings []unit, position int, pg *citation.ParagraphGroup) error {
	sentenceUnits := m.sentenceUnits(u.uri, pg.Sentences)
	if err := m.emitUnit(u, siblings, position, unitURIs(sentenceUnits)); err != nil {
		return err
	}
	return m.emitSentenceUnitList(sentenceUnits, pg.Sentences)
}

func (m *mapper) sentenceUnits(parentURI string, groups []citation.SentenceGroup) []unit {
	units := make([]unit, len(groups))
	for i, sg := range groups {
		units[i] = newUnit(parentURI, "", m.opts.Labels.Sentence, sg.Index)
	}
	return units
}

func (m *mapper) emitSentenceUnits(parentURI string, groups []citation.SentenceGroup) error {
	return m.emitSentenceUnitList(m.sentenceUnits(parentURI, groups), groups)
}

// emitSentenceUnitList writes each sentence unit followed by its
// terminals. The terminals are the unit's children.
func (m *mapper) emitSentenceUnitList(units []unit, groups []citation.SentenceGroup) error {
	for i, sg := range groups {
		terminals := terminalURIs(units[i].uri, sg.Sentence)
		if err := m.emitUnit(units[i], units, i, terminals); err != nil {
			return err
		}
		m.emitTerminals(sg.Sentence, units[i].uri)
	}
	return nil
}

func unitURIs(units []unit) []string {
	uris := make([]string, len(units))
	for i, u := range units {
		uris[i] = u.uri
	}
	return uris
}

// terminalURIs derives token URIs from the owning sentence's own URI, one
// /tN segment per row.
func terminalURIs(sentURI string, s *conllu.Sentence) []string {
	uris := make([]string, len(s.Tokens))
	for i := range s.Tokens {
		uris[i] = sentURI + "/t" + strconv.Itoa(i+1)
	}
	return uris
}

var lemmaIDPattern = regexp.MustCompile(`([0-9]+)/?$`)

// lemmaIRI resolves the first linked URI of a token into a lemma-bank IRI:
// the hypolemma namespace when the link points into the hypolemma subtree,
// the lemma namespace otherwise, with the numeric id extracted by regex.
func lemmaIRI(tok conllu.Token) (string, bool) {
	uris := tok.LinkedURIs()
	if len(uris) == 0 {
		return "", false
	}
	match := lemmaIDPattern.FindStringSubmatch(uris[0])
	if match == nil {
		return "", false
	}
	if strings.Contains(uris[0], "/hypolemma/") {
		return liita.HypolemmaNamespace + match[1], true
	}
	return liita.LemmaNamespace + match[1], true
}

// emitTerminals writes one powla:Terminal per token row and records the
// URIs for the later layers.
func (m *mapper) emitTerminals(s *conllu.Sentence, sentURI string) {
	uris := terminalURIs(sentURI, s)
	for i, tok := range s.Tokens {
		t := rdf.IRI(uris[i])
		m.g.AddTriple(t, rdf.RDFType, rdf.IRI(powla.ClassTerminal))
		m.g.AddTriple(t, rdf.IRI(powla.PropHasStringValue), rdf.NewLiteral(tok.Form))
		if lemma, ok := lemmaIRI(tok); ok {
			m.g.AddTriple(t, rdf.IRI(lila.PropHasLemma), rdf.IRI(lemma))
		}
		if raw, ok := tok.MiscValue("start_char"); ok {
			if n, err := strconv.Atoi(raw); err == nil {
				m.g.AddTriple(t, rdf.IRI(powla.PropStart), rdf.IntLiteral(n))
			}
		}
		if raw, ok := tok.MiscValue("end_char"); ok {
			if n, err := strconv.Atoi(raw); err == nil {
				m.g.AddTriple(t, rdf.IRI(powla.PropEnd), rdf.IntLiteral(n))
			}
		}
		if i < len(uris)-1 {
			m.g.AddTriple(t, rdf.IRI(powla.PropNext), rdf.IRI(uris[i+1]))
		}
		if i > 0 {
			m.g.AddTriple(t, rdf.IRI(powla.PropPrevious), rdf.IRI(uris[i-1]))
		}
	}
	m.tokenURIs = append(m.tokenURIs, uris)
}

func (m *mapper) udLayerURI() string {
	return m.docURI + "/UDAnnotationLayer"
}

// emitUDLayer writes one powla:Root per sentence, linking its terminals in
// order. Root URIs are positional, not hierarchy-aware.
func (m *mapper) emitUDLayer() {
	layerURI := m.udLayerURI()
	layer := rdf.IRI(layerURI)
	m.g.AddTriple(layer, rdf.RDFType, rdf.IRI(powla.ClassDocumentLayer))
	m.g.AddTriple(layer, rdf.IRI(powla.PropHasDocument), rdf.IRI(m.docURI))

	m.rootURIs = make([]string, len(m.sentences))
	for i := range m.sentences {
		m.rootURIs[i] = layerURI + "/s" + strconv.Itoa(i+1) + "_root"
	}
	for i := range m.sentences {
		root := rdf.IRI(m.rootURIs[i])
		terminals := m.tokenURIs[i]
		m.g.AddTriple(root, rdf.RDFType, rdf.IRI(powla.ClassRoot))
		m.g.AddTriple(root, rdf.IRI(powla.PropHasLayer), layer)
		m.g.AddTriple(root, rdf.IRI(powla.PropFirstTerminal), rdf.IRI(terminals[0]))
		for _, t := range terminals {
			m.g.AddTriple(root, rdf.IRI(powla.PropHasTerminal), rdf.IRI(t))
		}
		m.g.AddTriple(root, rdf.IRI(powla.PropLastTerminal), rdf.IRI(terminals[len(terminals)-1]))
		if i < len(m.rootURIs)-1 {
			m.g.AddTriple(root, rdf.IRI(powla.PropNext), rdf.IRI(m.rootURIs[i+1]))
		}
		if i > 0 {
			m.g.AddTriple(root, rdf.IRI(powla.PropPrevious), rdf.IRI(m.rootURIs[i-1]))
		}
	}
}

// emitDependencyRelations writes one relation node per token, typed by its
// deprel. The source is the sentence root when the token is the root or
// its head cannot be resolved, otherwise the head token.
func (m *mapper) emitDependencyRelations() {
	layerURI := m.udLayerURI()
	for i, s := range m.sentences {
		byID := make(map[string]string, len(s.Tokens))
		for j, tok := range s.Tokens {
			byID[tok.ID] = m.tokenURIs[i][j]
		}
		for j, tok := range s.Tokens {
			deprel := tok.Deprel
			if deprel == "" {
				deprel = ud.RootRelation
			}
			rel := rdf.IRI(layerURI + "/s" + strconv.Itoa(i+1) + "_rel" + strconv.Itoa(j+1))
			m.g.AddTriple(rel, rdf.RDFType, rdf.IRI(ud.RelationIRI(deprel)))
			source := m.rootURIs[i]
			if deprel != ud.RootRelation {
				if headURI, ok := byID[tok.Head]; ok {
					source = headURI
				}
			}
			m.g.AddTriple(rel, rdf.IRI(powla.PropHasSource), rdf.IRI(source))
			m.g.AddTriple(rel, rdf.IRI(powla.PropHasTarget), rdf.IRI(m.tokenURIs[i][j]))
		}
	}
}

// emitMorphologyLayer writes one annotation per token with one body IRI
// per feature, or the placeholder body for featureless tokens.
func (m *mapper) emitMorphologyLayer() {
	layerURI := m.docURI + "/MorphologyAnnotationLayer"
	layer := rdf.IRI(layerURI)
	m.g.AddTriple(layer, rdf.RDFType, rdf.IRI(powla.ClassDocumentLayer))
	m.g.AddTriple(layer, rdf.IRI(powla.PropHasDocument), rdf.IRI(m.docURI))

	for i, s := range m.sentences {
		for j, tok := range s.Tokens {
			ann := rdf.IRI(layerURI + "/s" + strconv.Itoa(i+1) + "_t" + strconv.Itoa(j+1))
			m.g.AddTriple(ann, rdf.RDFType, rdf.IRI(oa.ClassAnnotation))
			m.g.AddTriple(ann, rdf.IRI(oa.PropHasTarget), rdf.IRI(m.tokenURIs[i][j]))
			if len(tok.Feats) == 0 {
				m.g.AddTriple(ann, rdf.IRI(oa.PropHasBody), rdf.IRI(liita.MorphFeatureUnspecified))
			} else {
				for _, f := range tok.Feats {
					m.g.AddTriple(ann, rdf.IRI(oa.PropHasBody), rdf.IRI(featureIRI(f)))
				}
			}
			m.g.AddTriple(ann, rdf.IRI(powla.PropHasLayer), layer)
		}
	}
}

// featureIRI builds a morphological-feature IRI from a key/value pair
// against the fixed feature-bank namespace.
func featureIRI(f conllu.Feature) string {
	return liita.MorphFeatureNamespace + url.PathEscape(f.Key) + "/" + url.PathEscape(f.Value)
}

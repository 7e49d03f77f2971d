// Package config provides configuration loading and management for
// conllu2rdf: the document metadata and conversion options the CLI feeds
// into the converter.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/liitahub/conllu2rdf/convert"
)

// Config is the complete conllu2rdf configuration.
type Config struct {
	Metadata MetadataConfig `yaml:"metadata"`
	Options  OptionsConfig  `yaml:"options"`
}

// MetadataConfig carries the document-level metadata written into every
// converted graph.
type MetadataConfig struct {
	// ID is the document identifier.
	ID string `yaml:"id"`
	// Title is the document title; it becomes a URI path segment.
	Title string `yaml:"title"`
	// Contributor is the document contributor.
	Contributor string `yaml:"contributor"`
	// Corpus is the base IRI the document hangs under.
	Corpus string `yaml:"corpus"`
	// Author is the document author (dcterms:creator).
	Author string `yaml:"author"`
	// SeeAlso is a related-resource IRI.
	SeeAlso string `yaml:"see_also"`
	// Description is a free-text description.
	Description string `yaml:"description"`
}

// OptionsConfig selects the graph layers to emit.
type OptionsConfig struct {
	// CitationLayer emits the citation hierarchy (default: true).
	CitationLayer *bool `yaml:"citation_layer"`
	// MorphologicalLayer emits the morphology layer together with the
	// dependency relations (default: true).
	MorphologicalLayer *bool `yaml:"morphological_layer"`
	// Labels override the citation-unit level names.
	Labels LabelsConfig `yaml:"labels"`
}

// LabelsConfig names the citation-unit levels.
type LabelsConfig struct {
	Document  string `yaml:"document"`
	Paragraph string `yaml:"paragraph"`
	Sentence  string `yaml:"sentence"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Options: OptionsConfig{
			Labels: LabelsConfig{
				Document:  "Document",
				Paragraph: "Paragraph",
				Sentence:  "Sentence",
			},
		},
	}
}

// Validate checks that the configuration is usable for a conversion.
func (c *Config) Validate() error {
	if c.Metadata.Corpus == "" {
		return fmt.Errorf("metadata.corpus is required")
	}
	if c.Metadata.Title == "" {
		return fmt.Errorf("metadata.title is required")
	}
	return nil
}

// ConvertMetadata maps the config onto the converter's metadata record.
func (c *Config) ConvertMetadata() convert.Metadata {
	return convert.Metadata{
		ID:          c.Metadata.ID,
		Title:       c.Metadata.Title,
		Contributor: c.Metadata.Contributor,
		CorpusRef:   c.Metadata.Corpus,
		Author:      c.Metadata.Author,
		SeeAlso:     c.Metadata.SeeAlso,
		Description: c.Metadata.Description,
	}
}

// ConvertOptions maps the config onto the converter's options, applying
// the enabled-by-default layer flags.
func (c *Config) ConvertOptions() convert.Options {
	opts := convert.DefaultOptions()
	if c.Options.CitationLayer != nil {
		opts.IncludeCitationLayer = *c.Options.CitationLayer
	}
	if c.Options.MorphologicalLayer != nil {
		opts.IncludeMorphologicalLayer = *c.Options.MorphologicalLayer
	}
	if c.Options.Labels.Document != "" {
		opts.Labels.Document = c.Options.Labels.Document
	}
	if c.Options.Labels.Paragraph != "" {
		opts.Labels.Paragraph = c.Options.Labels.Paragraph
	}
	if c.Options.Labels.Sentence != "" {
		opts.Labels.Sentence = c.Options.Labels.Sentence
	}
	return opts
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one; the other config takes
// precedence for set values.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Metadata.ID != "" {
		c.Metadata.ID = other.Metadata.ID
	}
	if other.Metadata.Title != "" {
		c.Metadata.Title = other.Metadata.Title
	}
	if other.Metadata.Contributor != "" {
		c.Metadata.Contributor = other.Metadata.Contributor
	}
	if other.Metadata.Corpus != "" {
		c.Metadata.Corpus = other.Metadata.Corpus
	}
	if other.Metadata.Author != "" {
		c.Metadata.Author = other.Metadata.Author
	}
	if other.Metadata.SeeAlso != "" {
		c.Metadata.SeeAlso = other.Metadata.SeeAlso
	}
	if other.Metadata.Description != "" {
		c.Metadata.Description = other.Metadata.Description
	}

	if other.Options.CitationLayer != nil {
		c.Options.CitationLayer = other.Options.CitationLayer
	}
	if other.Options.MorphologicalLayer != nil {
		c.Options.MorphologicalLayer = other.Options.MorphologicalLayer
	}
	if other.Options.Labels.Document != "" {
		c.Options.Labels.Document = other.Options.Labels.Document
	}
	if other.Options.Labels.Paragraph != "" {
		c.Options.Labels.Paragraph = other.Options.Labels.Paragraph
	}
	if other.Options.Labels.Sentence != "" {
		c.Options.Labels.Sentence = other.Options.Labels.Sentence
	}
}

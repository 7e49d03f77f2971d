package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/liitahub/conllu2rdf/config"
	"github.com/liitahub/conllu2rdf/conllu"
	"github.com/liitahub/conllu2rdf/convert"
)

func convertCmd() *cobra.Command {
	var (
		output       string
		watch        bool
		corpus       string
		title        string
		docID        string
		author       string
		contributor  string
		seeAlso      string
		description  string
		noCitation   bool
		noMorphology bool
	)

	cmd := &cobra.Command{
		Use:   "convert [patterns...]",
		Short: "Convert CoNLL-U files to Turtle",
		Long: `Convert one or more CoNLL-U files to Turtle. Arguments are glob
patterns (doublestar syntax, e.g. "corpora/**/*.conllu"). Each input
produces a .ttl file next to it; --output overrides the destination for
a single input. Metadata defaults come from conllu2rdf.yaml and can be
overridden per flag.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(slog.Default()).Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			overrideConfig(cfg, map[string]string{
				"corpus": corpus, "title": title, "id": docID,
				"author": author, "contributor": contributor,
				"see_also": seeAlso, "description": description,
			})
			if noCitation {
				disabled := false
				cfg.Options.CitationLayer = &disabled
			}
			if noMorphology {
				disabled := false
				cfg.Options.MorphologicalLayer = &disabled
			}

			inputs, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no input files match %v", args)
			}
			if output != "" && len(inputs) > 1 {
				return fmt.Errorf("--output requires a single input, got %d", len(inputs))
			}

			runner := &convertRunner{cfg: cfg, output: output}
			if err := runner.runAll(inputs); err != nil {
				return err
			}
			if watch {
				return runner.watch(inputs)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (single input only)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-convert when an input changes")
	cmd.Flags().StringVar(&corpus, "corpus", "", "Corpus base IRI")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVar(&docID, "id", "", "Document identifier")
	cmd.Flags().StringVar(&author, "author", "", "Document author")
	cmd.Flags().StringVar(&contributor, "contributor", "", "Document contributor")
	cmd.Flags().StringVar(&seeAlso, "see-also", "", "Related resource IRI")
	cmd.Flags().StringVar(&description, "description", "", "Document description")
	cmd.Flags().BoolVar(&noCitation, "no-citation", false, "Skip the citation hierarchy layer")
	cmd.Flags().BoolVar(&noMorphology, "no-morphology", false, "Skip the morphology layer and dependency relations")

	return cmd
}

func overrideConfig(cfg *config.Config, overrides map[string]string) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Metadata.Corpus, overrides["corpus"])
	set(&cfg.Metadata.Title, overrides["title"])
	set(&cfg.Metadata.ID, overrides["id"])
	set(&cfg.Metadata.Author, overrides["author"])
	set(&cfg.Metadata.Contributor, overrides["contributor"])
	set(&cfg.Metadata.SeeAlso, overrides["see_also"])
	set(&cfg.Metadata.Description, overrides["description"])
}

// expandPatterns resolves doublestar glob patterns to file paths. A
// pattern without meta characters is taken as a literal path.
func expandPatterns(patterns []string) ([]string, error) {
	var inputs []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matches == nil && !strings.ContainsAny(pattern, "*?[{") {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				inputs = append(inputs, m)
			}
		}
	}
	return inputs, nil
}

type convertRunner struct {
	cfg    *config.Config
	output string
}

func (r *convertRunner) runAll(inputs []string) error {
	runID := uuid.NewString()
	logger := slog.Default().With(slog.String("run_id", runID))
	for _, input := range inputs {
		if err := r.runOne(logger, input); err != nil {
			return err
		}
	}
	return nil
}

func (r *convertRunner) runOne(logger *slog.Logger, input string) error {
	start := time.Now()

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	cfg := *r.cfg
	// Without an explicit title the file name stands in, so batch runs
	// get one document per input.
	if cfg.Metadata.Title == "" {
		cfg.Metadata.Title = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := conllu.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	turtle, err := convert.Convert(doc, cfg.ConvertMetadata(), cfg.ConvertOptions())
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}

	out := r.outputPath(input)
	if err := os.WriteFile(out, []byte(turtle), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logger.Info("Converted",
		slog.String("input", input),
		slog.String("output", out),
		slog.Int("sentences", len(doc.Sentences)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

func (r *convertRunner) outputPath(input string) string {
	if r.output != "" {
		return r.output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".ttl"
}

// watch re-runs the conversion whenever an input file is written.
func (r *convertRunner) watch(inputs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(inputs))
	dirs := make(map[string]bool)
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	// Watch parent directories: editors replace files on save, and a
	// watch on the file itself is lost with the old inode.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	slog.Info("Watching for changes", slog.Int("files", len(inputs)))

	// Debounce bursts of events for the same file.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err == nil && watched[abs] {
				pending[abs] = time.Now()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", slog.String("error", err.Error()))
		case now := <-ticker.C:
			for path, stamp := range pending {
				if now.Sub(stamp) < 200*time.Millisecond {
					continue
				}
				delete(pending, path)
				logger := slog.Default().With(slog.String("run_id", uuid.NewString()))
				if err := r.runOne(logger, path); err != nil {
					slog.Error("Re-conversion failed", slog.String("input", path), slog.String("error", err.Error()))
				}
			}
		}
	}
}

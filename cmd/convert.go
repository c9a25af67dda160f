// Package cmd — convert command.
// Orchestrates the run: classify sources, ingest each one (markup via
// the reference index, structured records directly), then render the
// committed records in the selected output format. A failed source is
// logged and skipped; the run renders whatever was committed.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/monsterdeck/core"
	"github.com/gaurav-prasanna/monsterdeck/core/config"
	"github.com/gaurav-prasanna/monsterdeck/core/index"
	"github.com/gaurav-prasanna/monsterdeck/core/ingest"
	"github.com/gaurav-prasanna/monsterdeck/core/output"
	"github.com/gaurav-prasanna/monsterdeck/core/render"
	"github.com/gaurav-prasanna/monsterdeck/core/source"
)

// Flag variables.
var (
	flagCSV       string
	flagPDF       string
	flagPlain     bool
	flagYAML      string
	flagMarkdown  string
	flagBackPDF   string
	flagBackImage string
	flagIndex     string
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <source...>",
	Short: "Convert monster source files to the selected output format",
	Long: `Convert ingests markup (.xml) and structured (.yml/.yaml) monster
sources into canonical records and renders them in exactly one output
format. Markup sources need the page-reference index; structured
sources do not.

Examples:
  monsterdeck convert --csv monsters.csv sources/*.xml
  monsterdeck convert --pdf cards.pdf sources/*.xml monsters/*.yaml
  monsterdeck convert --yaml ./out monsters/*.yaml
  monsterdeck convert --plain sources/core_setting.xml
  monsterdeck convert --back-pdf backs.pdf --back-image dragon.png`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().StringVar(&flagCSV, "csv", "", "Write a CSV table of all monsters to FILE (\"-\" for stdout)")
	convertCmd.Flags().StringVar(&flagPDF, "pdf", "", "Write a monster-card PDF to FILE")
	convertCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain-text monster entries to stdout")
	convertCmd.Flags().StringVar(&flagYAML, "yaml", "", "Write one YAML file per monster into DIR (\"-\" for stdout)")
	convertCmd.Flags().StringVar(&flagMarkdown, "markdown", "", "Write one Markdown file per monster into DIR (\"-\" for stdout)")
	convertCmd.Flags().StringVar(&flagBackPDF, "back-pdf", "", "Write a card-back PDF to FILE (requires --back-image, no sources)")

	convertCmd.Flags().StringVar(&flagBackImage, "back-image", "", "Image for the back of the cards")
	convertCmd.Flags().StringVar(&flagIndex, "index", "", "Page-reference index file (default index.yaml, env MDECK_INDEX)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagIndex == "" {
		flagIndex = cfg.Index
	}

	if err := validateFlags(args); err != nil {
		return err
	}

	writer := output.New()

	// Card backs need no sources and no records.
	if flagBackPDF != "" {
		data, err := render.NewBackRenderer(flagBackImage).Render(nil)
		if err != nil {
			return err
		}
		path, err := writer.WriteDocument(resolve(cfg, flagBackPDF), data)
		if err != nil {
			return err
		}
		logger.Info("card backs written", zap.String("path", path))
		return nil
	}

	sources, err := source.Collect(args)
	if err != nil {
		return err
	}
	if sources.Len() == 0 {
		return fmt.Errorf("no source files matched %v", args)
	}

	store := core.NewStore()
	ingestAll(sources, store)
	if store.Len() == 0 {
		return fmt.Errorf("no monster records ingested")
	}
	monsters := store.Sorted()

	switch {
	case flagCSV != "":
		return writeDocument(writer, render.NewCSVRenderer(), monsters, resolve(cfg, flagCSV))
	case flagPDF != "":
		return writeDocument(writer, render.NewPDFRenderer(), monsters, resolve(cfg, flagPDF))
	case flagPlain:
		return writeDocument(writer, render.NewPlainRenderer(), monsters, "-")
	case flagYAML != "":
		return writeRecords(writer, render.NewYAMLRenderer(), monsters, resolve(cfg, flagYAML))
	case flagMarkdown != "":
		return writeRecords(writer, render.NewMarkdownRenderer(), monsters, resolve(cfg, flagMarkdown))
	}
	return fmt.Errorf("no output format selected")
}

// ingestAll runs every source through its loader, markup first. Errors
// abort the offending source only.
func ingestAll(sources *source.Set, store *core.Store) {
	if len(sources.Markup) > 0 {
		idx, err := index.Load(flagIndex)
		if err != nil {
			logger.Error("reference index unavailable, skipping markup sources", zap.Error(err))
		} else {
			parser := ingest.NewMarkupParser(idx, store)
			for _, path := range sources.Markup {
				logger.Debug("ingesting markup source", zap.String("path", path))
				if err := parser.ParseFile(path); err != nil {
					logger.Warn("skipping markup source", zap.String("path", path), zap.Error(err))
				}
			}
		}
	}

	loader := ingest.NewRecordLoader(store)
	for _, path := range sources.Structured {
		logger.Debug("ingesting structured source", zap.String("path", path))
		if err := loader.LoadFile(path); err != nil {
			logger.Warn("skipping structured source", zap.String("path", path), zap.Error(err))
		}
	}
	logger.Info("ingestion complete", zap.Int("monsters", store.Len()))
}

func writeDocument(w *output.Writer, r core.Renderer, monsters []*core.Monster, path string) error {
	data, err := r.Render(monsters)
	if err != nil {
		return err
	}
	written, err := w.WriteDocument(path, data)
	if err != nil {
		return err
	}
	logger.Info("output written", zap.String("path", written), zap.Int("monsters", len(monsters)))
	return nil
}

func writeRecords(w *output.Writer, r core.RecordRenderer, monsters []*core.Monster, dir string) error {
	paths, err := w.WriteRecords(dir, monsters, r)
	if err != nil {
		return err
	}
	logger.Info("records written", zap.String("dir", dir), zap.Int("files", len(paths)))
	return nil
}

// resolve anchors relative output paths at the configured output
// directory; absolute paths and "-" pass through.
func resolve(cfg *config.Config, path string) string {
	if path == "-" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.OutputDir, path)
}

// validateFlags checks that exactly one output format is chosen, that
// the card-back flags travel together, and that record outputs have
// sources to ingest.
func validateFlags(args []string) error {
	formats := 0
	if flagCSV != "" {
		formats++
	}
	if flagPDF != "" {
		formats++
	}
	if flagPlain {
		formats++
	}
	if flagYAML != "" {
		formats++
	}
	if flagMarkdown != "" {
		formats++
	}
	if flagBackPDF != "" {
		formats++
	}

	if formats == 0 {
		return fmt.Errorf("exactly one output format is required: --csv, --pdf, --plain, --yaml, --markdown, or --back-pdf")
	}
	if formats > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formats)
	}

	if (flagBackPDF != "") != (flagBackImage != "") {
		return fmt.Errorf("--back-pdf and --back-image are required together")
	}

	if flagBackPDF == "" && len(args) == 0 {
		return fmt.Errorf("source file(s) required")
	}
	return nil
}

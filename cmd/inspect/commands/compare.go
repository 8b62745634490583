package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"vsnorm/internal/corpus"
	"vsnorm/internal/inspect"
	"vsnorm/internal/jsonio"

	"github.com/spf13/cobra"
)

// errNoSourceFiles is returned when compare has no article file to read.
var errNoSourceFiles = errors.New("no support article files found")

var compareCmd = &cobra.Command{
	Use:   "compare [knowledge-base-file] [article-file]",
	Short: "Compare the two source schemas and preview a unified record",
	Long: `compare prints the fields of a knowledge-base file and a support
article file, checks the first article's description for markup and images,
and shows the unified record it would become. Without arguments it uses the
configured knowledge base and the first support article file.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	kbPath := cfg.Paths.KnowledgeBase
	if len(args) >= 1 {
		kbPath = args[0]
	}

	articlePath := ""
	if len(args) == 2 {
		articlePath = args[1]
	} else {
		files, err := corpus.NewUnifier(cfg, log).SourceFiles()
		if err != nil {
			return err
		}

		if len(files) == 0 {
			return fmt.Errorf("%w in %s", errNoSourceFiles, cfg.Paths.VectorStoreDir)
		}

		articlePath = filepath.Join(cfg.Paths.VectorStoreDir, files[0])
	}

	log.Debug("Comparing formats", "knowledge_base", kbPath, "articles", articlePath)

	kb, err := jsonio.ReadArray[map[string]any](kbPath)
	if err != nil {
		return err
	}

	articles, err := jsonio.ReadArray[map[string]any](articlePath)
	if err != nil {
		return err
	}

	report, err := inspect.Compare(kb, articles)
	if err != nil {
		return fmt.Errorf("%s: %w", articlePath, err)
	}

	return report.Print(cmd.OutOrStdout())
}

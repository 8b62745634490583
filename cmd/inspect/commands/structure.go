package commands

import (
	"vsnorm/internal/inspect"
	"vsnorm/internal/jsonio"

	"github.com/spf13/cobra"
)

var structureCmd = &cobra.Command{
	Use:   "structure [file]",
	Short: "Show fields, a sample record and image usage of a JSON array file",
	Long: `structure reads a JSON array of records (the knowledge base by default)
and prints the union of field names, the first record, whether its text
contains markup, and how many records carry images.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStructure,
}

func runStructure(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Paths.KnowledgeBase
	if len(args) == 1 {
		path = args[0]
	}

	log.Debug("Analyzing structure", "path", path)

	items, err := jsonio.ReadArray[map[string]any](path)
	if err != nil {
		return err
	}

	return inspect.AnalyzeStructure(items).Print(cmd.OutOrStdout())
}

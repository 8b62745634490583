package commands

import (
	"vsnorm/internal/inspect"
	"vsnorm/internal/jsonio"
	"vsnorm/internal/models"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [file]",
	Short: "Count items per category in a unified corpus",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Paths.UnifiedOutput
	if len(args) == 1 {
		path = args[0]
	}

	log.Debug("Counting categories", "path", path)

	recs, err := jsonio.ReadArray[models.UnifiedRecord](path)
	if err != nil {
		return err
	}

	return inspect.PrintCategories(cmd.OutOrStdout(), inspect.CountCategories(recs))
}

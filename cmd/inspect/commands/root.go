// Package commands implements the inspect CLI commands.
package commands

import (
	"fmt"
	"os"

	"vsnorm/internal/config"
	"vsnorm/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print structural and statistical facts about vector store files",
	Long: `inspect prints reports about knowledge-base, support article and
unified corpus files for human review. It never writes anything.

Examples:
  # Fields, a sample record and image usage of the knowledge base
  inspect structure

  # Items per category in the unified corpus
  inspect categories simplified_vector_store.json

  # Compare the two source schemas and preview the unified record
  inspect compare vector_store_data.json vector_stores/Internal_Support_vector_store.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default "+config.DefaultConfigPath+" if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	viper.SetEnvPrefix("VSNORM")
	viper.AutomaticEnv()

	rootCmd.AddCommand(structureCmd, categoriesCmd, compareCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logError("%v", err)
	}

	return err
}

// loadConfig resolves the configuration and the logger for a command run.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, used, err := config.Resolve(viper.GetString("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config %s: %w", used, err)
	}

	level := cfg.Logging.Level

	switch {
	case viper.GetBool("quiet"):
		level = "error"
	case viper.GetBool("debug"):
		level = "debug"
	}

	log := logger.NewLogger(level)
	if used != "" {
		log.Debug("Loaded configuration", "path", used)
	}

	return cfg, log, nil
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "❌ Error: "+format+"\n", args...)
}

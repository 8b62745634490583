// Package main provides the split command-line tool, which partitions the
// unified corpus into one file per category.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"vsnorm/internal/config"
	"vsnorm/internal/logger"
	"vsnorm/internal/partition"

	"github.com/dustin/go-humanize"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: "+config.DefaultConfigPath+" if present)")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	cfg, used, err := config.Resolve(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config %s: %v\n", used, err)
		os.Exit(1)
	}

	if used != "" {
		fmt.Printf("⚙️  Loaded configuration from: %s\n", used)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	res, err := partition.NewPartitioner(cfg, log).Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error splitting corpus: %v\n", err)
		os.Exit(1)
	}

	m := res.Manifest

	fmt.Printf("Split %d items into %d categories\n\n", m.TotalItems, m.TotalCategories)

	var totalSize int64

	for i, entry := range m.Categories {
		file := res.Files[i]
		totalSize += file.Size

		marker := "✅"
		if file.OverLimit {
			marker = "⚠️ "
		}

		fmt.Printf("%s %s: %d items → %s (%s)\n", marker, entry.Name, entry.Count, entry.Filename, humanize.IBytes(uint64(file.Size)))
	}

	fmt.Printf("\n🎉 Successfully split into %d files in '%s' directory\n", m.TotalCategories, cfg.Paths.PartitionOutputDir)
	fmt.Printf("Total items processed: %d (%s)\n", m.TotalItems, humanize.IBytes(uint64(totalSize)))
	fmt.Printf("📋 Created %s with overview\n", res.ManifestPath)
}

func printUsage() {
	fmt.Println("Usage: ./bin/split [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/split")
	fmt.Println("  ./bin/split -config configs/vsnorm.yaml")
}

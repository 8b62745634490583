// Package main provides the unify command-line tool, which merges the
// knowledge base and support article files into one simplified corpus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"vsnorm/internal/config"
	"vsnorm/internal/corpus"
	"vsnorm/internal/logger"
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

	res, err := corpus.NewUnifier(cfg, log).Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error during transformation: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n✅ Successfully created %s with %d total items\n", res.OutputPath, res.Total)

	fmt.Println("\n📊 Statistics:")
	fmt.Printf("  Knowledge base items: %d\n", res.KnowledgeBase)

	for _, f := range res.Files {
		fmt.Printf("  %s: %d\n", f.Name, f.Count)
	}

	fmt.Printf("  Total items:          %d\n", res.Total)
	fmt.Printf("  Items with images:    %d\n", res.WithImages)
	fmt.Printf("  Categories:           %d\n", len(res.Categories))

	for _, c := range res.Categories {
		fmt.Printf("    - %q\n", c)
	}

	fmt.Printf("  SHA-256:              %s\n", res.Digest)

	if !res.Changed {
		fmt.Println("  Output unchanged since the previous run")
	}
}

func printUsage() {
	fmt.Println("Usage: ./bin/unify [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/unify")
	fmt.Println("  ./bin/unify -config configs/vsnorm.yaml")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/sourcing/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		bomFile      = flag.String("bom", "", "Path to BOM CSV file")
		optionsFile  = flag.String("options", "", "Path to standardized supplier options CSV file")
		configFile   = flag.String("config", "", "Path to analysis settings YAML file (optional)")
		outputDir    = flag.String("output", "", "Output directory for CSV exports (optional)")
		format       = flag.String("format", "text", "Output format: text, json")
		templateFile = flag.String("template", "", "Write a template BOM CSV to the given path and exit")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		BOMFile:      *bomFile,
		OptionsFile:  *optionsFile,
		ConfigFile:   *configFile,
		OutputDir:    *outputDir,
		Format:       *format,
		TemplateFile: *templateFile,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewAnalyzeCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

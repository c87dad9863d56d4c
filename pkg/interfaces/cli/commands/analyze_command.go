package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vsinha/sourcing/pkg/application/dto"
	"github.com/vsinha/sourcing/pkg/application/services"
	"github.com/vsinha/sourcing/pkg/infrastructure/config"
	"github.com/vsinha/sourcing/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/sourcing/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/sourcing/pkg/interfaces/cli/output"
	domainsvc "github.com/vsinha/sourcing/pkg/domain/services"
)

// Config holds configuration for the analyze command
type Config struct {
	BOMFile      string
	OptionsFile  string
	ConfigFile   string
	OutputDir    string
	Format       string
	TemplateFile string
	Verbose      bool
	Help         bool
}

// AnalyzeCommand handles the main BOM analysis execution logic
type AnalyzeCommand struct {
	config Config
}

// NewAnalyzeCommand creates a new analyze command with the given configuration
func NewAnalyzeCommand(config Config) *AnalyzeCommand {
	return &AnalyzeCommand{
		config: config,
	}
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.TemplateFile != "" {
		if err := csv.NewExporter().WriteTemplateBOM(c.config.TemplateFile); err != nil {
			return fmt.Errorf("failed to write BOM template: %w", err)
		}
		fmt.Printf("✅ BOM template written to %s\n", c.config.TemplateFile)
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	analysisCfg, err := c.resolveAnalysisConfig()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Println("📂 Loading data from CSV files...")
	}

	csvLoader := csv.NewLoader()

	bomLines, err := csvLoader.LoadBOM(c.config.BOMFile)
	if err != nil {
		return fmt.Errorf("error loading BOM: %w", err)
	}

	optionsByPart, err := csvLoader.LoadOptions(c.config.OptionsFile)
	if err != nil {
		return fmt.Errorf("error loading supplier options: %w", err)
	}

	if c.config.Verbose {
		optionCount := 0
		for _, opts := range optionsByPart {
			optionCount += len(opts)
		}
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  BOM Lines: %d\n", len(bomLines))
		fmt.Printf("  Parts with Options: %d\n", len(optionsByPart))
		fmt.Printf("  Supplier Options: %d\n", optionCount)
		fmt.Println()
	}

	optionRepo := memory.NewOptionRepository(len(optionsByPart))
	if err := optionRepo.LoadOptions(optionsByPart); err != nil {
		return fmt.Errorf("failed to load options into repository: %w", err)
	}

	service := services.NewAnalysisService(optionRepo)

	start := time.Now()
	summary, err := service.AnalyzeBOM(ctx, bomLines, analysisCfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	elapsed := time.Since(start)

	if err := output.Render(summary, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
		Elapsed: elapsed,
	}); err != nil {
		return err
	}

	if c.config.OutputDir != "" {
		if err := c.exportResults(summary); err != nil {
			return err
		}
	}

	return nil
}

// exportResults writes the analysis and strategy CSV files to the output dir
func (c *AnalyzeCommand) exportResults(summary *dto.BuildSummary) error {
	if err := os.MkdirAll(c.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	exporter := csv.NewExporter()

	analysisPath := filepath.Join(c.config.OutputDir, "bom_analysis.csv")
	if err := exporter.ExportAnalysis(summary.Results, analysisPath); err != nil {
		return fmt.Errorf("failed to export analysis: %w", err)
	}

	comparisonPath := filepath.Join(c.config.OutputDir, "strategy_comparison.csv")
	if err := exporter.ExportStrategyComparison(summary.Strategies, services.StrategyNames, comparisonPath); err != nil {
		return fmt.Errorf("failed to export strategy comparison: %w", err)
	}

	for _, name := range services.StrategyNames {
		strategy, ok := summary.Strategies[name]
		if !ok {
			continue
		}
		path := filepath.Join(c.config.OutputDir, "strategy_"+strategyFileName(name)+".csv")
		if err := exporter.ExportStrategy(strategy, path); err != nil {
			return fmt.Errorf("failed to export strategy %s: %w", name, err)
		}
	}

	if c.config.Verbose {
		fmt.Printf("💾 Results exported to %s\n", c.config.OutputDir)
	}
	return nil
}

func (c *AnalyzeCommand) validateInputs() error {
	if c.config.BOMFile == "" {
		return fmt.Errorf("BOM file is required (-bom)")
	}
	if c.config.OptionsFile == "" {
		return fmt.Errorf("supplier options file is required (-options)")
	}
	if c.config.Format != "text" && c.config.Format != "json" {
		return fmt.Errorf("format must be 'text' or 'json', got %q", c.config.Format)
	}
	return nil
}

// resolveAnalysisConfig merges the optional settings file over the defaults
func (c *AnalyzeCommand) resolveAnalysisConfig() (services.Config, error) {
	cfg := services.DefaultConfig()
	if c.config.ConfigFile == "" {
		return cfg, nil
	}

	settings, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return cfg, fmt.Errorf("error loading config: %w", err)
	}

	if settings.TotalUnits != nil {
		cfg.TotalUnits = *settings.TotalUnits
	}
	if settings.BuyUpThresholdPct != nil {
		cfg.BuyUpThresholdPct = *settings.BuyUpThresholdPct
	}
	if settings.TargetLeadTimeDays != nil {
		cfg.TargetLeadTimeDays = *settings.TargetLeadTimeDays
	}
	if settings.MaxPremiumPct != nil {
		cfg.MaxPremiumPct = *settings.MaxPremiumPct
	}
	if settings.CostWeight != nil {
		cfg.CostWeight = *settings.CostWeight
	}
	if settings.LeadWeight != nil {
		cfg.LeadWeight = *settings.LeadWeight
	}
	for _, entry := range settings.CustomTariffRates {
		cfg.CustomTariffRates = append(cfg.CustomTariffRates, domainsvc.CustomTariff{
			Country: entry.Country,
			Rate:    entry.Rate,
		})
	}
	return cfg, nil
}

// strategyFileName converts a strategy name to a file-safe slug
func strategyFileName(name string) string {
	slug := strings.NewReplacer(" ", "_", "(", "", ")", "", "+", "_").Replace(name)
	return strings.ToLower(slug)
}

func (c *AnalyzeCommand) showHelp() {
	fmt.Println("BOM Sourcing Analyzer")
	fmt.Println()
	fmt.Println("Evaluates each BOM line against standardized supplier offers, scores")
	fmt.Println("supply risk, and compares four purchasing strategies.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sourcing -bom <bom.csv> -options <options.csv> [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -bom        Path to BOM CSV (requires Part Number and Quantity columns)")
	fmt.Println("  -options    Path to standardized supplier options CSV")
	fmt.Println("  -config     Path to analysis settings YAML (optional)")
	fmt.Println("  -output     Directory for CSV exports (optional)")
	fmt.Println("  -format     Output format: text, json (default text)")
	fmt.Println("  -template   Write a template BOM CSV to the given path and exit")
	fmt.Println("  -verbose    Enable verbose output")
	fmt.Println("  -help       Show this help message")
}

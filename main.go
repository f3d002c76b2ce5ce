package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"roikit/adapters/excel"
	"roikit/adapters/postgres"
	"roikit/app"
	"roikit/internal/charts"
	"roikit/internal/config"
	"roikit/internal/report"
	"roikit/ports"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	svc := app.NewEquityService(source, charts.Renderer{Title: "Group means"})
	result, err := svc.Run(ctx, app.RunRequest{
		Title:        "Inequality decomposition",
		GroupColumns: cfg.Data.GroupColumns,
		ValueColumn:  cfg.Data.ValueColumn,
		SampleSize:   cfg.Data.SampleSize,
		Seed:         cfg.Data.Seed,
	})
	if err != nil {
		return err
	}

	for index, reason := range result.Failures {
		log.Printf("Index %s skipped: %s", index, reason)
	}

	if cfg.Output.ReportFile != "" {
		if err := os.WriteFile(cfg.Output.ReportFile, []byte(result.Report), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		htmlFile := cfg.Output.ReportFile + ".html"
		if err := os.WriteFile(htmlFile, report.HTML(result.Report), 0o644); err != nil {
			return fmt.Errorf("writing HTML report: %w", err)
		}
		log.Printf("Report written: %s (and %s)", cfg.Output.ReportFile, htmlFile)
	}

	if cfg.Output.WorkbookFile != "" {
		writer := excel.NewWriter(cfg.Output.WorkbookFile)
		if err := writer.Write(result.Decompositions, result.Sample); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
	}

	log.Printf("Run %s finished: %d indices across %d groups",
		result.ID, len(result.Decompositions), result.Sample.GroupCount())
	return nil
}

// buildSource prefers a file input; a database URL is the fallback.
func buildSource(cfg *config.Config) (ports.MicrodataSource, error) {
	if cfg.Data.InputFile != "" {
		return excel.NewReader(cfg.Data.InputFile), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return postgres.NewWageRepository(db, "default"), nil
}

package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"roikit/domain/core"
	"roikit/domain/inequality"
	"roikit/domain/sample"
	"roikit/internal/report"
	"roikit/ports"

	"golang.org/x/sync/errgroup"
)

// EquityService orchestrates a full decomposition run: load microdata,
// group it, calculate every inequality index concurrently, and package
// the results as artifacts.
type EquityService struct {
	source   ports.MicrodataSource
	renderer ports.ChartRenderer // optional
}

func NewEquityService(source ports.MicrodataSource, renderer ports.ChartRenderer) *EquityService {
	return &EquityService{source: source, renderer: renderer}
}

// RunRequest selects the grouping and value columns plus optional
// subsampling.
type RunRequest struct {
	Title        string
	GroupColumns []string
	ValueColumn  string
	SampleSize   int
	Seed         int64
}

// RunResult carries everything a run produced. Decompositions holds the
// indices that calculated cleanly; Failures records per-index errors
// (e.g. Theil on data with zeros) without sinking the run.
type RunResult struct {
	ID             core.ID
	Sample         *sample.Grouped
	Decompositions []inequality.Decomposition
	Failures       map[inequality.Index]string
	Summaries      []report.GroupSummary
	Report         string
	Artifacts      []core.Artifact
}

// Run executes a decomposition run end to end.
func (s *EquityService) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	table, err := s.source.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading microdata: %w", err)
	}

	opts := []sample.Option{sample.WithSeed(req.Seed)}
	if req.SampleSize > 0 {
		opts = append(opts, sample.WithSampleSize(req.SampleSize))
	}
	grouped, err := sample.FromTable(table, req.GroupColumns, req.ValueColumn, opts...)
	if err != nil {
		return nil, fmt.Errorf("grouping microdata: %w", err)
	}
	for _, d := range grouped.Diagnostics() {
		log.Printf("[EquityService] %s", d)
	}

	result := &RunResult{
		ID:       core.NewID(),
		Sample:   grouped,
		Failures: make(map[inequality.Index]string),
	}

	// Each metric is pure over an immutable sample, so they calculate in
	// parallel. Failures are collected per index; only a context error
	// aborts the group.
	metrics := inequality.All(grouped)
	decomps := make([]*inequality.Decomposition, len(metrics))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, metric := range metrics {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := metric.Calculate()
			if err != nil {
				mu.Lock()
				result.Failures[metric.Index()] = err.Error()
				mu.Unlock()
				log.Printf("[EquityService] %s skipped: %v", metric.Index(), err)
				return nil
			}
			decomps[i] = &d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, d := range decomps {
		if d != nil {
			result.Decompositions = append(result.Decompositions, *d)
		}
	}

	result.Summaries = report.Summarize(grouped)

	title := req.Title
	if title == "" {
		title = "Inequality decomposition"
	}
	result.Report = report.Markdown(title, result.Decompositions, result.Summaries, grouped.Diagnostics())
	result.Artifacts = append(result.Artifacts, report.Artifact(result.Report))

	for _, d := range result.Decompositions {
		result.Artifacts = append(result.Artifacts, core.Artifact{
			ID:        core.NewID(),
			Kind:      core.ArtifactDecomposition,
			Payload:   d,
			CreatedAt: core.Now(),
		})
	}

	if s.renderer != nil {
		chart, err := s.renderer.Render(grouped.Groups(), grouped.Observed())
		if err != nil {
			log.Printf("[EquityService] chart rendering failed: %v", err)
		} else {
			result.Artifacts = append(result.Artifacts, chart)
		}
	}

	log.Printf("[EquityService] Run %s complete: %d indices, %d skipped, %d groups",
		result.ID, len(result.Decompositions), len(result.Failures), grouped.GroupCount())
	return result, nil
}

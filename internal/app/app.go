package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantacalcio-season/internal/config"
	"github.com/riskibarqy/fantacalcio-season/internal/domain/team"
	"github.com/riskibarqy/fantacalcio-season/internal/infrastructure/dataset"
	"github.com/riskibarqy/fantacalcio-season/internal/infrastructure/rosterconfig"
	"github.com/riskibarqy/fantacalcio-season/internal/interfaces/report"
	"github.com/riskibarqy/fantacalcio-season/internal/platform/logging"
	"github.com/riskibarqy/fantacalcio-season/internal/usecase"
)

// App wires the full season pipeline: dataset loading, roster building,
// season processing, and reporting.
type App struct {
	cfg      config.Config
	logger   *logging.Logger
	datasets *usecase.DatasetService
	rosters  *usecase.RosterService
	renderer *report.Renderer
}

func New(cfg config.Config, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.NewNop()
	}
	standardizer := usecase.NewStandardizerService(logger)
	return &App{
		cfg:      cfg,
		logger:   logger,
		datasets: usecase.NewDatasetService(dataset.NewReader(), standardizer, cfg.LoadWorkers, logger),
		rosters:  usecase.NewRosterService(cfg.Composition, logger),
		renderer: report.NewRenderer(),
	}
}

// Run executes one complete season and returns the rendered reports.
func (a *App) Run(ctx context.Context) (string, error) {
	sets, err := a.datasets.LoadDir(ctx, a.cfg.DataDir)
	if err != nil {
		return "", fmt.Errorf("load matchday data: %w", err)
	}
	if a.cfg.WriteBackCSV {
		a.datasets.WriteStandardized(ctx, a.cfg.DataDir, sets)
	}

	configs, err := rosterconfig.Load(a.cfg.TeamsFile)
	if err != nil {
		return "", fmt.Errorf("load rosters: %w", err)
	}

	teams, err := a.rosters.BuildTeams(ctx, configs, sets)
	if err != nil {
		return "", fmt.Errorf("build teams: %w", err)
	}

	seasonSvc, err := usecase.NewSeasonService(a.cfg.SeasonName, teams, a.cfg.ScoringWorkers, a.logger)
	if err != nil {
		return "", fmt.Errorf("build season: %w", err)
	}

	summary, err := seasonSvc.ProcessCompleteSeason(ctx)
	if err != nil {
		return "", fmt.Errorf("process season: %w", err)
	}

	out := a.renderer.FinalTable(a.cfg.SeasonName, summary.FinalTable) +
		"\n" + a.renderer.Summary(summary)

	if a.cfg.ExportEnabled {
		if err := a.export(ctx, seasonSvc, teamNames(teams), summary); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (a *App) export(ctx context.Context, seasonSvc *usecase.SeasonService, teamNames []string, summary usecase.SeasonSummary) error {
	exporter := report.NewExporter(a.cfg.OutputDir)

	path, err := exporter.WriteSummary(summary)
	if err != nil {
		return fmt.Errorf("export summary: %w", err)
	}
	a.logger.InfoContext(ctx, "season summary exported", "path", path)

	progressions := make([]usecase.TeamProgression, 0, len(teamNames))
	for _, name := range teamNames {
		progression, progErr := seasonSvc.TeamProgression(name)
		if progErr != nil {
			return fmt.Errorf("export progression for %s: %w", name, progErr)
		}
		progressions = append(progressions, progression)
	}
	path, err = exporter.WriteProgressions(progressions)
	if err != nil {
		return fmt.Errorf("export progressions: %w", err)
	}
	a.logger.InfoContext(ctx, "team progressions exported", "path", path)
	return nil
}

func teamNames(teams []*team.Team) []string {
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		names = append(names, t.Name)
	}
	return names
}

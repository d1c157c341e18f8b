package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/player"
	"github.com/riskibarqy/fantacalcio-season/internal/domain/team"
	"github.com/riskibarqy/fantacalcio-season/internal/platform/logging"
)

// Config stores runtime configuration for the season simulator.
type Config struct {
	SeasonName     string
	DataDir        string
	TeamsFile      string
	OutputDir      string
	ExportEnabled  bool
	WriteBackCSV   bool
	ScoringWorkers int
	LoadWorkers    int
	Composition    team.Rules
	LogLevel       logging.Level
}

func Load() (Config, error) {
	seasonName := strings.TrimSpace(getEnv("SEASON_NAME", "Serie A Fantacalcio"))
	if seasonName == "" {
		return Config{}, fmt.Errorf("SEASON_NAME must not be blank")
	}

	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "data"))
	if dataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR must not be blank")
	}

	teamsFile := strings.TrimSpace(getEnv("TEAMS_FILE", "teams.json"))
	if teamsFile == "" {
		return Config{}, fmt.Errorf("TEAMS_FILE must not be blank")
	}

	exportEnabled, err := strconv.ParseBool(getEnv("EXPORT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EXPORT_ENABLED: %w", err)
	}
	outputDir := strings.TrimSpace(getEnv("OUTPUT_DIR", "results"))
	if exportEnabled && outputDir == "" {
		return Config{}, fmt.Errorf("OUTPUT_DIR is required when EXPORT_ENABLED=true")
	}

	writeBackCSV, err := strconv.ParseBool(getEnv("WRITE_STANDARDIZED_CSV", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRITE_STANDARDIZED_CSV: %w", err)
	}

	scoringWorkers, err := getEnvAsInt("SCORING_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORING_WORKERS: %w", err)
	}
	if scoringWorkers <= 0 {
		return Config{}, fmt.Errorf("SCORING_WORKERS must be > 0")
	}

	loadWorkers, err := getEnvAsInt("LOAD_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOAD_WORKERS: %w", err)
	}
	if loadWorkers <= 0 {
		return Config{}, fmt.Errorf("LOAD_WORKERS must be > 0")
	}

	composition, err := loadComposition()
	if err != nil {
		return Config{}, err
	}

	return Config{
		SeasonName:     seasonName,
		DataDir:        dataDir,
		TeamsFile:      teamsFile,
		OutputDir:      outputDir,
		ExportEnabled:  exportEnabled,
		WriteBackCSV:   writeBackCSV,
		ScoringWorkers: scoringWorkers,
		LoadWorkers:    loadWorkers,
		Composition:    composition,
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

// loadComposition reads the required squad shape. The counts are league
// configuration, so each role is overridable independently.
func loadComposition() (team.Rules, error) {
	defaults := team.DefaultRules()

	envByRole := map[player.Role]string{
		player.RoleGoalkeeper: "SQUAD_GOALKEEPERS",
		player.RoleDefender:   "SQUAD_DEFENDERS",
		player.RoleMidfielder: "SQUAD_MIDFIELDERS",
		player.RoleForward:    "SQUAD_FORWARDS",
	}

	required := make(map[player.Role]int, len(envByRole))
	for role, key := range envByRole {
		count, err := getEnvAsInt(key, defaults.RequiredByRole[role])
		if err != nil {
			return team.Rules{}, fmt.Errorf("parse %s: %w", key, err)
		}
		if count < 0 {
			return team.Rules{}, fmt.Errorf("%s must be >= 0", key)
		}
		required[role] = count
	}

	rules := team.Rules{RequiredByRole: required}
	if rules.SquadSize() == 0 {
		return team.Rules{}, fmt.Errorf("squad composition must require at least one player")
	}
	return rules, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

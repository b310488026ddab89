package env

import (
	"fmt"
	"investsim_backend/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

// gameYAML Структура секции game в config.yaml
type gameYAML struct {
	Game struct {
		InitialValue     float64 `yaml:"initial_value"`
		TargetValue      float64 `yaml:"target_value"`
		TotalRounds      int     `yaml:"total_rounds"`
		LeaderboardLimit int     `yaml:"leaderboard_limit"`
	} `yaml:"game"`
}

type gameConfig struct {
	initialValue     float64
	targetValue      float64
	totalRounds      int
	leaderboardLimit int
}

// NewGameConfigFromYAML Читает игровые параметры из YAML файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if parsed.Game.InitialValue <= 0 {
		return nil, fmt.Errorf("initial_value must be positive")
	}
	if parsed.Game.TargetValue <= parsed.Game.InitialValue {
		return nil, fmt.Errorf("target_value must be greater than initial_value")
	}
	if parsed.Game.TotalRounds <= 0 {
		return nil, fmt.Errorf("total_rounds must be positive")
	}
	if parsed.Game.LeaderboardLimit <= 0 {
		return nil, fmt.Errorf("leaderboard_limit must be positive")
	}

	return &gameConfig{
		initialValue:     parsed.Game.InitialValue,
		targetValue:      parsed.Game.TargetValue,
		totalRounds:      parsed.Game.TotalRounds,
		leaderboardLimit: parsed.Game.LeaderboardLimit,
	}, nil
}

func (cfg *gameConfig) InitialValue() float64 {
	return cfg.initialValue
}

func (cfg *gameConfig) TargetValue() float64 {
	return cfg.targetValue
}

func (cfg *gameConfig) TotalRounds() int {
	return cfg.totalRounds
}

func (cfg *gameConfig) LeaderboardLimit() int {
	return cfg.leaderboardLimit
}

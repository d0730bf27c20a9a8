package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Configs holds all loaded configurations
type Configs struct {
	Game   *GameConfig
	Battle *BattleConfig
}

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := validateGame(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return &cfg, nil
}

// LoadBattle loads battle.yaml
func (l *Loader) LoadBattle() (*BattleConfig, error) {
	data, err := fs.ReadFile(l.fsys, "battle.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read battle.yaml: %w", err)
	}

	var cfg BattleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse battle.yaml: %w", err)
	}

	if err := validateBattle(&cfg); err != nil {
		return nil, fmt.Errorf("invalid battle.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations (game, battle)
func (l *Loader) LoadAll() (*Configs, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	battle, err := l.LoadBattle()
	if err != nil {
		return nil, err
	}

	return &Configs{
		Game:   game,
		Battle: battle,
	}, nil
}

func validateGame(cfg *GameConfig) error {
	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}
	if cfg.Display.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", cfg.Display.Framerate)
	}
	if cfg.Display.Scale <= 0 {
		cfg.Display.Scale = 1
	}

	if len(cfg.Scenes) == 0 {
		return fmt.Errorf("scenes cannot be empty")
	}
	seen := make(map[string]bool, len(cfg.Scenes))
	for _, s := range cfg.Scenes {
		if s.Name == "" {
			return fmt.Errorf("scene name cannot be empty")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scene %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

func validateBattle(cfg *BattleConfig) error {
	if cfg.HandSize <= 0 {
		return fmt.Errorf("handSize must be positive, got %d", cfg.HandSize)
	}
	if cfg.MessageFrames < 0 {
		return fmt.Errorf("messageFrames cannot be negative, got %d", cfg.MessageFrames)
	}

	for name, card := range cfg.Cards {
		if card.Cost < 0 || card.Damage < 0 || card.Block < 0 {
			return fmt.Errorf("card %s has negative values", name)
		}
	}

	if cfg.Player.MaxHP <= 0 {
		return fmt.Errorf("player maxHp must be positive, got %d", cfg.Player.MaxHP)
	}
	if cfg.Player.MaxEnergy < 0 {
		return fmt.Errorf("player maxEnergy cannot be negative, got %d", cfg.Player.MaxEnergy)
	}
	for _, entry := range cfg.Player.Deck {
		if _, ok := cfg.Cards[entry.Card]; !ok {
			return fmt.Errorf("deck references unknown card %q", entry.Card)
		}
		if entry.Copies <= 0 {
			return fmt.Errorf("deck entry %s must have at least one copy", entry.Card)
		}
	}

	if len(cfg.Enemies) == 0 {
		return fmt.Errorf("enemies cannot be empty")
	}
	for _, e := range cfg.Enemies {
		if e.MaxHP <= 0 {
			return fmt.Errorf("enemy %s maxHp must be positive, got %d", e.Name, e.MaxHP)
		}
		if len(e.Actions) == 0 {
			return fmt.Errorf("enemy %s has no actions", e.Name)
		}
	}
	return nil
}

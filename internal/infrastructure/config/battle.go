package config

// BattleConfig is the root config for battle.yaml
type BattleConfig struct {
	HandSize      int                   `yaml:"handSize"`
	MessageFrames int                   `yaml:"messageFrames"`
	Cards         map[string]CardConfig `yaml:"cards"`
	Player        PlayerConfig          `yaml:"player"`
	Enemies       []EnemyConfig         `yaml:"enemies"`
}

type CardConfig struct {
	Cost   int `yaml:"cost"`
	Damage int `yaml:"damage"`
	Block  int `yaml:"block"`
}

type PlayerConfig struct {
	Name      string            `yaml:"name"`
	MaxHP     int               `yaml:"maxHp"`
	MaxEnergy int               `yaml:"maxEnergy"`
	Deck      []DeckEntryConfig `yaml:"deck"`
}

// DeckEntryConfig puts Copies copies of Card into a starting deck
type DeckEntryConfig struct {
	Card   string `yaml:"card"`
	Copies int    `yaml:"copies"`
}

type EnemyConfig struct {
	Name    string         `yaml:"name"`
	MaxHP   int            `yaml:"maxHp"`
	Actions []ActionConfig `yaml:"actions"`
}

type ActionConfig struct {
	Name   string `yaml:"name"`
	Damage int    `yaml:"damage"`
}

// Enemy returns the enemy config with the given name
func (c *BattleConfig) Enemy(name string) (EnemyConfig, bool) {
	for _, e := range c.Enemies {
		if e.Name == name {
			return e, true
		}
	}
	return EnemyConfig{}, false
}

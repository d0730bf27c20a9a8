package config

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "ROUGUELIKE", cfg.Display.Title)
	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cfg.Display.Background.Color())

	require.Len(t, cfg.Scenes, 6)
	names := make([]string, len(cfg.Scenes))
	for i, s := range cfg.Scenes {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Start", "Home", "Shop", "Battle", "Result", "Setting"}, names)
	assert.Equal(t, RGB{255, 255, 0}, cfg.Scenes[3].Color)
}

func TestLoader_LoadBattle(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadBattle()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.HandSize)
	assert.Equal(t, 120, cfg.MessageFrames)
	assert.Equal(t, CardConfig{Cost: 1, Damage: 6}, cfg.Cards["Strike"])
	assert.Equal(t, CardConfig{Cost: 1, Block: 5}, cfg.Cards["Defend"])
	assert.Equal(t, 100, cfg.Player.MaxHP)
	assert.Equal(t, 3, cfg.Player.MaxEnergy)
	assert.Len(t, cfg.Player.Deck, 3)

	slime, ok := cfg.Enemy("Slime")
	require.True(t, ok)
	assert.Equal(t, 50, slime.MaxHP)
	assert.Equal(t, ActionConfig{Name: "Strong Attack", Damage: 15}, slime.Actions[2])

	_, ok = cfg.Enemy("Dragon")
	assert.False(t, ok)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfgs, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfgs.Game)
	assert.NotNil(t, cfgs.Battle)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "empty")

	_, err := loader.LoadGame()
	assert.Error(t, err)

	_, err = loader.LoadBattle()
	assert.Error(t, err)
}

func TestLoader_InvalidGame(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"display": `},
		{"no scenes", `{"display": {"screenWidth": 800, "screenHeight": 600, "framerate": 60}, "scenes": []}`},
		{"duplicate scene", `{"display": {"screenWidth": 800, "screenHeight": 600, "framerate": 60},
			"scenes": [{"name": "Start"}, {"name": "Start"}]}`},
		{"unnamed scene", `{"display": {"screenWidth": 800, "screenHeight": 600, "framerate": 60},
			"scenes": [{"name": ""}]}`},
		{"zero framerate", `{"display": {"screenWidth": 800, "screenHeight": 600},
			"scenes": [{"name": "Start"}]}`},
		{"zero size", `{"display": {"framerate": 60}, "scenes": [{"name": "Start"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"game.json": {Data: []byte(tt.json)}}

			_, err := NewFSLoader(fsys, ".").LoadGame()
			assert.Error(t, err)
		})
	}
}

func TestLoader_DefaultScale(t *testing.T) {
	fsys := fstest.MapFS{"game.json": {Data: []byte(
		`{"display": {"screenWidth": 800, "screenHeight": 600, "framerate": 60}, "scenes": [{"name": "Start"}]}`)}}

	cfg, err := NewFSLoader(fsys, ".").LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Display.Scale)
}

func TestLoader_InvalidBattle(t *testing.T) {
	const valid = `
handSize: 5
cards:
  Strike: {cost: 1, damage: 6}
player:
  maxHp: 100
  maxEnergy: 3
  deck:
    - {card: Strike, copies: 2}
enemies:
  - name: Slime
    maxHp: 50
    actions:
      - {name: Attack, damage: 10}
`
	fsys := fstest.MapFS{"battle.yaml": {Data: []byte(valid)}}
	_, err := NewFSLoader(fsys, ".").LoadBattle()
	require.NoError(t, err, "baseline must load")

	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "handSize: [5"},
		{"zero hand", "handSize: 0\nplayer: {maxHp: 10}\nenemies: [{name: A, maxHp: 1, actions: [{name: x}]}]"},
		{"unknown card", "handSize: 5\nplayer: {maxHp: 10, deck: [{card: Zap, copies: 1}]}\nenemies: [{name: A, maxHp: 1, actions: [{name: x}]}]"},
		{"zero copies", "handSize: 5\ncards: {Zap: {cost: 1}}\nplayer: {maxHp: 10, deck: [{card: Zap, copies: 0}]}\nenemies: [{name: A, maxHp: 1, actions: [{name: x}]}]"},
		{"negative card", "handSize: 5\ncards: {Zap: {cost: -1}}\nplayer: {maxHp: 10}\nenemies: [{name: A, maxHp: 1, actions: [{name: x}]}]"},
		{"dead player", "handSize: 5\nplayer: {maxHp: 0}\nenemies: [{name: A, maxHp: 1, actions: [{name: x}]}]"},
		{"no enemies", "handSize: 5\nplayer: {maxHp: 10}"},
		{"enemy without actions", "handSize: 5\nplayer: {maxHp: 10}\nenemies: [{name: A, maxHp: 1}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"battle.yaml": {Data: []byte(tt.yaml)}}

			_, err := NewFSLoader(fsys, ".").LoadBattle()
			assert.Error(t, err)
		})
	}
}

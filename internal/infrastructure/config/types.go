package config

import "image/color"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Scenes  []SceneConfig `json:"scenes"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Background   RGB    `json:"background"`
}

// SceneConfig is one row of the ordered scene table
type SceneConfig struct {
	Name  string `json:"name"`
	Color RGB    `json:"color"`
}

// RGB is a 3-byte color written as [r, g, b]
type RGB [3]uint8

// Color returns the opaque RGBA color
func (c RGB) Color() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

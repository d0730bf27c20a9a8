// Package dungeon provides the dungeon map screen between battles.
package dungeon

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/roguelike/internal/application/scene"
	"github.com/younwookim/roguelike/internal/application/system"
	"github.com/younwookim/roguelike/internal/domain/entity"
)

var (
	colorBG   = color.RGBA{0, 0, 0, 255}
	colorPath = color.RGBA{80, 80, 80, 255}

	nodeColors = map[entity.NodeType]color.RGBA{
		entity.NodeNormal:   {255, 255, 255, 255},
		entity.NodeElite:    {255, 0, 0, 255},
		entity.NodeRest:     {0, 255, 0, 255},
		entity.NodeMerchant: {255, 255, 0, 255},
		entity.NodeBoss:     {128, 0, 128, 255},
	}
)

// Map shows the dungeon floor and starts battles from normal nodes
type Map struct {
	dungeon *entity.Dungeon
	player  *entity.Combatant

	// onBattle builds the battle scene for a normal node
	onBattle func() (scene.Scene, error)

	// replaced in tests
	click   func() (image.Point, bool)
	closing func() bool
}

// New creates the map screen for the run's dungeon and player
func New(d *entity.Dungeon, player *entity.Combatant, onBattle func() (scene.Scene, error)) *Map {
	return &Map{
		dungeon:  d,
		player:   player,
		onBattle: onBattle,
		click:    system.JustClicked,
		closing:  ebiten.IsWindowBeingClosed,
	}
}

// Update handles node clicks (implements scene.Scene)
func (m *Map) Update(_ float64) (scene.Scene, error) {
	if m.closing() {
		return nil, ebiten.Termination
	}
	p, ok := m.click()
	if !ok {
		return nil, nil
	}
	node, ok := m.dungeon.NodeAt(p)
	if !ok {
		return nil, nil
	}

	if node.Type != entity.NodeNormal {
		log.Printf("[Dungeon] clicked on %s node", node.Type)
		return nil, nil
	}
	next, err := m.onBattle()
	if err != nil {
		return nil, fmt.Errorf("failed to start battle: %w", err)
	}
	return next, nil
}

// Draw renders the paths, nodes and run status
func (m *Map) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	nodes := m.dungeon.Nodes
	for i := 1; i < len(nodes); i++ {
		a, b := nodes[i-1].Pos, nodes[i].Pos
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, colorPath, true)
	}
	for _, n := range nodes {
		vector.DrawFilledCircle(screen, float32(n.Pos.X), float32(n.Pos.Y), entity.NodeRadius, nodeColors[n.Type], true)
		ebitenutil.DebugPrintAt(screen, n.Type.String(), n.Pos.X-len(n.Type.String())*3, n.Pos.Y+entity.NodeRadius+4)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Floor %d", m.dungeon.Floor), 20, 20)
	if m.player != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP: %d/%d", m.player.HP, m.player.MaxHP), 20, 40)
	}
}

// OnEnter is called when entering this scene
func (m *Map) OnEnter() {}

// OnExit is called when leaving this scene
func (m *Map) OnExit() {}

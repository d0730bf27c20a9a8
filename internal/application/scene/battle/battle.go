// Package battle provides the card battle scene.
package battle

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/roguelike/internal/application/event"
	"github.com/younwookim/roguelike/internal/application/scene"
	"github.com/younwookim/roguelike/internal/application/state"
	"github.com/younwookim/roguelike/internal/application/system"
)

// DefaultMessageFrames keeps a message on screen for 2 seconds at 60 FPS
const DefaultMessageFrames = 120

// Layout of the hand and the end turn button
const (
	MaxHandSlots = 5
	cardX        = 50
	cardY        = 450
	cardW        = 100
	cardH        = 140
	cardGap      = 20
)

var endTurnRect = image.Rect(650, 500, 770, 550)

// Colors for rendering
var (
	colorBG          = color.RGBA{0, 0, 0, 255}
	colorPlayerPanel = color.RGBA{0, 0, 255, 255}
	colorEnemyPanel  = color.RGBA{255, 0, 0, 255}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{0, 255, 0, 255}
	colorCard        = color.RGBA{255, 255, 255, 255}
	colorCardDim     = color.RGBA{100, 100, 100, 255}
	colorButton      = color.RGBA{50, 50, 50, 255}
)

// Options configures a battle scene
type Options struct {
	ScreenW       int
	ScreenH       int
	MessageFrames int

	// OnFinish builds the scene shown once the battle is over
	OnFinish func(b *system.Battle) scene.Scene
}

// Battle is the card battle scene
type Battle struct {
	battle   *system.Battle
	bus      *event.Bus
	controls system.BattleControls
	opts     Options

	// readIntents is replaced in tests
	readIntents func() []system.Intent

	subs          []*event.Subscription
	message       string
	messageTimer  int
	messageFrames int
}

// New creates a new battle scene around b. bus may be nil.
func New(b *system.Battle, bus *event.Bus, opts Options) *Battle {
	if opts.MessageFrames <= 0 {
		opts.MessageFrames = DefaultMessageFrames
	}
	controls := HandControls()
	s := &Battle{
		battle:        b,
		bus:           bus,
		controls:      controls,
		opts:          opts,
		messageFrames: opts.MessageFrames,
	}
	s.readIntents = s.controls.ReadIntents
	return s
}

// HandControls returns the clickable areas of the battle screen
func HandControls() system.BattleControls {
	cards := make([]image.Rectangle, MaxHandSlots)
	for i := range cards {
		x := cardX + i*(cardW+cardGap)
		cards[i] = image.Rect(x, cardY, x+cardW, cardY+cardH)
	}
	return system.BattleControls{Cards: cards, EndTurn: endTurnRect}
}

// Update handles one frame of battle input (implements scene.Scene)
func (s *Battle) Update(_ float64) (scene.Scene, error) {
	if s.messageTimer > 0 {
		s.messageTimer--
		if s.messageTimer == 0 {
			s.message = ""
		}
	}

	for _, intent := range s.readIntents() {
		switch in := intent.(type) {
		case system.QuitIntent:
			return nil, ebiten.Termination
		case system.PlayCardIntent:
			if in.Index < len(s.battle.Player.Hand) && !s.battle.PlayCard(in.Index) {
				s.setMessage("Not enough energy")
			}
		case system.EndTurnIntent:
			s.battle.EndPlayerTurn()
		}
		if s.battle.IsOver() {
			break
		}
	}

	if s.battle.IsOver() && s.opts.OnFinish != nil {
		return s.opts.OnFinish(s.battle), nil
	}
	return nil, nil // nil = stay on this scene
}

// Message returns the text currently shown on the message line
func (s *Battle) Message() string {
	return s.message
}

func (s *Battle) setMessage(msg string) {
	s.message = msg
	s.messageTimer = s.messageFrames
}

func (s *Battle) subscribe(topic event.Topic, format func(any) string) {
	sub, err := s.bus.Subscribe(topic, func(e event.Event) {
		s.setMessage(format(e.Payload))
	})
	if err != nil {
		log.Printf("[Battle] subscribe %s: %v", topic, err)
		return
	}
	s.subs = append(s.subs, sub)
}

// OnEnter subscribes the message line and starts the battle.
// Turn changes are left to the player panel.
func (s *Battle) OnEnter() {
	if s.bus != nil {
		s.subscribe(event.TopicCardPlayed, func(p any) string {
			cp := p.(system.CardPlayed)
			return fmt.Sprintf("%s used %s", cp.Actor, cp.Card.Name)
		})
		s.subscribe(event.TopicEnemyActed, func(p any) string {
			ea := p.(system.EnemyActed)
			return fmt.Sprintf("%s used %s", ea.Enemy, ea.Action.Name)
		})
		s.subscribe(event.TopicBattleOver, func(p any) string {
			if p.(system.BattleOver).Result == state.PhaseVictory {
				return "Victory!"
			}
			return "Defeat..."
		})
	}

	if s.battle.Turn() == 0 {
		s.battle.Start()
	}
}

// OnExit releases the bus subscriptions
func (s *Battle) OnExit() {
	for _, sub := range s.subs {
		if err := sub.Cancel(); err != nil {
			log.Printf("[Battle] %v", err)
		}
	}
	s.subs = nil
}

// Draw renders the battle screen
func (s *Battle) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	s.drawPlayer(screen)
	s.drawEnemy(screen)
	s.drawHand(screen)

	ebitenutil.DrawRect(screen, float64(endTurnRect.Min.X), float64(endTurnRect.Min.Y),
		float64(endTurnRect.Dx()), float64(endTurnRect.Dy()), colorButton)
	ebitenutil.DebugPrintAt(screen, "End Turn", endTurnRect.Min.X+30, endTurnRect.Min.Y+18)

	if s.message != "" {
		ebitenutil.DebugPrintAt(screen, s.message, s.opts.ScreenW/2-len(s.message)*3, 200)
	}

	ebitenutil.DebugPrintAt(screen, "1-5/Click: Play card | Space: End turn | ESC: Quit", 10, s.opts.ScreenH-20)
}

func (s *Battle) drawPlayer(screen *ebiten.Image) {
	p := s.battle.Player
	ebitenutil.DrawRect(screen, 10, 10, 300, 100, colorPlayerPanel)
	text := fmt.Sprintf("HP: %d/%d\nEnergy: %d/%d\nBlock: %d\nTurn: %d",
		p.HP, p.MaxHP, p.Energy, p.MaxEnergy, p.Block, s.battle.Turn())
	ebitenutil.DebugPrintAt(screen, text, 20, 20)
}

func (s *Battle) drawEnemy(screen *ebiten.Image) {
	e := s.battle.Enemy
	ebitenutil.DrawRect(screen, 490, 10, 300, 100, colorEnemyPanel)
	ebitenutil.DebugPrintAt(screen, e.Name, 500, 20)

	// Health bar
	barX, barY, barW, barH := 500.0, 40.0, 280.0, 20.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	healthRatio := 0.0
	if e.MaxHP > 0 {
		healthRatio = float64(e.HP) / float64(e.MaxHP)
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d", e.HP, e.MaxHP), 620, 42)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Next: %s (%d)", e.Intent.Name, e.Intent.Damage), 500, 80)
}

func (s *Battle) drawHand(screen *ebiten.Image) {
	p := s.battle.Player
	for i, r := range s.controls.Cards {
		if i >= len(p.Hand) {
			break
		}
		card := p.Hand[i]
		c := colorCard
		if card.Cost > p.Energy {
			c = colorCardDim
		}
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)

		text := fmt.Sprintf("[%d] %s\nCost: %d", i+1, card.Name, card.Cost)
		if card.Damage > 0 {
			text += fmt.Sprintf("\nDamage: %d", card.Damage)
		}
		if card.Block > 0 {
			text += fmt.Sprintf("\nBlock: %d", card.Block)
		}
		ebitenutil.DebugPrintAt(screen, text, r.Min.X+5, r.Min.Y+5)
	}
}

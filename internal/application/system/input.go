package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/roguelike/internal/domain/entity"
)

// EventType distinguishes raw input events
type EventType int

const (
	EventKeyDown EventType = iota
	EventQuit
)

// RawEvent is one raw input event of a tick
type RawEvent struct {
	Type EventType
	Key  ebiten.Key // valid for EventKeyDown
}

// KeyDown builds a key-down event
func KeyDown(key ebiten.Key) RawEvent {
	return RawEvent{Type: EventKeyDown, Key: key}
}

// Quit builds a quit event
func Quit() RawEvent {
	return RawEvent{Type: EventQuit}
}

// InputSource produces the raw input batch of one tick
type InputSource interface {
	ReadInput() []RawEvent
}

// KeyboardInput reads raw input from ebiten.
// Closing the window is reported as a quit event; this requires
// ebiten.SetWindowClosingHandled(true).
//
// inpututil reports the keys of one tick sorted by key code and at most
// once each, so live input loses press order within a tick and never
// repeats a key. Replays keep whatever order was recorded.
type KeyboardInput struct {
	keys []ebiten.Key
}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{keys: make([]ebiten.Key, 0, 8)}
}

// ReadInput returns the keys pressed since the previous tick
func (k *KeyboardInput) ReadInput() []RawEvent {
	var events []RawEvent
	if ebiten.IsWindowBeingClosed() {
		events = append(events, Quit())
	}
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		events = append(events, KeyDown(key))
	}
	return events
}

// DefaultSceneKeys selects scenes by table position: A is the first scene,
// B the second and so on.
var DefaultSceneKeys = []ebiten.Key{
	ebiten.KeyA,
	ebiten.KeyB,
	ebiten.KeyC,
	ebiten.KeyD,
	ebiten.KeyE,
	ebiten.KeyF,
}

// InputDispatcher maps raw key presses to scene intents.
// It holds no state besides the static key table.
type InputDispatcher struct {
	bindings map[ebiten.Key]entity.Scene
}

// NewInputDispatcher binds keys[i] to the i-th registered scene.
// Extra keys or extra scenes stay unbound.
func NewInputDispatcher(reg *entity.SceneRegistry, keys []ebiten.Key) *InputDispatcher {
	d := &InputDispatcher{bindings: make(map[ebiten.Key]entity.Scene, len(keys))}
	for i, key := range keys {
		s, ok := reg.At(i)
		if !ok {
			break
		}
		d.bindings[key] = s
	}
	return d
}

// Binding returns the scene bound to key
func (d *InputDispatcher) Binding(key ebiten.Key) (entity.Scene, bool) {
	s, ok := d.bindings[key]
	return s, ok
}

// Dispatch converts one tick of raw input into intents.
// A quit anywhere in the batch collapses the result to a single QuitIntent.
func (d *InputDispatcher) Dispatch(raw []RawEvent) []Intent {
	for _, ev := range raw {
		if ev.Type == EventQuit {
			return []Intent{QuitIntent{}}
		}
	}

	var intents []Intent
	for _, ev := range raw {
		if ev.Type != EventKeyDown {
			continue
		}
		if s, ok := d.bindings[ev.Key]; ok {
			intents = append(intents, SceneIntent{Scene: s})
		}
	}
	return intents
}

// Poll drains one tick from src and dispatches it
func (d *InputDispatcher) Poll(src InputSource) []Intent {
	return d.Dispatch(src.ReadInput())
}

// BattleControls maps card battle input to intents.
// Cards holds the hit area of each hand slot in screen coordinates.
type BattleControls struct {
	Cards   []image.Rectangle
	EndTurn image.Rectangle
}

var cardKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
	ebiten.KeyDigit7,
	ebiten.KeyDigit8,
	ebiten.KeyDigit9,
}

// ReadIntents reads the current ebiten input state
func (c BattleControls) ReadIntents() []Intent {
	keys := inpututil.AppendJustPressedKeys(nil)
	if ebiten.IsWindowBeingClosed() {
		keys = append(keys, ebiten.KeyEscape)
	}
	var click *image.Point
	if p, ok := JustClicked(); ok {
		click = &p
	}
	return c.Translate(keys, click)
}

// JustClicked returns the cursor position if the left button was pressed
// this tick
func JustClicked() (image.Point, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return image.Point{}, false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y), true
}

// Translate converts pressed keys and an optional click into intents.
// Escape collapses the result to a single QuitIntent.
func (c BattleControls) Translate(keys []ebiten.Key, click *image.Point) []Intent {
	var intents []Intent
	for _, key := range keys {
		switch key {
		case ebiten.KeyEscape:
			return []Intent{QuitIntent{}}
		case ebiten.KeySpace, ebiten.KeyEnter:
			intents = append(intents, EndTurnIntent{})
		default:
			for i, k := range cardKeys {
				if k == key {
					intents = append(intents, PlayCardIntent{Index: i})
				}
			}
		}
	}

	if click != nil {
		if click.In(c.EndTurn) {
			intents = append(intents, EndTurnIntent{})
		}
		for i, r := range c.Cards {
			if click.In(r) {
				intents = append(intents, PlayCardIntent{Index: i})
				break
			}
		}
	}
	return intents
}

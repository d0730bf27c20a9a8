package system

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource replays fixed batches, one per ReadInput call
type fakeSource struct {
	batches [][]RawEvent
	reads   int
}

func (f *fakeSource) ReadInput() []RawEvent {
	if f.reads >= len(f.batches) {
		return nil
	}
	b := f.batches[f.reads]
	f.reads++
	return b
}

func sceneNames(intents []Intent) []string {
	var names []string
	for _, i := range intents {
		if s, ok := i.(SceneIntent); ok {
			names = append(names, s.Scene.Name)
		}
	}
	return names
}

func TestNewInputDispatcher(t *testing.T) {
	reg := createTestRegistry(t)

	d := NewInputDispatcher(reg, DefaultSceneKeys)

	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyA, "Start"},
		{ebiten.KeyB, "Home"},
		{ebiten.KeyC, "Shop"},
		{ebiten.KeyD, "Battle"},
		{ebiten.KeyE, "Result"},
		{ebiten.KeyF, "Setting"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, ok := d.Binding(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, s.Name)
		})
	}

	_, ok := d.Binding(ebiten.KeyG)
	assert.False(t, ok)
}

func TestNewInputDispatcher_MoreKeysThanScenes(t *testing.T) {
	reg := createTestRegistry(t)
	keys := append(append([]ebiten.Key{}, DefaultSceneKeys...), ebiten.KeyG, ebiten.KeyH)

	d := NewInputDispatcher(reg, keys)

	_, ok := d.Binding(ebiten.KeyG)
	assert.False(t, ok, "seventh key has no seventh scene")
}

func TestInputDispatcher_Dispatch(t *testing.T) {
	reg := createTestRegistry(t)
	d := NewInputDispatcher(reg, DefaultSceneKeys)

	t.Run("empty batch", func(t *testing.T) {
		assert.Empty(t, d.Dispatch(nil))
	})

	t.Run("keeps arrival order", func(t *testing.T) {
		intents := d.Dispatch([]RawEvent{KeyDown(ebiten.KeyB), KeyDown(ebiten.KeyD), KeyDown(ebiten.KeyA)})
		assert.Equal(t, []string{"Home", "Battle", "Start"}, sceneNames(intents))
	})

	t.Run("ignores unbound keys", func(t *testing.T) {
		intents := d.Dispatch([]RawEvent{KeyDown(ebiten.KeyZ), KeyDown(ebiten.KeyC), KeyDown(ebiten.KeyEscape)})
		assert.Equal(t, []string{"Shop"}, sceneNames(intents))
	})

	t.Run("repeated key appends twice", func(t *testing.T) {
		intents := d.Dispatch([]RawEvent{KeyDown(ebiten.KeyE), KeyDown(ebiten.KeyE)})
		assert.Equal(t, []string{"Result", "Result"}, sceneNames(intents))
	})

	t.Run("quit overrides everything", func(t *testing.T) {
		batches := [][]RawEvent{
			{Quit()},
			{KeyDown(ebiten.KeyA), Quit()},
			{Quit(), KeyDown(ebiten.KeyB)},
			{KeyDown(ebiten.KeyC), Quit(), KeyDown(ebiten.KeyD)},
		}
		for _, b := range batches {
			intents := d.Dispatch(b)
			assert.Equal(t, []Intent{QuitIntent{}}, intents)
			assert.True(t, IsQuit(intents))
		}
	})
}

func TestInputDispatcher_Poll(t *testing.T) {
	reg := createTestRegistry(t)
	d := NewInputDispatcher(reg, DefaultSceneKeys)
	src := &fakeSource{batches: [][]RawEvent{
		{KeyDown(ebiten.KeyF)},
		{Quit()},
	}}

	assert.Equal(t, []string{"Setting"}, sceneNames(d.Poll(src)))
	assert.True(t, IsQuit(d.Poll(src)))
	assert.Empty(t, d.Poll(src))
	assert.Equal(t, 2, src.reads)
}

func TestBattleControls_Translate(t *testing.T) {
	controls := BattleControls{
		Cards: []image.Rectangle{
			image.Rect(50, 450, 150, 590),
			image.Rect(170, 450, 270, 590),
		},
		EndTurn: image.Rect(650, 500, 770, 550),
	}

	t.Run("digit keys play cards", func(t *testing.T) {
		intents := controls.Translate([]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit3}, nil)
		assert.Equal(t, []Intent{PlayCardIntent{Index: 0}, PlayCardIntent{Index: 2}}, intents)
	})

	t.Run("space and enter end the turn", func(t *testing.T) {
		intents := controls.Translate([]ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, nil)
		assert.Equal(t, []Intent{EndTurnIntent{}, EndTurnIntent{}}, intents)
	})

	t.Run("escape quits", func(t *testing.T) {
		intents := controls.Translate([]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyEscape}, nil)
		assert.Equal(t, []Intent{QuitIntent{}}, intents)
	})

	t.Run("click on a card", func(t *testing.T) {
		p := image.Pt(200, 500)
		intents := controls.Translate(nil, &p)
		assert.Equal(t, []Intent{PlayCardIntent{Index: 1}}, intents)
	})

	t.Run("click on end turn", func(t *testing.T) {
		p := image.Pt(700, 520)
		intents := controls.Translate(nil, &p)
		assert.Equal(t, []Intent{EndTurnIntent{}}, intents)
	})

	t.Run("click on nothing", func(t *testing.T) {
		p := image.Pt(5, 5)
		assert.Empty(t, controls.Translate(nil, &p))
	})
}

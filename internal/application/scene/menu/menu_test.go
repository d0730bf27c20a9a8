package menu

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/roguelike/internal/application/scene"
)

type stubScene struct{}

func (stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image)                  {}
func (stubScene) OnEnter()                            {}
func (stubScene) OnExit()                             {}

func createTestMenu(newGame func() (scene.Scene, error), click *image.Point) *Menu {
	m := New("Card Game", newGame)
	m.click = func() (image.Point, bool) {
		if click == nil {
			return image.Point{}, false
		}
		return *click, true
	}
	m.closing = func() bool { return false }
	return m
}

func center(b Button) *image.Point {
	p := image.Pt((b.Rect.Min.X+b.Rect.Max.X)/2, (b.Rect.Min.Y+b.Rect.Max.Y)/2)
	return &p
}

func TestMenu_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Menu)(nil)
}

func TestMenu_Update(t *testing.T) {
	starts := 0
	newGame := func() (scene.Scene, error) {
		starts++
		return stubScene{}, nil
	}

	t.Run("no click", func(t *testing.T) {
		next, err := createTestMenu(newGame, nil).Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("new game", func(t *testing.T) {
		next, err := createTestMenu(newGame, center(NewGameButton)).Update(1.0 / 60)
		require.NoError(t, err)
		assert.Equal(t, stubScene{}, next)
		assert.Equal(t, 1, starts)
	})

	t.Run("continue stays", func(t *testing.T) {
		next, err := createTestMenu(newGame, center(ContinueButton)).Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
		assert.Equal(t, 1, starts)
	})

	t.Run("exit", func(t *testing.T) {
		_, err := createTestMenu(newGame, center(ExitButton)).Update(1.0 / 60)
		assert.ErrorIs(t, err, ebiten.Termination)
	})

	t.Run("click between buttons", func(t *testing.T) {
		p := image.Pt(400, 260)
		next, err := createTestMenu(newGame, &p).Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("window close", func(t *testing.T) {
		m := createTestMenu(newGame, nil)
		m.closing = func() bool { return true }

		_, err := m.Update(1.0 / 60)
		assert.ErrorIs(t, err, ebiten.Termination)
	})
}

func TestMenu_NewGameError(t *testing.T) {
	boom := errors.New("boom")
	m := createTestMenu(func() (scene.Scene, error) { return nil, boom }, center(NewGameButton))

	_, err := m.Update(1.0 / 60)

	assert.ErrorIs(t, err, boom)
}

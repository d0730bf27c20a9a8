package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/roguelike/internal/domain/entity"
)

// ErrSceneNotRegistered is returned when a transition targets an unknown scene
var ErrSceneNotRegistered = errors.New("scene not registered")

// SceneManager tracks the current and previous scene.
// Any registered scene may follow any other.
type SceneManager struct {
	registry    *entity.SceneRegistry
	current     entity.Scene
	previous    entity.Scene
	hasPrevious bool
}

// NewSceneManager creates a manager positioned on the first registered scene
func NewSceneManager(reg *entity.SceneRegistry) *SceneManager {
	first, _ := reg.At(0)
	return &SceneManager{
		registry: reg,
		current:  first,
	}
}

// ChangeScene switches to target. Unregistered targets are logged and
// rejected without touching the current or previous scene.
func (m *SceneManager) ChangeScene(target entity.Scene) error {
	if !m.registry.Contains(target) {
		err := fmt.Errorf("%w: %q", ErrSceneNotRegistered, target.Name)
		log.Printf("[SceneManager] %v", err)
		return err
	}

	m.previous = m.current
	m.hasPrevious = true
	m.current = target
	return nil
}

// ChangeSceneByName resolves name in the registry and switches to it
func (m *SceneManager) ChangeSceneByName(name string) error {
	target, ok := m.registry.Lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrSceneNotRegistered, name)
		log.Printf("[SceneManager] %v", err)
		return err
	}
	return m.ChangeScene(target)
}

// Current returns the active scene
func (m *SceneManager) Current() entity.Scene {
	return m.current
}

// Previous returns the scene that was active before the last transition
func (m *SceneManager) Previous() (entity.Scene, bool) {
	return m.previous, m.hasPrevious
}

// Registry returns the scene registry backing this manager
func (m *SceneManager) Registry() *entity.SceneRegistry {
	return m.registry
}

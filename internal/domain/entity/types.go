package entity

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrEmptySceneTable is returned when a registry is built without scenes
	ErrEmptySceneTable = errors.New("scene table is empty")
	// ErrDuplicateScene is returned when two scenes share a name
	ErrDuplicateScene = errors.New("duplicate scene name")
)

// Scene is a named, colored application mode
type Scene struct {
	Name  string
	Color color.RGBA
}

// String returns the scene name
func (s Scene) String() string {
	return s.Name
}

// SceneRegistry holds the ordered set of scenes known at startup.
// It is never mutated after construction.
type SceneRegistry struct {
	scenes []Scene
	index  map[string]int
}

// NewSceneRegistry builds a registry from an ordered scene table
func NewSceneRegistry(scenes []Scene) (*SceneRegistry, error) {
	if len(scenes) == 0 {
		return nil, ErrEmptySceneTable
	}

	r := &SceneRegistry{
		scenes: make([]Scene, len(scenes)),
		index:  make(map[string]int, len(scenes)),
	}
	for i, s := range scenes {
		if _, dup := r.index[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateScene, s.Name)
		}
		r.scenes[i] = s
		r.index[s.Name] = i
	}

	return r, nil
}

// Len returns the number of registered scenes
func (r *SceneRegistry) Len() int {
	return len(r.scenes)
}

// At returns the scene at position i in table order
func (r *SceneRegistry) At(i int) (Scene, bool) {
	if i < 0 || i >= len(r.scenes) {
		return Scene{}, false
	}
	return r.scenes[i], true
}

// Lookup returns the scene registered under name
func (r *SceneRegistry) Lookup(name string) (Scene, bool) {
	i, ok := r.index[name]
	if !ok {
		return Scene{}, false
	}
	return r.scenes[i], true
}

// Contains reports whether s is a registered scene (name and color must match)
func (r *SceneRegistry) Contains(s Scene) bool {
	i, ok := r.index[s.Name]
	return ok && r.scenes[i] == s
}

// Scenes returns a copy of the table in registration order
func (r *SceneRegistry) Scenes() []Scene {
	out := make([]Scene, len(r.scenes))
	copy(out, r.scenes)
	return out
}

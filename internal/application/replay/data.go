package replay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/roguelike/internal/application/system"
)

// Version is written into every recording
const Version = "1.0"

// FrameInput records the raw input batch of a single frame
type FrameInput struct {
	F int   `json:"f"`           // Frame number
	Q bool  `json:"q,omitempty"` // Quit
	K []int `json:"k,omitempty"` // Keys pressed, in arrival order
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Events expands the frame back into raw events.
// Quit is placed first; the dispatcher only cares that it is present.
func (fi FrameInput) Events() []system.RawEvent {
	var events []system.RawEvent
	if fi.Q {
		events = append(events, system.Quit())
	}
	for _, k := range fi.K {
		events = append(events, system.KeyDown(ebiten.Key(k)))
	}
	return events
}

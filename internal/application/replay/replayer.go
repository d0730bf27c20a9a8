package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/roguelike/internal/application/system"
)

// Replayer plays recorded input back as an input source.
// Once the recording runs out it reports quit on every read.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// ReadInput returns the next recorded batch and advances
func (r *Replayer) ReadInput() []system.RawEvent {
	if r.frame >= len(r.data.Frames) {
		return []system.RawEvent{system.Quit()}
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Events()
}

// Done returns true once every recorded frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

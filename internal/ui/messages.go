package ui

import "time"

// tickInterval is how often the panel refreshes the playback position.
const tickInterval = 100 * time.Millisecond

// TickMsg triggers a redraw of the playback status.
type TickMsg time.Time

// PlaybackDoneMsg is sent when the source is exhausted or the device fails.
type PlaybackDoneMsg struct {
	Err error
}

// PresetSavedMsg reports the result of the save key.
type PresetSavedMsg struct {
	Path string
	Err  error
}

package player

import (
	"github.com/wildeyedskies/go-mpv/mpv"

	"github.com/subtone/subtone/domain"
)

// Player is the playback collaborator. It receives fully formed stream URLs
// from the library side and controls an external player instance; nothing
// about the protocol leaks into it.
type Player interface {
	// Play starts playback of the given stream URL
	Play(url string) error

	// Pause toggles the pause state
	Pause() (int, error)

	// Stop stops playback completely
	Stop() error

	// GetProgress returns the current playback position and total duration
	GetProgress() (currentPos, totalDuration float64, err error)

	// GetVolume returns the current volume level
	GetVolume() (float64, error)

	// IsPlaying returns whether audio is currently playing
	IsPlaying() bool

	// AddToQueue adds an item to the playback queue
	AddToQueue(item domain.QueueItem)

	// GetQueue returns the current playback queue
	GetQueue() []domain.QueueItem

	// ClearQueue clears the playback queue
	ClearQueue()

	// EventChannel returns a channel for receiving player events
	EventChannel() <-chan *mpv.Event

	// Cleanup performs cleanup operations (termination, resource release)
	Cleanup()
}

// Player state constants
const (
	PlayerStopped = iota
	PlayerPlaying
	PlayerPaused
	PlayerError
)

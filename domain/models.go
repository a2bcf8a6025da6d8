package domain

import "sync"

// QueueItem represents an item in the playback queue. The URI is a fully
// formed, credential-embedded stream URL; the player needs nothing else.
type QueueItem struct {
	ID       string
	URI      string
	Title    string
	Artist   string
	Duration int // in seconds
}

// PlayerState manages the current playback state in a thread-safe manner
type PlayerState struct {
	current      *QueueItem
	currentIndex int
	isPlaying    bool
	isLoading    bool
	mux          sync.RWMutex
}

// NewPlayerState creates a new PlayerState with default values
func NewPlayerState() *PlayerState {
	return &PlayerState{
		currentIndex: -1,
	}
}

// GetState returns the current playback state (thread-safe)
func (s *PlayerState) GetState() (item *QueueItem, index int, playing bool, loading bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.current, s.currentIndex, s.isPlaying, s.isLoading
}

// SetLoading updates the loading state (thread-safe)
func (s *PlayerState) SetLoading(loading bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.isLoading = loading
}

// SetPlaying updates the playing state (thread-safe)
func (s *PlayerState) SetPlaying(playing bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.isPlaying = playing
}

// SetCurrent updates the current item and index (thread-safe)
func (s *PlayerState) SetCurrent(item *QueueItem, index int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.current = item
	s.currentIndex = index
}

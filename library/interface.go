package library

import (
	"github.com/subtone/subtone/domain"
	"github.com/subtone/subtone/subsonic"
)

// Library is the narrowed view of the music server the UI works against.
type Library interface {
	Search(term string, category subsonic.Kind) ([]subsonic.Entity, error)
	RandomSongs(count string) ([]subsonic.Entity, error)
	Playlists() ([]subsonic.Entity, error)
	AlbumList(listType string) ([]subsonic.Entity, error)
	ExpandToSongs(entities []subsonic.Entity) ([]subsonic.Entity, error)
	CoverArtURL(streamURL, size string) (string, error)
	Ping() error
}

// ToQueueItems converts song entities into playback queue items.
func ToQueueItems(songs []subsonic.Entity) []domain.QueueItem {
	items := make([]domain.QueueItem, len(songs))
	for i, song := range songs {
		items[i] = ToQueueItem(song)
	}
	return items
}

// ToQueueItem converts one song entity into a playback queue item.
func ToQueueItem(song subsonic.Entity) domain.QueueItem {
	return domain.QueueItem{
		ID:       song.ID(),
		URI:      song.StreamURL(),
		Title:    song.Name(),
		Artist:   song.Get("artist"),
		Duration: atoiOrZero(song.Get("duration")),
	}
}

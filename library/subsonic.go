package library

import (
	"strconv"

	"github.com/subtone/subtone/subsonic"
)

// SubsonicLibrary adapts the subsonic client to the Library interface.
type SubsonicLibrary struct {
	client *subsonic.Client
}

func NewSubsonicLibrary(client *subsonic.Client) *SubsonicLibrary {
	return &SubsonicLibrary{
		client: client,
	}
}

func (s *SubsonicLibrary) Search(term string, category subsonic.Kind) ([]subsonic.Entity, error) {
	return s.client.Search(term, category)
}

func (s *SubsonicLibrary) RandomSongs(count string) ([]subsonic.Entity, error) {
	return s.client.RandomSongs(count)
}

func (s *SubsonicLibrary) Playlists() ([]subsonic.Entity, error) {
	return s.client.Playlists()
}

func (s *SubsonicLibrary) AlbumList(listType string) ([]subsonic.Entity, error) {
	return s.client.AlbumList(listType)
}

func (s *SubsonicLibrary) ExpandToSongs(entities []subsonic.Entity) ([]subsonic.Entity, error) {
	return s.client.ExpandToSongs(entities)
}

func (s *SubsonicLibrary) CoverArtURL(streamURL, size string) (string, error) {
	return s.client.AlbumArtURL(streamURL, size)
}

func (s *SubsonicLibrary) Ping() error {
	return s.client.Ping()
}

func atoiOrZero(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

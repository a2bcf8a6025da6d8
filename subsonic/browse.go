package subsonic

import (
	"net/url"
	"strconv"
)

// Playlists lists every playlist on the server.
func (c *Client) Playlists() ([]Entity, error) {
	doc, err := c.query("getPlaylists.view", nil)
	if err != nil {
		return nil, err
	}

	var playlists []Entity
	if list := doc.find("playlists"); list != nil {
		for _, el := range list.childrenNamed("playlist") {
			playlists = append(playlists, normalizeGeneric(el.attrMap(), KindPlaylist))
		}
	}
	return playlists, nil
}

// AlbumList returns albums of a server-defined list type. An empty type asks
// for a random selection.
func (c *Client) AlbumList(listType string) ([]Entity, error) {
	if listType == "" {
		listType = "random"
	}
	doc, err := c.query("getAlbumList2.view", map[string]string{"type": listType})
	if err != nil {
		return nil, err
	}

	var albums []Entity
	if list := doc.find("albumList2"); list != nil {
		for _, el := range list.childrenNamed("album") {
			albums = append(albums, normalizeGeneric(el.attrMap(), KindAlbum))
		}
	}
	return albums, nil
}

// RandomSongs requests count random songs. The count arrives from the CLI
// surface untyped: empty means the configured default, anything that is not
// an integer is an ArgumentError.
func (c *Client) RandomSongs(count string) ([]Entity, error) {
	size := c.randomSongCount
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, &ArgumentError{Reason: "not a valid song count: " + count}
		}
		size = n
	}

	doc, err := c.query("getRandomSongs.view", map[string]string{"size": strconv.Itoa(size)})
	if err != nil {
		return nil, err
	}

	if list := doc.find("randomSongs"); list != nil {
		return c.normalizeSongs(list.childrenNamed("song"))
	}
	return nil, nil
}

// SongInfo looks up a single song's raw metadata. The entity is tagged but
// not stream-decorated. Returns nil when the response carries no song.
func (c *Client) SongInfo(id string) (*Entity, error) {
	doc, err := c.query("getSong.view", map[string]string{"id": id})
	if err != nil {
		return nil, err
	}

	song := doc.find("song")
	if song == nil {
		return nil, nil
	}
	entity := normalizeGeneric(song.attrMap(), KindSong)
	return &entity, nil
}

// AlbumArtURL derives a credential-embedded cover-art URL from a previously
// built stream URL, reusing its id parameter. Size is optional; empty omits
// it and lets the server pick.
func (c *Client) AlbumArtURL(streamURL, size string) (string, error) {
	if streamURL == "" {
		return "", &ArgumentError{Reason: "empty stream URL"}
	}
	u, err := url.Parse(streamURL)
	if err != nil {
		return "", &ArgumentError{Reason: "malformed stream URL: " + streamURL}
	}

	params := map[string]string{"id": u.Query().Get("id")}
	if size != "" {
		params["size"] = size
	}
	return c.embedCredentials(c.buildURL("getCoverArt.view", params)), nil
}

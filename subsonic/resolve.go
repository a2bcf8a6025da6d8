package subsonic

// AlbumSongs returns the songs of one album, in the order the server lists
// them.
func (c *Client) AlbumSongs(id string) ([]Entity, error) {
	doc, err := c.query("getAlbum.view", map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	album := doc.find("album")
	if album == nil {
		return nil, nil
	}
	return c.normalizeSongs(album.childrenNamed("song"))
}

// ArtistSongs returns every song of every album of an artist, album order
// preserved. This issues one getAlbum request per album.
func (c *Client) ArtistSongs(id string) ([]Entity, error) {
	doc, err := c.query("getArtist.view", map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	artist := doc.find("artist")
	if artist == nil {
		return nil, nil
	}

	var songs []Entity
	for _, album := range artist.childrenNamed("album") {
		albumSongs, err := c.AlbumSongs(album.attr("id"))
		if err != nil {
			return nil, err
		}
		songs = append(songs, albumSongs...)
	}
	return songs, nil
}

// PlaylistSongs returns the entries of a playlist as song entities.
func (c *Client) PlaylistSongs(id string) ([]Entity, error) {
	doc, err := c.query("getPlaylist.view", map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	playlist := doc.find("playlist")
	if playlist == nil {
		return nil, nil
	}
	return c.normalizeSongs(playlist.childrenNamed("entry"))
}

// ExpandToSongs flattens a mixed list of entities into songs. Songs pass
// through unchanged; albums, artists and playlists are replaced in place by
// their resolved songs. Any other kind is an UnsupportedError.
func (c *Client) ExpandToSongs(entities []Entity) ([]Entity, error) {
	var songs []Entity
	for _, entity := range entities {
		var (
			expanded []Entity
			err      error
		)
		switch entity.Kind {
		case KindSong:
			songs = append(songs, entity)
			continue
		case KindAlbum:
			expanded, err = c.AlbumSongs(entity.ID())
		case KindArtist:
			expanded, err = c.ArtistSongs(entity.ID())
		case KindPlaylist:
			expanded, err = c.PlaylistSongs(entity.ID())
		default:
			return nil, &UnsupportedError{Kind: string(entity.Kind)}
		}
		if err != nil {
			return nil, err
		}
		songs = append(songs, expanded...)
	}
	return songs, nil
}

func (c *Client) normalizeSongs(elements []*element) ([]Entity, error) {
	var songs []Entity
	for _, el := range elements {
		song, err := c.normalizeSong(el.attrMap())
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

package subsonic

import (
	"strconv"
	"strings"
)

// Search queries the server for one category, or all of them with
// CategoryAny. Song results are stream-decorated and get a name field copied
// from their title so all categories present the same way.
//
// Playlists are special: the server cannot search them, so the playlist
// category lists every playlist and filters by case-insensitive substring
// match on the name. That is linear in the total playlist count.
func (c *Client) Search(term string, category Kind) ([]Entity, error) {
	switch category {
	case KindSong, KindAlbum, KindArtist:
		return c.searchServer(term, category)
	case KindPlaylist:
		return c.searchPlaylists(term)
	case CategoryAny:
		return c.searchAll(term)
	default:
		return nil, &UnsupportedError{Kind: string(category)}
	}
}

// searchServer issues one search3 call with only the wanted category's
// result limit raised above zero.
func (c *Client) searchServer(term string, category Kind) ([]Entity, error) {
	counts := map[Kind]int{category: c.maxSearchResults}
	result, err := c.search3(term, counts)
	if err != nil {
		return nil, err
	}
	return result[category], nil
}

// searchAll searches the three server-side categories at once and appends
// the client-side playlist matches. Order is fixed: artists, albums, songs,
// playlists.
func (c *Client) searchAll(term string) ([]Entity, error) {
	counts := map[Kind]int{
		KindSong:   c.maxSearchResults,
		KindAlbum:  c.maxSearchResults,
		KindArtist: c.maxSearchResults,
	}
	result, err := c.search3(term, counts)
	if err != nil {
		return nil, err
	}

	var merged []Entity
	merged = append(merged, result[KindArtist]...)
	merged = append(merged, result[KindAlbum]...)
	merged = append(merged, result[KindSong]...)

	playlists, err := c.searchPlaylists(term)
	if err != nil {
		return nil, err
	}
	return append(merged, playlists...), nil
}

func (c *Client) search3(term string, counts map[Kind]int) (map[Kind][]Entity, error) {
	doc, err := c.query("search3.view", map[string]string{
		"query":       term,
		"songCount":   strconv.Itoa(counts[KindSong]),
		"albumCount":  strconv.Itoa(counts[KindAlbum]),
		"artistCount": strconv.Itoa(counts[KindArtist]),
	})
	if err != nil {
		return nil, err
	}

	result := map[Kind][]Entity{}
	matches := doc.find("searchResult3")
	if matches == nil {
		return result, nil
	}

	for _, el := range matches.childrenNamed("artist") {
		result[KindArtist] = append(result[KindArtist], normalizeGeneric(el.attrMap(), KindArtist))
	}
	for _, el := range matches.childrenNamed("album") {
		result[KindAlbum] = append(result[KindAlbum], normalizeGeneric(el.attrMap(), KindAlbum))
	}
	for _, el := range matches.childrenNamed("song") {
		song, err := c.normalizeSong(el.attrMap())
		if err != nil {
			return nil, err
		}
		song.Fields["name"] = song.Fields["title"]
		result[KindSong] = append(result[KindSong], song)
	}
	return result, nil
}

func (c *Client) searchPlaylists(term string) ([]Entity, error) {
	playlists, err := c.Playlists()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var matches []Entity
	for _, playlist := range playlists {
		if strings.Contains(strings.ToLower(playlist.Get("name")), needle) {
			matches = append(matches, playlist)
		}
	}
	return matches, nil
}

package subsonic

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

// libraryHandler fakes a tiny server: one artist with two albums, one
// playlist. Songs are returned in a fixed order per album.
func libraryHandler(t *testing.T, requests *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endpoint := strings.TrimPrefix(r.URL.Path, "/rest/")
		if requests != nil {
			*requests = append(*requests, endpoint)
		}
		id := r.URL.Query().Get("id")

		w.Header().Set("Content-Type", "application/xml")
		switch {
		case endpoint == "getArtist.view":
			fmt.Fprint(w, `<subsonic-response status="ok">
				<artist id="ar-1" name="The Testers" albumCount="2">
					<album id="al-1" name="First"/>
					<album id="al-2" name="Second"/>
				</artist>
			</subsonic-response>`)
		case endpoint == "getAlbum.view" && id == "al-1":
			fmt.Fprint(w, `<subsonic-response status="ok">
				<album id="al-1" name="First">
					<song id="s-1" title="One" artist="The Testers"/>
					<song id="s-2" title="Two" artist="The Testers"/>
				</album>
			</subsonic-response>`)
		case endpoint == "getAlbum.view" && id == "al-2":
			fmt.Fprint(w, `<subsonic-response status="ok">
				<album id="al-2" name="Second">
					<song id="s-3" title="Three" artist="The Testers"/>
				</album>
			</subsonic-response>`)
		case endpoint == "getPlaylist.view":
			fmt.Fprint(w, `<subsonic-response status="ok">
				<playlist id="pl-1" name="Mix" owner="alice">
					<entry id="s-9" title="Nine"/>
					<entry id="s-8" title="Eight"/>
				</playlist>
			</subsonic-response>`)
		default:
			fmt.Fprint(w, `<subsonic-response status="failed"><error code="70" message="not found"/></subsonic-response>`)
		}
	}
}

func songIDs(songs []Entity) []string {
	ids := make([]string, len(songs))
	for i, s := range songs {
		ids[i] = s.ID()
	}
	return ids
}

func assertIDs(t *testing.T, songs []Entity, want ...string) {
	t.Helper()
	got := songIDs(songs)
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func assertAllTagged(t *testing.T, entities []Entity) {
	t.Helper()
	for _, e := range entities {
		switch e.Kind {
		case KindSong, KindAlbum, KindArtist, KindPlaylist:
		default:
			t.Errorf("entity %s carries invalid kind %q", e.ID(), e.Kind)
		}
	}
}

func TestAlbumSongs(t *testing.T) {
	client := newTestClient(t, libraryHandler(t, nil))

	songs, err := client.AlbumSongs("al-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertIDs(t, songs, "s-1", "s-2")
	assertAllTagged(t, songs)

	for _, song := range songs {
		if song.Kind != KindSong {
			t.Errorf("expected song kind, got %q", song.Kind)
		}
		if !strings.Contains(song.StreamURL(), "id="+song.ID()) {
			t.Errorf("stream URL %q does not carry id %s", song.StreamURL(), song.ID())
		}
	}
}

func TestArtistSongs(t *testing.T) {
	var requests []string
	client := newTestClient(t, libraryHandler(t, &requests))

	songs, err := client.ArtistSongs("ar-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// concatenation of the albums in server order
	assertIDs(t, songs, "s-1", "s-2", "s-3")

	// one artist lookup plus one request per album
	want := []string{"getArtist.view", "getAlbum.view", "getAlbum.view"}
	if len(requests) != len(want) {
		t.Fatalf("expected requests %v, got %v", want, requests)
	}
	for i := range want {
		if requests[i] != want[i] {
			t.Fatalf("expected requests %v, got %v", want, requests)
		}
	}
}

func TestPlaylistSongs(t *testing.T) {
	client := newTestClient(t, libraryHandler(t, nil))

	songs, err := client.PlaylistSongs("pl-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertIDs(t, songs, "s-9", "s-8")
	for _, song := range songs {
		if song.Kind != KindSong {
			t.Errorf("playlist entries must come back as songs, got %q", song.Kind)
		}
		if song.StreamURL() == "" {
			t.Errorf("playlist entry %s missing stream URL", song.ID())
		}
	}
}

func TestExpandToSongs(t *testing.T) {
	t.Run("splices expansions in place", func(t *testing.T) {
		client := newTestClient(t, libraryHandler(t, nil))

		passthrough, err := client.normalizeSong(map[string]string{"id": "s-0", "title": "Zero"})
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}

		songs, err := client.ExpandToSongs([]Entity{
			passthrough,
			{Kind: KindAlbum, Fields: map[string]string{"id": "al-2"}},
			{Kind: KindPlaylist, Fields: map[string]string{"id": "pl-1"}},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		assertIDs(t, songs, "s-0", "s-3", "s-9", "s-8")
		assertAllTagged(t, songs)
	})

	t.Run("album alone matches AlbumSongs", func(t *testing.T) {
		client := newTestClient(t, libraryHandler(t, nil))

		direct, err := client.AlbumSongs("al-1")
		if err != nil {
			t.Fatalf("album songs: %v", err)
		}
		expanded, err := client.ExpandToSongs([]Entity{{Kind: KindAlbum, Fields: map[string]string{"id": "al-1"}}})
		if err != nil {
			t.Fatalf("expand: %v", err)
		}
		assertIDs(t, expanded, songIDs(direct)...)
	})

	t.Run("artist expands through albums", func(t *testing.T) {
		client := newTestClient(t, libraryHandler(t, nil))

		songs, err := client.ExpandToSongs([]Entity{{Kind: KindArtist, Fields: map[string]string{"id": "ar-1"}}})
		if err != nil {
			t.Fatalf("expand: %v", err)
		}
		assertIDs(t, songs, "s-1", "s-2", "s-3")
	})

	t.Run("unknown kind", func(t *testing.T) {
		client := newTestClient(t, libraryHandler(t, nil))

		_, err := client.ExpandToSongs([]Entity{{Kind: "podcast", Fields: map[string]string{"id": "x"}}})
		var unsupported *UnsupportedError
		if !errors.As(err, &unsupported) {
			t.Fatalf("expected *UnsupportedError, got %v", err)
		}
		if unsupported.Kind != "podcast" {
			t.Errorf("expected offending kind podcast, got %q", unsupported.Kind)
		}
	})
}

func TestNormalizeSongRequiresID(t *testing.T) {
	client := newTestClient(t, libraryHandler(t, nil))

	_, err := client.normalizeSong(map[string]string{"title": "No ID"})
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %v", err)
	}
}

package subsonic

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

// searchHandler serves search3 results and a playlist collection, recording
// which endpoints were hit.
func searchHandler(t *testing.T, requests *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endpoint := strings.TrimPrefix(r.URL.Path, "/rest/")
		if requests != nil {
			*requests = append(*requests, endpoint)
		}

		w.Header().Set("Content-Type", "application/xml")
		switch endpoint {
		case "search3.view":
			q := r.URL.Query()
			var parts []string
			if q.Get("artistCount") != "0" {
				parts = append(parts, `<artist id="ar-1" name="Matching Artist"/>`)
			}
			if q.Get("albumCount") != "0" {
				parts = append(parts, `<album id="al-1" name="Matching Album"/>`)
			}
			if q.Get("songCount") != "0" {
				parts = append(parts, `<song id="s-1" title="Matching Song"/>`)
			}
			fmt.Fprintf(w, `<subsonic-response status="ok"><searchResult3>%s</searchResult3></subsonic-response>`,
				strings.Join(parts, ""))
		case "getPlaylists.view":
			fmt.Fprint(w, `<subsonic-response status="ok">
				<playlists>
					<playlist id="pl-1" name="Morning Mix" owner="alice"/>
					<playlist id="pl-2" name="evening mix" owner="alice"/>
					<playlist id="pl-3" name="Workout" owner="bob"/>
				</playlists>
			</subsonic-response>`)
		default:
			fmt.Fprint(w, `<subsonic-response status="failed"><error code="0" message="unexpected endpoint"/></subsonic-response>`)
		}
	}
}

func TestSearchSingleCategory(t *testing.T) {
	for _, category := range []Kind{KindSong, KindAlbum, KindArtist} {
		t.Run(string(category), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				counts := map[Kind]string{
					KindSong:   q.Get("songCount"),
					KindAlbum:  q.Get("albumCount"),
					KindArtist: q.Get("artistCount"),
				}
				for kind, count := range counts {
					want := "0"
					if kind == category {
						want = "20"
					}
					if count != want {
						t.Errorf("%s count: expected %s, got %s", kind, want, count)
					}
				}
				searchHandler(t, nil)(w, r)
			})

			results, err := client.Search("matching", category)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 1 {
				t.Fatalf("expected one result, got %d", len(results))
			}
			if results[0].Kind != category {
				t.Errorf("expected kind %q, got %q", category, results[0].Kind)
			}
		})
	}
}

func TestSearchSongDecoration(t *testing.T) {
	client := newTestClient(t, searchHandler(t, nil))

	results, err := client.Search("matching", KindSong)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	song := results[0]
	if song.Get("name") != song.Get("title") {
		t.Errorf("song name %q must be copied from title %q", song.Get("name"), song.Get("title"))
	}
	if !strings.Contains(song.StreamURL(), "id=s-1") {
		t.Errorf("song must be stream-decorated, got %q", song.StreamURL())
	}
}

func TestSearchPlaylists(t *testing.T) {
	var requests []string
	client := newTestClient(t, searchHandler(t, &requests))

	results, err := client.Search("MIX", KindPlaylist)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// case-insensitive substring match, never the search endpoint
	for _, endpoint := range requests {
		if endpoint == "search3.view" {
			t.Fatal("playlist search must not hit search3.view")
		}
	}
	assertIDs(t, results, "pl-1", "pl-2")
	for _, p := range results {
		if p.Kind != KindPlaylist {
			t.Errorf("expected playlist kind, got %q", p.Kind)
		}
	}
}

func TestSearchAny(t *testing.T) {
	var requests []string
	client := newTestClient(t, searchHandler(t, &requests))

	results, err := client.Search("m", CategoryAny)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// artists, albums, songs, then client-side playlist matches
	var kinds []Kind
	for _, e := range results {
		kinds = append(kinds, e.Kind)
	}
	want := []Kind{KindArtist, KindAlbum, KindSong, KindPlaylist, KindPlaylist}
	if len(kinds) != len(want) {
		t.Fatalf("expected kinds %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected kinds %v, got %v", want, kinds)
		}
	}

	// one search3 round trip plus the playlist listing
	searchCalls := 0
	for _, endpoint := range requests {
		if endpoint == "search3.view" {
			searchCalls++
		}
	}
	if searchCalls != 1 {
		t.Errorf("expected exactly one search3.view call, got %d", searchCalls)
	}
}

func TestSearchUnknownCategory(t *testing.T) {
	client := newTestClient(t, searchHandler(t, nil))

	_, err := client.Search("m", Kind("genre"))
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedError, got %v", err)
	}
}

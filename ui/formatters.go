package ui

import (
	"fmt"
	"strconv"

	"github.com/subtone/subtone/subsonic"
)

// FormatDuration converts seconds to MM:SS format
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// EntityDuration reads an entity's duration attribute, 0 when absent.
func EntityDuration(e subsonic.Entity) int {
	n, err := strconv.Atoi(e.Get("duration"))
	if err != nil {
		return 0
	}
	return n
}

// FormatEntityInfo creates the status pane text for the selected entity.
func FormatEntityInfo(e subsonic.Entity, status, cover string) string {
	detail := ""
	switch e.Kind {
	case subsonic.KindSong:
		detail = fmt.Sprintf("[gray]Artist: [white]%s\n[gray]Album:  [white]%s", e.Get("artist"), e.Get("album"))
	case subsonic.KindAlbum:
		detail = fmt.Sprintf("[gray]Artist: [white]%s\n[gray]Songs:  [white]%s", e.Get("artist"), e.Get("songCount"))
	case subsonic.KindArtist:
		detail = fmt.Sprintf("[gray]Albums: [white]%s", e.Get("albumCount"))
	case subsonic.KindPlaylist:
		detail = fmt.Sprintf("[gray]Owner:  [white]%s\n[gray]Songs:  [white]%s", e.Get("owner"), e.Get("songCount"))
	}

	return fmt.Sprintf(`
%s

[yellow]%s [darkgray](%s)
%s

%s`, cover, e.Name(), e.Kind, detail, status)
}

// FormatNowPlaying creates the status line for the current queue position.
func FormatNowPlaying(title, artist string, index, total int, progressBar string) string {
	return fmt.Sprintf(`
[white]Now playing %d/%d:
[yellow]%s
[gray]%s

%s

[darkgray] SPACE (pause) | n (next)
[darkgray] / (search) | Q (queue) | ? (help)`,
		index+1, total, title, artist, progressBar)
}

// CreateProgressBar creates a visual progress bar
func CreateProgressBar(progress float64, width int) string {
	filledWidth := int(progress * float64(width))
	var bar string

	for i := 0; i < width; i++ {
		if i < filledWidth {
			bar += "[lightgreen]▓"
		} else {
			bar += "[darkgray]░"
		}
	}
	return bar + fmt.Sprintf("[white] %.1f%%", progress*100)
}

// CreateWelcomeMessage creates the welcome screen message
func CreateWelcomeMessage(total int) string {
	return fmt.Sprintf(`
[lightgreen] subtone
[darkgray] a Subsonic terminal client

[gray]  ENTER (play) | SPACE (pause)
[gray]  / (search) | TAB (category)
[gray]  Q (queue) | ? (help)
[gray]  gg (top) | G (bottom)
[gray]  ESC to exit

[darkgray]// %d songs loaded`, total)
}

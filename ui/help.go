package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// HelpView represents the keyboard shortcuts help interface
type HelpView struct {
	app       *App
	container *tview.Flex
	textView  *tview.TextView
	isActive  bool
}

// NewHelpView creates a new help view
func NewHelpView(app *App) *HelpView {
	hv := &HelpView{
		app: app,
	}

	hv.textView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)

	helpText := `[yellow::b]Keyboard Shortcuts[-:-:-]

[lightgreen]Playback:[-]
  [white]Enter[-]       Play selected entry (albums, artists and
              playlists expand to their songs)
  [white]Space[-]       Play/Pause
  [white]n[-]           Next song
  [white]r[-]           Reload random songs

[lightgreen]Navigation:[-]
  [white]↑ / ↓[-]       Move selection
  [white]gg / G[-]      Jump to top / bottom

[lightgreen]Views:[-]
  [white]/[-]           Search (TAB cycles any/song/album/artist/playlist)
  [white]Q[-]           Playback queue
  [white]?[-]           This help
  [white]ESC[-]         Close view / quit`

	hv.textView.SetText(helpText)

	hv.container = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(hv.textView, 0, 1, true)

	hv.container.SetBorder(true).
		SetTitle(" Help (ESC/q to close) ").
		SetBorderColor(tcell.ColorYellow)

	hv.container.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' || event.Rune() == '?' {
			hv.Close()
			return nil
		}
		return event
	})

	return hv
}

// Show displays the help view
func (hv *HelpView) Show() {
	hv.isActive = true
	hv.app.tviewApp.SetFocus(hv.textView)
}

// Close hides the help view
func (hv *HelpView) Close() {
	hv.isActive = false
	hv.app.closeOverlay()
}

// IsActive returns whether the help view is active
func (hv *HelpView) IsActive() bool {
	return hv.isActive
}

// GetContainer returns the help view container
func (hv *HelpView) GetContainer() *tview.Flex {
	return hv.container
}

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/subtone/subtone/subsonic"
)

// searchCategories is the TAB cycle order of the category selector.
var searchCategories = []subsonic.Kind{
	subsonic.CategoryAny,
	subsonic.KindSong,
	subsonic.KindAlbum,
	subsonic.KindArtist,
	subsonic.KindPlaylist,
}

// SearchView represents the search interface
type SearchView struct {
	app         *App
	container   *tview.Flex
	inputField  *tview.InputField
	resultTable *tview.Table
	results     []subsonic.Entity
	category    int
	isActive    bool
}

// NewSearchView creates a new search view
func NewSearchView(app *App) *SearchView {
	sv := &SearchView{
		app:     app,
		results: make([]subsonic.Entity, 0),
	}

	sv.inputField = tview.NewInputField().
		SetLabel(sv.label()).
		SetFieldWidth(0).
		SetFieldBackgroundColor(tcell.ColorDefault)

	sv.inputField.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			sv.performSearch()
		case tcell.KeyEscape:
			sv.Close()
		case tcell.KeyTab:
			sv.cycleCategory()
		}
	})

	sv.resultTable = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	sv.resultTable.SetSelectedFunc(func(row, column int) {
		if row > 0 && row-1 < len(sv.results) {
			sv.playResult(sv.results[row-1])
			sv.Close()
		}
	})

	sv.resultTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			sv.Close()
			return nil
		}
		if event.Rune() == '/' {
			sv.app.tviewApp.SetFocus(sv.inputField)
			return nil
		}
		return event
	})

	sv.container = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(sv.inputField, 1, 0, true).
		AddItem(sv.resultTable, 0, 1, false)

	sv.container.SetBorder(true).
		SetTitle(" Search [ENTER: Play | TAB: Category | ESC: Close] ").
		SetBorderColor(tcell.ColorGreen)

	return sv
}

func (sv *SearchView) label() string {
	return fmt.Sprintf("Search (%s): ", searchCategories[sv.category])
}

func (sv *SearchView) cycleCategory() {
	sv.category = (sv.category + 1) % len(searchCategories)
	sv.inputField.SetLabel(sv.label())
}

// Show displays the search view
func (sv *SearchView) Show() {
	sv.isActive = true
	sv.app.tviewApp.SetRoot(sv.container, true)
	sv.app.tviewApp.SetFocus(sv.inputField)
}

// Close hides the search view
func (sv *SearchView) Close() {
	sv.isActive = false
	sv.app.closeOverlay()
}

// IsActive returns whether the search view is active
func (sv *SearchView) IsActive() bool {
	return sv.isActive
}

func (sv *SearchView) performSearch() {
	term := sv.inputField.GetText()
	if term == "" {
		return
	}
	category := searchCategories[sv.category]

	go func() {
		results, err := sv.app.library.Search(term, category)
		sv.app.tviewApp.QueueUpdateDraw(func() {
			if err != nil {
				sv.app.statusBar.SetText("[red]Search failed: " + err.Error())
				return
			}
			sv.results = results
			sv.renderResults()
			if len(results) > 0 {
				sv.app.tviewApp.SetFocus(sv.resultTable)
			}
		})
	}()
}

func (sv *SearchView) renderResults() {
	sv.resultTable.Clear()

	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Attributes(tcell.AttrBold)
	for col, title := range []string{"#", "Name", "Artist", "Kind"} {
		sv.resultTable.SetCell(0, col, tview.NewTableCell(title).SetStyle(headerStyle))
	}

	rowStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, e := range sv.results {
		row := i + 1
		sv.resultTable.SetCell(row, 0,
			tview.NewTableCell(fmt.Sprintf("%d", row)).
				SetStyle(rowStyle.Foreground(tcell.ColorLightGreen)).
				SetAlign(tview.AlignRight))
		sv.resultTable.SetCell(row, 1,
			tview.NewTableCell(e.Name()).
				SetStyle(rowStyle).
				SetExpansion(2))
		sv.resultTable.SetCell(row, 2,
			tview.NewTableCell(e.Get("artist")).
				SetStyle(rowStyle.Foreground(tcell.ColorGray)))
		sv.resultTable.SetCell(row, 3,
			tview.NewTableCell(string(e.Kind)).
				SetStyle(rowStyle.Foreground(tcell.ColorDarkCyan)))
	}

	if len(sv.results) > 0 {
		sv.resultTable.Select(1, 0)
	}
}

// playResult hands the picked entity to the main view for expansion.
// Runs on the UI goroutine (table callback), so no queued draw here.
func (sv *SearchView) playResult(entity subsonic.Entity) {
	sv.app.setEntities([]subsonic.Entity{entity})
	sv.app.playEntityAt(0)
}

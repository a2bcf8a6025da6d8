package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/wildeyedskies/go-mpv/mpv"

	"github.com/subtone/subtone/config"
	"github.com/subtone/subtone/coverart"
	"github.com/subtone/subtone/domain"
	"github.com/subtone/subtone/library"
	"github.com/subtone/subtone/player"
	"github.com/subtone/subtone/subsonic"
)

// App represents the TUI application
type App struct {
	tviewApp *tview.Application
	cfg      *config.Config
	library  library.Library
	player   player.Player
	ctx      context.Context
	state    *domain.PlayerState

	entities []subsonic.Entity

	rootFlex       *tview.Flex
	entityTable    *tview.Table
	statusBar      *tview.TextView
	progressBar    *tview.TextView
	searchView     *SearchView
	helpView       *HelpView
	queueView      *QueueView
	coverConverter *coverart.Converter
	keymap         *KeyBindingManager
}

// NewApp creates a new TUI application with dependency injection
func NewApp(ctx context.Context, cfg *config.Config, lib library.Library, plr player.Player) *App {
	return &App{
		tviewApp:       tview.NewApplication(),
		cfg:            cfg,
		library:        lib,
		player:         plr,
		ctx:            ctx,
		state:          domain.NewPlayerState(),
		coverConverter: coverart.NewConverter(),
		keymap:         NewKeyBindingManager(),
	}
}

// Run starts the application
func (a *App) Run() error {
	a.createLayout()
	a.setupKeybindings()
	go a.loadMusic()
	go a.updateProgressBar()
	go a.handlePlayerEvents()

	log.Println("starting subtone...")
	return a.tviewApp.Run()
}

// Stop stops the application
func (a *App) Stop() {
	if a.tviewApp != nil {
		a.tviewApp.Stop()
	}
}

func (a *App) createLayout() {
	a.entityTable = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	a.entityTable.SetSelectedFunc(func(row, column int) {
		a.playEntityAt(row - 1)
	})
	a.entityTable.SetSelectionChangedFunc(func(row, column int) {
		_, _, playing, _ := a.state.GetState()
		if playing || row < 1 || row-1 >= len(a.entities) {
			return
		}
		a.statusBar.SetText(FormatEntityInfo(a.entities[row-1], "", ""))
	})

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	a.progressBar = tview.NewTextView().
		SetDynamicColors(true)

	sidebar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.statusBar, 0, 1, false).
		AddItem(a.progressBar, 2, 0, false)

	a.rootFlex = tview.NewFlex().
		AddItem(a.entityTable, 0, 2, true).
		AddItem(sidebar, 0, 1, false)

	a.searchView = NewSearchView(a)
	a.helpView = NewHelpView(a)
	a.queueView = NewQueueView(a)

	a.statusBar.SetText(CreateWelcomeMessage(0))
	a.tviewApp.SetRoot(a.rootFlex, true)
	a.tviewApp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if a.searchView.IsActive() || a.helpView.IsActive() || a.queueView.IsActive() {
			return event
		}
		if a.keymap.HandleKey(event) {
			return nil
		}
		return event
	})
}

func (a *App) setupKeybindings() {
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "quit", handler: a.Stop},
		[]tcell.Key{tcell.KeyEscape},
		[]rune{},
	)
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "pause", handler: a.togglePause},
		[]tcell.Key{},
		[]rune{' '},
	)
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "next", handler: func() { go a.playNext() }},
		[]tcell.Key{},
		[]rune{'n'},
	)
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "search", handler: a.searchView.Show},
		[]tcell.Key{},
		[]rune{'/'},
	)
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "queue", handler: a.showQueue},
		[]tcell.Key{},
		[]rune{'Q'},
	)
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "help", handler: a.showHelp},
		[]tcell.Key{},
		[]rune{'?'},
	)
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "reload", handler: func() { go a.loadMusic() }},
		[]tcell.Key{},
		[]rune{'r'},
	)
	a.keymap.RegisterKeyBinding(
		KeyAction{name: "goEnd", handler: func() {
			a.entityTable.Select(a.entityTable.GetRowCount()-1, 0)
		}},
		[]tcell.Key{},
		[]rune{'G'},
	)
	a.keymap.RegisterSequence("gg", KeyAction{name: "goStart", handler: func() {
		a.entityTable.Select(1, 0)
	}})
}

// loadMusic fills the table with a fresh batch of random songs.
func (a *App) loadMusic() {
	songs, err := a.library.RandomSongs("")
	if err != nil {
		a.tviewApp.QueueUpdateDraw(func() {
			a.statusBar.SetText("[red]Failed to load music: " + err.Error())
		})
		return
	}

	a.tviewApp.QueueUpdateDraw(func() {
		a.setEntities(songs)
		a.statusBar.SetText(CreateWelcomeMessage(len(songs)))
	})
}

// setEntities replaces the table contents. Must run on the UI goroutine.
func (a *App) setEntities(entities []subsonic.Entity) {
	a.entities = entities
	a.entityTable.Clear()

	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Attributes(tcell.AttrBold)
	for col, title := range []string{"#", "Name", "Artist", "Kind", "Duration"} {
		a.entityTable.SetCell(0, col, tview.NewTableCell(title).SetStyle(headerStyle))
	}

	rowStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, e := range entities {
		row := i + 1
		a.entityTable.SetCell(row, 0,
			tview.NewTableCell(fmt.Sprintf("%d", row)).
				SetStyle(rowStyle.Foreground(tcell.ColorLightGreen)).
				SetAlign(tview.AlignRight))
		a.entityTable.SetCell(row, 1,
			tview.NewTableCell(e.Name()).
				SetStyle(rowStyle).
				SetExpansion(2))
		a.entityTable.SetCell(row, 2,
			tview.NewTableCell(e.Get("artist")).
				SetStyle(rowStyle.Foreground(tcell.ColorGray)).
				SetMaxWidth(20))
		a.entityTable.SetCell(row, 3,
			tview.NewTableCell(string(e.Kind)).
				SetStyle(rowStyle.Foreground(tcell.ColorDarkCyan)))
		a.entityTable.SetCell(row, 4,
			tview.NewTableCell(FormatDuration(EntityDuration(e))).
				SetStyle(rowStyle.Foreground(tcell.ColorGray)).
				SetAlign(tview.AlignRight))
	}

	if len(entities) > 0 {
		a.entityTable.Select(1, 0)
	}
}

// playEntityAt expands the selected entity into songs and replaces the queue
// with them. Albums, artists and playlists become their full song list.
func (a *App) playEntityAt(index int) {
	if index < 0 || index >= len(a.entities) {
		return
	}
	entity := a.entities[index]
	a.state.SetLoading(true)

	go func() {
		defer a.state.SetLoading(false)

		songs, err := a.library.ExpandToSongs([]subsonic.Entity{entity})
		if err != nil || len(songs) == 0 {
			a.tviewApp.QueueUpdateDraw(func() {
				if err != nil {
					a.statusBar.SetText("[red]Failed to resolve songs: " + err.Error())
				} else {
					a.statusBar.SetText("[red]Nothing to play")
				}
			})
			return
		}

		a.player.ClearQueue()
		for _, item := range library.ToQueueItems(songs) {
			a.player.AddToQueue(item)
		}
		a.playQueueIndex(0)
		a.tviewApp.QueueUpdateDraw(func() {
			a.refreshCover(songs[0])
		})
	}()
}

// playQueueIndex starts playback at a queue position.
func (a *App) playQueueIndex(index int) {
	queue := a.player.GetQueue()
	if index < 0 || index >= len(queue) {
		return
	}
	item := queue[index]
	if err := a.player.Play(item.URI); err != nil {
		log.Printf("play failed: %v", err)
		return
	}
	a.state.SetCurrent(&item, index)
	a.state.SetPlaying(true)
	a.tviewApp.QueueUpdateDraw(func() {
		a.statusBar.SetText(FormatNowPlaying(item.Title, item.Artist, index, len(queue), ""))
	})
}

func (a *App) playNext() {
	_, index, _, _ := a.state.GetState()
	a.playQueueIndex(index + 1)
}

func (a *App) togglePause() {
	status, err := a.player.Pause()
	if err != nil {
		log.Printf("pause failed: %v", err)
		return
	}
	a.state.SetPlaying(status == player.PlayerPlaying)
}

func (a *App) refreshCover(song subsonic.Entity) {
	artURL, err := a.library.CoverArtURL(song.StreamURL(), "300")
	if err != nil {
		return
	}
	go func() {
		cover, _ := a.coverConverter.ConvertFromURL(artURL)
		item, index, _, _ := a.state.GetState()
		if item == nil {
			return
		}
		a.tviewApp.QueueUpdateDraw(func() {
			queue := a.player.GetQueue()
			a.statusBar.SetText(cover + "\n" + FormatNowPlaying(item.Title, item.Artist, index, len(queue), ""))
		})
	}()
}

// handlePlayerEvents advances the queue when a track finishes.
func (a *App) handlePlayerEvents() {
	eventChan := a.player.EventChannel()
	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event != nil && event.Event_Id == mpv.EVENT_END_FILE {
				a.playNext()
			}
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) updateProgressBar() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _, playing, _ := a.state.GetState()
			if !playing {
				continue
			}
			pos, duration, err := a.player.GetProgress()
			if err != nil || duration <= 0 {
				continue
			}
			a.tviewApp.QueueUpdateDraw(func() {
				a.progressBar.SetText(fmt.Sprintf("%s %s/%s",
					CreateProgressBar(pos/duration, 20),
					FormatDuration(int(pos)),
					FormatDuration(int(duration))))
			})
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) showQueue() {
	a.tviewApp.SetRoot(a.queueView.GetContainer(), true)
	a.queueView.Show()
}

func (a *App) showHelp() {
	a.tviewApp.SetRoot(a.helpView.GetContainer(), true)
	a.helpView.Show()
}

// closeOverlay returns to the main layout from any overlay view.
func (a *App) closeOverlay() {
	a.tviewApp.SetRoot(a.rootFlex, true)
	a.tviewApp.SetFocus(a.entityTable)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/subtone/subtone/config"
	"github.com/subtone/subtone/library"
	"github.com/subtone/subtone/player"
	"github.com/subtone/subtone/subsonic"
	"github.com/subtone/subtone/ui"
)

var (
	searchTerm = flag.String("search", "", "print search results and exit")
	category   = flag.String("category", "any", "search category: song, album, artist, playlist or any")
	randomN    = flag.String("random", "", "print N random songs and exit")
	albumType  = flag.String("albums", "", "print an album list of the given type and exit")
	songID     = flag.String("song", "", "print one song's metadata and exit")
	debug      = flag.Bool("debug", false, "log requests and responses")
)

// debugLogger satisfies subsonic.Logger on top of the standard logger.
type debugLogger struct{}

func (debugLogger) Debugf(format string, args ...interface{}) {
	log.Printf("[debug] "+format, args...)
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client := subsonic.New(cfg)
	if *debug {
		client.SetLogger(debugLogger{})
	}

	switch {
	case *searchTerm != "":
		results, err := client.Search(*searchTerm, subsonic.Kind(*category))
		exitOn(err)
		printEntities(results)
	case *randomN != "":
		songs, err := client.RandomSongs(*randomN)
		exitOn(err)
		printEntities(songs)
	case *albumType != "":
		albums, err := client.AlbumList(*albumType)
		exitOn(err)
		printEntities(albums)
	case *songID != "":
		song, err := client.SongInfo(*songID)
		exitOn(err)
		if song == nil {
			fmt.Println("no such song")
			return
		}
		printEntities([]subsonic.Entity{*song})
	default:
		runTUI(cfg, client)
	}
}

func runTUI(cfg *config.Config, client *subsonic.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr, err := player.NewMPVPlayer(ctx)
	if err != nil {
		log.Fatalf("failed to start player: %v", err)
	}
	defer plr.Cleanup()

	app := ui.NewApp(ctx, cfg, library.NewSubsonicLibrary(client), plr)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		app.Stop()
	}()

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

func printEntities(entities []subsonic.Entity) {
	if len(entities) == 0 {
		fmt.Println("no results")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tNAME\tARTIST")
	for _, e := range entities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Kind, e.ID(), e.Name(), e.Get("artist"))
	}
	w.Flush()
}

func exitOn(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

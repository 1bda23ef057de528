package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/leonelquinteros/gotext"

	engineinput "westmarch/pkg/engine/input"
	"westmarch/pkg/engine/terminal"
	"westmarch/pkg/game/movement"
	"westmarch/pkg/game/scene"
)

// headlessTickMillis matches the default 60 TPS of the windowed loop.
const headlessTickMillis = 1000 / 60

// summaryFormat is printed when no catalogue translates SUMMARY.
const summaryFormat = "%s requests (%d walking, %d running, %d stopped)"

// localized returns the translation of key, or fallback when the catalogue
// is missing and gotext hands the key back.
func localized(key, fallback string) string {
	if s := gotext.Get(key); s != key {
		return s
	}
	return fallback
}

// runScript replays an input script against the scene and prints a summary.
func runScript(sc *scene.Scene, path string) error {
	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		src = f
	}

	if err := replay(sc, engineinput.NewScriptReader(src)); err != nil {
		return err
	}
	printSummary(os.Stdout, sc)
	return nil
}

// replay feeds every frame of p to the scene until it runs out or the scene
// asks to quit. A provider that can fail reports its error through Err.
func replay(sc *scene.Scene, p engineinput.Provider) error {
	for !sc.QuitRequested() {
		frame, ok := p.Next()
		if !ok {
			break
		}
		sc.Update(headlessTickMillis, frame)
	}
	if f, ok := p.(interface{ Err() error }); ok {
		return f.Err()
	}
	return nil
}

func printSummary(w io.Writer, sc *scene.Scene) {
	width := terminal.GetWidth()
	if width > 60 {
		width = 60
	}
	sess := sc.Session()
	fmt.Fprintln(w, strings.Repeat("-", width))
	fmt.Fprintf(w, localized("SUMMARY", summaryFormat)+"\n",
		humanize.Comma(int64(sess.Sent())),
		sess.SentOf(movement.Walking),
		sess.SentOf(movement.Running),
		sess.SentOf(movement.Stopped),
	)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "westmarch/pkg/engine/input"
	"westmarch/pkg/game/config"
	ebitenrenderer "westmarch/pkg/game/renderer/ebiten"
	"westmarch/pkg/game/scene"
	"westmarch/pkg/game/session"
	"westmarch/pkg/game/world"
)

// localPlayerID is the player the offline session focuses on start.
const localPlayerID = 1

func initGettext(cfg *config.Config) {
	gotext.Configure(localeDir(cfg.Locale.Dir), cfg.Locale.Language, "default")
}

// localeDir resolves a relative locale directory against the working
// directory first, then against the executable's directory.
func localeDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return dir
	}
	if candidate := filepath.Join(filepath.Dir(exe), dir); candidate != dir {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return dir
}

func main() {
	configPath := flag.String("config", "westmarch.yaml", "path to the client config file")
	scriptPath := flag.String("script", "", "replay an input script without a window (- reads stdin)")
	debug := flag.Bool("debug", false, "log run toggles and every movement request")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}
	if *debug {
		cfg.Logging.Debug = true
	}
	config.SetCurrent(cfg)

	initGettext(cfg)

	if err := engineinput.ApplyBindings(cfg.Input.Bindings); err != nil {
		log.Fatalf("Cannot apply key bindings: %v", err)
	}
	if cfg.Logging.Debug {
		logBindings()
	}

	m := world.NewMap()
	m.Spawn(localPlayerID, 0, 0)

	sess := session.NewManager(m)
	headless := *scriptPath != ""
	if headless || cfg.Session.Echo {
		sess.Attach(session.NewConsole(os.Stdout, session.UseColor(cfg.Session.Color, os.Stdout)))
	}

	sc := scene.New(sess, m, cfg.Input.RunByDefault)

	if headless {
		if err := runScript(sc, *scriptPath); err != nil {
			log.Fatalf("Script failed: %v", err)
		}
		return
	}

	r, err := ebitenrenderer.New(sc, cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		log.Fatalf("Cannot create renderer: %v", err)
	}
	if err := r.Run(); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}

	saveRunPreference(cfg, sc.Running())
}

// logBindings prints the active key bindings, one action per line.
func logBindings() {
	byAction := engineinput.GetBindingsByAction()
	for act := engineinput.ActionToggleRun; act <= engineinput.ActionQuit; act++ {
		log.Printf("Binding %s: %s", engineinput.ActionName(act), strings.Join(byAction[act], ", "))
	}
}

// saveRunPreference remembers the run toggle for the next start.
func saveRunPreference(cfg *config.Config, running bool) {
	if cfg.Input.RunByDefault == running {
		return
	}
	if err := cfg.SetRunByDefault(running); err != nil {
		// Not critical
		fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
	}
}

package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/toolgrid/container"
	"github.com/milk9111/toolgrid/layout"
	"github.com/milk9111/toolgrid/panels"
	"github.com/milk9111/toolgrid/tool"
)

func main() {
	layoutsDir := flag.String("layouts", "layouts", "directory holding saved layouts")
	presetsDir := flag.String("presets", "presets", "directory holding panel presets")
	layoutName := flag.String("layout", "", "layout to load at start (basename, .json optional)")
	edit := flag.Bool("edit", false, "start in edit mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("toolgrid")

	registry := tool.NewRegistry()
	store := layout.NewStore(*layoutsDir)
	presets := layout.NewPresetStore(*presetsDir)

	tools := container.New(registry, store, presets)
	tools.EditMode = *edit
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		tools.ClipboardReady = true
	}

	if err := os.MkdirAll(*layoutsDir, 0755); err != nil {
		log.Printf("layouts dir: %v", err)
	}
	var watcher *layout.Watcher
	if w, err := layout.NewWatcher(*layoutsDir); err != nil {
		log.Printf("layout watcher disabled: %v", err)
	} else {
		watcher = w
		defer watcher.Close()
	}

	game := NewGame(tools, watcher)

	if err := panels.RegisterBuiltins(registry, panels.Hooks{TableRows: game.sampleRows}); err != nil {
		log.Fatal(err)
	}

	if *layoutName != "" {
		if err := tools.LoadLayout(*layoutName); err != nil {
			log.Printf("failed to load layout %s: %v", *layoutName, err)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// Command tilery runs the tile-map editor.
//
// Usage:
//
//	tilery [config.yaml]
//
// Without an argument it looks for tilery.yaml in the working
// directory and falls back to the built-in defaults if it is absent.
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowbyte/tilery"
)

func main() {
	configPath := "tilery.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := tilery.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	editor, err := tilery.NewEditor(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}

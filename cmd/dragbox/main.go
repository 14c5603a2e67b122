package main

import (
	"flag"
	"log"

	"chosenoffset.com/dragbox/internal/config"
	ebitenrender "chosenoffset.com/dragbox/internal/render/ebiten"
	"chosenoffset.com/dragbox/internal/scene"
)

func main() {
	configPath := flag.String("config", "scene.yaml", "scene file to load (defaults are used if it does not exist)")
	scenesDir := flag.String("scenes", "scenes", "directory searched by -scene")
	sceneName := flag.String("scene", "", "scene name in -scenes (basename, extension optional)")
	watch := flag.Bool("watch", false, "reload the scene when its file changes")
	flag.Parse()

	path := *configPath
	if *sceneName != "" {
		scenes, err := config.ScanSceneDirectory(*scenesDir)
		if err != nil {
			log.Fatalf("Failed to scan scenes: %v", err)
		}
		entry, ok := config.FindScene(scenes, *sceneName)
		if !ok {
			log.Fatalf("Scene %q not found in %s (%d available)", *sceneName, *scenesDir, len(scenes))
		}
		path = entry.Path
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	s, err := scene.New(cfg, path, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	defer s.Close()

	if *watch {
		w, err := config.NewWatcher(path)
		if err != nil {
			log.Printf("Warning: cannot watch %s: %v", path, err)
		} else {
			s.Watch(w)
		}
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Printf("Starting with %d entities from %s", len(s.Entities()), path)
	if err := engine.RunGame(s); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"log"

	"chosenoffset.com/hunt67/internal/game"
	ebitenrender "chosenoffset.com/hunt67/internal/render/ebiten"
	"chosenoffset.com/hunt67/internal/simulation"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the game config file")
	startLevel := flag.Int("level", -1, "level index to start on, overriding the config")
	outline := flag.Bool("outline", false, "trace the visibility polygon outline")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *startLevel >= 0 {
		cfg.Rules.StartLevel = *startLevel
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(renderer, inputMgr, engine, cfg)
	g.ShowOutline = *outline

	// Set up the window
	engine.SetWindowSize(g.Level.Width, g.Level.Height)
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

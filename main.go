package main

import (
	"flag"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/logs"
	"gridsnake/stats"
	"gridsnake/ui"
)

func usage() {
	fmt.Println("usage: gridsnake [flags] <grows: 0|1> [board string]")
	fmt.Println()
	fmt.Println("  grows         1: the snake grows on each food eaten")
	fmt.Println("                0: the snake keeps a constant length")
	fmt.Println("  board string  optional run-length board, e.g. B4x6|W6|W1S1E3W1|W1E4W1|W6")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	speed := flag.Int("speed", 0, "tick interval in milliseconds (overrides config)")
	cfgPath := flag.String("config", "", "optional config file (yaml/toml/json)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		return
	}

	var growOnEat bool
	switch args[0] {
	case "1":
		growOnEat = true
	case "0":
		growOnEat = false
	default:
		fmt.Println("grows must be either 1 (grows) or 0 (does not grow)")
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if *speed > 0 {
		cfg.TickMillis = *speed
	}

	logs.Init("gridsnake", cfg.Log)
	defer logs.Sync()

	newGame := func() (*game.Game, error) {
		if len(args) >= 2 {
			return game.FromString(args[1], growOnEat)
		}
		return game.New(cfg.Board.Width, cfg.Board.Height, growOnEat)
	}

	g, err := newGame()
	if err != nil {
		fmt.Println("Error parsing board:", err)
		return
	}
	logs.Info("game started",
		zap.String("id", g.ID),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Bool("grow_on_eat", g.GrowOnEat),
	)

	rl.InitWindow(960, 640, "gridsnake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	session := stats.NewSession()

	interval := time.Duration(cfg.TickMillis) * time.Millisecond
	lastUpdate := time.Now()
	pending := game.DirNone
	recorded := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		switch {
		case rl.IsKeyPressed(rl.KeyUp):
			pending = game.DirUp
		case rl.IsKeyPressed(rl.KeyDown):
			pending = game.DirDown
		case rl.IsKeyPressed(rl.KeyLeft):
			pending = game.DirLeft
		case rl.IsKeyPressed(rl.KeyRight):
			pending = game.DirRight
		}

		if g.GameOver {
			if !recorded {
				session.Add(g)
				recorded = true
				logs.Info("game over",
					zap.String("id", g.ID),
					zap.Int("score", g.Score),
					zap.Int("steps", g.Steps),
				)
			}
			if rl.IsKeyPressed(rl.KeyR) {
				next, err := newGame()
				if err != nil {
					logs.Error("restart failed", zap.Error(err))
					break
				}
				g = next
				pending = game.DirNone
				recorded = false
				lastUpdate = time.Now()
				logs.Info("game restarted", zap.String("id", g.ID))
			}
		} else if time.Since(lastUpdate) >= interval {
			// One tick per interval, with or without fresh input.
			g.Update(pending)
			pending = game.DirNone
			lastUpdate = time.Now()
		}

		renderer.Draw(g, session)
	}

	fmt.Println("Game Over! Score:", g.Score)
}

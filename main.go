package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

func main() {
	flags := parseFlags()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(flags.configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Println("Invalid configuration:", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", flags.configPath)
		config = utils.DefaultConfig()
	}
	flags.apply(&config)
	if err = config.Validate(); err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}

	gm, err := initializeGame(config)
	if err != nil {
		fmt.Println("Failed to start:", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if config.Headless {
		runHeadless(gm, config, sigChan)
		return
	}
	runInteractive(gm, config, sigChan)
}

// runInteractive draws every generation until the game repeats, the
// generation limit is hit, or the process is interrupted.
func runInteractive(gm *model.Game, config utils.Config, sigChan <-chan os.Signal) {
	renderer := model.NewTerminalRenderer(os.Stdout, config.Colors)
	stats := utils.NewStats()
	displayGameInfo(config, gm)

	if err := renderer.Display(gm.Grid()); err != nil {
		fmt.Println(err)
		return
	}

	restarts := 0
	for {
		select {
		case <-sigChan:
			printFinalStats(gm.Snapshot(), stats)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		if err := gm.Tick(); err != nil && !errors.Is(err, model.ErrGameOver) {
			fmt.Println(err)
			return
		}
		tickTime := time.Since(frameStart)

		snapshot := gm.Snapshot()
		stats.Update(snapshot.Generation, snapshot.LivingCells, tickTime)

		if err := renderer.Update(gm); err != nil {
			fmt.Println(err)
			return
		}
		if err := renderer.Status(snapshot, statusDetails(stats, restarts)); err != nil {
			fmt.Println(err)
			return
		}

		if config.MaxGenerations > 0 && snapshot.Generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		if snapshot.State == model.Over && config.FreezeOnOver {
			if !config.AutoRestart {
				printFinalStats(snapshot, stats)
				return
			}
			restarts++
			next, err := restartGame(config, restarts)
			if err != nil {
				fmt.Println(err)
				return
			}
			gm = next
			if err = renderer.Display(gm.Grid()); err != nil {
				fmt.Println(err)
				return
			}
		}

		// Wait before next frame
		if elapsed := time.Since(frameStart); elapsed < config.FrameRate {
			time.Sleep(config.FrameRate - elapsed)
		}
	}
}

// runHeadless ticks as fast as possible with a progress bar instead of a board
func runHeadless(gm *model.Game, config utils.Config, sigChan <-chan os.Signal) {
	limit := config.MaxGenerations
	if limit == 0 {
		limit = utils.DefaultConfig().MaxGenerations
	}
	stats := utils.NewStats()
	bar := pb.StartNew(limit)

	for gen := 0; gen < limit; gen++ {
		select {
		case <-sigChan:
			bar.Finish()
			printFinalStats(gm.Snapshot(), stats)
			return
		default:
		}

		start := time.Now()
		if err := gm.Tick(); err != nil {
			if !errors.Is(err, model.ErrGameOver) {
				fmt.Println(err)
			}
			break
		}
		snapshot := gm.Snapshot()
		stats.Update(snapshot.Generation, snapshot.LivingCells, time.Since(start))
		bar.Increment()

		if snapshot.State == model.Over && config.FreezeOnOver {
			break
		}
	}

	bar.Finish()
	printFinalStats(gm.Snapshot(), stats)
}

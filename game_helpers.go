package main

import (
	"fmt"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

const defaultConfigPath = "config.json"

// cliFlags holds command line overrides; zero values leave the config alone
type cliFlags struct {
	configPath      string
	width           int
	height          int
	interval        time.Duration
	maxGenerations  int
	percentage      int
	historyCapacity int
	shape           string
	seed            uint64
	workers         int
	headless        bool
	keepRunning     bool
	autoRestart     bool
	noColor         bool
}

func parseFlags() cliFlags {
	f := cliFlags{configPath: defaultConfigPath}

	flaggy.SetName("go-gol")
	flaggy.SetDescription("Conway's Game of Life on a fixed grid; stops when a generation repeats")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&f.configPath, "c", "config", "Path to a JSON configuration file")
	flaggy.Int(&f.width, "x", "width", "Width of the grid")
	flaggy.Int(&f.height, "y", "height", "Height of the grid")
	flaggy.Duration(&f.interval, "i", "interval", "Minimum time between generations, for example 150ms")
	flaggy.Int(&f.maxGenerations, "s", "maxSteps", "Stop after this many generations")
	flaggy.Int(&f.percentage, "p", "percentage", "Chance in percent that a cell starts alive")
	flaggy.Int(&f.historyCapacity, "k", "history", "Number of past generations checked for repeats")
	flaggy.String(&f.shape, "t", "shape", "Seed a preset instead of random cells: "+fmt.Sprint(model.ShapeNames()))
	flaggy.UInt64(&f.seed, "r", "seed", "Random seed; 0 seeds from the clock")
	flaggy.Int(&f.workers, "w", "workers", "Goroutines per generation; 0 uses every CPU")
	flaggy.Bool(&f.headless, "H", "headless", "Run without drawing the grid")
	flaggy.Bool(&f.keepRunning, "K", "keepRunning", "Keep ticking after a repeat is found")
	flaggy.Bool(&f.autoRestart, "a", "autoRestart", "Start a new game when a repeat is found")
	flaggy.Bool(&f.noColor, "m", "monochrome", "Disable colored output")

	flaggy.Parse()
	return f
}

// apply copies every flag that was set onto config
func (f cliFlags) apply(config *utils.Config) {
	if f.width > 0 {
		config.Width = f.width
	}
	if f.height > 0 {
		config.Height = f.height
	}
	if f.interval > 0 {
		config.FrameRate = f.interval
	}
	if f.maxGenerations > 0 {
		config.MaxGenerations = f.maxGenerations
	}
	if f.percentage != 0 {
		config.RandomPercentage = f.percentage
	}
	if f.historyCapacity != 0 {
		config.HistoryCapacity = f.historyCapacity
	}
	if f.shape != "" {
		config.Shape = f.shape
	}
	if f.seed != 0 {
		config.Seed = f.seed
	}
	if f.workers > 0 {
		config.Workers = f.workers
	}
	if f.headless {
		config.Headless = true
	}
	if f.keepRunning {
		config.FreezeOnOver = false
	}
	if f.autoRestart {
		config.AutoRestart = true
	}
	if f.noColor {
		config.Colors = false
	}
}

// gameOptions translates the configuration into engine options
func gameOptions(config utils.Config) []model.Option {
	opts := []model.Option{
		model.WithHistoryCapacity(config.HistoryCapacity),
		model.WithWorkers(config.Workers),
		model.WithFreezeOnOver(config.FreezeOnOver),
	}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithGridPool(model.NewGridPool()))
	}
	return opts
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Game, error) {
	gm, err := model.NewGame(config.Width, config.Height, gameOptions(config)...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create game")
	}

	if config.Shape != "" {
		shape, err := model.ParseShape(config.Shape)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to pick shape")
		}
		if err = gm.SeedShape(shape); err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to seed shape")
		}
		return gm, nil
	}

	if err = gm.Randomize(config.RandomPercentage); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to randomize")
	}
	return gm, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, gm *model.Game) {
	snapshot := gm.Snapshot()
	total := gm.Width() * gm.Height()
	seed := "random"
	if config.Shape != "" {
		seed = config.Shape
	}
	fmt.Printf("Grid: %dx%d | Seed: %s | History: %d generations\n",
		gm.Width(), gm.Height(), seed, gm.HistoryCapacity())
	fmt.Printf("Initial population: %d of %d (%.2f%%)\n",
		snapshot.LivingCells, total, float64(snapshot.LivingCells)/float64(total)*100)
	fmt.Println("Press Ctrl+C to exit gracefully")
	time.Sleep(2 * time.Second)
}

// statusDetails renders the performance part of the status line
func statusDetails(stats *utils.Stats, restarts int) string {
	return fmt.Sprintf(" | Tick: %s | Avg Pop: %.1f | Restarts: %d",
		stats.LastTickTime.Round(time.Microsecond), stats.AveragePopulation, restarts)
}

// restartGame starts over with a fresh game built from the same configuration
func restartGame(config utils.Config, restarts int) (*model.Game, error) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	if config.Seed != 0 {
		// same seed would replay the same game
		config.Seed += uint64(restarts)
	}
	return initializeGame(config)
}

// printFinalStats summarizes the run on exit
func printFinalStats(snapshot model.Snapshot, stats *utils.Stats) {
	fmt.Println()
	if snapshot.State == model.Over {
		fmt.Printf("Repeat found at generation %d\n", snapshot.FinalGeneration)
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		snapshot.Generation, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
}

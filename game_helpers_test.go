package main

import (
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

func TestFlagsApply(t *testing.T) {
	config := utils.DefaultConfig()
	cliFlags{}.apply(&config)
	if config != utils.DefaultConfig() {
		t.Fatal("unset flags changed the config")
	}

	cliFlags{
		width:       40,
		interval:    time.Second,
		shape:       "glider",
		seed:        9,
		keepRunning: true,
		noColor:     true,
		headless:    true,
	}.apply(&config)
	if config.Width != 40 || config.Height != utils.DefaultConfig().Height {
		t.Fatalf("grid %dx%d", config.Width, config.Height)
	}
	if config.FrameRate != time.Second || config.Shape != "glider" || config.Seed != 9 {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.FreezeOnOver || config.Colors || !config.Headless {
		t.Fatalf("bool flags not applied: %+v", config)
	}
}

func TestInitializeGameWithShape(t *testing.T) {
	config := utils.DefaultConfig()
	config.Shape = "beehive"

	gm, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if n := gm.Snapshot().LivingCells; n != model.Beehive.Size() {
		t.Fatalf("%d living cells, want %d", n, model.Beehive.Size())
	}
	if gm.HistoryCapacity() != config.HistoryCapacity {
		t.Fatalf("history capacity %d", gm.HistoryCapacity())
	}
}

func TestInitializeGameErrors(t *testing.T) {
	config := utils.DefaultConfig()
	config.Shape = "nope"
	if _, err := initializeGame(config); !errors.Is(err, model.ErrUnknownShape) {
		t.Fatalf("got %v, want ErrUnknownShape", err)
	}

	config.Shape = "super-exploder"
	config.Width, config.Height = 10, 10
	if _, err := initializeGame(config); !errors.Is(err, model.ErrGridTooSmall) {
		t.Fatalf("got %v, want ErrGridTooSmall", err)
	}
}

func TestInitializeGameRandomIsSeeded(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 1234

	a, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	b, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("same seed gave different boards")
	}
	if a.Snapshot().LivingCells == 0 {
		t.Fatal("20% random fill left the board empty")
	}
}

// orecrawl is a small cave-mining simulator: it generates a fake cave
// system and block catalog, then runs mining scenarios against them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/orecrawl/orecrawl/blocks"
	"github.com/orecrawl/orecrawl/checklist"
	"github.com/orecrawl/orecrawl/fakedata"
	"github.com/orecrawl/orecrawl/game"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var worldFlags = []cli.Flag{
	&cli.Int64Flag{
		Name:    "seed",
		Usage:   "world generation seed",
		Value:   1,
		EnvVars: []string{"ORECRAWL_SEED"},
	},
	&cli.IntFlag{
		Name:    "chambers",
		Usage:   "number of cave chambers to generate",
		Value:   12,
		EnvVars: []string{"ORECRAWL_CHAMBERS"},
	},
	&cli.IntFlag{
		Name:    "blocks",
		Usage:   "number of blocks to scatter through the caves",
		Value:   40,
		EnvVars: []string{"ORECRAWL_BLOCKS"},
	},
	&cli.BoolFlag{
		Name:    "debug",
		Usage:   "enable debug logging",
		EnvVars: []string{"ORECRAWL_DEBUG"},
	},
}

func run(args []string) error {
	app := cli.App{
		Name:    "orecrawl",
		Usage:   "cave-mining simulator",
		Version: versioninfo.Short(),
	}
	app.Commands = []*cli.Command{
		cmdExplore,
		cmdObjective,
		cmdProfit,
	}
	return app.Run(args)
}

var cmdExplore = &cli.Command{
	Name:   "explore",
	Usage:  "explore the cave system and list every block found",
	Flags:  worldFlags,
	Action: runExplore,
}

var cmdObjective = &cli.Command{
	Name:  "objective",
	Usage: "mine blocks ranked between two percentile pivots of the catalog",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "lower-pct",
			Usage: "lower pivot percentile (0-100) of the block catalog by ratio",
			Value: 25,
		},
		&cli.IntFlag{
			Name:  "upper-pct",
			Usage: "upper pivot percentile (0-100) of the block catalog by ratio",
			Value: 75,
		},
	}, worldFlags...),
	Action: runObjective,
}

var cmdProfit = &cli.Command{
	Name:  "profit",
	Usage: "mine the most profitable blocks within a time budget",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "time-seconds",
			Usage: "mining time budget in seconds",
			Value: 60,
		},
	}, worldFlags...),
	Action: runProfit,
}

func setupWorld(cctx *cli.Context) (*game.Game, *checklist.Checklist, error) {
	level := slog.LevelInfo
	if cctx.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	seed := cctx.Int64("seed")
	catalog := fakedata.GenBlocks(seed, cctx.Int("blocks"))
	system := fakedata.GenSystem(seed, cctx.Int("chambers"), catalog)

	cl, err := checklist.New(catalog)
	if err != nil {
		return nil, nil, err
	}

	g := game.New(system, cl, &game.Config{Logger: logger, Seed: seed})
	return g, cl, nil
}

func runExplore(cctx *cli.Context) error {
	g, _, err := setupWorld(cctx)
	if err != nil {
		return err
	}
	for _, b := range g.ExploreCave() {
		fmt.Printf("%.2f\t%s\n", b.Ratio(), b.Name)
	}
	return nil
}

// pivot picks the block at the given percentile of the catalog by ratio.
func pivot(sorted []blocks.Block, pct int) blocks.Block {
	idx := pct * (len(sorted) - 1) / 100
	return sorted[idx]
}

func runObjective(cctx *cli.Context) error {
	g, cl, err := setupWorld(cctx)
	if err != nil {
		return err
	}
	sorted := cl.SortedBlocks()
	b1 := pivot(sorted, cctx.Int("lower-pct"))
	b2 := pivot(sorted, cctx.Int("upper-pct"))

	g.RunObjective(b1, b2)
	printInventory(g)
	return nil
}

func runProfit(cctx *cli.Context) error {
	g, _, err := setupWorld(cctx)
	if err != nil {
		return err
	}
	g.RunProfit(cctx.Int("time-seconds"))
	printInventory(g)
	return nil
}

func printInventory(g *game.Game) {
	items := g.Miner().Inventory()
	fmt.Printf("%s mined %d items:\n", g.Miner().Name, len(items))
	for _, it := range items {
		fmt.Printf("  %d\t%s\n", it.Value, it.Name)
	}
}

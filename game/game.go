// Package game runs mining scenarios over a cave system: explore the caves,
// pick blocks worth mining, and mine them in a sensible order.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/orecrawl/orecrawl/blocks"
	"github.com/orecrawl/orecrawl/caves"
	"github.com/orecrawl/orecrawl/checklist"
	"github.com/orecrawl/orecrawl/mergesort"
	"github.com/orecrawl/orecrawl/miner"
)

// Config carries optional game dependencies.
type Config struct {
	// MinerName names the miner. Defaults to "Steve".
	MinerName string
	// Logger receives scenario progress. Defaults to slog.Default().
	Logger *slog.Logger
	// Seed seeds the game's random source (used by the chicken jockey
	// attack). A zero seed is used as-is.
	Seed int64
}

// Game ties a miner, a cave system and a block checklist together.
type Game struct {
	miner     *miner.Miner
	caves     *caves.System
	checklist *checklist.Checklist
	logger    *slog.Logger
	rng       *rand.Rand
}

// New returns a game over the given cave system and checklist. cfg may be
// nil for defaults.
func New(system *caves.System, cl *checklist.Checklist, cfg *Config) *Game {
	if cfg == nil {
		cfg = &Config{}
	}
	name := cfg.MinerName
	if name == "" {
		name = "Steve"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		miner:     miner.New(name),
		caves:     system,
		checklist: cl,
		logger:    logger,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Miner returns the game's miner.
func (g *Game) Miner() *miner.Miner {
	return g.miner
}

// ExploreCave walks the cave system depth-first from the entrance and
// returns every block found, in discovery order. Neighbours are explored
// lowest index first.
func (g *Game) ExploreCave() []blocks.Block {
	var found []blocks.Block
	visited := make(map[string]bool)

	stack := []*caves.Chamber{g.caves.Entrance}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur.Name] {
			continue
		}
		visited[cur.Name] = true

		found = append(found, cur.Blocks...)

		// Push in reverse so Neighbours[0] ends up on top.
		for i := len(cur.Neighbours) - 1; i >= 0; i-- {
			if n := cur.Neighbours[i]; !visited[n.Name] {
				stack = append(stack, n)
			}
		}
	}

	g.logger.Debug("cave exploration finished", "chambers", len(visited), "blocks", len(found))
	return found
}

// ObjectiveFilter keeps the found blocks that the checklist ranks strictly
// between the ratios of b1 and b2.
func (g *Game) ObjectiveFilter(found []blocks.Block, b1, b2 blocks.Block) []blocks.Block {
	optimal := g.checklist.OptimalBlocks(b1, b2)

	out := make([]blocks.Block, 0, len(optimal))
	for _, b := range found {
		for _, opt := range optimal {
			if b.Equal(opt) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// ObjectiveMining mines the given blocks best ratio first.
func (g *Game) ObjectiveMining(found []blocks.Block) {
	sorted := mergesort.Sort(found, func(b blocks.Block) float64 { return -b.Ratio() })
	for _, b := range sorted {
		g.miner.Mine(b)
	}
	g.logger.Info("objective mining done", "miner", g.miner.Name, "mined", len(sorted))
}

// ChickenJockeyAttack shuffles the blocks in place. It strikes between
// filtering and mining in the objective scenario.
func (g *Game) ChickenJockeyAttack(found []blocks.Block) {
	g.rng.Shuffle(len(found), func(i, j int) {
		found[i], found[j] = found[j], found[i]
	})
}

// RunObjective runs scenario 1: explore the caves, keep the blocks the
// checklist ranks strictly between b1 and b2, survive a chicken jockey
// attack, and mine what is left best ratio first.
func (g *Game) RunObjective(b1, b2 blocks.Block) {
	found := g.ExploreCave()
	filtered := g.ObjectiveFilter(found, b1, b2)
	g.ChickenJockeyAttack(filtered)
	g.ObjectiveMining(filtered)
}

// ProfitMining mines greedily under a time budget: blocks are drawn from a
// max-heap on ratio, and a drawn block is mined only if its hardness still
// fits the remaining time; blocks too hard for the remaining budget are
// discarded. Stops when the budget is spent or the heap is empty.
func (g *Game) ProfitMining(found []blocks.Block, timeInSeconds int) {
	h := newBlockHeap(found)

	remaining := timeInSeconds
	for remaining > 0 && h.Len() > 0 {
		b := h.PopMax()
		if b.Hardness <= remaining {
			g.miner.Mine(b)
			remaining -= b.Hardness
		}
	}
	g.logger.Info("profit mining done", "miner", g.miner.Name, "budget", timeInSeconds, "unspent", remaining)
}

// RunProfit runs scenario 2: explore the caves and profit-mine the finds
// under the given time budget.
func (g *Game) RunProfit(timeInSeconds int) {
	found := g.ExploreCave()
	g.ProfitMining(found, timeInSeconds)
}

// Package fakedata generates fake blocks and cave systems for demos and
// benchmarking. Generation is deterministic for a given seed.
package fakedata

import (
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/orecrawl/orecrawl/blocks"
	"github.com/orecrawl/orecrawl/caves"
)

// GenBlocks returns n fake blocks with distinct names and distinct
// value-to-hardness ratios, so they can be indexed by ratio directly.
func GenBlocks(seed int64, n int) []blocks.Block {
	faker := gofakeit.New(seed)

	out := make([]blocks.Block, 0, n)
	seenName := make(map[string]bool, n)
	seenRatio := make(map[float64]bool, n)
	for len(out) < n {
		b := blocks.Block{
			Name:        fmt.Sprintf("%s %s", faker.AdjectiveDescriptive(), faker.MinecraftOre()),
			Description: faker.Sentence(6),
			Hardness:    faker.Number(1, 10),
			Item: blocks.Item{
				Name:        faker.MinecraftTool(),
				Description: faker.Sentence(4),
				Value:       faker.Number(1, 500),
			},
		}
		if seenName[b.Name] || seenRatio[b.Ratio()] {
			continue
		}
		seenName[b.Name] = true
		seenRatio[b.Ratio()] = true
		out = append(out, b)
	}
	return out
}

// GenSystem builds a cave system of the given chamber count and scatters
// the blocks across it. Chambers form a chain from the entrance with a few
// extra random tunnels, so the whole system is always reachable.
func GenSystem(seed int64, chambers int, bs []blocks.Block) *caves.System {
	if chambers < 1 {
		chambers = 1
	}
	rng := rand.New(rand.NewSource(seed))

	all := make([]*caves.Chamber, chambers)
	for i := range all {
		name := fmt.Sprintf("%s-%d", petname.Generate(2, "-"), i)
		all[i] = caves.NewChamber(name)
	}
	for i := 0; i+1 < len(all); i++ {
		all[i].Connect(all[i+1])
	}
	// Extra tunnels, roughly one per three chambers.
	for i := 0; i < chambers/3; i++ {
		from := rng.Intn(chambers)
		to := rng.Intn(chambers)
		if from != to {
			all[from].Connect(all[to])
		}
	}
	for _, b := range bs {
		all[rng.Intn(chambers)].AddBlocks(b)
	}
	return caves.NewSystem(all[0])
}

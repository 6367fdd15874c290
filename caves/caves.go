// Package caves models a cave system as a graph of chambers. Chambers hold
// mineable blocks and link to neighbouring chambers; exploration happens
// elsewhere (see the game package).
package caves

import "github.com/orecrawl/orecrawl/blocks"

// Chamber is one cave in the system. Chamber names are unique within a
// system; exploration uses them to track visits.
type Chamber struct {
	Name       string
	Blocks     []blocks.Block
	Neighbours []*Chamber
}

// NewChamber returns a chamber with the given name and blocks.
func NewChamber(name string, bs ...blocks.Block) *Chamber {
	return &Chamber{Name: name, Blocks: bs}
}

// AddBlocks adds blocks to the chamber.
func (c *Chamber) AddBlocks(bs ...blocks.Block) {
	c.Blocks = append(c.Blocks, bs...)
}

// Connect links the chamber to each of the given neighbours, one-way.
// Neighbour order matters: exploration visits index 0 first.
func (c *Chamber) Connect(neighbours ...*Chamber) {
	c.Neighbours = append(c.Neighbours, neighbours...)
}

// System is a cave system reachable from a single entrance.
type System struct {
	Entrance *Chamber
}

// NewSystem returns a cave system rooted at entrance.
func NewSystem(entrance *Chamber) *System {
	return &System{Entrance: entrance}
}

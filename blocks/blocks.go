// Package blocks defines the mineable block and item value types shared
// across the simulation.
package blocks

import "fmt"

// Item is the content of a mined block.
type Item struct {
	Name        string
	Description string
	Value       int
}

// Equal reports whether two items are the same item. Identity is by name.
func (i Item) Equal(other Item) bool {
	return i.Name == other.Name
}

func (i Item) String() string {
	return fmt.Sprintf("Item(name=%s, description=%s, value=%d)", i.Name, i.Description, i.Value)
}

// Block is a mineable block holding a single item. Hardness is the time in
// seconds it takes to mine the block.
type Block struct {
	Name        string
	Description string
	Hardness    int
	Item        Item
}

// Ratio returns the block's value-to-hardness ratio, the ranking used to
// index and prioritize blocks.
func (b Block) Ratio() float64 {
	return float64(b.Item.Value) / float64(b.Hardness)
}

// Equal reports whether two blocks are the same block. Identity is by name.
func (b Block) Equal(other Block) bool {
	return b.Name == other.Name
}

func (b Block) String() string {
	return fmt.Sprintf("Block(name=%s, description=%s, hardness=%d, item=%s)", b.Name, b.Description, b.Hardness, b.Item)
}

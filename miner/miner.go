// Package miner implements the inventory-carrying miner.
package miner

import "github.com/orecrawl/orecrawl/blocks"

// Miner mines blocks and accumulates their items in an inventory.
type Miner struct {
	Name      string
	inventory []blocks.Item
}

// New returns a miner with an empty inventory.
func New(name string) *Miner {
	return &Miner{Name: name}
}

// Mine mines a block, adding its item to the inventory.
func (m *Miner) Mine(b blocks.Block) {
	m.inventory = append(m.inventory, b.Item)
}

// Inventory returns a snapshot of the current inventory, in mining order.
func (m *Miner) Inventory() []blocks.Item {
	out := make([]blocks.Item, len(m.inventory))
	copy(out, m.inventory)
	return out
}

// ClearInventory empties the inventory and returns what it held.
func (m *Miner) ClearInventory() []blocks.Item {
	old := m.inventory
	m.inventory = nil
	return old
}

package config

import (
	"github.com/vk/cubecount/internal/bag"
	"github.com/vk/cubecount/internal/game"
)

// Model is the unified, format-agnostic representation of the evaluation
// settings for a run.
type Model struct {
	// Capacity is the number of cubes of each color assumed to be in the bag.
	Capacity game.CubeSet
	// Source describes where Capacity came from, for logging.
	Source string
}

// NewModel returns a Model holding the built-in bag capacity.
func NewModel() *Model {
	return &Model{
		Capacity: bag.DefaultCapacity,
		Source:   "default",
	}
}

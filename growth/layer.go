package growth

import (
	"fmt"

	"github.com/gogpu/treegen/skeleton"
)

// Layer is one growth phase. Generate extends tree according to params and
// returns it. Implementations only append nodes.
type Layer[P any] interface {
	Generate(tree *skeleton.Tree, params P) (*skeleton.Tree, error)
}

// LayerFunc adapts a function to the Layer interface.
type LayerFunc[P any] func(tree *skeleton.Tree, params P) (*skeleton.Tree, error)

// Generate calls f.
func (f LayerFunc[P]) Generate(tree *skeleton.Tree, params P) (*skeleton.Tree, error) {
	return f(tree, params)
}

// Nop is a layer that returns the tree unchanged.
type Nop[P any] struct{}

// Generate returns tree.
func (Nop[P]) Generate(tree *skeleton.Tree, _ P) (*skeleton.Tree, error) {
	return tree, nil
}

// Step is a layer bound to its parameters.
type Step func(tree *skeleton.Tree) (*skeleton.Tree, error)

// Bind fixes the parameters of layer.
func Bind[P any](layer Layer[P], params P) Step {
	return func(tree *skeleton.Tree) (*skeleton.Tree, error) {
		return layer.Generate(tree, params)
	}
}

// Run feeds tree through steps in order. It stops at the first failing
// step and returns the tree as that step left it.
func Run(tree *skeleton.Tree, steps ...Step) (*skeleton.Tree, error) {
	for i, step := range steps {
		next, err := step(tree)
		if err != nil {
			return tree, fmt.Errorf("growth: step %d: %w", i, err)
		}
		tree = next
	}
	return tree, nil
}

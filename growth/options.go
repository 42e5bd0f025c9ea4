package growth

import "math/rand/v2"

// Option configures a layer during creation.
//
// Example:
//
//	trunk := growth.NewTrunkLayer(growth.WithSeed(7), growth.WithWorkers(4))
type Option func(*layerOptions)

type layerOptions struct {
	src     Source
	workers int
}

func defaultOptions() layerOptions {
	return layerOptions{
		src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithSource sets the random source the layer draws from.
func WithSource(src Source) Option {
	return func(o *layerOptions) {
		if src != nil {
			o.src = src
		}
	}
}

// WithSeed seeds a fresh PCG source for the layer.
func WithSeed(seed uint64) Option {
	return func(o *layerOptions) {
		o.src = NewSource(seed)
	}
}

// WithWorkers sets how many goroutines evaluate tips in parallel.
// Zero or negative means GOMAXPROCS. Layers that grow sequentially ignore it.
func WithWorkers(n int) Option {
	return func(o *layerOptions) {
		o.workers = n
	}
}

func applyOptions(opts []Option) layerOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Package growth implements the stochastic layers that grow a tree.
//
// A layer takes a tree and a parameter struct and returns the extended
// tree. Layers compose into a pipeline:
//
//	tree, err := growth.Run(skeleton.NewTree(),
//	    growth.Bind(growth.NewTrunkLayer(growth.WithSeed(1)), trunkParams),
//	    growth.Bind(growth.NewBranchLayer(growth.WithSeed(2)), branchParams),
//	)
//
// Layers only append: existing nodes keep their geometry, and colors are
// only set on nodes created by the same step.
//
// Every layer draws from an injected Source. Seeding the source makes a run
// reproducible; the trunk layer derives one generator per tip from it
// before fanning out, so the result does not depend on the worker count.
package growth

// Package treegen grows stylized trees from stochastic parameters.
//
// # Overview
//
// A tree is an append-only skeleton of growth segments (package skeleton)
// indexed by a region quadtree over segment anchors (package quadtree).
// Growth happens in layers (package growth): the trunk layer grows a
// branching primary structure level by level, then the branch layer hangs
// chains of shrinking twigs off every tip. Package render turns a finished
// tree into an image.
//
// # Quick Start
//
//	tree := skeleton.NewTree()
//	trunk := growth.NewTrunkLayer(growth.WithSeed(42))
//	branch := growth.NewBranchLayer(growth.WithSeed(43))
//
//	tree, err := growth.Run(tree,
//	    growth.Bind(trunk, growth.DefaultTrunkParams(1, 1, 1, 0.5)),
//	    growth.Bind(branch, growth.DefaultBranchParams(1, 1, 0.5)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	img := render.NewPolygonRenderer().Render(tree)
//
// # Coordinate System
//
// Screen coordinates: origin at top-left, X increases right, Y increases
// down. Node angles are radians measured from "up", so a segment with angle
// 0 grows towards smaller Y and positive angles lean right.
//
// # Randomness
//
// Layers never use a global random source. Each layer owns a [growth.Source]
// that callers can seed, which makes a run reproducible for a fixed seed.
package treegen

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)

// Package geom provides the 2D point and rectangle types shared by the
// skeleton, its spatial index and the renderer.
package geom

// Package skeleton holds the growing structure of a tree: an append-only
// arena of segments linked by integer ids, plus a quadtree over segment
// anchors for proximity queries.
//
// Ids are positions in creation order. A parent is always created before
// its children, so walking the graph never cycles. Nothing is ever removed.
package skeleton

package addrtree

import (
	"sort"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// Node is one labeled entry in the containment hierarchy. A node
// exclusively owns its children, keyed by label, so the structure is a
// tree rather than a DAG: no node is shared across parents and no cycles
// can form. Node identity for export purposes is (Label, Level).
type Node struct {
	Label string
	Level Level

	children map[string]*Node

	// Running sums of address points observed at or below this node,
	// used to derive a centroid for export annotations. The insertion
	// algorithm itself never reads these.
	pointCount int
	latSum     float64
	lngSum     float64
}

func newNode(label string, level Level) *Node {
	return &Node{
		Label:    label,
		Level:    level,
		children: make(map[string]*Node),
	}
}

// Child returns the child with the given label, if any.
func (n *Node) Child(label string) (*Node, bool) {
	c, ok := n.children[label]
	return c, ok
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Children returns the direct children sorted by label. Sorting makes
// traversal, export and tests deterministic despite map storage.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// getOrCreateChild is the sole mutation primitive of the hierarchy.
// An existing child with the given label is returned unchanged, which is
// what merges records sharing a prefix into one subtree; otherwise a new
// node one level down is created and linked.
func (n *Node) getOrCreateChild(label string, level Level) *Node {
	if c, ok := n.children[label]; ok {
		return c
	}
	c := newNode(label, level)
	n.children[label] = c
	return c
}

// addPoint folds one observed address coordinate into the node's
// centroid accumulator.
func (n *Node) addPoint(lat, lng float64) {
	n.pointCount++
	n.latSum += lat
	n.lngSum += lng
}

// Centroid returns the mean coordinate of all address points recorded at
// or below this node. ok is false when no record under this node carried
// a point.
func (n *Node) Centroid() (ll s2.LatLng, ok bool) {
	if n.pointCount == 0 {
		return s2.LatLng{}, false
	}
	c := float64(n.pointCount)
	return s2.LatLngFromDegrees(n.latSum/c, n.lngSum/c), true
}

// s2CellLevels maps each hierarchy level to an S2 cell granularity
// roughly matching the footprint of entities at that level: ~10km cells
// for cities down to block-sized cells for numbers and units.
var s2CellLevels = [...]int{
	LevelPlanet:   0,
	LevelCountry:  2,
	LevelRegion:   4,
	LevelCity:     10,
	LevelPostcode: 12,
	LevelStreet:   14,
	LevelNumber:   16,
	LevelUnit:     16,
}

// CellID returns the S2 cell covering the node's centroid at a
// granularity appropriate to the node's level. ok is false when the node
// has no centroid.
func (n *Node) CellID() (cell s2.CellID, ok bool) {
	ll, ok := n.Centroid()
	if !ok {
		return 0, false
	}
	return s2.CellIDFromLatLng(ll).Parent(s2CellLevels[n.Level]), true
}

// geohashPrecisions maps hierarchy levels to geohash string lengths,
// mirroring s2CellLevels: coarse hashes for coarse levels.
var geohashPrecisions = [...]int{
	LevelPlanet:   1,
	LevelCountry:  2,
	LevelRegion:   3,
	LevelCity:     5,
	LevelPostcode: 6,
	LevelStreet:   7,
	LevelNumber:   9,
	LevelUnit:     9,
}

// Geohash returns the geohash of the node's centroid at a precision
// appropriate to the node's level, or "" when the node has no centroid.
func (n *Node) Geohash() string {
	ll, ok := n.Centroid()
	if !ok {
		return ""
	}
	return geohash.EncodeWithPrecision(ll.Lat.Degrees(), ll.Lng.Degrees(), geohashPrecisions[n.Level])
}

// Walk visits the subtree rooted at n breadth first, each node exactly
// once, parents before children and siblings in label order.
func (n *Node) Walk(visit func(*Node)) {
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visit(cur)
		queue = append(queue, cur.Children()...)
	}
}

// Edge is one parent/child link discovered during traversal.
type Edge struct {
	Parent *Node
	Child  *Node
}

// Edges enumerates every parent/child link in the subtree rooted at n,
// in breadth-first discovery order. Sufficient for any graph consumer.
func (n *Node) Edges() []Edge {
	var edges []Edge
	n.Walk(func(parent *Node) {
		for _, child := range parent.Children() {
			edges = append(edges, Edge{Parent: parent, Child: child})
		}
	})
	return edges
}

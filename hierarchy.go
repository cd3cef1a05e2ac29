// Package addrtree organizes street-address records into a strict
// geographic containment hierarchy (planet → country → region → city →
// postcode → street → number → unit), deduplicating shared prefixes so
// that all addresses on one street share a single street node.
package addrtree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequiredField marks records rejected because region,
	// postcode, city or street was absent. Recoverable: callers skip the
	// record and continue.
	ErrMissingRequiredField = errors.New("address record is missing required fields")

	// ErrMissingCountryRoot marks a builder whose fixed country child
	// was not seeded before insertion. A setup bug, not bad input;
	// callers should abort rather than recover.
	ErrMissingCountryRoot = errors.New("country node missing under planet root")
)

// Defaults for the fixed top of the hierarchy. The dataset this project
// grew out of is single-country, so both are configuration rather than
// per-record data.
const (
	DefaultPlanet  = "Earth"
	DefaultCountry = "United States of America"
)

// Config contains configuration options for a Hierarchy.
type Config struct {
	Planet  string // Label of the singleton root node
	Country string // Label of the single country under the root
}

// Option is a functional option for configuring a Hierarchy.
type Option func(*Config)

// WithPlanet overrides the root node label.
func WithPlanet(label string) Option {
	return func(c *Config) {
		c.Planet = label
	}
}

// WithCountry overrides the country node label.
func WithCountry(label string) Option {
	return func(c *Config) {
		c.Country = label
	}
}

// IngestStats counts insertion outcomes: every record submitted, and the
// subset rejected for missing required fields.
type IngestStats struct {
	Processed  int
	Incomplete int
}

// Hierarchy owns the containment tree and is mutated only through
// Insert. Not safe for concurrent Insert calls: the lookup-then-insert
// on each traversed node's child map would race. The intended usage is
// one sequential ingestion pass, then read-only traversal.
type Hierarchy struct {
	root    *Node
	country string
	stats   IngestStats
}

// New creates a Hierarchy with the planet root and its single country
// child pre-seeded.
func New(opts ...Option) (*Hierarchy, error) {
	cfg := &Config{Planet: DefaultPlanet, Country: DefaultCountry}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Planet = strings.TrimSpace(cfg.Planet)
	cfg.Country = strings.TrimSpace(cfg.Country)
	if cfg.Planet == "" || cfg.Country == "" {
		return nil, fmt.Errorf("planet and country labels must be non-empty (got %q, %q)", cfg.Planet, cfg.Country)
	}

	h := &Hierarchy{
		root:    newNode(cfg.Planet, LevelPlanet),
		country: cfg.Country,
	}
	h.root.getOrCreateChild(cfg.Country, LevelCountry)
	return h, nil
}

// Root exposes the planet node for read-only traversal. Consumers must
// not mutate the returned tree.
func (h *Hierarchy) Root() *Node {
	return h.root
}

// Stats returns the insertion counters accumulated so far.
func (h *Hierarchy) Stats() IngestStats {
	return h.stats
}

// Insert files one address record into the hierarchy, creating nodes on
// first sight and reusing them on repeat. It returns the deepest node
// reached: the unit node for a fully specified record, the number or
// street node when the record stops earlier. Records missing any of
// region, postcode, city or street fail with ErrMissingRequiredField and
// leave the tree untouched; there is no partial insertion.
func (h *Hierarchy) Insert(rec AddressRecord) (*Node, error) {
	h.stats.Processed++
	if !rec.IsComplete() {
		h.stats.Incomplete++
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(rec.MissingFields(), ", "))
	}

	cur := h.root
	country, ok := cur.Child(h.country)
	if !ok {
		// Seeded by New; absence means the tree was tampered with.
		return nil, fmt.Errorf("%w: %q", ErrMissingCountryRoot, h.country)
	}
	h.observe(cur, rec)
	cur = country
	h.observe(cur, rec)

	// The four required steps cannot fail after the completeness gate,
	// so the walk is all-or-nothing without any rollback machinery. An
	// absent optional field is a terminal stop, never a skipped level.
	for _, step := range insertSteps {
		label := step.field(rec)
		if label == "" {
			if step.required {
				// Unreachable past the completeness gate; kept so a
				// future required level cannot silently truncate.
				return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, step.level)
			}
			break
		}
		cur = cur.getOrCreateChild(label, step.level)
		h.observe(cur, rec)
	}
	return cur, nil
}

// observe folds the record's coordinate, when present, into a node the
// record passed through.
func (h *Hierarchy) observe(n *Node, rec AddressRecord) {
	if rec.HasPoint {
		n.addPoint(rec.Latitude, rec.Longitude)
	}
}

// NodeCount returns the total number of nodes in the tree, root
// included.
func (h *Hierarchy) NodeCount() int {
	total := 0
	h.root.Walk(func(*Node) { total++ })
	return total
}

// LevelCounts returns the number of nodes at each hierarchy level.
// Levels with no nodes map to zero.
func (h *Hierarchy) LevelCounts() map[Level]int {
	counts := make(map[Level]int, len(levelNames))
	for _, l := range Levels() {
		counts[l] = 0
	}
	h.root.Walk(func(n *Node) {
		counts[n.Level]++
	})
	return counts
}

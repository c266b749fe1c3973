package geocache

import (
	"cmp"
	"slices"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/vatsimnerd/util/set"
)

var (
	log = logrus.WithField("module", "geocache")
)

// Cache maps bounding boxes to payloads and answers which payload covers a
// given point. Entries are only ever added; Clear drops all of them.
//
// A Cache is not safe for concurrent use, see SyncCache.
type Cache struct {
	index     Index
	backend   IndexBackend
	precision uint8
	seq       uint64
	payloads  *set.Set[string]
	log       logrus.FieldLogger
}

type Option func(c *Cache)

// WithPrecision sets the number of decimal places coordinates are rounded
// to. It can't be changed afterwards. Values above MaxPrecision are capped.
func WithPrecision(places uint8) Option {
	return func(c *Cache) {
		c.precision = min(places, MaxPrecision)
	}
}

func WithBackend(backend IndexBackend) Option {
	return func(c *Cache) {
		c.backend = backend
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Cache) {
		c.log = l
	}
}

// New creates an empty cache, by default with DefaultPrecision and the
// rtreego backend.
func New(opts ...Option) (*Cache, error) {
	c := &Cache{
		backend:   BackendRTreeGo,
		precision: DefaultPrecision,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}

	idx, err := NewIndex(c.backend)
	if err != nil {
		return nil, err
	}
	c.index = idx
	c.payloads = set.New[string]()
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Cache {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Cache) Precision() uint8 {
	return c.precision
}

func (c *Cache) Backend() IndexBackend {
	return c.backend
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	return c.index.Len()
}

// Clear drops every entry. Precision and backend are kept.
func (c *Cache) Clear() {
	c.log.WithFields(logrus.Fields{
		"func":    "Clear",
		"entries": c.index.Len(),
	}).Debug("clearing cache")

	// the backend was validated by New
	idx, _ := NewIndex(c.backend)
	c.index = idx
	c.payloads = set.New[string]()
	c.seq = 0
}

func (c *Cache) insert(payload string, box BoundingBox) {
	c.seq++
	p := newPlace(c.seq, box.Bound(), payload)
	c.log.WithFields(logrus.Fields{
		"func":     "insert",
		"place_id": p.ID(),
		"bounds":   p.bounds,
	}).Trace("inserting place")

	c.index.Insert(p)
	c.payloads.Add(payload)
}

// Set truncates box and ref to the cache precision and stores payload under
// the box. ref is optional; when given, the result reports whether it is
// not strictly inside the box, a ref on the boundary counts as missing.
// Existing entries are never touched.
func (c *Cache) Set(payload string, box BoundingBox, ref *orb.Point) SetNotChanged {
	box = box.Truncate(c.precision)
	missing := false
	if ref != nil {
		missing = !box.ContainsInterior(TruncatePoint(*ref, c.precision))
	}

	c.insert(payload, box)
	return newSetNotChanged(box, box.Width(), box.Height(), missing)
}

// SetWithMaxLength works like Set, but a box with a side longer than
// maxLength meters is shrunk around ref before being stored and a
// SetTruncated is returned. maxLength <= 0 disables the limit.
func (c *Cache) SetWithMaxLength(payload string, box BoundingBox, ref orb.Point, maxLength float64) SetResult {
	box = box.Truncate(c.precision)
	ref = TruncatePoint(ref, c.precision)

	width := box.Width()
	height := box.Height()
	missing := !box.ContainsInterior(ref)

	if !needsFit(width, height, maxLength) {
		c.insert(payload, box)
		return newSetNotChanged(box, width, height, missing)
	}

	fitted := fitBoundingBox(box, maxLength, ref, c.precision)
	c.log.WithFields(logrus.Fields{
		"func":       "SetWithMaxLength",
		"max_length": maxLength,
		"old_bbox":   box,
		"new_bbox":   fitted,
	}).Debug("box exceeds max length, fitted")

	c.insert(payload, fitted)

	newWidth := fitted.Width()
	newHeight := fitted.Height()
	return SetTruncated{
		OldBBox:                 box,
		NewBBox:                 fitted,
		OldWidth:                width,
		NewWidth:                newWidth,
		OldHeight:               height,
		NewHeight:               newHeight,
		OldArea:                 width * height,
		NewArea:                 newWidth * newHeight,
		IsMissingReferencePoint: missing,
	}
}

// Get returns the payload of the entry containing pt. When several entries
// contain it, the one whose centre is closest to pt wins; exact ties go to
// the entry inserted first.
func (c *Cache) Get(pt orb.Point) (string, bool) {
	pt = TruncatePoint(pt, c.precision)
	places := c.index.SearchPoint(pt)

	switch len(places) {
	case 0:
		return "", false
	case 1:
		return places[0].payload, true
	}

	c.log.WithFields(logrus.Fields{
		"func":       "Get",
		"point":      pt,
		"candidates": len(places),
	}).Trace("breaking tie")
	return rank(places, pt)[0].payload, true
}

// Match is an entry containing a looked up point. Distance is measured in
// meters from the centre of Bounds to the point.
type Match struct {
	ID       string
	Payload  string
	Bounds   orb.Bound
	Distance float64
}

// Matches returns every entry containing pt, best match first, in the order
// Get would choose them.
func (c *Cache) Matches(pt orb.Point) []Match {
	pt = TruncatePoint(pt, c.precision)
	ranked := rank(c.index.SearchPoint(pt), pt)

	matches := make([]Match, len(ranked))
	for i, r := range ranked {
		matches[i] = Match{
			ID:       r.id,
			Payload:  r.payload,
			Bounds:   r.bounds,
			Distance: r.distance,
		}
	}
	return matches
}

// Lookup returns the distinct payloads of all entries containing pt, best
// match first.
func (c *Cache) Lookup(pt orb.Point) []string {
	matches := c.Matches(pt)

	payloads := make([]string, 0, len(matches))
	seen := set.New[string]()
	for _, m := range matches {
		if seen.Has(m.Payload) {
			continue
		}
		seen.Add(m.Payload)
		payloads = append(payloads, m.Payload)
	}
	return payloads
}

type Stats struct {
	Entries   int
	Payloads  int
	Precision uint8
	Backend   IndexBackend
}

func (c *Cache) Stats() Stats {
	return Stats{
		Entries:   c.index.Len(),
		Payloads:  c.payloads.Size(),
		Precision: c.precision,
		Backend:   c.backend,
	}
}

type rankedPlace struct {
	*Place
	distance float64
}

// rank orders places by the distance from their centre to pt, then by
// insertion order.
func rank(places []*Place, pt orb.Point) []rankedPlace {
	ranked := make([]rankedPlace, len(places))
	for i, p := range places {
		ranked[i] = rankedPlace{Place: p, distance: Distance(p.bounds.Center(), pt)}
	}
	slices.SortFunc(ranked, func(a, b rankedPlace) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return ranked
}

// Package places provides the offline place index backing search.
package places

import (
	"context"
	"math"
	"sort"
	"strings"
)

// Place is one searchable point of interest.
type Place struct {
	ID         int
	Name       string
	Kind       string
	Lat        float64
	Lon        float64
	Popularity int // 0-100, breaks score ties
}

// Match is a scored search hit.
type Match struct {
	Place
	Score float64
}

// Index is an in-memory place index. It is immutable after creation
// and safe for concurrent reads.
type Index struct {
	places []Place
}

// NewIndex builds an index over the given places.
func NewIndex(places []Place) *Index {
	return &Index{places: places}
}

// DefaultIndex returns an index over the built-in dataset.
func DefaultIndex() *Index {
	return NewIndex(dataset)
}

// maxResults caps how many matches a search returns.
const maxResults = 25

// Search scores every place against the query and returns matches in
// descending score order. An empty or whitespace query returns no
// matches and no error. Cancellation is honored between places.
func (ix *Index) Search(ctx context.Context, query string) ([]Match, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var matches []Match
	for i, p := range ix.places {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		score := scorePlace(p, q)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Place: p, Score: score})
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}
		return matches[a].Name < matches[b].Name
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches, nil
}

// scorePlace ranks how well a place matches the folded query: exact
// name, then name prefix, then word prefix, then substring, then kind
// match. Popularity breaks ties within a band.
func scorePlace(p Place, q string) float64 {
	name := strings.ToLower(p.Name)
	kind := strings.ToLower(p.Kind)

	base := 0.0
	switch {
	case name == q:
		base = 100
	case strings.HasPrefix(name, q):
		base = 80
	case wordPrefix(name, q):
		base = 60
	case strings.Contains(name, q):
		base = 40
	case kind == q || strings.HasPrefix(kind, q):
		base = 20
	default:
		return 0
	}
	return base + float64(p.Popularity)/10
}

func wordPrefix(name, q string) bool {
	for _, w := range strings.Fields(name) {
		if strings.HasPrefix(w, q) {
			return true
		}
	}
	return false
}

// Distance returns the great-circle distance between two coordinates
// in meters.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6_371_000.0
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Package airport provides a static airport coordinate table and proximity lookups.
package airport

import (
	"sort"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/geo"
)

// DefaultRadiusMiles is the radius used for nearby-airport fallback.
const DefaultRadiusMiles = 60.0

// Airport is a single entry of the coordinate table.
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Index answers proximity queries over a fixed set of airports.
// It is immutable after construction and safe for concurrent use.
type Index struct {
	byCode map[string]Airport
}

// NewIndex builds an index from the given airports. Later duplicates replace earlier ones.
func NewIndex(entries []Airport) *Index {
	byCode := make(map[string]Airport, len(entries))
	for _, a := range entries {
		a.Code = domain.NormalizeAirportCode(a.Code)
		byCode[a.Code] = a
	}
	return &Index{byCode: byCode}
}

// Default returns an index over the built-in airport table.
func Default() *Index {
	return NewIndex(airports)
}

// Lookup returns the airport for a code, case-insensitively.
func (idx *Index) Lookup(code string) (Airport, bool) {
	a, ok := idx.byCode[domain.NormalizeAirportCode(code)]
	return a, ok
}

// Len is the number of airports in the index.
func (idx *Index) Len() int {
	return len(idx.byCode)
}

// Nearby returns airports within radiusMiles of code, closest first, excluding code itself.
// Equal distances are ordered by code. An unknown code yields an empty slice.
func (idx *Index) Nearby(code string, radiusMiles float64) []domain.NearbyAirport {
	origin, ok := idx.Lookup(code)
	if !ok {
		return []domain.NearbyAirport{}
	}

	nearby := make([]domain.NearbyAirport, 0)
	for c, a := range idx.byCode {
		if c == origin.Code {
			continue
		}
		d := geo.DistanceMiles(origin.Latitude, origin.Longitude, a.Latitude, a.Longitude)
		if d <= radiusMiles {
			nearby = append(nearby, domain.NearbyAirport{Code: a.Code, Name: a.Name, DistanceMiles: d})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceMiles != nearby[j].DistanceMiles {
			return nearby[i].DistanceMiles < nearby[j].DistanceMiles
		}
		return nearby[i].Code < nearby[j].Code
	})

	return nearby
}

var _ domain.NearbyAirportFinder = (*Index)(nil)

package lunch

import (
	"errors"
	"fmt"
	"strings"
)

// Building identifies one canteen site with its own menu page.
type Building string

// The closed set of supported buildings.
const (
	BuildingAastvej     Building = "aastvej"
	BuildingMultihuset  Building = "multihuset"
	BuildingHavremarken Building = "havremarken"
	BuildingKIRKBI      Building = "kirkbi"
	BuildingMidtown     Building = "midtown"
	BuildingKornmarken  Building = "kornmarken"
	BuildingOestergade  Building = "oestergade"
)

// DefaultBaseURL is the production menu host.
const DefaultBaseURL = "https://lego.isscatering.dk"

// ErrUnknownBuilding is returned by ParseBuilding for identifiers
// outside the supported set.
var ErrUnknownBuilding = errors.New("unknown building")

// buildingPaths maps each building to its upstream path segment. The
// segments are fixed by the catering site and do not always match the
// short identifier.
var buildingPaths = map[Building]string{
	BuildingAastvej:     "aastvej",
	BuildingMultihuset:  "multihuset",
	BuildingHavremarken: "havremarken",
	BuildingKIRKBI:      "kloeverblomsten-kirkbi",
	BuildingMidtown:     "midtown",
	BuildingKornmarken:  "kornmarken",
	BuildingOestergade:  "kantine-oestergade",
}

// buildingOrder keeps Buildings() deterministic.
var buildingOrder = []Building{
	BuildingAastvej,
	BuildingMultihuset,
	BuildingHavremarken,
	BuildingKIRKBI,
	BuildingMidtown,
	BuildingKornmarken,
	BuildingOestergade,
}

// ParseBuilding matches an identifier against the supported set,
// case-insensitively.
func ParseBuilding(s string) (Building, error) {
	b := Building(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := buildingPaths[b]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBuilding, s)
	}
	return b, nil
}

// Buildings returns the supported identifiers in a stable order.
func Buildings() []Building {
	out := make([]Building, len(buildingOrder))
	copy(out, buildingOrder)
	return out
}

// URL resolves the building's menu page under the given base URL.
func (b Building) URL(base string) string {
	return strings.TrimSuffix(base, "/") + "/" + buildingPaths[b]
}

func (b Building) String() string {
	return string(b)
}

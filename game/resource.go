package game

// Resource is the kind of a hex tile, and for every kind except Desert
// also a tradeable resource a player can hold.
type Resource int

const (
	Wood  Resource = iota // 0
	Brick                 // 1
	Grain                 // 2
	Wool                  // 3
	Ore                   // 4
	Desert                // 5, produces nothing
)

// NumResources is the number of holdable resource kinds (Desert excluded).
const NumResources = 5

var resourceNames = [...]string{"wood", "brick", "grain", "wool", "ore", "desert"}

func (r Resource) String() string {
	if r < 0 || int(r) >= len(resourceNames) {
		return "unknown"
	}
	return resourceNames[r]
}

// Holdable reports whether r can be held in a Hand.
func (r Resource) Holdable() bool {
	return r >= Wood && r < NumResources
}

// ParseResource maps a resource name back to its kind.
func ParseResource(name string) (Resource, bool) {
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), true
		}
	}
	return 0, false
}

// Hand holds a count per resource kind. Every kind is always present,
// a missing resource is stored as zero.
type Hand [NumResources]int

// Build costs.
var (
	RoadCost       = Hand{Wood: 1, Brick: 1}
	SettlementCost = Hand{Wood: 1, Brick: 1, Grain: 1, Wool: 1}
	CityCost       = Hand{Grain: 2, Ore: 3}
)

// Total returns the number of resource units held.
func (h Hand) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Covers reports whether h holds at least cost of every kind.
func (h Hand) Covers(cost Hand) bool {
	for r, n := range cost {
		if h[r] < n {
			return false
		}
	}
	return true
}

func (h *Hand) Add(other Hand) {
	for r, n := range other {
		h[r] += n
	}
}

// Sub removes cost from h. Callers check Covers first.
func (h *Hand) Sub(cost Hand) {
	for r, n := range cost {
		h[r] -= n
	}
}

// Units expands the hand into the multiset of held units, one entry per unit,
// in resource order.
func (h Hand) Units() []Resource {
	units := make([]Resource, 0, h.Total())
	for r, n := range h {
		for i := 0; i < n; i++ {
			units = append(units, Resource(r))
		}
	}
	return units
}

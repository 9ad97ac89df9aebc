// Package strategy holds the library of pure logical inference techniques.
// Every technique is a function (Board, single) -> *Effects: it observes a
// Board and proposes Actions without ever mutating it. The Changer is the
// only thing that turns a technique's findings into a new Board.
package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/pkg/constants"
)

// Func is the shape every strategy implements. When single is true the
// strategy returns as soon as it finds one action; otherwise it accumulates
// every finding from a single pass over the board.
type Func func(b board.Board, single bool) *action.Effects

// Descriptor names a registered strategy and where it sits in the
// difficulty ladder.
type Descriptor struct {
	Name    string
	Slug    string
	Tier    string
	Order   int
	Run     Func
	Enabled bool
}

// Registry holds the known strategies, grouped and ordered by tier.
type Registry struct {
	bySlug    map[string]*Descriptor
	tierOrder map[string][]string
	tiers     []string
}

// NewRegistry returns a Registry with every strategy below registered and
// enabled, in the tier order Basic, Tough, Diabolical, Extreme.
func NewRegistry() *Registry {
	r := &Registry{
		bySlug:    make(map[string]*Descriptor),
		tierOrder: make(map[string][]string),
		tiers:     []string{constants.TierBasic, constants.TierTough, constants.TierDiabolical, constants.TierExtreme},
	}
	r.registerAll()
	return r
}

func (r *Registry) register(d Descriptor) {
	d.Enabled = true
	cp := d
	r.bySlug[d.Slug] = &cp
	r.tierOrder[d.Tier] = append(r.tierOrder[d.Tier], d.Slug)
}

// SetEnabled toggles whether a strategy participates in Find. Ordered still
// lists it, with its Enabled flag updated.
func (r *Registry) SetEnabled(slug string, enabled bool) {
	if d, ok := r.bySlug[slug]; ok {
		d.Enabled = enabled
	}
}

// Get returns the descriptor for slug, or nil.
func (r *Registry) Get(slug string) *Descriptor {
	return r.bySlug[slug]
}

// Ordered returns every registered descriptor in tier, then registration,
// order.
func (r *Registry) Ordered() []*Descriptor {
	var out []*Descriptor
	for _, tier := range r.tiers {
		for _, slug := range r.tierOrder[tier] {
			out = append(out, r.bySlug[slug])
		}
	}
	return out
}

// UpToTier returns the descriptors of tier and every tier below it.
func (r *Registry) UpToTier(tier string) []*Descriptor {
	var out []*Descriptor
	for _, t := range r.tiers {
		for _, slug := range r.tierOrder[t] {
			out = append(out, r.bySlug[slug])
		}
		if t == tier {
			break
		}
	}
	return out
}

// Find runs each enabled strategy in order against b and returns the first
// non-empty Effects along with the descriptor that produced it.
func (r *Registry) Find(b board.Board, single bool) (*Descriptor, *action.Effects) {
	for _, d := range r.Ordered() {
		if !d.Enabled {
			continue
		}
		if effects := d.Run(b, single); effects != nil && !effects.IsEmpty() {
			return d, effects
		}
	}
	return nil, nil
}

func (r *Registry) registerAll() {
	r.register(Descriptor{Name: "Naked Single", Slug: "naked-single", Tier: constants.TierBasic, Order: 1, Run: NakedSingles})
	r.register(Descriptor{Name: "Hidden Single", Slug: "hidden-single", Tier: constants.TierBasic, Order: 2, Run: HiddenSingles})
	r.register(Descriptor{Name: "Pointing Pair", Slug: "pointing-pair", Tier: constants.TierBasic, Order: 3, Run: PointingPairs})
	r.register(Descriptor{Name: "Box-Line Reduction", Slug: "box-line-reduction", Tier: constants.TierBasic, Order: 4, Run: BoxLineReductions})
	r.register(Descriptor{Name: "Naked Pair", Slug: "naked-pair", Tier: constants.TierBasic, Order: 5, Run: NakedPairs})
	r.register(Descriptor{Name: "Hidden Pair", Slug: "hidden-pair", Tier: constants.TierBasic, Order: 6, Run: HiddenPairs})
	r.register(Descriptor{Name: "Naked Triple", Slug: "naked-triple", Tier: constants.TierBasic, Order: 7, Run: NakedTriples})
	r.register(Descriptor{Name: "Hidden Triple", Slug: "hidden-triple", Tier: constants.TierBasic, Order: 8, Run: HiddenTriples})
	r.register(Descriptor{Name: "Naked Quad", Slug: "naked-quad", Tier: constants.TierBasic, Order: 9, Run: NakedQuads})
	r.register(Descriptor{Name: "Hidden Quad", Slug: "hidden-quad", Tier: constants.TierBasic, Order: 10, Run: HiddenQuads})

	r.register(Descriptor{Name: "X-Wing", Slug: "x-wing", Tier: constants.TierTough, Order: 1, Run: XWing})
	r.register(Descriptor{Name: "Singles Chain", Slug: "singles-chain", Tier: constants.TierTough, Order: 2, Run: SinglesChain})
	r.register(Descriptor{Name: "XY-Wing", Slug: "xy-wing", Tier: constants.TierTough, Order: 3, Run: XYWing})
	r.register(Descriptor{Name: "Swordfish", Slug: "swordfish", Tier: constants.TierTough, Order: 4, Run: Swordfish})
	r.register(Descriptor{Name: "XYZ-Wing", Slug: "xyz-wing", Tier: constants.TierTough, Order: 5, Run: XYZWing})
	r.register(Descriptor{Name: "Bivalue Universal Grave", Slug: "bug", Tier: constants.TierTough, Order: 6, Run: BUG})

	r.register(Descriptor{Name: "Jellyfish", Slug: "jellyfish", Tier: constants.TierDiabolical, Order: 1, Run: Jellyfish})
	r.register(Descriptor{Name: "Skyscraper", Slug: "skyscraper", Tier: constants.TierDiabolical, Order: 2, Run: Skyscraper})
	r.register(Descriptor{Name: "Two-String Kite", Slug: "two-string-kite", Tier: constants.TierDiabolical, Order: 3, Run: TwoStringKite})
	r.register(Descriptor{Name: "Avoidable Rectangle", Slug: "avoidable-rectangle", Tier: constants.TierDiabolical, Order: 4, Run: AvoidableRectangle})
	r.register(Descriptor{Name: "XY-Chain", Slug: "xy-chain", Tier: constants.TierDiabolical, Order: 5, Run: XYChain})
	r.register(Descriptor{Name: "Unique Rectangle Type 1", Slug: "unique-rectangle-1", Tier: constants.TierDiabolical, Order: 6, Run: UniqueRectangleType1})
	r.register(Descriptor{Name: "Unique Rectangle Type 2", Slug: "unique-rectangle-2", Tier: constants.TierDiabolical, Order: 7, Run: UniqueRectangleType2})
	r.register(Descriptor{Name: "Unique Rectangle Type 3", Slug: "unique-rectangle-3", Tier: constants.TierDiabolical, Order: 8, Run: UniqueRectangleType3})
	r.register(Descriptor{Name: "Unique Rectangle Type 4", Slug: "unique-rectangle-4", Tier: constants.TierDiabolical, Order: 9, Run: UniqueRectangleType4})
	r.register(Descriptor{Name: "Fireworks", Slug: "fireworks", Tier: constants.TierDiabolical, Order: 10, Run: Fireworks})
	r.register(Descriptor{Name: "Extended Unique Rectangle", Slug: "extended-unique-rectangle", Tier: constants.TierDiabolical, Order: 11, Run: ExtendedUniqueRectangle})
	r.register(Descriptor{Name: "Hidden Unique Rectangle", Slug: "hidden-unique-rectangle", Tier: constants.TierDiabolical, Order: 12, Run: HiddenUniqueRectangle})
	r.register(Descriptor{Name: "WXYZ-Wing", Slug: "wxyz-wing", Tier: constants.TierDiabolical, Order: 13, Run: WXYZWing})

	r.register(Descriptor{Name: "Empty Rectangle", Slug: "empty-rectangle", Tier: constants.TierExtreme, Order: 1, Run: EmptyRectangle})
}

// Package calculator estimates the monetary value of labor claims.
//
// Compute is pure and deterministic: the same facts, claims and overrides
// always produce the same Summary. No value is rounded; formatting belongs
// to presentation.
package calculator

import (
	"math"
	"strconv"

	"github.com/mmynk/peticao/internal/catalog"
)

// ItemID returns the identifier of the item computed for the claim at index i.
func ItemID(i int) string {
	return "calc_" + strconv.Itoa(i)
}

// Compute produces one item per claim, in claim order, and the case totals.
//
// An override whose key matches an item ID replaces that item's base value
// when it is finite; the accessory value is kept as computed. Overrides for
// IDs that produce no item are ignored.
func Compute(facts Facts, claims []Claim, overrides Overrides) Summary {
	in := inputs{
		salary: sanitizeSalary(facts.GrossSalary),
		months: MonthsWorked(facts.AdmissionDate, facts.TerminationDate),
	}

	items := make([]Item, 0, len(claims))
	for i, c := range claims {
		text := claimText(c)
		r := dispatch(c.Type, text)

		in.params = c.Parameters
		est := r.apply(in)

		item := Item{
			ID:             ItemID(i),
			ClaimType:      c.Type,
			Description:    text,
			Rule:           r.name,
			BaseValue:      est.base,
			AccessoryValue: est.accessory,
			Formula:        est.formula,
			Editable:       r.editable,
			Confidence:     est.confidence,
		}
		if v, ok := overrides[item.ID]; ok && isFinite(v) {
			item.BaseValue = v
			item.Overridden = true
		}
		item.Total = item.BaseValue + item.AccessoryValue
		items = append(items, item)
	}

	return Sum(items)
}

// Sum folds items into a Summary. Totals are plain sums of the item fields.
func Sum(items []Item) Summary {
	s := Summary{Items: items}
	if s.Items == nil {
		s.Items = []Item{}
	}
	for _, it := range s.Items {
		s.TotalBase += it.BaseValue
		s.TotalAccessory += it.AccessoryValue
		s.TotalOverall += it.Total
	}
	return s
}

// claimText is the text legacy rules match against: the explicit label, the
// catalog label, or the raw type.
func claimText(c Claim) string {
	if c.Label != "" {
		return c.Label
	}
	if meta, ok := catalog.Resolve(c.Type); ok && meta.Label != "" {
		return meta.Label
	}
	return c.Type
}

func sanitizeSalary(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

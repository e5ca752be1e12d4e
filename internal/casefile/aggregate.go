// Package casefile owns the mutable state of a case and keeps its
// calculation summary in step with it.
//
// Every change event recomputes the whole summary from scratch. Overrides
// are stored against a claim's stable key and translated to positional item
// IDs right before each computation, so removing or reordering claims never
// moves an override onto another claim.
package casefile

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/mmynk/peticao/internal/calculator"
	"github.com/mmynk/peticao/internal/models"
)

var (
	// ErrUnknownItem is returned when an item ID does not match a claim.
	ErrUnknownItem = errors.New("unknown calculation item")

	// ErrInvalidOverride is returned for NaN or infinite override values.
	ErrInvalidOverride = errors.New("override must be a finite number")
)

// Aggregate wraps a case. It is not safe for concurrent use; callers load a
// case, apply events and persist it.
type Aggregate struct {
	c *models.Case
}

// New wraps c, assigning missing claim keys and computing the summary.
func New(c *models.Case) *Aggregate {
	a := &Aggregate{c: c}
	a.c.Claims = normalizeClaims(nil, c.Claims)
	a.pruneOverrides()
	a.recompute()
	return a
}

// Case returns the wrapped case.
func (a *Aggregate) Case() *models.Case {
	return a.c
}

// Summary returns the current calculation summary.
func (a *Aggregate) Summary() calculator.Summary {
	if a.c.Calculations == nil {
		a.recompute()
	}
	return *a.c.Calculations
}

// OnFactsChanged replaces the facts and recomputes.
func (a *Aggregate) OnFactsChanged(facts models.Facts) calculator.Summary {
	a.c.Facts = facts
	return a.recompute()
}

// OnQualificationChanged replaces the party identification. The title is
// derived from the party names.
func (a *Aggregate) OnQualificationChanged(q models.Qualification) {
	a.c.Qualification = q
	a.c.Title = Title(q)
}

// OnClaimsChanged replaces the claim list and recomputes. Claims without a
// key inherit the key of an existing claim of the same type, or get a new
// one. Duplicate types are collapsed, first one wins. Overrides of claims no
// longer selected are dropped.
func (a *Aggregate) OnClaimsChanged(claims []models.ClaimSelection) calculator.Summary {
	a.c.Claims = normalizeClaims(a.c.Claims, claims)
	a.pruneOverrides()
	return a.recompute()
}

// OnOverrideChanged sets a manual base value for the item and recomputes.
func (a *Aggregate) OnOverrideChanged(itemID string, value float64) (calculator.Summary, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return a.Summary(), ErrInvalidOverride
	}
	key, err := a.keyFor(itemID)
	if err != nil {
		return a.Summary(), err
	}
	if a.c.Overrides == nil {
		a.c.Overrides = make(map[string]float64)
	}
	a.c.Overrides[key] = value
	return a.recompute(), nil
}

// ClearOverride removes the manual value of the item and recomputes.
func (a *Aggregate) ClearOverride(itemID string) (calculator.Summary, error) {
	key, err := a.keyFor(itemID)
	if err != nil {
		return a.Summary(), err
	}
	delete(a.c.Overrides, key)
	return a.recompute(), nil
}

// AttachEvidence appends an evidence reference. A reference with the same
// digest and linked claim replaces the earlier one.
func (a *Aggregate) AttachEvidence(ref models.EvidenceRef) {
	for i, e := range a.c.Evidence {
		if e.Digest == ref.Digest && e.LinkedClaim == ref.LinkedClaim {
			a.c.Evidence[i] = ref
			return
		}
	}
	a.c.Evidence = append(a.c.Evidence, ref)
}

// DetachEvidence removes the evidence with the given ID.
func (a *Aggregate) DetachEvidence(id string) bool {
	for i, e := range a.c.Evidence {
		if e.ID == id {
			a.c.Evidence = append(a.c.Evidence[:i], a.c.Evidence[i+1:]...)
			return true
		}
	}
	return false
}

// PositionalOverrides translates the key-based overrides to item IDs.
func (a *Aggregate) PositionalOverrides() calculator.Overrides {
	if len(a.c.Overrides) == 0 {
		return nil
	}
	out := make(calculator.Overrides, len(a.c.Overrides))
	for i, cl := range a.c.Claims {
		if v, ok := a.c.Overrides[cl.Key]; ok {
			out[calculator.ItemID(i)] = v
		}
	}
	return out
}

func (a *Aggregate) recompute() calculator.Summary {
	claims := make([]calculator.Claim, len(a.c.Claims))
	for i, cl := range a.c.Claims {
		claims[i] = cl.Calculation()
	}
	sum := calculator.Compute(a.c.Facts.Calculation(), claims, a.PositionalOverrides())
	a.c.Calculations = &sum
	a.c.Value = sum.TotalOverall
	return sum
}

func (a *Aggregate) keyFor(itemID string) (string, error) {
	for i, cl := range a.c.Claims {
		if calculator.ItemID(i) == itemID {
			return cl.Key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
}

func (a *Aggregate) pruneOverrides() {
	if len(a.c.Overrides) == 0 {
		return
	}
	live := make(map[string]bool, len(a.c.Claims))
	for _, cl := range a.c.Claims {
		live[cl.Key] = true
	}
	for key := range a.c.Overrides {
		if !live[key] {
			delete(a.c.Overrides, key)
		}
	}
}

func normalizeClaims(existing, incoming []models.ClaimSelection) []models.ClaimSelection {
	keyByType := make(map[string]string, len(existing))
	for _, cl := range existing {
		if cl.Key != "" {
			keyByType[cl.Type] = cl.Key
		}
	}

	out := make([]models.ClaimSelection, 0, len(incoming))
	seenType := make(map[string]bool, len(incoming))
	seenKey := make(map[string]bool, len(incoming))
	for _, cl := range incoming {
		cl.Type = strings.TrimSpace(cl.Type)
		if cl.Type == "" || seenType[cl.Type] {
			continue
		}
		if cl.Key == "" || seenKey[cl.Key] {
			cl.Key = keyByType[cl.Type]
		}
		if cl.Key == "" || seenKey[cl.Key] {
			cl.Key = uuid.New().String()
		}
		seenType[cl.Type] = true
		seenKey[cl.Key] = true
		out = append(out, cl)
	}
	return out
}

// Title derives a case title from the parties.
func Title(q models.Qualification) string {
	claimant := strings.TrimSpace(q.ClaimantName)
	defendant := strings.TrimSpace(q.DefendantName)
	switch {
	case claimant != "" && defendant != "":
		return claimant + " x " + defendant
	case claimant != "":
		return claimant
	case defendant != "":
		return "Reclamação contra " + defendant
	}
	return "Novo caso"
}

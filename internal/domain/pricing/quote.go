package pricing

import (
	"math"

	"clearlot/internal/domain/entities"
)

// Overrides carries the fields an operations reviewer chose to set explicitly.
// Nil/empty fields fall back to estimate-derived defaults or the fixed
// templates below.

type Overrides struct {
	FinalPrice         *float64
	DepositAmount      *float64
	ScopeOfWork        []string
	CompletionTimeline string
	CancellationTerms  string
}

const depositRate = 0.3

const (
	DefaultCompletionTimeline = "Completed within 2-3 business days of the scheduled date"
	DefaultCancellationTerms  = "Free cancellation until the deposit is paid; the deposit is non-refundable once it clears"
)

var defaultScopeOfWork = []string{
	"Removal of all agreed items and debris from the property",
	"Loading, transport and licensed disposal",
	"Broom-clean sweep of cleared areas",
}

// DeriveClientQuote combines the internal estimate with reviewer overrides
// into the client-facing quote draft. Deterministic and side-effect-free:
// re-running a review with the same overrides yields the same draft. Sent and
// validity timestamps are stamped later, when the quote is actually sent.
func DeriveClientQuote(estimate entities.InternalEstimate, overrides Overrides) entities.ClientQuote {
	finalPrice := estimate.SuggestedPriceRange.Recommended
	if overrides.FinalPrice != nil {
		finalPrice = *overrides.FinalPrice
	}

	deposit := math.Round(finalPrice * depositRate)
	if overrides.DepositAmount != nil {
		deposit = *overrides.DepositAmount
	}

	scope := defaultScopeOfWork
	if len(overrides.ScopeOfWork) > 0 {
		scope = overrides.ScopeOfWork
	}

	timeline := DefaultCompletionTimeline
	if overrides.CompletionTimeline != "" {
		timeline = overrides.CompletionTimeline
	}

	terms := DefaultCancellationTerms
	if overrides.CancellationTerms != "" {
		terms = overrides.CancellationTerms
	}

	return entities.ClientQuote{
		FixedPrice:         finalPrice,
		DepositAmount:      deposit,
		ScopeOfWork:        append([]string(nil), scope...),
		CompletionTimeline: timeline,
		CancellationTerms:  terms,
	}
}

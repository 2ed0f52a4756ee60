package services

import (
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/utils"
)

// BaseFare is the fixed price of a full-trip ride before the distance-based
// refund is taken off.
const BaseFare = 15.00

// Settlement is the outcome of settling one booking leg. Cost plus
// RefundedCredit equals BaseFare whenever both stops resolved.
type Settlement struct {
	Cost           float64
	RefundedCredit float64
}

// HopDistance returns the absolute difference of the two stops' positions
// within the itinerary. Direction-agnostic.
func HopDistance(it repositories.Itinerary, startStop, endStop string) (int, bool) {
	startOrder, okStart := it.PositionOf(startStop)
	endOrder, okEnd := it.PositionOf(endStop)
	if !okStart || !okEnd {
		return 0, false
	}
	d := endOrder - startOrder
	if d < 0 {
		d = -d
	}
	return d, true
}

// SettleLeg derives cost and refundable credit for one booking leg from the
// trip's itinerary. When either stop is not part of the itinerary the
// booking settles at the full base fare with no refund. Cost is not floored:
// a hop distance above the base fare yields a negative cost.
//
// The computation is pure; calling it twice against the same itinerary
// yields identical values.
func SettleLeg(it repositories.Itinerary, startStop, endStop string) Settlement {
	distance, ok := HopDistance(it, startStop, endStop)
	if !ok {
		return Settlement{Cost: BaseFare, RefundedCredit: 0}
	}
	return Settlement{
		Cost:           utils.Round2(BaseFare - float64(distance)),
		RefundedCredit: utils.Round2(float64(distance)),
	}
}

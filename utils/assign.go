package utils

import (
	"github.com/AndreaRizzo/beautyHome-v1/models"
)

// PickOperator selects the best auto-assignment candidate: verified
// operators rank strictly above unverified, then higher rating wins, then
// the lowest operator id breaks exact ties so assignment is deterministic.
// The candidates are assumed to be pre-filtered by city and eligibility.
func PickOperator(candidates []models.OperatorProfile) (models.OperatorProfile, bool) {
	if len(candidates) == 0 {
		return models.OperatorProfile{}, false
	}
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if ranksAbove(candidate, best) {
			best = candidate
		}
	}
	return best, true
}

func ranksAbove(a, b models.OperatorProfile) bool {
	if a.Verified != b.Verified {
		return a.Verified
	}
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.ID < b.ID
}

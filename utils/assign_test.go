package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreaRizzo/beautyHome-v1/models"
)

func TestPickOperatorVerifiedBeatsRating(t *testing.T) {
	verified := models.OperatorProfile{ID: "op-a", Verified: true, Rating: 3.8}
	topRated := models.OperatorProfile{ID: "op-b", Verified: false, Rating: 5.0}

	best, ok := PickOperator([]models.OperatorProfile{topRated, verified})
	require.True(t, ok)
	assert.Equal(t, "op-a", best.ID, "a verified operator outranks any unverified one")
}

func TestPickOperatorRatingWithinTier(t *testing.T) {
	lower := models.OperatorProfile{ID: "op-a", Verified: true, Rating: 4.2}
	higher := models.OperatorProfile{ID: "op-b", Verified: true, Rating: 4.9}

	best, ok := PickOperator([]models.OperatorProfile{lower, higher})
	require.True(t, ok)
	assert.Equal(t, "op-b", best.ID)
}

func TestPickOperatorTieBreaksOnID(t *testing.T) {
	first := models.OperatorProfile{ID: "op-a", Verified: true, Rating: 4.5}
	second := models.OperatorProfile{ID: "op-b", Verified: true, Rating: 4.5}

	best, ok := PickOperator([]models.OperatorProfile{second, first})
	require.True(t, ok)
	assert.Equal(t, "op-a", best.ID, "equal tiers resolve to the lowest id")
}

func TestPickOperatorEmpty(t *testing.T) {
	_, ok := PickOperator(nil)
	assert.False(t, ok)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffersAll(t *testing.T) {
	manicure := Treatment{ID: "t-mani-classic"}
	massage := Treatment{ID: "t-massage-relax"}

	noOfferings := OperatorProfile{ID: "op-a"}
	generalist := OperatorProfile{ID: "op-b", OfferedTreatments: []Treatment{manicure, massage}}
	specialist := OperatorProfile{ID: "op-c", OfferedTreatments: []Treatment{massage}}

	// An operator with no offerings is never eligible, even for an empty
	// requirement.
	assert.False(t, noOfferings.OffersAll(nil))
	assert.False(t, noOfferings.OffersAll([]string{"t-mani-classic"}))

	assert.True(t, generalist.OffersAll(nil))
	assert.True(t, generalist.OffersAll([]string{"t-mani-classic", "t-massage-relax"}))

	assert.True(t, specialist.OffersAll([]string{"t-massage-relax"}))
	assert.False(t, specialist.OffersAll([]string{"t-massage-relax", "t-mani-classic"}))
}

func TestOfferedTreatmentIDs(t *testing.T) {
	profile := OperatorProfile{
		OfferedTreatments: []Treatment{{ID: "t-a"}, {ID: "t-b"}},
	}
	assert.Equal(t, []string{"t-a", "t-b"}, profile.OfferedTreatmentIDs())
}

package models

import (
	"time"
)

// OperatorProfile is the service-provider side of a user. Offered treatments
// drive booking eligibility; rating is recomputed nightly from reviews.
type OperatorProfile struct {
	ID                string      `json:"id" gorm:"primaryKey"`
	UserID            string      `json:"user_id" gorm:"uniqueIndex"`
	CityID            string      `json:"city_id"`
	FirstName         string      `json:"first_name"`
	LastName          string      `json:"last_name"`
	OfferedTreatments []Treatment `json:"offered_treatments,omitempty" gorm:"many2many:operator_offered_treatments;"`
	Categories        []Category  `json:"categories,omitempty" gorm:"many2many:operator_categories;"`
	Rating            float64     `json:"rating" gorm:"type:decimal(2,1);default:0"`
	Verified          bool        `json:"verified" gorm:"default:false"`
	Photo             string      `json:"photo"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OfferedTreatmentIDs returns the ids of the loaded offered treatments.
func (p *OperatorProfile) OfferedTreatmentIDs() []string {
	ids := make([]string, 0, len(p.OfferedTreatments))
	for _, t := range p.OfferedTreatments {
		ids = append(ids, t.ID)
	}
	return ids
}

// OffersAll reports whether the operator can fulfil every required treatment.
// An operator with no offerings is never eligible, even when nothing is
// required. An empty requirement only needs at least one offering.
func (p *OperatorProfile) OffersAll(requiredIDs []string) bool {
	if len(p.OfferedTreatments) == 0 {
		return false
	}
	if len(requiredIDs) == 0 {
		return true
	}
	offered := make(map[string]struct{}, len(p.OfferedTreatments))
	for _, t := range p.OfferedTreatments {
		offered[t.ID] = struct{}{}
	}
	for _, id := range requiredIDs {
		if _, ok := offered[id]; !ok {
			return false
		}
	}
	return true
}

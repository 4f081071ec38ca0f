package db

import (
	"errors"

	"github.com/AndreaRizzo/beautyHome-v1/models"
	"gorm.io/gorm"
)

// AvailabilityRepo is the only way the rest of the app touches availability
// windows. Writes go through Upsert keyed by (operator, day), so updating a
// day's schedule replaces the window instead of appending duplicates.
type AvailabilityRepo struct {
	db *gorm.DB
}

func NewAvailabilityRepo(db *gorm.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

// Get returns the operator's windows for a single day, earliest first.
func (r *AvailabilityRepo) Get(operatorID, day string) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := r.db.Where("operator_id = ? AND day = ?", operatorID, day).
		Order("start").
		Find(&windows).Error
	return windows, err
}

// ListByOperator returns every window the operator has declared, ordered by
// day then start time.
func (r *AvailabilityRepo) ListByOperator(operatorID string) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := r.db.Where("operator_id = ?", operatorID).
		Order("day, start").
		Find(&windows).Error
	return windows, err
}

// Upsert replaces the window for (operator, day), creating it when none
// exists. Last write wins.
func (r *AvailabilityRepo) Upsert(operatorID, day, start, end string) (models.AvailabilityWindow, error) {
	var window models.AvailabilityWindow
	err := r.db.Where("operator_id = ? AND day = ?", operatorID, day).First(&window).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		window = models.AvailabilityWindow{
			OperatorID: operatorID,
			Day:        day,
			Start:      start,
			End:        end,
		}
		err = r.db.Create(&window).Error
	case err == nil:
		window.Start = start
		window.End = end
		err = r.db.Save(&window).Error
	}
	return window, err
}

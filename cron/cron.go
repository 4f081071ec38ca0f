package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// StartCronJobs initializes and starts the scheduler for booking reminders
// and rating aggregation
func StartCronJobs() {
	c := cron.New()

	// Run every minute to catch bookings starting in the next hour
	if _, err := c.AddFunc("* * * * *", sendBookingReminders); err != nil {
		log.Fatalf("Failed to add reminder job: %v", err)
	}
	// Recompute operator ratings from reviews nightly
	if _, err := c.AddFunc("30 3 * * *", refreshOperatorRatings); err != nil {
		log.Fatalf("Failed to add rating job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// sendBookingReminders emails customers whose confirmed booking starts in
// about an hour
func sendBookingReminders() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var bookings []models.Booking
	err := db.DB.Preload("User").Preload("Items").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s", booking.ID, booking.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	scheduled := utils.ToRome(booking.ScheduledAt)
	subject := "Promemoria: il tuo appuntamento a domicilio"
	body := fmt.Sprintf(`
		<p>Ciao %s,</p>
		<p>Il tuo appuntamento inizia tra circa un'ora.</p>
		<ul>
			<li><strong>Quando:</strong> %s</li>
			<li><strong>Dove:</strong> %s %s, %s</li>
			<li><strong>Durata:</strong> %d min</li>
			<li><strong>Totale:</strong> %s</li>
		</ul>
		<p>Se devi spostare o annullare, fallo il prima possibile dall'app.</p>
	`, booking.User.FirstName,
		scheduled.Format("02/01/2006 15:04"),
		booking.Address.Street, booking.Address.Number, booking.Address.City,
		booking.TotalDurationMinutes,
		utils.FormatPrice(booking.TotalPrice))

	return utils.SendEmail(booking.User.Email, subject, body)
}

// refreshOperatorRatings recomputes every operator's rating as the average
// of their reviews. Operators without reviews keep their current rating.
func refreshOperatorRatings() {
	type ratingRow struct {
		OperatorID string
		Average    float64
	}

	var rows []ratingRow
	err := db.DB.Model(&models.Review{}).
		Select("operator_id, AVG(rating) as average").
		Group("operator_id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error aggregating ratings: %v", err)
		return
	}

	for _, row := range rows {
		if err := db.DB.Model(&models.OperatorProfile{}).
			Where("id = ?", row.OperatorID).
			Update("rating", row.Average).Error; err != nil {
			log.Printf("Failed to update rating for operator %s: %v", row.OperatorID, err)
		}
	}
	log.Printf("Refreshed ratings for %d operators", len(rows))
}

package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"freshtrack/models"

	"gorm.io/gorm"
)

// AlertBus persists alerts and fans them out over the realtime hub and
// push notifications. Delivery failures never fail the write that
// raised the alert.
type AlertBus struct {
	db   *gorm.DB
	hub  Notifier
	push *PushService
}

func NewAlertBus(db *gorm.DB, hub Notifier, push *PushService) *AlertBus {
	return &AlertBus{db: db, hub: hub, push: push}
}

func (b *AlertBus) emit(userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if err := b.db.Create(a).Error; err != nil {
		// still fan out; a lost alert row must not swallow the warning
		log.Printf("alert persist failed for user %d: %v", userID, err)
	}

	if b.hub != nil {
		b.hub.Broadcast(userID, "alert.created", a)
	}
	if b.push != nil {
		b.push.PushToUser(userID, "FreshTrack", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// EmitAllergenAlert warns the user that a product they just added
// contains something on their allergy list.
func (b *AlertBus) EmitAllergenAlert(userID uint, productName string, matched []string) {
	msg := fmt.Sprintf("%s contains %s from your allergy list", productName, strings.Join(matched, ", "))
	b.emit(userID, "warning", msg)
}

func (b *AlertBus) List(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := b.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

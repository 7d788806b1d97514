package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"freshtrack/models"
	"freshtrack/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductLookup is the slice of OpenFoodFactsService the inventory
// needs; tests substitute a fake.
type ProductLookup interface {
	Lookup(ctx context.Context, barcode string) (*ProductInfo, error)
}

// InventoryService owns the per-user ingredient collection. Every
// successful write broadcasts the full new snapshot and kicks off a
// suggestion refresh; reads never trigger network calls.
type InventoryService struct {
	db          *gorm.DB
	lookup      ProductLookup
	suggestions *SuggestionService
	hub         Notifier
	alerts      *AlertBus
}

func NewInventoryService(db *gorm.DB, lookup ProductLookup, suggestions *SuggestionService, hub Notifier, alerts *AlertBus) *InventoryService {
	return &InventoryService{
		db:          db,
		lookup:      lookup,
		suggestions: suggestions,
		hub:         hub,
		alerts:      alerts,
	}
}

func (s *InventoryService) List(userID uint) ([]models.Ingredient, error) {
	if userID == 0 {
		// Unauthenticated callers see an empty set; no query is issued.
		return []models.Ingredient{}, nil
	}
	var items []models.Ingredient
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Names returns the display names of the user's ingredients in
// inventory order, the shape the suggestion fetcher consumes.
func (s *InventoryService) Names(userID uint) ([]string, error) {
	items, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names, nil
}

// Add upserts an ingredient by (user, identifier). Records are
// replaced whole, never patched field by field.
func (s *InventoryService) Add(userID uint, identifier, name, brand string, allergens []string, sourceBarcode string) (*models.Ingredient, error) {
	if userID == 0 {
		return nil, fmt.Errorf("not authenticated")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("ingredient name is required")
	}
	if identifier == "" {
		identifier = uuid.NewString()
	}

	row := models.Ingredient{
		UserID:        userID,
		Identifier:    identifier,
		Name:          name,
		Brand:         brand,
		Allergens:     toJSONArray(allergens),
		SourceBarcode: sourceBarcode,
	}

	// Assign with a map so emptied fields overwrite; a struct Assign
	// skips zero values and would merge instead of replace.
	var existing models.Ingredient
	err := s.db.
		Where("user_id = ? AND identifier = ?", userID, identifier).
		Assign(map[string]interface{}{
			"name":           row.Name,
			"brand":          row.Brand,
			"allergens":      row.Allergens,
			"source_barcode": row.SourceBarcode,
		}).
		FirstOrCreate(&existing, models.Ingredient{UserID: userID, Identifier: identifier}).Error
	if err != nil {
		return nil, err
	}

	s.afterWrite(userID)
	return &existing, nil
}

// AddManual creates an ingredient with a fresh UUID identifier, the
// way the app's manual-entry form does.
func (s *InventoryService) AddManual(userID uint, name, brand, allergensText string) (*models.Ingredient, error) {
	var allergens []string
	for _, a := range strings.Split(allergensText, ",") {
		if t := strings.TrimSpace(a); t != "" {
			allergens = append(allergens, t)
		}
	}
	return s.Add(userID, uuid.NewString(), name, brand, allergens, "")
}

// Remove deletes by identifier. An unknown identifier is a silent
// no-op: nothing is written, broadcast, or refreshed.
func (s *InventoryService) Remove(userID uint, identifier string) error {
	if userID == 0 {
		return nil
	}
	res := s.db.
		Where("user_id = ? AND identifier = ?", userID, identifier).
		Delete(&models.Ingredient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}

	s.afterWrite(userID)
	return nil
}

// ScanBarcode resolves a barcode, stores the raw product record, adds
// the product to the inventory, and raises an allergen alert when the
// product overlaps the user's allergy list. A NotFound lookup writes
// nothing.
func (s *InventoryService) ScanBarcode(ctx context.Context, user *models.User, barcode string) (*ProductInfo, []string, error) {
	product, err := s.lookup.Lookup(ctx, barcode)
	if err != nil {
		return nil, nil, err
	}

	scan := models.ScannedProduct{
		UserID:      user.ID,
		Barcode:     barcode,
		Name:        product.Name,
		Brand:       product.Brand,
		Ingredients: product.Ingredients,
		Allergens:   toJSONArray(product.Allergens),
		Category:    product.Category,
		Quantity:    product.Quantity,
	}
	var existingScan models.ScannedProduct
	err = s.db.
		Where("user_id = ? AND barcode = ?", user.ID, barcode).
		Assign(map[string]interface{}{
			"name":        scan.Name,
			"brand":       scan.Brand,
			"ingredients": scan.Ingredients,
			"allergens":   scan.Allergens,
			"category":    scan.Category,
			"quantity":    scan.Quantity,
		}).
		FirstOrCreate(&existingScan, models.ScannedProduct{UserID: user.ID, Barcode: barcode}).Error
	if err != nil {
		return nil, nil, err
	}

	name := product.Name
	if name == "" {
		name = barcode
	}
	if _, err := s.Add(user.ID, barcode, name, product.Brand, product.Allergens, barcode); err != nil {
		return nil, nil, err
	}

	matched := utils.MatchAllergens(product.Allergens, user.Allergies)
	if len(matched) > 0 && s.alerts != nil {
		s.alerts.EmitAllergenAlert(user.ID, name, matched)
	}

	return product, matched, nil
}

// ScannedProducts lists the user's scan history, newest first.
func (s *InventoryService) ScannedProducts(userID uint) ([]models.ScannedProduct, error) {
	if userID == 0 {
		return []models.ScannedProduct{}, nil
	}
	var rows []models.ScannedProduct
	err := s.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}

// afterWrite pushes the new snapshot to subscribers and re-derives
// suggestions from it. Suggestion fetching is asynchronous; the write
// path never waits on Spoonacular.
func (s *InventoryService) afterWrite(userID uint) {
	items, err := s.List(userID)
	if err != nil {
		return
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, "inventory.updated", items)
	}
	if s.suggestions != nil {
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name)
		}
		s.suggestions.Refresh(userID, names)
	}
}

func toJSONArray(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return datatypes.JSON(b)
}

// FromJSONArray decodes a JSON string-array column; bad data reads as empty.
func FromJSONArray(j datatypes.JSON) []string {
	var out []string
	if len(j) == 0 {
		return out
	}
	_ = json.Unmarshal(j, &out)
	return out
}

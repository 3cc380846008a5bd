package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"courtier_backend/internal/model"
)

// PropertyRepository is the persistence layer for listings.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetAll returns listings most recent first. The id tiebreak keeps the
// order total when two rows share a creation timestamp.
func (r *PropertyRepository) GetAll() ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.Order("created_at DESC, id DESC").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("could not list properties: %w", err)
	}
	return properties, nil
}

func (r *PropertyRepository) GetByID(id string) (*model.Property, error) {
	var property model.Property
	if err := r.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch property %s: %w", id, err)
	}
	return &property, nil
}

func (r *PropertyRepository) Create(property *model.Property) error {
	if err := r.db.Create(property).Error; err != nil {
		return fmt.Errorf("could not create property: %w", err)
	}
	return nil
}

// Update merges the given column values into an existing listing. updated_at
// is refreshed even for an empty patch.
func (r *PropertyRepository) Update(id string, updates map[string]interface{}) (*model.Property, error) {
	property, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates["updated_at"] = time.Now()
	if err := r.db.Model(property).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("could not update property %s: %w", id, err)
	}

	return r.GetByID(id)
}

// Delete reports false when the id did not exist, so a second delete of the
// same listing is a visible no-op rather than an error. Leads keep their
// contact history with the reference nulled; viewings of the listing go with
// it. The cleanup runs in the same transaction so the referential policy
// holds even on drivers that do not enforce the FK constraint tags.
func (r *PropertyRepository) Delete(id string) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Property{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := tx.Model(&model.Lead{}).Where("property_id = ?", id).Update("property_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("property_id = ?", id).Delete(&model.Viewing{}).Error
	})
	if err != nil {
		return false, fmt.Errorf("could not delete property %s: %w", id, err)
	}
	return deleted, nil
}

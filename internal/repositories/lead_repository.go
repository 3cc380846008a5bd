package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"courtier_backend/internal/model"
)

// LeadRepository is the persistence layer for contact form submissions.
type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) GetAll() ([]model.Lead, error) {
	var leads []model.Lead
	if err := r.db.Order("created_at DESC, id DESC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("could not list leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) GetByID(id string) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch lead %s: %w", id, err)
	}
	return &lead, nil
}

func (r *LeadRepository) Create(lead *model.Lead) error {
	if err := r.db.Create(lead).Error; err != nil {
		return fmt.Errorf("could not create lead: %w", err)
	}
	return nil
}

// UpdateStatus sets the status field only. Leads are otherwise immutable
// after creation.
func (r *LeadRepository) UpdateStatus(id string, status model.LeadStatus) (*model.Lead, error) {
	lead, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(lead).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("could not update lead %s status: %w", id, err)
	}

	return r.GetByID(id)
}

func (r *LeadRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&model.Lead{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("could not delete lead %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

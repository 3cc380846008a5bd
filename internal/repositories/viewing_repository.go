package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"courtier_backend/internal/model"
)

// ViewingRepository is the persistence layer for showing requests.
type ViewingRepository struct {
	db *gorm.DB
}

func NewViewingRepository(db *gorm.DB) *ViewingRepository {
	return &ViewingRepository{db: db}
}

func (r *ViewingRepository) GetAll() ([]model.Viewing, error) {
	var viewings []model.Viewing
	if err := r.db.Order("created_at DESC, id DESC").Find(&viewings).Error; err != nil {
		return nil, fmt.Errorf("could not list viewings: %w", err)
	}
	return viewings, nil
}

func (r *ViewingRepository) GetByID(id string) (*model.Viewing, error) {
	var viewing model.Viewing
	if err := r.db.First(&viewing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch viewing %s: %w", id, err)
	}
	return &viewing, nil
}

func (r *ViewingRepository) Create(viewing *model.Viewing) error {
	if err := r.db.Create(viewing).Error; err != nil {
		return fmt.Errorf("could not create viewing: %w", err)
	}
	return nil
}

func (r *ViewingRepository) UpdateStatus(id string, status model.ViewingStatus) (*model.Viewing, error) {
	viewing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(viewing).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("could not update viewing %s status: %w", id, err)
	}

	return r.GetByID(id)
}

func (r *ViewingRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&model.Viewing{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("could not delete viewing %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

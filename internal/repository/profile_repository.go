package repository

import (
	"context"

	"gorm.io/gorm"

	"alumnihub/internal/model"
)

// ProfileRepository defines alumni profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.AlumniProfile) error
	Save(ctx context.Context, profile *model.AlumniProfile) error
	FindByUserID(ctx context.Context, userID uint) (*model.AlumniProfile, error)
	FindByID(ctx context.Context, id uint) (*model.AlumniProfile, error)
	List(ctx context.Context, offset, limit int) ([]model.AlumniProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.AlumniProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Save(ctx context.Context, profile *model.AlumniProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*model.AlumniProfile, error) {
	var profile model.AlumniProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByID loads a profile joined with its owning user's public fields.
func (r *profileRepository) FindByID(ctx context.Context, id uint) (*model.AlumniProfile, error) {
	var profile model.AlumniProfile
	if err := r.db.WithContext(ctx).Preload("User").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context, offset, limit int) ([]model.AlumniProfile, error) {
	var profiles []model.AlumniProfile
	if err := r.db.WithContext(ctx).Preload("User").Offset(offset).Limit(limit).Order("id").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alumnihub/internal/cache"
	"alumnihub/internal/errors"
	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileInput carries the patchable profile fields. Every field is a
// pointer so that an omitted field can be told apart from an explicit
// empty or zero value.
type ProfileInput struct {
	GraduationYear    *int    `json:"graduation_year"`
	Major             *string `json:"major"`
	CurrentPosition   *string `json:"current_position"`
	Company           *string `json:"company"`
	Bio               *string `json:"bio"`
	LinkedInURL       *string `json:"linkedin_url" validate:"omitempty,url"`
	ProfilePictureURL *string `json:"profile_picture_url" validate:"omitempty,url"`
}

// ProfileService handles alumni profile operations.
type ProfileService interface {
	Create(ctx context.Context, owner *model.User, input ProfileInput) (*model.AlumniProfile, error)
	GetMine(ctx context.Context, owner *model.User) (*model.AlumniProfile, error)
	UpdateMine(ctx context.Context, owner *model.User, input ProfileInput) (*model.AlumniProfile, error)
	List(ctx context.Context, offset, limit int) ([]model.AlumniProfile, error)
	GetByID(ctx context.Context, id uint) (*model.AlumniProfile, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	cache *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository, cache *cache.Client) ProfileService {
	return &profileService{repo: repo, cache: cache}
}

func (s *profileService) cacheKey(id uint) string {
	return fmt.Sprintf("profile:%d", id)
}

// Create creates the owner's profile. A user gets at most one.
func (s *profileService) Create(ctx context.Context, owner *model.User, input ProfileInput) (*model.AlumniProfile, error) {
	existing, err := s.repo.FindByUserID(ctx, owner.ID)
	if err == nil && existing != nil {
		return nil, errors.ErrProfileExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check profile existence: %w", err)
	}

	profile := &model.AlumniProfile{
		UserID:            owner.ID,
		GraduationYear:    input.GraduationYear,
		Major:             input.Major,
		CurrentPosition:   input.CurrentPosition,
		Company:           input.Company,
		Bio:               input.Bio,
		LinkedInURL:       input.LinkedInURL,
		ProfilePictureURL: input.ProfilePictureURL,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		// A double-create race loses to the unique index on user_id.
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrProfileExists
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return profile, nil
}

// GetMine returns the owner's profile with the owning user attached.
func (s *profileService) GetMine(ctx context.Context, owner *model.User) (*model.AlumniProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, owner.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	profile.User = owner
	return profile, nil
}

// UpdateMine merges only the fields present in input; nil fields keep their
// prior values.
func (s *profileService) UpdateMine(ctx context.Context, owner *model.User, input ProfileInput) (*model.AlumniProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, owner.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if input.GraduationYear != nil {
		profile.GraduationYear = input.GraduationYear
	}
	if input.Major != nil {
		profile.Major = input.Major
	}
	if input.CurrentPosition != nil {
		profile.CurrentPosition = input.CurrentPosition
	}
	if input.Company != nil {
		profile.Company = input.Company
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.LinkedInURL != nil {
		profile.LinkedInURL = input.LinkedInURL
	}
	if input.ProfilePictureURL != nil {
		profile.ProfilePictureURL = input.ProfilePictureURL
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(profile.ID))
	return profile, nil
}

// List returns a page of profiles joined with their owners.
func (s *profileService) List(ctx context.Context, offset, limit int) ([]model.AlumniProfile, error) {
	return s.repo.List(ctx, offset, limit)
}

// GetByID retrieves a profile by ID with caching.
func (s *profileService) GetByID(ctx context.Context, id uint) (*model.AlumniProfile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.AlumniProfile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, profileCacheTTL)
	}
	return profile, nil
}

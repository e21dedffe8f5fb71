package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/models"
)

// preferenceService handles per-user UI preferences.
type preferenceService struct {
	db *gorm.DB
}

// NewPreferenceService creates a new PreferenceServicer.
func NewPreferenceService(db *gorm.DB) PreferenceServicer {
	return &preferenceService{db: db}
}

// GetTheme returns the stored theme, creating the light default on first read.
func (s *preferenceService) GetTheme(userID string) (models.Theme, error) {
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}

	var pref models.Preference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if err == nil {
		return pref.Theme, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	pref = models.Preference{UserID: userID, Theme: models.ThemeLight}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&pref).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return models.ThemeLight, nil
}

// SetTheme stores theme for the user.
func (s *preferenceService) SetTheme(userID string, theme models.Theme) (models.Theme, error) {
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	if !theme.Valid() {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "theme must be light or dark")
	}

	pref := models.Preference{UserID: userID, Theme: theme}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return theme, nil
}

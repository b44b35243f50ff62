package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/models"
	"github.com/theblakearruda/memory-app-backend/utils"
)

// CreateEnvelopeRequest carries a normal envelope submission
type CreateEnvelopeRequest struct {
	UserID   int64
	PhotoURL string
	Caption  string
	Location string
}

// CreateLegacyEnvelopeRequest carries a backdated envelope submission
type CreateLegacyEnvelopeRequest struct {
	CreateEnvelopeRequest
	LegacyDate string
	LegacyTime string
}

// InterfaceEnvelopeService defines the envelope service interface
type InterfaceEnvelopeService interface {
	CreateEnvelope(ctx context.Context, req *CreateEnvelopeRequest) (*models.Envelope, error)
	CreateLegacyEnvelope(ctx context.Context, req *CreateLegacyEnvelopeRequest) (*models.Envelope, error)
	DeleteEnvelope(id uint) error
	GetAllEnvelopes() ([]models.Envelope, error)
}

// EnvelopeService validates submissions, resolves their effective timestamp,
// runs weather enrichment and persists the final record
type EnvelopeService struct {
	DB      *gorm.DB
	Config  *config.Config
	Weather InterfaceWeatherService
}

// NewEnvelopeService creates a new envelope service
func NewEnvelopeService(db *gorm.DB, cfg *config.Config, weather InterfaceWeatherService) InterfaceEnvelopeService {
	return &EnvelopeService{
		DB:      db,
		Config:  cfg,
		Weather: weather,
	}
}

// CreateEnvelope persists an envelope stamped with the current instant
func (s *EnvelopeService) CreateEnvelope(ctx context.Context, req *CreateEnvelopeRequest) (*models.Envelope, error) {
	return s.create(ctx, req, time.Now().UTC(), false)
}

// CreateLegacyEnvelope persists an envelope backdated to the caller-supplied
// date and optional time. An unparseable date is a validation failure, same
// as a missing photo URL.
func (s *EnvelopeService) CreateLegacyEnvelope(ctx context.Context, req *CreateLegacyEnvelopeRequest) (*models.Envelope, error) {
	date, err := utils.ParseLegacyDate(req.LegacyDate, req.LegacyTime, s.Config.LegacyDateStrict)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return s.create(ctx, &req.CreateEnvelopeRequest, date, true)
}

func (s *EnvelopeService) create(ctx context.Context, req *CreateEnvelopeRequest, date time.Time, isLegacy bool) (*models.Envelope, error) {
	if req.UserID <= 0 {
		return nil, &ValidationError{Message: "valid userid required"}
	}

	photoURL := strings.TrimSpace(req.PhotoURL)
	if photoURL == "" {
		return nil, &ValidationError{Message: "photourl required"}
	}

	location := strings.TrimSpace(req.Location)

	// Best effort: a failed lookup leaves the triple nil and never blocks
	// the creation itself
	weather := s.Weather.GetWeatherForLocation(ctx, location)

	envelope := &models.Envelope{
		UserID:      uint(req.UserID),
		PhotoURL:    photoURL,
		Caption:     strings.TrimSpace(req.Caption),
		Location:    location,
		Date:        date,
		IsLegacy:    isLegacy,
		Weather:     weather.Weather,
		WeatherCode: weather.WeatherCode,
		TempF:       weather.TempF,
	}

	if err := s.DB.Table(s.Config.EnvelopeTable).Create(envelope).Error; err != nil {
		return nil, err
	}

	return envelope, nil
}

// DeleteEnvelope removes at most one envelope by id. Deleting an id that does
// not exist is still a success; the operation is idempotent.
func (s *EnvelopeService) DeleteEnvelope(id uint) error {
	if id == 0 {
		return &ValidationError{Message: "valid id required"}
	}

	return s.DB.Table(s.Config.EnvelopeTable).Where("id = ?", id).Delete(&models.Envelope{}).Error
}

// GetAllEnvelopes returns every envelope, newest effective timestamp first
func (s *EnvelopeService) GetAllEnvelopes() ([]models.Envelope, error) {
	envelopes := []models.Envelope{}
	err := s.DB.Table(s.Config.EnvelopeTable).
		Order(s.Config.EnvelopeOrderColumn + " DESC").
		Find(&envelopes).Error
	if err != nil {
		return nil, err
	}
	return envelopes, nil
}

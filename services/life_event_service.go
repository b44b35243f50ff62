package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/models"
)

// CreateLifeEventRequest carries a life event submission
type CreateLifeEventRequest struct {
	UserID          int64
	Title           string
	Category        string
	EventDate       *time.Time
	Location        string
	Story           string
	CoverURL        string
	AudienceGroupID *uint
}

// InterfaceLifeEventService defines the life event service interface
type InterfaceLifeEventService interface {
	GetLifeEvents(userID int64) ([]models.LifeEvent, error)
	CreateLifeEvent(req *CreateLifeEventRequest) (*models.LifeEvent, error)
}

// LifeEventService manages life-event timeline entries
type LifeEventService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLifeEventService creates a new life event service
func NewLifeEventService(db *gorm.DB, cfg *config.Config) InterfaceLifeEventService {
	return &LifeEventService{
		DB:     db,
		Config: cfg,
	}
}

// GetLifeEvents returns a user's life events, newest first
func (s *LifeEventService) GetLifeEvents(userID int64) ([]models.LifeEvent, error) {
	if userID <= 0 {
		return nil, &ValidationError{Message: "missing userid"}
	}

	events := []models.LifeEvent{}
	err := s.DB.Where("userid = ?", userID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CreateLifeEvent persists a life event. Category defaults to "other",
// optional text fields are stored as NULL when blank.
func (s *LifeEventService) CreateLifeEvent(req *CreateLifeEventRequest) (*models.LifeEvent, error) {
	if req.UserID <= 0 {
		return nil, &ValidationError{Message: "missing userid/title"}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Message: "missing userid/title"}
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "other"
	}

	event := &models.LifeEvent{
		UserID:          uint(req.UserID),
		Title:           title,
		Category:        category,
		EventDate:       req.EventDate,
		Location:        nilIfBlank(req.Location),
		Story:           nilIfBlank(req.Story),
		CoverURL:        nilIfBlank(req.CoverURL),
		AudienceGroupID: req.AudienceGroupID,
	}

	if err := s.DB.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func nilIfBlank(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

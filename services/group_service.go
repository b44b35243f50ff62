package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/models"
)

// DefaultGroupNames are seeded for every new user
var DefaultGroupNames = []string{"friends", "colleagues", "family"}

// GroupMemberInput is one member entry in a create-group request
type GroupMemberInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// InterfaceGroupService defines the group service interface
type InterfaceGroupService interface {
	SeedDefaultGroups(userID int64) error
	GetGroups(userID int64) ([]models.Group, error)
	CreateGroup(userID int64, name string, members []GroupMemberInput) (*models.Group, error)
}

// GroupService manages contact groups and their members
type GroupService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewGroupService creates a new group service
func NewGroupService(db *gorm.DB, cfg *config.Config) InterfaceGroupService {
	return &GroupService{
		DB:     db,
		Config: cfg,
	}
}

// SeedDefaultGroups inserts the default groups for a user, skipping any that
// already exist. The whole batch runs in one transaction.
func (s *GroupService) SeedDefaultGroups(userID int64) error {
	if userID <= 0 {
		return &ValidationError{Message: "missing userid"}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, name := range DefaultGroupNames {
			group := models.Group{
				UserID:    uint(userID),
				Name:      name,
				IsDefault: true,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&group).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetGroups returns a user's groups with members, defaults first then by age
func (s *GroupService) GetGroups(userID int64) ([]models.Group, error) {
	if userID <= 0 {
		return nil, &ValidationError{Message: "missing userid"}
	}

	groups := []models.Group{}
	err := s.DB.Where("userid = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}

	for i := range groups {
		members, err := s.groupMembers(groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Members = members
	}

	return groups, nil
}

func (s *GroupService) groupMembers(groupID uint) ([]models.Person, error) {
	members := []models.Person{}
	err := s.DB.Model(&models.Person{}).
		Joins("JOIN group_members ON group_members.person_id = people.id").
		Where("group_members.group_id = ?", groupID).
		Find(&members).Error
	return members, err
}

// CreateGroup creates a group and its members in one transaction. Member
// entries without a name are skipped; a failure anywhere rolls the whole
// creation back.
func (s *GroupService) CreateGroup(userID int64, name string, members []GroupMemberInput) (*models.Group, error) {
	if userID <= 0 {
		return nil, &ValidationError{Message: "missing userid/name"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "missing userid/name"}
	}

	group := &models.Group{
		UserID:    uint(userID),
		Name:      name,
		IsDefault: false,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		for _, m := range members {
			memberName := strings.TrimSpace(m.Name)
			if memberName == "" {
				continue
			}

			person := models.Person{
				UserID: uint(userID),
				Name:   memberName,
			}
			if contact := strings.TrimSpace(m.Contact); contact != "" {
				person.Contact = &contact
			}
			if err := tx.Create(&person).Error; err != nil {
				return err
			}

			relation := models.GroupMember{
				GroupID:  group.ID,
				PersonID: person.ID,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&relation).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

package services

import (
	"errors"
	"strings"

	"servibook/entity"
	"servibook/repository"

	"gorm.io/gorm"
)

// BusinessService covers the owner-facing business lifecycle plus the
// public catalogue reads.
type BusinessService struct {
	Businesses *repository.BusinessRepository
	Categories *repository.CategoryRepository
}

func NewBusinessService(businesses *repository.BusinessRepository, categories *repository.CategoryRepository) *BusinessService {
	return &BusinessService{Businesses: businesses, Categories: categories}
}

type RegisterBusinessInput struct {
	Name            string
	Description     string
	Address         string
	LogoURL         string
	AppointmentMode string
}

// Register creates the owner's business in draft. One business per owner.
func (s *BusinessService) Register(ownerID uint, in RegisterBusinessInput) (*entity.Business, error) {
	if _, err := s.Businesses.FindByOwnerID(ownerID); err == nil {
		return nil, conflictf("you already have a registered business")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if len(name) < 3 {
		return nil, invalidf("name must be at least 3 characters")
	}
	mode := in.AppointmentMode
	if mode == "" {
		mode = entity.ModeGeneric
	}
	if mode != entity.ModeGeneric && mode != entity.ModePerEmployee {
		return nil, invalidf("appointment mode must be generic or per_employee")
	}

	biz := &entity.Business{
		Name:            name,
		Description:     strings.TrimSpace(in.Description),
		Address:         strings.TrimSpace(in.Address),
		LogoURL:         in.LogoURL,
		Status:          entity.BusinessDraft,
		AppointmentMode: mode,
		OwnerID:         ownerID,
	}
	if err := s.Businesses.Create(biz); err != nil {
		return nil, err
	}
	return biz, nil
}

func (s *BusinessService) MyBusiness(ownerID uint) (*entity.Business, error) {
	biz, err := s.Businesses.FindByOwnerID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	return biz, nil
}

type UpdateBusinessInput struct {
	Name            *string
	Description     *string
	Address         *string
	LogoURL         *string
	AppointmentMode *string
	Photos          []string
	Categories      []string
}

// Update applies a partial update to the owner's business.
func (s *BusinessService) Update(ownerID uint, in UpdateBusinessInput) (*entity.Business, error) {
	biz, err := s.Businesses.FindByOwnerID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(name) < 3 {
			return nil, invalidf("name must be at least 3 characters")
		}
		biz.Name = name
	}
	if in.Description != nil {
		biz.Description = strings.TrimSpace(*in.Description)
	}
	if in.Address != nil {
		biz.Address = strings.TrimSpace(*in.Address)
	}
	if in.LogoURL != nil {
		biz.LogoURL = *in.LogoURL
	}
	if in.AppointmentMode != nil {
		if *in.AppointmentMode != entity.ModeGeneric && *in.AppointmentMode != entity.ModePerEmployee {
			return nil, invalidf("appointment mode must be generic or per_employee")
		}
		biz.AppointmentMode = *in.AppointmentMode
	}
	if err := s.Businesses.Save(biz); err != nil {
		return nil, err
	}

	if in.Photos != nil {
		if err := s.Businesses.ReplacePhotos(biz.ID, in.Photos); err != nil {
			return nil, err
		}
	}
	if in.Categories != nil {
		cats, err := s.Categories.FindByNames(in.Categories)
		if err != nil {
			return nil, err
		}
		if len(cats) != len(in.Categories) {
			return nil, invalidf("unknown category in list")
		}
		if err := s.Businesses.SetCategories(biz, cats); err != nil {
			return nil, err
		}
	}

	return s.Businesses.FindByID(biz.ID)
}

// Publish makes the business visible to customers.
func (s *BusinessService) Publish(ownerID uint) (*entity.Business, error) {
	biz, err := s.Businesses.FindByOwnerID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.Businesses.UpdateStatus(biz.ID, entity.BusinessPublished); err != nil {
		return nil, err
	}
	return s.Businesses.FindByID(biz.ID)
}

func (s *BusinessService) ListPublished() ([]entity.Business, error) {
	return s.Businesses.FindPublished()
}

func (s *BusinessService) GetByID(id uint) (*entity.Business, error) {
	biz, err := s.Businesses.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return biz, nil
}

type ScheduleDayInput struct {
	Weekday             string `json:"weekday"`
	IsActive            bool   `json:"isActive"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	CapacityPerSlot     int    `json:"capacityPerSlot"`
}

// UpdateSchedule replaces the weekly timetable. Validation is eager: an
// active day must have a sane window, duration and capacity. The slot
// generator still guards at read time, so rows written before this rule
// existed simply resolve to zero availability.
func (s *BusinessService) UpdateSchedule(ownerID uint, days []ScheduleDayInput) (*entity.Business, error) {
	biz, err := s.Businesses.FindByOwnerID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}

	seen := map[string]bool{}
	rows := make([]entity.Schedule, 0, len(days))
	for _, d := range days {
		weekday := strings.ToLower(strings.TrimSpace(d.Weekday))
		if !isWeekday(weekday) {
			return nil, invalidf("unknown weekday %q", d.Weekday)
		}
		if seen[weekday] {
			return nil, invalidf("duplicate weekday %q", weekday)
		}
		seen[weekday] = true

		if d.IsActive {
			open, okOpen := ParseClock(d.OpenTime)
			closeAt, okClose := ParseClock(d.CloseTime)
			if !okOpen || !okClose {
				return nil, invalidf("%s: times must be HH:MM", weekday)
			}
			if closeAt <= open {
				return nil, invalidf("%s: open time must be before close time", weekday)
			}
			if d.SlotDurationMinutes <= 0 {
				return nil, invalidf("%s: slot duration must be positive", weekday)
			}
			if d.CapacityPerSlot <= 0 {
				return nil, invalidf("%s: capacity per slot must be positive", weekday)
			}
		}

		rows = append(rows, entity.Schedule{
			Weekday:             weekday,
			IsActive:            d.IsActive,
			OpenTime:            d.OpenTime,
			CloseTime:           d.CloseTime,
			SlotDurationMinutes: d.SlotDurationMinutes,
			CapacityPerSlot:     d.CapacityPerSlot,
		})
	}

	if err := s.Businesses.ReplaceSchedule(biz.ID, rows); err != nil {
		return nil, err
	}
	return s.Businesses.FindByID(biz.ID)
}

func isWeekday(s string) bool {
	for _, w := range entity.Weekdays {
		if w == s {
			return true
		}
	}
	return false
}

package services

import (
	"errors"
	"strings"

	"servibook/entity"
	"servibook/repository"

	"gorm.io/gorm"
)

// CategoryService handles the public category list, admin creation and the
// owner request/approve flow.
type CategoryService struct {
	Categories *repository.CategoryRepository
	Requests   *repository.CategoryRequestRepository
}

func NewCategoryService(categories *repository.CategoryRepository, requests *repository.CategoryRequestRepository) *CategoryService {
	return &CategoryService{Categories: categories, Requests: requests}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Categories.FindAll()
}

// Create adds a category directly (admin). Duplicate names conflict.
func (s *CategoryService) Create(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("name is required")
	}

	if _, err := s.Categories.FindByName(name); err == nil {
		return nil, conflictf("a category with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat := &entity.Category{Name: name}
	if err := s.Categories.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Request files an owner's proposal for a new category.
func (s *CategoryService) Request(ownerID uint, name, reason, evidenceURL string) (*entity.CategoryRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("category name is required")
	}
	if len(name) > 50 {
		return nil, invalidf("category name is too long")
	}
	if len(reason) > 500 {
		return nil, invalidf("reason is too long")
	}

	req := &entity.CategoryRequest{
		OwnerID:      ownerID,
		CategoryName: name,
		Reason:       strings.TrimSpace(reason),
		EvidenceURL:  evidenceURL,
		Status:       entity.RequestPending,
	}
	if err := s.Requests.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *CategoryService) PendingRequests() ([]entity.CategoryRequest, error) {
	return s.Requests.FindPending()
}

// ApproveRequest approves the proposal and creates the category if new.
func (s *CategoryService) ApproveRequest(requestID uint) (*entity.Category, error) {
	req, err := s.Requests.FindByID(requestID)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Status != entity.RequestPending {
		return nil, conflictf("request is not pending")
	}
	return s.Requests.ApproveAndCreateCategory(req)
}

package services

import (
	"servibook/entity"
	"servibook/repository"
)

// OwnerApplicationService is the admin side of the owner request flow.
type OwnerApplicationService struct {
	Applications *repository.OwnerApplicationRepository
	Users        *repository.UserRepository
}

func NewOwnerApplicationService(applications *repository.OwnerApplicationRepository, users *repository.UserRepository) *OwnerApplicationService {
	return &OwnerApplicationService{Applications: applications, Users: users}
}

func (s *OwnerApplicationService) List(status string) ([]entity.OwnerApplication, error) {
	if status == "" {
		status = entity.RequestPending
	}
	return s.Applications.FindByStatus(status)
}

// Approve promotes the applicant to owner.
func (s *OwnerApplicationService) Approve(applicationID uint) (*entity.OwnerApplication, error) {
	app, err := s.Applications.FindByID(applicationID)
	if err != nil {
		return nil, ErrNotFound
	}
	if app.Status != entity.RequestPending {
		return nil, conflictf("application is not pending")
	}
	if err := s.Applications.ApproveAndPromote(app); err != nil {
		return nil, err
	}
	app.Status = entity.RequestApproved
	return app, nil
}

func (s *OwnerApplicationService) Reject(applicationID uint) (*entity.OwnerApplication, error) {
	app, err := s.Applications.FindByID(applicationID)
	if err != nil {
		return nil, ErrNotFound
	}
	if app.Status != entity.RequestPending {
		return nil, conflictf("application is not pending")
	}
	if err := s.Applications.UpdateStatus(app, entity.RequestRejected); err != nil {
		return nil, err
	}
	app.Status = entity.RequestRejected
	return app, nil
}

// Owners lists every user with the owner role (admin view).
func (s *OwnerApplicationService) Owners() ([]entity.User, error) {
	return s.Users.FindByRole(entity.RoleOwner)
}

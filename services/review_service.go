package services

import (
	"math"
	"strings"
	"time"

	"servibook/entity"
)

type ReviewStore interface {
	Create(rev *entity.Review) error
	FindByID(id uint) (*entity.Review, error)
	FindByBusiness(businessID uint) ([]entity.Review, error)
	Save(rev *entity.Review) error
	Delete(id uint) error
	Aggregate(businessID uint) (avg float64, count int, err error)
}

type ReviewAppointments interface {
	FindByID(id uint) (*entity.Appointment, error)
	LatestAttended(userID, businessID uint, now time.Time) (*entity.Appointment, error)
}

type RatedBusinesses interface {
	FindByID(id uint) (*entity.Business, error)
	UpdateRating(businessID uint, avg float64, count int) error
}

// ReviewService ties reviews to attended appointments and keeps the
// business's denormalized rating in sync.
type ReviewService struct {
	Reviews      ReviewStore
	Appointments ReviewAppointments
	Businesses   RatedBusinesses

	Now func() time.Time
}

func NewReviewService(reviews ReviewStore, appointments ReviewAppointments, businesses RatedBusinesses) *ReviewService {
	return &ReviewService{Reviews: reviews, Appointments: appointments, Businesses: businesses}
}

func (s *ReviewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ReviewService) ListForBusiness(businessID uint) ([]entity.Review, error) {
	return s.Reviews.FindByBusiness(businessID)
}

// Eligibility reports whether the user has any attended appointment with
// the business, and which one a new review would attach to.
func (s *ReviewService) Eligibility(userID, businessID uint) (bool, uint, error) {
	appt, err := s.Appointments.LatestAttended(userID, businessID, s.now())
	if err != nil {
		return false, 0, err
	}
	if appt == nil {
		return false, 0, nil
	}
	return true, appt.ID, nil
}

type CreateReviewInput struct {
	BusinessID    uint
	AppointmentID uint // optional; resolved to the latest attended one
	Rating        int
	Comment       string
}

// Create adds a review. Multiple reviews per business are allowed; each one
// must reference an owned, past, non-cancelled appointment of that business.
func (s *ReviewService) Create(userID uint, in CreateReviewInput) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}

	appointmentID := in.AppointmentID
	if appointmentID == 0 {
		appt, err := s.Appointments.LatestAttended(userID, in.BusinessID, s.now())
		if err != nil {
			return nil, err
		}
		if appt == nil {
			return nil, invalidf("no eligible appointment with this business")
		}
		appointmentID = appt.ID
	} else {
		appt, err := s.Appointments.FindByID(appointmentID)
		if err != nil || appt.UserID != userID || appt.BusinessID != in.BusinessID {
			return nil, invalidf("appointment is not valid for this business")
		}
		if appt.Status == entity.AppointmentCancelled {
			return nil, invalidf("cancelled appointments cannot be reviewed")
		}
		if appt.AppointmentTime.UTC().After(s.now().UTC()) {
			return nil, invalidf("you can only review after your appointment")
		}
	}

	rev := &entity.Review{
		BusinessID:    in.BusinessID,
		AppointmentID: appointmentID,
		UserID:        userID,
		Rating:        in.Rating,
		Comment:       strings.TrimSpace(in.Comment),
	}
	if err := s.Reviews.Create(rev); err != nil {
		return nil, err
	}

	if err := s.recomputeRating(in.BusinessID); err != nil {
		return nil, err
	}
	return rev, nil
}

// Update edits the author's own review.
func (s *ReviewService) Update(userID, reviewID uint, rating *int, comment *string) (*entity.Review, error) {
	rev, err := s.Reviews.FindByID(reviewID)
	if err != nil || rev.UserID != userID {
		return nil, ErrNotFound
	}

	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return nil, invalidf("rating must be between 1 and 5")
		}
		rev.Rating = *rating
	}
	if comment != nil {
		rev.Comment = strings.TrimSpace(*comment)
	}
	if err := s.Reviews.Save(rev); err != nil {
		return nil, err
	}

	if err := s.recomputeRating(rev.BusinessID); err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete removes the author's own review.
func (s *ReviewService) Delete(userID, reviewID uint) error {
	rev, err := s.Reviews.FindByID(reviewID)
	if err != nil || rev.UserID != userID {
		return ErrNotFound
	}
	if err := s.Reviews.Delete(rev.ID); err != nil {
		return err
	}
	return s.recomputeRating(rev.BusinessID)
}

// Reply stores the single owner/admin reply on a review.
func (s *ReviewService) Reply(userID uint, userRole string, reviewID uint, content string) (*entity.Review, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalidf("reply content is required")
	}

	rev, err := s.Reviews.FindByID(reviewID)
	if err != nil {
		return nil, ErrNotFound
	}

	role := ""
	if userRole == entity.RoleAdmin {
		role = entity.ReplyRoleAdmin
	} else {
		biz, err := s.Businesses.FindByID(rev.BusinessID)
		if err == nil && biz.OwnerID == userID {
			role = entity.ReplyRoleOwner
		}
	}
	if role == "" {
		return nil, ErrForbidden
	}

	now := s.now()
	rev.ReplyAuthorRole = role
	rev.ReplyAuthorID = &userID
	rev.ReplyContent = content
	rev.RepliedAt = &now
	if err := s.Reviews.Save(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// recomputeRating refreshes the denormalized aggregate on the business.
// Average is rounded to one decimal for display.
func (s *ReviewService) recomputeRating(businessID uint) error {
	avg, count, err := s.Reviews.Aggregate(businessID)
	if err != nil {
		return err
	}
	return s.Businesses.UpdateRating(businessID, math.Round(avg*10)/10, count)
}

package service

import (
	"context"

	"wedding-rsvp/internal/model"
	"wedding-rsvp/internal/repository"
	apperrors "wedding-rsvp/pkg/app_errors"
)

type RSVPService interface {
	Create(ctx context.Context, req model.CreateRSVPRequest) (*model.RSVP, error)
	List(ctx context.Context) ([]*model.RSVP, error)
	GetByID(ctx context.Context, id int) (*model.RSVP, error)
	Update(ctx context.Context, id int, params model.UpdateRSVPParams) (*model.RSVP, error)
	Delete(ctx context.Context, id int) (*model.RSVP, error)
	Stats(ctx context.Context) ([]*model.AttendanceStats, error)
}

type RSVPServiceImpl struct {
	repo repository.RSVPRepository
}

func NewRSVPService(repo repository.RSVPRepository) RSVPService {
	return &RSVPServiceImpl{repo: repo}
}

// normalizeOptional maps empty strings to absent so optional columns
// stay NULL instead of holding "".
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (s *RSVPServiceImpl) Create(ctx context.Context, req model.CreateRSVPRequest) (*model.RSVP, error) {
	if !req.Attendance.IsValid() {
		return nil, apperrors.ErrInvalidAttendance
	}

	guestCount := req.GuestCount
	if guestCount <= 0 {
		guestCount = 1
	}

	rsvp := &model.RSVP{
		Name:                req.Name,
		Email:               req.Email,
		Attendance:          req.Attendance,
		GuestCount:          guestCount,
		DietaryRestrictions: normalizeOptional(req.DietaryRestrictions),
		Message:             normalizeOptional(req.Message),
	}
	return s.repo.Create(ctx, rsvp)
}

func (s *RSVPServiceImpl) List(ctx context.Context) ([]*model.RSVP, error) {
	return s.repo.List(ctx)
}

func (s *RSVPServiceImpl) GetByID(ctx context.Context, id int) (*model.RSVP, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RSVPServiceImpl) Update(ctx context.Context, id int, params model.UpdateRSVPParams) (*model.RSVP, error) {
	if params.Attendance != nil && !params.Attendance.IsValid() {
		return nil, apperrors.ErrInvalidAttendance
	}
	return s.repo.Update(ctx, id, params)
}

func (s *RSVPServiceImpl) Delete(ctx context.Context, id int) (*model.RSVP, error) {
	return s.repo.Delete(ctx, id)
}

func (s *RSVPServiceImpl) Stats(ctx context.Context) ([]*model.AttendanceStats, error) {
	return s.repo.Stats(ctx)
}

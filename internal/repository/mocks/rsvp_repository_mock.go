package mocks

import (
	"context"

	"wedding-rsvp/internal/model"

	"github.com/stretchr/testify/mock"
)

type RSVPRepositoryMock struct {
	mock.Mock
}

func NewRSVPRepositoryMock() *RSVPRepositoryMock {
	return &RSVPRepositoryMock{}
}

func (m *RSVPRepositoryMock) Create(ctx context.Context, rsvp *model.RSVP) (*model.RSVP, error) {
	args := m.Called(ctx, rsvp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPRepositoryMock) List(ctx context.Context) ([]*model.RSVP, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RSVP), args.Error(1)
}

func (m *RSVPRepositoryMock) FindByID(ctx context.Context, id int) (*model.RSVP, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPRepositoryMock) Update(ctx context.Context, id int, params model.UpdateRSVPParams) (*model.RSVP, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPRepositoryMock) Delete(ctx context.Context, id int) (*model.RSVP, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPRepositoryMock) Stats(ctx context.Context) ([]*model.AttendanceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AttendanceStats), args.Error(1)
}

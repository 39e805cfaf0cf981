package mocks

import (
	"context"

	"wedding-rsvp/internal/model"

	"github.com/stretchr/testify/mock"
)

type RSVPServiceMock struct {
	mock.Mock
}

func NewRSVPServiceMock() *RSVPServiceMock {
	return &RSVPServiceMock{}
}

func (m *RSVPServiceMock) Create(ctx context.Context, req model.CreateRSVPRequest) (*model.RSVP, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPServiceMock) List(ctx context.Context) ([]*model.RSVP, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RSVP), args.Error(1)
}

func (m *RSVPServiceMock) GetByID(ctx context.Context, id int) (*model.RSVP, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPServiceMock) Update(ctx context.Context, id int, params model.UpdateRSVPParams) (*model.RSVP, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPServiceMock) Delete(ctx context.Context, id int) (*model.RSVP, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPServiceMock) Stats(ctx context.Context) ([]*model.AttendanceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AttendanceStats), args.Error(1)
}

// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

type MockItinerariesRepositoryInterface struct {
	mock.Mock
}

func (m *MockItinerariesRepositoryInterface) Save(ctx context.Context, itinerary *model.SavedItinerary) error {
	args := m.Called(ctx, itinerary)
	return args.Error(0)
}

func (m *MockItinerariesRepositoryInterface) Get(ctx context.Context, id string) (*model.SavedItinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedItinerary), args.Error(1)
}

func (m *MockItinerariesRepositoryInterface) List(ctx context.Context, limit int) ([]model.SavedItinerary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedItinerary), args.Error(1)
}

func (m *MockItinerariesRepositoryInterface) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

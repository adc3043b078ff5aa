// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetPlaces(ctx context.Context) ([]model.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Place), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) SavePlace(ctx context.Context, place model.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) DeletePlace(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) GetAccommodations(ctx context.Context) ([]model.Accommodation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Accommodation), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) SaveAccommodation(ctx context.Context, acc model.Accommodation) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) DeleteAccommodation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) GetConstants(ctx context.Context) (model.Constants, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Constants), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) SaveConstants(ctx context.Context, constants model.Constants) error {
	args := m.Called(ctx, constants)
	return args.Error(0)
}

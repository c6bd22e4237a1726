package service

import (
	"context"
	"testing"

	"dinehub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMenuService_Create_DefaultsDiscountedPrice(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockMenuRepo := new(MockMenuRepository)
	mockCategoryRepo := new(MockCategoryRepository)

	svc := NewMenuService(mockMenuRepo, mockCategoryRepo, logger)

	mockMenuRepo.On("Create", ctx, mock.AnythingOfType("*model.MenuItem")).Return(nil)

	item, err := svc.Create(ctx, &model.MenuItem{
		Name:         "Masala Dosa",
		MainPrice:    120,
		Availability: true,
		Veg:          true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 120.0, item.DiscountedPrice)
	assert.False(t, item.IsDeleted)
	mockMenuRepo.AssertExpectations(t)
}

func TestMenuService_Create_KeepsExplicitDiscount(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockMenuRepo := new(MockMenuRepository)
	mockCategoryRepo := new(MockCategoryRepository)

	svc := NewMenuService(mockMenuRepo, mockCategoryRepo, logger)

	mockMenuRepo.On("Create", ctx, mock.AnythingOfType("*model.MenuItem")).Return(nil)

	item, err := svc.Create(ctx, &model.MenuItem{
		Name:            "Masala Dosa",
		MainPrice:       120,
		DiscountedPrice: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, 99.0, item.DiscountedPrice)
}

func TestMenuService_Create_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		item *model.MenuItem
	}{
		{name: "missing name", item: &model.MenuItem{MainPrice: 10}},
		{name: "negative main price", item: &model.MenuItem{Name: "X", MainPrice: -1}},
		{name: "negative discounted price", item: &model.MenuItem{Name: "X", MainPrice: 10, DiscountedPrice: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMenuRepo := new(MockMenuRepository)
			mockCategoryRepo := new(MockCategoryRepository)

			svc := NewMenuService(mockMenuRepo, mockCategoryRepo, logger)

			item, err := svc.Create(ctx, tt.item)

			assert.Nil(t, item)
			assert.Error(t, err)
			mockMenuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMenuService_Create_UnknownCategory(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockMenuRepo := new(MockMenuRepository)
	mockCategoryRepo := new(MockCategoryRepository)

	svc := NewMenuService(mockMenuRepo, mockCategoryRepo, logger)

	mockCategoryRepo.On("GetByID", ctx, "cat-1").Return(nil, model.ErrCategoryNotFound)

	item, err := svc.Create(ctx, &model.MenuItem{
		Name:       "Masala Dosa",
		MainPrice:  120,
		CategoryID: "cat-1",
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
	mockMenuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuService_Update_PreservesIdentity(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockMenuRepo := new(MockMenuRepository)
	mockCategoryRepo := new(MockCategoryRepository)

	svc := NewMenuService(mockMenuRepo, mockCategoryRepo, logger)

	existing := &model.MenuItem{ID: "item-1", Name: "Old Name", MainPrice: 100}
	mockMenuRepo.On("GetByID", ctx, "item-1").Return(existing, nil)
	mockMenuRepo.On("Update", ctx, mock.AnythingOfType("*model.MenuItem")).Return(nil)

	item, err := svc.Update(ctx, "item-1", &model.MenuItem{Name: "New Name", MainPrice: 110})

	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "New Name", item.Name)
	assert.Equal(t, 110.0, item.DiscountedPrice)
}

func TestMenuService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockMenuRepo := new(MockMenuRepository)
	mockCategoryRepo := new(MockCategoryRepository)

	svc := NewMenuService(mockMenuRepo, mockCategoryRepo, logger)

	mockMenuRepo.On("SoftDelete", ctx, "item-1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "item-1"))
	mockMenuRepo.AssertExpectations(t)
}

package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glammyapp/salon-service/internal/domain"
	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
	"github.com/glammyapp/salon-service/internal/service/catalog/models"
	"github.com/glammyapp/salon-service/pkg/ptr"
)

type stubRepo struct {
	createdService *domain.Service
	createdStaff   *domain.Staff
	deleteErr      error
	updateErr      error
}

func (s *stubRepo) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	return nil, nil
}

func (s *stubRepo) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return nil, catalogRepo.ErrCategoryNotFound
}

func (s *stubRepo) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: "Hair", Slug: "hair"}, nil
}

func (s *stubRepo) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	c.ID = 1
	return c, nil
}

func (s *stubRepo) UpdateCategory(ctx context.Context, c *domain.Category) error {
	return s.updateErr
}

func (s *stubRepo) DeleteCategory(ctx context.Context, id int64) error {
	return s.deleteErr
}

func (s *stubRepo) ListServices(ctx context.Context, categoryID *int64, activeOnly bool) ([]*domain.Service, error) {
	return nil, nil
}

func (s *stubRepo) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	if s.createdService != nil {
		return s.createdService, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (s *stubRepo) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	svc.ID = 7
	s.createdService = svc
	return svc, nil
}

func (s *stubRepo) UpdateService(ctx context.Context, svc *domain.Service) error {
	s.createdService = svc
	return s.updateErr
}

func (s *stubRepo) DeleteService(ctx context.Context, id int64) error {
	return s.deleteErr
}

func (s *stubRepo) ListStaff(ctx context.Context, serviceID *int64, activeOnly bool) ([]*domain.Staff, error) {
	return nil, nil
}

func (s *stubRepo) GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error) {
	if s.createdStaff != nil {
		return s.createdStaff, nil
	}
	return nil, catalogRepo.ErrStaffNotFound
}

func (s *stubRepo) CreateStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	staff.ID = 3
	s.createdStaff = staff
	return staff, nil
}

func (s *stubRepo) UpdateStaff(ctx context.Context, staff *domain.Staff) error {
	s.createdStaff = staff
	return s.updateErr
}

func (s *stubRepo) DeleteStaff(ctx context.Context, id int64) error {
	return s.deleteErr
}

type stubTx struct {
	calls int
}

func (s *stubTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestCreateService(t *testing.T) {
	repo := &stubRepo{}
	tx := &stubTx{}
	svc := NewService(repo, tx, noopLogger{})

	result, err := svc.CreateService(context.Background(), &models.UpsertServiceRequest{
		Name:            "Deep Cleansing Facial",
		DurationMinutes: 60,
		Price:           decimal.NewFromInt(350),
		CategoryIDs:     []int64{1, 2},
		IsActive:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, []int64{1, 2}, result.CategoryIDs)
	assert.Equal(t, 1, tx.calls, "create must run in a transaction")
}

func TestCreateServiceValidation(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubTx{}, noopLogger{})

	tests := []struct {
		name string
		req  *models.UpsertServiceRequest
	}{
		{
			name: "empty name",
			req: &models.UpsertServiceRequest{
				Name:            "  ",
				DurationMinutes: 60,
				Price:           decimal.NewFromInt(100),
			},
		},
		{
			name: "zero duration",
			req: &models.UpsertServiceRequest{
				Name:  "Manicure",
				Price: decimal.NewFromInt(100),
			},
		},
		{
			name: "negative price",
			req: &models.UpsertServiceRequest{
				Name:            "Manicure",
				DurationMinutes: 30,
				Price:           decimal.NewFromInt(-1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDeleteServiceInUse(t *testing.T) {
	repo := &stubRepo{deleteErr: catalogRepo.ErrServiceInUse}
	svc := NewService(repo, &stubTx{}, noopLogger{})

	err := svc.DeleteService(context.Background(), 7)

	assert.ErrorIs(t, err, ErrServiceInUse)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	repo := &stubRepo{updateErr: catalogRepo.ErrCategoryNotFound}
	svc := NewService(repo, &stubTx{}, noopLogger{})

	_, err := svc.UpdateCategory(context.Background(), 99, &models.UpsertCategoryRequest{
		Name: "Hair",
		Slug: "hair",
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateStaffShiftValidation(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubTx{}, noopLogger{})

	t.Run("bad shift format", func(t *testing.T) {
		_, err := svc.CreateStaff(context.Background(), &models.UpsertStaffRequest{
			Name:       "Sara",
			ShiftStart: ptr.Ptr("9am"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("shift end before start", func(t *testing.T) {
		_, err := svc.CreateStaff(context.Background(), &models.UpsertStaffRequest{
			Name:       "Sara",
			ShiftStart: ptr.Ptr("18:00"),
			ShiftEnd:   ptr.Ptr("10:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("valid shift", func(t *testing.T) {
		result, err := svc.CreateStaff(context.Background(), &models.UpsertStaffRequest{
			Name:       "Sara",
			ServiceIDs: []int64{7},
			ShiftStart: ptr.Ptr("12:00"),
			ShiftEnd:   ptr.Ptr("20:00"),
			IsActive:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.ID)
		assert.Equal(t, []int64{7}, result.ServiceIDs)
	})
}

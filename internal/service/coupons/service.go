package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glammyapp/salon-service/internal/domain"
	couponRepo "github.com/glammyapp/salon-service/internal/infra/storage/coupon"
	"github.com/glammyapp/salon-service/internal/service/coupons/models"
)

// Service сервис для работы с купонами
type Service struct {
	repo   CouponRepository
	time   TimeProvider
	logger Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(repo CouponRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:   repo,
		time:   timeProvider,
		logger: logger,
	}
}

// Validate проверяет купон для суммы заказа и возвращает расчет скидки
// Купон не списывается - списание происходит при создании бронирования
func (s *Service) Validate(ctx context.Context, req *models.ValidateCouponRequest) (*models.ValidateCouponResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}

	coupon, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			s.logger.Warn("Validate: coupon code=%s not found", code)
			return nil, ErrCouponNotFound
		}
		s.logger.Error("Validate: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	now := s.time.Now()
	if !coupon.IsValid(now) {
		s.logger.Info("Validate: coupon code=%s is not valid now", coupon.Code)
		return nil, ErrCouponInvalid
	}
	if !coupon.MeetsMinimum(req.Amount) {
		s.logger.Info("Validate: amount=%s below minimum=%s for code=%s", req.Amount, coupon.MinimumAmount, coupon.Code)
		return nil, ErrMinimumNotMet
	}

	discount := domain.ComputeDiscount(req.Amount, coupon, now)

	return &models.ValidateCouponResponse{
		Code:           coupon.Code,
		Name:           coupon.Name,
		DiscountType:   string(coupon.DiscountType),
		DiscountAmount: discount,
		FinalAmount:    req.Amount.Sub(discount),
	}, nil
}

// Create создает новый купон
func (s *Service) Create(ctx context.Context, req *models.UpsertCouponRequest) (*models.CouponResponse, error) {
	coupon, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(coupon.Code) == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	if !coupon.ValidUntil.After(coupon.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_until must be after valid_from", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, coupon)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponCodeTaken) {
			s.logger.Warn("Create: coupon code=%s already exists", coupon.Code)
			return nil, ErrCouponCodeTaken
		}
		s.logger.Error("Create: repository error for code=%s: %v", coupon.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: coupon created id=%d code=%s", created.ID, created.Code)
	return models.FromDomainCoupon(created), nil
}

// List возвращает все купоны
func (s *Service) List(ctx context.Context) (*models.CouponListResponse, error) {
	coupons, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCouponList(coupons), nil
}

// Update обновляет купон
func (s *Service) Update(ctx context.Context, id int64, req *models.UpsertCouponRequest) (*models.CouponResponse, error) {
	coupon, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	coupon.ID = id

	if err := s.repo.Update(ctx, coupon); err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			return nil, ErrCouponNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload coupon id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: coupon updated id=%d code=%s", updated.ID, updated.Code)
	return models.FromDomainCoupon(updated), nil
}

// Delete удаляет купон
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			return ErrCouponNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: coupon deleted id=%d", id)
	return nil
}

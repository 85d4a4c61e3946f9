package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glammyapp/salon-service/internal/domain"
	contentRepo "github.com/glammyapp/salon-service/internal/infra/storage/content"
	"github.com/glammyapp/salon-service/internal/service/content/models"
)

// Service сервис витрины: акции и форма обратной связи
type Service struct {
	repo   ContentRepository
	time   TimeProvider
	logger Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(repo ContentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:   repo,
		time:   timeProvider,
		logger: logger,
	}
}

// ListOffers возвращает действующие акции
func (s *Service) ListOffers(ctx context.Context) (*models.OfferListResponse, error) {
	offers, err := s.repo.ListCurrentOffers(ctx, s.time.Now())
	if err != nil {
		s.logger.Error("ListOffers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOffers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainOfferList(offers), nil
}

// SubmitContact сохраняет обращение с формы обратной связи
func (s *Service) SubmitContact(ctx context.Context, req *models.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: name, phone and message are required", ErrInvalidInput)
	}

	message := &domain.ContactMessage{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	}
	if _, err := s.repo.CreateContactMessage(ctx, message); err != nil {
		s.logger.Error("SubmitContact: failed to store message: %v", err)
		return fmt.Errorf("%w: SubmitContact - store message: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitContact: message id=%d received from %s", message.ID, req.Phone)
	return nil
}

// ListMessages возвращает обращения для админки
func (s *Service) ListMessages(ctx context.Context, unreadOnly bool) (*models.ContactMessageListResponse, error) {
	messages, err := s.repo.ListContactMessages(ctx, unreadOnly)
	if err != nil {
		s.logger.Error("ListMessages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMessages - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainMessageList(messages), nil
}

// MarkMessageRead помечает обращение прочитанным
func (s *Service) MarkMessageRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkMessageRead(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		s.logger.Error("MarkMessageRead: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkMessageRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

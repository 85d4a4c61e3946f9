package content

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/content/models"
)

type ContentService interface {
	ListOffers(ctx context.Context) (*models.OfferListResponse, error)
	SubmitContact(ctx context.Context, req *models.ContactRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

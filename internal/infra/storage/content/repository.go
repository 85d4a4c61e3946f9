package content

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/psqlbuilder"
)

var offerColumns = []string{
	"id",
	"title",
	"description",
	"discount_text",
	"image_url",
	"valid_from",
	"valid_until",
	"display_order",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с акциями и сообщениями обратной связи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCurrentOffers возвращает действующие на данный момент акции
func (r *Repository) ListCurrentOffers(ctx context.Context, now time.Time) ([]*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"valid_from": now}).
		Where(squirrel.GtOrEq{"valid_until": now}).
		OrderBy("display_order ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCurrentOffers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCurrentOffers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offers := make([]*domain.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCurrentOffers - scan row: %v", ErrScanRow, err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCurrentOffers - rows error: %v", ErrScanRow, err)
	}

	return offers, nil
}

// GetOfferByID получает акцию по ID
func (r *Repository) GetOfferByID(ctx context.Context, id int64) (*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	o, err := scanOffer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferByID - scan offer: %v", ErrScanRow, err)
	}

	return o, nil
}

// CreateContactMessage сохраняет сообщение из формы обратной связи
func (r *Repository) CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("name", "phone", "email", "message", "is_read").
		Values(m.Name, m.Phone, m.Email, m.Message, m.IsRead).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - execute insert: %v", ErrExecQuery, err)
	}
	m.CreatedAt = createdAt.Time

	return m, nil
}

// ListContactMessages возвращает сообщения, сначала новые
func (r *Repository) ListContactMessages(ctx context.Context, unreadOnly bool) ([]*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "phone", "email", "message", "is_read", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC")

	if unreadOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListContactMessages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListContactMessages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		var m domain.ContactMessage
		var createdAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Email, &m.Message, &m.IsRead, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListContactMessages - scan row: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListContactMessages - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}

// MarkMessageRead помечает сообщение прочитанным
func (r *Repository) MarkMessageRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("contact_messages").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkMessageRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkMessageRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkMessageRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

func scanOffer(scan func(dest ...interface{}) error) (*domain.Offer, error) {
	var o domain.Offer
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&o.ID,
		&o.Title,
		&o.Description,
		&o.DiscountText,
		&o.ImageURL,
		&o.ValidFrom,
		&o.ValidUntil,
		&o.DisplayOrder,
		&o.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}

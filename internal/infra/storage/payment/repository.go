package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/psqlbuilder"
)

var paymentColumns = []string{
	"id",
	"booking_id",
	"customer_id",
	"reference",
	"gateway",
	"amount",
	"currency",
	"status",
	"checkout_id",
	"transaction_id",
	"result_code",
	"result_message",
	"raw_response",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о платеже
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"customer_id",
			"reference",
			"gateway",
			"amount",
			"currency",
			"status",
			"checkout_id",
			"transaction_id",
		).
		Values(
			p.BookingID,
			p.CustomerID,
			p.Reference,
			p.Gateway,
			p.Amount,
			p.Currency,
			p.Status,
			p.CheckoutID,
			p.TransactionID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает платеж по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCheckoutID получает платеж по идентификатору чекаута шлюза
func (r *Repository) GetByCheckoutID(ctx context.Context, checkoutID string) (*domain.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"checkout_id": checkoutID})
}

// GetByReference получает последний платеж по референсу бронирования
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"reference": reference}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan payment: %v", ErrScanRow, err)
	}

	return p, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan payment: %v", ErrScanRow, err)
	}

	return p, nil
}

// UpdateResult записывает результат обработки платежа шлюзом
func (r *Repository) UpdateResult(ctx context.Context, id int64, status domain.PaymentStatus, resultCode, resultMessage *string, rawResponse []byte) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", status).
		Set("result_code", resultCode).
		Set("result_message", resultMessage).
		Set("raw_response", rawResponse).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateResult - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateResult - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateResult - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// GetWithFilter возвращает платежи за период для отчетов
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(paymentColumns...).
		From("payments").
		OrderBy("created_at DESC")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"created_at": filter.EndDate.AddDate(0, 0, 1)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// AddLog сохраняет сырой колбек шлюза для аудита
func (r *Repository) AddLog(ctx context.Context, log *domain.PaymentLog) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_logs").
		Columns("payment_id", "gateway", "status", "raw_data").
		Values(log.PaymentID, log.Gateway, log.Status, []byte(log.RawData)).
		Suffix("RETURNING id, received_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddLog - build insert query: %v", ErrBuildQuery, err)
	}

	var receivedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&log.ID, &receivedAt); err != nil {
		return fmt.Errorf("%w: AddLog - execute insert: %v", ErrExecQuery, err)
	}
	log.ReceivedAt = receivedAt.Time

	return nil
}

func scanPayment(scan func(dest ...interface{}) error) (*domain.Payment, error) {
	var p domain.Payment
	var createdAt, updatedAt sql.NullTime
	var rawResponse []byte

	err := scan(
		&p.ID,
		&p.BookingID,
		&p.CustomerID,
		&p.Reference,
		&p.Gateway,
		&p.Amount,
		&p.Currency,
		&p.Status,
		&p.CheckoutID,
		&p.TransactionID,
		&p.ResultCode,
		&p.ResultMessage,
		&rawResponse,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.RawResponse = rawResponse
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

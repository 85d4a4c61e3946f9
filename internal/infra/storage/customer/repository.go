package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"phone",
	"name",
	"email",
	"is_phone_verified",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами, их адресами и OTP кодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("phone", "name", "email", "is_phone_verified", "is_active").
		Values(c.Phone, c.Name, c.Email, c.IsPhoneVerified, c.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return nil, ErrPhoneTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByPhone получает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"phone": phone})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Phone,
		&c.Name,
		&c.Email,
		&c.IsPhoneVerified,
		&c.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan customer: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// Update обновляет профиль клиента
func (r *Repository) Update(ctx context.Context, c *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("name", c.Name).
		Set("email", c.Email).
		Set("is_phone_verified", c.IsPhoneVerified).
		Set("is_active", c.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// MarkPhoneVerified помечает телефон клиента подтвержденным
func (r *Repository) MarkPhoneVerified(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("is_phone_verified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPhoneVerified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPhoneVerified - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPhoneVerified - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

var addressColumns = []string{
	"id",
	"customer_id",
	"title",
	"address",
	"latitude",
	"longitude",
	"is_default",
	"created_at",
	"updated_at",
}

// CreateAddress создает адрес клиента
// Если адрес помечен основным, снимает флаг с остальных адресов клиента
func (r *Repository) CreateAddress(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.IsDefault {
		if err := r.clearDefaultAddress(ctx, executor, a.CustomerID); err != nil {
			return nil, err
		}
	}

	query, args, err := psqlbuilder.Insert("addresses").
		Columns("customer_id", "title", "address", "latitude", "longitude", "is_default").
		Values(a.CustomerID, a.Title, a.Address, a.Latitude, a.Longitude, a.IsDefault).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateAddress - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateAddress - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetAddresses возвращает адреса клиента, основной первым
func (r *Repository) GetAddresses(ctx context.Context, customerID int64) ([]*domain.Address, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addressColumns...).
		From("addresses").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("is_default DESC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAddresses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddresses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addresses := make([]*domain.Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAddresses - scan row: %v", ErrScanRow, err)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAddresses - rows error: %v", ErrScanRow, err)
	}

	return addresses, nil
}

// GetAddressByID получает адрес клиента по ID
// customerID защищает от чтения чужого адреса
func (r *Repository) GetAddressByID(ctx context.Context, id, customerID int64) (*domain.Address, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addressColumns...).
		From("addresses").
		Where(squirrel.Eq{"id": id, "customer_id": customerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAddressByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	a, err := scanAddress(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddressByID - scan address: %v", ErrScanRow, err)
	}

	return a, nil
}

// DeleteAddress удаляет адрес клиента
func (r *Repository) DeleteAddress(ctx context.Context, id, customerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("addresses").
		Where(squirrel.Eq{"id": id, "customer_id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteAddress - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteAddress - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteAddress - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

func (r *Repository) clearDefaultAddress(ctx context.Context, executor DBExecutor, customerID int64) error {
	query, args, err := psqlbuilder.Update("addresses").
		Set("is_default", false).
		Where(squirrel.Eq{"customer_id": customerID, "is_default": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: clearDefaultAddress - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: clearDefaultAddress - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateOTP сохраняет новый код подтверждения телефона
func (r *Repository) CreateOTP(ctx context.Context, otp *domain.PhoneOTP) (*domain.PhoneOTP, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("phone_otps").
		Columns("phone", "code", "attempts", "is_used", "expires_at").
		Values(otp.Phone, otp.Code, otp.Attempts, otp.IsUsed, otp.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOTP - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&otp.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateOTP - execute insert: %v", ErrExecQuery, err)
	}
	otp.CreatedAt = createdAt.Time

	return otp, nil
}

// GetLatestOTP возвращает последний неиспользованный код для номера
func (r *Repository) GetLatestOTP(ctx context.Context, phone string) (*domain.PhoneOTP, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"phone",
		"code",
		"attempts",
		"is_used",
		"created_at",
		"expires_at",
	).
		From("phone_otps").
		Where(squirrel.Eq{"phone": phone, "is_used": false}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestOTP - build select query: %v", ErrBuildQuery, err)
	}

	var otp domain.PhoneOTP
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&otp.ID,
		&otp.Phone,
		&otp.Code,
		&otp.Attempts,
		&otp.IsUsed,
		&createdAt,
		&otp.ExpiresAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOTPNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestOTP - scan otp: %v", ErrScanRow, err)
	}

	otp.CreatedAt = createdAt.Time

	return &otp, nil
}

// IncrementOTPAttempts увеличивает счетчик неудачных попыток
func (r *Repository) IncrementOTPAttempts(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("phone_otps").
		Set("attempts", squirrel.Expr("attempts + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementOTPAttempts - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: IncrementOTPAttempts - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// MarkOTPUsed помечает код использованным
func (r *Repository) MarkOTPUsed(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("phone_otps").
		Set("is_used", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkOTPUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkOTPUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkOTPUsed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOTPNotFound
	}

	return nil
}

func scanAddress(scan func(dest ...interface{}) error) (*domain.Address, error) {
	var a domain.Address
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&a.ID,
		&a.CustomerID,
		&a.Title,
		&a.Address,
		&a.Latitude,
		&a.Longitude,
		&a.IsDefault,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

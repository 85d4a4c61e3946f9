package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/psqlbuilder"
)

var settingsColumns = []string{
	"id",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"timezone",
	"max_reschedules",
	"currency",
	"admin_phone",
	"admin_email",
	"reminder_hours_ahead",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с настройками салона
// В таблице живет единственная запись, создаваемая при первом обращении
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает настройки салона
// Если записи еще нет, создает её со значениями по умолчанию
func (r *Repository) Get(ctx context.Context) (*domain.SalonSettings, error) {
	s, err := r.get(ctx)
	if err == ErrSettingsNotFound {
		return r.insertDefaults(ctx)
	}
	return s, err
}

func (r *Repository) get(ctx context.Context) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("salon_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: get - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanSettings(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get - scan settings: %v", ErrScanRow, err)
	}

	return s, nil
}

func (r *Repository) insertDefaults(ctx context.Context) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	defaults := domain.DefaultSettings()

	query, args, err := psqlbuilder.Insert("salon_settings").
		Columns(
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"timezone",
			"max_reschedules",
			"currency",
			"reminder_hours_ahead",
		).
		Values(
			defaults.OpenTime,
			defaults.CloseTime,
			defaults.SlotDurationMinutes,
			defaults.Timezone,
			defaults.MaxReschedules,
			defaults.Currency,
			defaults.ReminderHoursAhead,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: insertDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&defaults.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: insertDefaults - execute insert: %v", ErrExecQuery, err)
	}

	defaults.CreatedAt = createdAt.Time
	defaults.UpdatedAt = updatedAt.Time

	return defaults, nil
}

// Update обновляет настройки салона
func (r *Repository) Update(ctx context.Context, s *domain.SalonSettings) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salon_settings").
		Set("open_time", s.OpenTime).
		Set("close_time", s.CloseTime).
		Set("slot_duration_minutes", s.SlotDurationMinutes).
		Set("timezone", s.Timezone).
		Set("max_reschedules", s.MaxReschedules).
		Set("currency", s.Currency).
		Set("admin_phone", s.AdminPhone).
		Set("admin_email", s.AdminEmail).
		Set("reminder_hours_ahead", s.ReminderHoursAhead).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

func scanSettings(scan func(dest ...interface{}) error) (*domain.SalonSettings, error) {
	var s domain.SalonSettings
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&s.ID,
		&s.OpenTime,
		&s.CloseTime,
		&s.SlotDurationMinutes,
		&s.Timezone,
		&s.MaxReschedules,
		&s.Currency,
		&s.AdminPhone,
		&s.AdminEmail,
		&s.ReminderHoursAhead,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

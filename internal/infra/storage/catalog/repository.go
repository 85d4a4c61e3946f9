package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом услуг
// Связи услуга-категория и мастер-услуга хранятся в join-таблицах
// и собираются в массивы через array_agg
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCategories возвращает категории в порядке отображения
// activeOnly ограничивает выборку активными категориями
func (r *Repository) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"name_en",
		"slug",
		"description",
		"icon",
		"primary_color",
		"display_order",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("categories").
		OrderBy("display_order ASC, id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		var createdAt, updatedAt sql.NullTime
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.NameEN,
			&c.Slug,
			&c.Description,
			&c.Icon,
			&c.PrimaryColor,
			&c.DisplayOrder,
			&c.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetCategoryBySlug получает категорию по slug
func (r *Repository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"name_en",
		"slug",
		"description",
		"icon",
		"primary_color",
		"display_order",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("categories").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Category
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.NameEN,
		&c.Slug,
		&c.Description,
		&c.Icon,
		&c.PrimaryColor,
		&c.DisplayOrder,
		&c.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - scan category: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

const serviceSelect = `
	s.id,
	s.name,
	s.name_en,
	s.description,
	s.duration_minutes,
	s.price,
	s.image_url,
	s.display_order,
	s.is_active,
	s.is_featured,
	s.created_at,
	s.updated_at,
	COALESCE(array_agg(sc.category_id) FILTER (WHERE sc.category_id IS NOT NULL), '{}')`

// ListServices возвращает услуги с идентификаторами их категорий
// categoryID опционально сужает выборку до одной категории
func (r *Repository) ListServices(ctx context.Context, categoryID *int64, activeOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceSelect).
		From("services s").
		LeftJoin("service_categories sc ON sc.service_id = s.id").
		GroupBy("s.id").
		OrderBy("s.display_order ASC, s.id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.is_active": true})
	}
	if categoryID != nil {
		// Фильтр по категории через EXISTS, чтобы не терять остальные связи в array_agg
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("EXISTS (SELECT 1 FROM service_categories f WHERE f.service_id = s.id AND f.category_id = ?)", *categoryID),
		)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceSelect).
		From("services s").
		LeftJoin("service_categories sc ON sc.service_id = s.id").
		Where(squirrel.Eq{"s.id": id}).
		GroupBy("s.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	svc, err := scanService(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

const staffSelect = `
	st.id,
	st.name,
	st.specialization,
	st.bio,
	st.photo_url,
	st.rating,
	st.slot_duration_minutes,
	st.shift_start,
	st.shift_end,
	st.works_saturday,
	st.works_sunday,
	st.is_active,
	st.created_at,
	st.updated_at,
	COALESCE(array_agg(ss.service_id) FILTER (WHERE ss.service_id IS NOT NULL), '{}')`

// ListStaff возвращает мастеров с идентификаторами их услуг
// serviceID опционально сужает выборку до мастеров одной услуги
func (r *Repository) ListStaff(ctx context.Context, serviceID *int64, activeOnly bool) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffSelect).
		From("staff st").
		LeftJoin("staff_services ss ON ss.staff_id = st.id").
		GroupBy("st.id").
		OrderBy("st.id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"st.is_active": true})
	}
	if serviceID != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("EXISTS (SELECT 1 FROM staff_services f WHERE f.staff_id = st.id AND f.service_id = ?)", *serviceID),
		)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]*domain.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStaff - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaff - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// GetStaffByID получает мастера по ID
func (r *Repository) GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffSelect).
		From("staff st").
		LeftJoin("staff_services ss ON ss.staff_id = st.id").
		Where(squirrel.Eq{"st.id": id}).
		GroupBy("st.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanStaff(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - scan staff: %v", ErrScanRow, err)
	}

	return s, nil
}

func scanService(scan func(dest ...interface{}) error) (*domain.Service, error) {
	var svc domain.Service
	var createdAt, updatedAt sql.NullTime
	var categoryIDs pq.Int64Array

	err := scan(
		&svc.ID,
		&svc.Name,
		&svc.NameEN,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.ImageURL,
		&svc.DisplayOrder,
		&svc.IsActive,
		&svc.IsFeatured,
		&createdAt,
		&updatedAt,
		&categoryIDs,
	)
	if err != nil {
		return nil, err
	}

	svc.CategoryIDs = categoryIDs
	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

func scanStaff(scan func(dest ...interface{}) error) (*domain.Staff, error) {
	var s domain.Staff
	var createdAt, updatedAt sql.NullTime
	var rating decimal.NullDecimal
	var slotDuration sql.NullInt64
	var serviceIDs pq.Int64Array

	err := scan(
		&s.ID,
		&s.Name,
		&s.Specialization,
		&s.Bio,
		&s.PhotoURL,
		&rating,
		&slotDuration,
		&s.ShiftStart,
		&s.ShiftEnd,
		&s.WorksSaturday,
		&s.WorksSunday,
		&s.IsActive,
		&createdAt,
		&updatedAt,
		&serviceIDs,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		s.Rating = &rating.Decimal
	}
	if slotDuration.Valid {
		d := int(slotDuration.Int64)
		s.SlotDurationMinutes = &d
	}
	s.ServiceIDs = serviceIDs
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

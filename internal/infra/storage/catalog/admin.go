package catalog

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

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// GetCategoryByID получает категорию по ID
func (r *Repository) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
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
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryByID - build select query: %v", ErrBuildQuery, err)
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
		return nil, fmt.Errorf("%w: GetCategoryByID - scan category: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// CreateCategory создает новую категорию
func (r *Repository) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("categories").
		Columns(
			"name",
			"name_en",
			"slug",
			"description",
			"icon",
			"primary_color",
			"display_order",
			"is_active",
		).
		Values(
			c.Name,
			orEmpty(c.NameEN),
			c.Slug,
			orEmpty(c.Description),
			orEmpty(c.Icon),
			orEmpty(c.PrimaryColor),
			c.DisplayOrder,
			c.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
		return nil, ErrCategorySlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// UpdateCategory обновляет категорию
func (r *Repository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("categories").
		Set("name", c.Name).
		Set("name_en", orEmpty(c.NameEN)).
		Set("slug", c.Slug).
		Set("description", orEmpty(c.Description)).
		Set("icon", orEmpty(c.Icon)).
		Set("primary_color", orEmpty(c.PrimaryColor)).
		Set("display_order", c.DisplayOrder).
		Set("is_active", c.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCategory - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
		return ErrCategorySlugTaken
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateCategory - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCategory - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory удаляет категорию
// Связи с услугами удаляются каскадно
func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteCategory - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteCategory - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteCategory - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// CreateService создает услугу вместе со связями с категориями
// Вызывается внутри транзакции
func (r *Repository) CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"name",
			"name_en",
			"description",
			"duration_minutes",
			"price",
			"image_url",
			"display_order",
			"is_active",
			"is_featured",
		).
		Values(
			s.Name,
			orEmpty(s.NameEN),
			orEmpty(s.Description),
			s.DurationMinutes,
			s.Price,
			orEmpty(s.ImageURL),
			s.DisplayOrder,
			s.IsActive,
			s.IsFeatured,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.replaceServiceCategories(ctx, s.ID, s.CategoryIDs); err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// UpdateService обновляет услугу и заменяет связи с категориями
// Вызывается внутри транзакции
func (r *Repository) UpdateService(ctx context.Context, s *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", s.Name).
		Set("name_en", orEmpty(s.NameEN)).
		Set("description", orEmpty(s.Description)).
		Set("duration_minutes", s.DurationMinutes).
		Set("price", s.Price).
		Set("image_url", orEmpty(s.ImageURL)).
		Set("display_order", s.DisplayOrder).
		Set("is_active", s.IsActive).
		Set("is_featured", s.IsFeatured).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateService - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateService - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return r.replaceServiceCategories(ctx, s.ID, s.CategoryIDs)
}

// DeleteService удаляет услугу
// Удаление блокируется, пока на услугу ссылаются бронирования
func (r *Repository) DeleteService(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgForeignKeyViolation {
		return ErrServiceInUse
	}
	if err != nil {
		return fmt.Errorf("%w: DeleteService - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// CreateStaff создает мастера вместе со связями с услугами
// Вызывается внутри транзакции
func (r *Repository) CreateStaff(ctx context.Context, s *domain.Staff) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff").
		Columns(
			"name",
			"specialization",
			"bio",
			"photo_url",
			"slot_duration_minutes",
			"shift_start",
			"shift_end",
			"works_saturday",
			"works_sunday",
			"is_active",
		).
		Values(
			s.Name,
			orEmpty(s.Specialization),
			orEmpty(s.Bio),
			orEmpty(s.PhotoURL),
			s.SlotDurationMinutes,
			s.ShiftStart,
			s.ShiftEnd,
			s.WorksSaturday,
			s.WorksSunday,
			s.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateStaff - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateStaff - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.replaceStaffServices(ctx, s.ID, s.ServiceIDs); err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// UpdateStaff обновляет мастера и заменяет связи с услугами
// Вызывается внутри транзакции
func (r *Repository) UpdateStaff(ctx context.Context, s *domain.Staff) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff").
		Set("name", s.Name).
		Set("specialization", orEmpty(s.Specialization)).
		Set("bio", orEmpty(s.Bio)).
		Set("photo_url", orEmpty(s.PhotoURL)).
		Set("slot_duration_minutes", s.SlotDurationMinutes).
		Set("shift_start", s.ShiftStart).
		Set("shift_end", s.ShiftEnd).
		Set("works_saturday", s.WorksSaturday).
		Set("works_sunday", s.WorksSunday).
		Set("is_active", s.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStaff - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStaff - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStaff - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return r.replaceStaffServices(ctx, s.ID, s.ServiceIDs)
}

// DeleteStaff удаляет мастера
// Удаление блокируется, пока на мастера ссылаются бронирования
func (r *Repository) DeleteStaff(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteStaff - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgForeignKeyViolation {
		return ErrStaffInUse
	}
	if err != nil {
		return fmt.Errorf("%w: DeleteStaff - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteStaff - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// replaceServiceCategories заменяет связи услуги с категориями
func (r *Repository) replaceServiceCategories(ctx context.Context, serviceID int64, categoryIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_categories").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceServiceCategories - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceServiceCategories - execute delete: %v", ErrExecQuery, err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("service_categories").
		Columns("service_id", "category_id")
	for _, categoryID := range categoryIDs {
		insertBuilder = insertBuilder.Values(serviceID, categoryID)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceServiceCategories - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgForeignKeyViolation {
		return ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: replaceServiceCategories - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// replaceStaffServices заменяет связи мастера с услугами
func (r *Repository) replaceStaffServices(ctx context.Context, staffID int64, serviceIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_services").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceStaffServices - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceStaffServices - execute delete: %v", ErrExecQuery, err)
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("staff_services").
		Columns("staff_id", "service_id")
	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(staffID, serviceID)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceStaffServices - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgForeignKeyViolation {
		return ErrServiceNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: replaceStaffServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

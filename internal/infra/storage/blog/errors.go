package blog

import "errors"

var (
	// ErrPostNotFound возвращается, когда пост не найден
	ErrPostNotFound = errors.New("blog.repository: post not found")

	// ErrSlugTaken возвращается при сохранении поста с занятым slug
	ErrSlugTaken = errors.New("blog.repository: post slug already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blog.repository: failed to scan row")
)

package blog

import "errors"

var (
	// ErrPostNotFound возвращается, когда статья не найдена
	ErrPostNotFound = errors.New("blog post not found")

	// ErrSlugTaken возвращается при сохранении статьи с занятым slug
	ErrSlugTaken = errors.New("blog post slug already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

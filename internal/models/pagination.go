package models

// Pagination defaults and limits.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Page describes a validated pagination window.
type Page struct {
	Number  int // 1-based page number
	PerPage int // Items per page
}

// NewPage clamps the raw page and per-page values to valid bounds.
func NewPage(number, perPage int) Page {
	if number < 1 {
		number = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}
	return Page{Number: number, PerPage: perPage}
}

// Offset returns the SQL offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// PagedResult wraps a list response with pagination metadata.
type PagedResult[T any] struct {
	Items   []T `json:"items"`    // Items on this page
	Total   int `json:"total"`    // Total matching rows
	Page    int `json:"page"`     // Current page number
	PerPage int `json:"per_page"` // Page size
	Pages   int `json:"pages"`    // Total number of pages
}

// NewPagedResult builds a PagedResult from a page of items and the total count.
func NewPagedResult[T any](items []T, total int, page Page) PagedResult[T] {
	pages := (total + page.PerPage - 1) / page.PerPage
	return PagedResult[T]{
		Items:   items,
		Total:   total,
		Page:    page.Number,
		PerPage: page.PerPage,
		Pages:   pages,
	}
}

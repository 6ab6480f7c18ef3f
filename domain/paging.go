package domain

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest describes a 1-based page window.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest clamps page to at least 1. A non-positive pageSize is kept
// as is; such a request reads no window and reports zero pages.
func NewPageRequest(page, pageSize int) PageRequest {
	return PageRequest{
		Page:     max(page, 1),
		PageSize: pageSize,
	}
}

// Skip saturates at math.MaxInt64 when the window starts past any
// addressable offset.
func (p PageRequest) Skip() int64 {
	if p.PageSize <= 0 {
		return 0
	}
	before := int64(max(p.Page, 1) - 1)
	if before > math.MaxInt64/int64(p.PageSize) {
		return math.MaxInt64
	}
	return before * int64(p.PageSize)
}

func (p PageRequest) Limit() int64 {
	return int64(max(p.PageSize, 0))
}

// Empty reports whether the window cannot hold any item.
func (p PageRequest) Empty() bool {
	return p.PageSize <= 0 || p.Skip() == math.MaxInt64
}

type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagedResult[T any](items []T, page PageRequest, total int64) PagedResult[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return PagedResult[T]{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      total,
		TotalPages: TotalPages(total, page.PageSize),
	}
}

// TotalPages is ceil(total/pageSize), or 0 when pageSize <= 0.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

package dto

import (
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/SscSPs/sales_crm_backend/internal/utils"
	"github.com/SscSPs/sales_crm_backend/internal/utils/pagination"
)

// PageParams are the search and paging query parameters shared by every list endpoint.
type PageParams struct {
	Search string `form:"search"`
	Limit  string `form:"limit"`
	Offset string `form:"offset"`
}

// query builds the base list query; bad paging values are a validation error.
func (p PageParams) query() (domain.ListQuery, error) {
	page, err := pagination.Parse(p.Limit, p.Offset)
	if err != nil {
		return domain.ListQuery{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return domain.ListQuery{
		Search: utils.NormalizeSearch(p.Search),
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// ListResponse is the envelope of every paginated list.
type ListResponse[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// NewListResponse wraps a service page.
func NewListResponse[T any](page *domain.Page[T]) ListResponse[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Data:       items,
		Pagination: pagination.NewMeta(page.Total, page.Limit, page.Offset, len(items)),
	}
}

// parseRange reads an optional [from, to] pair of YYYY-MM-DD strings.
func parseRange(from, to string) (domain.DateRange, bool, error) {
	var r domain.DateRange
	if from != "" {
		d, err := domain.ParseDate(from)
		if err != nil {
			return r, false, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		r.From = &d
	}
	if to != "" {
		d, err := domain.ParseDate(to)
		if err != nil {
			return r, false, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		r.To = &d
	}
	return r, r.From != nil || r.To != nil, nil
}

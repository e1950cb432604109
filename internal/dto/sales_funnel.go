package dto

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpportunityListParams filters GET /sales-funnel.
type OpportunityListParams struct {
	PageParams
	Stage  string `form:"stage" binding:"omitempty,stage"`
	Team   string `form:"team" binding:"omitempty,team"`
	Status string `form:"status" binding:"omitempty,deal_status"`
}

func (p OpportunityListParams) ToListQuery() (domain.ListQuery, error) {
	q, err := p.query()
	if err != nil {
		return q, err
	}
	return q.WithFilter("stage", p.Stage).WithFilter("team", p.Team).WithFilter("status", p.Status), nil
}

// CreateOpportunityRequest is the body of POST /sales-funnel.
// price_without_vat and progress_to_won are computed by the server.
type CreateOpportunityRequest struct {
	ClientName        string             `json:"clientName" binding:"required"`
	WorkInfo          *string            `json:"workInfo"`
	Stage             domain.Stage       `json:"stage" binding:"required,stage"`
	Price             *decimal.Decimal   `json:"price" swaggertype:"number"`
	PaymentPercentage *decimal.Decimal   `json:"paymentPercentage" swaggertype:"number"`
	PaidAmount        *decimal.Decimal   `json:"paidAmount" swaggertype:"number"`
	CreatedDate       *domain.Date       `json:"createdDate" swaggertype:"string" example:"2026-01-15"`
	CloseDate         *domain.Date       `json:"closeDate" swaggertype:"string" example:"2026-02-01"`
	TeamMember        *domain.Team       `json:"teamMember" binding:"omitempty,team"`
	ProgressNotes     *string            `json:"progressNotes"`
	Status            *domain.DealStatus `json:"status" binding:"omitempty,deal_status"`
	Remarks           *string            `json:"remarks"`
}

func (r CreateOpportunityRequest) ToDomain() domain.Opportunity {
	progress := domain.ProgressToWon(r.Stage)
	return domain.Opportunity{
		ClientName:        r.ClientName,
		WorkInfo:          r.WorkInfo,
		Stage:             r.Stage,
		Price:             r.Price,
		PaymentPercentage: r.PaymentPercentage,
		PaidAmount:        r.PaidAmount,
		CreatedDate:       r.CreatedDate,
		CloseDate:         r.CloseDate,
		TeamMember:        r.TeamMember,
		ProgressToWon:     &progress,
		ProgressNotes:     r.ProgressNotes,
		Status:            r.Status,
		Remarks:           r.Remarks,
	}
}

// UpdateOpportunityRequest is the body of PUT /sales-funnel/{id}. Only the
// fields present are changed; the stage moves through PATCH /sales-funnel/{id}/stage.
type UpdateOpportunityRequest struct {
	ClientName        *string            `json:"clientName" binding:"omitempty,min=1"`
	WorkInfo          *string            `json:"workInfo"`
	Price             *decimal.Decimal   `json:"price" swaggertype:"number"`
	PaymentPercentage *decimal.Decimal   `json:"paymentPercentage" swaggertype:"number"`
	PaidAmount        *decimal.Decimal   `json:"paidAmount" swaggertype:"number"`
	CreatedDate       *domain.Date       `json:"createdDate" swaggertype:"string"`
	CloseDate         *domain.Date       `json:"closeDate" swaggertype:"string"`
	TeamMember        *domain.Team       `json:"teamMember" binding:"omitempty,team"`
	ProgressNotes     *string            `json:"progressNotes"`
	Status            *domain.DealStatus `json:"status" binding:"omitempty,deal_status"`
	Remarks           *string            `json:"remarks"`
}

func (r UpdateOpportunityRequest) Patch() domain.Patch[domain.Opportunity] {
	return domain.PatchFunc[domain.Opportunity](func(o *domain.Opportunity) {
		set(&o.ClientName, r.ClientName)
		setPtr(&o.WorkInfo, r.WorkInfo)
		setPtr(&o.Price, r.Price)
		setPtr(&o.PaymentPercentage, r.PaymentPercentage)
		setPtr(&o.PaidAmount, r.PaidAmount)
		setPtr(&o.CreatedDate, r.CreatedDate)
		setPtr(&o.CloseDate, r.CloseDate)
		setPtr(&o.TeamMember, r.TeamMember)
		setPtr(&o.ProgressNotes, r.ProgressNotes)
		setPtr(&o.Status, r.Status)
		setPtr(&o.Remarks, r.Remarks)
	})
}

// MoveStageRequest is the body of PATCH /sales-funnel/{id}/stage.
type MoveStageRequest struct {
	Stage domain.Stage `json:"stage" binding:"required,stage"`
}

// set overwrites *dst when the request carried the field.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtr[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

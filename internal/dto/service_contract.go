package dto

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type ServiceContractListParams struct {
	PageParams
	Stage  string `form:"stage" binding:"omitempty,contract_stage"`
	Status string `form:"status" binding:"omitempty,deal_status"`
}

func (p ServiceContractListParams) ToListQuery() (domain.ListQuery, error) {
	q, err := p.query()
	if err != nil {
		return q, err
	}
	return q.WithFilter("stage", p.Stage).WithFilter("status", p.Status), nil
}

type CreateServiceContractRequest struct {
	ClientName        string             `json:"clientName" binding:"required"`
	ContractInfo      *string            `json:"contractInfo"`
	Stage             domain.Stage       `json:"stage" binding:"required,contract_stage"`
	Price             *decimal.Decimal   `json:"price" swaggertype:"number"`
	PaymentPercentage *decimal.Decimal   `json:"paymentPercentage" swaggertype:"number"`
	YearlyPayment     *decimal.Decimal   `json:"yearlyPayment" swaggertype:"number"`
	CreatedDate       *domain.Date       `json:"createdDate" swaggertype:"string"`
	CloseDate         *domain.Date       `json:"closeDate" swaggertype:"string"`
	TeamMember        *domain.Team       `json:"teamMember" binding:"omitempty,team"`
	ProgressToWon     *decimal.Decimal   `json:"progressToWon" swaggertype:"number"`
	ProgressNotes     *string            `json:"progressNotes"`
	Status            *domain.DealStatus `json:"status" binding:"omitempty,deal_status"`
	Remarks           *string            `json:"remarks"`
}

func (r CreateServiceContractRequest) ToDomain() domain.ServiceContract {
	return domain.ServiceContract{
		ClientName:        r.ClientName,
		ContractInfo:      r.ContractInfo,
		Stage:             r.Stage,
		Price:             r.Price,
		PaymentPercentage: r.PaymentPercentage,
		YearlyPayment:     r.YearlyPayment,
		CreatedDate:       r.CreatedDate,
		CloseDate:         r.CloseDate,
		TeamMember:        r.TeamMember,
		ProgressToWon:     r.ProgressToWon,
		ProgressNotes:     r.ProgressNotes,
		Status:            r.Status,
		Remarks:           r.Remarks,
	}
}

type UpdateServiceContractRequest struct {
	ClientName        *string            `json:"clientName" binding:"omitempty,min=1"`
	ContractInfo      *string            `json:"contractInfo"`
	Stage             *domain.Stage      `json:"stage" binding:"omitempty,contract_stage"`
	Price             *decimal.Decimal   `json:"price" swaggertype:"number"`
	PaymentPercentage *decimal.Decimal   `json:"paymentPercentage" swaggertype:"number"`
	YearlyPayment     *decimal.Decimal   `json:"yearlyPayment" swaggertype:"number"`
	CreatedDate       *domain.Date       `json:"createdDate" swaggertype:"string"`
	CloseDate         *domain.Date       `json:"closeDate" swaggertype:"string"`
	TeamMember        *domain.Team       `json:"teamMember" binding:"omitempty,team"`
	ProgressToWon     *decimal.Decimal   `json:"progressToWon" swaggertype:"number"`
	ProgressNotes     *string            `json:"progressNotes"`
	Status            *domain.DealStatus `json:"status" binding:"omitempty,deal_status"`
	Remarks           *string            `json:"remarks"`
}

func (r UpdateServiceContractRequest) Patch() domain.Patch[domain.ServiceContract] {
	return domain.PatchFunc[domain.ServiceContract](func(c *domain.ServiceContract) {
		set(&c.ClientName, r.ClientName)
		setPtr(&c.ContractInfo, r.ContractInfo)
		set(&c.Stage, r.Stage)
		setPtr(&c.Price, r.Price)
		setPtr(&c.PaymentPercentage, r.PaymentPercentage)
		setPtr(&c.YearlyPayment, r.YearlyPayment)
		setPtr(&c.CreatedDate, r.CreatedDate)
		setPtr(&c.CloseDate, r.CloseDate)
		setPtr(&c.TeamMember, r.TeamMember)
		setPtr(&c.ProgressToWon, r.ProgressToWon)
		setPtr(&c.ProgressNotes, r.ProgressNotes)
		setPtr(&c.Status, r.Status)
		setPtr(&c.Remarks, r.Remarks)
	})
}

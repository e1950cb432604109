package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceContract is a recurring-revenue contract (table service_contracts).
type ServiceContract struct {
	ID                string           `db:"id" json:"id"`
	ClientName        string           `db:"client_name" json:"clientName" validate:"required"`
	ContractInfo      *string          `db:"contract_info" json:"contractInfo"`
	Stage             Stage            `db:"stage" json:"stage" validate:"contract_stage"`
	Price             *decimal.Decimal `db:"price" json:"price" validate:"omitempty,gte=0"`
	PriceWithoutVAT   *decimal.Decimal `db:"price_without_vat" json:"priceWithoutVat"`
	PaymentPercentage *decimal.Decimal `db:"payment_percentage" json:"paymentPercentage" validate:"omitempty,gte=0,lte=1"`
	YearlyPayment     *decimal.Decimal `db:"yearly_payment" json:"yearlyPayment" validate:"omitempty,gte=0"`
	CreatedDate       *Date            `db:"created_date" json:"createdDate"`
	CloseDate         *Date            `db:"close_date" json:"closeDate"`
	TeamMember        *Team            `db:"team_member" json:"teamMember" validate:"omitempty,team"`
	ProgressToWon     *decimal.Decimal `db:"progress_to_won" json:"progressToWon"`
	ProgressNotes     *string          `db:"progress_notes" json:"progressNotes"`
	Status            *DealStatus      `db:"status" json:"status" validate:"omitempty,deal_status"`
	Remarks           *string          `db:"remarks" json:"remarks"`
	CreatedBy         *string          `db:"created_by" json:"createdBy"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updatedAt"`
}

func (c *ServiceContract) RecordID() string { return c.ID }

func (c *ServiceContract) Stamp(id, actorID string, now time.Time) {
	c.ID = id
	c.CreatedBy = &actorID
	c.UpdatedAt = now
	if c.CreatedDate == nil {
		c.CreatedDate = ptr(NewDate(now))
	}
}

func (c *ServiceContract) Touch(now time.Time) { c.UpdatedAt = now }

func (c *ServiceContract) Derive() {
	c.PriceWithoutVAT = PriceExcludingTax(c.Price)
}

func (c *ServiceContract) OwnerID() *string { return c.CreatedBy }

func (c ServiceContract) PriceOrZero() decimal.Decimal {
	if c.Price == nil {
		return decimal.Zero
	}
	return *c.Price
}

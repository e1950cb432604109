package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Opportunity is a sales funnel deal (table sales_funnel).
type Opportunity struct {
	ID                string           `db:"id" json:"id"`
	ClientName        string           `db:"client_name" json:"clientName" validate:"required"`
	WorkInfo          *string          `db:"work_info" json:"workInfo"`
	Stage             Stage            `db:"stage" json:"stage" validate:"stage"`
	Price             *decimal.Decimal `db:"price" json:"price" validate:"omitempty,gte=0"`
	PriceWithoutVAT   *decimal.Decimal `db:"price_without_vat" json:"priceWithoutVat"`
	PaymentPercentage *decimal.Decimal `db:"payment_percentage" json:"paymentPercentage" validate:"omitempty,gte=0,lte=1"`
	PaidAmount        *decimal.Decimal `db:"paid_amount" json:"paidAmount" validate:"omitempty,gte=0"`
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

func (o *Opportunity) RecordID() string { return o.ID }

func (o *Opportunity) Stamp(id, actorID string, now time.Time) {
	o.ID = id
	o.CreatedBy = &actorID
	o.UpdatedAt = now
	if o.CreatedDate == nil {
		o.CreatedDate = ptr(NewDate(now))
	}
}

func (o *Opportunity) Touch(now time.Time) { o.UpdatedAt = now }

// Derive recomputes price_without_vat. progress_to_won is owned by the stage transition.
func (o *Opportunity) Derive() {
	o.PriceWithoutVAT = PriceExcludingTax(o.Price)
}

func (o *Opportunity) OwnerID() *string { return o.CreatedBy }

// MoveTo sets the stage and the matching progress signal.
func (o *Opportunity) MoveTo(stage Stage, now time.Time) {
	o.Stage = stage
	o.ProgressToWon = ptr(ProgressToWon(stage))
	o.UpdatedAt = now
}

// PriceOrZero is the price used by aggregations.
func (o Opportunity) PriceOrZero() decimal.Decimal {
	if o.Price == nil {
		return decimal.Zero
	}
	return *o.Price
}

// KanbanColumns holds the board view of the funnel, keyed by stage.
type KanbanColumns map[Stage][]Opportunity

// GroupByStage places rows into the six pipeline columns, keeping input order.
// Rows with an unknown stage are dropped.
func GroupByStage(rows []Opportunity) KanbanColumns {
	cols := make(KanbanColumns, len(PipelineStages))
	for _, s := range PipelineStages {
		cols[s] = []Opportunity{}
	}
	for _, row := range rows {
		if _, ok := cols[row.Stage]; ok {
			cols[row.Stage] = append(cols[row.Stage], row)
		}
	}
	return cols
}

// Clone returns a deep copy of the column lists.
func (k KanbanColumns) Clone() KanbanColumns {
	out := make(KanbanColumns, len(k))
	for stage, items := range k {
		cp := make([]Opportunity, len(items))
		copy(cp, items)
		out[stage] = cp
	}
	return out
}

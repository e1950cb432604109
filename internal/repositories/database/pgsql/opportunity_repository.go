package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var opportunitySchema = tableSchema[domain.Opportunity]{
	table:  "sales_funnel",
	entity: "opportunity",
	selectColumns: []string{
		"id", "client_name", "work_info", "stage", "price", "price_without_vat",
		"payment_percentage", "paid_amount", "created_date", "close_date", "team_member",
		"progress_to_won", "progress_notes", "status", "remarks", "created_by", "updated_at",
	},
	insertColumns: []string{
		"id", "client_name", "work_info", "stage", "price", "price_without_vat",
		"payment_percentage", "paid_amount", "created_date", "close_date", "team_member",
		"progress_to_won", "progress_notes", "status", "remarks", "created_by", "updated_at",
	},
	insertValues: func(o *domain.Opportunity) []any {
		return []any{
			o.ID, o.ClientName, o.WorkInfo, o.Stage, o.Price, o.PriceWithoutVAT,
			o.PaymentPercentage, o.PaidAmount, o.CreatedDate, o.CloseDate, o.TeamMember,
			o.ProgressToWon, o.ProgressNotes, o.Status, o.Remarks, o.CreatedBy, o.UpdatedAt,
		}
	},
	// stage and progress_to_won are only written by UpdateStage.
	updateColumns: []string{
		"client_name", "work_info", "price", "price_without_vat",
		"payment_percentage", "paid_amount", "created_date", "close_date", "team_member",
		"progress_notes", "status", "remarks", "updated_at",
	},
	updateValues: func(o *domain.Opportunity) []any {
		return []any{
			o.ClientName, o.WorkInfo, o.Price, o.PriceWithoutVAT,
			o.PaymentPercentage, o.PaidAmount, o.CreatedDate, o.CloseDate, o.TeamMember,
			o.ProgressNotes, o.Status, o.Remarks, o.UpdatedAt,
		}
	},
	recordID:      func(o *domain.Opportunity) string { return o.ID },
	searchColumns: []string{"client_name", "work_info"},
	filters: map[string]string{
		"stage":  "stage",
		"team":   "team_member",
		"status": "status",
	},
	ranges: map[string]string{
		"closeDate":   "close_date",
		"createdDate": "created_date",
	},
	orderBy: "created_date DESC NULLS LAST, id",
}

type opportunityRepository struct {
	*recordTable[domain.Opportunity]
}

func newPgxOpportunityRepository(pool *pgxpool.Pool) portsrepo.OpportunityRepositoryFacade {
	return &opportunityRepository{recordTable: newRecordTable(pool, opportunitySchema)}
}

var _ portsrepo.OpportunityRepositoryFacade = (*opportunityRepository)(nil)

// UpdateStage writes the stage transition columns only.
func (r *opportunityRepository) UpdateStage(ctx context.Context, id string, stage domain.Stage, progress decimal.Decimal, now time.Time) (*domain.Opportunity, error) {
	query := fmt.Sprintf(`
		UPDATE sales_funnel
		SET stage = $2, progress_to_won = $3, updated_at = $4
		WHERE id = $1
		RETURNING %s`, r.columns())
	return r.one(ctx, query, []any{id, stage, progress, now}, "opportunity "+id)
}

package pgsql

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

var serviceContractSchema = tableSchema[domain.ServiceContract]{
	table:  "service_contracts",
	entity: "service contract",
	selectColumns: []string{
		"id", "client_name", "contract_info", "stage", "price", "price_without_vat",
		"payment_percentage", "yearly_payment", "created_date", "close_date", "team_member",
		"progress_to_won", "progress_notes", "status", "remarks", "created_by", "updated_at",
	},
	insertColumns: []string{
		"id", "client_name", "contract_info", "stage", "price", "price_without_vat",
		"payment_percentage", "yearly_payment", "created_date", "close_date", "team_member",
		"progress_to_won", "progress_notes", "status", "remarks", "created_by", "updated_at",
	},
	insertValues: func(c *domain.ServiceContract) []any {
		return []any{
			c.ID, c.ClientName, c.ContractInfo, c.Stage, c.Price, c.PriceWithoutVAT,
			c.PaymentPercentage, c.YearlyPayment, c.CreatedDate, c.CloseDate, c.TeamMember,
			c.ProgressToWon, c.ProgressNotes, c.Status, c.Remarks, c.CreatedBy, c.UpdatedAt,
		}
	},
	updateColumns: []string{
		"client_name", "contract_info", "stage", "price", "price_without_vat",
		"payment_percentage", "yearly_payment", "created_date", "close_date", "team_member",
		"progress_to_won", "progress_notes", "status", "remarks", "updated_at",
	},
	updateValues: func(c *domain.ServiceContract) []any {
		return []any{
			c.ClientName, c.ContractInfo, c.Stage, c.Price, c.PriceWithoutVAT,
			c.PaymentPercentage, c.YearlyPayment, c.CreatedDate, c.CloseDate, c.TeamMember,
			c.ProgressToWon, c.ProgressNotes, c.Status, c.Remarks, c.UpdatedAt,
		}
	},
	recordID:      func(c *domain.ServiceContract) string { return c.ID },
	searchColumns: []string{"client_name", "contract_info"},
	filters: map[string]string{
		"stage":  "stage",
		"status": "status",
	},
	ranges: map[string]string{
		"closeDate":   "close_date",
		"createdDate": "created_date",
	},
	orderBy: "created_date DESC NULLS LAST, id",
}

type serviceContractRepository struct {
	*recordTable[domain.ServiceContract]
}

func newPgxServiceContractRepository(pool *pgxpool.Pool) portsrepo.ServiceContractRepositoryFacade {
	return &serviceContractRepository{recordTable: newRecordTable(pool, serviceContractSchema)}
}

package pgsql

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhere_FiltersSearchAndFlags(t *testing.T) {
	table := newRecordTable(nil, stockSchema)

	w, err := table.where(domain.ListQuery{
		Filters: map[string]string{"category": "FAS"},
		Flags:   []string{"lowStock"},
		Search:  "50%_off",
	})
	require.NoError(t, err)

	assert.Equal(t,
		" WHERE category = $1 AND ("+lowStockPredicate+") AND (product_name ILIKE $2 OR sku ILIKE $2 OR supplier ILIKE $2)",
		w.sql())
	assert.Equal(t, []any{"FAS", `%50\%\_off%`}, w.args)
}

func TestWhere_RangesAndAnyOf(t *testing.T) {
	table := newRecordTable(nil, opportunitySchema)
	from, _ := domain.ParseDate("2026-01-01")
	to, _ := domain.ParseDate("2026-01-08")

	w, err := table.where(domain.ListQuery{
		AnyOf:  map[string][]string{"stage": {"Hot", "Warm"}},
		Ranges: map[string]domain.DateRange{"closeDate": {From: &from, To: &to}},
	})
	require.NoError(t, err)

	assert.Equal(t, " WHERE stage = ANY($1) AND close_date >= $2 AND close_date <= $3", w.sql())
	assert.Len(t, w.args, 3)
}

func TestWhere_RejectsUnknownKeys(t *testing.T) {
	table := newRecordTable(nil, expenseSchema)

	_, err := table.where(domain.ListQuery{Filters: map[string]string{"amount": "1"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = table.where(domain.ListQuery{Flags: []string{"lowStock"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestWhere_Empty(t *testing.T) {
	table := newRecordTable(nil, salarySchema)

	w, err := table.where(domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "", w.sql())
	assert.Empty(t, w.args)
}

func TestOpportunityUpdate_LeavesStageToTransitions(t *testing.T) {
	table := newRecordTable(nil, opportunitySchema)
	notes := "called back"
	rec := domain.Opportunity{ID: "o1", ClientName: "Монгол ХХК", Stage: domain.StageHot, ProgressNotes: &notes}

	query, args := table.updateStatement(&rec)

	set := query[:strings.Index(query, " WHERE ")]
	assert.NotContains(t, set, "stage =")
	assert.NotContains(t, set, "progress_to_won =")
	assert.Contains(t, set, "progress_notes =")
	assert.Contains(t, query, fmt.Sprintf("WHERE id = $%d", len(args)))
	assert.Len(t, args, len(opportunitySchema.updateColumns)+1)
	assert.Equal(t, "o1", args[len(args)-1])
	for _, a := range args {
		assert.NotEqual(t, domain.StageHot, a)
	}
}

func TestServiceContractUpdate_WritesStage(t *testing.T) {
	table := newRecordTable(nil, serviceContractSchema)
	rec := domain.ServiceContract{ID: "c1"}

	query, args := table.updateStatement(&rec)

	assert.Contains(t, query, "stage = $")
	assert.Len(t, args, len(serviceContractSchema.updateColumns)+1)
}

func TestExistsSinceQuery_UsesRollingWindow(t *testing.T) {
	assert.Contains(t, notificationExistsSinceQuery, "user_id = $1 AND related_type = $2 AND related_id = $3 AND created_at >= $4")
}

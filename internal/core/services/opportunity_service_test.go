package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/SscSPs/sales_crm_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMoveStage_SetsProgressAndPublishes(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	publisher := &recordingPublisher{}
	tracker := &recordingTracker{}
	svc := services.NewOpportunityService(repo, nil,
		services.WithRevalidation(publisher),
		services.WithEventTracker(tracker),
	)

	stored := &domain.Opportunity{ID: "opp-1", ClientName: "Монгол ХХК", Stage: domain.StageHot, CreatedBy: strPtr("actor-1")}
	moved := *stored
	moved.Stage = domain.StageClosed
	moved.ProgressToWon = decPtr("1")
	repo.On("FindByID", ctx, "opp-1").Return(stored, nil).Once()
	repo.On("UpdateStage", ctx, "opp-1", domain.StageClosed, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(1))
	}), mock.AnythingOfType("time.Time")).Return(&moved, nil).Once()

	got, err := svc.MoveStage(ctx, "actor-1", "opp-1", domain.StageClosed)

	require.NoError(t, err)
	assert.Equal(t, domain.StageClosed, got.Stage)
	assert.Equal(t, []string{services.PathSalesFunnel, services.PathKanban, services.PathDashboard}, publisher.Published())
	require.Len(t, tracker.events, 1)
	assert.Equal(t, "opportunity_stage_moved", tracker.events[0].event)
	assert.Equal(t, "Hot", tracker.events[0].props["from"])
	repo.AssertExpectations(t)
}

func TestMoveStage_WonProgress(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	svc := services.NewOpportunityService(repo, domain.PermissiveTransitions{})

	stored := &domain.Opportunity{ID: "opp-1", Stage: domain.StageLost}
	repo.On("FindByID", ctx, "opp-1").Return(stored, nil).Once()
	repo.On("UpdateStage", ctx, "opp-1", domain.StageWon, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("0.3"))
	}), mock.Anything).Return(&domain.Opportunity{ID: "opp-1", Stage: domain.StageWon}, nil).Once()

	_, err := svc.MoveStage(ctx, "actor-1", "opp-1", domain.StageWon)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMoveStage_RoundTripRestoresProgress(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	svc := services.NewOpportunityService(repo, nil)

	row := domain.Opportunity{ID: "opp-1", ClientName: "Говь", Stage: domain.StageWon, ProgressToWon: decPtr("0.3")}
	repo.On("FindByID", ctx, "opp-1").Return(&row, nil)
	repo.On("UpdateStage", ctx, "opp-1", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			progress := args.Get(3).(decimal.Decimal)
			row.Stage = args.Get(2).(domain.Stage)
			row.ProgressToWon = &progress
		}).
		Return(&row, nil)

	got, err := svc.MoveStage(ctx, "actor-1", "opp-1", domain.StageClosed)
	require.NoError(t, err)
	assert.True(t, got.ProgressToWon.Equal(decimal.NewFromInt(1)))

	got, err = svc.MoveStage(ctx, "actor-1", "opp-1", domain.StageWon)
	require.NoError(t, err)
	assert.Equal(t, domain.StageWon, got.Stage)
	assert.True(t, got.ProgressToWon.Equal(domain.ProgressToWon(domain.StageWon)))
	repo.AssertNumberOfCalls(t, "UpdateStage", 2)
}

func TestMoveStage_TerminalPolicyRejectsLeavingClosed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	svc := services.NewOpportunityService(repo, domain.TerminalTransitions{})

	repo.On("FindByID", ctx, "opp-1").Return(&domain.Opportunity{ID: "opp-1", Stage: domain.StageClosed}, nil).Once()

	_, err := svc.MoveStage(ctx, "actor-1", "opp-1", domain.StageCold)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveStage_UnknownStage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	svc := services.NewOpportunityService(repo, nil)

	repo.On("FindByID", ctx, "opp-1").Return(&domain.Opportunity{ID: "opp-1", Stage: domain.StageCold}, nil).Once()

	_, err := svc.MoveStage(ctx, "actor-1", "opp-1", "Frozen")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMoveStage_Forbidden(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	auth := new(MockAuthorizer)
	svc := services.NewOpportunityService(repo, nil, services.WithRecordAuthorizer(auth))

	stored := &domain.Opportunity{ID: "opp-1", Stage: domain.StageCold, CreatedBy: strPtr("other")}
	repo.On("FindByID", ctx, "opp-1").Return(stored, nil).Once()
	auth.On("AuthorizeRecordAction", ctx, "actor-1", stored.CreatedBy).Return(apperrors.ErrForbidden).Once()

	_, err := svc.MoveStage(ctx, "actor-1", "opp-1", domain.StageHot)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestKanbanColumns_GroupsByStage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	svc := services.NewOpportunityService(repo, nil)

	repo.On("ListAll", ctx, domain.ListQuery{}).Return([]domain.Opportunity{
		{ID: "1", Stage: domain.StageHot},
		{ID: "2", Stage: domain.StageCold},
		{ID: "3", Stage: domain.StageHot},
		{ID: "4", Stage: "Archived"},
	}, nil).Once()

	cols, err := svc.KanbanColumns(ctx)

	require.NoError(t, err)
	assert.Len(t, cols, 6)
	require.Len(t, cols[domain.StageHot], 2)
	assert.Equal(t, "1", cols[domain.StageHot][0].ID)
	assert.Equal(t, "3", cols[domain.StageHot][1].ID)
	assert.Empty(t, cols[domain.StageWon])
}

func TestCreateOpportunity_DerivesPriceWithoutVAT(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOpportunityRepository)
	svc := services.NewOpportunityService(repo, nil)

	repo.On("Insert", ctx, mock.MatchedBy(func(o domain.Opportunity) bool {
		return o.PriceWithoutVAT != nil && o.PriceWithoutVAT.Equal(decimal.NewFromInt(1000)) && o.CreatedDate != nil
	})).Return(echo[domain.Opportunity], nil).Once()

	created, err := svc.Create(ctx, "actor-1", domain.Opportunity{
		ClientName: "Client",
		Stage:      domain.StageCold,
		Price:      decPtr("1100"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	repo.AssertExpectations(t)
}

package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
)

type opportunityService struct {
	*recordService[domain.Opportunity, *domain.Opportunity]
	opportunityRepo portsrepo.OpportunityRepositoryFacade
	policy          domain.TransitionPolicy
}

// NewOpportunityService creates the sales funnel service. A nil policy allows every transition.
func NewOpportunityService(repo portsrepo.OpportunityRepositoryFacade, policy domain.TransitionPolicy, opts ...RecordOption) portssvc.OpportunitySvcFacade {
	if policy == nil {
		policy = domain.PermissiveTransitions{}
	}
	return &opportunityService{
		recordService: newRecordService[domain.Opportunity, *domain.Opportunity](
			"sales_funnel", repo, []string{PathSalesFunnel, PathKanban, PathDashboard}, opts...),
		opportunityRepo: repo,
		policy:          policy,
	}
}

var _ portssvc.OpportunitySvcFacade = (*opportunityService)(nil)

// MoveStage is the server half of a kanban drop: it sets the stage and the
// matching progress_to_won and leaves every other column alone.
func (s *opportunityService) MoveStage(ctx context.Context, actorID, id string, stage domain.Stage) (*domain.Opportunity, error) {
	existing, err := s.loadForWrite(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Allow(existing.Stage, stage); err != nil {
		s.LogDebug(ctx, "Stage transition rejected", map[string]any{
			"id": id, "from": existing.Stage, "to": stage,
		})
		return nil, err
	}

	moved := *existing
	moved.MoveTo(stage, s.now())
	updated, err := s.opportunityRepo.UpdateStage(ctx, id, moved.Stage, *moved.ProgressToWon, moved.UpdatedAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to move opportunity stage", map[string]any{"id": id, "to": stage})
		return nil, fmt.Errorf("move opportunity %s: %w", id, err)
	}

	s.LogInfo(ctx, "Opportunity stage moved", map[string]any{
		"id": id, "from": existing.Stage, "to": stage, "actor_id": actorID,
	})
	s.track(actorID, "opportunity_stage_moved", map[string]any{
		"opportunity_id": id,
		"from":           string(existing.Stage),
		"to":             string(stage),
	})
	s.publish()
	return updated, nil
}

func (s *opportunityService) KanbanColumns(ctx context.Context) (domain.KanbanColumns, error) {
	rows, err := s.listAll(ctx, domain.ListQuery{})
	if err != nil {
		return nil, err
	}
	return domain.GroupByStage(rows), nil
}

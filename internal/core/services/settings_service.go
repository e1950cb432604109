package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// SettingsServiceOption is a functional option for configuring the settings service
type SettingsServiceOption func(*settingsService)

// WithSettingsAuthorizer restricts writes to admins.
func WithSettingsAuthorizer(a portssvc.RecordAuthorizerSvc) SettingsServiceOption {
	return func(s *settingsService) { s.Authorizer = a }
}

func NewSettingsService(repo portsrepo.SettingsRepositoryFacade, opts ...SettingsServiceOption) portssvc.SettingsSvcFacade {
	s := &settingsService{settingsRepo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) read(ctx context.Context, settingType domain.SettingType) ([]domain.Setting, error) {
	rows, err := s.settingsRepo.ListByType(ctx, settingType)
	if err != nil {
		s.LogError(ctx, err, "Failed to read settings", map[string]any{"setting_type": settingType})
		return nil, fmt.Errorf("read %s settings: %w", settingType, err)
	}
	return rows, nil
}

func (s *settingsService) GetSalesTargets(ctx context.Context) ([]domain.TeamTargetSetting, error) {
	rows, err := s.read(ctx, domain.SettingSalesFunnel)
	if err != nil {
		return nil, err
	}
	return domain.TeamTargets(rows), nil
}

func (s *settingsService) GetServiceContractTargets(ctx context.Context) ([]domain.TeamTargetSetting, error) {
	rows, err := s.read(ctx, domain.SettingServiceContract)
	if err != nil {
		return nil, err
	}
	return domain.TeamTargets(rows), nil
}

func (s *settingsService) GetStageProbabilities(ctx context.Context) ([]domain.StageProbability, error) {
	rows, err := s.read(ctx, domain.SettingSalesFunnel)
	if err != nil {
		return nil, err
	}
	return domain.StageProbabilities(rows), nil
}

func (s *settingsService) GetAll(ctx context.Context) (*domain.AllSettings, error) {
	var all domain.AllSettings
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		all.SalesTargets, err = s.GetSalesTargets(gctx)
		return err
	})
	g.Go(func() (err error) {
		all.StageProbabilities, err = s.GetStageProbabilities(gctx)
		return err
	})
	g.Go(func() (err error) {
		all.ServiceContractTargets, err = s.GetServiceContractTargets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &all, nil
}

func (s *settingsService) SetTeamTarget(ctx context.Context, actorID string, settingType domain.SettingType, team string, target decimal.Decimal) (*domain.Setting, error) {
	if err := s.authorizeWrite(ctx, actorID, settingType); err != nil {
		return nil, err
	}
	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", apperrors.ErrValidation)
	}
	if target.IsNegative() {
		return nil, fmt.Errorf("%w: target cannot be negative", apperrors.ErrValidation)
	}
	saved, err := s.settingsRepo.UpsertTeamTarget(ctx, settingType, team, target)
	if err != nil {
		s.LogError(ctx, err, "Failed to save team target", map[string]any{"team": team})
		return nil, err
	}
	s.LogInfo(ctx, "Team target saved", map[string]any{"team": team, "setting_type": settingType, "actor_id": actorID})
	return saved, nil
}

// SetStageProbability stores a win probability as a fraction between 0 and 1.
func (s *settingsService) SetStageProbability(ctx context.Context, actorID string, settingType domain.SettingType, stage string, probability decimal.Decimal) (*domain.Setting, error) {
	if err := s.authorizeWrite(ctx, actorID, settingType); err != nil {
		return nil, err
	}
	if !domain.Stage(stage).IsValid() {
		return nil, fmt.Errorf("%w: unknown stage %q", apperrors.ErrValidation, stage)
	}
	if probability.IsNegative() || probability.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: probability must be between 0 and 1", apperrors.ErrValidation)
	}
	saved, err := s.settingsRepo.UpsertStageProbability(ctx, settingType, stage, probability)
	if err != nil {
		s.LogError(ctx, err, "Failed to save stage probability", map[string]any{"stage": stage})
		return nil, err
	}
	return saved, nil
}

func (s *settingsService) authorizeWrite(ctx context.Context, actorID string, settingType domain.SettingType) error {
	if actorID == "" {
		return apperrors.ErrUnauthenticated
	}
	if err := s.AuthorizeAdmin(ctx, actorID); err != nil {
		return err
	}
	if !settingType.IsValid() {
		return fmt.Errorf("%w: unknown setting type %q", apperrors.ErrValidation, settingType)
	}
	return nil
}

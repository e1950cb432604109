package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

func NewProfileService(repo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: repo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profileRepo.FindByID(ctx, id)
}

func (s *profileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if profiles == nil {
		return []domain.Profile{}, nil
	}
	return profiles, nil
}

// SignIn creates a sales_rep profile on first sign-in; later sign-ins keep the stored role.
func (s *profileService) SignIn(ctx context.Context, info domain.GoogleUserInfo) (*domain.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: google account has no email", apperrors.ErrValidation)
	}
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: google email is not verified", apperrors.ErrUnauthenticated)
	}

	p := domain.Profile{
		ID:        uuid.NewString(),
		Email:     &email,
		Role:      domain.RoleSalesRep,
		CreatedAt: s.now(),
	}
	if name := strings.TrimSpace(info.Name); name != "" {
		p.FullName = &name
	}

	saved, err := s.profileRepo.UpsertByEmail(ctx, p)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert profile at sign-in", map[string]any{"email": email})
		return nil, err
	}
	s.LogInfo(ctx, "Profile signed in", map[string]any{"profile_id": saved.ID})
	return saved, nil
}

// actor loads the acting profile. An actor without a profile row is treated
// as a sales_rep, the least privileged role.
func (s *profileService) actor(ctx context.Context, actorID string) (*domain.Profile, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	p, err := s.profileRepo.FindByID(ctx, actorID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.Profile{ID: actorID, Role: domain.RoleSalesRep}, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) AuthorizeRecordAction(ctx context.Context, actorID string, ownerID *string) error {
	p, err := s.actor(ctx, actorID)
	if err != nil {
		return err
	}
	if !p.CanModify(ownerID) {
		s.LogDebug(ctx, "Record action denied by row-level policy", map[string]any{
			"actor_id": actorID, "role": p.Role,
		})
		return fmt.Errorf("%w: only the creator, a manager or an admin may change this record", apperrors.ErrForbidden)
	}
	return nil
}

func (s *profileService) AuthorizeAdmin(ctx context.Context, actorID string) error {
	p, err := s.actor(ctx, actorID)
	if err != nil {
		return err
	}
	if p.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	return nil
}

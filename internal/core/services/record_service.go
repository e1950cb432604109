package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Views whose cached render is invalidated by a mutation.
const (
	PathSalesFunnel      = "/sales-funnel"
	PathKanban           = "/sales-funnel/kanban"
	PathServiceContracts = "/service-contracts"
	PathExpenses         = "/expenses"
	PathSalary           = "/salary"
	PathStock            = "/stock"
	PathDashboard        = "/dashboard"
)

// recordPtr lets the generic service call the pointer-receiver Record methods of T.
type recordPtr[T any] interface {
	*T
	domain.Record
}

// recordService implements the CRUD operations shared by every record type.
type recordService[T any, PT recordPtr[T]] struct {
	BaseService
	entity    string
	repo      portsrepo.RecordRepositoryFacade[T]
	validate  *validator.Validate
	publisher portssvc.RevalidationPublisher
	paths     []string
}

// RecordOption is a functional option shared by the record services.
type RecordOption func(*BaseService, *recordDeps)

type recordDeps struct {
	validate  *validator.Validate
	publisher portssvc.RevalidationPublisher
}

// WithRecordAuthorizer applies the row-level policy to updates and deletes.
func WithRecordAuthorizer(a portssvc.RecordAuthorizerSvc) RecordOption {
	return func(b *BaseService, _ *recordDeps) { b.Authorizer = a }
}

// WithRevalidation publishes the affected views after every mutation.
func WithRevalidation(p portssvc.RevalidationPublisher) RecordOption {
	return func(_ *BaseService, d *recordDeps) { d.publisher = p }
}

func WithValidator(v *validator.Validate) RecordOption {
	return func(_ *BaseService, d *recordDeps) { d.validate = v }
}

func WithEventTracker(t EventTracker) RecordOption {
	return func(b *BaseService, _ *recordDeps) { b.Tracker = t }
}

func newRecordService[T any, PT recordPtr[T]](entity string, repo portsrepo.RecordRepositoryFacade[T], paths []string, opts ...RecordOption) *recordService[T, PT] {
	s := &recordService[T, PT]{entity: entity, repo: repo, paths: paths}
	deps := recordDeps{}
	for _, opt := range opts {
		opt(&s.BaseService, &deps)
	}
	s.validate = deps.validate
	if s.validate == nil {
		s.validate = domain.NewValidator()
	}
	s.publisher = deps.publisher
	return s
}

func (s *recordService[T, PT]) List(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	q = q.Normalized()
	q.Search = utils.NormalizeSearch(q.Search)

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", map[string]any{"entity": s.entity})
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{Items: items, Total: total, Limit: q.Limit, Offset: q.Offset}, nil
}

func (s *recordService[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService[T, PT]) Create(ctx context.Context, actorID string, rec T) (*T, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	p := PT(&rec)
	p.Stamp(uuid.NewString(), actorID, s.now())
	p.Derive()
	if err := domain.ValidateRecord(s.validate, rec); err != nil {
		return nil, err
	}

	saved, err := s.repo.Insert(ctx, rec)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert record", map[string]any{"entity": s.entity, "actor_id": actorID})
		return nil, err
	}
	s.LogInfo(ctx, "Record created", map[string]any{"entity": s.entity, "id": PT(saved).RecordID()})
	s.publish()
	return saved, nil
}

// loadForWrite fetches the row and applies the row-level policy. A missing
// row is ErrNotFound; an existing row the actor may not touch is ErrForbidden.
func (s *recordService[T, PT]) loadForWrite(ctx context.Context, actorID, id string) (*T, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeRecord(ctx, actorID, PT(existing).OwnerID()); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *recordService[T, PT]) Update(ctx context.Context, actorID, id string, patch domain.Patch[T]) (*T, error) {
	existing, err := s.loadForWrite(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if patch != nil {
		patch.Apply(existing)
	}
	p := PT(existing)
	p.Touch(s.now())
	p.Derive()
	if err := domain.ValidateRecord(s.validate, *existing); err != nil {
		return nil, err
	}

	saved, err := s.repo.Update(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "Failed to update record", map[string]any{"entity": s.entity, "id": id})
		return nil, err
	}
	s.publish()
	return saved, nil
}

func (s *recordService[T, PT]) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.loadForWrite(ctx, actorID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete record", map[string]any{"entity": s.entity, "id": id})
		return err
	}
	s.LogInfo(ctx, "Record deleted", map[string]any{"entity": s.entity, "id": id, "actor_id": actorID})
	s.publish()
	return nil
}

func (s *recordService[T, PT]) listAll(ctx context.Context, q domain.ListQuery) ([]T, error) {
	rows, err := s.repo.ListAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.entity, err)
	}
	return rows, nil
}

func (s *recordService[T, PT]) publish() {
	if s.publisher != nil {
		s.publisher.Publish(s.paths...)
	}
}

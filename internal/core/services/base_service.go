package services

import (
	"context"
	"time"

	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/rs/zerolog"
)

// EventTracker receives product analytics events.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.RecordAuthorizerSvc
	Tracker    EventTracker
	// Now returns the current time; tests replace it.
	Now func() time.Time
}

// GetLogger gets the request logger from context or the global one
func (s *BaseService) GetLogger(ctx context.Context) *zerolog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, fields map[string]any) {
	s.GetLogger(ctx).Error().Err(err).Fields(fields).Msg(msg)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, fields map[string]any) {
	s.GetLogger(ctx).Info().Fields(fields).Msg(msg)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, fields map[string]any) {
	s.GetLogger(ctx).Debug().Fields(fields).Msg(msg)
}

func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// AuthorizeRecord checks the row-level policy for a mutation of a record owned by ownerID.
func (s *BaseService) AuthorizeRecord(ctx context.Context, actorID string, ownerID *string) error {
	if s.Authorizer != nil {
		return s.Authorizer.AuthorizeRecordAction(ctx, actorID, ownerID)
	}
	s.LogDebug(ctx, "No record authorizer provided, access granted by default", map[string]any{
		"actor_id": actorID,
	})
	return nil
}

// AuthorizeAdmin requires actorID to be an admin when an authorizer is configured.
func (s *BaseService) AuthorizeAdmin(ctx context.Context, actorID string) error {
	if s.Authorizer != nil {
		return s.Authorizer.AuthorizeAdmin(ctx, actorID)
	}
	s.LogDebug(ctx, "No record authorizer provided, admin access granted by default", map[string]any{
		"actor_id": actorID,
	})
	return nil
}

func (s *BaseService) track(actorID, event string, props map[string]any) {
	if s.Tracker != nil {
		s.Tracker.Enqueue(actorID, event, props)
	}
}

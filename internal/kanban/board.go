// Package kanban keeps an optimistic, client-side copy of the sales funnel
// board. A drop moves a card immediately, asks the server to persist the new
// stage, and then either refetches the board or falls back to the last state
// the server confirmed.
package kanban

import (
	"context"
	"sync"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/rs/zerolog"
)

// Source loads the board and persists stage moves.
type Source interface {
	LoadColumns(ctx context.Context) (domain.KanbanColumns, error)
	MoveStage(ctx context.Context, itemID string, stage domain.Stage) error
}

// DropTarget is where a drag gesture ended. CardID wins over Column when both are set.
type DropTarget struct {
	CardID string
	Column domain.Stage
}

// Result reports what a Drop did.
type Result int

const (
	// NoOp means the target did not resolve or matched the current stage.
	NoOp Result = iota
	// Moved means the server accepted the move.
	Moved
	// RolledBack means the server rejected the move and the board was restored.
	RolledBack
)

func (r Result) String() string {
	switch r {
	case Moved:
		return "moved"
	case RolledBack:
		return "rolled_back"
	default:
		return "noop"
	}
}

// Board holds the six stage columns of the funnel.
type Board struct {
	mu        sync.Mutex
	columns   domain.KanbanColumns
	confirmed domain.KanbanColumns

	source   Source
	logger   zerolog.Logger
	onChange func(domain.KanbanColumns)
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for rollback warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) { b.logger = l }
}

// WithOnChange registers a callback that receives a copy of the columns after every local change.
func WithOnChange(fn func(domain.KanbanColumns)) Option {
	return func(b *Board) { b.onChange = fn }
}

func NewBoard(source Source, opts ...Option) *Board {
	b := &Board{
		columns:   domain.GroupByStage(nil),
		confirmed: domain.GroupByStage(nil),
		source:    source,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load replaces the board with the server's current state.
func (b *Board) Load(ctx context.Context) error {
	cols, err := b.source.LoadColumns(ctx)
	if err != nil {
		return err
	}
	cols = normalize(cols)

	b.mu.Lock()
	b.columns = cols
	b.confirmed = cols.Clone()
	snapshot := b.columns.Clone()
	b.mu.Unlock()

	b.notify(snapshot)
	return nil
}

// Columns returns a copy of the board as currently displayed.
func (b *Board) Columns() domain.KanbanColumns {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.columns.Clone()
}

// StageOf finds the column holding itemID by scanning the columns in board order.
func (b *Board) StageOf(itemID string) (domain.Stage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stageOfLocked(itemID)
}

func (b *Board) stageOfLocked(itemID string) (domain.Stage, bool) {
	for _, stage := range domain.PipelineStages {
		for _, item := range b.columns[stage] {
			if item.ID == itemID {
				return stage, true
			}
		}
	}
	return "", false
}

func (b *Board) resolveLocked(target DropTarget) (domain.Stage, bool) {
	if target.CardID != "" {
		return b.stageOfLocked(target.CardID)
	}
	if target.Column.IsValid() {
		return target.Column, true
	}
	return "", false
}

// Drop moves itemID to the stage named by target. Server failures are
// logged and answered with a rollback to the last confirmed board.
func (b *Board) Drop(ctx context.Context, itemID string, target DropTarget) Result {
	b.mu.Lock()
	from, ok := b.stageOfLocked(itemID)
	if !ok {
		b.mu.Unlock()
		return NoOp
	}
	to, ok := b.resolveLocked(target)
	if !ok || to == from {
		b.mu.Unlock()
		return NoOp
	}
	b.moveLocked(itemID, from, to)
	optimistic := b.columns.Clone()
	b.mu.Unlock()

	b.notify(optimistic)

	if err := b.source.MoveStage(ctx, itemID, to); err != nil {
		b.logger.Warn().Err(err).
			Str("item_id", itemID).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("Stage move rejected, restoring board")
		b.restore()
		return RolledBack
	}

	if err := b.Load(ctx); err != nil {
		b.logger.Warn().Err(err).Str("item_id", itemID).Msg("Refetch after stage move failed")
	}
	return Moved
}

func (b *Board) moveLocked(itemID string, from, to domain.Stage) {
	src := b.columns[from]
	for i, item := range src {
		if item.ID != itemID {
			continue
		}
		rest := make([]domain.Opportunity, 0, len(src)-1)
		rest = append(rest, src[:i]...)
		rest = append(rest, src[i+1:]...)
		b.columns[from] = rest

		item.Stage = to
		b.columns[to] = append(b.columns[to], item)
		return
	}
}

func (b *Board) restore() {
	b.mu.Lock()
	b.columns = b.confirmed.Clone()
	snapshot := b.columns.Clone()
	b.mu.Unlock()

	b.notify(snapshot)
}

func (b *Board) notify(cols domain.KanbanColumns) {
	if b.onChange != nil {
		b.onChange(cols)
	}
}

// normalize guarantees all six columns exist and drops unknown stages.
func normalize(cols domain.KanbanColumns) domain.KanbanColumns {
	out := domain.GroupByStage(nil)
	for _, stage := range domain.PipelineStages {
		if items, ok := cols[stage]; ok {
			out[stage] = append(out[stage], items...)
		}
	}
	return out
}

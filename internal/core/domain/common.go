package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedBy *string   `db:"created_by" json:"createdBy"` // profiles.id of the creator
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

func (a *AuditFields) stamp(actorID string, now time.Time) {
	a.CreatedBy = &actorID
	a.CreatedAt = now
	a.UpdatedAt = now
}

// Record is implemented by every entity persisted through the generic record store.
type Record interface {
	RecordID() string
	// Stamp assigns the identity and audit columns of a new row.
	Stamp(id, actorID string, now time.Time)
	// Touch marks the row as modified at now.
	Touch(now time.Time)
	// Derive recomputes the stored columns that are pure functions of other columns.
	Derive()
	// OwnerID returns the creator used by the row-level policy.
	OwnerID() *string
}

// Patch is a partial update applied on top of a stored record.
type Patch[T any] interface {
	Apply(rec *T)
}

// PatchFunc adapts a function to the Patch interface.
type PatchFunc[T any] func(rec *T)

func (f PatchFunc[T]) Apply(rec *T) { f(rec) }

func ptr[T any](v T) *T { return &v }

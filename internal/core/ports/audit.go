package ports

import (
	"context"
	"time"
)

// AuditEvent records a single mutation applied to a time record. Events are
// informational; losing one never fails the mutation that produced it.
type AuditEvent struct {
	Action   string // "created", "updated", "deleted"
	RecordID string
	OwnerID  string // owner of the record at the time of the mutation
	ActorID  string // who performed the mutation
	At       time.Time
}

// AuditSink is where the record service hands off audit events. The queue
// dispatcher implements it; Enqueue must not block the request path beyond
// its channel buffer.
type AuditSink interface {
	Enqueue(event AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *AuditEvent) error
}

// AuditService processes enqueued audit events.
type AuditService interface {
	Process(ctx context.Context, event AuditEvent) error
}

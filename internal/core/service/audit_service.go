package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clockwise/timetracker/internal/api/metrics"
	"github.com/clockwise/timetracker/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists record mutation
// events to the audit trail.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event. Failures are reported to the caller
// (the dispatcher logs and counts them) but never reach the mutation path
// that emitted the event.
func (s *auditService) Process(ctx context.Context, event ports.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditFailuresTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("audit event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
	s.log.Debug().
		Str("action", event.Action).
		Str("record_id", event.RecordID).
		Str("owner_id", event.OwnerID).
		Msg("audit event recorded")

	return nil
}

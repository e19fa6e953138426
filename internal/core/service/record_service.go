package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockwise/timetracker/internal/api/metrics"
	"github.com/clockwise/timetracker/internal/core/domain"
	"github.com/clockwise/timetracker/internal/core/export"
	"github.com/clockwise/timetracker/internal/core/ports"
)

const exportFileName = "Time Records Export.html"

type RecordService struct {
	records ports.RecordRepository
	users   ports.UserRepository
	audit   ports.AuditSink
	logger  zerolog.Logger
}

func NewRecordService(records ports.RecordRepository, users ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *RecordService {
	return &RecordService{records: records, users: users, audit: audit, logger: logger}
}

// ListRecords resolves the actor's visible scope, applies the date filter and
// pagination window, and annotates the page with compliance information for
// actors of rank at least Manager.
func (s *RecordService) ListRecords(ctx context.Context, input ports.ListRecordsInput) (*ports.ListRecordsResult, error) {
	// 1. Reject malformed pagination before touching storage.
	if input.RowsPerPage <= 0 {
		return nil, fmt.Errorf("%w: rows per page must be positive", domain.ErrInvalidQuery)
	}
	if input.Page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", domain.ErrInvalidQuery)
	}

	// 2. Visible scope: self-only below Admin, optionally narrowed for Admin.
	owner := input.Actor.VisibleOwner(input.UserID)

	page, total, err := s.records.List(ctx, ports.ListRecordsFilter{
		UserID:      owner,
		From:        input.From,
		To:          input.To,
		Page:        input.Page,
		RowsPerPage: input.RowsPerPage,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("actor_id", input.Actor.ID).Msg("failed to list records")
		return nil, err
	}

	items := s.buildViews(ctx, input.Actor, page)

	totalPages := int(total) / input.RowsPerPage
	if int(total)%input.RowsPerPage != 0 {
		totalPages++
	}

	return &ports.ListRecordsResult{
		Items:       items,
		Total:       total,
		Page:        input.Page,
		RowsPerPage: input.RowsPerPage,
		TotalPages:  totalPages,
	}, nil
}

// buildViews maps a page of records to the read model. Owner names are
// resolved for admins (they see everyone's records); the compliance
// classification is computed for actors of rank at least Manager, against
// each record owner's preferred working hours and the date totals within the
// fetched page.
func (s *RecordService) buildViews(ctx context.Context, actor domain.Actor, page []*domain.Record) []ports.RecordView {
	annotate := actor.Role.AtLeast(domain.RoleManager)

	byOwner := make(map[string][]domain.Record)
	if annotate {
		for _, r := range page {
			byOwner[r.UserID] = append(byOwner[r.UserID], *r)
		}
	}

	owners := make(map[string]*domain.User)
	lookupOwner := func(id string) *domain.User {
		if u, seen := owners[id]; seen {
			return u
		}
		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", id).Msg("record owner lookup failed")
			u = nil
		}
		owners[id] = u
		return u
	}

	items := make([]ports.RecordView, 0, len(page))
	for _, r := range page {
		view := ports.RecordView{
			ID:     r.ID,
			Date:   r.Date,
			Hour:   r.Hour,
			Note:   r.Note,
			UserID: r.UserID,
		}
		if annotate {
			if u := lookupOwner(r.UserID); u != nil {
				view.UserName = u.FullName()
				dailyTotal := domain.HoursForDate(byOwner[r.UserID], r.Date)
				view.Compliance = &ports.ComplianceView{
					DailyTotal: dailyTotal,
					Compliant:  dailyTotal <= u.PreferredWorkingHours,
				}
			}
		}
		items = append(items, view)
	}
	return items
}

// CreateRecord validates the candidate and stores a new record. Non-admin
// actors always create for themselves; only an admin may name an arbitrary
// owner, and that owner must resolve to a concrete user.
func (s *RecordService) CreateRecord(ctx context.Context, actor domain.Actor, input ports.RecordInput) (*domain.Record, error) {
	owner, err := s.resolveOwner(ctx, actor, input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.records.Insert(ctx, &domain.Record{
		Date:      normalizeDate(input.Date),
		Hour:      input.Hour,
		Note:      input.Note,
		UserID:    owner,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("actor_id", actor.ID).Msg("failed to create record")
		metrics.RecordWriteFailuresTotal.WithLabelValues("created", "storage").Inc()
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("created", actor.Role.String()).Inc()
	s.audit.Enqueue(ports.AuditEvent{Action: "created", RecordID: created.ID, OwnerID: owner, ActorID: actor.ID, At: now})
	s.logger.Info().Str("record_id", created.ID).Str("owner_id", owner).Str("actor_id", actor.ID).Msg("record created")

	return created, nil
}

// GetRecord retrieves a single record. A record outside the actor's visible
// scope is reported as not found, identical to a missing one, so existence
// never leaks across users.
func (s *RecordService) GetRecord(ctx context.Context, actor domain.Actor, id string) (*domain.Record, error) {
	rec, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.MayAccess(domain.OpRead, rec.UserID) {
		return nil, domain.ErrRecordNotFound
	}
	return rec, nil
}

// UpdateRecord runs the same validation as create, enforces ownership, and
// replaces the record. Only an admin may reassign the owner. The write is
// last-write-wins at the storage layer.
func (s *RecordService) UpdateRecord(ctx context.Context, actor domain.Actor, id string, input ports.RecordInput) (*domain.Record, error) {
	owner, err := s.resolveOwner(ctx, actor, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.MayAccess(domain.OpUpdate, existing.UserID) {
		return nil, domain.ErrForbidden
	}

	updated := &domain.Record{
		ID:        existing.ID,
		Date:      normalizeDate(input.Date),
		Hour:      input.Hour,
		Note:      input.Note,
		UserID:    owner,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.records.Replace(ctx, updated); err != nil {
		s.logger.Error().Err(err).Str("record_id", id).Msg("failed to update record")
		metrics.RecordWriteFailuresTotal.WithLabelValues("updated", "storage").Inc()
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("updated", actor.Role.String()).Inc()
	s.audit.Enqueue(ports.AuditEvent{Action: "updated", RecordID: id, OwnerID: owner, ActorID: actor.ID, At: updated.UpdatedAt})
	s.logger.Info().Str("record_id", id).Str("owner_id", owner).Str("actor_id", actor.ID).Msg("record updated")

	return updated, nil
}

// DeleteRecord removes a record the actor owns (or any record, for admins).
func (s *RecordService) DeleteRecord(ctx context.Context, actor domain.Actor, id string) error {
	existing, err := s.records.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.MayAccess(domain.OpDelete, existing.UserID) {
		return domain.ErrForbidden
	}

	if err := s.records.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("record_id", id).Msg("failed to delete record")
		metrics.RecordWriteFailuresTotal.WithLabelValues("deleted", "storage").Inc()
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("deleted", actor.Role.String()).Inc()
	s.audit.Enqueue(ports.AuditEvent{Action: "deleted", RecordID: id, OwnerID: existing.UserID, ActorID: actor.ID, At: time.Now().UTC()})
	s.logger.Info().Str("record_id", id).Str("actor_id", actor.ID).Msg("record removed")

	return nil
}

// ExportRecords resolves the full filtered set under the same visibility
// rule as List (no pagination window) and renders it as a downloadable HTML
// document.
func (s *RecordService) ExportRecords(ctx context.Context, input ports.ExportInput) (*ports.ExportResult, error) {
	owner := input.Actor.VisibleOwner(input.UserID)

	all, _, err := s.records.List(ctx, ports.ListRecordsFilter{
		UserID: owner,
		From:   input.From,
		To:     input.To,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("actor_id", input.Actor.ID).Msg("failed to resolve export set")
		return nil, err
	}

	records := make([]domain.Record, 0, len(all))
	for _, r := range all {
		records = append(records, *r)
	}

	scope := "self"
	if input.Actor.CanSeeAll() {
		scope = "all"
		if owner != "" {
			scope = "user"
		}
	}
	metrics.ExportsTotal.WithLabelValues(scope).Inc()
	s.logger.Info().Str("actor_id", input.Actor.ID).Int("records", len(records)).Msg("records exported")

	return &ports.ExportResult{
		FileName:    exportFileName,
		ContentType: "text/html; charset=utf-8",
		Body:        export.FormatHTML(records, input.From, input.To),
	}, nil
}

// resolveOwner runs field validation and decides who the record belongs to.
// Shared by the create and update paths so both validate identically.
func (s *RecordService) resolveOwner(ctx context.Context, actor domain.Actor, input ports.RecordInput) (string, error) {
	errs := domain.ValidateRecord(domain.RecordDraft{
		Date:   input.Date,
		Hour:   input.Hour,
		Note:   input.Note,
		UserID: input.UserID,
	}, actor.Role)
	if len(errs) > 0 {
		return "", &domain.ValidationError{Fields: errs}
	}

	if actor.Role == domain.RoleAdmin {
		// The admin-supplied user reference must resolve to a concrete user.
		if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return "", domain.UserRequiredError()
			}
			return "", err
		}
		return input.UserID, nil
	}

	if !actor.MaySetOwner(input.UserID) {
		return "", domain.ErrForbidden
	}
	return actor.ID, nil
}

// normalizeDate strips the time component; only the calendar date is
// meaningful for grouping.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockwise/timetracker/internal/core/ports"
)

type stubAuditRepo struct {
	inserted  []ports.AuditEvent
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *ports.AuditEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *event)
	return nil
}

func TestAuditServiceProcess(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := ports.AuditEvent{
		Action:   "created",
		RecordID: "rec_1",
		OwnerID:  "emp_1",
		ActorID:  "admin_1",
		At:       time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].RecordID != "rec_1" {
		t.Fatalf("inserted = %+v", repo.inserted)
	}
}

func TestAuditServiceProcessWrapsInsertError(t *testing.T) {
	cause := errors.New("write concern failed")
	svc := NewAuditService(&stubAuditRepo{insertErr: cause}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.AuditEvent{Action: "deleted", RecordID: "rec_1"})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

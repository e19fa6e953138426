package ports

import (
	"context"
	"time"

	"github.com/clockwise/timetracker/internal/core/domain"
)

// RecordInput carries the candidate fields for creating or updating a record.
// UserID is empty for non-admin actors (the owner is implied to be the actor).
type RecordInput struct {
	Date   time.Time
	Hour   int
	Note   []string
	UserID string
}

// ListRecordsInput carries all parameters for the list endpoint.
type ListRecordsInput struct {
	Actor       domain.Actor
	From        time.Time // optional, inclusive
	To          time.Time // optional, inclusive
	UserID      string    // optional owner filter, honored for admins only
	Page        int       // 0-based
	RowsPerPage int       // must be positive
}

// ComplianceView classifies a record's date against the owner's preferred
// working hours. Present only for actors of rank at least Manager.
type ComplianceView struct {
	// DailyTotal is the hour sum of all visible records sharing this
	// record's owner and date.
	DailyTotal int
	// Compliant is true when DailyTotal stays within the owner's preferred
	// working hours.
	Compliant bool
}

// RecordView is the read model returned by List: the record plus the owner's
// display name and the informational compliance classification.
type RecordView struct {
	ID         string
	Date       time.Time
	Hour       int
	Note       []string
	UserID     string
	UserName   string
	Compliance *ComplianceView
}

// ListRecordsResult is returned by ListRecords.
type ListRecordsResult struct {
	Items       []RecordView
	Total       int64
	Page        int
	RowsPerPage int
	TotalPages  int
}

// ExportInput carries the filter parameters for the export endpoint. The
// visibility rule is the same as List; UserID narrows the scope for admins.
type ExportInput struct {
	Actor  domain.Actor
	From   time.Time
	To     time.Time
	UserID string
}

// ExportResult is a rendered, downloadable document.
type ExportResult struct {
	FileName    string
	ContentType string
	Body        []byte
}

// RecordService defines the use-case operations on time records. Every
// operation takes the actor explicitly and enforces the access policy before
// touching storage.
type RecordService interface {
	ListRecords(ctx context.Context, input ListRecordsInput) (*ListRecordsResult, error)
	CreateRecord(ctx context.Context, actor domain.Actor, input RecordInput) (*domain.Record, error)
	GetRecord(ctx context.Context, actor domain.Actor, id string) (*domain.Record, error)
	UpdateRecord(ctx context.Context, actor domain.Actor, id string, input RecordInput) (*domain.Record, error)
	DeleteRecord(ctx context.Context, actor domain.Actor, id string) error
	ExportRecords(ctx context.Context, input ExportInput) (*ExportResult, error)
}

package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dateLayout is the wire format for calendar dates in queries and bodies.
const dateLayout = "2006-01-02"

// --- Request types ---

// recordRequest is the candidate payload for create and update. Field rules
// (required fields, hour range, admin-only user) are enforced by the domain
// validator so both paths and the tests see identical messages; the handler
// only rejects payloads it cannot bind.
type recordRequest struct {
	Date string   `json:"date"` // YYYY-MM-DD; empty means not supplied
	Hour int      `json:"hour"`
	Note []string `json:"note"`
	User string   `json:"user,omitempty"` // owner id; admins only
}

type preferredHoursRequest struct {
	PreferredWorkingHours int `json:"preferred_working_hours" validate:"required,gte=1,lte=24"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal changes.

type recordResponse struct {
	ID   string   `json:"id"`
	Date string   `json:"date"`
	Hour int      `json:"hour"`
	Note []string `json:"note"`
	User string   `json:"user"`
}

type complianceResponse struct {
	DailyTotal int  `json:"daily_total"`
	Compliant  bool `json:"compliant"`
}

// recordListItemResponse is a record plus the read-model annotations: the
// owner's display name (admin listings) and the informational compliance
// classification (actors of rank at least Manager).
type recordListItemResponse struct {
	ID         string              `json:"id"`
	Date       string              `json:"date"`
	Hour       int                 `json:"hour"`
	Note       []string            `json:"note"`
	User       string              `json:"user"`
	UserName   string              `json:"user_name,omitempty"`
	Compliance *complianceResponse `json:"compliance,omitempty"`
}

type paginationResponse struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	RowsPerPage int   `json:"rows_per_page"`
	TotalPages  int   `json:"total_pages"`
}

type listRecordsResponse struct {
	Data       []recordListItemResponse `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}

type userResponse struct {
	ID                    string `json:"id"`
	FullName              string `json:"full_name"`
	Role                  string `json:"role"`
	PreferredWorkingHours int    `json:"preferred_working_hours"`
}

type userSummaryResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

package export

import (
	"strings"
	"testing"
	"time"

	"github.com/clockwise/timetracker/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCaptionVariants(t *testing.T) {
	from := date(2023, time.May, 1)
	to := date(2023, time.May, 31)

	cases := []struct {
		name     string
		from, to time.Time
		want     string
	}{
		{"both bounds", from, to, "Time Records from 05/01/2023 to 05/31/2023"},
		{"from only", from, time.Time{}, "Time Records from 05/01/2023"},
		{"to only", time.Time{}, to, "Time Records before 05/31/2023"},
		{"no bounds", time.Time{}, time.Time{}, "All Time Records"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Caption(tc.from, tc.to); got != tc.want {
				t.Fatalf("Caption = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatHTMLRows(t *testing.T) {
	records := []domain.Record{
		{Date: date(2023, time.June, 13), Hour: 8, Note: []string{"planning", "review"}},
		{Date: date(2023, time.June, 12), Hour: 3, Note: []string{"standup"}},
	}

	out := string(FormatHTML(records, time.Time{}, time.Time{}))

	if !strings.Contains(out, "<caption>All Time Records</caption>") {
		t.Fatalf("missing caption in output:\n%s", out)
	}
	if !strings.Contains(out, "<th>No</th><th>Date</th><th>Total time</th><th>Notes</th>") {
		t.Fatalf("missing header row in output:\n%s", out)
	}
	// Rows keep caller order and are numbered from 1.
	first := strings.Index(out, ">1</td><td>06/13/2023</td><td>8</td><td>planning<br/>review</td>")
	second := strings.Index(out, ">2</td><td>06/12/2023</td><td>3</td><td>standup</td>")
	if first == -1 || second == -1 || second < first {
		t.Fatalf("rows missing or out of order:\n%s", out)
	}
}

func TestFormatHTMLEscapesNotes(t *testing.T) {
	records := []domain.Record{
		{Date: date(2023, time.June, 12), Hour: 2, Note: []string{"<script>alert(1)</script>"}},
	}

	out := string(FormatHTML(records, time.Time{}, time.Time{}))
	if strings.Contains(out, "<script>") {
		t.Fatalf("note content not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped note content:\n%s", out)
	}
}

func TestFormatHTMLEmptySet(t *testing.T) {
	out := string(FormatHTML(nil, time.Time{}, time.Time{}))
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "</table>") {
		t.Fatalf("empty export should still render the table shell:\n%s", out)
	}
	if strings.Contains(out, "<td") {
		t.Fatalf("empty export must not render data cells:\n%s", out)
	}
}

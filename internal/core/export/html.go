// Package export renders a filtered record set into a captioned, static HTML
// document for download. The formatter does not re-sort: rows appear in the
// order the caller resolved them.
package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/clockwise/timetracker/internal/core/domain"
)

const dateLayout = "01/02/2006"

const styleBlock = `<style>
body {
  text-align: center;
}
table {
  margin: auto;
  margin-top: 100px;
  width: 80%;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
th, td {
  padding: 5px;
  text-align: left;
}
caption {
  font-size: 20px;
  margin-bottom: 10px;
}
</style>`

// Caption derives the document caption from the date-range filter.
func Caption(from, to time.Time) string {
	switch {
	case !from.IsZero() && !to.IsZero():
		return fmt.Sprintf("Time Records from %s to %s", from.Format(dateLayout), to.Format(dateLayout))
	case !from.IsZero():
		return fmt.Sprintf("Time Records from %s", from.Format(dateLayout))
	case !to.IsZero():
		return fmt.Sprintf("Time Records before %s", to.Format(dateLayout))
	}
	return "All Time Records"
}

// FormatHTML renders one row per record with columns: ordinal (starting at
// 1), formatted date, hour, and the note lines joined with line breaks. The
// input is never mutated.
func FormatHTML(records []domain.Record, from, to time.Time) []byte {
	var b strings.Builder
	b.WriteString(styleBlock)
	b.WriteString("\n<table>\n")
	b.WriteString("<caption>" + html.EscapeString(Caption(from, to)) + "</caption>\n")
	b.WriteString("<tr><th>No</th><th>Date</th><th>Total time</th><th>Notes</th></tr>\n")

	for i, r := range records {
		lines := make([]string, 0, len(r.Note))
		for _, line := range r.Note {
			lines = append(lines, html.EscapeString(line))
		}
		fmt.Fprintf(&b, "<tr><td style=\"width:20px\">%d</td><td>%s</td><td>%d</td><td>%s</td></tr>\n",
			i+1, r.Date.Format(dateLayout), r.Hour, strings.Join(lines, "<br/>"))
	}

	b.WriteString("</table>")
	return []byte(b.String())
}

package page

import "fmt"

// Outcome is what a form submission reports back. RowsAffected is surfaced as is;
// zero is a successful no-op, not an error.
type Outcome struct {
	Message      string `json:"message"`
	RowsAffected int64  `json:"rows_affected"`
}

// Updated phrases an update outcome, flagging the no-op case.
func Updated(subject string, rows int64) Outcome {
	msg := subject + "."
	if rows == 0 {
		msg = fmt.Sprintf("%s (if existed). No rows changed.", subject)
	}
	return Outcome{Message: msg, RowsAffected: rows}
}

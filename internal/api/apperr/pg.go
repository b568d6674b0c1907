package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// FromPG maps a pgconn.PgError to a Problem. Returns (Problem, true) if mapped.
func FromPG(err error) (Problem, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return Problem{}, false
	}

	p := Problem{
		Title:  "Database error",
		Status: 500,
		Detail: strings.TrimSpace(pg.Message),
	}

	switch pg.Code {
	case "23514": // check_violation: pin_length / strength domain checks
		p.Title = "Constraint violation"
		p.Status = 400
		if strings.Contains(pg.ConstraintName, "pin_length") {
			p.FieldErrors = []FieldError{{Field: "pin_length", Code: "invalid", Message: "pin_length must be 4 or 6"}}
		}
		if strings.Contains(pg.ConstraintName, "strength") {
			p.FieldErrors = []FieldError{{Field: "strength", Code: "invalid", Message: "strength must be STRONG or WEAK"}}
		}
	case "23502": // not_null_violation
		p.Title = "Missing value"
		p.Status = 400
		if pg.ColumnName != "" {
			p.FieldErrors = []FieldError{{Field: pg.ColumnName, Code: "not_null", Message: pg.ColumnName + " is required"}}
		}
	case "53300", "57P03": // too_many_connections, cannot_connect_now
		p.Title = "Database unavailable"
		p.Status = 503
		p.Retryable = true
	}

	return p, true
}

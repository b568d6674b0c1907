package audit

import (
	"context"
	"database/sql"
	"strings"
)

// SQLStore persists checks in Postgres (public.mpin_checks).
//
// Schema:
//
//	CREATE TABLE public.mpin_checks (
//	    id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//	    pin_length INT NOT NULL CHECK (pin_length IN (4, 6)),
//	    strength   TEXT NOT NULL CHECK (strength IN ('STRONG', 'WEAK')),
//	    reasons    TEXT NOT NULL DEFAULT '',
//	    request_id TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type SQLStore struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Record(ctx context.Context, c Check) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO public.mpin_checks (pin_length, strength, reasons, request_id) VALUES ($1, $2, $3, $4)`,
		c.PINLength, c.Strength, strings.Join(c.Reasons, ","), c.RequestID,
	)
	return err
}

func (s *SQLStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE strength = 'WEAK'), COUNT(*) FILTER (WHERE pin_length = 4) FROM public.mpin_checks`,
	).Scan(&st.Total, &st.Weak, &st.Len4)
	if err != nil {
		return Stats{}, err
	}
	st.Strong = st.Total - st.Weak
	st.Len6 = st.Total - st.Len4
	return st, nil
}

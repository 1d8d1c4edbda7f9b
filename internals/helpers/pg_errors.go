// file: internals/helpers/pg_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// IsUniqueViolation: sinyal duplikat yang otoritatif datang dari constraint DB,
// bukan dari pre-check query (pre-check bisa balapan antar request).
// Driver gorm-postgres memakai pgx; lib/pq tetap dicek untuk koneksi legacy.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation ||
		strings.Contains(strings.ToLower(errString(err)), "duplicate key")
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgFKViolation
}

func pgCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

package repository

import (
	"errors"

	"language_quiz_backend/internal/util"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func wrapDBError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &util.DatabaseError{Op: op, Err: err, Sensitive: isDriverError(err)}
}

// isDriverError reports whether err came from a SQL driver. Driver messages
// can echo statements and bound values, so they are not shown to clients.
func isDriverError(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}
	var liteErr sqlite3.Error
	return errors.As(err, &liteErr)
}

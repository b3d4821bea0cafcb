package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

type FailureKind string

const (
	FailureConnectivity FailureKind = "connectivity"
	FailureSchema       FailureKind = "schema"
	FailureQuery        FailureKind = "query"
	FailureValidation   FailureKind = "validation"
	FailureEmpty        FailureKind = "empty"
)

// Failure is the typed reason a section could not produce its data.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Op      string      `json:"op,omitempty"`
	Message string      `json:"message"`
	Err     error       `json:"-"`
}

func (f *Failure) Error() string {
	if f.Op == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Op, f.Message)
}

func (f *Failure) Unwrap() error { return f.Err }

// Fail classifies err and attaches op. An existing *Failure keeps its kind.
func Fail(op string, err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		if f.Op == "" {
			cp := *f
			cp.Op = op
			return &cp
		}
		return f
	}
	return &Failure{Kind: Classify(err), Op: op, Message: err.Error(), Err: err}
}

func Invalid(message string) *Failure {
	return &Failure{Kind: FailureValidation, Message: message}
}

func Empty(message string) *Failure {
	return &Failure{Kind: FailureEmpty, Message: message}
}

// Classify maps a driver error onto the failure taxonomy.
func Classify(err error) FailureKind {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}

	// connection / timeout
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) {
		return FailureConnectivity
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureConnectivity
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return FailureConnectivity
	}

	// postgres
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "42P01" || pgErr.Code == "42703":
			return FailureSchema
		case strings.HasPrefix(pgErr.Code, "08"):
			return FailureConnectivity
		}
		return FailureQuery
	}

	// mysql
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1146, 1054, 1049:
			return FailureSchema
		case 1040, 1045, 1053:
			return FailureConnectivity
		}
		return FailureQuery
	}

	// sqlite reports schema problems as plain text
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such table"), strings.Contains(msg, "no such column"):
		return FailureSchema
	case strings.Contains(msg, "database is closed"), strings.Contains(msg, "connection refused"):
		return FailureConnectivity
	}
	return FailureQuery
}

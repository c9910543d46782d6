// Package txmanager runs closures inside database transactions. The open
// transaction travels through context (dbmetrics.WithTx), so repositories
// pick it up transparently via dbmetrics.GetExecutor.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/turfspot/TurfBookingService/pkg/dbmetrics"
)

const (
	// Postgres SQLSTATE codes surfaced to callers as typed errors
	codeSerializationFailure = "40001"
	codeExclusionViolation   = "23P01"
	codeUniqueViolation      = "23505"
)

var (
	// ErrBeginTx возвращается, когда не удалось открыть транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, когда не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization возвращается, когда сериализуемая транзакция была
	// прервана из-за конкурентной записи (SQLSTATE 40001)
	ErrSerialization = errors.New("txmanager: serializable transaction aborted")
)

// TxBeginner abstracts the database handle the manager runs on.
// *dbmetrics.DB satisfies it with or without metrics attached.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs functions inside transactions
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a manager over db
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a default-isolation transaction
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
// A serialization abort is returned as ErrSerialization without retrying:
// for the booking commit path the correct reaction (pick another slot)
// belongs to the caller, not to this layer.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn inside a read-only transaction
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return wrapSQLState(err)
	}

	if err := tx.Commit(); err != nil {
		return wrapSQLState(fmt.Errorf("%w: %v", ErrCommitTx, err))
	}

	return nil
}

// wrapSQLState attaches ErrSerialization to serialization aborts so callers
// can match with errors.Is without importing pq.
func wrapSQLState(err error) error {
	if IsSQLState(err, codeSerializationFailure) {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return err
}

// IsSQLState reports whether err carries the given Postgres SQLSTATE code
func IsSQLState(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

// IsExclusionViolation reports an EXCLUDE constraint violation (23P01)
func IsExclusionViolation(err error) bool {
	return IsSQLState(err, codeExclusionViolation)
}

// IsUniqueViolation reports a unique constraint violation (23505)
func IsUniqueViolation(err error) bool {
	return IsSQLState(err, codeUniqueViolation)
}

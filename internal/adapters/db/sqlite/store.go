// Package sqlite is the relational storage backend, built on gorm and the
// pure-Go SQLite driver. A unit of work is a database transaction; the open
// transaction travels in the context handed to entity mutators.
//
// Entity handles are snapshots of a row. They reflect the writes made
// through them, and lose those writes again when the transaction that made
// them rolls back; load a fresh handle to observe writes made elsewhere.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Transactor = (*Store)(nil)

// Open connects to the database at dsn. SQLite allows a single writer, so
// the pool is capped at one connection.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", dsn, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", dsn, err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Store owns the connection and hands out entity handles.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store on an open connection.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InTx runs fn inside a database transaction. A nested call joins the
// transaction already carried by ctx. When the transaction rolls back, the
// handles written through it are restored to their earlier state too.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	st := &txState{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st.tx = tx
		return fn(context.WithValue(ctx, txKey{}, st))
	})
	if err != nil {
		st.rollback()
	}
	return err
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// conn returns the transaction carried by ctx, or the pool outside one.
func (s *Store) conn(ctx context.Context) *gorm.DB {
	if st := txFrom(ctx); st != nil {
		return st.tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// load reads the row of model type T stored under id.
func load[T any](ctx context.Context, s *Store, kind forum.Kind, id int64) (T, error) {
	var m T
	err := s.conn(ctx).Take(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	if err != nil {
		return m, fmt.Errorf("loading %s %d: %w", kind, id, err)
	}
	return m, nil
}

// set updates columns of the row stored under id.
func (s *Store) set(ctx context.Context, model any, id int64, values map[string]any) error {
	res := s.conn(ctx).Model(model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("row %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// remove deletes the row stored under id.
func (s *Store) remove(ctx context.Context, model any, id int64) error {
	res := s.conn(ctx).Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("row %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// delta is one counter adjustment.
type delta struct {
	column string
	by     int
}

// bump adjusts counter columns of one row. Counters never go negative: the
// update matches no row when any would, and the write is refused.
func (s *Store) bump(ctx context.Context, model any, id int64, deltas ...delta) error {
	q := s.conn(ctx).Model(model).Where("id = ?", id)
	values := make(map[string]any, len(deltas))
	for _, d := range deltas {
		q = q.Where(d.column+" + ? >= 0", d.by)
		values[d.column] = gorm.Expr(d.column+" + ?", d.by)
	}

	res := q.Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewValidationError("counters", "cannot be negative")
	}
	return nil
}

// require checks that r is a stored row of model's table.
func (s *Store) require(ctx context.Context, model any, field string, r forum.Repository) error {
	if r == nil || r.ID() == 0 {
		return missing(field)
	}
	var n int64
	if err := s.conn(ctx).Model(model).Where("id = ?", r.ID()).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return missing(field)
	}
	return nil
}

func missing(field string) error {
	return domain.NewValidationError(field, "does not exist")
}

package config

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoConnection is returned when the store cannot be reached.
var ErrNoConnection = errors.New("no database connection")

// Connector hands out one connection per logical operation.
// The caller owns the returned Conn and must Close it.
type Connector interface {
	Connect(ctx context.Context) (*Conn, error)
}

// Conn is a single checked-out handle on the store.
type Conn struct {
	DB    *gorm.DB
	close func() error
}

// NewConn wraps db. closeFn runs once on Close; it may be nil.
func NewConn(db *gorm.DB, closeFn func() error) *Conn {
	return &Conn{DB: db, close: closeFn}
}

// Close releases the connection. Safe to call more than once.
func (c *Conn) Close() error {
	if c == nil || c.close == nil {
		return nil
	}
	fn := c.close
	c.close = nil
	return fn()
}

// OpenFunc opens the raw database handle for a DSN.
type OpenFunc func(dsn string) (*sql.DB, error)

// PostgresConnector opens a dedicated postgres connection for every Connect.
type PostgresConnector struct {
	cfg    DatabaseConfig
	logger *zap.Logger
	open   OpenFunc
}

// NewPostgresConnector builds a connector for cfg. A nil open uses the pgx driver.
func NewPostgresConnector(cfg DatabaseConfig, log *zap.Logger, open OpenFunc) *PostgresConnector {
	if open == nil {
		open = func(dsn string) (*sql.DB, error) {
			return sql.Open("pgx", dsn)
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PostgresConnector{cfg: cfg, logger: log, open: open}
}

// Connect opens and pings a connection. Failures are logged here and
// reported as ErrNoConnection.
func (p *PostgresConnector) Connect(ctx context.Context) (*Conn, error) {
	sqlDB, err := p.open(p.cfg.DSN())
	if err != nil {
		p.logger.Error("Error connecting to the database",
			zap.String("dsn", p.cfg.Redacted()), zap.Error(err))
		return nil, errors.Wrapf(ErrNoConnection, "%v", err)
	}

	// one logical checkout, one physical connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		p.logger.Error("Error connecting to the database",
			zap.String("dsn", p.cfg.Redacted()), zap.Error(err))
		_ = sqlDB.Close()
		return nil, errors.Wrapf(ErrNoConnection, "%v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		p.logger.Error("Error initialising database session", zap.Error(err))
		_ = sqlDB.Close()
		return nil, errors.Wrapf(ErrNoConnection, "%v", err)
	}

	return NewConn(db.WithContext(ctx), sqlDB.Close), nil
}

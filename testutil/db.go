// Package testutil provides a sqlmock-backed connector for package tests.
package testutil

import (
	"context"
	"sync"
	"testing"

	"madad-backend/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FakeConnector hands out gorm sessions over one sqlmock database and
// counts every Connect and Close.
type FakeConnector struct {
	Mock sqlmock.Sqlmock
	// Err, when set, makes Connect fail without opening anything.
	Err error

	mu     sync.Mutex
	db     *gorm.DB
	opened int
	closed int
}

// NewFakeConnector builds a connector whose queries are matched by Mock.
func NewFakeConnector(t *testing.T) *FakeConnector {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return &FakeConnector{Mock: mock, db: db}
}

func (f *FakeConnector) Connect(ctx context.Context) (*config.Conn, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	f.mu.Lock()
	f.opened++
	f.mu.Unlock()

	return config.NewConn(f.db.WithContext(ctx), func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.closed++
		return nil
	}), nil
}

// Opened is the number of successful Connect calls.
func (f *FakeConnector) Opened() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened
}

// Closed is the number of released connections.
func (f *FakeConnector) Closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Open reports connections handed out and not yet closed.
func (f *FakeConnector) Open() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened - f.closed
}

// ServiceColumns are the columns the listing query selects.
var ServiceColumns = []string{
	"id", "service_name", "title", "provider_name",
	"location", "service_description", "rating", "price_per_hour",
}

package config

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func mockOpener(t *testing.T) (OpenFunc, sqlmock.Sqlmock, *string) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	var gotDSN string
	return func(dsn string) (*sql.DB, error) {
		gotDSN = dsn
		return db, nil
	}, mock, &gotDSN
}

func TestPostgresConnector_Connect(t *testing.T) {
	open, mock, dsn := mockOpener(t)
	mock.ExpectPing()
	mock.ExpectClose()

	cfg := DatabaseConfig{Host: "localhost", Port: "5432", Name: "madad_services_db", SSLMode: "disable"}
	conn, err := NewPostgresConnector(cfg, nil, open).Connect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, conn.DB)
	assert.Equal(t, cfg.DSN(), *dsn)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresConnector_PingFailure(t *testing.T) {
	open, mock, _ := mockOpener(t)
	mock.ExpectPing().WillReturnError(errors.New("password authentication failed for user \"madad_user\""))
	mock.ExpectClose()

	core, logs := observer.New(zap.ErrorLevel)
	conn, err := NewPostgresConnector(DatabaseConfig{User: "madad_user", Password: "secret"}, zap.New(core), open).
		Connect(context.Background())

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrNoConnection)
	assert.Contains(t, err.Error(), "password authentication failed")
	assert.NoError(t, mock.ExpectationsWereMet())

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Error connecting to the database", entry.Message)
	assert.NotContains(t, entry.ContextMap()["dsn"], "secret")
}

func TestPostgresConnector_OpenFailure(t *testing.T) {
	open := func(string) (*sql.DB, error) { return nil, errors.New("unknown driver") }

	conn, err := NewPostgresConnector(DatabaseConfig{}, nil, open).Connect(context.Background())

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestConn_CloseNil(t *testing.T) {
	var c *Conn
	assert.NoError(t, c.Close())
	assert.NoError(t, NewConn(nil, nil).Close())
}

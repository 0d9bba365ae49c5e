// services/setup.go
package services

import (
	"context"

	"madad-backend/config"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	createServicesTable = `CREATE TABLE IF NOT EXISTS services (
    id SERIAL PRIMARY KEY,
    service_name VARCHAR(255) NOT NULL,
    title VARCHAR(255) NOT NULL,
    provider_name VARCHAR(255) NOT NULL,
    location VARCHAR(255),
    service_description TEXT,
    rating DECIMAL(3, 2),
    price_per_hour DECIMAL(10, 2) NOT NULL
)`
	countServices     = `SELECT COUNT(*) FROM services`
	dropServicesTable = `DROP TABLE IF EXISTS services CASCADE`
)

// Initializer provisions the services table. It is run by hand during
// deployment and never from a request.
type Initializer struct {
	connector config.Connector
	logger    *zap.Logger
}

func NewInitializer(connector config.Connector, log *zap.Logger) *Initializer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Initializer{connector: connector, logger: log}
}

// Setup runs EnsureSchema then EnsureSeed. A failing step does not stop the
// next one; all failures are returned together.
func (i *Initializer) Setup(ctx context.Context) error {
	var errs error
	if err := i.EnsureSchema(ctx); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := i.EnsureSeed(ctx); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// EnsureSchema creates the services table if it does not exist.
func (i *Initializer) EnsureSchema(ctx context.Context) error {
	return i.withConn(ctx, "create table", func(db *gorm.DB) error {
		if err := db.Exec(createServicesTable).Error; err != nil {
			return err
		}
		i.logger.Info("Services table created successfully")
		return nil
	})
}

// EnsureSeed inserts the initial catalog when the table is empty and
// reports how many rows it wrote. A populated table is left untouched.
func (i *Initializer) EnsureSeed(ctx context.Context) (int, error) {
	inserted := 0
	err := i.withConn(ctx, "insert data", func(db *gorm.DB) error {
		var count int64
		if err := db.Raw(countServices).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			i.logger.Info("Services data already exists, insertion skipped", zap.Int64("rows", count))
			return nil
		}

		rows := SeedServices()
		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&rows).Error
		})
		if err != nil {
			return err
		}
		inserted = len(rows)
		i.logger.Info("Inserted services successfully", zap.Int("rows", inserted))
		return nil
	})
	return inserted, err
}

// DropTable removes the services table and everything depending on it.
func (i *Initializer) DropTable(ctx context.Context) error {
	return i.withConn(ctx, "drop table", func(db *gorm.DB) error {
		if err := db.Exec(dropServicesTable).Error; err != nil {
			return err
		}
		i.logger.Warn("Services table dropped")
		return nil
	})
}

func (i *Initializer) withConn(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	conn, err := i.connector.Connect(ctx)
	if err != nil {
		i.logger.Error("Failed to connect to the database, cannot "+op, zap.Error(err))
		return &SetupError{Op: op, Err: err}
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			i.logger.Warn("Error closing database connection", zap.String("op", op), zap.Error(cerr))
		}
	}()

	if err := fn(conn.DB); err != nil {
		i.logger.Error("Error during "+op, zap.Error(err))
		return &SetupError{Op: op, Err: err}
	}
	return nil
}

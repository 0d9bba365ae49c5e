// services/catalog.go
package services

import (
	"context"

	"madad-backend/config"
	"madad-backend/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const listServicesQuery = `SELECT id, service_name, title, provider_name, location, service_description, rating, price_per_hour FROM services`

// Catalog serves the read side of the services table.
type Catalog struct {
	connector config.Connector
	logger    *zap.Logger
}

func NewCatalog(connector config.Connector, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{connector: connector, logger: log}
}

// ListServices returns every listing in store order.
// Errors are ErrConnection or ErrQuery.
func (s *Catalog) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		s.logger.Warn("Failed to connect to the database, cannot retrieve services", zap.Error(err))
		return nil, errors.Wrap(ErrConnection, err.Error())
	}
	defer s.release(conn)

	var rows []models.Service
	if err := conn.DB.Raw(listServicesQuery).Scan(&rows).Error; err != nil {
		s.logger.Error("Error querying the database", zap.Error(err))
		return nil, errors.Wrap(ErrQuery, err.Error())
	}

	return models.ToResponses(rows), nil
}

// Ping checks that a connection can be opened and answers.
func (s *Catalog) Ping(ctx context.Context) error {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		return errors.Wrap(ErrConnection, err.Error())
	}
	defer s.release(conn)

	sqlDB, err := conn.DB.DB()
	if err != nil {
		return errors.Wrap(ErrConnection, err.Error())
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(ErrConnection, err.Error())
	}
	return nil
}

func (s *Catalog) release(conn *config.Conn) {
	if err := conn.Close(); err != nil {
		s.logger.Warn("Error closing database connection", zap.Error(err))
	}
}

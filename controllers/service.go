// controllers/service.go
package controllers

import (
	"context"
	"errors"
	"net/http"

	"madad-backend/models"
	"madad-backend/services"
	"madad-backend/utils"

	"github.com/gin-gonic/gin"
)

// ServiceLister is the read side the listing endpoint depends on.
type ServiceLister interface {
	ListServices(ctx context.Context) ([]models.ServiceResponse, error)
}

// ServiceController serves the public catalog.
type ServiceController struct {
	Catalog ServiceLister
}

// GetServices returns every service listing
func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.Catalog.ListServices(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrConnection) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to connect to the database")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		}
		return
	}

	c.JSON(http.StatusOK, list)
}

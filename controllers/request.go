// controllers/request.go
package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonflow-backend/services"
	"salonflow-backend/storage"
	"salonflow-backend/utils"
)

// API bundles the per-entity controllers for route setup.
type API struct {
	Clients      *ClientController
	Staff        *StaffController
	Services     *ServiceController
	Appointments *AppointmentController
	Incomes      *IncomeController
}

// bind decodes the payload from the JSON or form body, driven by the request
// content type (gin binds query parameters on GET). An empty body is fine —
// some actions carry everything in the query string.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return false
	}
	return true
}

// actionOf applies the source priority: JSON/form body first, query string
// as the fallback.
func actionOf(c *gin.Context, bodyAction string) string {
	if bodyAction != "" {
		return bodyAction
	}
	return c.Query("action")
}

func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &conflictErr):
		utils.RespondWithError(c, http.StatusConflict, conflictErr.Error())
	case errors.Is(err, storage.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "record not found")
	default:
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "internal error")
	}
}

func respondUnknownAction(c *gin.Context, action string) {
	if action == "" {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "missing action")
		return
	}
	utils.RespondWithError(c, http.StatusUnprocessableEntity, "unknown action: "+action)
}

// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonflow-backend/services"
	"salonflow-backend/utils"
)

type ServiceController struct {
	Catalog *services.CatalogService
}

type serviceRequest struct {
	Action   string  `json:"action" form:"action"`
	ID       int     `json:"id" form:"id"`
	Name     string  `json:"name" form:"name"`
	Duration int     `json:"duration" form:"duration"`
	Price    float64 `json:"price" form:"price"`
}

func (r serviceRequest) input() services.ServiceInput {
	return services.ServiceInput{Name: r.Name, Duration: r.Duration, Price: r.Price}
}

func (ctl *ServiceController) Handle(c *gin.Context) {
	var req serviceRequest
	if !bind(c, &req) {
		return
	}

	switch actionOf(c, req.Action) {
	case "list":
		items, err := ctl.Catalog.List()
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, items)
	case "add":
		service, err := ctl.Catalog.Add(req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusCreated, service)
	case "edit":
		service, err := ctl.Catalog.Edit(req.ID, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, service)
	case "delete":
		if err := ctl.Catalog.Delete(req.ID); err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
	default:
		respondUnknownAction(c, actionOf(c, req.Action))
	}
}

// controllers/client.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonflow-backend/services"
	"salonflow-backend/utils"
)

type ClientController struct {
	Clients *services.ClientService
}

// clientRequest covers every clients action. Edit is full replacement of the
// editable fields; an omitted appointments list (nil) preserves the stored
// visit history.
type clientRequest struct {
	Action       string   `json:"action" form:"action"`
	ID           int      `json:"id" form:"id"`
	Name         string   `json:"name" form:"name"`
	Email        string   `json:"email" form:"email"`
	Phone        string   `json:"phone" form:"phone"`
	Notes        string   `json:"notes" form:"notes"`
	IsVIP        bool     `json:"isVIP" form:"isVIP"`
	IsBadClient  bool     `json:"isBadClient" form:"isBadClient"`
	Appointments []string `json:"appointments" form:"appointments"`
}

func (r clientRequest) input() services.ClientInput {
	return services.ClientInput{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Notes:        r.Notes,
		IsVIP:        r.IsVIP,
		IsBadClient:  r.IsBadClient,
		Appointments: r.Appointments,
	}
}

func (ctl *ClientController) Handle(c *gin.Context) {
	var req clientRequest
	if !bind(c, &req) {
		return
	}

	switch actionOf(c, req.Action) {
	case "list":
		clients, err := ctl.Clients.List()
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, clients)
	case "add":
		client, err := ctl.Clients.Add(req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusCreated, client)
	case "edit":
		client, err := ctl.Clients.Edit(req.ID, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, client)
	case "delete":
		if err := ctl.Clients.Delete(req.ID); err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
	default:
		respondUnknownAction(c, actionOf(c, req.Action))
	}
}

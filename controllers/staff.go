// controllers/staff.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonflow-backend/services"
	"salonflow-backend/utils"
)

type StaffController struct {
	Staff *services.StaffService
}

type staffRequest struct {
	Action string `json:"action" form:"action"`
	ID     int    `json:"id" form:"id"`
	Name   string `json:"name" form:"name"`
	Role   string `json:"role" form:"role"`
	Email  string `json:"email" form:"email"`
}

func (r staffRequest) input() services.StaffInput {
	return services.StaffInput{Name: r.Name, Role: r.Role, Email: r.Email}
}

func (ctl *StaffController) Handle(c *gin.Context) {
	var req staffRequest
	if !bind(c, &req) {
		return
	}

	switch actionOf(c, req.Action) {
	case "list":
		staff, err := ctl.Staff.List()
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, staff)
	case "add":
		member, err := ctl.Staff.Add(req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusCreated, member)
	case "edit":
		member, err := ctl.Staff.Edit(req.ID, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, member)
	case "delete":
		if err := ctl.Staff.Delete(req.ID); err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
	default:
		respondUnknownAction(c, actionOf(c, req.Action))
	}
}

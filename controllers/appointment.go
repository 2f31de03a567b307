// controllers/appointment.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonflow-backend/models"
	"salonflow-backend/services"
	"salonflow-backend/utils"
)

type AppointmentController struct {
	Appointments *services.AppointmentService
}

type appointmentRequest struct {
	Action    string `json:"action" form:"action"`
	ID        int    `json:"id" form:"id"`
	ClientID  int    `json:"clientId" form:"clientId"`
	StaffID   int    `json:"staffId" form:"staffId"`
	ServiceID int    `json:"serviceId" form:"serviceId"`
	Date      string `json:"date" form:"date"`
	Time      string `json:"time" form:"time"`
	Status    string `json:"status" form:"status"`
}

func (r appointmentRequest) input() services.AppointmentInput {
	return services.AppointmentInput{
		ClientID:  r.ClientID,
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Time:      r.Time,
		Status:    models.AppointmentStatus(r.Status),
	}
}

func (ctl *AppointmentController) Handle(c *gin.Context) {
	var req appointmentRequest
	if !bind(c, &req) {
		return
	}

	switch actionOf(c, req.Action) {
	case "list":
		appointments, err := ctl.Appointments.List()
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, appointments)
	case "add":
		result, err := ctl.Appointments.Add(req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusCreated, result)
	case "edit":
		result, err := ctl.Appointments.Edit(req.ID, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, result)
	case "delete":
		if err := ctl.Appointments.Delete(req.ID); err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
	case "updateStatus":
		result, err := ctl.Appointments.UpdateStatus(req.ID, models.AppointmentStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, result)
	default:
		respondUnknownAction(c, actionOf(c, req.Action))
	}
}

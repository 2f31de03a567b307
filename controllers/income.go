// controllers/income.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salonflow-backend/models"
	"salonflow-backend/services"
	"salonflow-backend/utils"
)

type IncomeController struct {
	Incomes *services.IncomeService
	// Appointments is used by the delete saga to revert a linked
	// appointment back to pending.
	Appointments *services.AppointmentService
}

// incomeRequest covers every incomes action. PaymentMethod and Notes are
// pointers because edit is a partial merge: only supplied fields change.
type incomeRequest struct {
	Action        string  `json:"action" form:"action"`
	ID            int     `json:"id" form:"id"`
	AppointmentID int     `json:"appointmentId" form:"appointmentId"`
	ClientName    string  `json:"clientName" form:"clientName"`
	StaffName     string  `json:"staffName" form:"staffName"`
	ServiceName   string  `json:"serviceName" form:"serviceName"`
	Amount        float64 `json:"amount" form:"amount"`
	Date          string  `json:"date" form:"date"`
	Time          string  `json:"time" form:"time"`
	PaymentMethod *string `json:"paymentMethod" form:"paymentMethod"`
	Notes         *string `json:"notes" form:"notes"`
	DateFrom      string  `json:"dateFrom" form:"dateFrom"`
	DateTo        string  `json:"dateTo" form:"dateTo"`
}

func (ctl *IncomeController) Handle(c *gin.Context) {
	var req incomeRequest
	if !bind(c, &req) {
		return
	}

	switch actionOf(c, req.Action) {
	case "list":
		ctl.list(c, req)
	case "add":
		ctl.add(c, req)
	case "edit":
		ctl.edit(c, req)
	case "delete":
		ctl.delete(c, req)
	case "getSummary":
		summary, err := ctl.Incomes.Summarize(time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, summary)
	default:
		respondUnknownAction(c, actionOf(c, req.Action))
	}
}

func (ctl *IncomeController) list(c *gin.Context, req incomeRequest) {
	filter := services.IncomeFilter{
		DateFrom: firstNonEmpty(req.DateFrom, c.Query("dateFrom")),
		DateTo:   firstNonEmpty(req.DateTo, c.Query("dateTo")),
	}
	method := c.Query("paymentMethod")
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}
	filter.PaymentMethod = models.PaymentMethod(method)

	incomes, err := ctl.Incomes.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, incomes)
}

func (ctl *IncomeController) add(c *gin.Context, req incomeRequest) {
	in := services.IncomeInput{
		AppointmentID: req.AppointmentID,
		ClientName:    req.ClientName,
		StaffName:     req.StaffName,
		ServiceName:   req.ServiceName,
		Amount:        req.Amount,
		Date:          req.Date,
		Time:          req.Time,
	}
	if req.PaymentMethod != nil {
		in.PaymentMethod = models.PaymentMethod(*req.PaymentMethod)
	}
	if req.Notes != nil {
		in.Notes = *req.Notes
	}

	income, err := ctl.Incomes.Add(in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, income)
}

func (ctl *IncomeController) edit(c *gin.Context, req incomeRequest) {
	var method *models.PaymentMethod
	if req.PaymentMethod != nil {
		m := models.PaymentMethod(*req.PaymentMethod)
		method = &m
	}

	income, err := ctl.Incomes.Edit(req.ID, method, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, income)
}

// delete removes the income record, then attempts to revert the linked
// appointment to pending. The two steps are not transactional: a revert
// failure is reported in the response while the delete stands.
func (ctl *IncomeController) delete(c *gin.Context, req incomeRequest) {
	income, err := ctl.Incomes.Delete(req.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	data := gin.H{"deleted": true}
	if income.AppointmentID > 0 {
		if _, err := ctl.Appointments.UpdateStatus(income.AppointmentID, models.StatusPending); err != nil {
			log.Printf("[INCOME] deleted income %d but could not revert appointment %d to pending: %v",
				income.ID, income.AppointmentID, err)
			data["reverted"] = false
			data["revertError"] = err.Error()
		} else {
			data["reverted"] = true
		}
	}
	utils.Respond(c, http.StatusOK, data)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

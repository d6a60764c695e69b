package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// ReportHandler manages intervention report endpoints.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{store: st}
}

// reportRequest defines the request body for report creation and editing.
type reportRequest struct {
	Date                 string `json:"date"` // "YYYY-MM-DD".
	InterventionDuration string `json:"intervention_duration"`
	InterventionType     string `json:"intervention_type"`
	InterventionLocation string `json:"intervention_location"`
	Description          string `json:"description"`
	Supervisor           string `json:"supervisor"`
	Notes                string `json:"notes"`
	TripKms              string `json:"trip_kms"`
	Cost                 string `json:"cost"`
	WorkType             string `json:"work_type"`
	WorkID               uint64 `json:"work_id"`
}

// params validates the body and converts it to store parameters.
func (r reportRequest) params(c *gin.Context) (store.ReportParams, bool) {
	date, errParse := time.Parse(store.DateFormat, strings.TrimSpace(r.Date))
	if errParse != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return store.ReportParams{}, false
	}
	work, errWork := store.ParseWorkRef(strings.TrimSpace(r.WorkType), r.WorkID)
	if errWork != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errWork.Error()})
		return store.ReportParams{}, false
	}
	return store.ReportParams{
		Date:                 date,
		InterventionDuration: r.InterventionDuration,
		InterventionType:     r.InterventionType,
		InterventionLocation: r.InterventionLocation,
		Description:          r.Description,
		Supervisor:           r.Supervisor,
		Notes:                r.Notes,
		TripKms:              r.TripKms,
		Cost:                 r.Cost,
		Work:                 work,
	}, true
}

// Create files a new report for the acting user.
func (h *ReportHandler) Create(c *gin.Context) {
	var body reportRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, ok := body.params(c)
	if !ok {
		return
	}
	acting, ok := actingUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing acting user"})
		return
	}

	report, errCreate := h.store.CreateReport(c.Request.Context(), p, acting.ID)
	if errCreate != nil {
		respondStoreError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": report.ID, "operator_id": report.OperatorID})
}

// List returns reports joined to their polymorphic targets, newest first.
func (h *ReportHandler) List(c *gin.Context) {
	operatorID, ok := optionalIDQuery(c, "operator_id")
	if !ok {
		return
	}
	rows, errList := h.store.ListReports(c.Request.Context(), operatorID)
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":                    row.ReportID,
			"date":                  row.Date.Format(store.DateFormat),
			"intervention_duration": row.InterventionDuration,
			"intervention_type":     row.InterventionType,
			"intervention_location": row.InterventionLocation,
			"description":           row.Description,
			"supervisor":            row.Supervisor,
			"notes":                 row.Notes,
			"trip_kms":              row.TripKms,
			"cost":                  row.Cost,
			"work_type":             row.WorkType,
			"work_id":               row.WorkID,
			"commission_id":         row.CommissionID,
			"commission_code":       row.CommissionCode,
			"machine_id":            row.MachineID,
			"machine_name":          row.MachineName,
			"operator_id":           row.OperatorID,
			"operator_first_name":   row.OperatorFirstName,
			"operator_last_name":    row.OperatorLastName,
			"client_id":             row.ClientID,
			"client_name":           row.ClientName,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// Get returns a single report enriched for detail views.
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	row, errGet := h.store.GetReport(c.Request.Context(), id)
	if errGet != nil {
		respondStoreError(c, errGet)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                     row.ReportID,
		"date":                   row.Date.Format(store.DateFormat),
		"intervention_duration":  row.InterventionDuration,
		"intervention_type":      row.InterventionType,
		"intervention_location":  row.InterventionLocation,
		"description":            row.Description,
		"supervisor":             row.Supervisor,
		"notes":                  row.Notes,
		"trip_kms":               row.TripKms,
		"cost":                   row.Cost,
		"work_type":              row.WorkType,
		"work_id":                row.WorkID,
		"commission_id":          row.CommissionID,
		"commission_code":        row.CommissionCode,
		"commission_description": row.CommissionDescription,
		"machine_id":             row.MachineID,
		"machine_name":           row.MachineName,
		"plant_id":               row.PlantID,
		"plant_name":             row.PlantName,
		"operator_id":            row.OperatorID,
		"operator_first_name":    row.OperatorFirstName,
		"operator_last_name":     row.OperatorLastName,
		"client_id":              row.ClientID,
		"client_name":            row.ClientName,
	})
}

// Edit overwrites a report's business fields. The report is reassigned to
// the acting user.
func (h *ReportHandler) Edit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body reportRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, ok := body.params(c)
	if !ok {
		return
	}
	acting, ok := actingUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing acting user"})
		return
	}

	report, errEdit := h.store.EditReport(c.Request.Context(), id, p, acting.ID)
	if errEdit != nil {
		respondStoreError(c, errEdit)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": report.ID, "operator_id": report.OperatorID})
}

// Delete removes a report owned by the acting user.
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	acting, ok := actingUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing acting user"})
		return
	}
	if errDelete := h.store.DeleteReport(c.Request.Context(), id, acting.ID); errDelete != nil {
		respondStoreError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// Months returns the distinct month labels present among report dates.
func (h *ReportHandler) Months(c *gin.Context) {
	operatorID, ok := optionalIDQuery(c, "operator_id")
	if !ok {
		return
	}
	workID, ok := optionalIDQuery(c, "work_id")
	if !ok {
		return
	}
	months, errList := h.store.ListMonths(c.Request.Context(), operatorID, workID)
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": months})
}

// ListByMonth returns the reports falling within a "MM/YYYY" month.
func (h *ReportHandler) ListByMonth(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing month"})
		return
	}
	operatorID, ok := optionalIDQuery(c, "operator_id")
	if !ok {
		return
	}
	rows, errList := h.store.ListReportsInMonth(c.Request.Context(), month, operatorID)
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":                    row.ReportID,
			"date":                  row.Date.Format(store.DateFormat),
			"intervention_duration": row.InterventionDuration,
			"intervention_type":     row.InterventionType,
			"intervention_location": row.InterventionLocation,
			"description":           row.Description,
			"supervisor":            row.Supervisor,
			"notes":                 row.Notes,
			"trip_kms":              row.TripKms,
			"cost":                  row.Cost,
			"work_type":             row.WorkType,
			"work_id":               row.WorkID,
			"operator_id":           row.OperatorID,
			"commission_id":         row.CommissionID,
			"commission_code":       row.CommissionCode,
			"machine_id":            row.MachineID,
			"machine_name":          row.MachineName,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// ListInInterval returns commission-typed reports within a date range. The
// historical call contract uses "0" and empty strings to mean "no filter".
func (h *ReportHandler) ListInInterval(c *gin.Context) {
	workID, ok := optionalIDQuery(c, "work_id")
	if !ok {
		return
	}
	operatorID, ok := optionalIDQuery(c, "operator_id")
	if !ok {
		return
	}
	startDate := strings.TrimSpace(c.Query("start_date"))
	endDate := strings.TrimSpace(c.Query("end_date"))

	rows, errList := h.store.ListReportsInInterval(c.Request.Context(), startDate, endDate, workID, operatorID)
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":                     row.ReportID,
			"date":                   row.Date.Format(store.DateFormat),
			"intervention_duration":  row.InterventionDuration,
			"intervention_type":      row.InterventionType,
			"intervention_location":  row.InterventionLocation,
			"description":            row.Description,
			"supervisor":             row.Supervisor,
			"notes":                  row.Notes,
			"trip_kms":               row.TripKms,
			"cost":                   row.Cost,
			"work_id":                row.WorkID,
			"commission_code":        row.CommissionCode,
			"commission_description": row.CommissionDescription,
			"client_name":            row.ClientName,
			"operator_id":            row.OperatorID,
			"operator_first_name":    row.OperatorFirstName,
			"operator_last_name":     row.OperatorLastName,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

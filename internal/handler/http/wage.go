package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WageHandler interface {
	ListAdvances(w http.ResponseWriter, r *http.Request)
	RecordAdvance(w http.ResponseWriter, r *http.Request)
	DeleteAdvance(w http.ResponseWriter, r *http.Request)
	CalculateWages(w http.ResponseWriter, r *http.Request)
	GetEmployeeWage(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	wageService wage.WageService
}

func NewWageHandler(wageService wage.WageService) WageHandler {
	return &wageHandlerImpl{wageService: wageService}
}

func calculateRequestFrom(r *http.Request) wage.CalculateWagesRequest {
	query := r.URL.Query()
	return wage.CalculateWagesRequest{
		StartDate:      query.Get("start_date"),
		EndDate:        query.Get("end_date"),
		AdvanceScoping: query.Get("advance_scoping"),
	}
}

// ListAdvances handles GET /wages/advances?employee_id=
func (h *wageHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	var employeeID *string
	if id := r.URL.Query().Get("employee_id"); id != "" {
		employeeID = &id
	}

	result, err := h.wageService.ListAdvances(r.Context(), scope, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecordAdvance handles POST /wages/advances
func (h *wageHandlerImpl) RecordAdvance(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req wage.RecordAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.wageService.RecordAdvance(r.Context(), scope, req)
	if err != nil {
		slog.Error("RecordAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Advance recorded", "employee_id", result.EmployeeID, "amount", result.AdvanceAmount.String())
	response.Created(w, "Advance recorded successfully", result)
}

// DeleteAdvance handles DELETE /wages/advances/{id}
func (h *wageHandlerImpl) DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	if err := h.wageService.DeleteAdvance(r.Context(), scope, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance deleted successfully", nil)
}

// CalculateWages handles GET /wages/calculate?start_date=&end_date=&advance_scoping=
func (h *wageHandlerImpl) CalculateWages(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	result, err := h.wageService.CalculateWages(r.Context(), scope, calculateRequestFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeWage handles GET /wages/employees/{id}, including the per-day breakdown
func (h *wageHandlerImpl) GetEmployeeWage(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	result, err := h.wageService.GetEmployeeWage(r.Context(), scope, chi.URLParam(r, "id"), calculateRequestFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

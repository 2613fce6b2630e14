package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"
)

// ExpenseService defines the expense operations used by these handlers.
type ExpenseService interface {
	Create(ctx context.Context, expense *models.ExpenseDB) (uuid.UUID, error)
	Get(ctx context.Context, expenseID uuid.UUID) (*models.ExpenseDB, error)
	List(ctx context.Context, filter models.ExpenseFilter, page models.Page) (*models.PagedResult[models.ExpenseDB], error)
	ListAll(ctx context.Context, filter models.ExpenseFilter) ([]models.ExpenseDB, error)
	Summary(ctx context.Context, from, to time.Time) (*models.ExpenseSummary, error)
	Update(ctx context.Context, userID uuid.UUID, expense *models.ExpenseDB) error
	Pay(ctx context.Context, userID, expenseID uuid.UUID, paidDate time.Time) (*models.ExpenseDB, error)
	Delete(ctx context.Context, userID, expenseID uuid.UUID) error
}

// ExpenseRequest represents the JSON body for creating or updating an expense
// swagger:model ExpenseRequest
type ExpenseRequest struct {
	// Short title
	// required: true
	// default: Electric bill
	Title string `json:"title"`

	// Optional description
	Description *string `json:"description"`

	// Category
	// required: true
	// default: Utilities
	Category string `json:"category"`

	// Amount, must be positive
	// required: true
	// default: 120.50
	Amount float64 `json:"amount"`

	// When the expense was incurred, defaults to now
	ExpenseDate *time.Time `json:"expense_date"`

	// Payment due date for bills
	DueDate *time.Time `json:"due_date"`

	// Whether the bill repeats
	IsRecurring bool `json:"is_recurring"`

	// Recurrence interval in months
	RecurrenceMonths *int `json:"recurrence_months"`

	// Who gets paid
	Vendor *string `json:"vendor"`
}

func (req *ExpenseRequest) toModel(createdBy uuid.UUID) *models.ExpenseDB {
	expense := &models.ExpenseDB{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Amount:           req.Amount,
		DueDate:          req.DueDate,
		IsRecurring:      req.IsRecurring,
		RecurrenceMonths: req.RecurrenceMonths,
		Vendor:           req.Vendor,
		CreatedBy:        createdBy,
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	return expense
}

// NewCreateExpenseHandler returns an HTTP handler for recording expenses and bills.
// @Summary Create expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body handlers.ExpenseRequest true "Expense"
// @Success 201 {object} handlers.CreatedResponse "Expense created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /expenses [post]
// @Security BearerAuth
func NewCreateExpenseHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		var req ExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		expenseID, err := svc.Create(r.Context(), req.toModel(claims.UserID))
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{ID: expenseID})
	}
}

// NewGetExpenseHandler returns an HTTP handler for fetching one expense.
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} models.ExpenseDB "Expense"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /expenses/{id} [get]
// @Security BearerAuth
func NewGetExpenseHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenseID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid expense id")
			return
		}

		expense, err := svc.Get(r.Context(), expenseID)
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}

func expenseFilterFromQuery(r *http.Request) models.ExpenseFilter {
	query := r.URL.Query()

	var filter models.ExpenseFilter
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if paid := query.Get("is_paid"); paid != "" {
		isPaid := paid == "true"
		filter.IsPaid = &isPaid
	}
	if from := query.Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.FromDate = &t
		}
	}
	if to := query.Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.ToDate = &t
		}
	}
	return filter
}

// NewListExpensesHandler returns an HTTP handler for listing expenses.
// @Summary List expenses
// @Description Returns a paginated list, filterable by category, paid state, and date range
// @Tags expenses
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param category query string false "Filter by category"
// @Param is_paid query bool false "Filter by paid state"
// @Param from query string false "Inclusive lower date bound, YYYY-MM-DD"
// @Param to query string false "Inclusive upper date bound, YYYY-MM-DD"
// @Success 200 {object} models.PagedResult[models.ExpenseDB] "Expenses"
// @Router /expenses [get]
// @Security BearerAuth
func NewListExpensesHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context(), expenseFilterFromQuery(r), pageFromQuery(r))
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewExpenseSummaryHandler returns an HTTP handler for aggregated expense totals.
// @Summary Expense summary
// @Description Returns totals per category and month for the date range, defaulting to the last twelve months
// @Tags expenses
// @Produce json
// @Param from query string false "Inclusive lower date bound, YYYY-MM-DD"
// @Param to query string false "Inclusive upper date bound, YYYY-MM-DD"
// @Success 200 {object} models.ExpenseSummary "Aggregated totals"
// @Router /expenses/summary [get]
// @Security BearerAuth
func NewExpenseSummaryHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var from, to time.Time
		if raw := query.Get("from"); raw != "" {
			t, err := time.Parse("2006-01-02", raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid from date")
				return
			}
			from = t
		}
		if raw := query.Get("to"); raw != "" {
			t, err := time.Parse("2006-01-02", raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid to date")
				return
			}
			to = t
		}

		summary, err := svc.Summary(r.Context(), from, to)
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// NewExportExpensesHandler returns an HTTP handler that streams expenses as CSV.
// @Summary Export expenses
// @Description Streams every expense matching the filter as a CSV attachment
// @Tags expenses
// @Produce text/csv
// @Param category query string false "Filter by category"
// @Param is_paid query bool false "Filter by paid state"
// @Param from query string false "Inclusive lower date bound, YYYY-MM-DD"
// @Param to query string false "Inclusive upper date bound, YYYY-MM-DD"
// @Success 200 {string} string "CSV payload"
// @Router /expenses/export [get]
// @Security BearerAuth
func NewExportExpensesHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenses, err := svc.ListAll(r.Context(), expenseFilterFromQuery(r))
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)

		cw := csv.NewWriter(w)
		cw.Write([]string{"expense_id", "title", "category", "amount", "expense_date", "due_date", "is_paid", "paid_date", "vendor"})
		for _, e := range expenses {
			row := []string{
				e.ExpenseID.String(),
				e.Title,
				e.Category,
				strconv.FormatFloat(e.Amount, 'f', 2, 64),
				e.ExpenseDate.Format("2006-01-02"),
				"",
				strconv.FormatBool(e.IsPaid),
				"",
				"",
			}
			if e.DueDate != nil {
				row[5] = e.DueDate.Format("2006-01-02")
			}
			if e.PaidDate != nil {
				row[7] = e.PaidDate.Format("2006-01-02")
			}
			if e.Vendor != nil {
				row[8] = *e.Vendor
			}
			cw.Write(row)
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			logger.Log.Errorw("failed to write csv export", "err", err)
		}
	}
}

// NewUpdateExpenseHandler returns an HTTP handler for updating expenses.
// @Summary Update expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body handlers.ExpenseRequest true "Expense"
// @Success 200 {object} models.ExpenseDB "Updated expense"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /expenses/{id} [put]
// @Security BearerAuth
func NewUpdateExpenseHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		expenseID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid expense id")
			return
		}

		var req ExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		expense := req.toModel(claims.UserID)
		expense.ExpenseID = expenseID
		if expense.ExpenseDate.IsZero() {
			expense.ExpenseDate = time.Now()
		}

		if err := svc.Update(r.Context(), claims.UserID, expense); err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}

// PayExpenseRequest represents the JSON body for paying a bill
// swagger:model PayExpenseRequest
type PayExpenseRequest struct {
	// When the bill was paid, defaults to now
	PaidDate *time.Time `json:"paid_date"`
}

// NewPayExpenseHandler returns an HTTP handler for marking bills paid.
// @Summary Pay bill
// @Description Marks a bill as paid. Recurring bills roll their due date forward instead of closing out.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body handlers.PayExpenseRequest true "Payment"
// @Success 200 {object} models.ExpenseDB "Updated expense"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Already paid"
// @Router /expenses/{id}/pay [post]
// @Security BearerAuth
func NewPayExpenseHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		expenseID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid expense id")
			return
		}

		var req PayExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var paidDate time.Time
		if req.PaidDate != nil {
			paidDate = *req.PaidDate
		}

		expense, err := svc.Pay(r.Context(), claims.UserID, expenseID, paidDate)
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}

// NewDeleteExpenseHandler returns an HTTP handler for deleting expenses.
// @Summary Delete expense
// @Tags expenses
// @Param id path string true "Expense ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /expenses/{id} [delete]
// @Security BearerAuth
func NewDeleteExpenseHandler(svc ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		expenseID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid expense id")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, expenseID); err != nil {
			writeExpenseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeExpenseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Expense not found")
	case errors.Is(err, services.ErrAlreadyCompleted):
		writeError(w, http.StatusConflict, "Bill is already paid")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

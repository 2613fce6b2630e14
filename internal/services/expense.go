package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
)

// ExpenseReader defines read operations for expenses and bills.
type ExpenseReader interface {
	GetByID(ctx context.Context, expenseID uuid.UUID) (*models.ExpenseDB, error)
	List(ctx context.Context, filter models.ExpenseFilter, page models.Page) ([]models.ExpenseDB, int, error)
	ListAll(ctx context.Context, filter models.ExpenseFilter) ([]models.ExpenseDB, error)
	Summary(ctx context.Context, from, to time.Time) (*models.ExpenseSummary, error)
}

// ExpenseWriter defines write operations for expenses and bills.
type ExpenseWriter interface {
	Save(ctx context.Context, expense *models.ExpenseDB) (uuid.UUID, error)
	Update(ctx context.Context, expense *models.ExpenseDB) error
	MarkPaid(ctx context.Context, expenseID uuid.UUID, paidDate time.Time, nextDueDate *time.Time) error
	Delete(ctx context.Context, expenseID uuid.UUID) error
}

// ExpenseService tracks household expenses and bill payments.
type ExpenseService struct {
	reader   ExpenseReader
	writer   ExpenseWriter
	recorder ActivityRecorder
	now      func() time.Time
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(reader ExpenseReader, writer ExpenseWriter, recorder ActivityRecorder) *ExpenseService {
	return &ExpenseService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
		now:      time.Now,
	}
}

func (svc *ExpenseService) validate(expense *models.ExpenseDB) error {
	if expense.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !models.IsValidExpenseCategory(expense.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, expense.Category)
	}
	if expense.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if expense.IsRecurring && (expense.RecurrenceMonths == nil || *expense.RecurrenceMonths <= 0) {
		return fmt.Errorf("%w: recurrence interval must be positive", ErrInvalidInput)
	}
	return nil
}

// Create validates and stores a new expense.
func (svc *ExpenseService) Create(ctx context.Context, expense *models.ExpenseDB) (uuid.UUID, error) {
	if expense.ExpenseDate.IsZero() {
		expense.ExpenseDate = svc.now()
	}
	if err := svc.validate(expense); err != nil {
		return uuid.Nil, err
	}

	expenseID, err := svc.writer.Save(ctx, expense)
	if err != nil {
		logger.Log.Errorw("failed to save expense", "title", expense.Title, "err", err)
		return uuid.Nil, err
	}

	svc.recorder.Record(ctx, expense.CreatedBy, "expense_created", "expense", expenseID)

	return expenseID, nil
}

// Get returns an expense by id.
func (svc *ExpenseService) Get(ctx context.Context, expenseID uuid.UUID) (*models.ExpenseDB, error) {
	expense, err := svc.reader.GetByID(ctx, expenseID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get expense", "expenseID", expenseID, "err", err)
		return nil, err
	}
	return expense, nil
}

// List returns a page of expenses matching the filter.
func (svc *ExpenseService) List(ctx context.Context, filter models.ExpenseFilter, page models.Page) (*models.PagedResult[models.ExpenseDB], error) {
	expenses, total, err := svc.reader.List(ctx, filter, page)
	if err != nil {
		logger.Log.Errorw("failed to list expenses", "err", err)
		return nil, err
	}

	result := models.NewPagedResult(expenses, total, page)
	return &result, nil
}

// ListAll returns every expense matching the filter, without pagination.
// Used for exports.
func (svc *ExpenseService) ListAll(ctx context.Context, filter models.ExpenseFilter) ([]models.ExpenseDB, error) {
	expenses, err := svc.reader.ListAll(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list expenses", "err", err)
		return nil, err
	}
	return expenses, nil
}

// Summary returns aggregated totals for the date range. A zero from defaults
// to twelve months before to, a zero to defaults to now.
func (svc *ExpenseService) Summary(ctx context.Context, from, to time.Time) (*models.ExpenseSummary, error) {
	if to.IsZero() {
		to = svc.now()
	}
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	summary, err := svc.reader.Summary(ctx, from, to)
	if err != nil {
		logger.Log.Errorw("failed to build expense summary", "err", err)
		return nil, err
	}
	return summary, nil
}

// Update validates and overwrites an existing expense.
func (svc *ExpenseService) Update(ctx context.Context, userID uuid.UUID, expense *models.ExpenseDB) error {
	if err := svc.validate(expense); err != nil {
		return err
	}

	err := svc.writer.Update(ctx, expense)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update expense", "expenseID", expense.ExpenseID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "expense_updated", "expense", expense.ExpenseID)

	return nil
}

// Pay marks a bill as paid. A recurring bill is not closed out; its due date
// rolls forward by the recurrence interval instead. Paying an already-paid
// one-shot bill fails with ErrAlreadyCompleted.
func (svc *ExpenseService) Pay(ctx context.Context, userID, expenseID uuid.UUID, paidDate time.Time) (*models.ExpenseDB, error) {
	expense, err := svc.Get(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.IsPaid && !expense.IsRecurring {
		return nil, ErrAlreadyCompleted
	}

	if paidDate.IsZero() {
		paidDate = svc.now()
	}

	var nextDue *time.Time
	if expense.IsRecurring && expense.DueDate != nil {
		months := 1
		if expense.RecurrenceMonths != nil && *expense.RecurrenceMonths > 0 {
			months = *expense.RecurrenceMonths
		}
		next := expense.DueDate.AddDate(0, months, 0)
		nextDue = &next
	}

	err = svc.writer.MarkPaid(ctx, expenseID, paidDate, nextDue)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to mark expense paid", "expenseID", expenseID, "err", err)
		return nil, err
	}

	expense.PaidDate = &paidDate
	if nextDue != nil {
		expense.DueDate = nextDue
	} else {
		expense.IsPaid = true
	}

	svc.recorder.Record(ctx, userID, "expense_paid", "expense", expenseID)

	return expense, nil
}

// Delete removes an expense.
func (svc *ExpenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	err := svc.writer.Delete(ctx, expenseID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete expense", "expenseID", expenseID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "expense_deleted", "expense", expenseID)

	return nil
}

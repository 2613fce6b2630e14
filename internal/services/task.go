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

// TaskReader defines read operations for household tasks.
type TaskReader interface {
	GetByID(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error)
	List(ctx context.Context, filter models.TaskFilter, page models.Page) ([]models.TaskDB, int, error)
	ListComments(ctx context.Context, taskID uuid.UUID) ([]models.TaskCommentDB, error)
}

// TaskWriter defines write operations for household tasks.
type TaskWriter interface {
	Save(ctx context.Context, task *models.TaskDB) (uuid.UUID, error)
	Update(ctx context.Context, task *models.TaskDB) error
	Assign(ctx context.Context, taskID, assigneeID uuid.UUID) error
	Complete(ctx context.Context, taskID uuid.UUID, status string, completedDate time.Time, nextDueDate *time.Time) error
	SoftDelete(ctx context.Context, taskID uuid.UUID) error
	SaveComment(ctx context.Context, comment *models.TaskCommentDB) (uuid.UUID, error)
}

// TaskUserReader checks that an assignee exists.
type TaskUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// TaskService manages household tasks, assignments and comments.
type TaskService struct {
	reader   TaskReader
	writer   TaskWriter
	users    TaskUserReader
	recorder ActivityRecorder
	now      func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(reader TaskReader, writer TaskWriter, users TaskUserReader, recorder ActivityRecorder) *TaskService {
	return &TaskService{
		reader:   reader,
		writer:   writer,
		users:    users,
		recorder: recorder,
		now:      time.Now,
	}
}

func (svc *TaskService) validate(task *models.TaskDB) error {
	if task.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !models.IsValidTaskCategory(task.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, task.Category)
	}
	if !models.IsValidPriority(task.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, task.Priority)
	}
	if task.IsRecurring && task.RecurrenceMonths != nil && *task.RecurrenceMonths <= 0 {
		return fmt.Errorf("%w: recurrence interval must be positive", ErrInvalidInput)
	}
	return nil
}

func (svc *TaskService) checkAssignee(ctx context.Context, assigneeID uuid.UUID) error {
	_, err := svc.users.GetByID(ctx, assigneeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: assignee %s does not exist", ErrInvalidInput, assigneeID)
	}
	return err
}

// Create validates and stores a new task.
func (svc *TaskService) Create(ctx context.Context, task *models.TaskDB) (uuid.UUID, error) {
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	task.Status = models.StatusPending

	if err := svc.validate(task); err != nil {
		return uuid.Nil, err
	}
	if task.AssignedTo != nil {
		if err := svc.checkAssignee(ctx, *task.AssignedTo); err != nil {
			return uuid.Nil, err
		}
	}

	taskID, err := svc.writer.Save(ctx, task)
	if err != nil {
		logger.Log.Errorw("failed to save task", "title", task.Title, "err", err)
		return uuid.Nil, err
	}

	svc.recorder.Record(ctx, task.CreatedBy, "task_created", "task", taskID)

	if task.AssignedTo != nil {
		svc.recorder.Notify(ctx, *task.AssignedTo, "task_assigned", "task", taskID)
	}

	return taskID, nil
}

// Get returns a task by id.
func (svc *TaskService) Get(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error) {
	task, err := svc.reader.GetByID(ctx, taskID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get task", "taskID", taskID, "err", err)
		return nil, err
	}
	return task, nil
}

// List returns a page of tasks matching the filter.
func (svc *TaskService) List(ctx context.Context, filter models.TaskFilter, page models.Page) (*models.PagedResult[models.TaskDB], error) {
	tasks, total, err := svc.reader.List(ctx, filter, page)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "err", err)
		return nil, err
	}

	result := models.NewPagedResult(tasks, total, page)
	return &result, nil
}

// Update validates and overwrites an existing task.
func (svc *TaskService) Update(ctx context.Context, userID uuid.UUID, task *models.TaskDB) error {
	if !models.IsValidStatus(task.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, task.Status)
	}
	if err := svc.validate(task); err != nil {
		return err
	}
	if task.AssignedTo != nil {
		if err := svc.checkAssignee(ctx, *task.AssignedTo); err != nil {
			return err
		}
	}

	err := svc.writer.Update(ctx, task)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update task", "taskID", task.TaskID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "task_updated", "task", task.TaskID)

	return nil
}

// Assign hands a task to a family member and notifies them.
func (svc *TaskService) Assign(ctx context.Context, userID, taskID, assigneeID uuid.UUID) error {
	if err := svc.checkAssignee(ctx, assigneeID); err != nil {
		return err
	}

	err := svc.writer.Assign(ctx, taskID, assigneeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to assign task", "taskID", taskID, "assigneeID", assigneeID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "task_assigned", "task", taskID)
	svc.recorder.Notify(ctx, assigneeID, "task_assigned", "task", taskID)

	return nil
}

// Complete marks a task done. A recurring task resets to pending with its due
// date rolled forward. Completing an already-completed one-shot task fails
// with ErrAlreadyCompleted.
func (svc *TaskService) Complete(ctx context.Context, userID, taskID uuid.UUID) (*models.TaskDB, error) {
	task, err := svc.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsRecurring && task.Status == models.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	completedDate := svc.now()

	status := models.StatusCompleted
	var nextDue *time.Time
	if task.IsRecurring {
		status = models.StatusPending
		months := 1
		if task.RecurrenceMonths != nil && *task.RecurrenceMonths > 0 {
			months = *task.RecurrenceMonths
		}
		base := completedDate
		if task.DueDate != nil {
			base = *task.DueDate
		}
		next := base.AddDate(0, months, 0)
		nextDue = &next
	}

	err = svc.writer.Complete(ctx, taskID, status, completedDate, nextDue)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to complete task", "taskID", taskID, "err", err)
		return nil, err
	}

	task.Status = status
	task.CompletedDate = &completedDate
	if nextDue != nil {
		task.DueDate = nextDue
		task.CompletedDate = nil
	}

	svc.recorder.Record(ctx, userID, "task_completed", "task", taskID)

	return task, nil
}

// Delete marks a task inactive.
func (svc *TaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	err := svc.writer.SoftDelete(ctx, taskID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete task", "taskID", taskID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "task_deleted", "task", taskID)

	return nil
}

// Comments returns a task's comments, oldest first.
func (svc *TaskService) Comments(ctx context.Context, taskID uuid.UUID) ([]models.TaskCommentDB, error) {
	if _, err := svc.Get(ctx, taskID); err != nil {
		return nil, err
	}

	comments, err := svc.reader.ListComments(ctx, taskID)
	if err != nil {
		logger.Log.Errorw("failed to list task comments", "taskID", taskID, "err", err)
		return nil, err
	}
	return comments, nil
}

// AddComment attaches a comment to a task.
func (svc *TaskService) AddComment(ctx context.Context, comment *models.TaskCommentDB) (uuid.UUID, error) {
	if comment.Comment == "" {
		return uuid.Nil, fmt.Errorf("%w: comment text is required", ErrInvalidInput)
	}
	if _, err := svc.Get(ctx, comment.TaskID); err != nil {
		return uuid.Nil, err
	}

	commentID, err := svc.writer.SaveComment(ctx, comment)
	if err != nil {
		logger.Log.Errorw("failed to save task comment", "taskID", comment.TaskID, "err", err)
		return uuid.Nil, err
	}

	svc.recorder.Record(ctx, comment.AuthorID, "task_commented", "task", comment.TaskID)

	return commentID, nil
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"
)

// TaskService defines the task operations used by these handlers.
type TaskService interface {
	Create(ctx context.Context, task *models.TaskDB) (uuid.UUID, error)
	Get(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error)
	List(ctx context.Context, filter models.TaskFilter, page models.Page) (*models.PagedResult[models.TaskDB], error)
	Update(ctx context.Context, userID uuid.UUID, task *models.TaskDB) error
	Assign(ctx context.Context, userID, taskID, assigneeID uuid.UUID) error
	Complete(ctx context.Context, userID, taskID uuid.UUID) (*models.TaskDB, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
	Comments(ctx context.Context, taskID uuid.UUID) ([]models.TaskCommentDB, error)
	AddComment(ctx context.Context, comment *models.TaskCommentDB) (uuid.UUID, error)
}

// TaskRequest represents the JSON body for creating or updating a task
// swagger:model TaskRequest
type TaskRequest struct {
	// Short title
	// required: true
	// default: Mow the lawn
	Title string `json:"title"`

	// Optional description
	Description *string `json:"description"`

	// Category
	// required: true
	// default: gardening
	Category string `json:"category"`

	// Priority, defaults to medium
	// default: medium
	Priority string `json:"priority"`

	// Status, defaults to pending
	// default: pending
	Status string `json:"status"`

	// Family member responsible
	AssignedTo *uuid.UUID `json:"assigned_to"`

	// When the task is due
	DueDate *time.Time `json:"due_date"`

	// Whether the task repeats
	IsRecurring bool `json:"is_recurring"`

	// Recurrence interval in months
	RecurrenceMonths *int `json:"recurrence_months"`

	// Where the task needs to be done
	Location *string `json:"location"`

	// Free-form notes
	Notes *string `json:"notes"`
}

func (req *TaskRequest) toModel(createdBy uuid.UUID) *models.TaskDB {
	return &models.TaskDB{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Priority:         req.Priority,
		Status:           req.Status,
		AssignedTo:       req.AssignedTo,
		CreatedBy:        createdBy,
		DueDate:          req.DueDate,
		IsRecurring:      req.IsRecurring,
		RecurrenceMonths: req.RecurrenceMonths,
		Location:         req.Location,
		Notes:            req.Notes,
	}
}

// NewCreateTaskHandler returns an HTTP handler for creating tasks.
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body handlers.TaskRequest true "Task"
// @Success 201 {object} handlers.CreatedResponse "Task created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /tasks [post]
// @Security BearerAuth
func NewCreateTaskHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		taskID, err := svc.Create(r.Context(), req.toModel(claims.UserID))
		if err != nil {
			writeTaskError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{ID: taskID})
	}
}

// NewGetTaskHandler returns an HTTP handler for fetching one task.
// @Summary Get task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskDB "Task"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tasks/{id} [get]
// @Security BearerAuth
func NewGetTaskHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid task id")
			return
		}

		task, err := svc.Get(r.Context(), taskID)
		if err != nil {
			writeTaskError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

// NewListTasksHandler returns an HTTP handler for listing tasks.
// @Summary List tasks
// @Description Returns a paginated list, filterable by status, assignee, and overdue state
// @Tags tasks
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param status query string false "Filter by status"
// @Param assigned_to query string false "Filter by assignee"
// @Param overdue query bool false "Only open tasks past their due date"
// @Success 200 {object} models.PagedResult[models.TaskDB] "Tasks"
// @Router /tasks [get]
// @Security BearerAuth
func NewListTasksHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var filter models.TaskFilter
		if status := query.Get("status"); status != "" {
			filter.Status = &status
		}
		if assignee := query.Get("assigned_to"); assignee != "" {
			assigneeID, err := uuid.Parse(assignee)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid assignee id")
				return
			}
			filter.AssignedTo = &assigneeID
		}
		filter.OverdueOnly = query.Get("overdue") == "true"

		result, err := svc.List(r.Context(), filter, pageFromQuery(r))
		if err != nil {
			writeTaskError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewUpdateTaskHandler returns an HTTP handler for updating tasks.
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body handlers.TaskRequest true "Task"
// @Success 200 {object} models.TaskDB "Updated task"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tasks/{id} [put]
// @Security BearerAuth
func NewUpdateTaskHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		taskID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid task id")
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		task := req.toModel(claims.UserID)
		task.TaskID = taskID
		if task.Status == "" {
			task.Status = models.StatusPending
		}

		if err := svc.Update(r.Context(), claims.UserID, task); err != nil {
			writeTaskError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

// AssignTaskRequest represents the JSON body for assigning a task
// swagger:model AssignTaskRequest
type AssignTaskRequest struct {
	// Family member to assign the task to
	// required: true
	AssignedTo uuid.UUID `json:"assigned_to"`
}

// NewAssignTaskHandler returns an HTTP handler for assigning tasks.
// @Summary Assign task
// @Tags tasks
// @Accept json
// @Param id path string true "Task ID"
// @Param request body handlers.AssignTaskRequest true "Assignment"
// @Success 204 "Assigned"
// @Failure 400 {object} handlers.ErrorResponse "Unknown assignee"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tasks/{id}/assign [post]
// @Security BearerAuth
func NewAssignTaskHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		taskID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid task id")
			return
		}

		var req AssignTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.AssignedTo == uuid.Nil {
			writeError(w, http.StatusBadRequest, "Assignee is required")
			return
		}

		if err := svc.Assign(r.Context(), claims.UserID, taskID, req.AssignedTo); err != nil {
			writeTaskError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewCompleteTaskHandler returns an HTTP handler for completing tasks.
// @Summary Complete task
// @Description Marks a task as completed. Recurring tasks reopen with their due date rolled forward.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskDB "Updated task"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Already completed"
// @Router /tasks/{id}/complete [post]
// @Security BearerAuth
func NewCompleteTaskHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		taskID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid task id")
			return
		}

		task, err := svc.Complete(r.Context(), claims.UserID, taskID)
		if err != nil {
			writeTaskError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

// NewDeleteTaskHandler returns an HTTP handler for deleting tasks.
// @Summary Delete task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tasks/{id} [delete]
// @Security BearerAuth
func NewDeleteTaskHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		taskID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid task id")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, taskID); err != nil {
			writeTaskError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// TaskCommentRequest represents the JSON body for commenting on a task
// swagger:model TaskCommentRequest
type TaskCommentRequest struct {
	// Comment text
	// required: true
	Comment string `json:"comment"`
}

// CommentsResponse wraps the comments on a task
// swagger:model CommentsResponse
type CommentsResponse struct {
	Comments []models.TaskCommentDB `json:"comments"`
}

// NewAddTaskCommentHandler returns an HTTP handler for commenting on tasks.
// @Summary Add comment
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body handlers.TaskCommentRequest true "Comment"
// @Success 201 {object} handlers.CreatedResponse "Comment created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tasks/{id}/comments [post]
// @Security BearerAuth
func NewAddTaskCommentHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		taskID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid task id")
			return
		}

		var req TaskCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		commentID, err := svc.AddComment(r.Context(), &models.TaskCommentDB{
			TaskID:   taskID,
			AuthorID: claims.UserID,
			Comment:  req.Comment,
		})
		if err != nil {
			writeTaskError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{ID: commentID})
	}
}

// NewTaskCommentsHandler returns an HTTP handler for listing task comments.
// @Summary List comments
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} handlers.CommentsResponse "Comments"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tasks/{id}/comments [get]
// @Security BearerAuth
func NewTaskCommentsHandler(svc TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid task id")
			return
		}

		comments, err := svc.Comments(r.Context(), taskID)
		if err != nil {
			writeTaskError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CommentsResponse{Comments: comments})
	}
}

func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, services.ErrAlreadyCompleted):
		writeError(w, http.StatusConflict, "Task is already completed")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openscribe/scribe/pkg/models"
)

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: err.Error()})
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), models.CreateTaskInput{
		SourceType: req.SourceType,
		SourceURL:  req.SourceURL,
		SizeBytes:  req.SizeBytes,
		IsTrial:    req.IsTrial,
		Params:     req.Params,
	}, callerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateTaskResponse{
		TaskID:     task.ID,
		Status:     string(task.Status),
		RetryAfter: s.tasks.RetryAfter(),
	})
}

// GetTask handles GET /api/v1/tasks/:id.
func (s *Server) GetTask(c *gin.Context) {
	task, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"), callerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskResponseFrom(task))
}

// ListTasks handles GET /api/v1/tasks.
func (s *Server) ListTasks(c *gin.Context) {
	filters := models.TaskFilters{
		Status: c.Query("status"),
	}
	if cursor := c.Query("cursor"); cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "cursor must be an RFC 3339 timestamp"})
			return
		}
		filters.Cursor = &t
	}

	tasks, err := s.tasks.ListTasks(c.Request.Context(), callerFrom(c), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := ListTasksResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, taskResponseFrom(t))
	}
	if len(tasks) > 0 {
		last := tasks[len(tasks)-1].CreatedAt
		resp.NextCursor = &last
	}

	c.JSON(http.StatusOK, resp)
}

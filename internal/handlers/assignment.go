package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/adityagv/homework-hub/internal/errors"
	"github.com/adityagv/homework-hub/internal/middleware"
	"github.com/adityagv/homework-hub/internal/services"
	"github.com/adityagv/homework-hub/internal/utils"
)

type AssignmentHandler struct {
	service *services.AssignmentService
}

func NewAssignmentHandler(service *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// Register wires the HTML pages and the JSON API onto the router.
func (h *AssignmentHandler) Register(r *gin.Engine) {
	r.GET("/", h.Dashboard)
	r.GET("/completed", h.CompletedPage)
	r.POST("/assignments", h.SubmitAssignment)
	r.GET("/assignments/:id/edit", h.EditAssignment)
	r.POST("/assignments/:id/complete", h.CompleteAssignment)

	api := r.Group("/api")
	{
		api.GET("/dashboard", h.APIDashboard)
		api.GET("/assignments", h.APIListAssignments)
		api.POST("/assignments", h.APISubmitAssignment)
		api.GET("/assignments/:id", h.APIGetAssignment)
		api.POST("/assignments/:id/complete", h.APICompleteAssignment)
		api.GET("/completed", h.APICompletedHistory)
	}
}

// Dashboard renders the main page: stats, the active list sorted by deadline,
// and the entry form in create mode.
func (h *AssignmentHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Model": h.service.Dashboard(),
		"Form":  nil,
		"Flash": middleware.TakeFlash(c),
	})
}

// EditAssignment renders the dashboard with the entry form pre-filled and
// switched into update mode. Unknown IDs fall back to the plain dashboard.
func (h *AssignmentHandler) EditAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	form, err := h.service.EditForm(id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Model": h.service.Dashboard(),
		"Form":  form,
		"Flash": middleware.TakeFlash(c),
	})
}

// SubmitAssignment handles the entry form: create when the hidden id field is
// empty, update otherwise. Either way the collection is persisted and the
// browser is sent back to the refreshed dashboard.
func (h *AssignmentHandler) SubmitAssignment(c *gin.Context) {
	input := services.SubmitInput{
		Name:        c.PostForm("name"),
		Subject:     c.PostForm("subject"),
		Description: c.PostForm("description"),
	}

	if idValue := c.PostForm("id"); idValue != "" {
		id, err := strconv.ParseInt(idValue, 10, 64)
		if err == nil {
			input.ID = &id
		}
	}

	deadline, err := utils.ParseDeadline(c.PostForm("deadline"))
	if err != nil {
		middleware.SetFlash(c, "Please enter a valid deadline.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	input.Deadline = deadline

	_, err = h.service.Submit(input)
	switch {
	case err == nil:
		if input.ID != nil {
			middleware.SetFlash(c, "Assignment updated.")
		} else {
			middleware.SetFlash(c, "Assignment saved.")
		}
	case err == services.ErrAssignmentNotFound:
		// Edited assignment vanished; nothing to tell the user.
	default:
		middleware.SetFlash(c, err.Error())
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// CompleteAssignment marks an assignment done. Unknown IDs are a silent
// no-op.
func (h *AssignmentHandler) CompleteAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		if _, err := h.service.Complete(id); err == nil {
			middleware.SetFlash(c, "Assignment completed.")
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// CompletedPage renders the read-only completed-history listing.
func (h *AssignmentHandler) CompletedPage(c *gin.Context) {
	c.HTML(http.StatusOK, "completed.html", gin.H{
		"Items": h.service.CompletedHistory(),
	})
}

// APIDashboard returns the display model as JSON.
func (h *AssignmentHandler) APIDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Dashboard())
}

// APIListAssignments returns the full collection in insertion order.
func (h *AssignmentHandler) APIListAssignments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assignments": h.service.Assignments()})
}

// APIGetAssignment returns a single assignment.
func (h *AssignmentHandler) APIGetAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment id")
		return
	}

	assignment, err := h.service.Find(id)
	if err != nil {
		apierrors.NotFound(c, "Assignment not found")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// APISubmitAssignment creates or updates an assignment from a JSON body.
func (h *AssignmentHandler) APISubmitAssignment(c *gin.Context) {
	type submitRequest struct {
		ID          *int64 `json:"id"`
		Name        string `json:"name" binding:"required"`
		Subject     string `json:"subject"`
		Deadline    string `json:"deadline" binding:"required"`
		Description string `json:"description"`
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		apierrors.BadRequest(c, "Invalid deadline")
		return
	}

	assignment, err := h.service.Submit(services.SubmitInput{
		ID:          req.ID,
		Name:        req.Name,
		Subject:     req.Subject,
		Deadline:    deadline,
		Description: req.Description,
	})
	switch err {
	case nil:
	case services.ErrAssignmentNotFound:
		apierrors.NotFound(c, "Assignment not found")
		return
	case services.ErrNameRequired, services.ErrDeadlineRequired:
		apierrors.BadRequest(c, err.Error())
		return
	default:
		apierrors.InternalError(c, "")
		return
	}

	status := http.StatusCreated
	if req.ID != nil {
		status = http.StatusOK
	}
	c.JSON(status, assignment)
}

// APICompleteAssignment marks an assignment done.
func (h *AssignmentHandler) APICompleteAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment id")
		return
	}

	assignment, err := h.service.Complete(id)
	if err != nil {
		apierrors.NotFound(c, "Assignment not found")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// APICompletedHistory returns the completed-history listing.
func (h *AssignmentHandler) APICompletedHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"completed": h.service.CompletedHistory()})
}

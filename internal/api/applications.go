package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/services"
	"github.com/samber/lo"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Apply handles POST /api/applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBodyError(c, err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(c, collectFieldErrors(err))
		return
	}

	application, err := h.applications.Apply(c.Request.Context(), callerID(c), req.JobID, req.ResumeURL)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newApplicationView(*application))
}

// List handles GET /api/applications: the caller's applications,
// newest-first, jobs populated.
func (h *ApplicationHandler) List(c *gin.Context) {

	applications, err := h.applications.ListForCandidate(c.Request.Context(), callerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(applications, func(entry services.ApplicationWithJob, _ int) applicationWithJobView {
		return newApplicationWithJobView(entry)
	}))
}

// Get handles GET /api/applications/:id, candidate or job owner only.
func (h *ApplicationHandler) Get(c *gin.Context) {

	id, err := parseApplicationID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	details, err := h.applications.Get(c.Request.Context(), callerID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newApplicationDetailView(details))
}

// SetStatus handles PUT /api/applications/:id/status, job owner only.
func (h *ApplicationHandler) SetStatus(c *gin.Context) {

	id, err := parseApplicationID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req statusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		writeBodyError(c, err)
		return
	}
	if err = validate.Struct(&req); err != nil {
		writeError(c, collectFieldErrors(err))
		return
	}

	application, err := h.applications.SetStatus(c.Request.Context(), callerID(c), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newApplicationView(*application))
}

func parseApplicationID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, models.NewNotFoundError("Application")
	}
	return uint(id), nil
}

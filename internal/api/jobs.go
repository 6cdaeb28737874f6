package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/maxaizer/jobboard/internal/services"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Create handles POST /api/jobs.
func (h *JobHandler) Create(c *gin.Context) {

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBodyError(c, err)
		return
	}

	job, err := req.toModel()
	if err != nil {
		writeError(c, err)
		return
	}

	created, err := h.jobs.Create(c.Request.Context(), callerID(c), job)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newJobView(*created, nil))
}

// List handles GET /api/jobs. No identity required.
func (h *JobHandler) List(c *gin.Context) {

	filter, err := parseJobFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}

	jobs, err := h.jobs.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobViews(jobs))
}

// ListMine handles GET /api/jobs/user: the caller's own postings, same
// filter dimensions as the public listing.
func (h *JobHandler) ListMine(c *gin.Context) {

	filter, err := parseJobFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}

	jobs, err := h.jobs.ListByOwner(c.Request.Context(), callerID(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobViews(jobs))
}

// Get handles GET /api/jobs/:id. No identity required.
func (h *JobHandler) Get(c *gin.Context) {

	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	details, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobDetailView(details))
}

// Update handles PUT /api/jobs/:id, owner only.
func (h *JobHandler) Update(c *gin.Context) {

	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req updateJobRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		writeBodyError(c, err)
		return
	}

	update, err := req.toUpdate()
	if err != nil {
		writeError(c, err)
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), callerID(c), id, update)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobView(*job, nil))
}

// Delete handles DELETE /api/jobs/:id, owner only.
func (h *JobHandler) Delete(c *gin.Context) {

	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err = h.jobs.Delete(c.Request.Context(), callerID(c), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job removed"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, models.NewNotFoundError("Job")
	}
	return uint(id), nil
}

// parseJobFilter reads the optional query dimensions. Unknown enum values
// are passed through verbatim and simply match nothing, as the original
// store-side comparison would.
func parseJobFilter(c *gin.Context) (repositories.JobFilter, error) {

	filter := repositories.JobFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
	}

	if raw := c.Query("jobType"); raw != "" {
		if jobType, err := models.ToJobType(raw); err == nil {
			filter.JobType = jobType
		} else {
			filter.JobType = models.JobType(raw)
		}
	}

	if raw := c.Query("remoteOffice"); raw != "" {
		if workMode, err := models.ToWorkMode(raw); err == nil {
			filter.RemoteOffice = workMode
		} else {
			filter.RemoteOffice = models.WorkMode(raw)
		}
	}

	if raw := c.Query("skills"); raw != "" {
		filter.Skills = strings.Split(raw, ",")
	}

	var err error
	if filter.MinSalary, err = parseSalaryBound(c.Query("minSalary"), "minSalary"); err != nil {
		return filter, err
	}
	if filter.MaxSalary, err = parseSalaryBound(c.Query("maxSalary"), "maxSalary"); err != nil {
		return filter, err
	}

	return filter, nil
}

func parseSalaryBound(raw, field string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, models.NewValidationError(field, "must be a number")
	}
	return &value, nil
}

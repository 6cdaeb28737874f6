package api

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/services"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// collectFieldErrors turns validator output into the per-field report the
// API returns, instead of failing on the first bad field.
func collectFieldErrors(err error) *models.ValidationError {

	result := &models.ValidationError{}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		result.Add("body", "invalid request body")
		return result
	}

	for _, fieldError := range fieldErrors {
		switch fieldError.Tag() {
		case "required":
			result.Add(fieldError.Field(), fieldError.Field()+" is required")
		case "email":
			result.Add(fieldError.Field(), "must be a valid email address")
		case "min":
			result.Add(fieldError.Field(), "must be at least "+fieldError.Param()+" characters")
		case "gte":
			result.Add(fieldError.Field(), "must be greater than or equal to "+fieldError.Param())
		default:
			result.Add(fieldError.Field(), "is invalid")
		}
	}
	return result
}

// Salary accepts a JSON number or a numeric string; anything else is
// rejected. One policy for every salary-bearing field.
type Salary float64

var errSalaryNotNumeric = errors.New("monthlySalary must be a number")

func (s *Salary) UnmarshalJSON(data []byte) error {

	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		return errSalaryNotNumeric
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errSalaryNotNumeric
	}
	*s = Salary(value)
	return nil
}

type registerRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Mobile   string   `json:"mobile"`
	Skills   []string `json:"skills"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createJobRequest struct {
	Title          string   `json:"title" validate:"required"`
	CompanyName    string   `json:"companyName" validate:"required"`
	LogoURL        string   `json:"logoUrl"`
	CompanyLogoURL string   `json:"companyLogoUrl"`
	CompanySize    string   `json:"companySize"`
	Location       string   `json:"location" validate:"required"`
	MonthlySalary  Salary   `json:"monthlySalary" validate:"gte=0"`
	JobType        string   `json:"jobType" validate:"required"`
	RemoteOffice   string   `json:"remoteOffice"`
	Description    string   `json:"description" validate:"required"`
	AboutCompany   string   `json:"aboutCompany"`
	AdditionalInfo string   `json:"additionalInfo"`
	SkillsRequired []string `json:"skillsRequired"`
}

// toModel validates and normalizes in one pass, reporting every offending
// field at once.
func (req *createJobRequest) toModel() (*models.Job, error) {

	fieldErrors := &models.ValidationError{}
	if err := validate.Struct(req); err != nil {
		fieldErrors = collectFieldErrors(err)
	}

	jobType, err := models.ToJobType(req.JobType)
	if err != nil && req.JobType != "" {
		fieldErrors.Add("jobType", "jobType must be one of Full Time, Part Time, Internship, Contract, Freelance")
	}

	var workMode models.WorkMode
	if req.RemoteOffice != "" {
		if workMode, err = models.ToWorkMode(req.RemoteOffice); err != nil {
			fieldErrors.Add("remoteOffice", "remoteOffice must be one of Remote, Office, Hybrid")
		}
	}

	if !fieldErrors.Empty() {
		return nil, fieldErrors
	}

	job := models.NewJob(0, req.Title, req.CompanyName, req.Location, float64(req.MonthlySalary),
		jobType, workMode, req.Description, req.SkillsRequired)

	job.LogoURL = req.LogoURL
	if job.LogoURL == "" {
		job.LogoURL = req.CompanyLogoURL
	}
	if req.CompanySize != "" {
		job.CompanySize = req.CompanySize
	}
	if req.AboutCompany != "" {
		job.AboutCompany = req.AboutCompany
	}
	job.AdditionalInfo = req.AdditionalInfo

	return job, nil
}

type updateJobRequest struct {
	Title          *string  `json:"title"`
	CompanyName    *string  `json:"companyName"`
	LogoURL        *string  `json:"logoUrl"`
	CompanySize    *string  `json:"companySize"`
	Location       *string  `json:"location"`
	MonthlySalary  *Salary  `json:"monthlySalary"`
	JobType        *string  `json:"jobType"`
	RemoteOffice   *string  `json:"remoteOffice"`
	Description    *string  `json:"description"`
	AboutCompany   *string  `json:"aboutCompany"`
	AdditionalInfo *string  `json:"additionalInfo"`
	SkillsRequired []string `json:"skillsRequired"`
}

func (req *updateJobRequest) toUpdate() (services.JobUpdate, error) {

	fieldErrors := &models.ValidationError{}
	update := services.JobUpdate{
		Title:          req.Title,
		CompanyName:    req.CompanyName,
		LogoURL:        req.LogoURL,
		CompanySize:    req.CompanySize,
		Location:       req.Location,
		Description:    req.Description,
		AboutCompany:   req.AboutCompany,
		AdditionalInfo: req.AdditionalInfo,
		SkillsRequired: req.SkillsRequired,
	}

	if req.MonthlySalary != nil {
		if *req.MonthlySalary < 0 {
			fieldErrors.Add("monthlySalary", "must be greater than or equal to 0")
		} else {
			salary := float64(*req.MonthlySalary)
			update.MonthlySalary = &salary
		}
	}

	if req.JobType != nil {
		jobType, err := models.ToJobType(*req.JobType)
		if err != nil {
			fieldErrors.Add("jobType", "jobType must be one of Full Time, Part Time, Internship, Contract, Freelance")
		} else {
			update.JobType = &jobType
		}
	}

	if req.RemoteOffice != nil {
		workMode, err := models.ToWorkMode(*req.RemoteOffice)
		if err != nil {
			fieldErrors.Add("remoteOffice", "remoteOffice must be one of Remote, Office, Hybrid")
		} else {
			update.RemoteOffice = &workMode
		}
	}

	if !fieldErrors.Empty() {
		return services.JobUpdate{}, fieldErrors
	}
	return update, nil
}

type applyRequest struct {
	JobID     uint   `json:"jobId" validate:"required"`
	ResumeURL string `json:"resumeUrl"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

package api

import (
	"time"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/services"
	"github.com/samber/lo"
)

// posterView is the public slice of a user embedded in job and application
// responses. Password hashes never leave the service layer.
type posterView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newPosterView(user *models.User) *posterView {
	if user == nil {
		return nil
	}
	return &posterView{ID: user.ID, Name: user.Name, Email: user.Email}
}

type userView struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Mobile       string   `json:"mobile,omitempty"`
	Skills       []string `json:"skills"`
	PostedJobs   []uint   `json:"postedJobs"`
	Applications []uint   `json:"applications"`
}

func newUserView(user *models.User) userView {
	return userView{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Mobile:       user.Mobile,
		Skills:       user.SkillsAsArray(),
		PostedJobs:   user.PostedJobs.AsArray(),
		Applications: user.Applications.AsArray(),
	}
}

type jobView struct {
	ID             uint        `json:"id"`
	Title          string      `json:"title"`
	CompanyName    string      `json:"companyName"`
	LogoURL        string      `json:"logoUrl,omitempty"`
	CompanySize    string      `json:"companySize"`
	Location       string      `json:"location"`
	MonthlySalary  float64     `json:"monthlySalary"`
	JobType        string      `json:"jobType"`
	RemoteOffice   string      `json:"remoteOffice,omitempty"`
	IsRemote       bool        `json:"isRemote"`
	Description    string      `json:"description"`
	AboutCompany   string      `json:"aboutCompany,omitempty"`
	AdditionalInfo string      `json:"additionalInfo,omitempty"`
	SkillsRequired []string    `json:"skillsRequired"`
	PostedBy       *posterView `json:"postedBy"`
	Applicants     []uint      `json:"applicants"`
	CreatedAt      time.Time   `json:"createdAt"`
}

func newJobView(job models.Job, poster *models.User) jobView {
	return jobView{
		ID:             job.ID,
		Title:          job.Title,
		CompanyName:    job.CompanyName,
		LogoURL:        job.LogoURL,
		CompanySize:    job.CompanySize,
		Location:       job.Location,
		MonthlySalary:  job.MonthlySalary,
		JobType:        string(job.JobType),
		RemoteOffice:   string(job.RemoteOffice),
		IsRemote:       job.IsRemote,
		Description:    job.Description,
		AboutCompany:   job.AboutCompany,
		AdditionalInfo: job.AdditionalInfo,
		SkillsRequired: job.SkillsAsArray(),
		PostedBy:       newPosterView(poster),
		Applicants:     job.Applicants.AsArray(),
		CreatedAt:      job.CreatedAt,
	}
}

func newJobViews(entries []services.JobWithPoster) []jobView {
	return lo.Map(entries, func(entry services.JobWithPoster, _ int) jobView {
		return newJobView(entry.Job, entry.Poster)
	})
}

type applicationView struct {
	ID        uint      `json:"id"`
	Job       uint      `json:"job"`
	Candidate uint      `json:"candidate"`
	Status    string    `json:"status"`
	ResumeURL string    `json:"resumeUrl,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
}

func newApplicationView(application models.Application) applicationView {
	return applicationView{
		ID:        application.ID,
		Job:       application.JobID,
		Candidate: application.CandidateID,
		Status:    string(application.Status),
		ResumeURL: application.ResumeURL,
		AppliedAt: application.AppliedAt,
	}
}

// applicationWithJobView populates the job; it is null when the job was
// deleted after the application was filed.
type applicationWithJobView struct {
	ID        uint      `json:"id"`
	Job       *jobView  `json:"job"`
	Candidate uint      `json:"candidate"`
	Status    string    `json:"status"`
	ResumeURL string    `json:"resumeUrl,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
}

func newApplicationWithJobView(entry services.ApplicationWithJob) applicationWithJobView {
	view := applicationWithJobView{
		ID:        entry.Application.ID,
		Candidate: entry.Application.CandidateID,
		Status:    string(entry.Application.Status),
		ResumeURL: entry.Application.ResumeURL,
		AppliedAt: entry.Application.AppliedAt,
	}
	if entry.Job != nil {
		job := newJobView(*entry.Job, nil)
		view.Job = &job
	}
	return view
}

type applicationDetailView struct {
	ID        uint        `json:"id"`
	Job       *jobView    `json:"job"`
	Candidate *posterView `json:"candidate"`
	Status    string      `json:"status"`
	ResumeURL string      `json:"resumeUrl,omitempty"`
	AppliedAt time.Time   `json:"appliedAt"`
}

func newApplicationDetailView(details *services.ApplicationDetails) applicationDetailView {
	view := applicationDetailView{
		ID:        details.Application.ID,
		Candidate: newPosterView(details.Candidate),
		Status:    string(details.Application.Status),
		ResumeURL: details.Application.ResumeURL,
		AppliedAt: details.Application.AppliedAt,
	}
	if details.Job != nil {
		job := newJobView(*details.Job, nil)
		view.Job = &job
	}
	return view
}

type jobDetailView struct {
	jobView
	Applications []applicationView `json:"applications"`
}

func newJobDetailView(details *services.JobDetails) jobDetailView {
	return jobDetailView{
		jobView: newJobView(details.Job, details.Poster),
		Applications: lo.Map(details.Applications, func(application models.Application, _ int) applicationView {
			return newApplicationView(application)
		}),
	}
}

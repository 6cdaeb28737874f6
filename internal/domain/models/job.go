package models

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type JobType string

const (
	FullTime   JobType = "Full Time"
	PartTime   JobType = "Part Time"
	Internship JobType = "Internship"
	Contract   JobType = "Contract"
	Freelance  JobType = "Freelance"
)

// ToJobType normalizes the synonyms seen in the wild ("Full-Time",
// "full_time", "FULL TIME") to one canonical value.
func ToJobType(s string) (JobType, error) {
	switch foldEnum(s) {
	case "fulltime":
		return FullTime, nil
	case "parttime":
		return PartTime, nil
	case "internship":
		return Internship, nil
	case "contract":
		return Contract, nil
	case "freelance":
		return Freelance, nil
	default:
		return "", errors.New("invalid job type")
	}
}

type WorkMode string

const (
	Remote WorkMode = "Remote"
	Office WorkMode = "Office"
	Hybrid WorkMode = "Hybrid"
)

func ToWorkMode(s string) (WorkMode, error) {
	switch foldEnum(s) {
	case "remote":
		return Remote, nil
	case "office":
		return Office, nil
	case "hybrid":
		return Hybrid, nil
	default:
		return "", errors.New("invalid work mode")
	}
}

func foldEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sep := range []string{" ", "-", "_"} {
		s = strings.ReplaceAll(s, sep, "")
	}
	return s
}

const DefaultCompanySize = "11-50"

type Job struct {
	ID             uint `gorm:"primaryKey"`
	Title          string
	CompanyName    string
	LogoURL        string
	CompanySize    string
	Location       string
	MonthlySalary  float64
	JobType        JobType
	RemoteOffice   WorkMode
	IsRemote       bool
	Description    string
	AboutCompany   string
	AdditionalInfo string
	SkillsRequired string
	PostedBy       uint `gorm:"index"`
	Applicants     IDList
	CreatedAt      time.Time
}

func NewJob(postedBy uint, title, companyName, location string, monthlySalary float64,
	jobType JobType, remoteOffice WorkMode, description string, skillsRequired []string) *Job {

	return &Job{
		Title:          title,
		CompanyName:    companyName,
		CompanySize:    DefaultCompanySize,
		Location:       location,
		MonthlySalary:  monthlySalary,
		JobType:        jobType,
		RemoteOffice:   remoteOffice,
		IsRemote:       remoteOffice == Remote,
		Description:    description,
		AboutCompany:   companyName,
		SkillsRequired: JoinTags(skillsRequired),
		PostedBy:       postedBy,
	}
}

func (j *Job) SkillsAsArray() []string {
	return splitTags(j.SkillsRequired)
}

// SetWorkMode keeps the redundant IsRemote flag in sync with RemoteOffice.
func (j *Job) SetWorkMode(mode WorkMode) {
	j.RemoteOffice = mode
	j.IsRemote = mode == Remote
}

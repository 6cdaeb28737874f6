package models

import (
	"time"

	"github.com/pkg/errors"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch foldEnum(s) {
	case "pending":
		return StatusPending, nil
	case "accepted":
		return StatusAccepted, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", errors.New("invalid application status")
	}
}

type Application struct {
	ID          uint `gorm:"primaryKey"`
	JobID       uint `gorm:"index"`
	CandidateID uint `gorm:"index"`
	Status      ApplicationStatus
	ResumeURL   string
	AppliedAt   time.Time
}

func NewApplication(jobID, candidateID uint, resumeURL string) *Application {
	return &Application{
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      StatusPending,
		ResumeURL:   resumeURL,
		AppliedAt:   time.Now(),
	}
}

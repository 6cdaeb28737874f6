package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/domain/events"
	log "github.com/sirupsen/logrus"
)

// ActivityLogger subscribes to the domain event topics and writes one log
// line per event, giving operators a flat activity trail.
type ActivityLogger struct {
	bus EventBus.Bus
}

func NewActivityLogger(bus EventBus.Bus) (*ActivityLogger, error) {

	a := &ActivityLogger{bus: bus}

	if err := bus.Subscribe(events.JobPostedTopic, a.onJobPosted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.JobDeletedTopic, a.onJobDeleted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ApplicationReceivedTopic, a.onApplicationReceived); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ApplicationDecidedTopic, a.onApplicationDecided); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *ActivityLogger) onJobPosted(event events.JobPosted) {
	log.Infof("job %v (%v at %v) posted by user %v", event.JobID, event.Title, event.Company, event.OwnerID)
}

func (a *ActivityLogger) onJobDeleted(event events.JobDeleted) {
	log.Infof("job %v deleted by user %v", event.JobID, event.OwnerID)
}

func (a *ActivityLogger) onApplicationReceived(event events.ApplicationReceived) {
	log.Infof("application %v submitted by user %v for job %v", event.ApplicationID, event.CandidateID, event.JobID)
}

func (a *ActivityLogger) onApplicationDecided(event events.ApplicationDecided) {
	log.Infof("application %v set to %v by job owner %v", event.ApplicationID, event.Status, event.OwnerID)
}

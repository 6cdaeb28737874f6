package events

var (
	JobPostedTopic           = "JobPostedEvent"
	JobDeletedTopic          = "JobDeletedEvent"
	ApplicationReceivedTopic = "ApplicationReceivedEvent"
	ApplicationDecidedTopic  = "ApplicationDecidedEvent"
)

type JobPosted struct {
	JobID   uint
	OwnerID uint
	Title   string
	Company string
}

type JobDeleted struct {
	JobID   uint
	OwnerID uint
}

type ApplicationReceived struct {
	ApplicationID uint
	JobID         uint
	CandidateID   uint
}

type ApplicationDecided struct {
	ApplicationID uint
	JobID         uint
	OwnerID       uint
	Status        string
}

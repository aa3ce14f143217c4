package events

import "github.com/talentflow/talentflow/internal/entities"

var InterviewScheduledTopic = "InterviewScheduledEvent"

// InterviewScheduled is published after a calendar event is created so the
// automation webhook can be notified off the request path.
type InterviewScheduled struct {
	Recruiter       entities.UserProfile
	Candidate       entities.Candidate
	Job             entities.JobPosting
	Title           string
	Start           string
	End             string
	Details         string
	GoogleEventLink string
}

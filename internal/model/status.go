package model

// SubmissionStatus represents the status of a shortening submission
type SubmissionStatus string

const (
	// SubmissionStatusIdle means no submission has started or the form was reset
	SubmissionStatusIdle SubmissionStatus = "Idle"

	// SubmissionStatusSubmitting means a request is in flight
	SubmissionStatusSubmitting SubmissionStatus = "Submitting"

	// SubmissionStatusSucceeded means the service returned a short link
	SubmissionStatusSucceeded SubmissionStatus = "Succeeded"

	// SubmissionStatusFailed means the last submission failed
	SubmissionStatusFailed SubmissionStatus = "Failed"
)

// String returns the string representation of SubmissionStatus
func (ss SubmissionStatus) String() string {
	return string(ss)
}

// IsActive returns true if a submission is currently in flight
func (ss SubmissionStatus) IsActive() bool {
	return ss == SubmissionStatusSubmitting
}

// IsFinished returns true if the submission reached a terminal state
func (ss SubmissionStatus) IsFinished() bool {
	return ss == SubmissionStatusSucceeded || ss == SubmissionStatusFailed
}

// CanSubmit returns true if a new submission may be started
func (ss SubmissionStatus) CanSubmit() bool {
	return ss != SubmissionStatusSubmitting
}

package meeting

// CreateMeetingRequest registers a meeting. ID is the external meeting
// identifier; one is generated when omitted.
type CreateMeetingRequest struct {
	ID    string `json:"id" validate:"omitempty,max=64"`
	Title string `json:"title" validate:"required,max=255"`
}

// AddTranscriptRequest records one speaker's utterance set
type AddTranscriptRequest struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

package entities

// MeetingTranscript is one speaker's utterance set within a meeting. The
// name column doubles as the RLS identity column: under the employee role a
// session only sees and inserts rows whose name matches app.current_name.
type MeetingTranscript struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	MeetingID string `json:"meeting_id" gorm:"type:varchar(64);not null;index"`
	Name      string `json:"name" gorm:"type:text;not null"`
	Text      string `json:"text,omitempty" gorm:"type:text"`
	Processed bool   `json:"processed" gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (MeetingTranscript) TableName() string {
	return "meeting_transcript"
}

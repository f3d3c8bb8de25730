package entities

import "gorm.io/datatypes"

// RollingSentiment stores the sentiment distribution for one person in one
// meeting. The (meeting, person) pair is unique; the distribution itself is
// an opaque JSON blob produced by an external analysis pipeline.
type RollingSentiment struct {
	ID               int            `json:"id" gorm:"primaryKey"`
	MeetingID        string         `json:"meeting_id" gorm:"type:varchar(64);not null;uniqueIndex:uq_rolling_sentiment_meeting_person"`
	Name             string         `json:"name" gorm:"type:text;not null;uniqueIndex:uq_rolling_sentiment_meeting_person"`
	Role             string         `json:"role,omitempty" gorm:"type:text"`
	RollingSentiment datatypes.JSON `json:"rolling_sentiment,omitempty" gorm:"type:jsonb"`
}

// TableName specifies the table name for GORM
func (RollingSentiment) TableName() string {
	return "rolling_sentiment"
}

package models

import "time"

// ReviewRecord is an audit row written for every reviewer or HOD decision.
type ReviewRecord struct {
	RecordID     int       `gorm:"primaryKey;column:record_id" json:"record_id"`
	SubmissionID int       `gorm:"column:submission_id" json:"submission_id"`
	ActorID      int       `gorm:"column:actor_id" json:"actor_id"`
	ActorRole    string    `gorm:"column:actor_role" json:"actor_role"`
	Decision     string    `gorm:"column:decision" json:"decision"`
	Comments     *string   `gorm:"column:comments" json:"comments"`
	DecidedAt    time.Time `gorm:"column:decided_at" json:"decided_at"`

	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

func (ReviewRecord) TableName() string {
	return "review_records"
}

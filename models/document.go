package models

import "time"

// Kinds of documents attached to a submission.
const (
	DocumentKindMailCopy    = "mail_copy"
	DocumentKindOfferLetter = "offer_letter"
)

// SubmissionDocument is a stored PDF attached to a submission at intake.
type SubmissionDocument struct {
	DocumentID   int       `gorm:"primaryKey;column:document_id" json:"document_id"`
	SubmissionID int       `gorm:"column:submission_id" json:"submission_id"`
	DocumentKind string    `gorm:"column:document_kind" json:"document_kind"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	StoredPath   string    `gorm:"column:stored_path" json:"-"`
	FileSize     int64     `gorm:"column:file_size" json:"file_size"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	UploadedAt   time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

func (SubmissionDocument) TableName() string {
	return "submission_documents"
}

func (d *SubmissionDocument) GetFileSizeInMB() float64 {
	return float64(d.FileSize) / (1024 * 1024)
}

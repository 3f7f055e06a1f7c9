package models

import "time"

// Video is a training recording owned by one student. It is a row
// table rather than an embedded list so a trainer's upload is an
// atomic insert instead of a read-modify-write of the whole record.
type Video struct {
	BaseModel
	StudentID  string    `gorm:"not null;index" json:"studentId"`
	Title      string    `json:"title"`
	URL        string    `gorm:"not null;index" json:"url"`
	UploadedAt time.Time `gorm:"default:now()" json:"uploadedAt"`
}

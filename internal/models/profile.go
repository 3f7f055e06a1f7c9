package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type TrainerProfile struct {
	BaseModel
	UserID        string     `gorm:"uniqueIndex;not null" json:"userId"`
	Course        string     `json:"course"`
	Salary        string     `json:"salary"`
	ContactNumber string     `json:"contactNumber"`
	DateOfJoin    *time.Time `json:"dateOfJoin,omitempty"`
}

type StudentProfile struct {
	BaseModel
	UserID           string     `gorm:"uniqueIndex;not null" json:"userId"`
	Course           string     `gorm:"index" json:"course"`
	Age              int        `json:"age"`
	ParentName       string     `json:"parentName"`
	ParentOccupation string     `json:"parentOccupation"`
	Fee              string     `json:"fee"`
	Coach            string     `json:"coach"`
	Address          string     `json:"address"`
	Mobile           string     `json:"mobile"`
	AlternateMobile  string     `json:"alternateMobile"`
	DateOfJoin       *time.Time `json:"dateOfJoin,omitempty"`

	// Stored filenames of uploaded documents. The files themselves live
	// under the uploads root; deleting the student does not delete them.
	Documents datatypes.JSON `gorm:"type:jsonb" json:"documents"`
}

// GetDocuments returns the document filenames as a slice.
func (p *StudentProfile) GetDocuments() []string {
	var docs []string
	if len(p.Documents) > 0 {
		_ = json.Unmarshal(p.Documents, &docs)
	}
	return docs
}

// SetDocuments stores the document filenames.
func (p *StudentProfile) SetDocuments(docs []string) {
	data, _ := json.Marshal(docs)
	p.Documents = datatypes.JSON(data)
}

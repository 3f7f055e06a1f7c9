package dto

// RegisterTrainerRequest is bound from the multipart form. The profile
// picture arrives as a file part named "profilePic".
type RegisterTrainerRequest struct {
	Name          string `form:"name" json:"name" validate:"required"`
	Email         string `form:"email" json:"email" validate:"required,email"`
	Password      string `form:"password" json:"password" validate:"required,min=6"`
	Course        string `form:"course" json:"course"`
	Salary        string `form:"salary" json:"salary"`
	ContactNumber string `form:"contactNumber" json:"contactNumber"`
	DateOfJoin    string `form:"dateOfJoin" json:"dateOfJoin"`
}

// RegisterStudentRequest is bound from the multipart form. File parts:
// "profilePic" (one) and "documents" (up to five).
type RegisterStudentRequest struct {
	Name             string `form:"name" json:"name" validate:"required"`
	Email            string `form:"email" json:"email" validate:"required,email"`
	Password         string `form:"password" json:"password" validate:"required,min=6"`
	Age              int    `form:"age" json:"age"`
	Course           string `form:"course" json:"course"`
	ParentName       string `form:"parentName" json:"parentName"`
	ParentOccupation string `form:"parentOccupation" json:"parentOccupation"`
	Fee              string `form:"fee" json:"fee"`
	Coach            string `form:"coach" json:"coach"`
	Address          string `form:"address" json:"address"`
	Mobile           string `form:"mobile" json:"mobile"`
	AlternateMobile  string `form:"alternateMobile" json:"alternateMobile"`
	DateOfJoin       string `form:"dateOfJoin" json:"dateOfJoin"`
}

// UpdateTrainerRequest updates only the fields that are present.
// Role is deliberately absent: it is immutable after creation.
type UpdateTrainerRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Password      *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Course        *string `json:"course,omitempty"`
	Salary        *string `json:"salary,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	DateOfJoin    *string `json:"dateOfJoin,omitempty"`
}

// UpdateStudentRequest updates only the fields that are present.
type UpdateStudentRequest struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Password         *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Age              *int    `json:"age,omitempty"`
	Course           *string `json:"course,omitempty"`
	ParentName       *string `json:"parentName,omitempty"`
	ParentOccupation *string `json:"parentOccupation,omitempty"`
	Fee              *string `json:"fee,omitempty"`
	Coach            *string `json:"coach,omitempty"`
	Address          *string `json:"address,omitempty"`
	Mobile           *string `json:"mobile,omitempty"`
	AlternateMobile  *string `json:"alternateMobile,omitempty"`
	DateOfJoin       *string `json:"dateOfJoin,omitempty"`
}

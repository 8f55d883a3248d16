package models

import "time"

// Student is the read-side roster projection synced from the institution's
// identity and project registry. This API never creates or edits accounts.
type Student struct {
	RollNo       string    `db:"roll_no" json:"rollNo"`
	Name         string    `db:"name" json:"name"`
	GuideName    string    `db:"guide_name" json:"guideName"`
	ProjectTitle string    `db:"project_title" json:"projectTitle"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// StudentFilter narrows roster listings.
type StudentFilter struct {
	Search    string
	GuideName string
}

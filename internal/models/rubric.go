package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SubParameter is a single scored line item within a rubric parameter.
// Maximum marks travel as the raw string the author typed: non-numeric
// input is tolerated everywhere downstream, never rejected.
type SubParameter struct {
	Name     string `json:"subParameterName"`
	MaxMarks string `json:"subParameterMaxMarks"`
}

// Parameter groups sub-parameters under one rubric heading.
type Parameter struct {
	Title         string         `json:"parameterTitle"`
	SubParameters []SubParameter `json:"subParameters"`
	TotalMarks    int            `json:"parameterTotalMarks"`
}

// ParameterList is the ordered rubric structure persisted as JSONB.
type ParameterList []Parameter

// Value marshals the parameter list for persistence.
func (p ParameterList) Value() (driver.Value, error) {
	if p == nil {
		p = ParameterList{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal parameter list: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB payload into the parameter list.
func (p *ParameterList) Scan(value interface{}) error {
	if value == nil {
		*p = ParameterList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for ParameterList", value)
	}
	if len(data) == 0 {
		*p = ParameterList{}
		return nil
	}
	return json.Unmarshal(data, p)
}

// RubricForm is a scoring template authored by panel/admin. Once a
// submission references it the form is never edited in place; submissions
// embed a full snapshot instead of a foreign key.
type RubricForm struct {
	ID         string        `db:"id" json:"id"`
	FormTitle  string        `db:"form_title" json:"formTitle"`
	ReviewType ReviewType    `db:"review_type" json:"reviewType"`
	Parameters ParameterList `db:"form_parameters" json:"formParameters"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updated_at"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// MarksOrigin records how a submission total was produced.
type MarksOrigin string

const (
	// MarksComputed means the total came from the server-side calculator.
	MarksComputed MarksOrigin = "COMPUTED"
	// MarksManual means the evaluator overrode the computed total.
	MarksManual MarksOrigin = "MANUAL"
)

// ParameterMarks carries the entered marks for one rubric parameter,
// positionally aligned with the parameter's sub-parameters. Entries are the
// raw strings the evaluator typed.
type ParameterMarks struct {
	Title             string   `json:"parameterTitle"`
	SubParameterMarks []string `json:"subParameterMarks"`
}

// MarksList mirrors the rubric structure and is persisted as JSONB.
type MarksList []ParameterMarks

// Value marshals the marks list for persistence.
func (m MarksList) Value() (driver.Value, error) {
	if m == nil {
		m = MarksList{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal marks list: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB payload into the marks list.
func (m *MarksList) Scan(value interface{}) error {
	if value == nil {
		*m = MarksList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for MarksList", value)
	}
	if len(data) == 0 {
		*m = MarksList{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Evaluation is one evaluator's completed scoring of one student for one
// review round. The rubric is embedded as a snapshot so later form edits do
// not retroactively change historical scores. At most one row exists per
// (roll_no, review_type, evaluator_class).
type Evaluation struct {
	ID             string         `db:"id" json:"id"`
	RollNo         string         `db:"roll_no" json:"rollNo"`
	StudentName    string         `db:"student_name" json:"studentName"`
	FormTitle      string         `db:"form_title" json:"formTitle"`
	Parameters     ParameterList  `db:"form_parameters" json:"formParameters"`
	Values         MarksList      `db:"form_values" json:"formValues"`
	ReviewType     ReviewType     `db:"review_type" json:"reviewType"`
	EvaluatorClass EvaluatorClass `db:"evaluator_class" json:"evaluatorClass"`
	Remarks        string         `db:"remarks" json:"remarks"`
	TotalMarks     int            `db:"total_marks" json:"calculatedTotalMarks"`
	MarksOrigin    MarksOrigin    `db:"marks_origin" json:"marksOrigin"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// GuideCompletion is the guide-evaluation completion projection.
type GuideCompletion struct {
	Completed bool `json:"completed"`
}

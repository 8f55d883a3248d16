package models

import "time"

// FinalResult is the single persisted weighted-aggregate score per student.
// At most one row exists per student_roll_no.
type FinalResult struct {
	ID            string    `db:"id" json:"id"`
	StudentRollNo string    `db:"student_roll_no" json:"studentRollNo"`
	FirstReview   *float64  `db:"first_review" json:"firstReview"`
	SecondReview  *float64  `db:"second_review" json:"secondReview"`
	ThirdReview   *float64  `db:"third_review" json:"thirdReview"`
	GuideMarks    *float64  `db:"guide_marks" json:"guideMarks"`
	TotalMarks    *float64  `db:"total_marks" json:"totalMarks"`
	ComputedAt    time.Time `db:"computed_at" json:"computed_at"`
}

// ResultBreakdown is the student-facing view of a final result. All fields
// stay null when no result exists so a missing score is never mistaken for
// a real zero.
type ResultBreakdown struct {
	TotalMarks   *float64 `json:"totalMarks"`
	FirstReview  *float64 `json:"firstReview"`
	SecondReview *float64 `json:"secondReview"`
	ThirdReview  *float64 `json:"thirdReview"`
	GuideMarks   *float64 `json:"guideMarks"`
}

// ResultExistence reports whether a final result row is present.
type ResultExistence struct {
	Exists bool `json:"exists"`
}

// ResultDistribution summarises final totals across the cohort.
type ResultDistribution struct {
	Count   int      `db:"count" json:"count"`
	Min     *float64 `db:"min" json:"min,omitempty"`
	Max     *float64 `db:"max" json:"max,omitempty"`
	Average *float64 `db:"average" json:"average,omitempty"`
}

// ResultRow is one student's line in the cohort summary and export.
type ResultRow struct {
	StudentRollNo string   `db:"student_roll_no" json:"studentRollNo"`
	StudentName   string   `db:"student_name" json:"studentName"`
	TotalMarks    *float64 `db:"total_marks" json:"totalMarks"`
	Rank          *int     `db:"rank" json:"rank,omitempty"`
}

// ResultSummary aggregates cohort performance.
type ResultSummary struct {
	Distribution *ResultDistribution `json:"distribution,omitempty"`
	Students     []ResultRow         `json:"students"`
}

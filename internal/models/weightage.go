package models

import "time"

// WeightageID is the singleton row identity for the weightage config.
const WeightageID = 1

// Weightage holds the relative importance of each review round and the
// guide score. Conventionally the four weights sum to 1.0 but that is not
// enforced. The aggregator always re-reads this row; it is never cached.
type Weightage struct {
	ID           int       `db:"id" json:"id"`
	FirstReview  float64   `db:"first_review" json:"firstReview"`
	SecondReview float64   `db:"second_review" json:"secondReview"`
	ThirdReview  float64   `db:"third_review" json:"thirdReview"`
	GuideMarks   float64   `db:"guide_marks" json:"guideMarks"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

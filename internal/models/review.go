package models

// ReviewType identifies one of the fixed evaluation rounds.
type ReviewType string

const (
	ReviewFirst  ReviewType = "FIRST"
	ReviewSecond ReviewType = "SECOND"
	ReviewThird  ReviewType = "THIRD"
)

// ReviewTypes lists the rounds in aggregation order.
var ReviewTypes = []ReviewType{ReviewFirst, ReviewSecond, ReviewThird}

// Valid reports whether the value is a known review round.
func (r ReviewType) Valid() bool {
	switch r {
	case ReviewFirst, ReviewSecond, ReviewThird:
		return true
	}
	return false
}

// EvaluatorClass partitions submissions by who scored them.
type EvaluatorClass string

const (
	EvaluatorPanel EvaluatorClass = "PANEL"
	EvaluatorGuide EvaluatorClass = "GUIDE"
)

// Valid reports whether the value is a known evaluator class.
func (e EvaluatorClass) Valid() bool {
	return e == EvaluatorPanel || e == EvaluatorGuide
}

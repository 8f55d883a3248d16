package service

import (
	"strconv"
	"strings"

	"github.com/campushq/project-review-api/internal/models"
)

// Marks arrive as the raw strings evaluators type. Invalid input is never
// rejected: clamping only happens when both sides parse as non-negative
// integers, and unparseable entries contribute 0 to totals. The evaluation
// screens run the same rules for live feedback, so these functions must stay
// deterministic and side-effect free.

func parseMark(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ClampMark caps an entered mark at the sub-parameter maximum. When either
// value is not a valid non-negative integer the entered value passes through
// unchanged.
func ClampMark(entered, max string) string {
	enteredVal, okEntered := parseMark(entered)
	maxVal, okMax := parseMark(max)
	if !okEntered || !okMax {
		return entered
	}
	if enteredVal > maxVal {
		return strconv.Itoa(maxVal)
	}
	return entered
}

// ParameterTotal sums the clamped marks for one parameter. Marks are aligned
// positionally with the parameter's sub-parameters; pairs that do not parse
// contribute 0.
func ParameterTotal(param models.Parameter, marks []string) int {
	total := 0
	for i, sub := range param.SubParameters {
		if i >= len(marks) {
			break
		}
		entered, okEntered := parseMark(marks[i])
		max, okMax := parseMark(sub.MaxMarks)
		if !okEntered || !okMax {
			continue
		}
		if entered > max {
			entered = max
		}
		total += entered
	}
	return total
}

// AuthoredParameterTotal recomputes a parameter's maximum during authoring.
// Non-numeric maxes contribute 0.
func AuthoredParameterTotal(param models.Parameter) int {
	total := 0
	for _, sub := range param.SubParameters {
		if max, ok := parseMark(sub.MaxMarks); ok {
			total += max
		}
	}
	return total
}

// FormOverallMax is the display maximum of a rubric: the sum of every valid
// sub-parameter max across all parameters.
func FormOverallMax(params models.ParameterList) int {
	total := 0
	for _, param := range params {
		total += AuthoredParameterTotal(param)
	}
	return total
}

// SubmissionTotal computes the authoritative submission total from the
// rubric snapshot and the entered values, aligned positionally.
func SubmissionTotal(params models.ParameterList, values models.MarksList) int {
	total := 0
	for i, param := range params {
		if i >= len(values) {
			break
		}
		total += ParameterTotal(param, values[i].SubParameterMarks)
	}
	return total
}

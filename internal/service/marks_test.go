package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushq/project-review-api/internal/models"
)

func TestClampMarkCapsAtMax(t *testing.T) {
	assert.Equal(t, "50", ClampMark("60", "50"))
	assert.Equal(t, "40", ClampMark("40", "50"))
	assert.Equal(t, "50", ClampMark("50", "50"))
}

func TestClampMarkPassesThroughInvalidInput(t *testing.T) {
	assert.Equal(t, "abc", ClampMark("abc", "50"))
	assert.Equal(t, "60", ClampMark("60", "fifty"))
	assert.Equal(t, "", ClampMark("", "50"))
	assert.Equal(t, "-5", ClampMark("-5", "50"))
	assert.Equal(t, "60", ClampMark("60", "-1"))
}

func TestParameterTotalClampsAndSkipsInvalid(t *testing.T) {
	param := models.Parameter{
		Title: "Clarity",
		SubParameters: []models.SubParameter{
			{Name: "Content", MaxMarks: "50"},
			{Name: "Delivery", MaxMarks: "50"},
			{Name: "Extras", MaxMarks: "n/a"},
		},
	}

	assert.Equal(t, 90, ParameterTotal(param, []string{"60", "40", "10"}))
}

func TestParameterTotalShortValueList(t *testing.T) {
	param := models.Parameter{
		SubParameters: []models.SubParameter{
			{Name: "A", MaxMarks: "10"},
			{Name: "B", MaxMarks: "10"},
		},
	}

	assert.Equal(t, 5, ParameterTotal(param, []string{"5"}))
	assert.Equal(t, 0, ParameterTotal(param, nil))
}

func TestAuthoredParameterTotalIgnoresNonNumericMax(t *testing.T) {
	param := models.Parameter{
		SubParameters: []models.SubParameter{
			{Name: "A", MaxMarks: "25"},
			{Name: "B", MaxMarks: ""},
			{Name: "C", MaxMarks: "25"},
		},
	}

	assert.Equal(t, 50, AuthoredParameterTotal(param))
}

func TestFormOverallMax(t *testing.T) {
	params := models.ParameterList{
		{SubParameters: []models.SubParameter{{MaxMarks: "50"}, {MaxMarks: "50"}}},
		{SubParameters: []models.SubParameter{{MaxMarks: "20"}, {MaxMarks: "bad"}}},
	}

	assert.Equal(t, 120, FormOverallMax(params))
}

func TestSubmissionTotalScenario(t *testing.T) {
	params := models.ParameterList{
		{
			Title: "Clarity",
			SubParameters: []models.SubParameter{
				{Name: "Content", MaxMarks: "50"},
				{Name: "Delivery", MaxMarks: "50"},
			},
		},
	}
	values := models.MarksList{
		{Title: "Clarity", SubParameterMarks: []string{"60", "40"}},
	}

	assert.Equal(t, 90, SubmissionTotal(params, values))
}

func TestSubmissionTotalMisalignedValues(t *testing.T) {
	params := models.ParameterList{
		{SubParameters: []models.SubParameter{{MaxMarks: "10"}}},
		{SubParameters: []models.SubParameter{{MaxMarks: "10"}}},
	}
	values := models.MarksList{
		{SubParameterMarks: []string{"10"}},
	}

	assert.Equal(t, 10, SubmissionTotal(params, values))
	assert.Equal(t, 0, SubmissionTotal(params, nil))
}

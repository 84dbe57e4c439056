package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CampaignInput {
	return CampaignInput{
		UserID:    "u1",
		Name:      "Spring Sale",
		Objective: ObjectiveTraffic,
		Budget:    500,
		Audience:  "Adults 25-45 interested in outdoor gear",
	}
}

func TestCampaignInputValid(t *testing.T) {
	require.Empty(t, validInput().Validate())

	// boundary lengths are acceptable
	in := validInput()
	in.Name = strings.Repeat("n", 100)
	in.Audience = strings.Repeat("a", 500)
	require.Empty(t, in.Validate())

	in = validInput()
	in.Name = "n"
	in.Audience = strings.Repeat("a", 10)
	require.Empty(t, in.Validate())
}

func TestCampaignInputFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CampaignInput)
		field   string
		message string
	}{
		{
			name:    "missing user id",
			mutate:  func(in *CampaignInput) { in.UserID = "" },
			field:   "userId",
			message: "User id is required",
		},
		{
			name:    "empty name",
			mutate:  func(in *CampaignInput) { in.Name = "" },
			field:   "name",
			message: "Campaign name is required",
		},
		{
			name:    "name too long",
			mutate:  func(in *CampaignInput) { in.Name = strings.Repeat("n", 101) },
			field:   "name",
			message: "Campaign name must be less than 100 characters",
		},
		{
			name:    "unknown objective",
			mutate:  func(in *CampaignInput) { in.Objective = "Awareness" },
			field:   "objective",
			message: "Please select a campaign objective",
		},
		{
			name:    "zero budget",
			mutate:  func(in *CampaignInput) { in.Budget = 0 },
			field:   "budget",
			message: "Budget must be a positive number",
		},
		{
			name:    "negative budget",
			mutate:  func(in *CampaignInput) { in.Budget = -10 },
			field:   "budget",
			message: "Budget must be a positive number",
		},
		{
			name:    "audience too short",
			mutate:  func(in *CampaignInput) { in.Audience = "too short" },
			field:   "audience",
			message: "Target audience description must be at least 10 characters",
		},
		{
			name:    "audience too long",
			mutate:  func(in *CampaignInput) { in.Audience = strings.Repeat("a", 501) },
			field:   "audience",
			message: "Target audience description must be less than 500 characters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			errs := in.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestCampaignInputMultipleErrors(t *testing.T) {
	errs := CampaignInput{}.Validate()
	require.Len(t, errs, 5)

	fields := make(map[string]bool, len(errs))
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"userId", "name", "objective", "budget", "audience"} {
		assert.True(t, fields[want], "expected error for field %s", want)
	}
}

func TestSuggestionRequestValidate(t *testing.T) {
	req := SuggestionRequest{Name: "Spring Sale", Objective: ObjectiveTraffic, Budget: 500}
	require.Empty(t, req.Validate())

	req.Budget = 0
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "budget", errs[0].Field)

	errs = SuggestionRequest{}.Validate()
	require.Len(t, errs, 3)
}

func TestObjectiveValid(t *testing.T) {
	assert.True(t, ObjectiveTraffic.Valid())
	assert.True(t, ObjectiveConversions.Valid())
	assert.False(t, Objective("").Valid())
	assert.False(t, Objective("traffic").Valid())
}

func TestCampaignFromInput(t *testing.T) {
	in := validInput()
	c := in.Campaign("id-1", "2026-09-01T10:00:00Z")

	assert.Equal(t, "id-1", c.CampaignID)
	assert.Equal(t, "2026-09-01T10:00:00Z", c.CreatedAt)
	assert.Equal(t, in.UserID, c.UserID)
	assert.Equal(t, in.Name, c.Name)
	assert.Equal(t, in.Objective, c.Objective)
	assert.Equal(t, in.Budget, c.Budget)
	assert.Equal(t, in.Audience, c.Audience)
}

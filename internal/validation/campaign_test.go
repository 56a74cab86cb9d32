package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunewave/campaigns-backend/internal/validation"
)

func validInput() validation.CampaignInput {
	return validation.CampaignInput{
		Brand:       "Wavelength Records",
		Title:       "Summer Music Festival",
		Description: "Open-air festival push",
		Budget:      decimal.NewFromInt(2500),
		StartDate:   time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		Image:       "https://cdn.example.com/banner.png",
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var errs *validation.Errors
	require.True(t, errors.As(err, &errs), "expected *validation.Errors, got %v", err)
	names := make([]string, len(errs.Fields))
	for i, f := range errs.Fields {
		names[i] = f.Field
	}
	return names
}

func TestValidInputPasses(t *testing.T) {
	in := validInput()
	assert.NoError(t, in.Validate())
}

func TestEmptyInputEnumeratesEveryField(t *testing.T) {
	var in validation.CampaignInput
	err := in.Validate()
	require.Error(t, err)

	names := fieldNames(t, err)
	assert.ElementsMatch(t,
		[]string{"brand", "title", "description", "budget", "start_date", "end_date", "image"},
		names,
	)
}

func TestStartDateAfterEndDateRejected(t *testing.T) {
	in := validInput()
	in.StartDate = in.EndDate.AddDate(0, 0, 1)

	err := in.Validate()
	require.Error(t, err)

	// The cross-field violation is reported against the whole input.
	assert.Contains(t, fieldNames(t, err), "")
}

func TestEqualDatesAccepted(t *testing.T) {
	in := validInput()
	in.EndDate = in.StartDate
	assert.NoError(t, in.Validate())
}

func TestBudgetMustBeAtLeastOne(t *testing.T) {
	in := validInput()
	in.Budget = decimal.RequireFromString("0.99")
	assert.Contains(t, fieldNames(t, in.Validate()), "budget")

	in.Budget = decimal.NewFromInt(1)
	assert.NoError(t, in.Validate())
}

func TestImageMustBeAbsoluteURL(t *testing.T) {
	in := validInput()

	for _, bad := range []string{"", "not-a-url", "/relative/path", "ftp://host/file"} {
		in.Image = bad
		assert.Contains(t, fieldNames(t, in.Validate()), "image", "image %q should fail", bad)
	}

	in.Image = "http://cdn.example.com/banner.jpg"
	assert.NoError(t, in.Validate())
}

func TestValidateWithoutImageSkipsURLCheck(t *testing.T) {
	in := validInput()
	in.Image = ""
	assert.NoError(t, in.ValidateWithoutImage())
}

func TestUpdateRequiresPositiveID(t *testing.T) {
	update := validation.CampaignUpdateInput{CampaignInput: validInput()}
	assert.Contains(t, fieldNames(t, update.Validate()), "id")

	update.ID = 1
	assert.NoError(t, update.Validate())
}

func TestUpdateCrossFieldCheck(t *testing.T) {
	update := validation.CampaignUpdateInput{ID: 7, CampaignInput: validInput()}
	update.StartDate = update.EndDate.AddDate(0, 1, 0)
	assert.Contains(t, fieldNames(t, update.Validate()), "")

	update.StartDate = update.EndDate
	assert.NoError(t, update.Validate())
}

func TestValidationIsAllOrNothing(t *testing.T) {
	in := validInput()
	in.Brand = ""
	in.Budget = decimal.Zero
	in.StartDate = in.EndDate.AddDate(0, 0, 3)

	names := fieldNames(t, in.Validate())
	assert.ElementsMatch(t, []string{"brand", "budget", ""}, names)
}

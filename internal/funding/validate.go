// Package funding validates and submits business funding applications.
package funding

import (
	"strconv"
	"strings"

	"fjacquet/creditlens/internal/currencyutils"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/validation"
)

// Validate checks every field of app and returns all failures together as
// parsererror.ValidationErrors, or nil.
func Validate(app models.FundingApplication) error {
	var errs parsererror.ValidationErrors
	fail := func(field, reason string) {
		errs = append(errs, &parsererror.ValidationError{Field: field, Reason: reason})
	}

	required := []models.FormField{
		{Name: models.FieldName, Value: app.Name},
		{Name: models.FieldEmail, Value: app.Email},
		{Name: models.FieldPhone, Value: app.Phone},
		{Name: models.FieldFundingAmount, Value: app.FundingAmount},
		{Name: models.FieldHasBusinessEntity, Value: app.HasBusinessEntity},
	}
	missing := map[string]bool{}
	for _, f := range required {
		if strings.TrimSpace(f.Value) == "" {
			fail(f.Name, "is required")
			missing[f.Name] = true
		}
	}

	if !missing[models.FieldEmail] {
		if err := validation.IsValidEmail(app.Email); err != nil {
			fail(models.FieldEmail, "must be a valid email address")
		}
	}

	if !missing[models.FieldFundingAmount] {
		amount, err := currencyutils.ParseAmount(app.FundingAmount)
		if err != nil || !amount.IsPositive() {
			fail(models.FieldFundingAmount, "must be a positive amount")
		}
	}

	if !missing[models.FieldHasBusinessEntity] {
		switch strings.ToLower(app.HasBusinessEntity) {
		case "yes", "no":
		default:
			fail(models.FieldHasBusinessEntity, `must be "yes" or "no"`)
		}
	}

	if app.CreditScore != "" {
		score, err := strconv.Atoi(strings.TrimSpace(app.CreditScore))
		if err != nil || !models.InRange(score) {
			fail(models.FieldCreditScore, "must be a whole number between 300 and 850")
		}
	}

	if app.CreditReportPath != "" {
		if err := validation.IsValidFile(app.CreditReportPath); err != nil {
			fail(models.FieldCreditReport, err.Error())
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalize trims every text field and lower-cases the yes/no answer.
func Normalize(app models.FundingApplication) models.FundingApplication {
	app.Name = strings.TrimSpace(app.Name)
	app.Email = strings.TrimSpace(app.Email)
	app.Phone = strings.TrimSpace(app.Phone)
	app.BusinessName = strings.TrimSpace(app.BusinessName)
	app.FundingAmount = strings.TrimSpace(app.FundingAmount)
	app.HasBusinessEntity = strings.ToLower(strings.TrimSpace(app.HasBusinessEntity))
	app.CreditScore = strings.TrimSpace(app.CreditScore)
	app.CreditReportPath = strings.TrimSpace(app.CreditReportPath)
	return app
}

package models

// Multipart field names accepted by the funding endpoint.
const (
	FieldName              = "name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldBusinessName      = "businessName"
	FieldFundingAmount     = "fundingAmount"
	FieldHasBusinessEntity = "hasBusinessEntity"
	FieldCreditScore       = "creditScore"
	FieldCreditReport      = "creditReport"
)

// FundingApplication is the business / personal funding application form.
type FundingApplication struct {
	Name              string
	Email             string
	Phone             string
	BusinessName      string
	FundingAmount     string
	HasBusinessEntity string // "yes" or "no"
	CreditScore       string // optional
	CreditReportPath  string // optional file attachment
}

// FormField is one text part of the multipart body.
type FormField struct {
	Name  string
	Value string
}

// FormFields returns the text fields in form order. Empty optional fields are
// omitted; the credit report is attached separately as a file part.
func (a FundingApplication) FormFields() []FormField {
	fields := []FormField{
		{FieldName, a.Name},
		{FieldEmail, a.Email},
		{FieldPhone, a.Phone},
		{FieldBusinessName, a.BusinessName},
		{FieldFundingAmount, a.FundingAmount},
		{FieldHasBusinessEntity, a.HasBusinessEntity},
		{FieldCreditScore, a.CreditScore},
	}
	out := fields[:0]
	for _, f := range fields {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}

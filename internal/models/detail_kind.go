package models

import "strings"

// DetailKind groups detail labels for presentation.
type DetailKind string

const (
	KindMoney   DetailKind = "money"
	KindDate    DetailKind = "date"
	KindAccount DetailKind = "account"
	KindDays    DetailKind = "days"
	KindOther   DetailKind = "other"
)

// KindFor classifies a detail label by substring. Checks are case-sensitive
// and ordered, so "Account Balance" is money and "Account Opened Date" is a date.
func KindFor(label string) DetailKind {
	switch {
	case strings.Contains(label, "Amount"), strings.Contains(label, "Balance"):
		return KindMoney
	case strings.Contains(label, "Date"):
		return KindDate
	case strings.Contains(label, "Account"):
		return KindAccount
	case strings.Contains(label, "Days"):
		return KindDays
	default:
		return KindOther
	}
}

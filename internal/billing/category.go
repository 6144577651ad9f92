package billing

import "github.com/mchen-dev/rentops/internal/model"

// categoryPair binds a user-facing label to its storage enumerant. This is
// the single source for both lookup directions; forms must not carry their
// own copies of the table.
type categoryPair struct {
	Label string
	Code  string
	Type  model.TransactionType
}

var categoryPairs = []categoryPair{
	{Label: "租金收入", Code: model.CategoryRent, Type: model.TransactionIncome},
	{Label: "押金收入", Code: model.CategoryDeposit, Type: model.TransactionIncome},
	{Label: "停车费收入", Code: model.CategoryParking, Type: model.TransactionIncome},
	{Label: "其他收入", Code: model.CategoryOther, Type: model.TransactionIncome},
	{Label: "维修费支出", Code: model.CategoryMaintenance, Type: model.TransactionExpense},
	{Label: "物业费支出", Code: model.CategoryManagement, Type: model.TransactionExpense},
	{Label: "水电费支出", Code: model.CategoryUtilities, Type: model.TransactionExpense},
	{Label: "其他支出", Code: model.CategoryOther, Type: model.TransactionExpense},
}

// CategoryCode resolves a user-facing label to its storage enumerant.
func CategoryCode(label string) (string, bool) {
	for _, p := range categoryPairs {
		if p.Label == label {
			return p.Code, true
		}
	}
	return "", false
}

// CategoryLabel resolves a storage enumerant back to the user-facing label
// for the given transaction type. The type disambiguates codes shared by
// income and expense, such as "其他".
func CategoryLabel(code string, txnType model.TransactionType) (string, bool) {
	for _, p := range categoryPairs {
		if p.Code == code && p.Type == txnType {
			return p.Label, true
		}
	}
	return "", false
}

// ValidCategory reports whether code is a known storage enumerant for the
// given transaction type.
func ValidCategory(code string, txnType model.TransactionType) bool {
	for _, p := range categoryPairs {
		if p.Code == code && p.Type == txnType {
			return true
		}
	}
	return false
}

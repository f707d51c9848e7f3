package util

func ValidateAmount(amount float64) bool {
	return amount > 0
}

// ValidateExpense applies the create-time checks in order: amount, category,
// date. Updates deliberately skip it.
func ValidateExpense(amount float64, category, date string) error {
	if !ValidateAmount(amount) {
		return NewValidationError("Invalid amount")
	}
	if category == "" {
		return NewValidationError("Category required")
	}
	if date == "" {
		return NewValidationError("Date required")
	}
	return nil
}

func ValidateBudget(amount float64) error {
	if !ValidateAmount(amount) {
		return NewValidationError("Invalid budget amount")
	}
	return nil
}

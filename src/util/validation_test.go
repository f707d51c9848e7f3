package util

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		category string
		date     string
		wantMsg  string
	}{
		{"valid", 250, "Food", "2024-01-01", ""},
		{"zero amount", 0, "Food", "2024-01-01", "Invalid amount"},
		{"negative amount", -5, "Food", "2024-01-01", "Invalid amount"},
		{"missing category", 10, "", "2024-01-01", "Category required"},
		{"missing date", 10, "Food", "", "Date required"},
		{"amount checked first", 0, "", "", "Invalid amount"},
		{"category checked before date", 10, "", "", "Category required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(tt.amount, tt.category, tt.date)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}

func TestValidateBudget(t *testing.T) {
	assert.NoError(t, ValidateBudget(5000))
	assert.EqualError(t, ValidateBudget(0), "Invalid budget amount")
	assert.EqualError(t, ValidateBudget(-1), "Invalid budget amount")
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`5000`, 5000},
		{`12.5`, 12.5},
		{`"5000"`, 5000},
		{`" 42 "`, 42},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
		{`""`, 0},
		{`-3`, -3},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var body struct {
				Amount Amount `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"amount":`+tt.raw+`}`), &body))
			assert.Equal(t, tt.want, body.Amount.Float64())
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", NewValidationError("Invalid amount"), http.StatusBadRequest, "Invalid amount"},
		{"not found", NewNotFoundError("Expense not found"), http.StatusNotFound, "Expense not found"},
		{"other", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var msg Message
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&msg))
			assert.Equal(t, tt.wantMsg, msg.Message)
		})
	}
}

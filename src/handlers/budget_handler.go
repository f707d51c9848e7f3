package handlers

import (
	"errors"
	"log"
	"net/http"

	"expense-tracker-api/src/db"
	"expense-tracker-api/src/util"
)

// noBudget is served when the budget log is empty. It has no id, which is
// how clients tell it apart from a stored record.
type noBudget struct {
	Amount float64 `json:"amount"`
}

func GetCurrentBudget(store db.BudgetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budget, err := store.LatestBudget(r.Context())
		if errors.Is(err, db.ErrNotFound) {
			util.WriteJSON(w, http.StatusOK, noBudget{Amount: 0})
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to get current budget: %v", err)
			util.WriteError(w, err)
			return
		}
		util.WriteJSON(w, http.StatusOK, budget)
	}
}

// SetBudget appends a new budget record; earlier records are left in place.
func SetBudget(store db.BudgetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount util.Amount `json:"amount"`
		}
		if err := decodeBody(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode set budget request body: %v", err)
			util.WriteError(w, util.NewValidationError("Invalid request body"))
			return
		}
		if err := util.ValidateBudget(req.Amount.Float64()); err != nil {
			util.WriteError(w, err)
			return
		}
		created, err := store.AppendBudget(r.Context(), req.Amount.Float64())
		if err != nil {
			log.Printf("ERROR: Failed to set budget: %v", err)
			util.WriteError(w, err)
			return
		}
		log.Printf("INFO: Set budget id %s, amount %.2f", created.ID, created.Amount)
		util.WriteJSON(w, http.StatusCreated, created)
	}
}

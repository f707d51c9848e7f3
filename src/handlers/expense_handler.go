package handlers

import (
	"errors"
	"log"
	"net/http"

	"expense-tracker-api/src/db"
	"expense-tracker-api/src/models"
	"expense-tracker-api/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type expenseRequest struct {
	Amount   util.Amount `json:"amount"`
	Category string      `json:"category"`
	Note     string      `json:"note"`
	Date     string      `json:"date"`
}

func (req expenseRequest) toModel() *models.Expense {
	return &models.Expense{
		Amount:   req.Amount.Float64(),
		Category: req.Category,
		Note:     req.Note,
		Date:     req.Date,
	}
}

func CreateExpense(store db.ExpenseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req expenseRequest
		if err := decodeBody(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body: %v", err)
			util.WriteError(w, util.NewValidationError("Invalid request body"))
			return
		}
		if err := util.ValidateExpense(req.Amount.Float64(), req.Category, req.Date); err != nil {
			util.WriteError(w, err)
			return
		}
		created, err := store.CreateExpense(r.Context(), req.toModel())
		if err != nil {
			log.Printf("ERROR: Failed to create expense: %v", err)
			util.WriteError(w, err)
			return
		}
		log.Printf("INFO: Created expense id %s, category %s", created.ID, created.Category)
		util.WriteJSON(w, http.StatusCreated, created)
	}
}

func GetAllExpenses(store db.ExpenseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenses, err := store.ListExpenses(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list expenses: %v", err)
			util.WriteError(w, err)
			return
		}
		if expenses == nil {
			expenses = []models.Expense{}
		}
		util.WriteJSON(w, http.StatusOK, expenses)
	}
}

// UpdateExpense replaces amount, category, note and date wholesale. Unlike
// CreateExpense it does not validate the new values, so an update can store
// a zero amount or an empty category.
func UpdateExpense(store db.ExpenseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			log.Printf("ERROR: Invalid expense id param: %s", id)
			util.WriteError(w, util.NewNotFoundError("Expense not found"))
			return
		}
		var req expenseRequest
		if err := decodeBody(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for id %s: %v", id, err)
			util.WriteError(w, util.NewValidationError("Invalid request body"))
			return
		}
		expense := req.toModel()
		expense.ID = id
		updated, err := store.UpdateExpense(r.Context(), expense)
		if errors.Is(err, db.ErrNotFound) {
			log.Printf("ERROR: Expense id %s not found for update", id)
			util.WriteError(w, util.NewNotFoundError("Expense not found"))
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to update expense id %s: %v", id, err)
			util.WriteError(w, err)
			return
		}
		log.Printf("INFO: Updated expense id %s", updated.ID)
		util.WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteExpense(store db.ExpenseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			log.Printf("ERROR: Invalid expense id param: %s", id)
			util.WriteError(w, util.NewNotFoundError("Expense not found"))
			return
		}
		err := store.DeleteExpense(r.Context(), id)
		if errors.Is(err, db.ErrNotFound) {
			log.Printf("ERROR: Expense id %s not found for delete", id)
			util.WriteError(w, util.NewNotFoundError("Expense not found"))
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to delete expense id %s: %v", id, err)
			util.WriteError(w, err)
			return
		}
		log.Printf("INFO: Deleted expense id %s", id)
		util.WriteMessage(w, http.StatusOK, "Deleted")
	}
}

// Ids are server-assigned UUIDs; anything else cannot name a stored record.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

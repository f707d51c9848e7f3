package handlers

import (
	"net/http"

	"expense-tracker-api/src/util"
)

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		util.WriteMessage(w, http.StatusOK, "Expense Tracker API Running")
	}
}

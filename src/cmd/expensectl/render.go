package main

import (
	"fmt"
	"io"

	"expense-tracker-api/src/ledger"
	"expense-tracker-api/src/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	pillStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			MarginRight(1)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#C0392B")).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

func pill(label, value string) string {
	return pillStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

func renderSummary(w io.Writer, s ledger.Summary) {
	budget, remaining := "Not set", "-"
	if s.BudgetSet {
		budget = ledger.FormatINR(s.Budget)
		remaining = ledger.FormatINR(s.Remaining)
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		pill("Budget", budget),
		pill("Total Spent", ledger.FormatINR(s.TotalSpent)),
		pill("Remaining", remaining),
		pill("Filtered Total", ledger.FormatINR(s.FilteredTotal)),
	))
	if s.OverBudget {
		fmt.Fprintln(w, warningStyle.Render("You have exceeded your budget by "+ledger.FormatINR(s.Overspend)))
	}
}

func renderExpenses(w io.Writer, expenses []models.Expense, s ledger.Summary) {
	fmt.Fprintf(w, "Showing %d of %d\n", s.Shown, s.Total)
	if len(expenses) == 0 {
		fmt.Fprintln(w, "No expenses found")
		fmt.Fprintln(w, "Add your first expense to start tracking.")
		return
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		note := e.Note
		if note == "" {
			note = "-"
		}
		rows = append(rows, []string{e.Date, ledger.FormatINR(e.Amount), badgeStyle.Render(e.Category), note, e.ID})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Amount", "Category", "Note", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.String())
}

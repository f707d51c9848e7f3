package ledger

import (
	"context"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"expense-tracker-api/src/client"
	"expense-tracker-api/src/models"

	"golang.org/x/sync/errgroup"
)

// PresetCategories are offered in the category picker. Anything else is
// entered as a custom category.
var PresetCategories = []string{"Food", "Travel", "Shopping", "Bills", "Education", "Health", "Other"}

// API is the subset of the HTTP client the tracker drives. *client.Client
// implements it.
type API interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, in client.ExpenseInput) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id string, in client.ExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	GetBudget(ctx context.Context) (*models.Budget, error)
	SetBudget(ctx context.Context, amount float64) (*models.Budget, error)
}

// Alert is a message meant to be shown to the user as-is.
type Alert string

func (a Alert) Error() string { return string(a) }

const (
	AlertUnreachable = Alert("Backend not reachable. Please start backend server.")
	AlertAmount      = Alert("Enter a valid amount")
	AlertCategory    = Alert("Enter a category")
	AlertDate        = Alert("Select a date")
	AlertBudget      = Alert("Enter a valid budget amount")
)

// Form mirrors the expense entry form. Amount is kept as typed text.
type Form struct {
	Amount         string
	Category       string
	CustomCategory string
	Note           string
	Date           string
}

// EffectiveCategory prefers the trimmed custom category over the preset.
func (f Form) EffectiveCategory() string {
	if c := strings.TrimSpace(f.CustomCategory); c != "" {
		return c
	}
	return f.Category
}

// Tracker owns the client-side state. Server-backed actions mutate the local
// list only after the server accepted the change; ClearAll, edit toggles and
// filters never touch the server.
type Tracker struct {
	api   API
	today func() string

	expenses []models.Expense
	budget   float64
	filter   Filter
	form     Form
	editing  *models.Expense
}

func NewTracker(api API) *Tracker {
	t := &Tracker{
		api:    api,
		today:  func() string { return time.Now().Format(time.DateOnly) },
		filter: DefaultFilter(),
	}
	t.form = t.blankForm()
	return t
}

func (t *Tracker) blankForm() Form {
	return Form{Category: PresetCategories[0], Date: t.today()}
}

// Load fetches expenses and the budget concurrently and replaces local
// state. Error responses degrade to an empty list and an unset budget;
// only transport failures are reported.
func (t *Tracker) Load(ctx context.Context) error {
	var (
		expenses []models.Expense
		budget   float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := t.api.ListExpenses(gctx)
		if err != nil && !isAPIError(err) {
			return err
		}
		expenses = list
		return nil
	})
	g.Go(func() error {
		b, err := t.api.GetBudget(gctx)
		if err != nil && !isAPIError(err) {
			return err
		}
		if b != nil {
			budget = b.Amount
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return AlertUnreachable
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}
	t.expenses = expenses
	t.budget = budget
	return nil
}

func (t *Tracker) SetForm(f Form) { t.form = f }

func (t *Tracker) Form() Form { return t.form }

// Editing returns the expense being edited, or nil when the form creates.
func (t *Tracker) Editing() *models.Expense { return t.editing }

// Submit sends the form. In edit mode it updates the selected expense in
// place and leaves edit mode; otherwise it creates an expense, prepends it,
// and resets the form.
func (t *Tracker) Submit(ctx context.Context) error {
	amt, ok := parsePositive(t.form.Amount)
	if !ok {
		return AlertAmount
	}
	category := t.form.EffectiveCategory()
	if category == "" {
		return AlertCategory
	}
	if t.form.Date == "" {
		return AlertDate
	}
	in := client.ExpenseInput{
		Amount:   amt,
		Category: category,
		Note:     strings.TrimSpace(t.form.Note),
		Date:     t.form.Date,
	}

	if t.editing != nil {
		updated, err := t.api.UpdateExpense(ctx, t.editing.ID, in)
		if err != nil {
			return alertFor(err, "Failed to update expense", "Server error")
		}
		for i := range t.expenses {
			if t.expenses[i].ID == updated.ID {
				t.expenses[i] = *updated
			}
		}
		t.CancelEdit()
		return nil
	}

	created, err := t.api.CreateExpense(ctx, in)
	if err != nil {
		return alertFor(err, "Failed to add expense", "Server error")
	}
	t.expenses = append([]models.Expense{*created}, t.expenses...)
	t.form = t.blankForm()
	return nil
}

func (t *Tracker) Delete(ctx context.Context, id string) error {
	if err := t.api.DeleteExpense(ctx, id); err != nil {
		if isAPIError(err) {
			return Alert("Failed to delete")
		}
		return Alert("Server error while deleting")
	}
	t.expenses = slices.DeleteFunc(t.expenses, func(e models.Expense) bool { return e.ID == id })
	return nil
}

// parsePositive accepts finite amounts above zero; "Inf" and "NaN" parse
// without error but cannot be sent as JSON.
func parsePositive(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(n, 0) || !(n > 0) {
		return 0, false
	}
	return n, true
}

// SaveBudget appends a new budget on the server and adopts the amount the
// server returned.
func (t *Tracker) SaveBudget(ctx context.Context, amount string) error {
	num, ok := parsePositive(amount)
	if !ok {
		return AlertBudget
	}
	saved, err := t.api.SetBudget(ctx, num)
	if err != nil {
		return alertFor(err, "Failed to save budget", "Server error while saving budget")
	}
	t.budget = saved.Amount
	return nil
}

// ClearAll empties the local list only. Server records are left intact and
// come back on the next Load.
func (t *Tracker) ClearAll() {
	t.expenses = []models.Expense{}
}

// StartEdit loads e into the form. Categories outside PresetCategories go
// into the custom field.
func (t *Tracker) StartEdit(e models.Expense) {
	t.editing = &e
	f := Form{
		Amount: strconv.FormatFloat(e.Amount, 'f', -1, 64),
		Note:   e.Note,
		Date:   e.Date,
	}
	if slices.Contains(PresetCategories, e.Category) {
		f.Category = e.Category
	} else {
		f.Category = PresetCategories[0]
		f.CustomCategory = e.Category
	}
	t.form = f
}

func (t *Tracker) CancelEdit() {
	t.editing = nil
	t.form = t.blankForm()
}

func (t *Tracker) SetFilter(f Filter) {
	if f.Category == "" {
		f.Category = AllCategories
	}
	t.filter = f
}

func (t *Tracker) ResetFilters() {
	t.filter = DefaultFilter()
}

func (t *Tracker) Filter() Filter { return t.filter }

func (t *Tracker) Expenses() []models.Expense { return slices.Clone(t.expenses) }

func (t *Tracker) Budget() float64 { return t.budget }

func (t *Tracker) FilteredExpenses() []models.Expense {
	return FilterExpenses(t.expenses, t.filter)
}

func (t *Tracker) CategoryOptions() []string {
	return CategoryOptions(t.expenses)
}

func (t *Tracker) Summary() Summary {
	return Summarize(t.expenses, t.budget, t.filter)
}

func isAPIError(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr)
}

// alertFor surfaces the server's message when there is one, the fallback for
// other error responses, and transportMsg when the request never completed.
func alertFor(err error, fallback, transportMsg string) Alert {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return Alert(apiErr.Message)
		}
		return Alert(fallback)
	}
	return Alert(transportMsg)
}

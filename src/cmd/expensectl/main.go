// Command expensectl is a terminal front end for the expense tracker API.
//
//	expensectl [-api URL] summary  [-category C] [-from YYYY-MM-DD] [-to YYYY-MM-DD]
//	expensectl [-api URL] list     [-category C] [-from YYYY-MM-DD] [-to YYYY-MM-DD]
//	expensectl [-api URL] add      -amount N [-category C | -custom C] [-note T] [-date YYYY-MM-DD]
//	expensectl [-api URL] edit     ID [-amount N] [-category C] [-custom C] [-note T] [-date YYYY-MM-DD]
//	expensectl [-api URL] delete   ID
//	expensectl [-api URL] budget   AMOUNT
//	expensectl [-api URL] categories
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"expense-tracker-api/src/client"
	"expense-tracker-api/src/ledger"

	"github.com/joho/godotenv"
)

const usage = `Usage: expensectl [-api URL] <command> [flags]

Commands:
  summary      show budget, totals and the over-budget warning
  list         show the expense table
  add          record an expense
  edit ID      change an expense
  delete ID    remove an expense
  budget N     set a new budget
  categories   list category filter options
`

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("expensectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	apiURL := fs.String("api", envOr("EXPENSE_API_URL", "http://localhost:5000"), "API base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	tr := ledger.NewTracker(client.New(*apiURL))
	if err := tr.Load(ctx); err != nil {
		return err
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "summary":
		if err := applyFilter(tr, cmd, rest, stderr); err != nil {
			return err
		}
		renderSummary(stdout, tr.Summary())
	case "list":
		if err := applyFilter(tr, cmd, rest, stderr); err != nil {
			return err
		}
		renderExpenses(stdout, tr.FilteredExpenses(), tr.Summary())
	case "add":
		return runAdd(ctx, tr, rest, stdout, stderr)
	case "edit":
		return runEdit(ctx, tr, rest, stdout, stderr)
	case "delete":
		id, err := singleArg(cmd, rest)
		if err != nil {
			return err
		}
		if err := tr.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Deleted %s\n", id)
		renderSummary(stdout, tr.Summary())
	case "budget":
		amount, err := singleArg(cmd, rest)
		if err != nil {
			return err
		}
		if err := tr.SaveBudget(ctx, amount); err != nil {
			return err
		}
		renderSummary(stdout, tr.Summary())
	case "categories":
		for _, c := range tr.CategoryOptions() {
			fmt.Fprintln(stdout, c)
		}
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func applyFilter(tr *ledger.Tracker, name string, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	category := fs.String("category", ledger.AllCategories, "category to show")
	from := fs.String("from", "", "earliest date, inclusive")
	to := fs.String("to", "", "latest date, inclusive")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tr.SetFilter(ledger.Filter{Category: *category, From: *from, To: *to})
	return nil
}

type formFlags struct {
	fs       *flag.FlagSet
	amount   *string
	category *string
	custom   *string
	note     *string
	date     *string
}

func newFormFlags(name string, stderr io.Writer, defaults ledger.Form) formFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return formFlags{
		fs:       fs,
		amount:   fs.String("amount", defaults.Amount, "amount in rupees"),
		category: fs.String("category", defaults.Category, "preset category: "+strings.Join(ledger.PresetCategories, ", ")),
		custom:   fs.String("custom", defaults.CustomCategory, "custom category, overrides -category"),
		note:     fs.String("note", defaults.Note, "optional note"),
		date:     fs.String("date", defaults.Date, "date as YYYY-MM-DD"),
	}
}

func (f formFlags) form() ledger.Form {
	return ledger.Form{
		Amount:         *f.amount,
		Category:       *f.category,
		CustomCategory: *f.custom,
		Note:           *f.note,
		Date:           *f.date,
	}
}

func runAdd(ctx context.Context, tr *ledger.Tracker, args []string, stdout, stderr io.Writer) error {
	ff := newFormFlags("add", stderr, tr.Form())
	if err := ff.fs.Parse(args); err != nil {
		return err
	}
	tr.SetForm(ff.form())
	if err := tr.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Added %s\n", tr.Expenses()[0].ID)
	renderSummary(stdout, tr.Summary())
	return nil
}

func runEdit(ctx context.Context, tr *ledger.Tracker, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return errors.New("edit: missing expense id")
	}
	id, args := args[0], args[1:]

	var target *ledger.Form
	for _, e := range tr.Expenses() {
		if e.ID == id {
			tr.StartEdit(e)
			f := tr.Form()
			target = &f
			break
		}
	}
	if target == nil {
		return fmt.Errorf("edit: no expense with id %s", id)
	}

	ff := newFormFlags("edit", stderr, *target)
	if err := ff.fs.Parse(args); err != nil {
		return err
	}
	tr.SetForm(ff.form())
	if err := tr.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Updated %s\n", id)
	renderSummary(stdout, tr.Summary())
	return nil
}

func singleArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s: expected exactly one argument", cmd)
	}
	return args[0], nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/stats"
)

type ExpenseService struct {
	base
}

// ExpenseInput is a new expense as entered by the user.
type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Currency    string
}

type ExpenseSummary struct {
	Total      float64
	Weekly     float64
	Monthly    float64
	Count      int
	ByCategory []stats.CategoryTotal
}

func expenseAt(e models.Expense) time.Time    { return e.CreatedAt }
func expenseAmount(e models.Expense) float64  { return e.Amount }
func expenseCategory(e models.Expense) string { return e.Category }

func (s *ExpenseService) Add(ctx context.Context, userID string, in ExpenseInput) (*models.Expense, error) {
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return nil, invalid("amount must be greater than zero")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, invalid("description is required")
	}
	category, ok := models.NormalizeCategory(in.Category)
	if !ok {
		return nil, invalid("unknown category %q", in.Category)
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = models.DefaultCurrency
	}

	return s.repomanager.Expenses(s.db).Create(ctx, &models.Expense{
		UserID:      userID,
		Amount:      in.Amount,
		Category:    category,
		Description: description,
		Currency:    currency,
	})
}

// List returns every expense of the user, newest first.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	return s.repomanager.Expenses(s.db).List(ctx, userID, time.Time{})
}

// Summary totals all expenses, the trailing week and the trailing month, and
// breaks the total down per category.
func (s *ExpenseService) Summary(ctx context.Context, userID string) (*ExpenseSummary, error) {
	now := s.now()
	list, err := s.repomanager.Expenses(s.db).List(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}

	all := stats.Aggregate(list, stats.All(), expenseAt, expenseAmount)
	return &ExpenseSummary{
		Total:      all.Sum,
		Weekly:     stats.Aggregate(list, stats.Trailing(now, 7), expenseAt, expenseAmount).Sum,
		Monthly:    stats.Aggregate(list, stats.TrailingMonths(now, 1), expenseAt, expenseAmount).Sum,
		Count:      all.Count,
		ByCategory: stats.CategoryTotals(list, expenseCategory, expenseAmount),
	}, nil
}

package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/stats"
)

func TestExpenseAdd(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 0)

	bad := []ExpenseInput{
		{Amount: 0, Description: "x"},
		{Amount: -3, Description: "x"},
		{Amount: math.NaN(), Description: "x"},
		{Amount: 3, Description: "  "},
		{Amount: 3, Description: "x", Category: "crypto"},
	}
	for _, in := range bad {
		_, err := h.svc.Expenses.Add(context.Background(), u.ID, in)
		assert.ErrorIs(t, err, common.ErrorValidation, "%+v", in)
	}

	e, err := h.svc.Expenses.Add(context.Background(), u.ID, ExpenseInput{Amount: 4.5, Description: " coffee "})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, e.Category)
	assert.Equal(t, models.DefaultCurrency, e.Currency)
	assert.Equal(t, "coffee", e.Description)

	e, err = h.svc.Expenses.Add(context.Background(), u.ID, ExpenseInput{Amount: 12, Description: "bus", Category: "Transport", Currency: "eur"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryTransport, e.Category)
	assert.Equal(t, "EUR", e.Currency)
}

func TestExpenseSummary(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 0)
	add := func(amount float64, category string, at time.Time) {
		h.store.expenses = append(h.store.expenses, models.Expense{UserID: u.ID, Amount: amount, Category: category, CreatedAt: at})
	}
	add(10, models.CategoryFood, testNow.AddDate(0, 0, -6))
	add(20, models.CategoryBills, testNow.AddDate(0, 0, -8))
	add(5, models.CategoryFood, testNow.AddDate(0, 0, -40))

	got, err := h.svc.Expenses.Summary(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 35.0, got.Total)
	assert.Equal(t, 10.0, got.Weekly)
	assert.Equal(t, 30.0, got.Monthly)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, []stats.CategoryTotal{
		{Category: models.CategoryBills, Total: 20},
		{Category: models.CategoryFood, Total: 15},
	}, got.ByCategory)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const expensesCollection = "expenses"

// ExpenseService backs the expenses screen.
type ExpenseService struct {
	*records[domain.Expense]
	expenses ports.ExpenseRepository
}

func NewExpenseService(expenses ports.ExpenseRepository, writes ports.WriteQueue, dedup DeleteDedup, log zerolog.Logger) *ExpenseService {
	return &ExpenseService{
		records: &records[domain.Expense]{
			collection: expensesCollection,
			repo:       expenses,
			writes:     writes,
			dedup:      dedup,
			log:        log,
		},
		expenses: expenses,
	}
}

func (s *ExpenseService) Create(ctx context.Context, in ports.CreateExpenseInput) (*domain.Expense, error) {
	e := &domain.Expense{
		ID:            newID(),
		Description:   strings.TrimSpace(in.Description),
		Category:      strings.TrimSpace(in.Category),
		Amount:        in.Amount,
		Date:          in.Date.UTC(),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Notes:         strings.TrimSpace(in.Notes),
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, id string, in ports.UpdateExpenseInput) (*domain.Expense, error) {
	fields := ports.Fields{}
	setIf(fields, "description", in.Description)
	setIf(fields, "category", in.Category)
	setIf(fields, "amount", in.Amount)
	setIf(fields, "payment_method", in.PaymentMethod)
	setIf(fields, "notes", in.Notes)
	if in.Date != nil {
		fields["date"] = in.Date.UTC()
	}
	return s.update(ctx, id, fields)
}

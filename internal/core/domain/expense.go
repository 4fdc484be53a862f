package domain

import "time"

// Expense is a recorded hotel expense.
type Expense struct {
	ID            string    `json:"id" bson:"_id"`
	Description   string    `json:"description" bson:"description"`
	Category      string    `json:"category" bson:"category"`
	Amount        float64   `json:"amount" bson:"amount"`
	Date          time.Time `json:"date" bson:"date"`
	PaymentMethod string    `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

func (e Expense) SearchFields() []string {
	return []string{e.Description, e.Category, e.PaymentMethod, e.Notes}
}

func (e Expense) SortDate() time.Time { return e.Date }

package domain

import "time"

// StockItem is an inventory line.
type StockItem struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	MinQuantity int       `json:"min_quantity" bson:"min_quantity"`
	Unit        string    `json:"unit" bson:"unit"`
	UnitPrice   float64   `json:"unit_price" bson:"unit_price"`
	Supplier    string    `json:"supplier,omitempty" bson:"supplier,omitempty"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// LowStock reports whether the quantity fell to or below the reorder level.
func (s StockItem) LowStock() bool {
	return s.MinQuantity > 0 && s.Quantity <= s.MinQuantity
}

func (s StockItem) SearchFields() []string {
	return []string{s.Name, s.Category, s.Supplier}
}

func (s StockItem) SortDate() time.Time { return s.UpdatedAt }

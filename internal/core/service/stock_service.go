package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const stockCollection = "stock"

// StockService backs the stock screen.
type StockService struct {
	*records[domain.StockItem]
	stock ports.StockRepository
	now   func() time.Time
}

func NewStockService(stock ports.StockRepository, writes ports.WriteQueue, dedup DeleteDedup, log zerolog.Logger) *StockService {
	return &StockService{
		records: &records[domain.StockItem]{
			collection: stockCollection,
			repo:       stock,
			writes:     writes,
			dedup:      dedup,
			log:        log,
		},
		stock: stock,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *StockService) Create(ctx context.Context, in ports.CreateStockInput) (*domain.StockItem, error) {
	item := &domain.StockItem{
		ID:          newID(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Unit:        strings.TrimSpace(in.Unit),
		UnitPrice:   in.UnitPrice,
		Supplier:    strings.TrimSpace(in.Supplier),
		UpdatedAt:   s.now(),
	}
	if err := s.stock.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create stock item: %w", err)
	}
	if item.LowStock() {
		s.log.Warn().Str("item_id", item.ID).Str("name", item.Name).Int("quantity", item.Quantity).Msg("stock item below minimum")
	}
	return item, nil
}

// Update merges the edit and bumps updated_at.
func (s *StockService) Update(ctx context.Context, id string, in ports.UpdateStockInput) (*domain.StockItem, error) {
	fields := ports.Fields{}
	setIf(fields, "name", in.Name)
	setIf(fields, "category", in.Category)
	setIf(fields, "quantity", in.Quantity)
	setIf(fields, "min_quantity", in.MinQuantity)
	setIf(fields, "unit", in.Unit)
	setIf(fields, "unit_price", in.UnitPrice)
	setIf(fields, "supplier", in.Supplier)
	if len(fields) > 0 {
		fields["updated_at"] = s.now()
	}

	item, err := s.update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if item.LowStock() {
		s.log.Warn().Str("item_id", item.ID).Str("name", item.Name).Int("quantity", item.Quantity).Msg("stock item below minimum")
	}
	return item, nil
}

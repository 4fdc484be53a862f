package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// DefaultHotelConfig is served until the configuration is first saved.
func DefaultHotelConfig() domain.HotelConfig {
	return domain.HotelConfig{
		Currency:     "EUR",
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
	}
}

// HotelConfigService reads and saves the property settings.
type HotelConfigService struct {
	repo ports.HotelConfigRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewHotelConfigService(repo ports.HotelConfigRepository, log zerolog.Logger) *HotelConfigService {
	return &HotelConfigService{repo: repo, log: log, now: func() time.Time { return time.Now().UTC() }}
}

func (s *HotelConfigService) Get(ctx context.Context) (*domain.HotelConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		def := DefaultHotelConfig()
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hotel configuration: %w", err)
	}
	return cfg, nil
}

// Save replaces the whole document and waits for the write.
func (s *HotelConfigService) Save(ctx context.Context, cfg domain.HotelConfig) (*domain.HotelConfig, error) {
	cfg.HotelName = strings.TrimSpace(cfg.HotelName)
	cfg.Email = domain.NormalizeEmail(cfg.Email)
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	cfg.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("save hotel configuration: %w", err)
	}
	s.log.Info().Str("hotel_name", cfg.HotelName).Msg("hotel configuration saved")
	return &cfg, nil
}

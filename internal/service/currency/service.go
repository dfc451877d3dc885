package currency

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type CurrencyServiceImpl struct {
	currency.CurrencyRepository
}

func NewCurrencyService(repo currency.CurrencyRepository) currency.CurrencyService {
	return &CurrencyServiceImpl{CurrencyRepository: repo}
}

// Create implements currency.CurrencyService.
func (s *CurrencyServiceImpl) Create(ctx context.Context, req currency.CreateCurrencyRequest) (currency.CurrencyResponse, error) {
	if err := req.Validate(); err != nil {
		return currency.CurrencyResponse{}, err
	}
	if req.Code == currency.BaseCode {
		return currency.CurrencyResponse{}, currency.ErrCurrencyCodeExists
	}

	created, err := s.CurrencyRepository.Create(ctx, currency.Currency{
		Code:         req.Code,
		Name:         req.Name,
		ExchangeRate: req.ExchangeRate,
	})
	if err != nil {
		if errors.Is(err, currency.ErrCurrencyCodeExists) {
			return currency.CurrencyResponse{}, err
		}
		return currency.CurrencyResponse{}, fmt.Errorf("failed to create currency: %w", err)
	}

	return currency.NewCurrencyResponse(created), nil
}

// Get implements currency.CurrencyService.
func (s *CurrencyServiceImpl) Get(ctx context.Context, id string) (currency.CurrencyResponse, error) {
	if !validator.IsValidUUID(id) {
		return currency.CurrencyResponse{}, currency.ErrCurrencyNotFound
	}
	c, err := s.CurrencyRepository.GetByID(ctx, id)
	if err != nil {
		return currency.CurrencyResponse{}, err
	}
	return currency.NewCurrencyResponse(c), nil
}

// List implements currency.CurrencyService.
func (s *CurrencyServiceImpl) List(ctx context.Context) ([]currency.CurrencyResponse, error) {
	list, err := s.CurrencyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	result := make([]currency.CurrencyResponse, 0, len(list))
	for _, c := range list {
		result = append(result, currency.NewCurrencyResponse(c))
	}
	return result, nil
}

// Update implements currency.CurrencyService. Changing a rate only affects
// revenue written afterwards; stored snapshots are left alone.
func (s *CurrencyServiceImpl) Update(ctx context.Context, req currency.UpdateCurrencyRequest) (currency.CurrencyResponse, error) {
	if err := req.Validate(); err != nil {
		return currency.CurrencyResponse{}, err
	}

	existing, err := s.CurrencyRepository.GetByID(ctx, req.ID)
	if err != nil {
		return currency.CurrencyResponse{}, err
	}
	if existing.IsBase() && req.ExchangeRate != nil && !req.ExchangeRate.Equal(existing.ExchangeRate) {
		return currency.CurrencyResponse{}, currency.ErrBaseCurrencyImmutable
	}

	if err := s.CurrencyRepository.Update(ctx, req); err != nil {
		return currency.CurrencyResponse{}, fmt.Errorf("failed to update currency: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.ExchangeRate != nil {
		existing.ExchangeRate = *req.ExchangeRate
	}
	return currency.NewCurrencyResponse(existing), nil
}

// Delete implements currency.CurrencyService.
func (s *CurrencyServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return currency.ErrCurrencyNotFound
	}
	existing, err := s.CurrencyRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsBase() {
		return currency.ErrBaseCurrencyImmutable
	}
	return s.CurrencyRepository.Delete(ctx, id)
}

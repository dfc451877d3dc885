package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/activity"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/cafe"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/category"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/purchase"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/reservation"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/shift"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type CatalogService interface {
	// Cafe operations
	CreateCafe(ctx context.Context, req cafe.CreateCafeRequest) (cafe.CafeResponse, error)
	GetCafe(ctx context.Context, id string) (cafe.CafeResponse, error)
	ListCafes(ctx context.Context) ([]cafe.CafeResponse, error)
	UpdateCafe(ctx context.Context, req cafe.UpdateCafeRequest) (cafe.CafeResponse, error)
	DeleteCafe(ctx context.Context, id string) error

	// Category operations
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (category.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]category.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) (category.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	// Activity operations
	CreateActivity(ctx context.Context, req activity.CreateActivityRequest) (activity.ActivityResponse, error)
	GetActivity(ctx context.Context, id string) (activity.ActivityResponse, error)
	ListActivities(ctx context.Context) ([]activity.ActivityResponse, error)
	UpdateActivity(ctx context.Context, req activity.UpdateActivityRequest) (activity.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id string) error

	// Purchase operations
	CreatePurchase(ctx context.Context, req purchase.CreatePurchaseRequest) (purchase.PurchaseResponse, error)
	GetPurchase(ctx context.Context, id string) (purchase.PurchaseResponse, error)
	ListPurchases(ctx context.Context, filter purchase.PurchaseFilter) ([]purchase.PurchaseResponse, error)
	UpdatePurchase(ctx context.Context, req purchase.UpdatePurchaseRequest) (purchase.PurchaseResponse, error)
	DeletePurchase(ctx context.Context, id string) error

	// Cafe shift revenue operations
	CreateShiftRevenue(ctx context.Context, req shift.CreateRevenueRequest) (shift.RevenueResponse, error)
	GetShiftRevenue(ctx context.Context, id string) (shift.RevenueResponse, error)
	ListShiftRevenue(ctx context.Context, cafeID string) ([]shift.RevenueResponse, error)
	UpdateShiftRevenue(ctx context.Context, req shift.UpdateRevenueRequest) (shift.RevenueResponse, error)
	DeleteShiftRevenue(ctx context.Context, id string) error

	// Reservation operations
	CreateReservation(ctx context.Context, req reservation.ReservationRequest) (reservation.ReservationResponse, error)
	GetReservation(ctx context.Context, id string) (reservation.ReservationResponse, error)
	ListReservations(ctx context.Context) ([]reservation.ReservationResponse, error)
	UpdateReservation(ctx context.Context, req reservation.ReservationRequest) (reservation.ReservationResponse, error)
	DeleteReservation(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	db              database.Transactor
	cafeRepo        cafe.CafeRepository
	categoryRepo    category.CategoryRepository
	activityRepo    activity.ActivityRepository
	purchaseRepo    purchase.PurchaseRepository
	shiftRepo       shift.RevenueRepository
	reservationRepo reservation.ReservationRepository
	loc             *time.Location
	now             func() time.Time
}

func NewCatalogService(
	db database.Transactor,
	cafeRepo cafe.CafeRepository,
	categoryRepo category.CategoryRepository,
	activityRepo activity.ActivityRepository,
	purchaseRepo purchase.PurchaseRepository,
	shiftRepo shift.RevenueRepository,
	reservationRepo reservation.ReservationRepository,
	loc *time.Location,
) CatalogService {
	return &catalogServiceImpl{
		db:              db,
		cafeRepo:        cafeRepo,
		categoryRepo:    categoryRepo,
		activityRepo:    activityRepo,
		purchaseRepo:    purchaseRepo,
		shiftRepo:       shiftRepo,
		reservationRepo: reservationRepo,
		loc:             loc,
		now:             time.Now,
	}
}

// ==================== CAFE OPERATIONS ====================

func (s *catalogServiceImpl) CreateCafe(ctx context.Context, req cafe.CreateCafeRequest) (cafe.CafeResponse, error) {
	if err := req.Validate(); err != nil {
		return cafe.CafeResponse{}, err
	}

	created, err := s.cafeRepo.Create(ctx, cafe.Cafe{
		Name:        req.Name,
		Branch:      req.Branch,
		Description: req.Description,
	})
	if err != nil {
		return cafe.CafeResponse{}, fmt.Errorf("failed to create cafe: %w", err)
	}
	return cafe.NewCafeResponse(created), nil
}

func (s *catalogServiceImpl) GetCafe(ctx context.Context, id string) (cafe.CafeResponse, error) {
	if !validator.IsValidUUID(id) {
		return cafe.CafeResponse{}, cafe.ErrCafeNotFound
	}
	c, err := s.cafeRepo.GetByID(ctx, id)
	if err != nil {
		return cafe.CafeResponse{}, err
	}
	return cafe.NewCafeResponse(c), nil
}

func (s *catalogServiceImpl) ListCafes(ctx context.Context) ([]cafe.CafeResponse, error) {
	cafes, err := s.cafeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cafes: %w", err)
	}
	result := make([]cafe.CafeResponse, 0, len(cafes))
	for _, c := range cafes {
		result = append(result, cafe.NewCafeResponse(c))
	}
	return result, nil
}

func (s *catalogServiceImpl) UpdateCafe(ctx context.Context, req cafe.UpdateCafeRequest) (cafe.CafeResponse, error) {
	if err := req.Validate(); err != nil {
		return cafe.CafeResponse{}, err
	}
	if err := s.cafeRepo.Update(ctx, req); err != nil {
		return cafe.CafeResponse{}, err
	}
	return s.GetCafe(ctx, req.ID)
}

func (s *catalogServiceImpl) DeleteCafe(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return cafe.ErrCafeNotFound
	}
	return s.cafeRepo.Delete(ctx, id)
}

// ==================== CATEGORY OPERATIONS ====================

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return category.CategoryResponse{}, err
	}

	created, err := s.categoryRepo.Create(ctx, category.Category{Name: req.Name})
	if err != nil {
		if errors.Is(err, category.ErrCategoryNameExists) {
			return category.CategoryResponse{}, err
		}
		return category.CategoryResponse{}, fmt.Errorf("failed to create category: %w", err)
	}
	return category.NewCategoryResponse(created), nil
}

func (s *catalogServiceImpl) GetCategory(ctx context.Context, id string) (category.CategoryResponse, error) {
	if !validator.IsValidUUID(id) {
		return category.CategoryResponse{}, category.ErrCategoryNotFound
	}
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return category.CategoryResponse{}, err
	}
	return category.NewCategoryResponse(c), nil
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]category.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	result := make([]category.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, category.NewCategoryResponse(c))
	}
	return result, nil
}

func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) (category.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return category.CategoryResponse{}, err
	}
	if err := s.categoryRepo.Update(ctx, req); err != nil {
		return category.CategoryResponse{}, err
	}
	return s.GetCategory(ctx, req.ID)
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return category.ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ==================== ACTIVITY OPERATIONS ====================

func (s *catalogServiceImpl) CreateActivity(ctx context.Context, req activity.CreateActivityRequest) (activity.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return activity.ActivityResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.activityRepo.Create(ctx, activity.Activity{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
	})
	if err != nil {
		if errors.Is(err, activity.ErrActivityNameExists) {
			return activity.ActivityResponse{}, err
		}
		return activity.ActivityResponse{}, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity.NewActivityResponse(created), nil
}

func (s *catalogServiceImpl) GetActivity(ctx context.Context, id string) (activity.ActivityResponse, error) {
	if !validator.IsValidUUID(id) {
		return activity.ActivityResponse{}, activity.ErrActivityNotFound
	}
	a, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return activity.ActivityResponse{}, err
	}
	return activity.NewActivityResponse(a), nil
}

func (s *catalogServiceImpl) ListActivities(ctx context.Context) ([]activity.ActivityResponse, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	result := make([]activity.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, activity.NewActivityResponse(a))
	}
	return result, nil
}

func (s *catalogServiceImpl) UpdateActivity(ctx context.Context, req activity.UpdateActivityRequest) (activity.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return activity.ActivityResponse{}, err
	}
	if err := s.activityRepo.Update(ctx, req); err != nil {
		return activity.ActivityResponse{}, err
	}
	return s.GetActivity(ctx, req.ID)
}

func (s *catalogServiceImpl) DeleteActivity(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return activity.ErrActivityNotFound
	}
	return s.activityRepo.Delete(ctx, id)
}

// ==================== PURCHASE OPERATIONS ====================

func (s *catalogServiceImpl) CreatePurchase(ctx context.Context, req purchase.CreatePurchaseRequest) (purchase.PurchaseResponse, error) {
	if err := req.Validate(); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	p := purchase.Purchase{
		CafeID:       req.Cafe,
		CategoryID:   req.Category,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		PurchaseDate: s.today(),
	}
	if req.PurchaseDate != nil {
		p.PurchaseDate, _ = validator.IsValidDate(*req.PurchaseDate)
	}
	p.ComputeTotal()

	var created purchase.Purchase
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		c, cat, err := s.purchaseRefs(ctx, p.CafeID, p.CategoryID)
		if err != nil {
			return err
		}
		created, err = s.purchaseRepo.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}
		created.CafeName, created.CategoryName = c.Name, cat.Name
		return nil
	})
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}
	return purchase.NewPurchaseResponse(created), nil
}

func (s *catalogServiceImpl) GetPurchase(ctx context.Context, id string) (purchase.PurchaseResponse, error) {
	if !validator.IsValidUUID(id) {
		return purchase.PurchaseResponse{}, purchase.ErrPurchaseNotFound
	}
	p, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}
	return purchase.NewPurchaseResponse(p), nil
}

func (s *catalogServiceImpl) ListPurchases(ctx context.Context, filter purchase.PurchaseFilter) ([]purchase.PurchaseResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	result := make([]purchase.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		result = append(result, purchase.NewPurchaseResponse(p))
	}
	return result, nil
}

func (s *catalogServiceImpl) UpdatePurchase(ctx context.Context, req purchase.UpdatePurchaseRequest) (purchase.PurchaseResponse, error) {
	if err := req.Validate(); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	var updated purchase.Purchase
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.purchaseRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Category != nil {
			cat, err := s.categoryRepo.GetByID(ctx, *req.Category)
			if err != nil {
				if errors.Is(err, category.ErrCategoryNotFound) {
					return purchase.ErrInvalidReference
				}
				return fmt.Errorf("failed to get category: %w", err)
			}
			p.CategoryID, p.CategoryName = cat.ID, cat.Name
		}
		if req.Quantity != nil {
			p.Quantity = *req.Quantity
		}
		if req.UnitPrice != nil {
			p.UnitPrice = *req.UnitPrice
		}
		if req.PurchaseDate != nil {
			p.PurchaseDate, _ = validator.IsValidDate(*req.PurchaseDate)
		}
		p.ComputeTotal()

		updated, err = s.purchaseRepo.Update(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to update purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}
	return purchase.NewPurchaseResponse(updated), nil
}

func (s *catalogServiceImpl) DeletePurchase(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return purchase.ErrPurchaseNotFound
	}
	return s.purchaseRepo.Delete(ctx, id)
}

func (s *catalogServiceImpl) purchaseRefs(ctx context.Context, cafeID, categoryID string) (cafe.Cafe, category.Category, error) {
	c, err := s.cafeRepo.GetByID(ctx, cafeID)
	if err != nil {
		if errors.Is(err, cafe.ErrCafeNotFound) {
			return cafe.Cafe{}, category.Category{}, purchase.ErrInvalidReference
		}
		return cafe.Cafe{}, category.Category{}, fmt.Errorf("failed to get cafe: %w", err)
	}
	cat, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return cafe.Cafe{}, category.Category{}, purchase.ErrInvalidReference
		}
		return cafe.Cafe{}, category.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return c, cat, nil
}

// ==================== SHIFT REVENUE OPERATIONS ====================

func (s *catalogServiceImpl) CreateShiftRevenue(ctx context.Context, req shift.CreateRevenueRequest) (shift.RevenueResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.RevenueResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	var created shift.Revenue
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.cafeRepo.GetByID(ctx, req.Cafe); err != nil {
			return err
		}
		var err error
		created, err = s.shiftRepo.Create(ctx, shift.Revenue{
			CafeID: req.Cafe,
			Shift:  req.Shift,
			Date:   date,
			Amount: req.Amount,
		})
		if err != nil {
			if errors.Is(err, shift.ErrShiftRecorded) {
				return err
			}
			return fmt.Errorf("failed to create shift revenue: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.RevenueResponse{}, err
	}
	return shift.NewRevenueResponse(created), nil
}

func (s *catalogServiceImpl) GetShiftRevenue(ctx context.Context, id string) (shift.RevenueResponse, error) {
	if !validator.IsValidUUID(id) {
		return shift.RevenueResponse{}, shift.ErrRevenueNotFound
	}
	r, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.RevenueResponse{}, err
	}
	return shift.NewRevenueResponse(r), nil
}

func (s *catalogServiceImpl) ListShiftRevenue(ctx context.Context, cafeID string) ([]shift.RevenueResponse, error) {
	if cafeID != "" && !validator.IsValidUUID(cafeID) {
		var errs validator.ValidationErrors
		errs.Add("cafe", "invalid cafe id")
		return nil, errs
	}
	rows, err := s.shiftRepo.List(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift revenue: %w", err)
	}
	result := make([]shift.RevenueResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, shift.NewRevenueResponse(r))
	}
	return result, nil
}

func (s *catalogServiceImpl) UpdateShiftRevenue(ctx context.Context, req shift.UpdateRevenueRequest) (shift.RevenueResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.RevenueResponse{}, err
	}

	var updated shift.Revenue
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.shiftRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if req.Shift != nil {
			r.Shift = *req.Shift
		}
		if req.Date != nil {
			r.Date, _ = validator.IsValidDate(*req.Date)
		}
		if req.Amount != nil {
			r.Amount = *req.Amount
		}
		updated, err = s.shiftRepo.Update(ctx, r)
		if err != nil {
			if errors.Is(err, shift.ErrShiftRecorded) {
				return err
			}
			return fmt.Errorf("failed to update shift revenue: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.RevenueResponse{}, err
	}
	return shift.NewRevenueResponse(updated), nil
}

func (s *catalogServiceImpl) DeleteShiftRevenue(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return shift.ErrRevenueNotFound
	}
	return s.shiftRepo.Delete(ctx, id)
}

// ==================== RESERVATION OPERATIONS ====================

func (s *catalogServiceImpl) CreateReservation(ctx context.Context, req reservation.ReservationRequest) (reservation.ReservationResponse, error) {
	if err := req.Validate(); err != nil {
		return reservation.ReservationResponse{}, err
	}
	created, err := s.reservationRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return reservation.ReservationResponse{}, fmt.Errorf("failed to create reservation: %w", err)
	}
	return reservation.NewReservationResponse(created), nil
}

func (s *catalogServiceImpl) GetReservation(ctx context.Context, id string) (reservation.ReservationResponse, error) {
	if !validator.IsValidUUID(id) {
		return reservation.ReservationResponse{}, reservation.ErrReservationNotFound
	}
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return reservation.ReservationResponse{}, err
	}
	return reservation.NewReservationResponse(r), nil
}

func (s *catalogServiceImpl) ListReservations(ctx context.Context) ([]reservation.ReservationResponse, error) {
	rows, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	result := make([]reservation.ReservationResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, reservation.NewReservationResponse(r))
	}
	return result, nil
}

// UpdateReservation replaces every field of an existing reservation.
func (s *catalogServiceImpl) UpdateReservation(ctx context.Context, req reservation.ReservationRequest) (reservation.ReservationResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return reservation.ReservationResponse{}, reservation.ErrReservationNotFound
	}
	if err := req.Validate(); err != nil {
		return reservation.ReservationResponse{}, err
	}
	updated, err := s.reservationRepo.Update(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return reservation.ReservationResponse{}, err
		}
		return reservation.ReservationResponse{}, fmt.Errorf("failed to update reservation: %w", err)
	}
	return reservation.NewReservationResponse(updated), nil
}

func (s *catalogServiceImpl) DeleteReservation(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return reservation.ErrReservationNotFound
	}
	return s.reservationRepo.Delete(ctx, id)
}

func (s *catalogServiceImpl) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

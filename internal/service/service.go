package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/xGiancox/Barberiaapp/internal/common"
	"github.com/xGiancox/Barberiaapp/internal/earnings"
	"github.com/xGiancox/Barberiaapp/internal/models"
	"github.com/xGiancox/Barberiaapp/internal/repository"
)

// Service defines all the business logic operations
type Service interface {
	// Authentication
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	// Haircut operations
	CreateHairCut(ctx context.Context, p models.Principal, req models.CreateHairCutRequest) (*models.HairCutResponse, error)

	// Earnings aggregation
	GetDashboard(ctx context.Context, p models.Principal, kind earnings.ScopeKind, targetUserID string) (*models.DashboardResponse, error)
	GetCalendarDay(ctx context.Context, p models.Principal, date string, kind earnings.ScopeKind, targetUserID string) (*models.CalendarDayResponse, error)
	GetWeeklySummary(ctx context.Context, p models.Principal, weeksBack int, kind earnings.ScopeKind, targetUserID string) (*models.WeeklySummaryResponse, error)

	// Product sales (owner only)
	CreateProductSale(ctx context.Context, p models.Principal, req models.CreateProductSaleRequest) (*models.ProductSaleResponse, error)
	ListProductSales(ctx context.Context, p models.Principal) (*models.ProductSalesResponse, error)
	DeleteProductSale(ctx context.Context, p models.Principal, saleID string) error

	// Expenses (owner only)
	CreateExpense(ctx context.Context, p models.Principal, req models.CreateExpenseRequest) (*models.ExpenseResponse, error)
	ListExpenses(ctx context.Context, p models.Principal) (*models.ExpensesResponse, error)

	// Users
	ListBarbers(ctx context.Context, p models.Principal) (*models.BarbersResponse, error)
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo          repository.Repository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, jwtSecret string) Service {
	return &DefaultService{
		repo:          repo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour, // 24 hours token validity
	}
}

// Authentication methods
func (s *DefaultService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	existingUser, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking user existence: %w", err)
	}

	if existingUser != nil {
		return nil, fmt.Errorf("%w: a user with this email already exists", common.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	// Self-registered accounts are always barbers; the owner account is
	// seeded at database initialization.
	user := &models.User{
		ID:       uuid.New().String(),
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashedPassword),
		Role:     earnings.RoleBarber,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &models.AuthResponse{
		Status: "success",
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

func (s *DefaultService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	if user == nil {
		return nil, fmt.Errorf("%w: invalid email or password", common.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", common.ErrUnauthorized)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &models.AuthResponse{
		Status:    "success",
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
		Token:     token,
		ExpiresIn: int(s.tokenDuration.Seconds()),
	}, nil
}

// Haircut operations
func (s *DefaultService) CreateHairCut(
	ctx context.Context,
	p models.Principal,
	req models.CreateHairCutRequest,
) (*models.HairCutResponse, error) {
	dateCut, err := earnings.ParseDate(req.DateCut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	total := req.Price * float64(req.Quantity)

	// The creator's share is frozen at write time with the role the caller
	// holds right now.
	cut := &models.HairCut{
		ID:           uuid.New().String(),
		DateCut:      dateCut.Format(earnings.DateLayout),
		Price:        req.Price,
		Quantity:     req.Quantity,
		Total:        total,
		DividedTotal: earnings.Split(total, p.Role),
		UserID:       p.UserID,
	}

	if err := s.repo.CreateHairCut(ctx, cut); err != nil {
		return nil, fmt.Errorf("error creating haircut: %w", err)
	}

	return &models.HairCutResponse{
		Status: "success",
		Cut:    *cut,
	}, nil
}

// Earnings aggregation
func (s *DefaultService) GetDashboard(
	ctx context.Context,
	p models.Principal,
	kind earnings.ScopeKind,
	targetUserID string,
) (*models.DashboardResponse, error) {
	scope, err := s.resolveScope(ctx, p, kind, targetUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ranges := []earnings.Range{
		earnings.Today(now),
		earnings.LastDays(now, 7),
		earnings.LastDays(now, 14),
		earnings.MonthToDate(now),
	}

	summaries := make([]earnings.CutSummary, len(ranges))
	for i, rng := range ranges {
		summaries[i], err = s.repo.SummarizeHairCuts(ctx, scope, rng)
		if err != nil {
			return nil, fmt.Errorf("error aggregating haircuts: %w", err)
		}
	}

	resp := &models.DashboardResponse{
		Status:      "success",
		Scope:       scope.Kind,
		UserID:      scope.UserID,
		Today:       summaries[0],
		Last7Days:   summaries[1],
		Last14Days:  summaries[2],
		MonthToDate: summaries[3],
	}

	// Product sale proceeds are shop revenue; only the owner sees them.
	if p.Role == earnings.RoleOwner {
		todaySales, err := s.repo.SummarizeProductSales(ctx, earnings.Today(now))
		if err != nil {
			return nil, fmt.Errorf("error aggregating product sales: %w", err)
		}
		monthSales, err := s.repo.SummarizeProductSales(ctx, earnings.MonthToDate(now))
		if err != nil {
			return nil, fmt.Errorf("error aggregating product sales: %w", err)
		}
		resp.Sales = &models.SalesOverview{Today: todaySales, MonthToDate: monthSales}
	}

	return resp, nil
}

func (s *DefaultService) GetCalendarDay(
	ctx context.Context,
	p models.Principal,
	date string,
	kind earnings.ScopeKind,
	targetUserID string,
) (*models.CalendarDayResponse, error) {
	day, err := earnings.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	scope, err := s.resolveScope(ctx, p, kind, targetUserID)
	if err != nil {
		return nil, err
	}

	rng := earnings.Range{Start: day, End: day}

	summary, err := s.repo.SummarizeHairCuts(ctx, scope, rng)
	if err != nil {
		return nil, fmt.Errorf("error aggregating haircuts: %w", err)
	}

	cuts, err := s.repo.ListHairCuts(ctx, scope, rng)
	if err != nil {
		return nil, fmt.Errorf("error listing haircuts: %w", err)
	}

	return &models.CalendarDayResponse{
		Status:  "success",
		Date:    rng.StartDate(),
		Scope:   scope.Kind,
		Summary: summary,
		Cuts:    cuts,
	}, nil
}

func (s *DefaultService) GetWeeklySummary(
	ctx context.Context,
	p models.Principal,
	weeksBack int,
	kind earnings.ScopeKind,
	targetUserID string,
) (*models.WeeklySummaryResponse, error) {
	if weeksBack < 0 {
		return nil, fmt.Errorf("%w: weeksBack must not be negative", common.ErrValidation)
	}

	scope, err := s.resolveScope(ctx, p, kind, targetUserID)
	if err != nil {
		return nil, err
	}

	rng := earnings.WeeksBack(time.Now().UTC(), weeksBack)

	summary, err := s.repo.SummarizeHairCuts(ctx, scope, rng)
	if err != nil {
		return nil, fmt.Errorf("error aggregating haircuts: %w", err)
	}

	cuts, err := s.repo.ListHairCuts(ctx, scope, rng)
	if err != nil {
		return nil, fmt.Errorf("error listing haircuts: %w", err)
	}

	return &models.WeeklySummaryResponse{
		Status:    "success",
		WeeksBack: weeksBack,
		StartDate: rng.StartDate(),
		EndDate:   rng.EndDate(),
		Scope:     scope.Kind,
		Summary:   summary,
		Cuts:      cuts,
	}, nil
}

// Product sale operations
func (s *DefaultService) CreateProductSale(
	ctx context.Context,
	p models.Principal,
	req models.CreateProductSaleRequest,
) (*models.ProductSaleResponse, error) {
	if err := requireOwner(p); err != nil {
		return nil, err
	}

	dateSale, err := earnings.ParseDate(req.DateSale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	sale := &models.ProductSale{
		ID:          uuid.New().String(),
		DateSale:    dateSale.Format(earnings.DateLayout),
		ProductName: req.ProductName,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Total:       req.Price * float64(req.Quantity),
		CreatedBy:   p.UserID,
	}

	if err := s.repo.CreateProductSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("error creating product sale: %w", err)
	}

	return &models.ProductSaleResponse{
		Status: "success",
		Sale:   *sale,
	}, nil
}

func (s *DefaultService) ListProductSales(
	ctx context.Context,
	p models.Principal,
) (*models.ProductSalesResponse, error) {
	if err := requireOwner(p); err != nil {
		return nil, err
	}

	sales, err := s.repo.ListProductSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing product sales: %w", err)
	}

	now := time.Now().UTC()
	today, err := s.repo.SummarizeProductSales(ctx, earnings.Today(now))
	if err != nil {
		return nil, fmt.Errorf("error aggregating product sales: %w", err)
	}
	month, err := s.repo.SummarizeProductSales(ctx, earnings.MonthToDate(now))
	if err != nil {
		return nil, fmt.Errorf("error aggregating product sales: %w", err)
	}

	return &models.ProductSalesResponse{
		Status:      "success",
		Sales:       sales,
		Today:       today,
		MonthToDate: month,
	}, nil
}

func (s *DefaultService) DeleteProductSale(ctx context.Context, p models.Principal, saleID string) error {
	if err := requireOwner(p); err != nil {
		return err
	}

	sale, err := s.repo.GetProductSale(ctx, saleID)
	if err != nil {
		return fmt.Errorf("error getting product sale: %w", err)
	}

	if sale == nil {
		return fmt.Errorf("%w: product sale does not exist", common.ErrNotFound)
	}

	if err := s.repo.DeleteProductSale(ctx, saleID); err != nil {
		return fmt.Errorf("error deleting product sale: %w", err)
	}

	return nil
}

// Expense operations
func (s *DefaultService) CreateExpense(
	ctx context.Context,
	p models.Principal,
	req models.CreateExpenseRequest,
) (*models.ExpenseResponse, error) {
	if err := requireOwner(p); err != nil {
		return nil, err
	}

	// month_year is a free-form label, expected "YYYY-MM" but not validated.
	expense := &models.MonthlyExpense{
		ID:          uuid.New().String(),
		MonthYear:   req.MonthYear,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedBy:   p.UserID,
	}

	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}

	return &models.ExpenseResponse{
		Status:  "success",
		Expense: *expense,
	}, nil
}

func (s *DefaultService) ListExpenses(ctx context.Context, p models.Principal) (*models.ExpensesResponse, error) {
	if err := requireOwner(p); err != nil {
		return nil, err
	}

	expenses, err := s.repo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	return &models.ExpensesResponse{
		Status:   "success",
		Expenses: expenses,
		Total:    total,
	}, nil
}

// User operations
func (s *DefaultService) ListBarbers(ctx context.Context, p models.Principal) (*models.BarbersResponse, error) {
	if err := requireOwner(p); err != nil {
		return nil, err
	}

	barbers, err := s.repo.ListBarbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing barbers: %w", err)
	}

	return &models.BarbersResponse{
		Status:  "success",
		Barbers: barbers,
	}, nil
}

// Helper methods

// resolveScope applies the role rule to the requested scope and verifies
// that a specific-user scope points at an existing user.
func (s *DefaultService) resolveScope(
	ctx context.Context,
	p models.Principal,
	kind earnings.ScopeKind,
	targetUserID string,
) (earnings.Scope, error) {
	scope := earnings.ResolveScope(p.Role, p.UserID, kind, targetUserID)

	if scope.Kind == earnings.ScopeUser {
		if scope.UserID == "" {
			return earnings.Scope{}, fmt.Errorf("%w: user scope requires a user id", common.ErrValidation)
		}
		user, err := s.repo.GetUserByID(ctx, scope.UserID)
		if err != nil {
			return earnings.Scope{}, fmt.Errorf("error getting user: %w", err)
		}
		if user == nil {
			return earnings.Scope{}, fmt.Errorf("%w: user does not exist", common.ErrNotFound)
		}
	}

	return scope, nil
}

func requireOwner(p models.Principal) error {
	if p.Role != earnings.RoleOwner {
		return fmt.Errorf("%w: only the owner may perform this operation", common.ErrForbidden)
	}
	return nil
}

func (s *DefaultService) generateJWT(user *models.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenDuration)

	claims := jwt.MapClaims{
		"sub":  user.ID, // subject
		"role": string(user.Role),
		"exp":  expirationTime.Unix(),
		"iat":  time.Now().Unix(), // issued at
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

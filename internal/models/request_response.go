package models

import "github.com/xGiancox/Barberiaapp/internal/earnings"

// Request models
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateHairCutRequest struct {
	DateCut  string  `json:"dateCut" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

type CreateProductSaleRequest struct {
	DateSale    string  `json:"dateSale" binding:"required"`
	ProductName string  `json:"productName" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
}

type CreateExpenseRequest struct {
	MonthYear   string  `json:"monthYear" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// Response models
type AuthResponse struct {
	Status    string        `json:"status"`
	UserID    string        `json:"userId,omitempty"`
	Email     string        `json:"email,omitempty"`
	Name      string        `json:"name,omitempty"`
	Role      earnings.Role `json:"role,omitempty"`
	Token     string        `json:"token,omitempty"`
	ExpiresIn int           `json:"expiresIn,omitempty"`
}

type HairCutResponse struct {
	Status string  `json:"status"`
	Cut    HairCut `json:"cut"`
}

type ProductSaleResponse struct {
	Status string      `json:"status"`
	Sale   ProductSale `json:"sale"`
}

// ProductSalesResponse is the sales listing with the today/month totals the
// owner sees alongside it.
type ProductSalesResponse struct {
	Status      string               `json:"status"`
	Sales       []ProductSale        `json:"sales"`
	Today       earnings.SaleSummary `json:"today"`
	MonthToDate earnings.SaleSummary `json:"monthToDate"`
}

type ExpenseResponse struct {
	Status  string         `json:"status"`
	Expense MonthlyExpense `json:"expense"`
}

type ExpensesResponse struct {
	Status   string           `json:"status"`
	Expenses []MonthlyExpense `json:"expenses"`
	Total    float64          `json:"total"`
}

// SalesOverview is the product-sale block of the owner dashboard.
type SalesOverview struct {
	Today       earnings.SaleSummary `json:"today"`
	MonthToDate earnings.SaleSummary `json:"monthToDate"`
}

type DashboardResponse struct {
	Status      string              `json:"status"`
	Scope       earnings.ScopeKind  `json:"scope"`
	UserID      string              `json:"userId,omitempty"`
	Today       earnings.CutSummary `json:"today"`
	Last7Days   earnings.CutSummary `json:"last7Days"`
	Last14Days  earnings.CutSummary `json:"last14Days"`
	MonthToDate earnings.CutSummary `json:"monthToDate"`
	Sales       *SalesOverview      `json:"sales,omitempty"`
}

type CalendarDayResponse struct {
	Status  string              `json:"status"`
	Date    string              `json:"date"`
	Scope   earnings.ScopeKind  `json:"scope"`
	Summary earnings.CutSummary `json:"summary"`
	Cuts    []HairCut           `json:"cuts"`
}

type WeeklySummaryResponse struct {
	Status    string              `json:"status"`
	WeeksBack int                 `json:"weeksBack"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Scope     earnings.ScopeKind  `json:"scope"`
	Summary   earnings.CutSummary `json:"summary"`
	Cuts      []HairCut           `json:"cuts"`
}

type BarbersResponse struct {
	Status  string `json:"status"`
	Barbers []User `json:"barbers"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

package models

import (
	"time"

	"github.com/xGiancox/Barberiaapp/internal/earnings"
)

// Principal identifies the authenticated caller of a request. It is resolved
// by the auth middleware and passed explicitly into every service call.
type Principal struct {
	UserID string
	Role   earnings.Role
}

// User represents a shop member (the owner or a barber)
type User struct {
	ID        string        `db:"id" json:"id"`
	Email     string        `db:"email" json:"email"`
	Name      string        `db:"name" json:"name"`
	Password  string        `db:"password" json:"-"` // bcrypt hash, never returned
	Role      earnings.Role `db:"role" json:"role"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

// HairCut records one or more haircuts sold at a fixed unit price on a
// service date. Total is price*quantity; DividedTotal is the creator's
// share under the split rule, frozen at creation time.
type HairCut struct {
	ID           string    `db:"id" json:"id"`
	DateCut      string    `db:"date_cut" json:"dateCut"` // YYYY-MM-DD
	DateRecorded time.Time `db:"date_recorded" json:"dateRecorded"`
	Price        float64   `db:"price" json:"price"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Total        float64   `db:"total" json:"total"`
	DividedTotal float64   `db:"divided_total" json:"dividedTotal"`
	UserID       string    `db:"user_id" json:"userId"`
}

// MonthlyExpense is a shared cost bucket keyed by a YYYY-MM label.
// The label is free text; nothing ties it to actual calendar days.
type MonthlyExpense struct {
	ID          string    `db:"id" json:"id"`
	MonthYear   string    `db:"month_year" json:"monthYear"`
	Amount      float64   `db:"amount" json:"amount"`
	Description string    `db:"description" json:"description"`
	CreatedBy   string    `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// ProductSale records a retail product sale. Sale proceeds are not split.
type ProductSale struct {
	ID           string    `db:"id" json:"id"`
	DateSale     string    `db:"date_sale" json:"dateSale"` // YYYY-MM-DD
	DateRecorded time.Time `db:"date_recorded" json:"dateRecorded"`
	ProductName  string    `db:"product_name" json:"productName"`
	Price        float64   `db:"price" json:"price"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Total        float64   `db:"total" json:"total"`
	CreatedBy    string    `db:"created_by" json:"createdBy"`
}

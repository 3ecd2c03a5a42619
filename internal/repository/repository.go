package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/xGiancox/Barberiaapp/internal/earnings"
	"github.com/xGiancox/Barberiaapp/internal/models"
)

// Repository interface defines the methods that any repository implementation must satisfy
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListBarbers(ctx context.Context) ([]models.User, error)
	HasOwner(ctx context.Context) (bool, error)

	// Haircut operations
	CreateHairCut(ctx context.Context, cut *models.HairCut) error
	ListHairCuts(ctx context.Context, scope earnings.Scope, rng earnings.Range) ([]models.HairCut, error)
	SummarizeHairCuts(ctx context.Context, scope earnings.Scope, rng earnings.Range) (earnings.CutSummary, error)

	// Product sale operations
	CreateProductSale(ctx context.Context, sale *models.ProductSale) error
	GetProductSale(ctx context.Context, id string) (*models.ProductSale, error)
	DeleteProductSale(ctx context.Context, id string) error
	ListProductSales(ctx context.Context) ([]models.ProductSale, error)
	SummarizeProductSales(ctx context.Context, rng earnings.Range) (earnings.SaleSummary, error)

	// Expense operations
	CreateExpense(ctx context.Context, expense *models.MonthlyExpense) error
	ListExpenses(ctx context.Context) ([]models.MonthlyExpense, error)
}

// SQLRepository implements the Repository interface over sqlx. Queries use
// `?` placeholders and are rebound per driver, so the same implementation
// serves both the postgres and the sqlite backing store.
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository creates a new SQL repository
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{
		db: db,
	}
}

// GetDB returns the underlying database connection
func (r *SQLRepository) GetDB() *sqlx.DB {
	return r.db
}

// User repository methods
func (r *SQLRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (id, email, name, password, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.Password, user.Role, user.CreatedAt)

	return err
}

func (r *SQLRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := r.db.Rebind(`SELECT * FROM users WHERE email = ?`)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, err
	}

	return &user, nil
}

func (r *SQLRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := r.db.Rebind(`SELECT * FROM users WHERE id = ?`)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, err
	}

	return &user, nil
}

func (r *SQLRepository) ListBarbers(ctx context.Context) ([]models.User, error) {
	query := r.db.Rebind(`SELECT * FROM users WHERE role = ? ORDER BY name ASC`)

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, earnings.RoleBarber); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *SQLRepository) HasOwner(ctx context.Context) (bool, error) {
	query := r.db.Rebind(`SELECT EXISTS(SELECT 1 FROM users WHERE role = ?)`)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, earnings.RoleOwner); err != nil {
		return false, err
	}

	return exists, nil
}

// Haircut repository methods
func (r *SQLRepository) CreateHairCut(ctx context.Context, cut *models.HairCut) error {
	query := r.db.Rebind(`
		INSERT INTO haircuts (id, date_cut, date_recorded, price, quantity, total, divided_total, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	if cut.ID == "" {
		cut.ID = uuid.New().String()
	}
	if cut.DateRecorded.IsZero() {
		cut.DateRecorded = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		cut.ID, cut.DateCut, cut.DateRecorded, cut.Price, cut.Quantity,
		cut.Total, cut.DividedTotal, cut.UserID)

	return err
}

func (r *SQLRepository) ListHairCuts(
	ctx context.Context,
	scope earnings.Scope,
	rng earnings.Range,
) ([]models.HairCut, error) {
	query := `SELECT * FROM haircuts WHERE date_cut >= ? AND date_cut <= ?`
	args := []interface{}{rng.StartDate(), rng.EndDate()}

	if scope.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, scope.UserID)
	}

	query += ` ORDER BY date_cut DESC, date_recorded DESC`

	var cuts []models.HairCut
	if err := r.db.SelectContext(ctx, &cuts, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	return cuts, nil
}

func (r *SQLRepository) SummarizeHairCuts(
	ctx context.Context,
	scope earnings.Scope,
	rng earnings.Range,
) (earnings.CutSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(divided_total), 0)
		FROM haircuts WHERE date_cut >= ? AND date_cut <= ?
	`
	args := []interface{}{rng.StartDate(), rng.EndDate()}

	if scope.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, scope.UserID)
	}

	var summary earnings.CutSummary
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), args...).
		Scan(&summary.Count, &summary.Total, &summary.DividedTotal)
	if err != nil {
		return earnings.CutSummary{}, err
	}

	return summary, nil
}

// Product sale repository methods
func (r *SQLRepository) CreateProductSale(ctx context.Context, sale *models.ProductSale) error {
	query := r.db.Rebind(`
		INSERT INTO product_sales (id, date_sale, date_recorded, product_name, price, quantity, total, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if sale.DateRecorded.IsZero() {
		sale.DateRecorded = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		sale.ID, sale.DateSale, sale.DateRecorded, sale.ProductName,
		sale.Price, sale.Quantity, sale.Total, sale.CreatedBy)

	return err
}

func (r *SQLRepository) GetProductSale(ctx context.Context, id string) (*models.ProductSale, error) {
	query := r.db.Rebind(`SELECT * FROM product_sales WHERE id = ?`)

	var sale models.ProductSale
	err := r.db.GetContext(ctx, &sale, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Sale not found
		}
		return nil, err
	}

	return &sale, nil
}

func (r *SQLRepository) DeleteProductSale(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM product_sales WHERE id = ?`)

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *SQLRepository) ListProductSales(ctx context.Context) ([]models.ProductSale, error) {
	query := `SELECT * FROM product_sales ORDER BY date_sale DESC, date_recorded DESC`

	var sales []models.ProductSale
	if err := r.db.SelectContext(ctx, &sales, query); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *SQLRepository) SummarizeProductSales(
	ctx context.Context,
	rng earnings.Range,
) (earnings.SaleSummary, error) {
	query := r.db.Rebind(`
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM product_sales WHERE date_sale >= ? AND date_sale <= ?
	`)

	var summary earnings.SaleSummary
	err := r.db.QueryRowContext(ctx, query, rng.StartDate(), rng.EndDate()).
		Scan(&summary.Count, &summary.Total)
	if err != nil {
		return earnings.SaleSummary{}, err
	}

	return summary, nil
}

// Expense repository methods
func (r *SQLRepository) CreateExpense(ctx context.Context, expense *models.MonthlyExpense) error {
	query := r.db.Rebind(`
		INSERT INTO monthly_expenses (id, month_year, amount, description, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.MonthYear, expense.Amount, expense.Description,
		expense.CreatedBy, expense.CreatedAt)

	return err
}

func (r *SQLRepository) ListExpenses(ctx context.Context) ([]models.MonthlyExpense, error) {
	query := `SELECT * FROM monthly_expenses ORDER BY month_year DESC, created_at DESC`

	var expenses []models.MonthlyExpense
	if err := r.db.SelectContext(ctx, &expenses, query); err != nil {
		return nil, err
	}

	return expenses, nil
}

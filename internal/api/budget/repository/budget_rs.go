package budgetRepository

import (
	"BudgetBuddy/internal/api/budget"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type BudgetDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Category    sql.NullString  `db:"category"`
	LimitAmount sql.NullFloat64 `db:"limit_amount"`
	MonthYear   sql.NullString  `db:"month_year"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *budgetRepository) CreateBudgets(c context.Context, budgets []entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)

	for _, b := range budgets {
		argsKV := map[string]interface{}{
			"id":           b.ID,
			"user_id":      b.UserID,
			"category":     b.Category,
			"limit_amount": b.LimitAmount,
			"month_year":   b.MonthYear,
			"created_at":   time.Now(),
			"updated_at":   time.Now(),
		}

		query, args, err := sqlx.Named(queryCreateBudget, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to build SQL query for CreateBudgets")
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(c, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Database error when creating budget")
			return err
		}
	}

	return nil
}

func (r *budgetRepository) GetBudgetsByUserID(c context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var budgets []BudgetDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBudgetsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &budgets, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, r.makeBudget(b))
	}

	return result, nil
}

func (r *budgetRepository) GetBudgetsByUserIDAndMonth(c context.Context, userID string, monthYear string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var budgets []BudgetDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"month_year": monthYear,
	}

	query, args, err := sqlx.Named(queryGetBudgetsByUserIDAndMonth, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserIDAndMonth named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &budgets, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserIDAndMonth execution err")
		return nil, err
	}

	result := make([]entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, r.makeBudget(b))
	}

	return result, nil
}

func (r *budgetRepository) GetBudgetByCategoryAndMonth(c context.Context, userID string, category string, monthYear string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var b BudgetDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"category":   category,
		"month_year": monthYear,
	}

	query, args, err := sqlx.Named(queryGetBudgetByCategoryAndMonth, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByCategoryAndMonth named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"category":   category,
				"month_year": monthYear,
			}).Warn("GetBudgetByCategoryAndMonth no rows found")
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByCategoryAndMonth execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(b), nil
}

func (r *budgetRepository) GetBudgetByID(c context.Context, id string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var b BudgetDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBudgetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByID named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBudgetByID no rows found")
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByID execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(b), nil
}

func (r *budgetRepository) UpdateBudget(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           b.ID,
		"category":     b.Category,
		"limit_amount": b.LimitAmount,
		"month_year":   b.MonthYear,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateBudget no rows affected")
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) makeBudget(b BudgetDB) entity.Budget {
	return entity.Budget{
		ID:          b.ID.String,
		UserID:      b.UserID.String,
		Category:    b.Category.String,
		LimitAmount: b.LimitAmount.Float64,
		MonthYear:   b.MonthYear.String,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

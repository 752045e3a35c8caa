package expenseRepository

import (
	"BudgetBuddy/internal/api/expense"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type ExpenseDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Description sql.NullString  `db:"description"`
	Amount      sql.NullFloat64 `db:"amount"`
	Date        time.Time       `db:"date"`
	Category    sql.NullString  `db:"category"`
	ReceiptLink sql.NullString  `db:"receipt_link"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *expenseRepository) CreateExpense(c context.Context, e entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":           e.ID,
		"user_id":      e.UserID,
		"description":  e.Description,
		"amount":       e.Amount,
		"date":         e.Date,
		"category":     e.Category,
		"receipt_link": e.ReceiptLink,
		"created_at":   time.Now(),
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateExpense execution err")
		return err
	}

	return nil
}

func (r *expenseRepository) GetExpenseByID(c context.Context, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var e ExpenseDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetExpenseByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenseByID named query preparation err")
		return entity.Expense{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetExpenseByID no rows found")
			return entity.Expense{}, expense.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenseByID execution err")
		return entity.Expense{}, err
	}

	return r.makeExpense(e), nil
}

// GetExpensesByUserID picks one of eight listing queries depending on which
// of category, start date and end date are present.
func (r *expenseRepository) GetExpensesByUserID(c context.Context, userID string, filter expense.FilterExpensesQuery) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var expenses []ExpenseDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"category":   filter.Category,
		"start_date": filter.StartDate,
		"end_date":   filter.EndDate,
	}

	hasCategory := filter.Category != ""
	hasStart := filter.StartDate != ""
	hasEnd := filter.EndDate != ""

	var listQuery string
	switch {
	case hasCategory && hasStart && hasEnd:
		listQuery = queryGetExpensesByUserIDAndCategoryBetweenDates
	case hasCategory && hasStart:
		listQuery = queryGetExpensesByUserIDAndCategoryFromDate
	case hasCategory && hasEnd:
		listQuery = queryGetExpensesByUserIDAndCategoryUntilDate
	case hasCategory:
		listQuery = queryGetExpensesByUserIDAndCategory
	case hasStart && hasEnd:
		listQuery = queryGetExpensesByUserIDBetweenDates
	case hasStart:
		listQuery = queryGetExpensesByUserIDFromDate
	case hasEnd:
		listQuery = queryGetExpensesByUserIDUntilDate
	default:
		listQuery = queryGetExpensesByUserID
	}

	query, args, err := sqlx.Named(listQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &expenses, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, r.makeExpense(e))
	}

	return result, nil
}

func (r *expenseRepository) UpdateExpense(c context.Context, e entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":           e.ID,
		"description":  e.Description,
		"amount":       e.Amount,
		"date":         e.Date,
		"category":     e.Category,
		"receipt_link": e.ReceiptLink,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateExpense no rows affected")
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) DeleteExpense(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteExpense no rows affected")
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) makeExpense(e ExpenseDB) entity.Expense {
	return entity.Expense{
		ID:          e.ID.String,
		UserID:      e.UserID.String,
		Description: e.Description.String,
		Amount:      e.Amount.Float64,
		Date:        e.Date,
		Category:    e.Category.String,
		ReceiptLink: e.ReceiptLink.String,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

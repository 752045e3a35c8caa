package incomeRepository

import (
	"BudgetBuddy/internal/api/income"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type IncomeDB struct {
	ID        sql.NullString  `db:"id"`
	UserID    sql.NullString  `db:"user_id"`
	Source    sql.NullString  `db:"source"`
	Amount    sql.NullFloat64 `db:"amount"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (r *incomeRepository) CreateIncome(c context.Context, i entity.Income) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":         i.ID,
		"user_id":    i.UserID,
		"source":     i.Source,
		"amount":     i.Amount,
		"date":       i.Date,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateIncome named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateIncome execution err")
		return err
	}

	return nil
}

func (r *incomeRepository) GetIncomeByID(c context.Context, id string) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(c)
	var i IncomeDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetIncomeByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeByID named query preparation err")
		return entity.Income{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&i); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetIncomeByID no rows found")
			return entity.Income{}, income.ErrIncomeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeByID execution err")
		return entity.Income{}, err
	}

	return r.makeIncome(i), nil
}

func (r *incomeRepository) GetIncomesByUserID(c context.Context, userID string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(c)
	var incomes []IncomeDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetIncomesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &incomes, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Income, 0, len(incomes))
	for _, i := range incomes {
		result = append(result, r.makeIncome(i))
	}

	return result, nil
}

func (r *incomeRepository) GetIncomesByUserIDBetweenDates(c context.Context, userID string, startDate string, endDate string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(c)
	var incomes []IncomeDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"start_date": startDate,
		"end_date":   endDate,
	}

	query, args, err := sqlx.Named(queryGetIncomesByUserIDBetweenDates, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserIDBetweenDates named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &incomes, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserIDBetweenDates execution err")
		return nil, err
	}

	result := make([]entity.Income, 0, len(incomes))
	for _, i := range incomes {
		result = append(result, r.makeIncome(i))
	}

	return result, nil
}

func (r *incomeRepository) UpdateIncome(c context.Context, i entity.Income) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":         i.ID,
		"source":     i.Source,
		"amount":     i.Amount,
		"date":       i.Date,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateIncome no rows affected")
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) DeleteIncome(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteIncome no rows affected")
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) makeIncome(i IncomeDB) entity.Income {
	return entity.Income{
		ID:        i.ID.String,
		UserID:    i.UserID.String,
		Source:    i.Source.String,
		Amount:    i.Amount.Float64,
		Date:      i.Date,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

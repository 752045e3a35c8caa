package incomeService

import (
	"BudgetBuddy/internal/api/income"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

func (s *incomeService) AddIncome(ctx context.Context, userID string, req income.CreateIncomeRequest) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid income date")
		return entity.Income{}, income.ErrInvalidDate
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Income{}, err
	}

	i := entity.Income{
		ID:        ULID,
		UserID:    userID,
		Source:    req.Source,
		Amount:    req.Amount,
		Date:      date,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := i.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid income data")
		return entity.Income{}, err
	}

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Income{}, err
	}

	if err := repo.Income.CreateIncome(ctx, i); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create income")
		return entity.Income{}, income.ErrCreateIncome
	}

	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionCreated, entity.EntityTypeIncome, i.ID))

	return i, nil
}

func (s *incomeService) GetIncomesByUser(ctx context.Context, userID string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	incomes, err := repo.Income.GetIncomesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get incomes by user ID")
		return nil, err
	}

	return incomes, nil
}

func (s *incomeService) GetIncomesByUserBetweenDates(ctx context.Context, userID string, startDate string, endDate string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_date": startDate,
		}).Warn("Invalid start date")
		return nil, income.ErrInvalidDate
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"end_date":   endDate,
		}).Warn("Invalid end date")
		return nil, income.ErrInvalidDate
	}

	if start.After(end) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_date": startDate,
			"end_date":   endDate,
		}).Warn("Start date after end date")
		return nil, income.ErrInvalidDateRange
	}

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	incomes, err := repo.Income.GetIncomesByUserIDBetweenDates(ctx, userID, startDate, endDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get incomes between dates")
		return nil, err
	}

	return incomes, nil
}

func (s *incomeService) GetIncomeByID(ctx context.Context, userID string, id string) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Income{}, err
	}

	i, err := repo.Income.GetIncomeByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get income by ID")
		return entity.Income{}, err
	}

	if i.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"income_user_id": i.UserID,
			"user_id":        userID,
		}).Warn("Income does not belong to user")
		return entity.Income{}, income.ErrIncomeNotOwned
	}

	return i, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, userID string, id string, req income.UpdateIncomeRequest) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid income date")
		return entity.Income{}, income.ErrInvalidDate
	}

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Income{}, err
	}

	existing, err := repo.Income.GetIncomeByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing income")
		return entity.Income{}, err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"income_user_id": existing.UserID,
			"user_id":        userID,
		}).Warn("Income does not belong to user")
		return entity.Income{}, income.ErrIncomeNotOwned
	}

	updated := entity.Income{
		ID:        id,
		UserID:    userID,
		Source:    req.Source,
		Amount:    req.Amount,
		Date:      date,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}

	if err := updated.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid income data")
		return entity.Income{}, err
	}

	if err := repo.Income.UpdateIncome(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update income")
		return entity.Income{}, err
	}

	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionUpdated, entity.EntityTypeIncome, updated.ID))

	return updated, nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Income.GetIncomeByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing income")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"income_user_id": existing.UserID,
			"user_id":        userID,
		}).Warn("Income does not belong to user")
		return income.ErrIncomeNotOwned
	}

	if err := repo.Income.DeleteIncome(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete income")
		return err
	}

	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionDeleted, entity.EntityTypeIncome, id))

	return nil
}

package budgetService

import (
	"BudgetBuddy/internal/api/budget"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) AddBudgets(ctx context.Context, userID string, reqs []budget.CreateBudgetRequest) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	budgets := make([]entity.Budget, 0, len(reqs))
	for _, req := range reqs {
		ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return nil, err
		}

		b := entity.Budget{
			ID:          ULID,
			UserID:      userID,
			Category:    req.Category,
			LimitAmount: req.LimitAmount,
			MonthYear:   req.MonthYear,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := b.Validate(); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"category":   req.Category,
				"error":      err.Error(),
			}).Warn("Invalid budget data")
			return nil, err
		}

		budgets = append(budgets, b)
	}

	if err := repo.Budget.CreateBudgets(ctx, budgets); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create budgets")
		return nil, budget.ErrCreateBudgets
	}

	// One batch-level audit event for the whole bulk create, never one per item.
	ids := make([]string, 0, len(budgets))
	for _, b := range budgets {
		ids = append(ids, b.ID)
	}
	details := fmt.Sprintf("%d budgets created. IDs: %s", len(budgets), strings.Join(ids, ","))
	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionCreatedBatch, entity.EntityTypeBudget, details))

	return budgets, nil
}

func (s *budgetService) GetBudgetsByUser(ctx context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	budgets, err := repo.Budget.GetBudgetsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get budgets by user ID")
		return nil, err
	}

	return budgets, nil
}

func (s *budgetService) GetBudgetsByUserAndMonth(ctx context.Context, userID string, monthYear string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonthYear(monthYear) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month_year": monthYear,
		}).Warn("Invalid monthYear")
		return nil, budget.ErrInvalidMonthYear
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	budgets, err := repo.Budget.GetBudgetsByUserIDAndMonth(ctx, userID, monthYear)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"month_year": monthYear,
			"error":      err.Error(),
		}).Error("Failed to get budgets by user and month")
		return nil, err
	}

	return budgets, nil
}

func (s *budgetService) GetBudgetByCategoryAndMonth(ctx context.Context, userID string, category string, monthYear string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, err
	}

	b, err := repo.Budget.GetBudgetByCategoryAndMonth(ctx, userID, category, monthYear)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"category":   category,
			"month_year": monthYear,
			"error":      err.Error(),
		}).Error("Failed to get budget by category and month")
		return entity.Budget{}, err
	}

	return b, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID string, id string, req budget.UpdateBudgetRequest) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, err
	}

	existing, err := repo.Budget.GetBudgetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing budget")
		return entity.Budget{}, err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"budget_user_id": existing.UserID,
			"user_id":        userID,
		}).Warn("Budget does not belong to user")
		return entity.Budget{}, budget.ErrBudgetNotOwned
	}

	updated := entity.Budget{
		ID:          id,
		UserID:      userID,
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		MonthYear:   req.MonthYear,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := updated.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid budget data")
		return entity.Budget{}, err
	}

	if err := repo.Budget.UpdateBudget(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update budget")
		return entity.Budget{}, err
	}

	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionUpdated, entity.EntityTypeBudget, updated.ID))

	return updated, nil
}

// CopyBudgets clones every budget from one month into another. The destination
// must be empty; the check and the batch insert share a transaction so two
// concurrent copies cannot both pass the empty-check.
func (s *budgetService) CopyBudgets(ctx context.Context, userID string, fromMonthYear string, toMonthYear string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonthYear(fromMonthYear) || !entity.IsValidMonthYear(toMonthYear) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"from":       fromMonthYear,
			"to":         toMonthYear,
		}).Warn("Invalid monthYear on copy")
		return nil, budget.ErrInvalidMonthYear
	}

	repo, err := s.budgetRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transactional client")
		return nil, err
	}
	defer repo.Rollback()

	existing, err := repo.Budget.GetBudgetsByUserIDAndMonth(ctx, userID, toMonthYear)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"to":         toMonthYear,
			"error":      err.Error(),
		}).Error("Failed to check destination month")
		return nil, err
	}

	if len(existing) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"to":         toMonthYear,
			"existing":   len(existing),
		}).Warn("Destination month already has budgets")
		return nil, budget.ErrMonthNotEmpty
	}

	previous, err := repo.Budget.GetBudgetsByUserIDAndMonth(ctx, userID, fromMonthYear)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"from":       fromMonthYear,
			"error":      err.Error(),
		}).Error("Failed to get source month budgets")
		return nil, err
	}

	copied := make([]entity.Budget, 0, len(previous))
	for _, b := range previous {
		ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return nil, err
		}

		copied = append(copied, entity.Budget{
			ID:          ULID,
			UserID:      userID,
			Category:    b.Category,
			LimitAmount: b.LimitAmount,
			MonthYear:   toMonthYear,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		})
	}

	if len(copied) > 0 {
		if err := repo.Budget.CreateBudgets(ctx, copied); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to insert copied budgets")
			return nil, budget.ErrCopyBudgets
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit budget copy")
		return nil, budget.ErrCopyBudgets
	}

	return copied, nil
}

package expenseService

import (
	"BudgetBuddy/internal/api/expense"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

func (s *expenseService) AddExpense(ctx context.Context, userID string, req expense.CreateExpenseRequest, receiptFile *multipart.FileHeader) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid expense date")
		return entity.Expense{}, expense.ErrInvalidDate
	}

	var receiptLink string
	if receiptFile != nil {
		if err := s.utils.ValidateImageFile(receiptFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"filename":   receiptFile.Filename,
				"error":      err.Error(),
			}).Warn("Invalid receipt file")
			return entity.Expense{}, expense.ErrInvalidReceiptFile
		}

		uploadedFileURL, err := s.s3.UploadFile(receiptFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload receipt file")
			return entity.Expense{}, expense.ErrFailedUploadReceipt
		}
		receiptLink = uploadedFileURL
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Expense{}, err
	}

	e := entity.Expense{
		ID:          ULID,
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		ReceiptLink: receiptLink,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := e.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return entity.Expense{}, err
	}

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	if err := repo.Expense.CreateExpense(ctx, e); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")

		if receiptLink != "" {
			fileName := fileNameFromLink(receiptLink)
			if deleteErr := s.s3.DeleteFile(fileName); deleteErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      deleteErr.Error(),
				}).Error("Failed to delete receipt file after create failure")
			}
		}

		return entity.Expense{}, expense.ErrCreateExpense
	}

	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionCreated, entity.EntityTypeExpense, e.ID))

	return e, nil
}

func (s *expenseService) GetExpensesByUser(ctx context.Context, userID string, filter expense.FilterExpensesQuery) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := validateDateFilter(filter); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_date": filter.StartDate,
			"end_date":   filter.EndDate,
		}).Warn("Invalid expense date filter")
		return nil, err
	}

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	expenses, err := repo.Expense.GetExpensesByUserID(ctx, userID, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get expenses by user ID")
		return nil, err
	}

	return expenses, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, userID string, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	e, err := repo.Expense.GetExpenseByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get expense by ID")
		return entity.Expense{}, err
	}

	if e.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": e.UserID,
			"user_id":         userID,
		}).Warn("Expense does not belong to user")
		return entity.Expense{}, expense.ErrExpenseNotOwned
	}

	if e.ReceiptLink != "" {
		receiptLink, err := s.s3.PresignUrl(e.ReceiptLink)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to presign receipt link")
			return entity.Expense{}, err
		}
		e.ReceiptLink = receiptLink
	}

	return e, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID string, id string, req expense.UpdateExpenseRequest, receiptFile *multipart.FileHeader) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid expense date")
		return entity.Expense{}, expense.ErrInvalidDate
	}

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	existing, err := repo.Expense.GetExpenseByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing expense")
		return entity.Expense{}, err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": existing.UserID,
			"user_id":         userID,
		}).Warn("Expense does not belong to user")
		return entity.Expense{}, expense.ErrExpenseNotOwned
	}

	receiptLink := existing.ReceiptLink

	if req.DeleteReceipt && receiptLink != "" {
		fileName := fileNameFromLink(receiptLink)
		if err := s.s3.DeleteFile(fileName); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to delete receipt file")
			return entity.Expense{}, err
		}
		receiptLink = ""
	}

	if receiptFile != nil {
		if err := s.utils.ValidateImageFile(receiptFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"filename":   receiptFile.Filename,
				"error":      err.Error(),
			}).Warn("Invalid receipt file")
			return entity.Expense{}, expense.ErrInvalidReceiptFile
		}

		if receiptLink != "" {
			fileName := fileNameFromLink(receiptLink)
			if err := s.s3.DeleteFile(fileName); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to delete previous receipt file")
				return entity.Expense{}, err
			}
		}

		uploadedFileURL, err := s.s3.UploadFile(receiptFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload receipt file")
			return entity.Expense{}, expense.ErrFailedUploadReceipt
		}
		receiptLink = uploadedFileURL
	}

	updated := entity.Expense{
		ID:          id,
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		ReceiptLink: receiptLink,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := updated.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return entity.Expense{}, err
	}

	if err := repo.Expense.UpdateExpense(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update expense")
		return entity.Expense{}, err
	}

	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionUpdated, entity.EntityTypeExpense, updated.ID))

	return updated, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Expense.GetExpenseByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing expense")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": existing.UserID,
			"user_id":         userID,
		}).Warn("Expense does not belong to user")
		return expense.ErrExpenseNotOwned
	}

	if existing.ReceiptLink != "" {
		fileName := fileNameFromLink(existing.ReceiptLink)
		if err := s.s3.DeleteFile(fileName); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to delete receipt file")
		}
	}

	if err := repo.Expense.DeleteExpense(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete expense")
		return err
	}

	s.events.PublishActivity(entity.NewActivityEvent(userID, entity.ActionDeleted, entity.EntityTypeExpense, id))

	return nil
}

// validateDateFilter checks the optional startDate and endDate query values.
// Both must be YYYY-MM-DD and startDate may not come after endDate.
func validateDateFilter(filter expense.FilterExpensesQuery) error {
	var start, end time.Time
	var err error

	if filter.StartDate != "" {
		start, err = time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return expense.ErrInvalidDate
		}
	}

	if filter.EndDate != "" {
		end, err = time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return expense.ErrInvalidDate
		}
	}

	if filter.StartDate != "" && filter.EndDate != "" && start.After(end) {
		return expense.ErrInvalidDateRange
	}

	return nil
}

func fileNameFromLink(link string) string {
	parts := strings.Split(link, "/")
	return parts[len(parts)-1]
}

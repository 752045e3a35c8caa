package activityService

import (
	"BudgetBuddy/internal/api/activity"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Run consumes activity events off the queue until ctx is cancelled. Failed
// stores are redelivered by the broker.
func (s *activityService) Run(ctx context.Context) error {
	return s.events.ConsumeActivity(ctx, func(event entity.ActivityEvent) error {
		return s.StoreEvent(ctx, event)
	})
}

func (s *activityService) StoreEvent(ctx context.Context, event entity.ActivityEvent) error {
	requestID := contextPkg.GetRequestID(ctx)

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	repo, err := s.activityRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	l := entity.ActivityLog{
		ID:         ULID,
		UserID:     event.UserID,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Timestamp:  event.Timestamp,
	}

	if err := repo.Activity.CreateActivityLog(ctx, l); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    event.UserID,
			"action":     event.Action,
			"error":      err.Error(),
		}).Error("Failed to store activity log")
		return activity.ErrStoreActivityLog
	}

	return nil
}

func (s *activityService) GetActivityLogs(ctx context.Context) ([]entity.ActivityLog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.activityRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	logs, err := repo.Activity.GetActivityLogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get activity logs")
		return nil, err
	}

	return logs, nil
}

func (s *activityService) GetActivityLogsByUser(ctx context.Context, userID string) ([]entity.ActivityLog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.activityRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	logs, err := repo.Activity.GetActivityLogsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get activity logs by user")
		return nil, err
	}

	return logs, nil
}

func (s *activityService) GetActivityLogsByEntityType(ctx context.Context, entityType string) ([]entity.ActivityLog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.activityRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	logs, err := repo.Activity.GetActivityLogsByEntityType(ctx, entityType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"entity_type": entityType,
			"error":       err.Error(),
		}).Error("Failed to get activity logs by entity type")
		return nil, err
	}

	return logs, nil
}

func (s *activityService) GetActivityLogsBetween(ctx context.Context, from string, to string) ([]entity.ActivityLog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	fromTime, err := time.Parse(time.RFC3339, from)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"from":       from,
		}).Warn("Invalid from timestamp")
		return nil, activity.ErrInvalidTimeRange
	}

	toTime, err := time.Parse(time.RFC3339, to)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"to":         to,
		}).Warn("Invalid to timestamp")
		return nil, activity.ErrInvalidTimeRange
	}

	if fromTime.After(toTime) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"from":       from,
			"to":         to,
		}).Warn("Range start after range end")
		return nil, activity.ErrInvalidTimeRange
	}

	repo, err := s.activityRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	logs, err := repo.Activity.GetActivityLogsBetween(ctx, fromTime, toTime)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get activity logs in range")
		return nil, err
	}

	return logs, nil
}

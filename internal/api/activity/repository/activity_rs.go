package activityRepository

import (
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type ActivityLogDB struct {
	ID         sql.NullString `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	Action     sql.NullString `db:"action"`
	EntityType sql.NullString `db:"entity_type"`
	EntityID   sql.NullString `db:"entity_id"`
	Timestamp  time.Time      `db:"timestamp"`
}

func (r *activityRepository) CreateActivityLog(c context.Context, l entity.ActivityLog) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":          l.ID,
		"user_id":     l.UserID,
		"action":      l.Action,
		"entity_type": l.EntityType,
		"entity_id":   l.EntityID,
		"timestamp":   l.Timestamp,
	}

	query, args, err := sqlx.Named(queryCreateActivityLog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateActivityLog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateActivityLog execution err")
		return err
	}

	return nil
}

func (r *activityRepository) GetActivityLogs(c context.Context) ([]entity.ActivityLog, error) {
	return r.selectLogs(c, queryGetActivityLogs, map[string]interface{}{}, "GetActivityLogs")
}

func (r *activityRepository) GetActivityLogsByUserID(c context.Context, userID string) ([]entity.ActivityLog, error) {
	return r.selectLogs(c, queryGetActivityLogsByUserID, map[string]interface{}{
		"user_id": userID,
	}, "GetActivityLogsByUserID")
}

func (r *activityRepository) GetActivityLogsByEntityType(c context.Context, entityType string) ([]entity.ActivityLog, error) {
	return r.selectLogs(c, queryGetActivityLogsByEntityType, map[string]interface{}{
		"entity_type": entityType,
	}, "GetActivityLogsByEntityType")
}

func (r *activityRepository) GetActivityLogsBetween(c context.Context, from time.Time, to time.Time) ([]entity.ActivityLog, error) {
	return r.selectLogs(c, queryGetActivityLogsBetween, map[string]interface{}{
		"from": from,
		"to":   to,
	}, "GetActivityLogsBetween")
}

func (r *activityRepository) selectLogs(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.ActivityLog, error) {
	requestID := contextPkg.GetRequestID(c)
	var logs []ActivityLogDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Activity log named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &logs, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Activity log query execution err")
		return nil, err
	}

	result := make([]entity.ActivityLog, 0, len(logs))
	for _, l := range logs {
		result = append(result, r.makeActivityLog(l))
	}

	return result, nil
}

func (r *activityRepository) makeActivityLog(l ActivityLogDB) entity.ActivityLog {
	return entity.ActivityLog{
		ID:         l.ID.String,
		UserID:     l.UserID.String,
		Action:     l.Action.String,
		EntityType: l.EntityType.String,
		EntityID:   l.EntityID.String,
		Timestamp:  l.Timestamp,
	}
}

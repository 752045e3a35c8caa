package entity

import "time"

type ActivityAction string

const (
	ActionCreated      ActivityAction = "CREATED"
	ActionCreatedBatch ActivityAction = "CREATED_BATCH"
	ActionUpdated      ActivityAction = "UPDATED"
	ActionDeleted      ActivityAction = "DELETED"
)

type ActivityEntityType string

const (
	EntityTypeExpense ActivityEntityType = "EXPENSE"
	EntityTypeIncome  ActivityEntityType = "INCOME"
	EntityTypeBudget  ActivityEntityType = "BUDGET"
)

// ActivityEvent is the audit message published to the activity-log queue.
// EntityID carries either the affected record id or free-text detail for
// batch actions. Immutable once emitted.
type ActivityEvent struct {
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewActivityEvent(userID string, action ActivityAction, entityType ActivityEntityType, entityID string) ActivityEvent {
	return ActivityEvent{
		UserID:     userID,
		Action:     string(action),
		EntityType: string(entityType),
		EntityID:   entityID,
		Timestamp:  time.Now().UTC(),
	}
}

// ActivityLog is the durable form of an ActivityEvent, stored verbatim by the
// activity domain.
type ActivityLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Timestamp  time.Time `json:"timestamp"`
}

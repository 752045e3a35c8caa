package activityRepository

const (
	queryCreateActivityLog = `
		INSERT INTO activity_logs (id, user_id, action, entity_type, entity_id, timestamp)
		VALUES (:id, :user_id, :action, :entity_type, :entity_id, :timestamp)
	`

	queryGetActivityLogs = `
		SELECT id, user_id, action, entity_type, entity_id, timestamp
		FROM activity_logs
		ORDER BY timestamp DESC
	`

	queryGetActivityLogsByUserID = `
		SELECT id, user_id, action, entity_type, entity_id, timestamp
		FROM activity_logs
		WHERE user_id = :user_id
		ORDER BY timestamp DESC
	`

	queryGetActivityLogsByEntityType = `
		SELECT id, user_id, action, entity_type, entity_id, timestamp
		FROM activity_logs
		WHERE entity_type = :entity_type
		ORDER BY timestamp DESC
	`

	queryGetActivityLogsBetween = `
		SELECT id, user_id, action, entity_type, entity_id, timestamp
		FROM activity_logs
		WHERE timestamp >= :from AND timestamp <= :to
		ORDER BY timestamp DESC
	`
)

package models

// ActivityEvent represents a user action published to the activity stream.
type ActivityEvent struct {
	EventID    string `json:"event_id" bson:"event_id"`       // EventID is a unique identifier for the event.
	Timestamp  int64  `json:"timestamp" bson:"timestamp"`     // Timestamp is the Unix timestamp (in seconds) when the action occurred.
	UserID     string `json:"user_id" bson:"user_id"`         // UserID is the identifier of the user who performed the action.
	Action     string `json:"action" bson:"action"`           // Action describes what happened, e.g. "maintenance_completed" or "task_assigned".
	Resource   string `json:"resource" bson:"resource"`       // Resource names the entity type the action touched.
	ResourceID string `json:"resource_id" bson:"resource_id"` // ResourceID is the identifier of the touched entity.
}

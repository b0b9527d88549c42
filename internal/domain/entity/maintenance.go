package entity

// SweepResult reports how many documents a cleanup sweep removed.
type SweepResult struct {
	DeletedEvents        int64 `json:"deletedEvents"`
	DeletedNotifications int64 `json:"deletedNotifications"`
}

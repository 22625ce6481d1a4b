package models

// Trend describes the direction of the mood when the most recent seven
// check-ins are compared with the seven before them.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Stats is the aggregate view over a user's check-in history.
// LatestMood and Trend are nil when there is not enough history to compute them.
type Stats struct {
	TotalCheckIns int     `json:"total_checkins"`
	AverageMood   float64 `json:"average_mood"`
	LatestMood    *int    `json:"latest_mood"`
	Trend         *Trend  `json:"trend"`
}

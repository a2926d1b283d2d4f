package services

import "log"

// WeeklyGoalResult is what gets pushed to the user when their weekly goal is
// recomputed.
type WeeklyGoalResult struct {
	TotalCO2     float64 `json:"totalCO2"`
	WeeklyTarget float64 `json:"weeklyTarget"`
	Remaining    float64 `json:"remaining"`
	Progress     float64 `json:"progress"`
	Tip          string  `json:"tip"`
}

// NotificationSink receives weekly-goal results for delivery. Delivery is
// best effort; callers never wait on it or see its failures.
type NotificationSink interface {
	Notify(userID uint, result WeeklyGoalResult) error
}

// FanoutSink delivers to every configured sink, logging failures and moving
// on.
type FanoutSink []NotificationSink

func (f FanoutSink) Notify(userID uint, result WeeklyGoalResult) error {
	for _, sink := range f {
		if err := sink.Notify(userID, result); err != nil {
			log.Printf("notify user %d: %v", userID, err)
		}
	}
	return nil
}

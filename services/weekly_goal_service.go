package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Tshegofatso85/Footprint-Logger/utils"
)

// DefaultWeeklyTarget is the weekly CO2 budget in kg.
const DefaultWeeklyTarget = 10.0

// WeeklyGoalService sums the current week's emissions against the target and
// pushes the outcome to the notification sink.
//
// The week starts at the most recent Sunday, UTC midnight. The day-bucketing
// convention is UTC everywhere else too, so the goal window lines up with the
// stored day keys.
type WeeklyGoalService struct {
	store  ActivityStore
	sink   NotificationSink
	target float64
	now    func() time.Time
}

func NewWeeklyGoalService(store ActivityStore, sink NotificationSink) *WeeklyGoalService {
	return &WeeklyGoalService{store: store, sink: sink, target: DefaultWeeklyTarget, now: time.Now}
}

// Analyse computes the weekly-goal progress and hands the result to the sink
// without waiting for delivery.
func (s *WeeklyGoalService) Analyse(ctx context.Context, userID uint) (*WeeklyGoalResult, error) {
	weekStart := utils.StartOfWeekUTC(s.now())

	logs, err := s.store.FindLogs(ctx, userID, DateRange{From: &weekStart})
	if err != nil {
		return nil, err
	}

	var total float64
	for _, log := range logs {
		for _, e := range log.Entries {
			total += e.TotalCO2
		}
	}

	remaining := s.target - total
	if remaining < 0 {
		remaining = 0
	}
	progress := (total / s.target) * 100
	if progress > 100 {
		progress = 100
	}

	var tip string
	if remaining > 0 {
		tip = fmt.Sprintf("You can still emit %.1fkg CO₂ this week. Try walking or cycling instead of driving 🚶‍♀️🚴", remaining)
	} else {
		tip = "Amazing! You’ve already reached your weekly CO₂ goal 🎉"
	}

	result := &WeeklyGoalResult{
		TotalCO2:     round2(total),
		WeeklyTarget: s.target,
		Remaining:    round2(remaining),
		Progress:     round2(progress),
		Tip:          tip,
	}

	if s.sink != nil {
		go func(r WeeklyGoalResult) {
			_ = s.sink.Notify(userID, r)
		}(*result)
	}
	return result, nil
}

package services

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/Tshegofatso85/Footprint-Logger/models"
	"github.com/Tshegofatso85/Footprint-Logger/utils"
)

// ActivityInput is one activity as submitted by the client. Quantity and
// CO2Value come in as json.Number so that non-numeric payloads surface as a
// ValidationError instead of silently becoming zero.
type ActivityInput struct {
	Name     string      `json:"name" binding:"required"`
	Activity string      `json:"activity"`
	Category string      `json:"category" binding:"required,oneof=transport food energy waste"`
	Unit     string      `json:"unit"`
	Quantity json.Number `json:"quantity"`
	CO2Value json.Number `json:"co2Value"`
}

type ActivityService struct {
	store ActivityStore
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// LogActivity appends one entry to the user's log for the given day, creating
// the day log when it is the first entry. The entry's total emission is fixed
// here as quantity * factor and never recomputed.
func (s *ActivityService) LogActivity(ctx context.Context, userID uint, day time.Time, in ActivityInput) (*models.ActivityLog, error) {
	quantity, err := parseAmount("quantity", in.Quantity)
	if err != nil {
		return nil, err
	}
	factor, err := parseAmount("co2Value", in.CO2Value)
	if err != nil {
		return nil, err
	}

	day = utils.StartOfDayUTC(day)

	log, err := s.store.FindLog(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = &models.ActivityLog{UserID: userID, Date: day}
	}

	source := in.Activity
	if source == "" {
		source = in.Name
	}
	log.Entries = append(log.Entries, models.ActivityEntry{
		Name:           in.Name,
		SourceActivity: source,
		Category:       in.Category,
		Unit:           in.Unit,
		Quantity:       quantity,
		CO2Factor:      factor,
		TotalCO2:       quantity * factor,
	})

	if err := s.store.UpsertLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// DeleteActivity removes one entry from one of the user's logs. When the last
// entry goes, the whole day log goes with it; the returned bool reports that.
func (s *ActivityService) DeleteActivity(ctx context.Context, userID, logID, entryID uint) (bool, error) {
	log, err := s.store.FindLogByID(ctx, logID)
	if err != nil {
		return false, err
	}
	if log == nil || log.UserID != userID {
		return false, ErrNotFound
	}

	found := false
	for _, e := range log.Entries {
		if e.ID == entryID {
			found = true
			break
		}
	}
	if !found {
		return false, ErrNotFound
	}

	if len(log.Entries) == 1 {
		if err := s.store.DeleteLog(ctx, logID); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.store.DeleteEntry(ctx, logID, entryID); err != nil {
		return false, err
	}
	return false, nil
}

// ListLogs returns the user's day logs, newest first, optionally bounded.
func (s *ActivityService) ListLogs(ctx context.Context, userID uint, r DateRange) ([]models.ActivityLog, error) {
	logs, err := s.store.FindLogs(ctx, userID, r)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return logs, nil
}

// FlatActivity is an entry flattened out of its day log for feed views.
type FlatActivity struct {
	LogID          uint      `json:"logId"`
	EntryID        uint      `json:"activityId"`
	Date           time.Time `json:"date"`
	Name           string    `json:"name"`
	SourceActivity string    `json:"activity"`
	Category       string    `json:"category"`
	Unit           string    `json:"unit"`
	Quantity       float64   `json:"quantity"`
	CO2Factor      float64   `json:"co2Value"`
	TotalCO2       float64   `json:"totalCO2"`
}

type ActivityFeed struct {
	Activities []FlatActivity `json:"activities"`
	Total      int            `json:"total"`
	TotalCO2   float64        `json:"totalCO2"`
}

// AllActivities flattens every entry the user ever logged, optionally
// filtered by category, with the grand emission total.
func (s *ActivityService) AllActivities(ctx context.Context, userID uint, category string) (*ActivityFeed, error) {
	logs, err := s.store.FindLogs(ctx, userID, DateRange{})
	if err != nil {
		return nil, err
	}

	feed := &ActivityFeed{Activities: []FlatActivity{}}
	for _, log := range logs {
		for _, e := range log.Entries {
			if category != "" && e.Category != category {
				continue
			}
			feed.Activities = append(feed.Activities, FlatActivity{
				LogID:          log.ID,
				EntryID:        e.ID,
				Date:           log.Date,
				Name:           e.Name,
				SourceActivity: e.SourceActivity,
				Category:       e.Category,
				Unit:           e.Unit,
				Quantity:       e.Quantity,
				CO2Factor:      e.CO2Factor,
				TotalCO2:       e.TotalCO2,
			})
			feed.TotalCO2 += e.TotalCO2
		}
	}
	feed.Total = len(feed.Activities)
	feed.TotalCO2 = round2(feed.TotalCO2)
	return feed, nil
}

func parseAmount(field string, n json.Number) (float64, error) {
	if n.String() == "" {
		return 0, &ValidationError{Field: field, Reason: "required"}
	}
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Reason: "must be a number"}
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return v, nil
}

package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Tshegofatso85/Footprint-Logger/utils"
)

// SummaryService is the read side of the tracker: every method is a pure
// reduction over store contents, so sparse or missing data always comes back
// as zeros, never as an error.
type SummaryService struct {
	store ActivityStore
	users UserDirectory
	now   func() time.Time
}

func NewSummaryService(store ActivityStore, users UserDirectory) *SummaryService {
	return &SummaryService{store: store, users: users, now: time.Now}
}

type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// DailyTotal sums the emissions of one user-day. No log means zero.
func (s *SummaryService) DailyTotal(ctx context.Context, userID uint, day time.Time) (*DayTotal, error) {
	day = utils.StartOfDayUTC(day)
	log, err := s.store.FindLog(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	var total float64
	if log != nil {
		for _, e := range log.Entries {
			total += e.TotalCO2
		}
	}
	return &DayTotal{Date: utils.FormatDay(day), Total: round2(total)}, nil
}

type WeeklySummary struct {
	Summary []DayTotal `json:"summary"`
	Streak  int        `json:"streak"`
}

// WeeklySummary covers the 7 consecutive UTC days ending at endDay, zero
// filled so the result is always exactly 7 contiguous entries. The streak is
// the run of days with a positive total counted backward from endDay and
// halted at the first zero day.
func (s *SummaryService) WeeklySummary(ctx context.Context, userID uint, endDay time.Time) (*WeeklySummary, error) {
	end := utils.StartOfDayUTC(endDay)
	start := end.AddDate(0, 0, -6)

	logs, err := s.store.FindLogs(ctx, userID, DateRange{From: &start, To: &end})
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(logs))
	for _, log := range logs {
		var t float64
		for _, e := range log.Entries {
			t += e.TotalCO2
		}
		totals[utils.FormatDay(log.Date)] += t
	}

	out := &WeeklySummary{Summary: make([]DayTotal, 0, 7)}
	for i := 0; i < 7; i++ {
		key := utils.FormatDay(start.AddDate(0, 0, i))
		out.Summary = append(out.Summary, DayTotal{Date: key, Total: round2(totals[key])})
	}

	for i := 6; i >= 0; i-- {
		if out.Summary[i].Total > 0 {
			out.Streak++
		} else {
			break
		}
	}
	return out, nil
}

type CommunityAverage struct {
	AvgPerUser float64 `json:"avgPerUser"`
	TotalAll   float64 `json:"totalAll"`
	UsersCount int     `json:"usersCount"`
}

// CommunityAverage is the mean of per-user totals among users who logged at
// least one activity in the range. Inactive users stay out of the
// denominator.
func (s *SummaryService) CommunityAverage(ctx context.Context, r DateRange) (*CommunityAverage, error) {
	logs, err := s.store.FindAllLogs(ctx, r)
	if err != nil {
		return nil, err
	}

	perUser := make(map[uint]float64)
	for _, log := range logs {
		var t float64
		for _, e := range log.Entries {
			t += e.TotalCO2
		}
		perUser[log.UserID] += t
	}

	out := &CommunityAverage{UsersCount: len(perUser)}
	for _, t := range perUser {
		out.TotalAll += t
	}
	if out.UsersCount > 0 {
		out.AvgPerUser = round2(out.TotalAll / float64(out.UsersCount))
	}
	out.TotalAll = round2(out.TotalAll)
	return out, nil
}

type LeaderboardEntry struct {
	UserID   uint    `json:"userId"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	AvgDaily float64 `json:"avgDaily"`
	Total    float64 `json:"total"`
}

const leaderboardSize = 10

// Leaderboard ranks users by mean daily emission over the trailing window,
// lowest footprint first. Only days a user actually logged count toward their
// mean; ties keep their aggregation order.
func (s *SummaryService) Leaderboard(ctx context.Context, windowDays int) ([]LeaderboardEntry, error) {
	end := utils.StartOfDayUTC(s.now())
	start := end.AddDate(0, 0, -(windowDays - 1))

	logs, err := s.store.FindAllLogs(ctx, DateRange{From: &start, To: &end})
	if err != nil {
		return nil, err
	}

	type userAgg struct {
		total float64
		days  int
	}
	agg := make(map[uint]*userAgg)
	var order []uint
	for _, log := range logs {
		var dayTotal float64
		for _, e := range log.Entries {
			dayTotal += e.TotalCO2
		}
		a := agg[log.UserID]
		if a == nil {
			a = &userAgg{}
			agg[log.UserID] = a
			order = append(order, log.UserID)
		}
		a.total += dayTotal
		a.days++
	}

	board := make([]LeaderboardEntry, 0, len(order))
	for _, uid := range order {
		a := agg[uid]
		board = append(board, LeaderboardEntry{
			UserID:   uid,
			AvgDaily: a.total / float64(a.days),
			Total:    a.total,
		})
	}
	sort.SliceStable(board, func(i, j int) bool { return board[i].AvgDaily < board[j].AvgDaily })
	if len(board) > leaderboardSize {
		board = board[:leaderboardSize]
	}

	ids := make([]uint, len(board))
	for i, b := range board {
		ids[i] = b.UserID
	}
	users, err := s.users.FindUsersByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]int, len(users))
	for i, u := range users {
		byID[u.ID] = i
	}

	for i := range board {
		if j, ok := byID[board[i].UserID]; ok {
			board[i].Name = users[j].DisplayName()
			board[i].Email = users[j].Email
		}
		board[i].AvgDaily = round2(board[i].AvgDaily)
		board[i].Total = round2(board[i].Total)
	}
	return board, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

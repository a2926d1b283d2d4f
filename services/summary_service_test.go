package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Tshegofatso85/Footprint-Logger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seed stores one log for (user, date) with one entry per given emission.
func seed(t *testing.T, store *fakeStore, userID uint, date string, emissions ...float64) {
	t.Helper()
	log := &models.ActivityLog{UserID: userID, Date: day(date)}
	for _, e := range emissions {
		log.Entries = append(log.Entries, models.ActivityEntry{
			Name:      "seed",
			Category:  models.CategoryTransport,
			Quantity:  e,
			CO2Factor: 1,
			TotalCO2:  e,
		})
	}
	require.NoError(t, store.UpsertLog(context.Background(), log))
}

func TestDailyTotal_MissingLogIsZero(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)

	out, err := svc.DailyTotal(context.Background(), 1, day("2025-03-03"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Total)
	assert.Equal(t, "2025-03-03", out.Date)
}

func TestDailyTotal_SumsEntries(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)
	seed(t, store, 1, "2025-03-03", 1.25, 2.5)

	out, err := svc.DailyTotal(context.Background(), 1, day("2025-03-03"))
	require.NoError(t, err)
	assert.Equal(t, 3.75, out.Total)
}

func TestWeeklySummary_AlwaysSevenContiguousDays(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)
	seed(t, store, 1, "2025-03-05", 2) // single sparse day

	out, err := svc.WeeklySummary(context.Background(), 1, day("2025-03-09"))
	require.NoError(t, err)
	require.Len(t, out.Summary, 7)

	for i, dt := range out.Summary {
		want := day("2025-03-03").AddDate(0, 0, i).Format("2006-01-02")
		assert.Equal(t, want, dt.Date, "days must be contiguous with no gaps")
	}
	assert.Equal(t, 2.0, out.Summary[2].Total)
	assert.Equal(t, 0.0, out.Summary[0].Total)
}

func TestWeeklySummary_StreakStopsAtFirstZeroDay(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)

	// Mon=2, Tue=0 (no log), Wed=3, Thu=1, Fri=1, Sat=0 (no log), Sun=2
	seed(t, store, 1, "2025-03-03", 2)
	seed(t, store, 1, "2025-03-05", 3)
	seed(t, store, 1, "2025-03-06", 1)
	seed(t, store, 1, "2025-03-07", 1)
	seed(t, store, 1, "2025-03-09", 2)

	out, err := svc.WeeklySummary(context.Background(), 1, day("2025-03-09"))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Streak, "Saturday's zero halts the streak after Sunday")
}

func TestWeeklySummary_ZeroEndDayMeansZeroStreak(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)
	seed(t, store, 1, "2025-03-08", 5)

	out, err := svc.WeeklySummary(context.Background(), 1, day("2025-03-09"))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Streak)
}

func TestWeeklySummary_Idempotent(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)
	seed(t, store, 1, "2025-03-07", 1.5)
	seed(t, store, 1, "2025-03-09", 2)

	first, err := svc.WeeklySummary(context.Background(), 1, day("2025-03-09"))
	require.NoError(t, err)
	second, err := svc.WeeklySummary(context.Background(), 1, day("2025-03-09"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCommunityAverage_OnlyActiveUsersCount(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)

	seed(t, store, 1, "2025-03-03", 4, 6) // user X: 10
	seed(t, store, 3, "2025-03-04", 4)    // user Z: 4
	// user 2 logged nothing in range

	out, err := svc.CommunityAverage(context.Background(), DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 7.0, out.AvgPerUser)
	assert.Equal(t, 14.0, out.TotalAll)
	assert.Equal(t, 2, out.UsersCount)
}

func TestCommunityAverage_EmptyRange(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)

	out, err := svc.CommunityAverage(context.Background(), DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.AvgPerUser)
	assert.Equal(t, 0, out.UsersCount)
}

func TestCommunityAverage_RespectsRange(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)

	seed(t, store, 1, "2025-03-01", 100) // outside
	seed(t, store, 1, "2025-03-05", 2)
	seed(t, store, 2, "2025-03-06", 4)

	from, to := day("2025-03-03"), day("2025-03-09")
	out, err := svc.CommunityAverage(context.Background(), DateRange{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 3.0, out.AvgPerUser)
	assert.Equal(t, 6.0, out.TotalAll)
	assert.Equal(t, 2, out.UsersCount)
}

func TestLeaderboard_AscendingMeanOverActiveDays(t *testing.T) {
	store := newFakeStore()
	store.addUser(models.User{Model: gormModel(1), Name: "Alice", Email: "alice@example.com"})
	store.addUser(models.User{Model: gormModel(2), Email: "bob@example.com"})

	svc := NewSummaryService(store, store)
	svc.now = func() time.Time { return day("2025-03-09") }

	// A: active 2 days, totals 4 and 2 -> mean 3. B: 1 day, total 1 -> mean 1.
	seed(t, store, 1, "2025-03-07", 4)
	seed(t, store, 1, "2025-03-08", 2)
	seed(t, store, 2, "2025-03-08", 1)

	board, err := svc.Leaderboard(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, board, 2)

	assert.Equal(t, uint(2), board[0].UserID, "lowest mean ranks first")
	assert.Equal(t, 1.0, board[0].AvgDaily)
	assert.Equal(t, "bob@example.com", board[0].Name, "name falls back to email")

	assert.Equal(t, uint(1), board[1].UserID)
	assert.Equal(t, 3.0, board[1].AvgDaily, "mean divides by active days, not window days")
	assert.Equal(t, 6.0, board[1].Total)
	assert.Equal(t, "Alice", board[1].Name)
}

func TestLeaderboard_TopTenOnly(t *testing.T) {
	store := newFakeStore()
	svc := NewSummaryService(store, store)
	svc.now = func() time.Time { return day("2025-03-09") }

	for i := 1; i <= 12; i++ {
		store.addUser(models.User{Model: gormModel(uint(i)), Email: fmt.Sprintf("u%d@example.com", i)})
		seed(t, store, uint(i), "2025-03-09", float64(i))
	}

	board, err := svc.Leaderboard(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, board, 10)
	assert.Equal(t, 1.0, board[0].AvgDaily)
	assert.Equal(t, 10.0, board[9].AvgDaily)
}

func TestLeaderboard_IgnoresDaysOutsideWindow(t *testing.T) {
	store := newFakeStore()
	store.addUser(models.User{Model: gormModel(1), Email: "a@example.com"})
	svc := NewSummaryService(store, store)
	svc.now = func() time.Time { return day("2025-03-09") }

	seed(t, store, 1, "2025-03-01", 50) // before the 7-day window
	seed(t, store, 1, "2025-03-09", 2)

	board, err := svc.Leaderboard(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, 2.0, board[0].AvgDaily)
}

package services

import (
	"context"
	"sort"
	"time"

	"github.com/Tshegofatso85/Footprint-Logger/models"

	"gorm.io/gorm"
)

func gormModel(id uint) gorm.Model { return gorm.Model{ID: id} }

// fakeStore is an in-memory ActivityStore + UserDirectory for service tests.
type fakeStore struct {
	nextLogID   uint
	nextEntryID uint
	logs        map[uint]*models.ActivityLog
	users       map[uint]models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		logs:  make(map[uint]*models.ActivityLog),
		users: make(map[uint]models.User),
	}
}

func (f *fakeStore) addUser(u models.User) {
	f.users[u.ID] = u
}

func (f *fakeStore) FindLog(_ context.Context, userID uint, day time.Time) (*models.ActivityLog, error) {
	for _, l := range f.logs {
		if l.UserID == userID && l.Date.Equal(day) {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindLogByID(_ context.Context, logID uint) (*models.ActivityLog, error) {
	if l, ok := f.logs[logID]; ok {
		return l, nil
	}
	return nil, nil
}

func (f *fakeStore) FindLogs(_ context.Context, userID uint, r DateRange) ([]models.ActivityLog, error) {
	var out []models.ActivityLog
	for _, l := range f.sorted() {
		if l.UserID == userID && inRange(l.Date, r) {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) FindAllLogs(_ context.Context, r DateRange) ([]models.ActivityLog, error) {
	var out []models.ActivityLog
	for _, l := range f.sorted() {
		if inRange(l.Date, r) {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertLog(_ context.Context, log *models.ActivityLog) error {
	if log.ID == 0 {
		f.nextLogID++
		log.ID = f.nextLogID
	}
	for i := range log.Entries {
		if log.Entries[i].ID == 0 {
			f.nextEntryID++
			log.Entries[i].ID = f.nextEntryID
			log.Entries[i].LogID = log.ID
		}
	}
	f.logs[log.ID] = log
	return nil
}

func (f *fakeStore) DeleteEntry(_ context.Context, logID, entryID uint) error {
	l, ok := f.logs[logID]
	if !ok {
		return ErrNotFound
	}
	for i, e := range l.Entries {
		if e.ID == entryID {
			l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeStore) DeleteLog(_ context.Context, logID uint) error {
	delete(f.logs, logID)
	return nil
}

func (f *fakeStore) FindUsersByID(_ context.Context, ids []uint) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// sorted returns logs in insertion (ID) order so aggregation order is stable.
func (f *fakeStore) sorted() []*models.ActivityLog {
	out := make([]*models.ActivityLog, 0, len(f.logs))
	for _, l := range f.logs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func inRange(day time.Time, r DateRange) bool {
	if r.From != nil && day.Before(*r.From) {
		return false
	}
	if r.To != nil && day.After(*r.To) {
		return false
	}
	return true
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

type notification struct {
	userID uint
	result WeeklyGoalResult
}

// recordingSink captures notifications on a channel so tests can wait for the
// fire-and-forget delivery.
type recordingSink struct {
	ch chan notification
}

func newRecordingSink() *recordingSink {
	return &recordingSink{ch: make(chan notification, 8)}
}

func (s *recordingSink) Notify(userID uint, result WeeklyGoalResult) error {
	s.ch <- notification{userID: userID, result: result}
	return nil
}

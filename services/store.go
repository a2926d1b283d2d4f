package services

import (
	"context"
	"errors"
	"time"

	"github.com/Tshegofatso85/Footprint-Logger/models"

	"gorm.io/gorm"
)

// DateRange is an optional inclusive [From, To] window over normalized days.
// A nil bound leaves that side open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ActivityStore is the persistence contract the aggregation engine reduces
// over. Lookups that miss return (nil, nil) rather than an error; absence of
// data is a valid zero state.
type ActivityStore interface {
	FindLog(ctx context.Context, userID uint, day time.Time) (*models.ActivityLog, error)
	FindLogByID(ctx context.Context, logID uint) (*models.ActivityLog, error)
	FindLogs(ctx context.Context, userID uint, r DateRange) ([]models.ActivityLog, error)
	FindAllLogs(ctx context.Context, r DateRange) ([]models.ActivityLog, error)
	UpsertLog(ctx context.Context, log *models.ActivityLog) error
	DeleteEntry(ctx context.Context, logID, entryID uint) error
	DeleteLog(ctx context.Context, logID uint) error
}

// UserDirectory resolves user identities for display (leaderboard join).
type UserDirectory interface {
	FindUsersByID(ctx context.Context, ids []uint) ([]models.User, error)
}

// GormStore backs ActivityStore and UserDirectory with Postgres via GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) FindLog(ctx context.Context, userID uint, day time.Time) (*models.ActivityLog, error) {
	var log models.ActivityLog
	err := s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ? AND date = ?", userID, day).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &log, nil
}

func (s *GormStore) FindLogByID(ctx context.Context, logID uint) (*models.ActivityLog, error) {
	var log models.ActivityLog
	err := s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&log, logID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &log, nil
}

func (s *GormStore) FindLogs(ctx context.Context, userID uint, r DateRange) ([]models.ActivityLog, error) {
	q := s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID)
	q = applyRange(q, r)

	var logs []models.ActivityLog
	if err := q.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}

func (s *GormStore) FindAllLogs(ctx context.Context, r DateRange) ([]models.ActivityLog, error) {
	q := s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
	q = applyRange(q, r)

	var logs []models.ActivityLog
	if err := q.Order("id ASC").Find(&logs).Error; err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}

func (s *GormStore) UpsertLog(ctx context.Context, log *models.ActivityLog) error {
	if err := s.db.WithContext(ctx).Save(log).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *GormStore) DeleteEntry(ctx context.Context, logID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("log_id = ?", logID).
		Delete(&models.ActivityEntry{}, entryID)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteLog(ctx context.Context, logID uint) error {
	log := models.ActivityLog{Model: gorm.Model{ID: logID}}
	if err := s.db.WithContext(ctx).Select("Entries").Delete(&log).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *GormStore) FindUsersByID(ctx context.Context, ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func applyRange(q *gorm.DB, r DateRange) *gorm.DB {
	if r.From != nil {
		q = q.Where("date >= ?", *r.From)
	}
	if r.To != nil {
		q = q.Where("date <= ?", *r.To)
	}
	return q
}

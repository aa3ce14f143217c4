package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type ScheduleCleanupRepository interface {
	RemoveEndedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// SchedulesCleaner prunes interview rows that ended more than the retention
// window ago, keeping the agenda table from growing without bound.
type SchedulesCleaner struct {
	schedules       ScheduleCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewSchedulesCleaner(schedules ScheduleCleanupRepository, retentionInDays int) (*SchedulesCleaner, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	sc := &SchedulesCleaner{
		schedules:       schedules,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := sc.cron.AddFunc("0 3 * * *", sc.cleanOldSchedules)
	if err != nil {
		return nil, err
	}

	sc.cron.Start()
	log.Infof("schedules cleaner started, retention in days: %d", sc.retentionInDays)
	return sc, nil
}

func (sc *SchedulesCleaner) Stop() {
	sc.cron.Stop()
}

func (sc *SchedulesCleaner) cleanOldSchedules() {
	cutoff := time.Now().Add(-time.Duration(sc.retentionInDays) * 24 * time.Hour)
	removed, err := sc.schedules.RemoveEndedBefore(context.Background(), cutoff)
	if err != nil {
		log.Errorf("Failed to clean old schedules: %v", err)
	} else {
		log.Infof("Old schedules were cleaned at %v, removed rows: %v", time.Now(), removed)
	}
}

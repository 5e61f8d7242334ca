package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/processinglock"
)

const lockName = "phase2_extraction"

// acquireLock takes the scheduler advisory lock for this run. Returns false
// when another run still holds it.
func (s *Service) acquireLock(ctx context.Context, runID string, lockSeconds int) (bool, error) {
	now := time.Now().UTC()
	until := now.Add(time.Duration(lockSeconds) * time.Second)

	lock, err := s.client.ProcessingLock.Query().
		Where(processinglock.LockName(lockName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to query processing lock: %w", err)
	}

	if lock == nil {
		_, err := s.client.ProcessingLock.Create().
			SetLockName(lockName).
			SetLockedUntil(until).
			SetOwnerRunID(runID).
			Save(ctx)
		if err != nil {
			// Lost the creation race to a concurrent run.
			if ent.IsConstraintError(err) {
				return false, nil
			}
			return false, fmt.Errorf("failed to create processing lock: %w", err)
		}
		return true, nil
	}

	if lock.LockedUntil.After(now) {
		return false, nil
	}

	_, err = lock.Update().
		SetLockedUntil(until).
		SetOwnerRunID(runID).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to take over processing lock: %w", err)
	}
	return true, nil
}

// releaseLock expires the lock, but only while this run still owns it.
func (s *Service) releaseLock(ctx context.Context, runID string) {
	_, err := s.client.ProcessingLock.Update().
		Where(
			processinglock.LockName(lockName),
			processinglock.OwnerRunID(runID),
		).
		SetLockedUntil(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		s.logger.Warn("failed to release processing lock", "processing_run_id", runID, "error", err)
	}
}

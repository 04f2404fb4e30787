package extractorimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ScheduleExtractions re-runs the full workflow for username every
// EXTRACT_INTERVAL_MINUTES, and prunes old archive rows daily when the
// archive is enabled. The scheduler runs until the process is stopped.
func (e *ExtractorImpl) ScheduleExtractions(ctx context.Context, username string) error {
	interval := time.Duration(e.Config.Extractor.IntervalMinutes) * time.Minute
	if interval <= 0 {
		return fmt.Errorf("extraction interval must be positive, got %d minutes", e.Config.Extractor.IntervalMinutes)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				e.Logger.Info("Context cancelled, skipping scheduled extraction")
				return
			}

			e.Logger.Info("Starting scheduled extraction", "username", username)
			result, err := e.ExtractUserData(ctx, username)
			if err != nil {
				e.Logger.Error("Scheduled extraction failed", "username", username, "error", err)
				e.Notifier.SendMessageToUser("Scheduled extraction failed for @" + username + ": " + err.Error())
				return
			}

			if err := e.Storage.WriteCSVReports(username, result); err != nil {
				e.Logger.Error("Failed to generate CSV reports", "username", username, "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule extraction job: %w", err)
	}

	if e.Config.ArchiveEnabled() {
		// Prune the run archive at 3:00 AM every day.
		_, err = scheduler.NewJob(
			gocron.DailyJob(
				1,
				gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
			),
			gocron.NewTask(func() {
				if ctx.Err() != nil {
					return
				}

				removed, err := e.RunRepo.CleanupOldRecords(ctx, e.Config.Extractor.ArchiveRetention)
				if err != nil {
					e.Logger.Error("Archive cleanup failed", "error", err)
					return
				}
				e.Logger.Info("Archive cleanup completed", "removed", removed)
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule archive cleanup job: %w", err)
		}
	}

	scheduler.Start()
	e.Logger.Info("Extraction scheduler started",
		"username", username,
		"interval_minutes", e.Config.Extractor.IntervalMinutes)
	return nil
}

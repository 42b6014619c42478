package jobs

import (
	"context"
	"time"

	"teamsync-backend/internal/logger"
)

// SendMeetingReminders emails every project member about meetings coming up
// within the configured reminder window.
func (jr *JobRunner) SendMeetingReminders() {
	jr.runWithRecovery("SendMeetingReminders", func() {
		ctx := context.Background()

		window := time.Duration(jr.config.Scheduler.ReminderWindowHours) * time.Hour
		now := time.Now().UTC()

		meetings, err := jr.store.ListMeetingsBetween(ctx, now, now.Add(window))
		if err != nil {
			logger.Error("Failed to load upcoming meetings", "error", err)
			return
		}

		sent := 0
		for _, meeting := range meetings {
			project, err := jr.store.ProjectRepository.GetByID(ctx, meeting.ProjectID)
			if err != nil {
				logger.Error("Failed to load project for meeting reminder",
					"project_id", meeting.ProjectID, "meeting_id", meeting.ID, "error", err)
				continue
			}

			members, err := jr.store.ListMembers(ctx, meeting.ProjectID)
			if err != nil {
				logger.Error("Failed to load members for meeting reminder",
					"project_id", meeting.ProjectID, "error", err)
				continue
			}

			for _, member := range members {
				err := jr.email.SendMeetingReminder(ctx, member.Email, member.Name,
					project.Name, meeting.Title, meeting.Date, meeting.Link)
				if err != nil {
					logger.Error("Failed to send meeting reminder",
						"meeting_id", meeting.ID, "user_id", member.ID, "error", err)
					continue
				}
				sent++
			}
		}

		logger.Info("Meeting reminders sent", "meetings", len(meetings), "emails", sent)
	})
}

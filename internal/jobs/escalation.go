package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"go-legal-cms/internal/audit"
	"go-legal-cms/internal/config"
	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/pkg/logger"
)

// StartEscalationJob schedules the advisory escalation sweep: open
// requests past their due date are flipped to Urgent, one audit entry per
// escalation. Returns nil when the job is disabled.
func StartEscalationJob(
	cfg *config.Config,
	advisoryRepo repository.AdvisoryRepository,
	recorder *audit.Recorder,
	log *logger.Logger,
) (*cron.Cron, error) {
	if !cfg.EscalationEnabled {
		log.Info("advisory escalation job disabled")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.EscalationSchedule, func() {
		escalated, err := advisoryRepo.EscalateOverdue(time.Now())
		if err != nil {
			log.Error("advisory escalation sweep failed", "error", err)
			return
		}
		if len(escalated) == 0 {
			return
		}

		for _, req := range escalated {
			recorder.Record(model.AuditLog{
				UserID:     "system",
				UserName:   "Escalation Job",
				Action:     model.ActionUpdate,
				Resource:   model.ResourceAdvisory,
				ResourceID: req.RequestNumber,
				Details:    "Escalated overdue advisory request to Urgent",
			})
		}
		log.Info("advisory escalation sweep completed", "escalated", len(escalated))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("advisory escalation job started", "schedule", cfg.EscalationSchedule)
	return c, nil
}

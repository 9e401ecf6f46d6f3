package usecase

import (
	"context"
	"time"

	"campusvoice/internal/domain/entity"
	"campusvoice/internal/domain/policy"
	"campusvoice/internal/domain/repository"
	"campusvoice/pkg/logger"
)

// SlaMonitorUseCase periodically scans for complaints past their due
// timestamp and pushes breach notifications. Breach state is derived, never
// stored, so the scan is read-only.
type SlaMonitorUseCase struct {
	complaintRepo repository.ComplaintRepository
	notifier      Notifier
	interval      time.Duration
}

func NewSlaMonitorUseCase(complaintRepo repository.ComplaintRepository, notifier Notifier, interval time.Duration) *SlaMonitorUseCase {
	return &SlaMonitorUseCase{
		complaintRepo: complaintRepo,
		notifier:      notifier,
		interval:      interval,
	}
}

func (uc *SlaMonitorUseCase) StartBreachScanJob(ctx context.Context) {
	if uc.interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(uc.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := uc.scan(ctx); err != nil {
					logger.Error("SLA breach scan failed: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (uc *SlaMonitorUseCase) scan(ctx context.Context) error {
	query := policy.ComplaintQuery{
		Must: []policy.Clause{
			{Field: policy.FieldStatus, Op: policy.OpNotEq, Value: entity.StatusResolved},
		},
		Limit: policy.MaxAdminLimit,
	}

	items, err := uc.complaintRepo.Find(ctx, query)
	if err != nil {
		return err
	}

	now := time.Now()
	breached := 0
	for _, c := range items {
		if !policy.IsBreached(c, now) {
			continue
		}
		breached++
		if uc.notifier == nil || c.AssignedTo == "" {
			continue
		}
		uc.notifier.NotifyUser(c.AssignedTo, map[string]interface{}{
			"type":         "sla_breached",
			"complaint_id": c.ID,
			"subject":      c.Subject,
			"due_at":       c.DueAt.Format(time.RFC3339),
		})
	}
	if breached > 0 {
		logger.Warn("SLA scan found %d breached complaints", breached)
	}
	return nil
}

package service

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
)

// UrgentWindow is how far ahead a hearing counts as urgent
const UrgentWindow = 72 * time.Hour

const metricsCacheKey = "dashboard:metrics"

// DashboardMetrics mirrors the front-page metric cards
type DashboardMetrics struct {
	ActiveLitigation int64 `json:"activeLitigation"`
	AdvisoryBacklog  int64 `json:"advisoryBacklog"`
	UrgentHearings   int64 `json:"urgentHearings"`
	WinRate          int64 `json:"winRate"`
	TotalCases       int64 `json:"totalCases"`
	PendingAdvisory  int64 `json:"pendingAdvisory"`
}

// RiskEntry is a case whose hearing is inside the urgent window
type RiskEntry struct {
	Case          model.LitigationCase `json:"case"`
	TimeRemaining string               `json:"time_remaining"`
}

type DashboardService interface {
	GetMetrics() (*DashboardMetrics, error)
	UpcomingHearings(days, limit int) ([]model.LitigationCase, error)
	RiskMonitor() ([]RiskEntry, error)
}

type dashboardService struct {
	caseRepo     repository.CaseRepository
	advisoryRepo repository.AdvisoryRepository
	cache        *gocache.Cache
}

func NewDashboardService(caseRepo repository.CaseRepository, advisoryRepo repository.AdvisoryRepository, cacheTTL time.Duration) DashboardService {
	return &dashboardService{
		caseRepo:     caseRepo,
		advisoryRepo: advisoryRepo,
		cache:        gocache.New(cacheTTL, cacheTTL*2),
	}
}

func (s *dashboardService) GetMetrics() (*DashboardMetrics, error) {
	if cached, found := s.cache.Get(metricsCacheKey); found {
		return cached.(*DashboardMetrics), nil
	}

	total, err := s.caseRepo.CountTotal()
	if err != nil {
		return nil, err
	}
	active, err := s.caseRepo.CountByStatus(model.CaseStatusActive)
	if err != nil {
		return nil, err
	}
	backlog, err := s.advisoryRepo.CountByStatus(model.AdvisoryPending, model.AdvisoryUrgent)
	if err != nil {
		return nil, err
	}
	pending, err := s.advisoryRepo.CountByStatus(model.AdvisoryPending)
	if err != nil {
		return nil, err
	}
	urgent, err := s.caseRepo.Upcoming(time.Now(), UrgentWindow, 0)
	if err != nil {
		return nil, err
	}

	// Win rate: share of closed cases that reached judgment. Closed
	// before judgment counts as settled or withdrawn, not a win.
	closed, err := s.caseRepo.CountByStatus(model.CaseStatusClosed)
	if err != nil {
		return nil, err
	}
	won, err := s.caseRepo.CountClosedAtStage(model.StageJudgment)
	if err != nil {
		return nil, err
	}
	var winRate int64
	if closed > 0 {
		winRate = won * 100 / closed
	}

	metrics := &DashboardMetrics{
		ActiveLitigation: active,
		AdvisoryBacklog:  backlog,
		UrgentHearings:   int64(len(urgent)),
		WinRate:          winRate,
		TotalCases:       total,
		PendingAdvisory:  pending,
	}
	s.cache.Set(metricsCacheKey, metrics, gocache.DefaultExpiration)
	return metrics, nil
}

func (s *dashboardService) UpcomingHearings(days, limit int) ([]model.LitigationCase, error) {
	if days <= 0 {
		days = 7
	}
	return s.caseRepo.Upcoming(time.Now(), time.Duration(days)*24*time.Hour, limit)
}

func (s *dashboardService) RiskMonitor() ([]RiskEntry, error) {
	now := time.Now()
	cases, err := s.caseRepo.Upcoming(now, UrgentWindow, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]RiskEntry, len(cases))
	for i, c := range cases {
		entries[i] = RiskEntry{
			Case:          c,
			TimeRemaining: formatTimeRemaining(c.NextHearing.Sub(now)),
		}
	}
	return entries, nil
}

// formatTimeRemaining renders a countdown like "2d 5h" or "7h"
func formatTimeRemaining(d time.Duration) string {
	hours := int(d.Hours())
	days := hours / 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours%24)
	}
	return fmt.Sprintf("%dh", hours)
}

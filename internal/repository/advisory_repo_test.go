package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-legal-cms/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.UserRole{},
		&model.LitigationCase{}, &model.AdvisoryRequest{},
		&model.LegalDocument{}, &model.AuditLog{},
	))
	return db
}

func seedAdvisory(t *testing.T, repo AdvisoryRepository, requestNumber, status string, due time.Time) *model.AdvisoryRequest {
	t.Helper()

	a := &model.AdvisoryRequest{
		RequestNumber: requestNumber,
		Title:         "Review " + requestNumber,
		RequestedBy:   "Registrar",
		Department:    "Registry",
		DateReceived:  due.AddDate(0, 0, -7),
		DueDate:       due,
		Status:        status,
		Priority:      model.PriorityMedium,
	}
	require.NoError(t, repo.Create(a))
	return a
}

func TestEscalateOverdue(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdvisoryRepo(db)
	now := time.Now()

	overdue := seedAdvisory(t, repo, "ADV/1", model.AdvisoryPending, now.Add(-24*time.Hour))
	inProgress := seedAdvisory(t, repo, "ADV/2", model.AdvisoryInProgress, now.Add(-time.Hour))
	seedAdvisory(t, repo, "ADV/3", model.AdvisoryCompleted, now.Add(-48*time.Hour))
	seedAdvisory(t, repo, "ADV/4", model.AdvisoryUrgent, now.Add(-48*time.Hour))
	seedAdvisory(t, repo, "ADV/5", model.AdvisoryPending, now.Add(24*time.Hour))

	escalated, err := repo.EscalateOverdue(now)
	require.NoError(t, err)
	require.Len(t, escalated, 2)
	for _, a := range escalated {
		require.Equal(t, model.AdvisoryUrgent, a.Status)
	}

	// Persisted, not just returned
	for _, id := range []string{overdue.ID.String(), inProgress.ID.String()} {
		var a model.AdvisoryRequest
		require.NoError(t, db.First(&a, "id = ?", id).Error)
		require.Equal(t, model.AdvisoryUrgent, a.Status)
	}

	// Completed and future requests untouched
	var a model.AdvisoryRequest
	require.NoError(t, db.First(&a, "request_number = ?", "ADV/3").Error)
	require.Equal(t, model.AdvisoryCompleted, a.Status)
	var b model.AdvisoryRequest
	require.NoError(t, db.First(&b, "request_number = ?", "ADV/5").Error)
	require.Equal(t, model.AdvisoryPending, b.Status)

	// The sweep is idempotent
	escalated, err = repo.EscalateOverdue(now)
	require.NoError(t, err)
	require.Empty(t, escalated)
}

func TestAdvisoryFindFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdvisoryRepo(db)
	now := time.Now()

	seedAdvisory(t, repo, "ADV/10", model.AdvisoryPending, now.Add(48*time.Hour))
	seedAdvisory(t, repo, "ADV/11", model.AdvisoryPending, now.Add(24*time.Hour))
	seedAdvisory(t, repo, "ADV/12", model.AdvisoryCompleted, now.Add(72*time.Hour))

	// Ordered by due date, soonest first
	all, err := repo.Find(AdvisoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "ADV/11", all[0].RequestNumber)

	pending, err := repo.Find(AdvisoryFilter{Status: model.AdvisoryPending})
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// Search is case-insensitive
	matched, err := repo.Find(AdvisoryFilter{Query: "adv/12"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "ADV/12", matched[0].RequestNumber)
}

func TestAdvisoryCountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdvisoryRepo(db)
	now := time.Now()

	seedAdvisory(t, repo, "ADV/20", model.AdvisoryPending, now)
	seedAdvisory(t, repo, "ADV/21", model.AdvisoryInProgress, now)
	seedAdvisory(t, repo, "ADV/22", model.AdvisoryCompleted, now)

	count, err := repo.CountByStatus(model.AdvisoryPending, model.AdvisoryInProgress)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

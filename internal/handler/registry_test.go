package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"go-legal-cms/internal/model"
	"go-legal-cms/internal/service"
)

func seedCase(t *testing.T, app *fiber.App, token, suitNumber, stage, status string, nextHearing time.Time) string {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/v1/cases", token, fiber.Map{
		"suit_number":      suitNumber,
		"case_title":       "LASU v. Adewale Properties",
		"adversary_party":  "Adewale Properties Ltd",
		"procedural_stage": stage,
		"assigned_counsel": "B. Okonkwo",
		"status":           status,
		"next_hearing":     nextHearing.Format(time.RFC3339),
		"court":            "Lagos High Court",
		"filed_date":       nextHearing.AddDate(0, -3, 0).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data model.LitigationCase `json:"data"`
	}
	decode(t, resp, &created)
	return created.Data.ID.String()
}

func TestCaseLifecycle(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	hearing := time.Now().Add(14 * 24 * time.Hour)
	caseID := seedCase(t, app, token, "LD/123/2026", model.StageMention, model.CaseStatusActive, hearing)

	// Duplicate suit number rejected
	resp := doJSON(t, app, "POST", "/api/v1/cases", token, fiber.Map{
		"suit_number":      "LD/123/2026",
		"case_title":       "Duplicate",
		"adversary_party":  "X",
		"procedural_stage": model.StageMention,
		"assigned_counsel": "Y",
		"status":           model.CaseStatusActive,
		"court":            "Z",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Fetch
	resp = doJSON(t, app, "GET", "/api/v1/cases/"+caseID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched model.LitigationCase
	decode(t, resp, &fetched)
	require.Equal(t, "LD/123/2026", fetched.SuitNumber)

	// Advance the stage
	resp = doJSON(t, app, "PUT", "/api/v1/cases/"+caseID, token, fiber.Map{
		"suit_number":      "LD/123/2026",
		"case_title":       "LASU v. Adewale Properties",
		"adversary_party":  "Adewale Properties Ltd",
		"procedural_stage": model.StageTrial,
		"assigned_counsel": "B. Okonkwo",
		"status":           model.CaseStatusActive,
		"next_hearing":     hearing.Format(time.RFC3339),
		"court":            "Lagos High Court",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Data model.LitigationCase `json:"data"`
	}
	decode(t, resp, &updated)
	require.Equal(t, model.StageTrial, updated.Data.ProceduralStage)
}

func TestCaseInvalidStage(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	resp := doJSON(t, app, "POST", "/api/v1/cases", token, fiber.Map{
		"suit_number":      "LD/9/2026",
		"case_title":       "T",
		"adversary_party":  "X",
		"procedural_stage": "Appeal",
		"assigned_counsel": "Y",
		"status":           model.CaseStatusActive,
		"court":            "Z",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCaseListFilters(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	hearing := time.Now().Add(7 * 24 * time.Hour)
	seedCase(t, app, token, "LD/1/2026", model.StageMention, model.CaseStatusActive, hearing)
	seedCase(t, app, token, "ID/2/2026", model.StageTrial, model.CaseStatusPending, hearing)

	var body struct {
		Items []model.LitigationCase `json:"items"`
		Count int                    `json:"count"`
	}

	resp := doJSON(t, app, "GET", "/api/v1/cases", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Equal(t, 2, body.Count)

	// Case-insensitive search on suit number
	resp = doJSON(t, app, "GET", "/api/v1/cases?q=ld%2F1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Equal(t, 1, body.Count)
	require.Equal(t, "LD/1/2026", body.Items[0].SuitNumber)

	// Stage filter
	resp = doJSON(t, app, "GET", "/api/v1/cases?stage=Trial", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Equal(t, 1, body.Count)

	// No matches returns an empty list, not null
	resp = doJSON(t, app, "GET", "/api/v1/cases?q=nomatch", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Zero(t, body.Count)
	require.NotNil(t, body.Items)
	require.Empty(t, body.Items)
}

func TestCaseDeleteRequiresAdmin(t *testing.T) {
	app, _ := setupApp(t)
	adminToken, _ := bootstrapAndLogin(t, app)
	officerToken, _ := createOfficer(t, app, adminToken, "officer@lasu.edu.ng")

	hearing := time.Now().Add(24 * time.Hour)
	caseID := seedCase(t, app, adminToken, "LD/77/2026", model.StageMention, model.CaseStatusActive, hearing)

	resp := doJSON(t, app, "DELETE", "/api/v1/cases/"+caseID, officerToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/v1/cases/"+caseID, adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/cases/"+caseID, adminToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCaseCalendar(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	hearing := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	seedCase(t, app, token, "LD/5/2026", model.StageMention, model.CaseStatusActive, hearing)
	seedCase(t, app, token, "LD/6/2026", model.StageTrial, model.CaseStatusActive, hearing.Add(2*time.Hour))
	seedCase(t, app, token, "LD/7/2026", model.StageMention, model.CaseStatusActive, hearing.AddDate(0, 1, 0))

	resp := doJSON(t, app, "GET", "/api/v1/cases/calendar?year=2026&month=9", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Year  int                               `json:"year"`
		Month int                               `json:"month"`
		Days  map[string][]model.LitigationCase `json:"days"`
	}
	decode(t, resp, &body)
	require.Equal(t, 2026, body.Year)
	require.Len(t, body.Days["2026-09-15"], 2)
	require.NotContains(t, body.Days, "2026-10-15")
}

func seedAdvisory(t *testing.T, app *fiber.App, token, requestNumber, status, priority string, due time.Time) string {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/v1/advisory", token, fiber.Map{
		"request_number": requestNumber,
		"title":          "Review of staff housing MoU",
		"requested_by":   "Registrar",
		"department":     "Registry",
		"date_received":  due.AddDate(0, 0, -14).Format(time.RFC3339),
		"due_date":       due.Format(time.RFC3339),
		"status":         status,
		"priority":       priority,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data model.AdvisoryRequest `json:"data"`
	}
	decode(t, resp, &created)
	return created.Data.ID.String()
}

func TestAdvisoryLifecycle(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	due := time.Now().Add(10 * 24 * time.Hour)
	id := seedAdvisory(t, app, token, "ADV/001/2026", model.AdvisoryPending, model.PriorityHigh, due)

	// Duplicate request number rejected
	resp := doJSON(t, app, "POST", "/api/v1/advisory", token, fiber.Map{
		"request_number": "ADV/001/2026",
		"title":          "Duplicate",
		"requested_by":   "X",
		"department":     "Y",
		"status":         model.AdvisoryPending,
		"priority":       model.PriorityLow,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/v1/advisory/"+id, token, fiber.Map{
		"request_number": "ADV/001/2026",
		"title":          "Review of staff housing MoU",
		"requested_by":   "Registrar",
		"department":     "Registry",
		"due_date":       due.Format(time.RFC3339),
		"status":         model.AdvisoryInProgress,
		"assigned_to":    "C. Balogun",
		"priority":       model.PriorityHigh,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Data model.AdvisoryRequest `json:"data"`
	}
	decode(t, resp, &updated)
	require.Equal(t, model.AdvisoryInProgress, updated.Data.Status)
	require.Equal(t, "C. Balogun", updated.Data.AssignedTo)
}

func TestAdvisoryBoardGroupsByStatus(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	due := time.Now().Add(5 * 24 * time.Hour)
	seedAdvisory(t, app, token, "ADV/010/2026", model.AdvisoryPending, model.PriorityLow, due)
	seedAdvisory(t, app, token, "ADV/011/2026", model.AdvisoryPending, model.PriorityMedium, due)
	seedAdvisory(t, app, token, "ADV/012/2026", model.AdvisoryUrgent, model.PriorityCritical, due)

	resp := doJSON(t, app, "GET", "/api/v1/advisory/board", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var board map[string][]model.AdvisoryRequest
	decode(t, resp, &board)
	require.Len(t, board[model.AdvisoryPending], 2)
	require.Len(t, board[model.AdvisoryUrgent], 1)

	// Empty columns are present, not missing
	require.Contains(t, board, model.AdvisoryInProgress)
	require.Contains(t, board, model.AdvisoryCompleted)
	require.Empty(t, board[model.AdvisoryCompleted])
}

func TestDocumentLifecycle(t *testing.T) {
	app, db := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	hearing := time.Now().Add(24 * time.Hour)
	caseID := seedCase(t, app, token, "LD/55/2026", model.StageMention, model.CaseStatusActive, hearing)

	resp := doJSON(t, app, "POST", "/api/v1/documents", token, fiber.Map{
		"name":    "Hearing Notice.pdf",
		"type":    model.DocTypeCourtProcess,
		"case_id": caseID,
		"size":    "1.2 MB",
		"status":  model.DocStatusFinal,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data model.LegalDocument `json:"data"`
	}
	decode(t, resp, &created)
	doc := created.Data
	require.Equal(t, "1.0", doc.Version)
	require.NotNil(t, doc.CaseID)

	// Linking to a case that does not exist fails
	resp = doJSON(t, app, "POST", "/api/v1/documents", token, fiber.Map{
		"name":    "Orphan.pdf",
		"type":    model.DocTypeContract,
		"case_id": "22222222-2222-2222-2222-222222222222",
		"status":  model.DocStatusDraft,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Download records an audit entry
	resp = doJSON(t, app, "GET", "/api/v1/documents/"+doc.ID.String()+"/download", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Eventually(t, func() bool {
		var count int64
		err := db.Model(&model.AuditLog{}).
			Where("action = ? AND resource = ?", model.ActionDownload, model.ResourceDocument).
			Count(&count).Error
		return err == nil && count == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestDocumentFilterByCase(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	hearing := time.Now().Add(24 * time.Hour)
	caseID := seedCase(t, app, token, "LD/60/2026", model.StageMention, model.CaseStatusActive, hearing)

	for _, name := range []string{"Exhibit A.pdf", "Exhibit B.pdf"} {
		resp := doJSON(t, app, "POST", "/api/v1/documents", token, fiber.Map{
			"name":    name,
			"type":    model.DocTypeCourtProcess,
			"case_id": caseID,
			"status":  model.DocStatusFinal,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp := doJSON(t, app, "POST", "/api/v1/documents", token, fiber.Map{
		"name":   "Standalone Opinion.pdf",
		"type":   model.DocTypeLegalOpinion,
		"status": model.DocStatusDraft,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Items []model.LegalDocument `json:"items"`
		Count int                   `json:"count"`
	}
	resp = doJSON(t, app, "GET", "/api/v1/documents?case_id="+caseID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Equal(t, 2, body.Count)

	resp = doJSON(t, app, "GET", "/api/v1/documents?type=Legal+Opinion", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Equal(t, 1, body.Count)
	require.Equal(t, "Standalone Opinion.pdf", body.Items[0].Name)
}

func TestAuditTrailFilters(t *testing.T) {
	app, db := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	hearing := time.Now().Add(24 * time.Hour)
	seedCase(t, app, token, "LD/88/2026", model.StageMention, model.CaseStatusActive, hearing)

	// Wait for the async recorder to flush the create entry
	require.Eventually(t, func() bool {
		var count int64
		err := db.Model(&model.AuditLog{}).
			Where("action = ? AND resource = ?", model.ActionCreate, model.ResourceCase).
			Count(&count).Error
		return err == nil && count == 1
	}, 2*time.Second, 20*time.Millisecond)

	var body struct {
		Items []model.AuditLog `json:"items"`
		Count int              `json:"count"`
	}
	resp := doJSON(t, app, "GET", "/api/v1/audit?action=CREATE", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.GreaterOrEqual(t, body.Count, 1)
	for _, entry := range body.Items {
		require.Equal(t, model.ActionCreate, entry.Action)
	}

	resp = doJSON(t, app, "GET", "/api/v1/audit?from="+time.Now().UTC().Add(time.Hour).Format(time.RFC3339), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Zero(t, body.Count)
}

func TestDashboardMetrics(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	now := time.Now()
	seedCase(t, app, token, "LD/100/2026", model.StageTrial, model.CaseStatusActive, now.Add(24*time.Hour))
	seedCase(t, app, token, "LD/101/2026", model.StageJudgment, model.CaseStatusClosed, now.Add(-time.Hour))
	seedCase(t, app, token, "LD/102/2026", model.StageMention, model.CaseStatusClosed, now.Add(-time.Hour))
	seedAdvisory(t, app, token, "ADV/100/2026", model.AdvisoryPending, model.PriorityHigh, now.Add(48*time.Hour))

	resp := doJSON(t, app, "GET", "/api/v1/dashboard/metrics", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var metrics service.DashboardMetrics
	decode(t, resp, &metrics)
	require.EqualValues(t, 1, metrics.ActiveLitigation)
	require.EqualValues(t, 1, metrics.AdvisoryBacklog)
	require.EqualValues(t, 1, metrics.UrgentHearings)
	require.EqualValues(t, 3, metrics.TotalCases)
	// One of two closed cases reached judgment
	require.EqualValues(t, 50, metrics.WinRate)
}

func TestRiskMonitorWindow(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	now := time.Now()
	seedCase(t, app, token, "LD/200/2026", model.StageTrial, model.CaseStatusActive, now.Add(10*time.Hour))
	seedCase(t, app, token, "LD/201/2026", model.StageTrial, model.CaseStatusActive, now.Add(100*time.Hour))
	seedCase(t, app, token, "LD/202/2026", model.StageTrial, model.CaseStatusActive, now.Add(-2*time.Hour))

	resp := doJSON(t, app, "GET", "/api/v1/dashboard/risk", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []service.RiskEntry `json:"items"`
		Count int                 `json:"count"`
	}
	decode(t, resp, &body)
	require.Equal(t, 1, body.Count)
	require.Equal(t, "LD/200/2026", body.Items[0].Case.SuitNumber)
	require.NotEmpty(t, body.Items[0].TimeRemaining)
}

func TestDocumentRejectsZeroCaseReference(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	resp := doJSON(t, app, "POST", "/api/v1/documents", token, fiber.Map{
		"name":    "Zero Link.pdf",
		"type":    model.DocTypeContract,
		"case_id": "00000000-0000-0000-0000-000000000000",
		"status":  model.DocStatusDraft,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decode(t, resp, &body)
	require.Contains(t, body.Error, "case_ref")
}

func TestCreateCaseStorageFailureReturns500(t *testing.T) {
	app, db := setupApp(t)
	token, _ := bootstrapAndLogin(t, app)

	require.NoError(t, db.Migrator().DropTable(&model.LitigationCase{}))

	resp := doJSON(t, app, "POST", "/api/v1/cases", token, fiber.Map{
		"suit_number":      "LD/300/2026",
		"case_title":       "LASU v. Lekan Holdings",
		"adversary_party":  "Lekan Holdings Ltd",
		"procedural_stage": model.StageMention,
		"assigned_counsel": "B. Okonkwo",
		"status":           model.CaseStatusActive,
		"court":            "Lagos High Court",
	})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decode(t, resp, &body)
	require.Equal(t, "Failed to create case", body.Error)
}

package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teleconsult-server/internal/store"
	"teleconsult-server/internal/utils"
)

type scriptedLLM struct {
	summary string
	draft   string
}

func (s *scriptedLLM) SummarizeIntake(_ context.Context, _ string) (string, error) {
	return s.summary, nil
}

func (s *scriptedLLM) DraftPrescription(_ context.Context, _, _ string) (string, error) {
	return s.draft, nil
}

func newTestRouter(t *testing.T, client *scriptedLLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tenants := store.NewTenantStore()
	doctors := store.NewDoctorStore(tenants)
	sessions := store.NewSessionStore(doctors)
	require.NoError(t, store.SeedDemoData(tenants, doctors))

	router := gin.New()
	SetupRoutes(router, tenants, doctors, sessions, client)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.ResponseData) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope utils.ResponseData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func startConsultation(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/consultations",
		`{"tenantId":"t1","name":"Asha","age":"29","concern":"fever and cough"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	session, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	id, ok := session["id"].(string)
	require.True(t, ok)
	return id
}

func TestIntakeCreatesSessionWithIntroMessage(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{summary: "Fever and cough, 2 days"})

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/consultations",
		`{"tenantId":"t1","name":"Asha","age":"29","concern":"fever and cough"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	session := envelope.Data.(map[string]interface{})
	assert.Equal(t, "d1", session["doctorId"])
	assert.Equal(t, "t1", session["tenantId"])
	assert.Equal(t, "active", session["status"])

	messages := session["messages"].([]interface{})
	require.Len(t, messages, 1)
	intro := messages[0].(map[string]interface{})
	assert.Contains(t, intro["content"], "Dr. Sarah Smith")
	assert.Contains(t, intro["content"], "Fever and cough, 2 days")
}

func TestIntakeWithoutOnlineDoctorIs503(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{summary: "summary"})

	// t2's only seeded doctor is offline.
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/consultations",
		`{"tenantId":"t2","name":"Ravi","age":"41","concern":"headache"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, envelope.Error, "try again later")
}

func TestIntakeWithUnknownTenantIs400(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{})

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/consultations",
		`{"tenantId":"nope","name":"Asha","age":"29","concern":"fever"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageRoundTripAndClosedSessionRejection(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{summary: "summary"})
	sessionID := startConsultation(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+sessionID+"/messages",
		`{"senderId":"patient","senderType":"patient","content":"hello doctor"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/consultations/"+sessionID+"/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	messages := envelope.Data.([]interface{})
	assert.Len(t, messages, 2) // intro + patient message

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+sessionID+"/complete",
		`{"notes":"prescribed rest"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+sessionID+"/messages",
		`{"senderId":"patient","senderType":"patient","content":"one more thing"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCompleteIsIdempotentOverHTTP(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{summary: "summary"})
	sessionID := startConsultation(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+sessionID+"/complete",
		`{"notes":"prescribed rest"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+sessionID+"/complete",
		`{"notes":"updated notes"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	session := envelope.Data.(map[string]interface{})
	assert.Equal(t, "completed", session["status"])
	assert.Equal(t, "updated notes", session["notes"])
}

func TestPrescriptionEmptyCollaboratorResponseIs502(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{summary: "summary", draft: ""})
	sessionID := startConsultation(t, router)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+sessionID+"/prescription",
		`{"notes":"prescribed rest"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, envelope.Error, "empty response")
}

func TestPrescriptionSuccess(t *testing.T) {
	draft := `{"medicines":[{"name":"Paracetamol","dosage":"500mg","frequency":"every 6 hours","duration":"3 days"}],"instructions":"Rest and hydrate."}`
	router := newTestRouter(t, &scriptedLLM{summary: "summary", draft: draft})
	sessionID := startConsultation(t, router)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+sessionID+"/prescription",
		`{"notes":"prescribed rest"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	prescription := envelope.Data.(map[string]interface{})
	assert.Equal(t, sessionID, prescription["chatId"])
	medicines := prescription["medicines"].([]interface{})
	require.Len(t, medicines, 1)
}

func TestTenantAndDoctorAdmin(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{})

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/tenants",
		`{"id":"t3","companyName":"Green Valley Care","planType":"Professional"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/tenants",
		`{"id":"t3","companyName":"Duplicate","planType":"Starter"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/doctors",
		`{"tenantId":"t3","name":"Dr. Ana Lopez","email":"ana@greenvalley.example"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/doctors",
		`{"tenantId":"missing","name":"Dr. Nobody","email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/tenants/t3/doctors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	doctors := envelope.Data.([]interface{})
	assert.Len(t, doctors, 1)
}

func TestDoctorWorkQueue(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{summary: "summary"})
	first := startConsultation(t, router)
	second := startConsultation(t, router)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/doctors/d1/consultations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	queue := envelope.Data.([]interface{})
	require.Len(t, queue, 2)
	assert.Equal(t, first, queue[0].(map[string]interface{})["id"])
	assert.Equal(t, second, queue[1].(map[string]interface{})["id"])

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/consultations/"+first+"/complete", `{"notes":"done"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	_, envelope = doJSON(t, router, http.MethodGet, "/api/v1/doctors/d1/consultations", "")
	queue = envelope.Data.([]interface{})
	require.Len(t, queue, 1)
	assert.Equal(t, second, queue[0].(map[string]interface{})["id"])
}

func TestToggleDoctorOnlineAffectsMatching(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{summary: "summary"})

	// Toggle d2 online; intake against t2 now matches.
	rec, _ := doJSON(t, router, http.MethodPatch, "/api/v1/doctors/d2/online", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/consultations",
		`{"tenantId":"t2","name":"Ravi","age":"41","concern":"headache"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	session := envelope.Data.(map[string]interface{})
	assert.Equal(t, "d2", session["doctorId"])
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

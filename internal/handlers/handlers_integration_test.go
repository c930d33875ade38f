package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/handlers"
	"fittrack/internal/middleware"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
)

const testJWTSecret = "test_jwt_secret"

// stubGenerator satisfies services.AnalysisGenerator for tests.
type stubGenerator struct {
	fn func(ctx context.Context, payload []byte, instruction string) (string, error)
}

func (s *stubGenerator) GenerateAnalysis(ctx context.Context, payload []byte, instruction string) (string, error) {
	return s.fn(ctx, payload, instruction)
}

// setupApp builds a Fiber app on a per-test in-memory SQLite store with all
// handlers and services wired the same way main does.
func setupApp(t *testing.T, generator services.AnalysisGenerator) *fiber.App {
	t.Helper()

	db, err := repositories.OpenDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	userRepo := repositories.NewGORMUserRepository(db)
	weightRepo := repositories.NewGORMWeightRepository(db)
	measurementRepo := repositories.NewGORMMeasurementRepository(db)
	workoutRepo := repositories.NewGORMWorkoutRepository(db)
	supplementRepo := repositories.NewGORMSupplementRepository(db)
	journalRepo := repositories.NewGORMJournalRepository(db)
	routineRepo := repositories.NewGORMRoutineRepository(db)

	authService := services.NewAuthService(userRepo, testJWTSecret, 24*time.Hour)
	bodyService := services.NewBodyService(weightRepo, measurementRepo)
	trainingService := services.NewTrainingService(workoutRepo, routineRepo)
	wellnessService := services.NewWellnessService(supplementRepo, journalRepo)
	if generator == nil {
		generator = &stubGenerator{fn: func(context.Context, []byte, string) (string, error) {
			return "stub analysis", nil
		}}
	}
	analysisService := services.NewAnalysisService(
		weightRepo, measurementRepo, workoutRepo, supplementRepo, journalRepo, routineRepo,
		generator,
	)

	authHandler := handlers.NewAuthHandler(authService)
	bodyHandler := handlers.NewBodyHandler(bodyService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	bodyHandler.RegisterRoutes(protected)
	trainingHandler.RegisterRoutes(protected)
	wellnessHandler.RegisterRoutes(protected)
	analysisHandler.RegisterRoutes(protected)

	return app
}

// registerAndLogin creates the account and returns a valid token.
func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "testuser",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok)
	return token
}

// doJSON issues a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app := setupApp(t, nil)

	creds := map[string]string{"username": "testuser", "password": "password123"}

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", creds)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	// Duplicate registration conflicts.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", creds)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Short password is rejected before any store access.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "otheruser", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", creds)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	// Wrong password and unknown user produce the same response.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "testuser", "password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongBody := decodeBody(t, resp)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "ghostuser", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	unknownBody := decodeBody(t, resp)
	assert.Equal(t, wrongBody["message"], unknownBody["message"])
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := setupApp(t, nil)

	// No Authorization header.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/weights", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	resp.Body.Close()

	// Expired token signed with the right secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"username": "testuser",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredToken, _ := expired.SignedString([]byte(testJWTSecret))
	resp = doJSON(t, app, http.MethodGet, "/api/v1/weights", expiredToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/analysis", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestGetSelf(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "testuser", body["username"])
	// The password hash never leaves the server.
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
}

func TestWeightUpsertFlow(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/weights", token, map[string]interface{}{
		"date": "2024-01-01", "value": 80.5,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	firstID := body["entry"].(map[string]interface{})["id"].(string)

	// Second create for the same date updates the first row.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/weights", token, map[string]interface{}{
		"date": "2024-01-01", "value": 81.0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	entry := body["entry"].(map[string]interface{})
	assert.Equal(t, firstID, entry["id"])
	assert.Equal(t, 81.0, entry["value"])

	resp = doJSON(t, app, http.MethodGet, "/api/v1/weights", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	resp.Body.Close()
	assert.Len(t, entries, 1)
}

func TestWeightValidationBoundaries(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	cases := []struct {
		value      float64
		wantStatus int
	}{
		{0, http.StatusBadRequest},
		{500.01, http.StatusBadRequest},
		{500, http.StatusCreated},
	}
	for _, tc := range cases {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/weights", token, map[string]interface{}{
			"date": "2024-01-01", "value": tc.value,
		})
		assert.Equalf(t, tc.wantStatus, resp.StatusCode, "value %v", tc.value)
		resp.Body.Close()
	}

	// Malformed date is rejected before any store access.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/weights", token, map[string]interface{}{
		"date": "01/02/2024", "value": 80,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestMeasurementPartialUpsert(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/measurements", token, map[string]interface{}{
		"date": "2024-01-05", "waist": 85.0, "neck": 40.0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	id := body["measurement"].(map[string]interface{})["id"].(string)

	// Upsert with only waist: neck keeps its value.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/measurements", token, map[string]interface{}{
		"date": "2024-01-05", "waist": 84.0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/measurements/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)
	assert.Equal(t, 84.0, got["waist"])
	assert.Equal(t, 40.0, got["neck"])
}

func TestWorkoutCRUD(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	payload := map[string]interface{}{
		"date": "2024-01-01", "exercise": "Squat", "sets": 4, "reps": 8, "load": 100.0,
	}

	resp := doJSON(t, app, http.MethodPost, "/api/v1/workouts", token, payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeBody(t, resp)["workout"].(map[string]interface{})

	// An identical payload yields a distinct row.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/workouts", token, payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	second := decodeBody(t, resp)["workout"].(map[string]interface{})
	assert.NotEqual(t, first["id"], second["id"])

	id := first["id"].(string)
	resp = doJSON(t, app, http.MethodPut, "/api/v1/workouts/"+id, token, map[string]interface{}{
		"date": "2024-01-01", "exercise": "Front squat", "sets": 3, "reps": 5,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/workouts/"+id, token, nil)
	got := decodeBody(t, resp)
	assert.Equal(t, "Front squat", got["exercise"])
	// Full-replace semantics: the omitted load is cleared.
	assert.Nil(t, got["load"])

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/workouts/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/workouts/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/v1/workouts/missing-id", token, map[string]interface{}{
		"date": "2024-01-01", "exercise": "Row", "sets": 3, "reps": 10,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSupplementAndJournalCRUD(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/supplements", token, map[string]interface{}{
		"name": "Creatine", "dose": "5g", "frequency": "1x/day",
		"start_date": "2024-03-01", "end_date": "2024-01-01",
	})
	// end before start is stored as given, not rejected.
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/journal-entries", token, map[string]interface{}{
		"date": "2024-01-01", "text": "felt strong", "mood": 8, "sleep_hours": 7.5,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := decodeBody(t, resp)["entry"].(map[string]interface{})

	resp = doJSON(t, app, http.MethodGet, "/api/v1/journal-entries/"+entry["id"].(string), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)
	assert.Equal(t, "felt strong", got["text"])
	assert.Equal(t, 8.0, got["mood"])

	// Sleep rating beyond range is rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/journal-entries", token, map[string]interface{}{
		"date": "2024-01-01", "text": "bad night", "sleep_quality": 11,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRoutineUpsertByName(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/routines", token, map[string]interface{}{
		"name": "Push day", "exercises": `["Bench","OHP"]`,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeBody(t, resp)["routine"].(map[string]interface{})
	assert.NotEmpty(t, first["updated_at"])

	resp = doJSON(t, app, http.MethodPost, "/api/v1/routines", token, map[string]interface{}{
		"name": "Push day", "exercises": `["Bench","OHP","Dips"]`,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeBody(t, resp)["routine"].(map[string]interface{})
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, `["Bench","OHP","Dips"]`, second["exercises"])
}

func TestExportCSV(t *testing.T) {
	app := setupApp(t, nil)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/weights", token, map[string]interface{}{
		"date": "2024-01-01", "value": 80.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/v1/measurements", token, map[string]interface{}{
		"date": "2024-01-02", "waist": 85.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/export/csv", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	expected := "date,weight,waist,neck,shoulders,chest,navel,hips," +
		"left_biceps,right_biceps,left_thigh,right_thigh,left_calf,right_calf\n" +
		"2024-01-01,80.5,,,,,,,,,,,,\n" +
		"2024-01-02,,85,,,,,,,,,,,\n"
	assert.Equal(t, expected, string(data))
}

func TestAnalysisPassthrough(t *testing.T) {
	var gotInstruction string
	generator := &stubGenerator{fn: func(_ context.Context, payload []byte, instruction string) (string, error) {
		gotInstruction = instruction
		return "You are making progress.", nil
	}}
	app := setupApp(t, generator)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/weights", token, map[string]interface{}{
		"date": "2024-01-01", "value": 80.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/analysis", token, map[string]interface{}{
		"prompt": "How am I doing?",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "You are making progress.", body["analysis"])
	assert.Equal(t, "How am I doing?", gotInstruction)
	counts := body["counts"].(map[string]interface{})
	assert.Equal(t, 1.0, counts["weights"])
	assert.Equal(t, 0.0, counts["workouts"])

	// Missing body falls back to the default instruction.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/analysis", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, services.DefaultAnalysisInstruction, gotInstruction)
}

func TestAnalysisUpstreamFailure(t *testing.T) {
	generator := &stubGenerator{fn: func(context.Context, []byte, string) (string, error) {
		return "", fmt.Errorf("dial tcp: connection refused")
	}}
	app := setupApp(t, generator)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/analysis", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()
}

package aggregate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verdant/internal/api"
	"verdant/internal/models"
)

// fakeServer routes the handful of endpoints the aggregate service hits and
// records mutation bodies for assertions.
type fakeServer struct {
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	careLogs []map[string]any
}

func newFakeServer() *fakeServer {
	return &fakeServer{handlers: map[string]http.HandlerFunc{}}
}

func (f *fakeServer) handle(method, path string, h http.HandlerFunc) {
	f.handlers[method+" "+path] = h
}

func (f *fakeServer) respond(path, body string) {
	f.handle(http.MethodGet, path, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	})
}

func (f *fakeServer) fail(path string, status int) {
	f.handle(http.MethodGet, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, `{"error":"boom"}`)
	})
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == "/plant-care" {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.careLogs = append(f.careLogs, body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"message":"Care logged"}`)
		return
	}
	if h, ok := f.handlers[r.Method+" "+r.URL.Path]; ok {
		h(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, `{"error":"not found"}`)
}

func (f *fakeServer) loggedCare() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.careLogs...)
}

func newService(t *testing.T, fake *fakeServer) (*Service, func()) {
	t.Helper()
	srv := httptest.NewServer(fake)
	client := api.New(srv.URL)
	return New(client, nil), srv.Close
}

func TestCareTypesUnionsBothTiers(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/care-types/default", `{"care_types":[{"id":1,"user_id":null,"name":"Watering"},{"id":2,"user_id":null,"name":"Fertilizing"}]}`)
	fake.respond("/care-types/user", `{"care_types":[{"id":10,"user_id":3,"name":"Misting"}]}`)
	svc, done := newService(t, fake)
	defer done()

	types, err := svc.CareTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "Watering", types[0].Name)
	assert.Equal(t, "Misting", types[2].Name)
	assert.False(t, types[2].IsDefault())
}

func TestCareTypesUserTierDegrades(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/care-types/default", `{"care_types":[{"id":1,"user_id":null,"name":"Watering"}]}`)
	fake.fail("/care-types/user", http.StatusInternalServerError)
	svc, done := newService(t, fake)
	defer done()

	types, err := svc.CareTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Watering", types[0].Name)
}

func TestCareTypesDefaultsArePrimary(t *testing.T) {
	fake := newFakeServer()
	fake.fail("/care-types/default", http.StatusInternalServerError)
	fake.respond("/care-types/user", `{"care_types":[]}`)
	svc, done := newService(t, fake)
	defer done()

	_, err := svc.CareTypes(context.Background())
	require.Error(t, err)
}

func TestLoadDashboard(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/plants", `{"plants":[{"id":1,"nickname":"Fern","species_id":4},{"id":2,"nickname":"Monstera","species_id":4}]}`)
	fake.respond("/plant-care/care-plans/upcoming", `{"care_logs":[{"plant_id":1,"plant_nickname":"Fern","care_type":"Watering","due_date":"2024-06-01","days_until_due":0}]}`)
	fake.respond("/plant-care/plant/1", `{"care_logs":[{"id":1,"plant_id":1,"care_type_id":9,"care_date":"2024-05-30"},{"id":2,"plant_id":1,"care_type_id":9,"care_date":"2024-06-01"}]}`)
	fake.respond("/plant-care/plant/2", `{"care_logs":[]}`)
	svc, done := newService(t, fake)
	defer done()

	data, err := svc.LoadDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, data.TotalPlants)
	assert.Equal(t, 1, data.SpeciesTracked, "duplicate species ids collapse")
	assert.Equal(t, 1, data.UpcomingCount)
	require.Len(t, data.PastLogs, 2)
	assert.Equal(t, 2, data.PastLogs[0].ID, "logs sorted newest first")
}

func TestLoadDashboardSecondariesDegrade(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/plants", `{"plants":[{"id":1,"nickname":"Fern"},{"id":2,"nickname":"Monstera"}]}`)
	fake.fail("/plant-care/care-plans/upcoming", http.StatusInternalServerError)
	fake.fail("/plant-care/plant/1", http.StatusInternalServerError)
	fake.fail("/plant-care/plant/2", http.StatusInternalServerError)
	svc, done := newService(t, fake)
	defer done()

	data, err := svc.LoadDashboard(context.Background())
	require.NoError(t, err, "secondary failures must not fail the load")
	assert.Equal(t, 2, data.TotalPlants)
	assert.Empty(t, data.Upcoming)
	assert.Empty(t, data.PastLogs)
}

func TestLoadDashboardPlantsArePrimary(t *testing.T) {
	fake := newFakeServer()
	fake.fail("/plants", http.StatusInternalServerError)
	svc, done := newService(t, fake)
	defer done()

	_, err := svc.LoadDashboard(context.Background())
	require.Error(t, err)
}

func TestLoadCareTypePagePartialFailure(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/care-types/default", `{"care_types":[{"id":1,"user_id":null,"name":"Watering"},{"id":2,"user_id":null,"name":"Fertilizing"}]}`)
	fake.fail("/care-types/user", http.StatusInternalServerError)
	svc, done := newService(t, fake)
	defer done()

	page, err := svc.LoadCareTypePage(context.Background())
	require.NoError(t, err)
	assert.Len(t, page.Defaults, 2)
	assert.Empty(t, page.UserTypes)
}

func TestLoadCarePlanPagePartitions(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/plant-care/care-plans", `[{"id":1,"plant_id":1,"care_type_id":9,"active":true},{"id":2,"plant_id":1,"care_type_id":9,"active":false},{"id":3,"plant_id":2,"care_type_id":9,"active":true}]`)
	fake.respond("/plants", `{"plants":[{"id":1,"nickname":"Fern"},{"id":2,"nickname":"Monstera"}]}`)
	fake.respond("/care-types/default", `{"care_types":[{"id":9,"user_id":null,"name":"Watering"}]}`)
	fake.respond("/care-types/user", `{"care_types":[]}`)
	svc, done := newService(t, fake)
	defer done()

	page, err := svc.LoadCarePlanPage(context.Background())
	require.NoError(t, err)
	assert.Len(t, page.Active, 2)
	assert.Len(t, page.Inactive, 1)
	assert.Equal(t, 2, page.Inactive[0].ID)
}

func TestLoadCarePlanPageEmptyPlansDegrade(t *testing.T) {
	fake := newFakeServer()
	// the plans endpoint 404s for a user with none; handled by the client
	fake.respond("/plants", `{"plants":[]}`)
	fake.respond("/care-types/default", `{"care_types":[]}`)
	fake.respond("/care-types/user", `{"care_types":[]}`)
	svc, done := newService(t, fake)
	defer done()

	page, err := svc.LoadCarePlanPage(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page.Active)
	assert.Empty(t, page.Inactive)
}

func TestMarkUpcomingDone(t *testing.T) {
	fake := newFakeServer()
	svc, done := newService(t, fake)
	defer done()

	entry := models.UpcomingCareLog{
		PlantID:       1,
		PlantNickname: "Fern",
		CareType:      "Watering",
		DueDate:       models.Today(),
	}
	careTypes := []models.CareType{{ID: 9, Name: "Watering"}}

	err := svc.MarkUpcomingDone(context.Background(), entry, careTypes)
	require.NoError(t, err)

	logged := fake.loggedCare()
	require.Len(t, logged, 1)
	assert.Equal(t, float64(1), logged[0]["plant_id"])
	assert.Equal(t, float64(9), logged[0]["care_type_id"])
	assert.Equal(t, models.Today().String(), logged[0]["care_date"])
}

func TestMarkUpcomingDoneUnknownCareType(t *testing.T) {
	fake := newFakeServer()
	svc, done := newService(t, fake)
	defer done()

	entry := models.UpcomingCareLog{PlantID: 1, CareType: "Pruning"}
	err := svc.MarkUpcomingDone(context.Background(), entry, []models.CareType{{ID: 9, Name: "Watering"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pruning")
	assert.Empty(t, fake.loggedCare(), "no log may be created when the name cannot resolve")
}

func TestMarkUpcomingDoneCarriesNote(t *testing.T) {
	fake := newFakeServer()
	svc, done := newService(t, fake)
	defer done()

	entry := models.UpcomingCareLog{PlantID: 1, CareType: "Watering", Note: "use filtered water"}
	err := svc.MarkUpcomingDone(context.Background(), entry, []models.CareType{{ID: 9, Name: "Watering"}})
	require.NoError(t, err)

	logged := fake.loggedCare()
	require.Len(t, logged, 1)
	assert.Equal(t, "use filtered water", logged[0]["note"])
}

func TestLogCareForPlants(t *testing.T) {
	fake := newFakeServer()
	svc, done := newService(t, fake)
	defer done()

	err := svc.LogCareForPlants(context.Background(), []int{1, 2, 3}, 9, "")
	require.NoError(t, err)

	logged := fake.loggedCare()
	require.Len(t, logged, 3)
	seen := map[float64]bool{}
	for _, body := range logged {
		assert.Equal(t, float64(9), body["care_type_id"])
		seen[body["plant_id"].(float64)] = true
	}
	assert.Len(t, seen, 3, "each plant gets its own log")
}

func TestPastCareLogsFlattens(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/plants", `{"plants":[{"id":1,"nickname":"Fern"},{"id":2,"nickname":"Monstera"}]}`)
	fake.respond("/plant-care/plant/1", `{"care_logs":[{"id":1,"plant_id":1,"care_type_id":9,"care_date":"2024-06-01"}]}`)
	fake.respond("/plant-care/plant/2", `{"care_logs":[{"id":2,"plant_id":2,"care_type_id":9,"care_date":"2024-06-02"},{"id":3,"plant_id":2,"care_type_id":9,"care_date":"2024-06-03"}]}`)
	svc, done := newService(t, fake)
	defer done()

	logs, err := svc.PastCareLogs(context.Background())
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verdant/internal/aggregate"
	"verdant/internal/api"
	"verdant/internal/models"
	"verdant/internal/session"
)

// fakeBackend is a minimal in-memory stand-in for the plant-care server,
// covering the endpoints the full login → add plant → plan → log → dashboard
// workflow touches.
type fakeBackend struct {
	mu       sync.Mutex
	token    string
	plants   []models.Plant
	plans    []models.CarePlan
	logs     []models.CareLog
	upcoming []models.UpcomingCareLog
	nextID   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{token: "test-token", nextID: 1}
}

func (f *fakeBackend) id() int {
	n := f.nextID
	f.nextID++
	return n
}

func (f *fakeBackend) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+f.token
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodPost && r.URL.Path == "/auth/login" {
		var creds models.Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"Invalid email or password"}`)
			return
		}
		fmt.Fprintf(w, `{"access_token":%q,"user":{"id":1,"username":"sam","email":%q}}`, f.token, creds.Email)
		return
	}

	if !f.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"Missing or invalid token"}`)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/plants":
		json.NewEncoder(w).Encode(map[string]any{"plants": f.plants})
	case r.Method == http.MethodPost && r.URL.Path == "/plants":
		var np models.NewPlant
		json.NewDecoder(r.Body).Decode(&np)
		plant := models.Plant{ID: f.id(), Nickname: np.Nickname, SpeciesID: np.SpeciesID, Location: np.Location}
		f.plants = append(f.plants, plant)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"message": "Plant created", "plant": plant})
	case r.Method == http.MethodGet && r.URL.Path == "/care-types/default":
		fmt.Fprint(w, `{"care_types":[{"id":9,"user_id":null,"name":"Watering"}]}`)
	case r.Method == http.MethodGet && r.URL.Path == "/care-types/user":
		fmt.Fprint(w, `{"care_types":[]}`)
	case r.Method == http.MethodGet && r.URL.Path == "/plant-care/care-plans":
		if len(f.plans) == 0 {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"No care plans found"}`)
			return
		}
		json.NewEncoder(w).Encode(f.plans)
	case r.Method == http.MethodPost && r.URL.Path == "/plant-care/care-plans":
		var np models.NewCarePlan
		json.NewDecoder(r.Body).Decode(&np)
		active := true
		if np.Active != nil {
			active = *np.Active
		}
		plan := models.CarePlan{
			ID: f.id(), PlantID: np.PlantID, CareTypeID: np.CareTypeID,
			StartDate: np.StartDate, FrequencyDays: np.FrequencyDays, Active: active,
		}
		f.plans = append(f.plans, plan)
		// a new active plan surfaces on the schedule immediately
		f.upcoming = append(f.upcoming, models.UpcomingCareLog{
			PlantID:       np.PlantID,
			PlantNickname: f.nickname(np.PlantID),
			CareType:      "Watering",
			DueDate:       models.Today(),
		})
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"message":"Care plan created"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/plant-care/care-plans/upcoming":
		json.NewEncoder(w).Encode(map[string]any{"care_logs": f.upcoming})
	case r.Method == http.MethodPost && r.URL.Path == "/plant-care":
		var nl models.NewCareLog
		json.NewDecoder(r.Body).Decode(&nl)
		log := models.CareLog{ID: f.id(), PlantID: nl.PlantID, CareTypeID: nl.CareTypeID, Note: nl.Note}
		if nl.CareDate != nil {
			log.CareDate = *nl.CareDate
		} else {
			log.CareDate = models.Today()
		}
		f.logs = append(f.logs, log)
		// logging care consumes the matching schedule entry
		kept := f.upcoming[:0]
		for _, e := range f.upcoming {
			if e.PlantID != nl.PlantID {
				kept = append(kept, e)
			}
		}
		f.upcoming = kept
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"message":"Care logged"}`)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/plant-care/plant/"):
		var plantID int
		fmt.Sscanf(r.URL.Path, "/plant-care/plant/%d", &plantID)
		logs := []models.CareLog{}
		for _, l := range f.logs {
			if l.PlantID == plantID {
				logs = append(logs, l)
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"care_logs": logs})
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"not found"}`)
	}
}

func (f *fakeBackend) nickname(plantID int) string {
	for _, p := range f.plants {
		if p.ID == plantID {
			return p.Nickname
		}
	}
	return ""
}

func TestEndToEndWorkflow(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	defer srv.Close()

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	client := api.New(srv.URL,
		api.WithTokenSource(store.Token),
		api.WithUnauthorizedHandler(func() { store.Clear() }),
	)
	agg := aggregate.New(client, nil)
	ctx := context.Background()

	// 1. A wrong password fails without touching the session.
	_, err = client.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong"})
	require.Error(t, err)
	assert.False(t, store.LoggedIn())

	// 2. Log in and persist the session.
	resp, err := client.Login(ctx, models.Credentials{Email: "a@b.com", Password: "correct"})
	require.NoError(t, err)
	require.NoError(t, store.Save(session.Session{Server: srv.URL, Token: resp.AccessToken, User: resp.User}))
	require.True(t, store.LoggedIn())

	// 3. Add a plant.
	plant, err := client.CreatePlant(ctx, models.NewPlant{Nickname: "Fern"})
	require.NoError(t, err)
	assert.Equal(t, "Fern", plant.Nickname)

	// 4. Create an active watering plan for it.
	freq := 3
	err = client.CreateCarePlan(ctx, models.NewCarePlan{PlantID: plant.ID, CareTypeID: 9, FrequencyDays: &freq})
	require.NoError(t, err)

	// 5. The dashboard now shows the plant and its due entry.
	data, err := agg.LoadDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, data.TotalPlants)
	require.Len(t, data.Upcoming, 1)
	assert.Equal(t, "Fern", data.Upcoming[0].PlantNickname)

	// 6. Mark the entry done; it resolves the type name and logs care.
	careTypes, err := agg.CareTypes(ctx)
	require.NoError(t, err)
	err = agg.MarkUpcomingDone(ctx, data.Upcoming[0], careTypes)
	require.NoError(t, err)

	// 7. The reloaded dashboard reflects the completion.
	data, err = agg.LoadDashboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, data.Upcoming)
	require.Len(t, data.PastLogs, 1)
	assert.Equal(t, plant.ID, data.PastLogs[0].PlantID)
	assert.Equal(t, models.Today(), data.PastLogs[0].CareDate)
}

func TestSessionExpiryClearsToken(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	defer srv.Close()

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, store.Save(session.Session{Token: "stale-token"}))

	client := api.New(srv.URL,
		api.WithTokenSource(store.Token),
		api.WithUnauthorizedHandler(func() { store.Clear() }),
	)

	_, err = client.Plants(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.False(t, store.LoggedIn(), "401 must clear the persisted session")
}

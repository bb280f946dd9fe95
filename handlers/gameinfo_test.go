package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mapleleafu/cheesechase/models"
	"github.com/mapleleafu/cheesechase/repository"
)

type fakeHistory struct {
	mu      sync.Mutex
	matches []models.MatchSummary
	err     error
	limit   int
}

func (f *fakeHistory) RecentMatches(ctx context.Context, limit int) ([]models.MatchSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limit = limit
	return f.matches, f.err
}

func (f *fakeHistory) lastLimit() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.limit
}

type fakeJournal struct {
	records map[string]models.MatchRecord
}

func (f *fakeJournal) FindMatch(ctx context.Context, id string) (models.MatchRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return models.MatchRecord{}, repository.ErrMatchNotFound
	}
	return rec, nil
}

func get(t *testing.T, srv *httptest.Server, path string) (int, models.ApiResponse) {
	t.Helper()
	res, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer res.Body.Close()
	var body models.ApiResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return res.StatusCode, body
}

func TestHealth(t *testing.T) {
	_, srv := startTestServer(t, nil, nil)
	status, body := get(t, srv, "/health")
	if status != http.StatusOK || !body.Success {
		t.Fatalf("health = %d %+v", status, body)
	}
}

func TestHistoryEndpointsWithoutStores(t *testing.T) {
	_, srv := startTestServer(t, nil, nil)
	for _, path := range []string{"/api/matches", "/api/matches/" + uuid.NewString()} {
		status, body := get(t, srv, path)
		if status != http.StatusServiceUnavailable || body.Success {
			t.Fatalf("%s = %d %+v, want 503", path, status, body)
		}
	}
}

func TestFetchMatches(t *testing.T) {
	finished := time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)
	history := &fakeHistory{matches: []models.MatchSummary{
		{ID: "m1", StartedAt: finished.Add(-5 * time.Minute), FinishedAt: finished, PlayerIDs: []string{"a", "b"}, Winner: "cats"},
	}}
	_, srv := startTestServer(t, history, nil)

	status, body := get(t, srv, "/api/matches")
	if status != http.StatusOK || !body.Success {
		t.Fatalf("matches = %d %+v", status, body)
	}
	if got := history.lastLimit(); got != defaultMatchLimit {
		t.Fatalf("limit = %d, want default %d", got, defaultMatchLimit)
	}
	list, ok := body.Data.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("data = %#v, want one match", body.Data)
	}

	get(t, srv, "/api/matches?limit=5")
	if got := history.lastLimit(); got != 5 {
		t.Fatalf("limit = %d, want 5", got)
	}

	for _, bad := range []string{"0", "-1", "abc", "101"} {
		status, _ := get(t, srv, "/api/matches?limit="+bad)
		if status != http.StatusBadRequest {
			t.Fatalf("limit=%s status = %d, want 400", bad, status)
		}
	}

	history.mu.Lock()
	history.err = errors.New("connection reset")
	history.mu.Unlock()
	status, body = get(t, srv, "/api/matches")
	if status != http.StatusInternalServerError || body.Success {
		t.Fatalf("store failure = %d %+v, want 500", status, body)
	}
}

func TestFetchMatchEvents(t *testing.T) {
	id := uuid.NewString()
	journal := &fakeJournal{records: map[string]models.MatchRecord{
		id: {ID: id, Winner: "mice", Events: []models.MatchEvent{
			{PlayerID: "server", Action: models.ActionStart, Timestamp: 1},
			{PlayerID: "server", Action: models.ActionEnd, Timestamp: 2},
		}},
	}}
	_, srv := startTestServer(t, nil, journal)

	status, body := get(t, srv, "/api/matches/"+id)
	if status != http.StatusOK || !body.Success {
		t.Fatalf("match = %d %+v", status, body)
	}
	data, _ := body.Data.(map[string]any)
	if data["winner"] != "mice" {
		t.Fatalf("data = %#v", body.Data)
	}

	if status, _ := get(t, srv, "/api/matches/not-a-uuid"); status != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", status)
	}
	if status, _ := get(t, srv, "/api/matches/"+uuid.NewString()); status != http.StatusNotFound {
		t.Fatalf("unknown id status = %d, want 404", status)
	}
}

func TestLobbyAfterHubStopped(t *testing.T) {
	hub := NewHub(HubConfig{Logger: discardLogger()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Run(ctx)

	if _, err := hub.Lobby(context.Background()); !errors.Is(err, ErrHubStopped) {
		t.Fatalf("Lobby on a stopped hub = %v, want ErrHubStopped", err)
	}
}

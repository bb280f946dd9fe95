package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/mapleleafu/cheesechase/models"
)

type memSink struct {
	name    string
	err     error
	started chan string
	release chan struct{}

	mu    sync.Mutex
	saved []string
}

func (s *memSink) Name() string { return s.name }

func (s *memSink) SaveMatch(ctx context.Context, rec models.MatchRecord) error {
	if s.started != nil {
		s.started <- rec.ID
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, rec.ID)
	return nil
}

func (s *memSink) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.saved...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorderWritesEverySinkAndDrainsOnClose(t *testing.T) {
	a := &memSink{name: "a"}
	b := &memSink{name: "b"}
	broken := &memSink{name: "broken", err: errors.New("connection refused")}
	r := NewRecorder(8, discardLogger(), a, broken, b)

	for _, id := range []string{"m1", "m2", "m3"} {
		r.Record(models.MatchRecord{ID: id})
	}
	r.Close()

	for _, s := range []*memSink{a, b} {
		got := s.ids()
		if len(got) != 3 || got[0] != "m1" || got[2] != "m3" {
			t.Fatalf("sink %s saved %v, want m1..m3 in order", s.name, got)
		}
	}
}

func TestRecorderDropsWhenQueueIsFull(t *testing.T) {
	sink := &memSink{name: "slow", started: make(chan string, 4), release: make(chan struct{})}
	r := NewRecorder(1, discardLogger(), sink)

	r.Record(models.MatchRecord{ID: "first"})
	if id := <-sink.started; id != "first" {
		t.Fatalf("sink started on %q", id)
	}
	r.Record(models.MatchRecord{ID: "queued"})
	r.Record(models.MatchRecord{ID: "dropped"})

	close(sink.release)
	r.Close()

	got := sink.ids()
	if len(got) != 2 || got[0] != "first" || got[1] != "queued" {
		t.Fatalf("saved %v, want first and queued only", got)
	}
}

func TestMatchRecordSummary(t *testing.T) {
	rec := models.MatchRecord{
		ID:        "m",
		PlayerIDs: []string{"a", "b"},
		Winner:    "cats",
		Events:    []models.MatchEvent{{Action: models.ActionStart}},
	}
	s := rec.Summary()
	if s.ID != "m" || s.Winner != "cats" || len(s.PlayerIDs) != 2 {
		t.Fatalf("summary = %+v", s)
	}
}

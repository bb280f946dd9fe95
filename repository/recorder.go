package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mapleleafu/cheesechase/models"
)

const sinkTimeout = 5 * time.Second

// MatchSink is somewhere a finished match gets written.
type MatchSink interface {
	Name() string
	SaveMatch(ctx context.Context, rec models.MatchRecord) error
}

// Recorder writes finished matches to its sinks from a background goroutine
// so the game loop never waits on a database.
type Recorder struct {
	queue  chan models.MatchRecord
	sinks  []MatchSink
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewRecorder(queueSize int, logger *slog.Logger, sinks ...MatchSink) *Recorder {
	r := &Recorder{
		queue:  make(chan models.MatchRecord, queueSize),
		sinks:  sinks,
		logger: logger,
	}
	r.wg.Add(1)
	go r.run()
	return r
}

// Record queues rec. When the queue is full the record is dropped.
func (r *Recorder) Record(rec models.MatchRecord) {
	select {
	case r.queue <- rec:
	default:
		r.logger.Warn("recorder queue full, dropping match", "match", rec.ID)
	}
}

// Close stops accepting records and waits for the queued ones to be written.
func (r *Recorder) Close() {
	close(r.queue)
	r.wg.Wait()
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for rec := range r.queue {
		for _, sink := range r.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
			err := sink.SaveMatch(ctx, rec)
			cancel()
			if err != nil {
				r.logger.Error("failed to save match", "sink", sink.Name(), "match", rec.ID, "err", err)
				continue
			}
			r.logger.Info("match saved", "sink", sink.Name(), "match", rec.ID, "events", len(rec.Events))
		}
	}
}

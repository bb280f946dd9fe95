package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mapleleafu/cheesechase/models"
	"github.com/mapleleafu/cheesechase/repository"
	"github.com/mapleleafu/cheesechase/responses"
	"github.com/mapleleafu/cheesechase/utils"
)

const (
	defaultMatchLimit = 20
	maxMatchLimit     = 100
)

// MatchHistory lists finished match summaries, newest first.
type MatchHistory interface {
	RecentMatches(ctx context.Context, limit int) ([]models.MatchSummary, error)
}

// MatchJournal loads the full event journal of one match.
type MatchJournal interface {
	FindMatch(ctx context.Context, id string) (models.MatchRecord, error)
}

// InfoHandler serves the read-only HTTP endpoints. history and journal may be
// nil when the matching store is not configured.
type InfoHandler struct {
	hub     *Hub
	history MatchHistory
	journal MatchJournal
	logger  *slog.Logger
}

func NewInfoHandler(hub *Hub, history MatchHistory, journal MatchJournal, logger *slog.Logger) *InfoHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InfoHandler{hub: hub, history: history, journal: journal, logger: logger}
}

func (i *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.HandleSuccess(w, models.SuccessResponse(map[string]string{"status": "ok"}))
}

func (i *InfoHandler) FetchLobby(w http.ResponseWriter, r *http.Request) {
	info, err := i.hub.Lobby(r.Context())
	if err != nil {
		i.logger.Warn("lobby query failed", "err", err)
		utils.HandleError(w, responses.ServiceUnavailableError{Msg: "Game server is not running."})
		return
	}
	utils.HandleSuccess(w, models.SuccessResponse(info))
}

func (i *InfoHandler) FetchMatches(w http.ResponseWriter, r *http.Request) {
	if i.history == nil {
		utils.HandleError(w, responses.ServiceUnavailableError{Msg: "Match history is not configured."})
		return
	}

	limit := defaultMatchLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxMatchLimit {
			utils.HandleError(w, responses.BadRequestError{Msg: "limit must be between 1 and 100."})
			return
		}
		limit = n
	}

	matches, err := i.history.RecentMatches(r.Context(), limit)
	if err != nil {
		i.logger.Error("error fetching matches", "err", err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to fetch matches."})
		return
	}
	if matches == nil {
		matches = []models.MatchSummary{}
	}
	utils.HandleSuccess(w, models.SuccessResponse(matches))
}

func (i *InfoHandler) FetchMatchEvents(w http.ResponseWriter, r *http.Request) {
	if i.journal == nil {
		utils.HandleError(w, responses.ServiceUnavailableError{Msg: "Match journal is not configured."})
		return
	}

	matchID := mux.Vars(r)["matchID"]
	if _, err := uuid.Parse(matchID); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid matchID format."})
		return
	}

	rec, err := i.journal.FindMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			utils.HandleError(w, responses.NotFoundError{Msg: "Match not found."})
			return
		}
		i.logger.Error("error fetching match journal", "match", matchID, "err", err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Error fetching match."})
		return
	}
	utils.HandleSuccess(w, models.SuccessResponse(rec))
}

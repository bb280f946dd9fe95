package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mapleleafu/cheesechase/middleware"
)

func NewRouter(hub *Hub, info *InfoHandler, allowedOrigin string, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.HandleFunc("/ws", hub.WsHandler)
	r.HandleFunc("/health", info.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS(allowedOrigin))
	api.HandleFunc("/lobby", info.FetchLobby).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/matches", info.FetchMatches).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/matches/{matchID}", info.FetchMatchEvents).Methods(http.MethodGet, http.MethodOptions)
	return r
}

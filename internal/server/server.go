package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/uptrace/bun"

	"github.com/binay-tripathy/CareerTree/config"
	"github.com/binay-tripathy/CareerTree/internal/connection"
	"github.com/binay-tripathy/CareerTree/internal/message"
	"github.com/binay-tripathy/CareerTree/internal/post"
	"github.com/binay-tripathy/CareerTree/internal/user"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

type Server struct {
	cfg    config.Config
	db     *bun.DB
	logger *logger.Logger

	auth        *AuthHandler
	connections *ConnectionHandler
	messages    *MessageHandler
	posts       *PostHandler
}

func New(
	cfg config.Config,
	db *bun.DB,
	log *logger.Logger,
	users user.UserUsecase,
	connections connection.ConnectionUsecase,
	messages message.MessageUsecase,
	posts post.PostUsecase,
) *Server {
	return &Server{
		cfg:         cfg,
		db:          db,
		logger:      log,
		auth:        NewAuthHandler(users),
		connections: NewConnectionHandler(connections),
		messages:    NewMessageHandler(messages),
		posts:       NewPostHandler(posts),
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		if err := s.db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public auth endpoints
	api.HandleFunc("/auth/register", s.auth.Register).Methods("POST")
	api.HandleFunc("/auth/login", s.auth.Login).Methods("POST")

	// Everything else requires a valid bearer token
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(s.cfg))

	authed.HandleFunc("/auth/me", s.auth.Me).Methods("GET")
	authed.HandleFunc("/auth/me", s.auth.UpdateProfile).Methods("PUT")
	authed.HandleFunc("/users/search", s.auth.Search).Methods("GET")

	authed.HandleFunc("/connections/request/{id}", s.connections.SendRequest).Methods("POST")
	authed.HandleFunc("/connections/accept/{id}", s.connections.Accept).Methods("POST")
	authed.HandleFunc("/connections/reject/{id}", s.connections.Reject).Methods("POST")
	authed.HandleFunc("/connections/cancel/{id}", s.connections.Cancel).Methods("DELETE")
	authed.HandleFunc("/connections/remove/{id}", s.connections.Remove).Methods("DELETE")
	authed.HandleFunc("/connections/my-connections", s.connections.MyConnections).Methods("GET")
	authed.HandleFunc("/connections/status/{id}", s.connections.Status).Methods("GET")

	authed.HandleFunc("/messages/send", s.messages.Send).Methods("POST")
	authed.HandleFunc("/messages/conversation/{id}", s.messages.Conversation).Methods("GET")
	authed.HandleFunc("/messages/conversations", s.messages.Conversations).Methods("GET")
	authed.HandleFunc("/messages/mark-read/{id}", s.messages.MarkRead).Methods("PUT")

	authed.HandleFunc("/posts", s.posts.Create).Methods("POST")
	authed.HandleFunc("/posts", s.posts.Feed).Methods("GET")
	authed.HandleFunc("/posts/{id}/like", s.posts.ToggleLike).Methods("POST")
	authed.HandleFunc("/posts/{id}/comment", s.posts.Comment).Methods("POST")

	return r
}

func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	s.logger.Info("server starting", "addr", addr, "env", s.cfg.Server.Environment)
	return http.ListenAndServe(addr, s.Router())
}

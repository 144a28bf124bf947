package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/binay-tripathy/CareerTree/internal/connection"
)

type ConnectionHandler struct {
	connections connection.ConnectionUsecase
}

func NewConnectionHandler(connections connection.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{connections: connections}
}

func pathUserID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func (h *ConnectionHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	targetID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.connections.SendRequest(r.Context(), callerID, targetID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "connection request sent successfully"})
}

func (h *ConnectionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	requesterID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.connections.Accept(r.Context(), callerID, requesterID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "connection request accepted"})
}

func (h *ConnectionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	requesterID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.connections.Reject(r.Context(), callerID, requesterID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "connection request rejected"})
}

func (h *ConnectionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	targetID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.connections.Cancel(r.Context(), callerID, targetID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "connection request cancelled"})
}

func (h *ConnectionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	targetID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.connections.Remove(r.Context(), callerID, targetID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "connection removed"})
}

func (h *ConnectionHandler) MyConnections(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	overview, err := h.connections.Overview(r.Context(), callerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

func (h *ConnectionHandler) Status(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	otherID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	status, err := h.connections.Status(r.Context(), callerID, otherID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

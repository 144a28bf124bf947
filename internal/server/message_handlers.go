package server

import (
	"encoding/json"
	"net/http"

	"github.com/binay-tripathy/CareerTree/internal/message"
)

type MessageHandler struct {
	messages message.MessageUsecase
}

func NewMessageHandler(messages message.MessageUsecase) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var cmd message.SendCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.messages.Send(r.Context(), callerID, cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	counterpartID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	history, err := h.messages.GetHistory(r.Context(), callerID, counterpartID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (h *MessageHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.messages.ListConversations(r.Context(), callerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	counterpartID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.messages.MarkRead(r.Context(), callerID, counterpartID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "messages marked as read"})
}

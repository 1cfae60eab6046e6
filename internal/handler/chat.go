// internal/handler/chat.go
package handler

import (
	"net/http"

	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// History handles GET /chat/{roomID}/messages. Live delivery goes over the
// websocket; this endpoint backfills on reconnect.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}

	roomID := chi.URLParam(r, "roomID")
	if roomID == "" {
		respondWithError(w, http.StatusBadRequest, "Room id is required")
		return
	}

	_, limit := pagination(r)
	messages, err := h.chatService.History(r.Context(), roomID, limit)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: messages})
}

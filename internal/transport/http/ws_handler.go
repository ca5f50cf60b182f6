package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"radio-quiz/internal/app"
	"radio-quiz/internal/domain"
)

// WSHandler presents the quiz to a browser over a websocket.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Selection string `json:"selection"`
}

type completedPayload struct {
	Score int `json:"score"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs the question/answer exchange until the client disconnects.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := func(msgType string, payload any) bool {
		if err := conn.WriteJSON(outboundMessage[any]{Type: msgType, Payload: payload}); err != nil {
			log.Printf("ws write error: %v", err)
			return false
		}
		return true
	}

	if !h.sendState(send) {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				if !send("error", errorPayload{Message: "invalid answer payload"}) {
					return
				}
				continue
			}
			selection, err := domain.ParseSelection(payload.Selection)
			if err != nil {
				if !send("error", errorPayload{Message: err.Error()}) {
					return
				}
				continue
			}
			result, err := h.service.Submit(r.Context(), selection)
			if err != nil {
				if !send("error", errorPayload{Message: err.Error()}) {
					return
				}
				continue
			}
			if !send("answerResult", result) || !h.sendState(send) {
				return
			}
		case "state":
			if !h.sendState(send) {
				return
			}
		default:
			if !send("error", errorPayload{Message: "unsupported message type"}) {
				return
			}
		}
	}
}

// sendState pushes the current question, or the final score once the quiz is over.
func (h *WSHandler) sendState(send func(string, any) bool) bool {
	if view, ok := h.service.Current(); ok {
		return send("question", view)
	}
	return send("completed", completedPayload{Score: h.service.Session().Score})
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"radio-quiz/internal/app"
	"radio-quiz/internal/domain"
	"radio-quiz/internal/infra/memory"
)

func TestWebSocketAnswerFlow(t *testing.T) {
	store := memory.NewProgressStore(domain.ProgressState{})
	service := app.NewQuizService(app.NewQuiz(sampleQuestions(), false, nil), store)
	service.Start(context.Background())
	conn, cleanup := dial(t, service)
	defer cleanup()

	var view domain.QuestionView
	decode(t, readNext(conn, t, "question"), &view)
	if view.Index != 0 || view.Total != 2 || view.Options[0] != "BA" {
		t.Fatalf("unexpected first question %+v", view)
	}

	answer(t, conn, "A")
	var result domain.AnswerResult
	decode(t, readNext(conn, t, "answerResult"), &result)
	if !result.Correct || result.Score != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	decode(t, readNext(conn, t, "question"), &view)
	if view.Index != 1 {
		t.Fatalf("expected second question, got %+v", view)
	}

	answer(t, conn, "B")
	decode(t, readNext(conn, t, "answerResult"), &result)
	if result.Correct || result.CorrectAnswer != "144-146MHz" || !result.Completed {
		t.Fatalf("unexpected result %+v", result)
	}
	var done completedPayload
	decode(t, readNext(conn, t, "completed"), &done)
	if done.Score != 1 {
		t.Fatalf("expected final score 1, got %d", done.Score)
	}

	if got := store.Load(context.Background()); got != (domain.ProgressState{CurrentIndex: 2, Score: 1}) {
		t.Fatalf("unexpected persisted progress %+v", got)
	}
}

func TestWebSocketRejectsBadSelection(t *testing.T) {
	service := app.NewQuizService(app.NewQuiz(sampleQuestions(), false, nil), memory.NewProgressStore(domain.ProgressState{}))
	service.Start(context.Background())
	conn, cleanup := dial(t, service)
	defer cleanup()

	readNext(conn, t, "question")
	answer(t, conn, "E")
	readNext(conn, t, "error")

	if err := conn.WriteJSON(map[string]any{"type": "skip"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readNext(conn, t, "error")

	if got := service.Session().CurrentIndex; got != 0 {
		t.Fatalf("expected no progress, got index %d", got)
	}
}

func TestWebSocketCompletedOnConnect(t *testing.T) {
	store := memory.NewProgressStore(domain.ProgressState{CurrentIndex: 5, Score: 2})
	service := app.NewQuizService(app.NewQuiz(sampleQuestions(), false, nil), store)
	service.Start(context.Background())
	conn, cleanup := dial(t, service)
	defer cleanup()

	var done completedPayload
	decode(t, readNext(conn, t, "completed"), &done)
	if done.Score != 2 {
		t.Fatalf("expected score 2, got %d", done.Score)
	}
}

func dial(t *testing.T, service *app.QuizService) (*websocket.Conn, func()) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", NewWSHandler(service).ServeWS)
	server := httptest.NewServer(mux)

	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		server.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func answer(t *testing.T, conn *websocket.Conn, selection string) {
	t.Helper()
	msg := map[string]any{
		"type":    "answer",
		"payload": map[string]any{"selection": selection},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write answer: %v", err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) json.RawMessage {
	t.Helper()
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (%s)", expect, msg.Type, msg.Payload)
	}
	return msg.Payload
}

func decode(t *testing.T, raw json.RawMessage, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
}

func sampleQuestions() []domain.QuestionRecord {
	return []domain.QuestionRecord{
		{
			ID:       "LK0001",
			Question: "What is the call sign prefix?",
			Options:  [domain.OptionCount]string{"BA", "BX", "BV", "VR"},
		},
		{
			ID:       "LK0003",
			Question: "Which band is 2m?",
			Options:  [domain.OptionCount]string{"144-146MHz", "430-440MHz", "50-54MHz", "28-29.7MHz"},
		},
	}
}

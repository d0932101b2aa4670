package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leetmentor/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"google.golang.org/genai"
)

type echoGenerator struct{}

func (echoGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	question := contents[0].Parts[0].Text
	if question == "quota" {
		return nil, services.ErrQuotaExhausted
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText("echo: "+question, genai.RoleModel)}},
	}, nil
}

func newChatServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	assistant := services.NewAssistant(echoGenerator{}, "test-model",
		services.WithSleep(func(context.Context, time.Duration) error { return nil }))
	router := gin.New()
	router.GET("/ws/chat", ChatHandler(assistant, services.DefaultQueryOptions(), []string{"http://localhost:5173"}))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat"
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return websocket.DefaultDialer.Dial(wsURL, header)
}

func TestChatHandler(t *testing.T) {
	server := newChatServer(t)
	conn, _, err := dial(t, server, "http://localhost:5173")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	exchanges := []struct {
		send ChatMessage
		want ChatMessage
	}{
		{ChatMessage{Type: MessageTypeQuestion, Content: "hello"}, ChatMessage{Type: MessageTypeAnswer, Content: "echo: hello", Kind: "ok"}},
		{ChatMessage{Type: MessageTypeQuestion, Content: "quota"}, ChatMessage{Type: MessageTypeAnswer, Content: services.QuotaExhaustedMessage, Kind: "quota_exhausted"}},
		{ChatMessage{Type: MessageTypePing}, ChatMessage{Type: MessageTypePong}},
		{ChatMessage{Type: MessageTypeQuestion, Content: "  "}, ChatMessage{Type: MessageTypeError, Content: "question is empty"}},
		{ChatMessage{Type: "dance"}, ChatMessage{Type: MessageTypeError, Content: "unknown message type: dance"}},
	}

	for _, ex := range exchanges {
		if err := conn.WriteJSON(ex.send); err != nil {
			t.Fatalf("WriteJSON failed: %v", err)
		}
		var got ChatMessage
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("ReadJSON failed: %v", err)
		}
		if got != ex.want {
			t.Errorf("For %+v expected %+v, got %+v", ex.send, ex.want, got)
		}
	}
}

func TestChatHandler_RejectsUnknownOrigin(t *testing.T) {
	server := newChatServer(t)
	_, resp, err := dial(t, server, "http://evil.example")
	if err == nil {
		t.Fatal("Expected handshake to fail for unknown origin")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected 403, got %+v", resp)
	}
}

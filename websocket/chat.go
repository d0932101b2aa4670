package websocket

import (
	"log"
	"net/http"
	"strings"

	"leetmentor/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	MessageTypeQuestion = "question"
	MessageTypeAnswer   = "answer"
	MessageTypeError    = "error"
	MessageTypePing     = "ping"
	MessageTypePong     = "pong"
)

type ChatMessage struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

func newUpgrader(allowOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range allowOrigins {
				if allowed == "*" || strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// ChatHandler answers each question frame through the assistant. Frames on a
// connection are handled one at a time.
func ChatHandler(assistant *services.Assistant, opts services.QueryOptions, allowOrigins []string) gin.HandlerFunc {
	upgrader := newUpgrader(allowOrigins)

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		sessionID := uuid.NewString()
		log.Printf("Chat session %s opened", sessionID)
		defer log.Printf("Chat session %s closed", sessionID)

		ctx := c.Request.Context()
		for {
			var msg ChatMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("Chat session %s read error: %v", sessionID, err)
				}
				return
			}

			var reply ChatMessage
			switch msg.Type {
			case MessageTypeQuestion:
				if strings.TrimSpace(msg.Content) == "" {
					reply = ChatMessage{Type: MessageTypeError, Content: "question is empty"}
					break
				}
				result := assistant.Query(ctx, msg.Content, opts)
				reply = ChatMessage{Type: MessageTypeAnswer, Content: result.Render(), Kind: string(result.Kind)}
			case MessageTypePing:
				reply = ChatMessage{Type: MessageTypePong}
			default:
				reply = ChatMessage{Type: MessageTypeError, Content: "unknown message type: " + msg.Type}
			}

			if err := conn.WriteJSON(reply); err != nil {
				log.Printf("Chat session %s write error: %v", sessionID, err)
				return
			}
		}
	}
}

package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fallbackAnswer fills in when the model produces no text at all.
const fallbackAnswer = "I'm ready to help with your studies! Please ask me any question."

const (
	newSessionMessage      = "Use this session_id in your next request to maintain conversation context"
	existingSessionMessage = "Continuing conversation with existing context"
)

// QueryRequest is the body of POST /query. Only query is required;
// session_id continues an earlier conversation.
type QueryRequest struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id"`
}

// QueryResponse is the answer envelope.
type QueryResponse struct {
	Response   string `json:"response"`
	SessionID  string `json:"session_id"`
	NewSession bool   `json:"new_session"`
	Message    string `json:"message"`
}

func (s *Server) handleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	reply, err := s.agent.Respond(c.Request.Context(), req.SessionID, req.Query)
	if err != nil {
		s.log.Error("query failed", zap.Error(err), zap.String("session_id", req.SessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process query"})
		return
	}

	text := reply.Text
	if text == "" {
		text = fallbackAnswer
	}
	message := existingSessionMessage
	if reply.NewSession {
		message = newSessionMessage
	}

	c.JSON(http.StatusOK, QueryResponse{
		Response:   text,
		SessionID:  reply.SessionID,
		NewSession: reply.NewSession,
		Message:    message,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "agent": s.agent.Name()})
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "StudyBuddy API",
		"version":     apiVersion,
		"description": "API for interacting with the StudyBuddy agent",
		"agent":       s.agent.Name() + " - " + s.agent.Description(),
		"tools":       s.agent.Tools(),
		"endpoints": gin.H{
			"chat":   "/ - StudyBuddy chat interface",
			"query":  "/query - Main API endpoint to interact with StudyBuddy",
			"health": "/health - Health check",
			"info":   "/info - This endpoint",
		},
	})
}

const landingPage = `<html>
    <head><title>StudyBuddy API</title></head>
    <body>
        <h1>StudyBuddy API</h1>
        <p>POST your questions to <code>/query</code>.</p>
        <p><a href="/info">View API info</a></p>
    </body>
</html>`

func (s *Server) handleLanding(c *gin.Context) {
	if s.indexFile != "" {
		if html, err := os.ReadFile(s.indexFile); err == nil {
			c.Data(http.StatusOK, "text/html; charset=utf-8", html)
			return
		}
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}

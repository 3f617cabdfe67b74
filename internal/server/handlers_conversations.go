package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/conversation"
)

// parseListFilter converts the listing query string into typed filter
// options. Numeric parameters that fail to parse are dropped, never
// surfaced as errors.
func parseListFilter(c *gin.Context) *conversation.ListFilter {
	filter := &conversation.ListFilter{}

	if v := c.Query("sentiment"); v != "" {
		s := conversation.Sentiment(v)
		filter.Sentiment = &s
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("agentId"); v != "" {
		filter.AgentID = &v
	}
	if v := c.Query("search"); v != "" {
		filter.Search = &v
	}
	if v := c.Query("minScore"); v != "" {
		if score, err := strconv.Atoi(v); err == nil {
			filter.MinScore = &score
		}
	}
	if v := c.Query("maxScore"); v != "" {
		if score, err := strconv.Atoi(v); err == nil {
			filter.MaxScore = &score
		}
	}
	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	return filter
}

func listConversations(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := parseListFilter(c)

		items, total, err := as.Conversations.List(c.Request.Context(), filter)
		if err != nil {
			as.Logger.Error("Failed to list conversations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversations"})
			return
		}

		totalPages := (total + filter.Limit - 1) / filter.Limit

		c.JSON(http.StatusOK, gin.H{
			"data": items,
			"pagination": gin.H{
				"total":      total,
				"page":       filter.Page,
				"limit":      filter.Limit,
				"totalPages": totalPages,
			},
		})
	}
}

func createConversation(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req conversation.CreateConversationRequest
		// An empty body is a valid create: every field defaults.
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		created, err := as.Conversations.Create(c.Request.Context(), &req)
		if err != nil {
			as.Logger.Error("Failed to create conversation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conversation"})
			return
		}

		as.Logger.Info("Conversation created", zap.String("id", created.ID))
		c.JSON(http.StatusCreated, created)
	}
}

func getConversation(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		conv, err := as.Conversations.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

func updateConversation(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req conversation.UpdateConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		updated, err := as.Conversations.Update(c.Request.Context(), id, &req)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func deleteConversation(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		existed, err := as.Conversations.Delete(c.Request.Context(), id)
		if err != nil {
			as.Logger.Error("Failed to delete conversation", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete conversation"})
			return
		}
		if !existed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}

		as.Logger.Info("Conversation deleted", zap.String("id", id))
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func appendMessage(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req conversation.AppendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		updated, err := as.Conversations.AppendMessage(c.Request.Context(), id, &req)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dietplanner/backend/internal/application/services"
	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/errors"
)

// ContentHandler manages articles and nutritionist cards shown in the bot
type ContentHandler struct {
	svcMgr *services.ServiceManager
}

func NewContentHandler(svcMgr *services.ServiceManager) *ContentHandler {
	return &ContentHandler{svcMgr: svcMgr}
}

// ListArticles handles GET /api/articles?topic=
func (h *ContentHandler) ListArticles(c *gin.Context) {
	topic := c.Query("topic")

	if topic == "" {
		topics, err := h.svcMgr.Content.Topics(c.Request.Context())
		if err != nil {
			RespondAppError(c, err)
			return
		}
		all := make([]models.Article, 0)
		for _, t := range topics {
			articles, err := h.svcMgr.Content.ArticlesByTopic(c.Request.Context(), t)
			if err != nil {
				RespondAppError(c, err)
				return
			}
			all = append(all, articles...)
		}
		c.JSON(http.StatusOK, gin.H{"articles": all})
		return
	}

	articles, err := h.svcMgr.Content.ArticlesByTopic(c.Request.Context(), topic)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:id
func (h *ContentHandler) GetArticle(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	article, err := h.svcMgr.Content.Article(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle handles POST /api/articles
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var article models.Article
	if !BindJSON(c, &article) {
		return
	}
	id, err := h.svcMgr.Content.CreateArticle(c.Request.Context(), &article)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	article.ID = id
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// UpdateArticle handles PUT /api/articles/:id
func (h *ContentHandler) UpdateArticle(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	var article models.Article
	if !BindJSON(c, &article) {
		return
	}
	article.ID = id
	if err := h.svcMgr.Content.UpdateArticle(c.Request.Context(), &article); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle handles DELETE /api/articles/:id
func (h *ContentHandler) DeleteArticle(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if err := h.svcMgr.Content.DeleteArticle(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// ListNutritionists handles GET /api/nutritionists
func (h *ContentHandler) ListNutritionists(c *gin.Context) {
	nutritionists, err := h.svcMgr.Content.Nutritionists(c.Request.Context())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nutritionists": nutritionists})
}

// CreateNutritionist handles POST /api/nutritionists
func (h *ContentHandler) CreateNutritionist(c *gin.Context) {
	var n models.Nutritionist
	if !BindJSON(c, &n) {
		return
	}
	id, err := h.svcMgr.Content.CreateNutritionist(c.Request.Context(), &n)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	n.ID = id
	c.JSON(http.StatusCreated, gin.H{"nutritionist": n})
}

// DeleteNutritionist handles DELETE /api/nutritionists/:id
func (h *ContentHandler) DeleteNutritionist(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if err := h.svcMgr.Content.DeleteNutritionist(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "nutritionist deleted"})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("id", "id must be a positive integer")
	}
	return id, nil
}

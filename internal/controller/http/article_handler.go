package http

import (
	"net/http"

	"newsroom/internal/usecase"
	"newsroom/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxCoverSize = 10 << 20 // 10 MB

type ArticleHandler struct {
	articleUseCase usecase.ArticleUseCase
	logger         *logger.Logger
}

func NewArticleHandler(articleUseCase usecase.ArticleUseCase, logger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
		logger:         logger,
	}
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content" binding:"required"`
	PublisherID string `json:"publisher_id"`
}

type UpdateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateArticle godoc
// @Summary      Submit a new article
// @Description  Journalists submit articles; they start unapproved and enter the editors' queue
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateArticleRequest true "Article data"
// @Success      201  {object}  entity.Article
// @Failure      400  {object}  map[string]string
// @Router       /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleUseCase.Create(actor, req.Title, req.Content, req.PublisherID)
	if err != nil {
		respondError(c, err, "Only journalists can submit articles")
		return
	}
	c.JSON(http.StatusCreated, article)
}

// GetArticle godoc
// @Summary      Fetch a single article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  entity.Article
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	article, err := h.articleUseCase.Get(actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "This article is awaiting approval")
		return
	}
	c.JSON(http.StatusOK, article)
}

// UpdateArticle godoc
// @Summary      Edit an article
// @Description  The author or an editor may edit; others are redirected away
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        request body UpdateArticleRequest true "Fields to change"
// @Success      200  {object}  entity.Article
// @Router       /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleUseCase.Update(actor, c.Param("id"), req.Title, req.Content)
	if err != nil {
		respondError(c, err, "You can only edit your own articles")
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      204
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.articleUseCase.Delete(actor, c.Param("id")); err != nil {
		respondError(c, err, "You can only delete your own articles")
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveArticle godoc
// @Summary      Approve a pending article
// @Description  Editors only. Approving an already-approved article is a no-op.
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  entity.Article
// @Router       /articles/{id}/approve [post]
func (h *ArticleHandler) ApproveArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	article, err := h.articleUseCase.Approve(actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Only editors can approve articles")
		return
	}
	c.JSON(http.StatusOK, article)
}

// UploadCover godoc
// @Summary      Upload an article cover image
// @Tags         articles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        cover formData file true "Cover image (jpg/png)"
// @Success      200  {object}  entity.Article
// @Router       /articles/{id}/cover [post]
func (h *ArticleHandler) UploadCover(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover file is required"})
		return
	}
	if fileHeader.Size > maxCoverSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded cover: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	article, err := h.articleUseCase.UploadCover(actor, c.Param("id"), file, contentType)
	if err != nil {
		respondError(c, err, "You can only edit your own articles")
		return
	}
	c.JSON(http.StatusOK, article)
}

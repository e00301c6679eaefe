package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fluffyrudy-blog-api/helper"
	"fluffyrudy-blog-api/models"
	"fluffyrudy-blog-api/services"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name is required"})
		return
	}

	tag, err := h.tagService.Create(req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.List()
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) RenameTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	var req models.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name is required"})
		return
	}

	tag, err := h.tagService.Rename(uint(id), req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	if err := h.tagService.Delete(uint(id)); err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

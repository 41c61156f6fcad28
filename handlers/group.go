package handlers

import (
	"errors"
	"net/http"

	"github.com/occamablade/yatube/db"
	"github.com/occamablade/yatube/models"
	"github.com/occamablade/yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type GroupInfo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type GroupCreateRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Slug        string `form:"slug" binding:"required,max=100"`
	Description string `form:"description"`
}

func GroupList(c *gin.Context) {
	var groups []models.Group
	if err := db.Instance.Order("title ASC").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := make([]GroupInfo, 0, len(groups))
	for _, g := range groups {
		result = append(result, GroupInfo{ID: g.ID, Title: g.Title, Slug: g.Slug, Description: g.Description})
	}
	c.JSON(http.StatusOK, result)
}

func GroupCreate(c *gin.Context, user *models.User) {
	r := GroupCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidSlug(r.Slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slug"})
		return
	}
	group := models.Group{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
	}
	if err := db.Instance.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug is taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusCreated, GroupInfo{ID: group.ID, Title: group.Title, Slug: group.Slug, Description: group.Description})
}

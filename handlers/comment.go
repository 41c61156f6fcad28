package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/occamablade/yatube/db"
	"github.com/occamablade/yatube/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentInfo struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
	Author    string `json:"author"`
}

type CommentAddRequest struct {
	Text string `form:"text" binding:"required,max=3000"`
}

func commentInfos(comments []models.Comment) []CommentInfo {
	result := make([]CommentInfo, 0, len(comments))
	for i := range comments {
		result = append(result, CommentInfo{
			ID:        comments[i].ID,
			Text:      comments[i].Text,
			CreatedAt: comments[i].CreatedAt,
			Author:    comments[i].Author.Username,
		})
	}
	return result
}

// CommentAdd attaches a comment to an existing post
func CommentAdd(c *gin.Context, user *models.User) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	r := CommentAddRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Text:     r.Text,
	}
	if err := db.Instance.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusCreated, CommentInfo{
		ID:        comment.ID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		Author:    user.Username,
	})
}

// CommentDelete removes the requester's own comment. Someone else's
// comment sends the requester back to the post instead.
func CommentDelete(c *gin.Context, user *models.User) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	var comment models.Comment
	if err := db.Instance.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if comment.AuthorID != user.ID {
		c.Redirect(http.StatusSeeOther, "/posts/"+strconv.FormatUint(comment.PostID, 10))
		return
	}
	if err := db.Instance.Delete(&models.Comment{}, comment.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

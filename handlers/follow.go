package handlers

import (
	"errors"
	"net/http"

	"github.com/occamablade/yatube/auth"
	"github.com/occamablade/yatube/feed"
	"github.com/occamablade/yatube/models"
	"github.com/occamablade/yatube/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Profile lists an author's posts plus their follower count and whether
// the current viewer follows them. Anonymous viewers get following=false.
func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	posts, err := models.PostsByAuthor(author.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	viewerID := auth.LoadSession(c).UserID()
	c.JSON(http.StatusOK, gin.H{
		"author":    UserInfo{ID: author.ID, Username: author.Username, Name: author.Name},
		"followers": models.FollowerCount(author.ID),
		"following": viewerID != 0 && models.IsFollowing(viewerID, author.ID),
		"page":      pagination.Paginate(postInfos(posts), pageSize(), pageParam(c)),
	})
}

// ProfileFollow is idempotent: re-following or following yourself leaves
// the relationship table untouched and still responds OK.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if err := models.FollowAuthor(user.ID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if err := models.UnfollowAuthor(user.ID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// FeedList pages through the posts of everyone the user follows
func FeedList(c *gin.Context, user *models.User) {
	posts, err := feed.Compose(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, pagination.Paginate(postInfos(posts), pageSize(), pageParam(c)))
}

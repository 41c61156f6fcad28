package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/occamablade/yatube/cache"
	"github.com/occamablade/yatube/config"
	"github.com/occamablade/yatube/db"
	"github.com/occamablade/yatube/models"
	"github.com/occamablade/yatube/pagination"
	"github.com/occamablade/yatube/storage"
	"github.com/occamablade/yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostInfo struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
	Author    string `json:"author,omitempty"`
	Group     string `json:"group,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

type PostCreateRequest struct {
	Text    string  `form:"text" binding:"required,max=10000"`
	GroupID *uint64 `form:"group_id"`
}

// IndexCache holds composed global listing pages. It is time-invalidated
// only; post writes become visible when an entry expires.
var IndexCache = cache.NewStore()

func postInfo(p *models.Post) PostInfo {
	info := PostInfo{ID: p.ID, Text: p.Text, CreatedAt: p.CreatedAt}
	if p.Author != nil {
		info.Author = p.Author.Username
	}
	if p.Group != nil {
		info.Group = p.Group.Slug
	}
	if p.ImagePath != "" {
		info.ImageURL = fmt.Sprintf("/posts/%d/image", p.ID)
	}
	return info
}

func postInfos(posts []models.Post) []PostInfo {
	result := make([]PostInfo, 0, len(posts))
	for i := range posts {
		result = append(result, postInfo(&posts[i]))
	}
	return result
}

// PostList serves the global listing, page by page, through IndexCache
func PostList(c *gin.Context) {
	page := pageParam(c)
	key := "index:" + strconv.Itoa(page)
	ttl := time.Duration(config.INDEX_CACHE_TTL) * time.Second
	v, err := IndexCache.GetOrCompute(key, ttl, func() (any, error) {
		posts, err := models.PostsAll()
		if err != nil {
			return nil, err
		}
		return pagination.Paginate(postInfos(posts), pageSize(), page), nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GroupPostList serves one group's posts. Group, profile and feed
// listings are never cached so writes show up immediately.
func GroupPostList(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	posts, err := models.PostsByGroup(group.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group": gin.H{
			"title":       group.Title,
			"slug":        group.Slug,
			"description": group.Description,
		},
		"page": pagination.Paginate(postInfos(posts), pageSize(), pageParam(c)),
	})
}

func PostDetail(c *gin.Context) {
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
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"post":     postInfo(&post),
		"comments": commentInfos(comments),
	})
}

// PostCreate stores a new post for the current user. The creation
// timestamp is server-assigned and never updated afterwards.
func PostCreate(c *gin.Context, user *models.User) {
	r := PostCreateRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if r.GroupID != nil {
		var group models.Group
		if db.Instance.First(&group, *r.GroupID).Error != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown group"})
			return
		}
	}
	post := models.Post{
		Text:     r.Text,
		AuthorID: &user.ID,
		GroupID:  r.GroupID,
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := savePostImage(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		post.ImagePath = path
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": post.ID})
}

// PostEdit updates text/group/image. A requester who is not the author
// is sent to the read view instead; nothing changes.
func PostEdit(c *gin.Context, user *models.User) {
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
	if post.AuthorID == nil || *post.AuthorID != user.ID {
		c.Redirect(http.StatusSeeOther, "/posts/"+c.Param("id"))
		return
	}
	r := PostCreateRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if r.GroupID != nil {
		var group models.Group
		if db.Instance.First(&group, *r.GroupID).Error != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown group"})
			return
		}
	}
	updates := map[string]any{
		"text":     r.Text,
		"group_id": r.GroupID,
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := savePostImage(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates["image_path"] = path
	}
	if err := db.Instance.Model(&models.Post{ID: post.ID}).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	post, err = models.PostByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, postInfo(&post))
}

// PostDelete removes the author's own post together with its comments.
// Like PostEdit, a non-author lands on the read view instead.
func PostDelete(c *gin.Context, user *models.User) {
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
	if post.AuthorID == nil || *post.AuthorID != user.ID {
		c.Redirect(http.StatusSeeOther, "/posts/"+c.Param("id"))
		return
	}
	if post.ImagePath != "" {
		if store := storage.GetDefaultStorage(); store != nil {
			_ = store.Delete(post.ImagePath)
		}
	}
	if err := models.PostDelete(post.ID); err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// PostImage streams the post's image blob from its storage bucket
func PostImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil || post.ImagePath == "" {
		notFound(c)
		return
	}
	store := storage.GetDefaultStorage()
	if store == nil {
		notFound(c)
		return
	}
	store.Serve(post.ImagePath, c.Request, c.Writer)
}

func savePostImage(file *multipart.FileHeader) (string, error) {
	store := storage.GetDefaultStorage()
	if store == nil {
		return "", errors.New("image uploads are not configured")
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	path := "posts/" + name
	_, err = store.Save(path, src)
	src.Close()
	if err != nil {
		return "", err
	}
	// Bounded thumbnail next to the original. Failure to decode is not
	// fatal; the original is already stored.
	if src, err = file.Open(); err == nil {
		var thumb bytes.Buffer
		if _, err := utils.CreateThumb(uint(config.THUMB_SIZE), src, &thumb); err == nil {
			_, _ = store.Save("posts/thumb_"+name+".jpg", &thumb)
		}
		src.Close()
	}
	return path, nil
}

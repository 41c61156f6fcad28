package handlers

import (
	"errors"
	"net/http"

	"github.com/occamablade/yatube/auth"
	"github.com/occamablade/yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type UserRegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=150"`
	Name     string `form:"name"`
	Password string `form:"password" binding:"required,min=6"`
}

type UserLoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func UserRegister(c *gin.Context) {
	r := UserRegisterRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.UserCreate(r.Username, r.Name, r.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.JSON(http.StatusOK, UserInfo{ID: user.ID, Username: user.Username, Name: user.Name})
}

func UserLogin(c *gin.Context) {
	r := UserLoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, ok := models.UserLogin(r.Username, r.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.JSON(http.StatusOK, UserInfo{ID: user.ID, Username: user.Username, Name: user.Name})
}

func UserLogout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

package models

import (
	"github.com/occamablade/yatube/db"
	"github.com/occamablade/yatube/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(100)"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

func UserCreate(username, name, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

// UserByUsername resolves a profile name. gorm.ErrRecordNotFound means
// "no such resource" and is surfaced as 404 by the handlers.
func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// UserDelete removes the user and everything owned by them. Posts and
// comments cascade with the author, follow rows go in both directions.
// The cascade is spelled out here instead of being left to the storage
// engine's foreign key handling.
func UserDelete(userID uint64) error {
	if err := db.Instance.Where("author_id = ?", userID).Delete(&Comment{}).Error; err != nil {
		return err
	}
	var postIDs []uint64
	if err := db.Instance.Model(&Post{}).Where("author_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
		return err
	}
	if len(postIDs) > 0 {
		if err := db.Instance.Where("post_id IN ?", postIDs).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := db.Instance.Where("id IN ?", postIDs).Delete(&Post{}).Error; err != nil {
			return err
		}
	}
	if err := db.Instance.Where("user_id = ? OR author_id = ?", userID, userID).Delete(&Follow{}).Error; err != nil {
		return err
	}
	return db.Instance.Delete(&User{}, userID).Error
}

package models

import (
	"errors"

	"github.com/occamablade/yatube/db"

	"gorm.io/gorm"
)

type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_user_author,unique,priority:1"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_user_author,unique,priority:2"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// CanFollow reports whether a follow row may be created: never yourself,
// never a second row for the same (user, author) pair.
func CanFollow(userID, authorID uint64) bool {
	if userID == authorID {
		return false
	}
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count == 0
}

// FollowAuthor creates the follow row when allowed and is a silent no-op
// otherwise. A concurrent duplicate that slips past CanFollow is rejected
// by the unique index and also treated as a no-op.
func FollowAuthor(userID, authorID uint64) error {
	if !CanFollow(userID, authorID) {
		return nil
	}
	err := db.Instance.Create(&Follow{UserID: userID, AuthorID: authorID}).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// UnfollowAuthor deletes the follow row if present; absent rows make this
// a no-op rather than an error.
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

// FollowedAuthorIDs returns the set of authors the user follows.
func FollowedAuthorIDs(userID uint64) (authorIDs []uint64, err error) {
	err = db.Instance.Model(&Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &authorIDs).Error
	return
}

func FollowerCount(authorID uint64) int64 {
	var count int64
	db.Instance.Model(&Follow{}).Where("author_id = ?", authorID).Count(&count)
	return count
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}

package models

import (
	"github.com/occamablade/yatube/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	PostID    uint64
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

// CommentsForPost returns a post's comments in chronological reading
// order, the opposite of the post listing order.
func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return
}

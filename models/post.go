package models

import (
	"github.com/occamablade/yatube/db"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64  `gorm:"primaryKey"`
	CreatedAt int64   `gorm:"index"`
	UpdatedAt int64
	AuthorID  *uint64
	Author    *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string  `gorm:"type:text"`
	ImagePath string  `gorm:"type:varchar(300)"`
}

// PostsNewestFirst is the default listing order. ID breaks ties for posts
// created within the same second.
func PostsNewestFirst(q *gorm.DB) *gorm.DB {
	return q.Order("created_at DESC, id DESC")
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

func PostsAll() (posts []Post, err error) {
	err = PostsNewestFirst(db.Instance.Preload("Author").Preload("Group")).Find(&posts).Error
	return
}

func PostsByGroup(groupID uint64) (posts []Post, err error) {
	err = PostsNewestFirst(db.Instance.Preload("Author").Preload("Group")).
		Where("group_id = ?", groupID).Find(&posts).Error
	return
}

func PostsByAuthor(authorID uint64) (posts []Post, err error) {
	err = PostsNewestFirst(db.Instance.Preload("Author").Preload("Group")).
		Where("author_id = ?", authorID).Find(&posts).Error
	return
}

// PostsByAuthors returns the posts of every author in the set, newest
// first. An empty set short-circuits to an empty slice.
func PostsByAuthors(authorIDs []uint64) ([]Post, error) {
	posts := []Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}
	err := PostsNewestFirst(db.Instance.Preload("Author").Preload("Group")).
		Where("author_id IN ?", authorIDs).Find(&posts).Error
	return posts, err
}

func PostDelete(postID uint64) error {
	if err := db.Instance.Where("post_id = ?", postID).Delete(&Comment{}).Error; err != nil {
		return err
	}
	return db.Instance.Delete(&Post{}, postID).Error
}

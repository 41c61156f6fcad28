package models

import (
	"github.com/occamablade/yatube/db"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

// GroupDelete clears the group reference on its posts before deleting the
// group itself. Posts survive their group.
func GroupDelete(groupID uint64) error {
	err := db.Instance.Model(&Post{}).Where("group_id = ?", groupID).Update("group_id", nil).Error
	if err != nil {
		return err
	}
	return db.Instance.Delete(&Group{}, groupID).Error
}

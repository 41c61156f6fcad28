package models

import (
	"testing"

	"github.com/occamablade/yatube/config"
	"github.com/occamablade/yatube/db"
)

func setupDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file:" + t.Name() + "?mode=memory&cache=shared"
	db.Init()
	Init()
}

func createUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, username, "password123")
	if err != nil {
		t.Fatalf("cannot create user %s: %v", username, err)
	}
	return u
}

func createPost(t *testing.T, author *User, group *Group, text string, createdAt int64) Post {
	t.Helper()
	p := Post{Text: text, AuthorID: &author.ID, CreatedAt: createdAt}
	if group != nil {
		p.GroupID = &group.ID
	}
	if err := db.Instance.Create(&p).Error; err != nil {
		t.Fatalf("cannot create post: %v", err)
	}
	return p
}

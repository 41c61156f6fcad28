package models

import (
	"errors"
	"testing"

	"github.com/occamablade/yatube/db"

	"gorm.io/gorm"
)

func TestPostsNewestFirst(t *testing.T) {
	setupDB(t)
	author := createUser(t, "writer")
	createPost(t, &author, nil, "oldest", 100)
	createPost(t, &author, nil, "newest", 300)
	createPost(t, &author, nil, "middle", 200)

	posts, err := PostsAll()
	if err != nil {
		t.Fatalf("cannot list posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if posts[i].Text != want {
			t.Errorf("position %d: expected %q, got %q", i, want, posts[i].Text)
		}
	}
	if posts[0].Author == nil || posts[0].Author.Username != "writer" {
		t.Error("expected the author to be preloaded")
	}
}

func TestGroupDeleteClearsPostReference(t *testing.T) {
	setupDB(t)
	author := createUser(t, "writer")
	group := Group{Title: "Cooking", Slug: "cooking", Description: "recipes"}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatal(err)
	}
	post := createPost(t, &author, &group, "stew", 100)

	if err := GroupDelete(group.ID); err != nil {
		t.Fatalf("group delete failed: %v", err)
	}
	if _, err := GroupBySlug("cooking"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected the group to be gone, got %v", err)
	}
	got, err := PostByID(post.ID)
	if err != nil {
		t.Fatalf("the post must survive its group: %v", err)
	}
	if got.GroupID != nil {
		t.Errorf("expected a cleared group reference, got %v", *got.GroupID)
	}
}

func TestUserDeleteCascades(t *testing.T) {
	setupDB(t)
	author := createUser(t, "writer")
	reader := createUser(t, "reader")
	post := createPost(t, &author, nil, "bye", 100)
	comment := Comment{PostID: post.ID, AuthorID: reader.ID, Text: "noo"}
	if err := db.Instance.Create(&comment).Error; err != nil {
		t.Fatal(err)
	}
	if err := FollowAuthor(reader.ID, author.ID); err != nil {
		t.Fatal(err)
	}

	if err := UserDelete(author.ID); err != nil {
		t.Fatalf("user delete failed: %v", err)
	}
	if _, err := PostByID(post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected the author's post to cascade, got %v", err)
	}
	comments, err := CommentsForPost(post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 0 {
		t.Errorf("expected comments to cascade with the post, got %d", len(comments))
	}
	if n := FollowerCount(author.ID); n != 0 {
		t.Errorf("expected follow rows to cascade, got %d", n)
	}
	if _, err := UserByUsername("writer"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected the user row to be gone, got %v", err)
	}
}

func TestPostsByGroupAndAuthor(t *testing.T) {
	setupDB(t)
	a := createUser(t, "ana")
	b := createUser(t, "boris")
	group := Group{Title: "Go", Slug: "go", Description: ""}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatal(err)
	}
	createPost(t, &a, &group, "in group", 100)
	createPost(t, &a, nil, "no group", 200)
	createPost(t, &b, nil, "other author", 300)

	byGroup, err := PostsByGroup(group.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byGroup) != 1 || byGroup[0].Text != "in group" {
		t.Errorf("unexpected group listing: %+v", byGroup)
	}

	byAuthor, err := PostsByAuthor(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byAuthor) != 2 || byAuthor[0].Text != "no group" {
		t.Errorf("unexpected author listing: %+v", byAuthor)
	}
}

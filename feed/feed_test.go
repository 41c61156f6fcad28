package feed

import (
	"testing"

	"github.com/occamablade/yatube/config"
	"github.com/occamablade/yatube/db"
	"github.com/occamablade/yatube/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file:" + t.Name() + "?mode=memory&cache=shared"
	db.Init()
	models.Init()
}

func createUser(t *testing.T, username string) models.User {
	t.Helper()
	u, err := models.UserCreate(username, username, "password123")
	if err != nil {
		t.Fatalf("cannot create user %s: %v", username, err)
	}
	return u
}

func createPost(t *testing.T, authorID uint64, text string, createdAt int64) {
	t.Helper()
	p := models.Post{Text: text, AuthorID: &authorID, CreatedAt: createdAt}
	if err := db.Instance.Create(&p).Error; err != nil {
		t.Fatalf("cannot create post: %v", err)
	}
}

func TestComposeEmptyWithoutFollows(t *testing.T) {
	setupDB(t)
	viewer := createUser(t, "viewer")
	author := createUser(t, "writer")
	createPost(t, author.ID, "unseen", 100)

	posts, err := Compose(viewer.ID)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected an empty feed without follows, got %d posts", len(posts))
	}
}

func TestComposeFollowedAuthorsNewestFirst(t *testing.T) {
	setupDB(t)
	viewer := createUser(t, "viewer")
	followed1 := createUser(t, "followed1")
	followed2 := createUser(t, "followed2")
	stranger := createUser(t, "stranger")

	createPost(t, followed1.ID, "old", 100)
	createPost(t, stranger.ID, "not mine", 200)
	createPost(t, followed2.ID, "new", 300)

	if err := models.FollowAuthor(viewer.ID, followed1.ID); err != nil {
		t.Fatal(err)
	}
	if err := models.FollowAuthor(viewer.ID, followed2.ID); err != nil {
		t.Fatal(err)
	}

	posts, err := Compose(viewer.ID)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts from followed authors, got %d", len(posts))
	}
	if posts[0].Text != "new" || posts[1].Text != "old" {
		t.Errorf("expected newest first, got %q then %q", posts[0].Text, posts[1].Text)
	}
	for _, p := range posts {
		if p.Author != nil && p.Author.Username == "stranger" {
			t.Error("the feed must only contain followed authors")
		}
	}
}

func TestComposeReflectsUnfollow(t *testing.T) {
	setupDB(t)
	viewer := createUser(t, "viewer")
	author := createUser(t, "writer")
	createPost(t, author.ID, "post", 100)

	if err := models.FollowAuthor(viewer.ID, author.ID); err != nil {
		t.Fatal(err)
	}
	posts, err := Compose(viewer.ID)
	if err != nil || len(posts) != 1 {
		t.Fatalf("expected 1 post while following, got %d (%v)", len(posts), err)
	}

	if err := models.UnfollowAuthor(viewer.ID, author.ID); err != nil {
		t.Fatal(err)
	}
	posts, err = Compose(viewer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 0 {
		t.Errorf("expected an empty feed after unfollow, got %d posts", len(posts))
	}
}

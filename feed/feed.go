package feed

import (
	"github.com/occamablade/yatube/models"
)

// Compose returns the posts of every author the viewer follows, newest
// first. A viewer with no follows gets an empty slice. This is a pure
// read; the caller decides about pagination and caching.
func Compose(viewerID uint64) ([]models.Post, error) {
	authorIDs, err := models.FollowedAuthorIDs(viewerID)
	if err != nil {
		return nil, err
	}
	return models.PostsByAuthors(authorIDs)
}

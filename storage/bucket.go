package storage

import (
	"os"
	"strings"

	"github.com/occamablade/yatube/db"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

// StorageLocationPosts is where post images live inside a bucket
const StorageLocationPosts = "/posts"

type Bucket struct {
	ID          uint64      `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Name        string      `gorm:"type:varchar(200)"`
	StorageType StorageType
	Path        string      // Path on a drive or a prefix in a S3 bucket
	AuthDetails string      // Authentication details. In case of S3 bucket - "key:secret"
	Region      string      `gorm:"type:varchar(50)"`
	Endpoint    string      `gorm:"type:varchar(300)"` // Optional, for S3-compatible services
}

func (b *Bucket) Create() error {
	err := db.Instance.Create(b).Error
	if err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		// Pre-create locations on disk
		if err = os.MkdirAll(b.Path+StorageLocationPosts, 0777); err != nil {
			return err
		}
	}
	return nil
}

// GetRemotePath maps a storage path to the object key within the S3 bucket
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}

func (b *Bucket) CreateSVC() *s3.S3 {
	keySecret := strings.SplitN(b.AuthDetails, ":", 2)
	if len(keySecret) != 2 {
		keySecret = []string{"", ""}
	}
	cfg := aws.Config{
		Region:      aws.String(b.Region),
		Credentials: credentials.NewStaticCredentials(keySecret[0], keySecret[1], ""),
	}
	if b.Endpoint != "" {
		cfg.Endpoint = aws.String(b.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession(&cfg)))
}

package storage

import (
	"io"
	"log"
	"net/http"

	"github.com/occamablade/yatube/config"
	"github.com/occamablade/yatube/db"
)

// StorageAPI is what the upload and serving paths need from a blob
// backend. Paths are opaque references recorded on the Post.
type StorageAPI interface {
	GetBucket() *Bucket
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var cachedStorage []StorageAPI

func Init() {
	db.Instance.AutoMigrate(&Bucket{})

	var buckets []Bucket
	if err := db.Instance.Find(&buckets).Error; err != nil {
		panic(err)
	}
	if len(buckets) == 0 && config.DEFAULT_BUCKET_DIR != "" {
		b := Bucket{
			Name:        "default",
			StorageType: StorageTypeFile,
			Path:        config.DEFAULT_BUCKET_DIR,
		}
		if err := b.Create(); err != nil {
			panic(err)
		}
		buckets = append(buckets, b)
	}
	log.Printf("Storage Buckets found: %d\n", len(buckets))

	cachedStorage = []StorageAPI{}
	for _, bucket := range buckets {
		if bucket.StorageType == StorageTypeS3 {
			cachedStorage = append(cachedStorage, NewS3Storage(&bucket))
		} else {
			cachedStorage = append(cachedStorage, NewDiskStorage(&bucket))
		}
	}
}

func StorageFrom(bucket *Bucket) StorageAPI {
	for _, s := range cachedStorage {
		if s.GetBucket().ID == bucket.ID {
			return s
		}
	}
	return nil
}

// GetDefaultStorage prefers a local disk bucket, falling back to whatever
// is configured. Returns nil when no bucket exists; image uploads are
// rejected in that case.
func GetDefaultStorage() StorageAPI {
	for _, s := range cachedStorage {
		if s.GetBucket().StorageType == StorageTypeFile {
			return s
		}
	}
	for _, s := range cachedStorage {
		return s
	}
	return nil
}

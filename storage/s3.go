package storage

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/occamablade/yatube/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   Bucket
	s3Client *s3.S3
}

func NewS3Storage(bucket *Bucket) StorageAPI {
	return &S3Storage{
		bucket:   *bucket,
		s3Client: bucket.CreateSVC(),
	}
}

func (s *S3Storage) GetBucket() *Bucket {
	return &s.bucket
}

// getTempPath returns a local scratch location for S3-backed objects
func (s *S3Storage) getTempPath(path string) string {
	return config.TMP_DIR + "/" + strings.ReplaceAll(path, "/", "_")
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	input := s3manager.UploadInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
		Body:   reader,
	}
	if _, err := uploader.Upload(&input); err != nil {
		return 0, err
	}
	head, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	if err != nil || head.ContentLength == nil {
		return 0, err
	}
	return *head.ContentLength, nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

// Serve downloads the object to a temp file and lets net/http handle
// range requests and content types, same as the disk backend.
func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	tempName := s.getTempPath(path)
	out, err := os.Create(tempName)
	if err != nil {
		http.Error(writer, "storage error", http.StatusInternalServerError)
		return
	}
	_, err = s.Load(path, out)
	out.Close()
	if err != nil {
		_ = os.Remove(tempName)
		http.Error(writer, "storage error", http.StatusInternalServerError)
		return
	}
	http.ServeFile(writer, request, tempName)
	_ = os.Remove(tempName)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	return err
}

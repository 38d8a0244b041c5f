package artifact

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

// Client stores transient run artifacts in object storage so later stages can
// retrieve them by name; artifacts live under a run-scoped prefix
//go:generate mockgen -package=artifact -destination ./mock.go -source=client.go
type Client interface {
	UploadArtifact(ctx context.Context, runID, name, localPath string) (err error)
	DownloadArtifact(ctx context.Context, runID, name, localPath string) (err error)
	ArtifactExists(ctx context.Context, runID, name string) (exists bool, err error)
}

// Config configures the object storage connection backing the artifact store
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewClient returns a new artifact.Client
func NewClient(config Config) (Client, error) {

	minioClient, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed creating object storage client for %v: %w", config.Endpoint, err)
	}

	return &client{
		minioClient: minioClient,
		bucket:      config.Bucket,
	}, nil
}

type client struct {
	minioClient *minio.Client
	bucket      string
}

func (c *client) UploadArtifact(ctx context.Context, runID, name, localPath string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "UploadArtifact")
	defer span.Finish()
	span.SetTag("artifact", name)

	objectKey := getObjectKey(runID, name)

	log.Info().Msgf("Uploading artifact %v to %v/%v", name, c.bucket, objectKey)

	_, err = c.minioClient.FPutObject(ctx, c.bucket, objectKey, localPath, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed uploading artifact %v: %w", name, err)
	}

	return nil
}

func (c *client) DownloadArtifact(ctx context.Context, runID, name, localPath string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "DownloadArtifact")
	defer span.Finish()
	span.SetTag("artifact", name)

	objectKey := getObjectKey(runID, name)

	log.Info().Msgf("Downloading artifact %v from %v/%v", name, c.bucket, objectKey)

	if err = os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return err
	}

	err = c.minioClient.FGetObject(ctx, c.bucket, objectKey, localPath, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed downloading artifact %v: %w", name, err)
	}

	return nil
}

func (c *client) ArtifactExists(ctx context.Context, runID, name string) (exists bool, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "ArtifactExists")
	defer span.Finish()
	span.SetTag("artifact", name)

	_, err = c.minioClient.StatObject(ctx, c.bucket, getObjectKey(runID, name), minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func getObjectKey(runID, name string) string {
	return path.Join("runs", runID, name)
}

package storage

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"path"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const minioHeaderObject = "header.csv"

type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// minioResponseStore keeps the header in <prefix>/header.csv and writes each
// submission as its own single-row CSV object, so concurrent appends from
// several instances never contend on one object.
type minioResponseStore struct {
	MinioClient objectStore
	BucketName  string
	Prefix      string
	Log         *zap.Logger

	mu          sync.Mutex
	headerReady bool
}

func NewMinioResponseStore(minioClient *minio.Client, bucketName, prefix string, logger *zap.Logger) contracts.ResponseStore {
	return &minioResponseStore{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Prefix:      prefix,
		Log:         logger,
	}
}

func (s *minioResponseStore) Backend() string {
	return constvars.PersistenceBackendMinio
}

func (s *minioResponseStore) AppendRow(ctx context.Context, header, row []string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := s.ensureHeader(ctx, header); err != nil {
		s.Log.Error("minioResponseStore.AppendRow error preparing header",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPrepareHeader(err, s.Backend())
	}

	body, err := encodeCSV(row)
	if err != nil {
		return exceptions.ErrPersistResponse(err, s.Backend())
	}

	objectName := s.rowObjectName(row)
	_, err = s.MinioClient.PutObject(ctx, s.BucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMETextCSV,
	})
	if err != nil {
		s.Log.Error("minioResponseStore.AppendRow error putting row object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("object_name", objectName),
			zap.Error(err),
		)
		return exceptions.ErrPersistResponse(err, s.Backend())
	}
	return nil
}

func (s *minioResponseStore) ensureHeader(ctx context.Context, header []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.headerReady {
		return nil
	}

	exists, err := s.MinioClient.BucketExists(ctx, s.BucketName)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.MinioClient.MakeBucket(ctx, s.BucketName, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	objectName := path.Join(s.Prefix, minioHeaderObject)
	_, err = s.MinioClient.StatObject(ctx, s.BucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return err
		}
		body, err := encodeCSV(header)
		if err != nil {
			return err
		}
		_, err = s.MinioClient.PutObject(ctx, s.BucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
			ContentType: constvars.MIMETextCSV,
		})
		if err != nil {
			return err
		}
	}

	s.headerReady = true
	return nil
}

// rowObjectName sorts by submission time; the participant ID in the first
// column keeps names unique.
func (s *minioResponseStore) rowObjectName(row []string) string {
	participantID := "unknown"
	if len(row) > 0 && row[0] != "" {
		participantID = row[0]
	}
	stamp := time.Now().UTC().Format("20060102T150405.000000000")
	return path.Join(s.Prefix, "rows", stamp+"-"+participantID+".csv")
}

func encodeCSV(record []string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(record); err != nil {
		return nil, err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package storage

import (
	"adhd-intake-service/internal/app/config"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	testHeader = []string{"Participant_ID", "Name", "ASRS_score"}
	testRow    = []string{"p-1", "Jane, \"JD\" Doe", "12"}
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVResponseStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Header Written Exactly Once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "responses.csv")
		store := NewCSVResponseStore(path, zap.NewNop())

		require.NoError(t, store.AppendRow(ctx, testHeader, testRow))
		require.NoError(t, store.AppendRow(ctx, testHeader, []string{"p-2", "John", ""}))

		records := readCSV(t, path)
		require.Len(t, records, 3)
		assert.Equal(t, testHeader, records[0])
		assert.Equal(t, testRow, records[1], "quoting round-trips")
		assert.Equal(t, []string{"p-2", "John", ""}, records[2])
	})

	t.Run("Existing File Keeps Its Header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "responses.csv")
		require.NoError(t, os.WriteFile(path, []byte("Participant_ID,Name,ASRS_score\n"), 0o600))
		store := NewCSVResponseStore(path, zap.NewNop())

		require.NoError(t, store.AppendRow(ctx, testHeader, testRow))

		assert.Len(t, readCSV(t, path), 2)
	})

	t.Run("Concurrent Appends Do Not Interleave", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "responses.csv")
		store := NewCSVResponseStore(path, zap.NewNop())

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.AppendRow(ctx, testHeader, testRow))
			}()
		}
		wg.Wait()

		records := readCSV(t, path)
		assert.Len(t, records, 21)
		assert.Equal(t, testHeader, records[0])
	})

	t.Run("Cancelled Context Is A Persistence Failure", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		store := NewCSVResponseStore(filepath.Join(t.TempDir(), "r.csv"), zap.NewNop())

		assert.Error(t, store.AppendRow(cancelled, testHeader, testRow))
	})
}

type fakeInserter struct {
	documents []interface{}
	err       error
}

func (f *fakeInserter) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.documents = append(f.documents, document)
	return &mongo.InsertOneResult{InsertedID: len(f.documents)}, nil
}

func TestMongoResponseStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Document Keeps Column Order", func(t *testing.T) {
		inserter := &fakeInserter{}
		store := &mongoResponseStore{Collection: inserter, Log: zap.NewNop()}

		require.NoError(t, store.AppendRow(ctx, testHeader, testRow))

		require.Len(t, inserter.documents, 1)
		document := inserter.documents[0].(bson.D)
		assert.Equal(t, "Participant_ID", document[0].Key)
		assert.Equal(t, "12", document[2].Value)
	})

	t.Run("Mismatched Row Is Rejected", func(t *testing.T) {
		inserter := &fakeInserter{}
		store := &mongoResponseStore{Collection: inserter, Log: zap.NewNop()}

		assert.Error(t, store.AppendRow(ctx, testHeader, []string{"p-1"}))
		assert.Empty(t, inserter.documents)
	})

	t.Run("Insert Failure Surfaces", func(t *testing.T) {
		store := &mongoResponseStore{Collection: &fakeInserter{err: errors.New("no primary")}, Log: zap.NewNop()}

		err := store.AppendRow(ctx, testHeader, testRow)

		assert.ErrorContains(t, err, "no primary")
	})
}

type fakeObjectStore struct {
	mu      sync.Mutex
	bucket  bool
	objects map[string][]byte
	putErr  error
}

func (f *fakeObjectStore) BucketExists(context.Context, string) (bool, error) {
	return f.bucket, nil
}

func (f *fakeObjectStore) MakeBucket(context.Context, string, minio.MakeBucketOptions) error {
	f.bucket = true
	return nil
}

func (f *fakeObjectStore) StatObject(_ context.Context, _, objectName string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[objectName]; !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}
	}
	return minio.ObjectInfo{Key: objectName}, nil
}

func (f *fakeObjectStore) PutObject(_ context.Context, _, objectName string, reader io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = body
	return minio.UploadInfo{Key: objectName}, nil
}

func TestMinioResponseStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Header Object Then One Object Per Row", func(t *testing.T) {
		objects := &fakeObjectStore{objects: map[string][]byte{}}
		store := &minioResponseStore{MinioClient: objects, BucketName: "b", Prefix: "responses", Log: zap.NewNop()}

		require.NoError(t, store.AppendRow(ctx, testHeader, testRow))
		require.NoError(t, store.AppendRow(ctx, testHeader, []string{"p-2", "John", ""}))

		assert.True(t, objects.bucket, "bucket created on first use")
		assert.Equal(t, "Participant_ID,Name,ASRS_score\n", string(objects.objects["responses/header.csv"]))
		rows := 0
		for name, body := range objects.objects {
			if strings.HasPrefix(name, "responses/rows/") {
				rows++
				records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
				require.NoError(t, err)
				assert.Len(t, records, 1)
			}
		}
		assert.Equal(t, 2, rows)
	})

	t.Run("Existing Header Is Not Overwritten", func(t *testing.T) {
		objects := &fakeObjectStore{bucket: true, objects: map[string][]byte{"responses/header.csv": []byte("old\n")}}
		store := &minioResponseStore{MinioClient: objects, BucketName: "b", Prefix: "responses", Log: zap.NewNop()}

		require.NoError(t, store.AppendRow(ctx, testHeader, testRow))

		assert.Equal(t, "old\n", string(objects.objects["responses/header.csv"]))
	})

	t.Run("Put Failure Surfaces", func(t *testing.T) {
		objects := &fakeObjectStore{bucket: true, objects: map[string][]byte{}, putErr: errors.New("denied")}
		store := &minioResponseStore{MinioClient: objects, BucketName: "b", Prefix: "responses", Log: zap.NewNop()}

		assert.Error(t, store.AppendRow(ctx, testHeader, testRow))
	})
}

func TestSheetsResponseStore(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var appended [][]interface{}
	headerRow := [][]interface{}{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{"range": "Responses!A1:C1", "values": headerRow})
		case http.MethodPost:
			assert.True(t, strings.HasSuffix(r.URL.Path, ":append"))
			assert.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))
			var body sheets.ValueRange
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			appended = append(appended, body.Values...)
			if len(headerRow) == 0 {
				headerRow = body.Values
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"spreadsheetId": "sheet-1"})
		}
	}))
	defer server.Close()

	service, err := sheets.NewService(ctx, option.WithEndpoint(server.URL+"/"), option.WithoutAuthentication())
	require.NoError(t, err)
	store := NewSheetsResponseStore(service, "sheet-1", "Responses", zap.NewNop())

	require.NoError(t, store.AppendRow(ctx, testHeader, testRow))
	require.NoError(t, store.AppendRow(ctx, testHeader, []string{"p-2", "John", ""}))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, appended, 3, "header once plus two rows")
	assert.Equal(t, "Participant_ID", appended[0][0])
	assert.Equal(t, "p-1", appended[1][0])
	assert.Equal(t, "p-2", appended[2][0])
}

func TestNewResponseStore(t *testing.T) {
	ctx := context.Background()

	t.Run("CSV Backend Needs No Driver", func(t *testing.T) {
		internalConfig := &config.InternalConfig{Persistence: config.AppPersistence{Backend: " CSV ", CSVFilePath: filepath.Join(t.TempDir(), "r.csv")}}

		store, closeStore, err := NewResponseStore(ctx, &config.DriverConfig{}, internalConfig, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, "csv", store.Backend())
		assert.NoError(t, closeStore())
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		internalConfig := &config.InternalConfig{Persistence: config.AppPersistence{Backend: "ftp"}}

		store, _, err := NewResponseStore(ctx, &config.DriverConfig{}, internalConfig, zap.NewNop())

		assert.Nil(t, store)
		assert.ErrorContains(t, err, "ftp")
	})
}

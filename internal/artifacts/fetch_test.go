package artifacts

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
	err     error
	gotKeys []string
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(params.Key)
	f.gotKeys = append(f.gotKeys, aws.ToString(params.Bucket)+"/"+key)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestFetch_WritesObject(t *testing.T) {
	client := &fakeS3{objects: map[string]string{"models/tokenizer.json": `{"a": 1}`}}
	dest := filepath.Join(t.TempDir(), "nested", "tokenizer.json")

	err := NewFetcher(client, "artifacts").Fetch(context.Background(), "models/tokenizer.json", dest)

	require.NoError(t, err)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))
	assert.Equal(t, []string{"artifacts/models/tokenizer.json"}, client.gotKeys)
}

func TestFetch_ErrorLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "model.onnx")
	client := &fakeS3{err: errors.New("access denied")}

	err := NewFetcher(client, "artifacts").Fetch(context.Background(), "model.onnx", dest)

	assert.ErrorContains(t, err, "access denied")
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestFetchAll(t *testing.T) {
	dir := t.TempDir()
	client := &fakeS3{objects: map[string]string{"m": "model", "t": "tok"}}

	err := NewFetcher(client, "b").FetchAll(context.Background(), map[string]string{
		"m": filepath.Join(dir, "model.onnx"),
		"t": filepath.Join(dir, "tokenizer.json"),
	})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "model.onnx"))
	assert.FileExists(t, filepath.Join(dir, "tokenizer.json"))

	err = NewFetcher(client, "b").FetchAll(context.Background(), map[string]string{"missing": filepath.Join(dir, "x")})
	assert.Error(t, err)
}

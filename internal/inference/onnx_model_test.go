package inference

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadONNXModel_MissingFile(t *testing.T) {
	_, err := LoadONNXModel(filepath.Join(t.TempDir(), "missing.onnx"), 100)

	assert.ErrorContains(t, err, "failed to stat model")
}

func TestONNXModel_RejectsWrongLength(t *testing.T) {
	m := &ONNXModel{seqLen: 100}

	_, err := m.Predict(context.Background(), make([]int, 99))

	assert.ErrorContains(t, err, "does not match")
}

func TestONNXModel_HonoursCancelledContext(t *testing.T) {
	m := &ONNXModel{seqLen: 100}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Predict(ctx, make([]int, 100))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvert(t *testing.T) {
	assert.Equal(t, []float32{1, 2, 0}, convert[float32]([]int{1, 2, 0}))
	assert.Equal(t, []int64{5}, convert[int64]([]int{5}))
}

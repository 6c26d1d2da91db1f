package inference

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

var (
	runtimeOnce sync.Once
	runtimeErr  error
)

// InitRuntime loads the onnxruntime shared library. An empty libPath keeps
// the platform default lookup.
func InitRuntime(libPath string) error {
	runtimeOnce.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			runtimeErr = fmt.Errorf("failed to initialize onnxruntime: %w", err)
			return
		}
		slog.Info("[ONNXModel] onnxruntime initialized", slog.String("library", libPath))
	})
	return runtimeErr
}

func DestroyRuntime() {
	if !ort.IsInitialized() {
		return
	}
	if err := ort.DestroyEnvironment(); err != nil {
		slog.Warn("[ONNXModel] Failed to destroy onnxruntime environment",
			slog.String("error", err.Error()))
	}
}

// ONNXModel is a single-input, single-output sequence classifier exported
// to ONNX. The session is created once and shared by every request.
type ONNXModel struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	inputType  ort.TensorElementDataType
	outputName string
	seqLen     int
}

// LoadONNXModel opens the model at path. InitRuntime must have succeeded.
func LoadONNXModel(path string, seqLen int) (*ONNXModel, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat model: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect model %s: %w", path, err)
	}
	if len(inputs) != 1 || len(outputs) == 0 {
		return nil, fmt.Errorf("model %s must have exactly one input and at least one output, got %d and %d",
			path, len(inputs), len(outputs))
	}

	in, out := inputs[0], outputs[0]
	switch in.DataType {
	case ort.TensorElementDataTypeFloat, ort.TensorElementDataTypeInt32, ort.TensorElementDataTypeInt64:
	default:
		return nil, fmt.Errorf("model input %q has unsupported type %s", in.Name, in.DataType)
	}

	session, err := ort.NewDynamicAdvancedSession(path, []string{in.Name}, []string{out.Name}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create onnxruntime session: %w", err)
	}

	slog.Info("[ONNXModel] Model loaded",
		slog.String("path", path),
		slog.String("input", in.String()),
		slog.String("output", out.String()))

	return &ONNXModel{
		session:    session,
		inputName:  in.Name,
		inputType:  in.DataType,
		outputName: out.Name,
		seqLen:     seqLen,
	}, nil
}

// Predict runs one padded sequence through the model and returns the first
// value of its output.
func (m *ONNXModel) Predict(ctx context.Context, sequence []int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(sequence) != m.seqLen {
		return 0, fmt.Errorf("sequence length %d does not match model input length %d", len(sequence), m.seqLen)
	}

	shape := ort.NewShape(1, int64(m.seqLen))
	input, err := m.newInput(shape, sequence)
	if err != nil {
		return 0, fmt.Errorf("failed to build input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		return 0, fmt.Errorf("failed to build output tensor: %w", err)
	}
	defer output.Destroy()

	if err := m.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return 0, fmt.Errorf("inference failed: %w", err)
	}

	return float64(output.GetData()[0]), nil
}

func (m *ONNXModel) newInput(shape ort.Shape, sequence []int) (ort.Value, error) {
	switch m.inputType {
	case ort.TensorElementDataTypeInt32:
		return ort.NewTensor(shape, convert[int32](sequence))
	case ort.TensorElementDataTypeInt64:
		return ort.NewTensor(shape, convert[int64](sequence))
	default:
		return ort.NewTensor(shape, convert[float32](sequence))
	}
}

func (m *ONNXModel) Close() error {
	if m.session == nil {
		return nil
	}
	return m.session.Destroy()
}

func convert[T int32 | int64 | float32](sequence []int) []T {
	out := make([]T, len(sequence))
	for i, v := range sequence {
		out[i] = T(v)
	}
	return out
}

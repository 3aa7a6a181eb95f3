// Package calc is the caller side of the sparse core: it takes an operation
// name and two serialized matrices, runs the operation and hands back one
// result. Sources and sinks are plain io.Reader / file paths.
package calc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sparsemat/sparse"
	"go.uber.org/zap"
)

// Calculator evaluates one binary operation per call. It holds no state
// between calls beyond its logger and parse options.
type Calculator struct {
	logger    *zap.Logger
	parseOpts []sparse.ParseOption
}

// New returns a Calculator. A nil logger is replaced by zap.NewNop().
func New(logger *zap.Logger, opts ...sparse.ParseOption) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger, parseOpts: opts}
}

// Run validates op, parses left and right, and applies op.
// The operation name is checked before any input is read.
func (c *Calculator) Run(op string, left, right io.Reader) (*sparse.Matrix, error) {
	operation, err := sparse.ParseOperation(op)
	if err != nil {
		return nil, err
	}

	a, err := sparse.Parse(left, c.parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("matrix A: %w", err)
	}
	b, err := sparse.Parse(right, c.parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("matrix B: %w", err)
	}
	c.logger.Info("Matrix A", shapeFields(a)...)
	c.logger.Info("Matrix B", shapeFields(b)...)

	res, err := sparse.Apply(operation, a, b)
	if err != nil {
		c.logger.Debug("operation failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	c.logger.Info("Result", append(shapeFields(res), zap.String("op", op))...)

	return res, nil
}

// RunFiles is Run over two files on disk.
func (c *Calculator) RunFiles(op, leftPath, rightPath string) (*sparse.Matrix, error) {
	if _, err := sparse.ParseOperation(op); err != nil {
		return nil, err
	}

	left, err := os.Open(leftPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix A: %w", err)
	}
	defer left.Close()

	right, err := os.Open(rightPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix B: %w", err)
	}
	defer right.Close()

	c.logger.Debug("loading operands", zap.String("a", leftPath), zap.String("b", rightPath))

	return c.Run(op, left, right)
}

// Load parses a single matrix file with the calculator's parse options.
func (c *Calculator) Load(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix: %w", err)
	}
	defer f.Close()

	m, err := sparse.Parse(f, c.parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.logger.Debug("loaded matrix", append(shapeFields(m), zap.String("path", path))...)

	return m, nil
}

// Save writes m to path in the serialized text format, creating parent
// directories. The file is written to a temp sibling and renamed into place.
func (c *Calculator) Save(m *sparse.Matrix, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sparsecalc-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := m.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	c.logger.Info("Result saved", zap.String("path", path))

	return nil
}

func shapeFields(m *sparse.Matrix) []zap.Field {
	return []zap.Field{
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("nnz", m.Nnz()),
	}
}

package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
	"go.uber.org/zap"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
)

// CircuitMatrix is a complex modified nodal analysis system Y x = b with
// 1-based indices. Row and column 0 is ground and never stored.
type CircuitMatrix struct {
	Size         int
	matrix       *sparse.Matrix
	rhs          []float64
	rhsImag      []float64
	solution     []float64
	solutionImag []float64
	config       *sparse.Configuration
	log          *zap.SugaredLogger
}

func NewMatrix(size int) (*CircuitMatrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %dx%d sparse matrix", size, size)
	}

	vectorSize := size + 1 // 1-based
	return &CircuitMatrix{
		Size:         size,
		matrix:       mat,
		rhs:          make([]float64, vectorSize),
		rhsImag:      make([]float64, vectorSize),
		solution:     make([]float64, vectorSize),
		solutionImag: make([]float64, vectorSize),
		config:       config,
		log:          logger.ComponentLogger("matrix"),
	}, nil
}

// SetupElements allocates every element so the sparsity pattern is fixed
// before the first factorisation.
func (m *CircuitMatrix) SetupElements() {
	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			m.matrix.GetElement(int64(i), int64(j))
		}
	}
}

func (m *CircuitMatrix) inBounds(i int) bool {
	return i > 0 && i <= m.Size
}

func (m *CircuitMatrix) AddComplexElement(i, j int, real, imag float64) {
	if !m.inBounds(i) || !m.inBounds(j) {
		m.log.Warnw("matrix index out of bounds", "i", i, "j", j, "size", m.Size)
		return
	}

	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real
	element.Imag += imag
}

func (m *CircuitMatrix) AddComplexRHS(i int, real, imag float64) {
	if !m.inBounds(i) {
		m.log.Warnw("RHS index out of bounds", "i", i, "size", m.Size)
		return
	}
	m.rhs[i] += real
	m.rhsImag[i] += imag
}

func (m *CircuitMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
		m.rhsImag[i] = 0
	}
}

func (m *CircuitMatrix) Solve() error {
	err := m.matrix.Factor()
	if err != nil {
		return errors.Wrap(err, "matrix factorization failed")
	}

	m.solution, m.solutionImag, err = m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return errors.Wrap(err, "matrix solve failed")
	}

	return nil
}

// GetComplexSolution returns the solved value at index i.
func (m *CircuitMatrix) GetComplexSolution(i int) complex128 {
	if !m.inBounds(i) || i >= len(m.solution) || i >= len(m.solutionImag) {
		return 0
	}
	return complex(m.solution[i], m.solutionImag[i])
}

func (m *CircuitMatrix) GetElement(i, j int) complex128 {
	if !m.inBounds(i) || !m.inBounds(j) {
		return 0
	}
	element := m.matrix.GetElement(int64(i), int64(j))
	return complex(element.Real, element.Imag)
}

func (m *CircuitMatrix) RHS(i int) complex128 {
	if !m.inBounds(i) {
		return 0
	}
	return complex(m.rhs[i], m.rhsImag[i])
}

// String prints the stamped equations, one row per line.
func (m *CircuitMatrix) String() string {
	var s string
	for i := 1; i <= m.Size; i++ {
		s += fmt.Sprintf("Equation %d:", i)
		for j := 1; j <= m.Size; j++ {
			if v := m.GetElement(i, j); v != 0 {
				s += fmt.Sprintf("  (%g%+gj)*x%d", real(v), imag(v), j)
			}
		}
		rhs := m.RHS(i)
		s += fmt.Sprintf(" = %g%+gj\n", real(rhs), imag(rhs))
	}
	return s
}

func (m *CircuitMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}

package analysis

import (
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/edp1096/lekidtools/internal/logger"
	"github.com/edp1096/lekidtools/pkg/circuit"
)

type Analysis interface {
	Setup(ckt *circuit.Circuit) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Circuit *circuit.Circuit
	results map[string][]float64    // key: variable name, value: result by frequency
	phasors map[string][]complex128 // raw complex solution by frequency
	log     *zap.SugaredLogger
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{
		results: make(map[string][]float64),
		phasors: make(map[string][]complex128),
		log:     logger.ComponentLogger("analysis"),
	}
}

func (a *BaseAnalysis) StoreACResult(freq float64, solution map[string]complex128) {
	a.results["FREQ"] = append(a.results["FREQ"], freq)

	for name, value := range solution {
		a.phasors[name] = append(a.phasors[name], value)

		// Magnitude
		a.results[name+"_MAG"] = append(a.results[name+"_MAG"], cmplx.Abs(value))

		// Phase - degree
		phase := cmplx.Phase(value) * 180.0 / math.Pi
		a.results[name+"_PHASE"] = append(a.results[name+"_PHASE"], phase)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// Phasors returns the complex values stored for a solution variable such as
// "V(feed)" or "I(V1)".
func (a *BaseAnalysis) Phasors(name string) ([]complex128, bool) {
	values, ok := a.phasors[name]
	return values, ok
}

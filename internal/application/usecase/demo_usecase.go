package usecase

import (
	"sort"

	"github.com/superventas/pos-api/internal/application/ports"
	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/pkg/logger"
	"github.com/superventas/pos-api/pkg/metrics"
)

// DemoStatus estado del modo demo y tamaño de cada colección.
type DemoStatus struct {
	Mode     string         `json:"mode"`
	Active   bool           `json:"active"`
	Counts   map[string]int `json:"counts"`
	Entities []string       `json:"entities"`
}

// DemoUseCase administración del almacén demo.
type DemoUseCase struct {
	store   ports.DemoStore
	mode    ports.ModeSwitch
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewDemoUseCase construye el caso de uso.
func NewDemoUseCase(store ports.DemoStore, d Deps) *DemoUseCase {
	return &DemoUseCase{store: store, mode: d.Mode, log: d.logger().Named("demo"), metrics: d.Metrics}
}

// Reset restaura el dataset sembrado. Solo se permite con el modo demo activo.
func (uc *DemoUseCase) Reset() (*DemoStatus, error) {
	if uc.mode == nil || !uc.mode.IsDemoActive() {
		return nil, domain.InvalidOperation("el reinicio solo está disponible en modo demo")
	}
	uc.store.Reset()
	uc.metrics.IncReset()
	uc.log.Info().Msg("almacén demo reiniciado")
	return uc.status(true), nil
}

// Status devuelve el modo actual y los conteos del almacén (aunque el modo esté inactivo).
func (uc *DemoUseCase) Status() *DemoStatus {
	return uc.status(uc.mode != nil && uc.mode.IsDemoActive())
}

func (uc *DemoUseCase) status(active bool) *DemoStatus {
	counts := uc.store.Counts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return &DemoStatus{Mode: ports.ModeName(active), Active: active, Counts: counts, Entities: names}
}

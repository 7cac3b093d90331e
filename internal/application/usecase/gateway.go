package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/superventas/pos-api/internal/application/ports"
	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
	"github.com/superventas/pos-api/pkg/logger"
	"github.com/superventas/pos-api/pkg/metrics"
)

// Deps colaboradores comunes a todos los casos de uso.
type Deps struct {
	Mode    ports.ModeSwitch
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

func (d Deps) logger() *logger.Logger {
	if d.Log == nil {
		return logger.Nop()
	}
	return d.Log
}

// Resultados usados como etiqueta "outcome" en logs y métricas.
const (
	outcomeOK           = "ok"
	outcomeNotFound     = "not_found"
	outcomeInvalid      = "invalid"
	outcomeUnauthorized = "unauthorized"
	outcomeUpstream     = "upstream"
	outcomeError        = "error"
)

func outcomeOf(err error) string {
	var up *domain.UpstreamError
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidOperation):
		return outcomeInvalid
	case errors.Is(err, domain.ErrUnauthorized):
		return outcomeUnauthorized
	case errors.As(err, &up):
		return outcomeUpstream
	default:
		return outcomeError
	}
}

// modal elige, llamada a llamada, entre la implementación demo y la remota.
type modal[R any] struct {
	entity  string
	demo    R
	live    R
	mode    ports.ModeSwitch
	log     *logger.Logger
	metrics *metrics.Metrics
}

func newModal[R any](name string, demo, live R, d Deps) modal[R] {
	return modal[R]{
		entity:  name,
		demo:    demo,
		live:    live,
		mode:    d.Mode,
		log:     d.logger().Named("gateway." + name),
		metrics: d.Metrics,
	}
}

// pick consulta el modo una sola vez por llamada.
func (m modal[R]) pick() (R, string) {
	demo := m.mode != nil && m.mode.IsDemoActive()
	if demo {
		return m.demo, ports.ModeName(true)
	}
	return m.live, ports.ModeName(false)
}

func (m modal[R]) observe(op, mode string, started time.Time, err error) {
	elapsed := time.Since(started)
	outcome := outcomeOf(err)
	m.metrics.ObserveCall(m.entity, op, mode, outcome, elapsed)

	var ev *zerolog.Event
	switch outcome {
	case outcomeOK:
		ev = m.log.Debug()
	case outcomeUpstream, outcomeError:
		ev = m.log.Error().Err(err)
	default:
		ev = m.log.Warn().Err(err)
	}
	ev.Str("op", op).Str("mode", mode).Str("outcome", outcome).Dur("elapsed", elapsed).Msg("gateway")
}

// call ejecuta fn sobre la implementación elegida y registra el resultado.
func call[R, V any](m modal[R], op string, fn func(R) (V, error)) (V, error) {
	repo, mode := m.pick()
	started := time.Now()
	v, err := fn(repo)
	m.observe(op, mode, started, err)
	return v, err
}

// crud casos de uso uniformes para cualquier entidad con gateway CRUD.
type crud[T any, P entity.Patch[T], R repository.Repository[T, P]] struct {
	modal[R]
}

func newCrud[T any, P entity.Patch[T], R repository.Repository[T, P]](name string, demo, live R, d Deps) *crud[T, P, R] {
	return &crud[T, P, R]{modal: newModal(name, demo, live, d)}
}

// ListAll lista los registros de la empresa (0 = todas), incluidos los borrados lógicamente.
func (c *crud[T, P, R]) ListAll(ctx context.Context, companyID int) ([]*T, error) {
	return call(c.modal, "list", func(r R) ([]*T, error) { return r.ListAll(ctx, companyID) })
}

// GetByID devuelve domain.ErrNotFound si el registro no existe.
func (c *crud[T, P, R]) GetByID(ctx context.Context, id int) (*T, error) {
	return call(c.modal, "get", func(r R) (*T, error) { return r.GetByID(ctx, id) })
}

func (c *crud[T, P, R]) Create(ctx context.Context, rec *T) (*T, error) {
	if rec == nil {
		return nil, domain.ErrInvalidInput
	}
	return call(c.modal, "create", func(r R) (*T, error) { return r.Create(ctx, rec) })
}

// Update aplica un patch parcial; los campos nil no se modifican.
func (c *crud[T, P, R]) Update(ctx context.Context, id int, patch P) (*T, error) {
	return call(c.modal, "update", func(r R) (*T, error) { return r.Update(ctx, id, patch) })
}

func (c *crud[T, P, R]) Delete(ctx context.Context, id int) error {
	_, err := call(c.modal, "delete", func(r R) (struct{}, error) { return struct{}{}, r.Delete(ctx, id) })
	return err
}

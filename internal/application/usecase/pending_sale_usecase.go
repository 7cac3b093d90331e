package usecase

import (
	"context"
	"fmt"

	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// lineCompleter lo implementa el backend remoto: al finalizar reenvía los
// detalles editados en el mismo PATCH.
type lineCompleter interface {
	CompleteWithLines(ctx context.Context, id int, payment entity.PaymentInfo, lines []entity.SaleLine) (*entity.Sale, error)
}

// PendingSaleUseCase casos de uso de ventas pendientes y su promoción a venta.
type PendingSaleUseCase struct {
	*crud[entity.PendingSale, entity.PendingSalePatch, repository.PendingSaleRepository]
}

// NewPendingSaleUseCase construye el caso de uso.
func NewPendingSaleUseCase(demo, live repository.PendingSaleRepository, d Deps) *PendingSaleUseCase {
	return &PendingSaleUseCase{newCrud[entity.PendingSale, entity.PendingSalePatch]("ventasPendientes", demo, live, d)}
}

// Complete promueve la venta pendiente a venta completada con los datos de cobro.
// La venta pendiente deja de existir; devuelve domain.ErrNotFound si no existía.
func (uc *PendingSaleUseCase) Complete(ctx context.Context, id int, payment entity.PaymentInfo) (*entity.Sale, error) {
	return call(uc.modal, "complete", func(r repository.PendingSaleRepository) (*entity.Sale, error) {
		return r.Complete(ctx, id, payment)
	})
}

// Convert promueve la venta pendiente sin datos de cobro.
func (uc *PendingSaleUseCase) Convert(ctx context.Context, id int) (*entity.Sale, error) {
	return call(uc.modal, "convert", func(r repository.PendingSaleRepository) (*entity.Sale, error) {
		return r.Convert(ctx, id)
	})
}

// UpdateAndComplete actualiza la venta pendiente y luego la finaliza.
// Si la finalización falla la actualización no se revierte.
func (uc *PendingSaleUseCase) UpdateAndComplete(ctx context.Context, id int, patch entity.PendingSalePatch, payment entity.PaymentInfo) (*entity.Sale, error) {
	return call(uc.modal, "update_complete", func(r repository.PendingSaleRepository) (*entity.Sale, error) {
		if _, err := r.Update(ctx, id, patch); err != nil {
			return nil, fmt.Errorf("actualizar venta pendiente %d: %w", id, err)
		}
		if lc, ok := r.(lineCompleter); ok {
			var lines []entity.SaleLine
			if patch.Lines != nil {
				lines = *patch.Lines
			}
			return lc.CompleteWithLines(ctx, id, payment, lines)
		}
		return r.Complete(ctx, id, payment)
	})
}

package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// RegisterRepository cajas del backend. El listado puede llegar con columnas
// de base de datos (caja_numero, caja_nombre, ...) y se normaliza.
type RegisterRepository struct {
	*Repository[entity.Register, entity.RegisterPatch]
}

func NewRegisterRepository(c *Client) *RegisterRepository {
	return &RegisterRepository{Repository: newRepository[entity.Register, entity.RegisterPatch](c, ResourceRegisters)}
}

type registerRow struct {
	ID         int              `json:"id"`
	Number     *int             `json:"numero"`
	RawNumber  *int             `json:"caja_numero"`
	Name       string           `json:"nombre"`
	RawName    string           `json:"caja_nombre"`
	Status     string           `json:"estado"`
	Cash       *decimal.Decimal `json:"efectivo"`
	RawCash    *decimal.Decimal `json:"caja_efectivo"`
	CompanyID  int              `json:"empresaId"`
	RawCompany int              `json:"empresa_id"`
	CreatedAt  *time.Time       `json:"createdAt"`
	RawCreated *time.Time       `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updatedAt"`
	RawUpdated *time.Time       `json:"updated_at"`
	DeletedAt  *time.Time       `json:"deletedAt"`
	RawDeleted *time.Time       `json:"deleted_at"`
}

func (row registerRow) toEntity() *entity.Register {
	r := &entity.Register{
		ID:        row.ID,
		Name:      firstNonEmpty(row.RawName, row.Name),
		Status:    row.Status,
		CompanyID: row.RawCompany,
		Cash:      decimal.Zero,
	}
	if r.CompanyID == 0 {
		r.CompanyID = row.CompanyID
	}
	switch {
	case row.RawNumber != nil:
		r.Number = *row.RawNumber
	case row.Number != nil:
		r.Number = *row.Number
	}
	switch {
	case row.RawCash != nil:
		r.Cash = *row.RawCash
	case row.Cash != nil:
		r.Cash = *row.Cash
	}
	if t := firstTime(row.RawCreated, row.CreatedAt); t != nil {
		r.CreatedAt = *t
	}
	if t := firstTime(row.RawUpdated, row.UpdatedAt); t != nil {
		r.UpdatedAt = *t
	}
	r.DeletedAt = firstTime(row.RawDeleted, row.DeletedAt)
	return r
}

func (r *RegisterRepository) ListAll(ctx context.Context, companyID int) ([]*entity.Register, error) {
	path := ResourceRegisters + "/all" + query(companyQuery(companyID))
	var rows []registerRow
	if err := r.client.Get(ctx, path, &rows); err != nil {
		return nil, err
	}
	out := make([]*entity.Register, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstTime(ts ...*time.Time) *time.Time {
	for _, t := range ts {
		if t != nil {
			return t
		}
	}
	return nil
}

var _ repository.RegisterRepository = (*RegisterRepository)(nil)

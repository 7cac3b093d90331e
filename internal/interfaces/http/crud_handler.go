package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// crudService contrato CRUD que cumplen todos los casos de uso de entidad.
type crudService[T any, P any] interface {
	ListAll(ctx context.Context, companyID int) ([]*T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, id int, patch P) (*T, error)
	Delete(ctx context.Context, id int) error
}

// CRUDHandler handlers HTTP uniformes para una entidad.
type CRUDHandler[T any, P any] struct {
	uc crudService[T, P]
}

func NewCRUDHandler[T any, P any](uc crudService[T, P]) *CRUDHandler[T, P] {
	return &CRUDHandler[T, P]{uc: uc}
}

// Mount registra GET /, GET /:id, POST /, PATCH /:id, PUT /:id y DELETE /:id.
// Las mutaciones pasan por los middlewares extra (p. ej. RequireRole).
func (h *CRUDHandler[T, P]) Mount(r fiber.Router, mutate ...fiber.Handler) {
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Post("/", chain(mutate, h.Create)...)
	r.Patch("/:id", chain(mutate, h.Update)...)
	r.Put("/:id", chain(mutate, h.Update)...)
	r.Delete("/:id", chain(mutate, h.Delete)...)
}

func chain(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, h)
}

// List lista los registros de la empresa del token (o ?empresaId=; 0 = todas).
func (h *CRUDHandler[T, P]) List(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListAll(c.UserContext(), companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[T, P]) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[T, P]) Create(c *fiber.Ctx) error {
	in := new(T)
	if err := c.BodyParser(in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualización parcial: los campos ausentes no se modifican.
func (h *CRUDHandler[T, P]) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[T, P]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

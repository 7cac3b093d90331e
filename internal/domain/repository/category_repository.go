package repository

import "github.com/superventas/pos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Repository[entity.Category, entity.CategoryPatch]
}

package mapper

import (
	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/model"
)

// UserModelToEntity maps a User model to the Identity entity.
func UserModelToEntity(m *model.User) *entity.Identity {
	return &entity.Identity{
		ID:    m.ID,
		Email: m.Email,
	}
}

// ItemEntityToModel maps an Item entity plus its owner email to the Food
// model. The entity id is intentionally not carried over; the store assigns
// its own on create.
func ItemEntityToModel(e *entity.Item, email string) *model.Food {
	return &model.Food{
		Name:           e.Name,
		Category:       string(e.Category),
		Perishable:     e.Perishable,
		Quantity:       e.Quantity,
		Unit:           string(e.Unit),
		EntryDate:      e.EntryDate,
		ExpirationDate: e.ExpirationDate,
		Email:          email,
	}
}

// ItemModelToEntity maps a Food model back to the Item entity.
func ItemModelToEntity(m *model.Food) *entity.Item {
	return &entity.Item{
		ID:             m.ID,
		Name:           m.Name,
		Category:       entity.Category(m.Category),
		Perishable:     m.Perishable,
		Quantity:       m.Quantity,
		Unit:           entity.Unit(m.Unit),
		EntryDate:      m.EntryDate,
		ExpirationDate: m.ExpirationDate,
	}
}

// ItemModelsToEntities maps a list of Food models, preserving order.
func ItemModelsToEntities(ms []model.Food) []entity.Item {
	items := make([]entity.Item, 0, len(ms))
	for i := range ms {
		items = append(items, *ItemModelToEntity(&ms[i]))
	}
	return items
}

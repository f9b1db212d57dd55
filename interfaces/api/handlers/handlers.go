package handlers

import (
	"catalog-service/domain/services"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Category    services.CategoryService
	ProductType services.ProductTypeService
	Attribute   services.AttributeService
	Product     services.ProductService
	Lookup      services.LookupService
}

// Handlers groups the route handlers for registration.
type Handlers struct {
	Category    *CategoryHandler
	ProductType *ProductTypeHandler
	Attribute   *AttributeHandler
	Product     *ProductHandler
	Lookup      *LookupHandler
	Health      *HealthHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		Category:    NewCategoryHandler(services.Category),
		ProductType: NewProductTypeHandler(services.ProductType),
		Attribute:   NewAttributeHandler(services.Attribute),
		Product:     NewProductHandler(services.Product),
		Lookup:      NewLookupHandler(services.Lookup),
		Health:      NewHealthHandler(),
	}
}

package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
	"catalog-service/domain/services"
	"catalog-service/infrastructure/nats"
	"catalog-service/infrastructure/postgres"
	"catalog-service/pkg/config"
	"catalog-service/pkg/treeindex"
)

// testEnv wires the real repositories and services over an in-memory
// sqlite database. No redis, no NATS; both degrade to no-ops.
type testEnv struct {
	db *gorm.DB

	Categories   services.CategoryService
	ProductTypes services.ProductTypeService
	Attributes   services.AttributeService
	Products     services.ProductService
	Lookups      services.LookupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))

	cfg := &config.Config{
		Catalog: config.CatalogConfig{
			PageSize:    12,
			MaxPageSize: 100,
			CacheTTL:    300,
		},
	}

	categoryRepo := postgres.NewCategoryRepository(db)
	productTypeRepo := postgres.NewProductTypeRepository(db)
	attributeRepo := postgres.NewAttributeRepository(db)
	productRepo := postgres.NewProductRepository(db)
	lookupRepo := postgres.NewLookupRepository(db)

	index := treeindex.NewStore()
	publisher, err := nats.NewEventPublisher(nil)
	require.NoError(t, err)

	return &testEnv{
		db:           db,
		Categories:   NewCategoryService(categoryRepo, index, nil, publisher, cfg),
		ProductTypes: NewProductTypeService(productTypeRepo, categoryRepo, attributeRepo),
		Attributes:   NewAttributeService(attributeRepo, nil, cfg),
		Products:     NewProductService(productRepo, categoryRepo, attributeRepo, index, publisher, cfg),
		Lookups:      NewLookupService(lookupRepo),
	}
}

func (e *testEnv) createCategory(t *testing.T, name string, parentID *uuid.UUID) *models.Category {
	t.Helper()
	category, err := e.Categories.Create(context.Background(), &dto.CreateCategoryRequest{
		Name:     name,
		ParentID: parentID,
	})
	require.NoError(t, err)
	return category
}

func (e *testEnv) createProductType(t *testing.T, name string) *models.ProductType {
	t.Helper()
	productType, err := e.ProductTypes.Create(context.Background(), &dto.CreateProductTypeRequest{
		Name: name,
	})
	require.NoError(t, err)
	return productType
}

func (e *testEnv) createGroup(t *testing.T, productTypeID uuid.UUID, name string) *models.AttributeGroup {
	t.Helper()
	group, err := e.Attributes.CreateGroup(context.Background(), &dto.CreateAttributeGroupRequest{
		Name:          name,
		ProductTypeID: productTypeID,
	})
	require.NoError(t, err)
	return group
}

func (e *testEnv) createAttribute(t *testing.T, groupID uuid.UUID, name, attrType string) *models.ProductAttribute {
	t.Helper()
	attribute, err := e.Attributes.CreateAttribute(context.Background(), &dto.CreateAttributeRequest{
		Name:             name,
		Type:             attrType,
		AttributeGroupID: groupID,
	})
	require.NoError(t, err)
	return attribute
}

func (e *testEnv) createOption(t *testing.T, attributeID uuid.UUID, value string) *models.AttributeOption {
	t.Helper()
	option, err := e.Attributes.CreateOption(context.Background(), attributeID, &dto.CreateAttributeOptionRequest{
		Value: value,
	})
	require.NoError(t, err)
	return option
}

package serviceimpl

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
	"catalog-service/domain/repositories"
	"catalog-service/domain/services"
	"catalog-service/infrastructure/redis"
	"catalog-service/pkg/apperrors"
	"catalog-service/pkg/config"
	"catalog-service/pkg/logger"
)

const optionsCacheKeyPrefix = "catalog:options:"

type attributeService struct {
	attributeRepo repositories.AttributeRepository
	cache         *redis.Client
	cfg           *config.Config
}

func NewAttributeService(
	attributeRepo repositories.AttributeRepository,
	cache *redis.Client,
	cfg *config.Config,
) services.AttributeService {
	return &attributeService{
		attributeRepo: attributeRepo,
		cache:         cache,
		cfg:           cfg,
	}
}

// Groups

func (s *attributeService) CreateGroup(ctx context.Context, req *dto.CreateAttributeGroupRequest) (*models.AttributeGroup, error) {
	group := &models.AttributeGroup{
		ID:            uuid.New(),
		Name:          req.Name,
		ProductTypeID: req.ProductTypeID,
		SortOrder:     req.SortOrder,
	}
	if err := s.attributeRepo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *attributeService) UpdateGroup(ctx context.Context, id uuid.UUID, req *dto.UpdateAttributeGroupRequest) (*models.AttributeGroup, error) {
	group, err := s.attributeRepo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.SortOrder != nil {
		group.SortOrder = *req.SortOrder
	}
	if err := s.attributeRepo.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *attributeService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if _, err := s.attributeRepo.GetGroupByID(ctx, id); err != nil {
		return err
	}
	return s.attributeRepo.DeleteGroup(ctx, id)
}

// Attributes

func (s *attributeService) CreateAttribute(ctx context.Context, req *dto.CreateAttributeRequest) (*models.ProductAttribute, error) {
	attrType := models.AttributeType(req.Type)
	if !attrType.Valid() {
		return nil, apperrors.Validation("type", "unknown attribute type")
	}
	if _, err := s.attributeRepo.GetGroupByID(ctx, req.AttributeGroupID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Validation("attribute_group_id", "attribute group does not exist")
		}
		return nil, err
	}

	code := req.Code
	if code == "" {
		code = slug.Make(req.Name)
	}
	if _, err := s.attributeRepo.GetAttributeByCode(ctx, code); err == nil {
		return nil, apperrors.Conflict("attribute code already exists")
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	attribute := &models.ProductAttribute{
		ID:               uuid.New(),
		Name:             req.Name,
		Code:             code,
		Type:             attrType,
		AttributeGroupID: req.AttributeGroupID,
		Required:         req.Required,
		SortOrder:        req.SortOrder,
	}
	if err := s.attributeRepo.CreateAttribute(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (s *attributeService) UpdateAttribute(ctx context.Context, id uuid.UUID, req *dto.UpdateAttributeRequest) (*models.ProductAttribute, error) {
	attribute, err := s.attributeRepo.GetAttributeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		attribute.Name = *req.Name
	}
	if req.Required != nil {
		attribute.Required = *req.Required
	}
	if req.SortOrder != nil {
		attribute.SortOrder = *req.SortOrder
	}
	if err := s.attributeRepo.UpdateAttribute(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (s *attributeService) DeleteAttribute(ctx context.Context, id uuid.UUID) error {
	if _, err := s.attributeRepo.GetAttributeByID(ctx, id); err != nil {
		return err
	}
	if err := s.attributeRepo.DeleteAttribute(ctx, id); err != nil {
		return err
	}
	s.invalidateOptions(ctx, id)
	return nil
}

func (s *attributeService) GetAttribute(ctx context.Context, id uuid.UUID) (*models.ProductAttribute, error) {
	return s.attributeRepo.GetAttributeByID(ctx, id)
}

// Options

func (s *attributeService) CreateOption(ctx context.Context, attributeID uuid.UUID, req *dto.CreateAttributeOptionRequest) (*models.AttributeOption, error) {
	attribute, err := s.attributeRepo.GetAttributeByID(ctx, attributeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Validation("attribute_id", "attribute does not exist")
		}
		return nil, err
	}
	if !attribute.Type.IsChoiceLike() {
		return nil, apperrors.Validation("attribute_id", "attribute does not take options")
	}

	existing, err := s.attributeRepo.ListOptions(ctx, attributeID)
	if err != nil {
		return nil, err
	}
	for _, opt := range existing {
		if opt.Value == req.Value {
			return nil, apperrors.Conflict("option value already exists for the attribute")
		}
	}

	displayValue := req.DisplayValue
	if displayValue == "" {
		displayValue = req.Value
	}

	option := &models.AttributeOption{
		ID:           uuid.New(),
		AttributeID:  attributeID,
		Value:        req.Value,
		DisplayValue: displayValue,
		SortOrder:    req.SortOrder,
	}
	if err := s.attributeRepo.CreateOption(ctx, option); err != nil {
		return nil, err
	}
	s.invalidateOptions(ctx, attributeID)
	return option, nil
}

func (s *attributeService) UpdateOption(ctx context.Context, id uuid.UUID, req *dto.UpdateAttributeOptionRequest) (*models.AttributeOption, error) {
	option, err := s.attributeRepo.GetOptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DisplayValue != nil {
		option.DisplayValue = *req.DisplayValue
	}
	if req.SortOrder != nil {
		option.SortOrder = *req.SortOrder
	}
	if err := s.attributeRepo.UpdateOption(ctx, option); err != nil {
		return nil, err
	}
	s.invalidateOptions(ctx, option.AttributeID)
	return option, nil
}

func (s *attributeService) DeleteOption(ctx context.Context, id uuid.UUID) error {
	option, err := s.attributeRepo.GetOptionByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.attributeRepo.DeleteOption(ctx, id); err != nil {
		return err
	}
	s.invalidateOptions(ctx, option.AttributeID)
	return nil
}

func (s *attributeService) ListOptions(ctx context.Context, attributeID uuid.UUID) ([]*models.AttributeOption, error) {
	key := optionsCacheKeyPrefix + attributeID.String()

	var cached []*models.AttributeOption
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
		return cached, nil
	}

	options, err := s.attributeRepo.ListOptions(ctx, attributeID)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(s.cfg.Catalog.CacheTTL) * time.Second
	if err := s.cache.SetJSON(ctx, key, options, ttl); err != nil {
		logger.WarnContext(ctx, "Failed to cache attribute options",
			"attribute_id", attributeID, "error", err)
	}
	return options, nil
}

// Values

func (s *attributeService) SetValue(ctx context.Context, productID uuid.UUID, req *dto.SetAttributeValueRequest) error {
	attribute, err := s.attributeRepo.GetAttributeByID(ctx, req.AttributeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.Validation("attribute_id", "attribute does not exist")
		}
		return err
	}

	values, err := buildAssignment(attribute, productID, dto.AttributeAssignmentInput{
		OptionID:  req.OptionID,
		OptionIDs: req.OptionIDs,
		RawValue:  req.RawValue,
	})
	if err != nil {
		return err
	}

	for _, value := range values {
		if err := s.attributeRepo.UpsertValue(ctx, value, attribute.Type.IsMultiValued()); err != nil {
			return err
		}
	}
	return nil
}

func (s *attributeService) ValuesFor(ctx context.Context, productID uuid.UUID) (map[string]dto.AttributeValueView, error) {
	values, err := s.attributeRepo.ListValues(ctx, productID)
	if err != nil {
		return nil, err
	}

	views := make(map[string]dto.AttributeValueView, len(values))
	for _, value := range values {
		if value.Attribute == nil {
			continue
		}
		view, ok := dto.AttributeValueToView(value)
		if !ok {
			continue
		}
		views[value.Attribute.Name] = view
	}
	return views, nil
}

func (s *attributeService) invalidateOptions(ctx context.Context, attributeID uuid.UUID) {
	key := optionsCacheKeyPrefix + attributeID.String()
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate options cache",
			"attribute_id", attributeID, "error", err)
	}
}

// buildAssignment turns one assignment input into AttributeValue rows,
// enforcing the shape the attribute type demands.
func buildAssignment(attribute *models.ProductAttribute, productID uuid.UUID, input dto.AttributeAssignmentInput) ([]*models.AttributeValue, error) {
	if attribute.Type.IsChoiceLike() {
		if input.RawValue != nil {
			return nil, apperrors.Validation(attribute.Code, "attribute takes an option, not a raw value")
		}

		optionIDs := input.OptionIDs
		if input.OptionID != nil {
			optionIDs = append([]uuid.UUID{*input.OptionID}, optionIDs...)
		}
		if len(optionIDs) == 0 {
			return nil, apperrors.Validation(attribute.Code, "attribute requires an option")
		}
		if !attribute.Type.IsMultiValued() && len(optionIDs) > 1 {
			return nil, apperrors.Validation(attribute.Code, "attribute takes a single option")
		}

		values := make([]*models.AttributeValue, len(optionIDs))
		for i := range optionIDs {
			optionID := optionIDs[i]
			values[i] = &models.AttributeValue{
				ID:          uuid.New(),
				ProductID:   productID,
				AttributeID: attribute.ID,
				OptionID:    &optionID,
			}
		}
		return values, nil
	}

	if input.OptionID != nil || len(input.OptionIDs) > 0 {
		return nil, apperrors.Validation(attribute.Code, "attribute takes a raw value, not an option")
	}
	if input.RawValue == nil {
		return nil, apperrors.Validation(attribute.Code, "attribute requires a value")
	}
	if attribute.Type == models.AttributeTypeNumber {
		if _, err := strconv.ParseFloat(*input.RawValue, 64); err != nil {
			return nil, apperrors.Validation(attribute.Code, "value must be numeric")
		}
	}

	return []*models.AttributeValue{{
		ID:          uuid.New(),
		ProductID:   productID,
		AttributeID: attribute.ID,
		RawValue:    input.RawValue,
	}}, nil
}

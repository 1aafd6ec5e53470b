package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// itemService is the concrete implementation of ItemService.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService backed by the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// GetAllItems returns every catalog item with orders (quantity and user)
// attached.
func (i *itemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	items, err := i.itemRepository.GetAllItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("item listing failed")
		return nil, fmt.Errorf("item listing failed: %w", err)
	}

	return items, nil
}

// GetItem looks an item up by the given key. A key that parses as a base-10
// integer is treated as the item id, anything else as the unique title.
// Propagates store.ErrItemNotFound for absent items.
func (i *itemService) GetItem(ctx context.Context, key string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	var item models.Item
	var err error
	if id, convErr := strconv.ParseInt(key, 10, 64); convErr == nil {
		item, err = i.itemRepository.FindItemByID(ctx, id)
	} else {
		item, err = i.itemRepository.FindItemByTitle(ctx, key)
	}
	if err != nil {
		log.Err(err).Str("key", key).Msg("item lookup failed")
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}

	return item, nil
}

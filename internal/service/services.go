package service

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
)

type Services struct {
	AuthService  AuthService
	UserService  UserService
	ItemService  ItemService
	OrderService OrderService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		UserService:  NewUserService(storages.UserRepository, logger),
		ItemService:  NewItemService(storages.ItemRepository, logger),
		OrderService: NewOrderService(storages.OrderRepository, storages.UserRepository, logger),
	}
}

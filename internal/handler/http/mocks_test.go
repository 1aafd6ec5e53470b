package http

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
)

// errStubNotConfigured signals a stub method the test did not expect to be called.
var errStubNotConfigured = errors.New("stub method not configured")

type stubAuthService struct {
	registerUserFn  func(ctx context.Context, name, email, password string) (models.User, error)
	loginFn         func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
	userFromTokenFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	if s.registerUserFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.registerUserFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if s.loginFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if s.createTokenFn == nil {
		return models.Token{SignedString: "stub-token"}, nil
	}
	return s.createTokenFn(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn == nil {
		return models.Token{}, errStubNotConfigured
	}
	return s.parseTokenFn(ctx, tokenString)
}

func (s *stubAuthService) UserFromToken(ctx context.Context, tokenString string) (models.User, error) {
	if s.userFromTokenFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.userFromTokenFn(ctx, tokenString)
}

type stubUserService struct {
	getAllUsersFn    func(ctx context.Context) ([]models.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if s.getAllUsersFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getAllUsersFn(ctx)
}

func (s *stubUserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if s.getUserByEmailFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.getUserByEmailFn(ctx, email)
}

type stubItemService struct {
	getAllItemsFn func(ctx context.Context) ([]models.Item, error)
	getItemFn     func(ctx context.Context, key string) (models.Item, error)
}

func (s *stubItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	if s.getAllItemsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getAllItemsFn(ctx)
}

func (s *stubItemService) GetItem(ctx context.Context, key string) (models.Item, error) {
	if s.getItemFn == nil {
		return models.Item{}, errStubNotConfigured
	}
	return s.getItemFn(ctx, key)
}

type stubOrderService struct {
	placeOrderFn     func(ctx context.Context, requester models.User, userID, itemID int64) (models.User, error)
	changeQuantityFn func(ctx context.Context, requester models.User, orderID int64, quantity int) (models.User, error)
	removeOrderFn    func(ctx context.Context, requester models.User, orderID int64) (models.User, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, requester models.User, userID, itemID int64) (models.User, error) {
	if s.placeOrderFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.placeOrderFn(ctx, requester, userID, itemID)
}

func (s *stubOrderService) ChangeQuantity(ctx context.Context, requester models.User, orderID int64, quantity int) (models.User, error) {
	if s.changeQuantityFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.changeQuantityFn(ctx, requester, orderID, quantity)
}

func (s *stubOrderService) RemoveOrder(ctx context.Context, requester models.User, orderID int64) (models.User, error) {
	if s.removeOrderFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.removeOrderFn(ctx, requester, orderID)
}

// newTestHandler wires a Handler around the given stubs. Nil stubs are
// replaced with empty ones so that an unexpected call fails loudly instead
// of panicking.
func newTestHandler(auth *stubAuthService, users *stubUserService, items *stubItemService, orders *stubOrderService) *Handler {
	if auth == nil {
		auth = &stubAuthService{}
	}
	if users == nil {
		users = &stubUserService{}
	}
	if items == nil {
		items = &stubItemService{}
	}
	if orders == nil {
		orders = &stubOrderService{}
	}

	return NewHandler(&service.Services{
		AuthService:  auth,
		UserService:  users,
		ItemService:  items,
		OrderService: orders,
	}, logger.Nop())
}

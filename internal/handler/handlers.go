// Package handler aggregates the transport handlers of the application.
package handler

import (
	myHTTP "github.com/MKhiriev/go-shop-api/internal/handler/http"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
)

// Handlers bundles every transport handler. The application currently
// exposes a single HTTP transport.
type Handlers struct {
	HTTP *myHTTP.Handler
}

// NewHandlers constructs all transport handlers over the shared service
// layer.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: myHTTP.NewHandler(services, logger),
	}
}

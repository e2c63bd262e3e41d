package config

import (
	"print-order-server/internal/domain"
	"print-order-server/internal/repository"
	"print-order-server/internal/service"
	"print-order-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	OrderRepository domain.OrderRepository
	FileRepository  domain.FileRepository
	BlobStore       domain.BlobStore
	OrderService    domain.OrderService
	UploadService   domain.UploadService
	AuthService     domain.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize stores
	orderRepo := repository.NewOrderRepository(config.GetDataPath(), appLogger)
	fileRepo := repository.NewFileRepository(config.GetDataPath(), appLogger)
	blobStore := repository.NewDiskBlobStore(config.GetUploadPath())

	// Initialize services
	orderService := service.NewOrderService(orderRepo, service.NewOrderIDGenerator(), appLogger)
	uploadService := service.NewUploadService(fileRepo, blobStore, appLogger)
	authService := service.NewAuthService(
		service.NewStaticCredentialVerifier(config.GetAdminUsername(), config.GetAdminPassword()),
		service.NewJWTTokenIssuer([]byte(config.GetJWTSecret())),
		appLogger,
	)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		OrderRepository: orderRepo,
		FileRepository:  fileRepo,
		BlobStore:       blobStore,
		OrderService:    orderService,
		UploadService:   uploadService,
		AuthService:     authService,
	}
}

package domain

import "mime/multipart"

// OrderService defines order operations exposed to the HTTP layer.
type OrderService interface {
	List() ([]Order, error)
	Create(fields map[string]interface{}) (*Order, error)
	Get(orderID string) (*Order, error)
	UpdateStatus(orderID, status string) (*Order, error)
	Clear() error
}

// UploadService defines upload and file-metadata operations.
type UploadService interface {
	Store(files []*multipart.FileHeader) ([]FileMeta, error)
	List() ([]FileMeta, error)
	Clear() error
}

// AuthService verifies the admin credential pair and issues the login token.
type AuthService interface {
	Login(username, password string) (token string, err error)
}

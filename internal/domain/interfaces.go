package domain

import "io"

// OrderRepository defines the interface for order persistence. Every mutation
// rewrites the whole store (see internal/repository for the contract).
type OrderRepository interface {
	List() ([]Order, error)
	Insert(order Order) error
	Get(orderID string) (*Order, error)
	UpdateStatus(orderID, status string) (*Order, error)
	Clear() error
}

// FileRepository defines the interface for file-metadata persistence.
type FileRepository interface {
	List() ([]FileMeta, error)
	Append(records []FileMeta) error
	Clear() error
}

// BlobStore defines the interface for the physical blob storage backing the
// file metadata records.
type BlobStore interface {
	Save(name string, content io.Reader) (serverPath string, err error)
	Remove(serverPath string) error
}

// CredentialVerifier checks an admin username/password pair.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// TokenIssuer mints the opaque success token returned by the admin login
// endpoint. Nothing validates the token afterwards; the dashboard only keeps
// a local logged-in flag.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// IDGenerator produces order identifiers. Injectable so tests can pin the
// random tiebreak and exercise the collision case.
type IDGenerator interface {
	NewOrderID() string
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetEnvironment() string
	GetDataPath() string
	GetUploadPath() string
	GetStaticPath() string
	GetMaxUploadSize() int64
	GetLogLevel() string
	GetJWTSecret() string
	GetAdminUsername() string
	GetAdminPassword() string
}

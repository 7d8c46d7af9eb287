package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment for the postgres store.
	DefaultDatabaseURL = ""

	// DefaultCatalogFile is empty, meaning the built-in catalog is used.
	DefaultCatalogFile = ""
)

// StoreBackend selects where tasks, activities and comments are kept.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StorePostgres StoreBackend = "postgres"
)

// DefaultStore is the backend used when none is configured.
const DefaultStore = StoreMemory

// IsValid checks if the backend is one of the supported values.
func (b StoreBackend) IsValid() bool {
	return b == StoreMemory || b == StorePostgres
}

package cache

import (
	"github.com/invoiceflow/invoiceflow/internal/logger"
)

// Initialize initializes the cache system
func Initialize(log *logger.Logger) Cache {
	InitializeInMemoryCache()
	log.Info("cache system initialized")
	return GetInMemoryCache()
}

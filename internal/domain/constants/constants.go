// Package constants contains string values shared by config and infrastructure.
package constants

// EnvDevelop is the local deployment environment.
const EnvDevelop = "develop"

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes.
const (
	AttrEventType = "event_type"
	AttrOrderID   = "order_id"
	AttrStoreID   = "store_id"
	AttrRequestID = "request_id"
)

// Upload prefixes inside the blob bucket.
const (
	StoreLogoPrefix    = "store_logos"
	ProductImagePrefix = "images/products"
)

// Pagination defaults, matching skip=0&limit=100 on list endpoints.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

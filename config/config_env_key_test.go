package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"port":         8080,
			"allowOrigins": []any{"*"},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"orders": map[string]any{
			"strictTransitions": false,
		},
		"realtime": map[string]any{
			"sendBuffer": 16,
		},
		"storage": map[string]any{
			"maxUploadSize": 5242880,
		},
		"pubsub": map[string]any{
			"pushAudience": "",
		},
	}

	tests := map[string]string{
		"HTTP_PORT":                 "http.port",
		"HTTP_ALLOWORIGINS":         "http.allowOrigins",
		"POSTGRES_SSLMODE":          "postgres.sslMode",
		"ORDERS_STRICTTRANSITIONS":  "orders.strictTransitions",
		"REALTIME_SENDBUFFER":       "realtime.sendBuffer",
		"STORAGE_MAXUPLOADSIZE":     "storage.maxUploadSize",
		"PUBSUB_PUSHAUDIENCE":       "pubsub.pushAudience",
		"ORDERS__STRICTTRANSITIONS": "orders.strictTransitions",
		"STORAGE_BUCKET_URL":        "storage.bucket.url",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

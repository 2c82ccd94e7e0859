package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Scope namespaces idempotency keys so different operations
// never collide on the same inputs
type Scope string

const (
	// ScopeScheduleInvoice keys invoice generation per billing period
	ScopeScheduleInvoice Scope = "schedule_invoice"

	// ScopePayment keys payment collection per invoice
	ScopePayment Scope = "payment"
)

// Generator derives deterministic idempotency keys from operation parameters.
// The same scope and params always hash to the same key.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateKey builds a key from the scope and a param map. Params are
// sorted by name before hashing so map iteration order never changes the key.
func (g *Generator) GenerateKey(scope Scope, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(scope))
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(":%s=%v", k, params[k]))
	}

	hash := sha256.Sum256([]byte(b.String()))
	// first 8 bytes keep the key readable in logs and DB rows
	return fmt.Sprintf("%s-%s", scope, hex.EncodeToString(hash[:8]))
}

// ValidateKey reports whether key is the one GenerateKey would
// produce for the given scope and params.
func (g *Generator) ValidateKey(scope Scope, params map[string]interface{}, key string) bool {
	return g.GenerateKey(scope, params) == key
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	bearerPrefix = "Bearer "
	// invalidToken is the sentinel rejected by the demo gate.
	invalidToken = "invalid-token"

	customerKey = "customer"
)

// demoCustomer is the fixed identity every accepted token maps to. This is a
// demo-only stand-in for real credential verification; the booking ledger
// only ever sees the injected identity.
var demoCustomer = domain.Customer{
	ID:    "C001",
	Name:  "John Smith",
	Email: "john.smith@example.com",
	Phone: "555-123-4567",
}

// Auth checks the bearer token and attaches the customer identity to the
// request context. Missing or malformed headers and the sentinel token are
// rejected with 401; any other token is accepted.
func Auth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "Unauthorized access"},
			)
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if token == invalidToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "Invalid token"},
			)
			return
		}

		c.Set(customerKey, demoCustomer)
		c.Next()
	}
}

// CustomerFrom returns the identity injected by Auth.
func CustomerFrom(c *ginext.Context) (domain.Customer, bool) {
	v, ok := c.Get(customerKey)
	if !ok {
		return domain.Customer{}, false
	}

	customer, ok := v.(domain.Customer)
	return customer, ok
}

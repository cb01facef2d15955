package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber builds a human-presentable unique identifier in the shape
// ORD-<UTC timestamp YYYYMMDDHHMMSS>-<8 uppercase hex chars>. The random
// suffix keeps numbers generated within the same second distinct.
func NewOrderNumber(now time.Time) string {
	timestamp := now.UTC().Format("20060102150405")
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("ORD-%s-%s", timestamp, suffix)
}

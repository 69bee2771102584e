package delivery

import (
	"fmt"
	"math/rand"
)

const (
	orderIDPrefix = "BHA"
	orderIDSuffix = "DELIVERY"

	// 4-digit middle segment leaves only 9000 ids per prefix/suffix pair, so
	// the service re-rolls against the store a bounded number of times.
	orderIDAttempts = 5
)

// newOrderID builds a human-facing order identifier of the form
// BHA<4 digits>DELIVERY, e.g. BHA4821DELIVERY.
func newOrderID() string {
	return fmt.Sprintf("%s%d%s", orderIDPrefix, 1000+rand.Intn(9000), orderIDSuffix)
}

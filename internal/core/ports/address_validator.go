package ports

import (
	"context"

	"moveout/internal/core/domain/model/kernel"
)

// AddressValidator checks an address with an external geocoding service and
// returns its normalized form. Consumed by the order-creation flow only; job
// transitions never re-validate addresses.
type AddressValidator interface {
	Validate(ctx context.Context, address kernel.Address) (kernel.Address, error)
}

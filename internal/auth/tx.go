// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import "context"

// Transactor runs a function inside a single storage transaction. If fn
// returns an error the transaction is rolled back and nothing it wrote is
// observable.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stripe_test
package stripe

import (
	"context"
	"net/http"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	delivery "github.com/tair/storefront/internal/catalog/delivery/http"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
)

// InitializeProductHandler initializes the catalog HTTP handler with all dependencies
func InitializeProductHandler(
	source domain.Source,
	catalogCache domain.Cache,
	favorites domain.FavoriteChecker,
	analytics delivery.Analytics,
) *delivery.ProductHandler {
	wire.Build(
		query.NewLoader,
		query.NewListProductsHandler,
		query.NewGetProductHandler,
		query.NewListCategoriesHandler,
		delivery.NewProductHandler,
	)
	return nil
}

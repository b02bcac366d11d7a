package attributes

import (
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var (
	ExceptionMessageKey = semconv.ExceptionMessageKey
	ExceptionTypeKey    = semconv.ExceptionTypeKey

	AttrDBCollectionKey = attribute.Key("db.collection.name")
	AttrDBDocumentIDKey = attribute.Key("db.document.id")
	AttrDBBackendKey    = attribute.Key("db.system")

	AttrAppProductIDKey    = attribute.Key("app.product.id")
	AttrAppProductNameKey  = attribute.Key("app.product.name")
	AttrProductNewStockKey = attribute.Key("product.new_stock")
	AttrStockDeltaKey      = attribute.Key("product.stock_delta")
	AttrAppProductCount    = attribute.Key("app.products.count")

	AttrAppSaleIDKey     = attribute.Key("app.sale.id")
	AttrAppSaleItemCount = attribute.Key("app.sale.items.count")
	AttrAppSalesCount    = attribute.Key("app.sales.count")

	AttrErrorCodeKey = attribute.Key("app.error.code")
)

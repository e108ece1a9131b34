// Package books serves the public storefront catalog.
package books

import (
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/metrics/viewqueue"
)

type Handler struct {
	Catalog *catalog.Store
	Views   *viewqueue.Queue // nil disables view tracking
}

func New(cat *catalog.Store, views *viewqueue.Queue) *Handler {
	return &Handler{Catalog: cat, Views: views}
}

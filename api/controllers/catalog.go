package controllers

import (
	"net/http"

	"github.com/jpbelardo/tindahan-backend/api/responses"
	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
	"github.com/jpbelardo/tindahan-backend/pkg/logger"
)

// CatalogList returns every sellable variant with its discount schedule.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"variants": snap.List()})
	}
}

// CatalogRefresh forces a reload from the store, bypassing the cache.
func CatalogRefresh(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		snap, err := svc.Refresh(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"variant_count": snap.Len()})
	}
}

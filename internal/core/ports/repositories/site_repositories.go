package repositories

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// SiteReader defines read operations for site data
type SiteReader interface {
	// FindSiteByID retrieves a specific site by its ID.
	FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error)

	// ListSites retrieves all sites.
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// SiteWriter defines write operations for site data
type SiteWriter interface {
	// SaveSite persists a new site.
	SaveSite(ctx context.Context, site domain.Site) (*domain.Site, error)

	// UpdateSiteFields merges the given fields into an existing site.
	UpdateSiteFields(ctx context.Context, siteID string, fields map[string]any) error

	// DeleteSite removes a site. Deleting a missing site is not an error.
	DeleteSite(ctx context.Context, siteID string) error
}

// SiteRepositoryFacade combines all site-related repository interfaces
type SiteRepositoryFacade interface {
	SiteReader
	SiteWriter
}

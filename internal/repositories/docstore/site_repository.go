package docstore

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	store "github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

type DocSiteRepository struct {
	BaseRepository
}

// newDocSiteRepository creates a new repository for site data.
func newDocSiteRepository(client store.Client) portsrepo.SiteRepositoryFacade {
	return &DocSiteRepository{
		BaseRepository: BaseRepository{Client: client},
	}
}

// Ensure DocSiteRepository implements portsrepo.SiteRepositoryFacade
var _ portsrepo.SiteRepositoryFacade = (*DocSiteRepository)(nil)

// DecodeSite converts a raw ferme document into a domain site.
func DecodeSite(doc store.Document) (domain.Site, error) {
	var site domain.Site
	if err := decodeInto(doc, &site); err != nil {
		return domain.Site{}, err
	}
	site.SiteID = doc.ID
	site.CreatedAt = doc.CreatedAt
	site.UpdatedAt = doc.UpdatedAt
	return site, nil
}

func (r *DocSiteRepository) FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	doc, err := r.Client.Get(ctx, store.CollectionFermes, siteID)
	if err != nil {
		return nil, err
	}
	site, err := DecodeSite(*doc)
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *DocSiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	docs, err := r.Client.List(ctx, store.CollectionFermes, nil)
	if err != nil {
		return nil, err
	}
	sites := make([]domain.Site, 0, len(docs))
	for _, doc := range docs {
		site, err := DecodeSite(doc)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, nil
}

func (r *DocSiteRepository) SaveSite(ctx context.Context, site domain.Site) (*domain.Site, error) {
	doc, err := r.Client.Create(ctx, store.CollectionFermes, site.SiteID, site)
	if err != nil {
		return nil, err
	}
	saved, err := DecodeSite(*doc)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DocSiteRepository) UpdateSiteFields(ctx context.Context, siteID string, fields map[string]any) error {
	return r.Client.Update(ctx, store.CollectionFermes, siteID, fields)
}

func (r *DocSiteRepository) DeleteSite(ctx context.Context, siteID string) error {
	return r.Client.Delete(ctx, store.CollectionFermes, siteID)
}

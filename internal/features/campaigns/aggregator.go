package campaigns

import (
	"fmt"
	"sync"

	"promoforge-backend/internal/features/content"
	"promoforge-backend/internal/features/products"
	workspaces_models "promoforge-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

// CampaignMaterials is the fully resolved set of items a workspace
// references. It is only ever produced complete: if any referenced id
// does not resolve, loading fails with a PartialLoadError.
type CampaignMaterials struct {
	Products []*products.Product
	Social   []*content.SocialContent
	Images   []*content.GeneratedImage
}

type Aggregator struct {
	productLoader ProductLoader
	contentLoader ContentLoader
}

func NewAggregator(productLoader ProductLoader, contentLoader ContentLoader) *Aggregator {
	return &Aggregator{
		productLoader: productLoader,
		contentLoader: contentLoader,
	}
}

// Load resolves the referenced products and content items. The three
// stores are queried concurrently; the slowest lookup bounds the total
// time instead of the sum of all three.
func (a *Aggregator) Load(
	productIDs []uuid.UUID,
	contentRefs []*workspaces_models.WorkspaceContent,
) (*CampaignMaterials, error) {
	socialIDs := make([]uuid.UUID, 0)
	imageIDs := make([]uuid.UUID, 0)

	for _, ref := range contentRefs {
		switch ref.ContentType {
		case workspaces_models.ContentTypeSocial:
			socialIDs = append(socialIDs, ref.ContentID)
		case workspaces_models.ContentTypeImage:
			imageIDs = append(imageIDs, ref.ContentID)
		default:
			return nil, fmt.Errorf(
				"unknown content type %q on workspace content %s",
				ref.ContentType, ref.ID,
			)
		}
	}

	var (
		loadedProducts []*products.Product
		loadedSocial   []*content.SocialContent
		loadedImages   []*content.GeneratedImage

		productsErr error
		socialErr   error
		imagesErr   error
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		loadedProducts, productsErr = a.productLoader.GetProductsByIDs(productIDs)
	}()

	go func() {
		defer wg.Done()
		loadedSocial, socialErr = a.contentLoader.GetSocialContentByIDs(socialIDs)
	}()

	go func() {
		defer wg.Done()
		loadedImages, imagesErr = a.contentLoader.GetGeneratedImagesByIDs(imageIDs)
	}()

	wg.Wait()

	if productsErr != nil {
		return nil, fmt.Errorf("failed to load products: %w", productsErr)
	}

	if socialErr != nil {
		return nil, fmt.Errorf("failed to load social content: %w", socialErr)
	}

	if imagesErr != nil {
		return nil, fmt.Errorf("failed to load generated images: %w", imagesErr)
	}

	resolvedProducts := make([]uuid.UUID, len(loadedProducts))
	for i, p := range loadedProducts {
		resolvedProducts[i] = p.ID
	}

	resolvedSocial := make([]uuid.UUID, len(loadedSocial))
	for i, s := range loadedSocial {
		resolvedSocial[i] = s.ID
	}

	resolvedImages := make([]uuid.UUID, len(loadedImages))
	for i, img := range loadedImages {
		resolvedImages[i] = img.ID
	}

	missingProducts := missingIDs(productIDs, resolvedProducts)
	missingSocial := missingIDs(socialIDs, resolvedSocial)
	missingImages := missingIDs(imageIDs, resolvedImages)

	if len(missingProducts) > 0 || len(missingSocial) > 0 || len(missingImages) > 0 {
		return nil, &PartialLoadError{
			MissingProducts: missingProducts,
			MissingSocial:   missingSocial,
			MissingImages:   missingImages,
		}
	}

	return &CampaignMaterials{
		Products: loadedProducts,
		Social:   loadedSocial,
		Images:   loadedImages,
	}, nil
}

func missingIDs(requested []uuid.UUID, resolved []uuid.UUID) []uuid.UUID {
	found := make(map[uuid.UUID]struct{}, len(resolved))
	for _, id := range resolved {
		found[id] = struct{}{}
	}

	var missing []uuid.UUID
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

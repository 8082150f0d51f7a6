package campaigns

import (
	"errors"
	"testing"

	"promoforge-backend/internal/features/content"
	"promoforge-backend/internal/features/products"
	workspaces_models "promoforge-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductLoader struct {
	products map[uuid.UUID]*products.Product
	err      error
}

func (f *fakeProductLoader) GetProductsByIDs(ids []uuid.UUID) ([]*products.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	var found []*products.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			found = append(found, p)
		}
	}

	return found, nil
}

type fakeContentLoader struct {
	social map[uuid.UUID]*content.SocialContent
	images map[uuid.UUID]*content.GeneratedImage
}

func (f *fakeContentLoader) GetSocialContentByIDs(
	ids []uuid.UUID,
) ([]*content.SocialContent, error) {
	var found []*content.SocialContent
	for _, id := range ids {
		if s, ok := f.social[id]; ok {
			found = append(found, s)
		}
	}

	return found, nil
}

func (f *fakeContentLoader) GetGeneratedImagesByIDs(
	ids []uuid.UUID,
) ([]*content.GeneratedImage, error) {
	var found []*content.GeneratedImage
	for _, id := range ids {
		if img, ok := f.images[id]; ok {
			found = append(found, img)
		}
	}

	return found, nil
}

func contentRef(
	contentType workspaces_models.ContentType,
	contentID uuid.UUID,
) *workspaces_models.WorkspaceContent {
	return &workspaces_models.WorkspaceContent{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		ContentType: contentType,
		ContentID:   contentID,
	}
}

func Test_Load_AllReferencesResolve_ReturnsMaterials(t *testing.T) {
	product := &products.Product{ID: uuid.New(), Name: "Sneakers"}
	post := &content.SocialContent{ID: uuid.New(), Platform: "instagram"}
	image := &content.GeneratedImage{ID: uuid.New(), Platform: "instagram"}

	aggregator := NewAggregator(
		&fakeProductLoader{products: map[uuid.UUID]*products.Product{product.ID: product}},
		&fakeContentLoader{
			social: map[uuid.UUID]*content.SocialContent{post.ID: post},
			images: map[uuid.UUID]*content.GeneratedImage{image.ID: image},
		},
	)

	materials, err := aggregator.Load(
		[]uuid.UUID{product.ID},
		[]*workspaces_models.WorkspaceContent{
			contentRef(workspaces_models.ContentTypeSocial, post.ID),
			contentRef(workspaces_models.ContentTypeImage, image.ID),
		},
	)

	require.NoError(t, err)
	assert.Len(t, materials.Products, 1)
	assert.Len(t, materials.Social, 1)
	assert.Len(t, materials.Images, 1)
}

func Test_Load_EmptyReferences_ReturnsEmptyMaterials(t *testing.T) {
	aggregator := NewAggregator(
		&fakeProductLoader{products: map[uuid.UUID]*products.Product{}},
		&fakeContentLoader{},
	)

	materials, err := aggregator.Load(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, materials.Products)
	assert.Empty(t, materials.Social)
	assert.Empty(t, materials.Images)
}

func Test_Load_UnresolvedProduct_ReturnsPartialLoadError(t *testing.T) {
	missingID := uuid.New()

	aggregator := NewAggregator(
		&fakeProductLoader{products: map[uuid.UUID]*products.Product{}},
		&fakeContentLoader{},
	)

	materials, err := aggregator.Load([]uuid.UUID{missingID}, nil)

	assert.Nil(t, materials)
	assert.ErrorIs(t, err, ErrPartialLoad)

	var partial *PartialLoadError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []uuid.UUID{missingID}, partial.MissingProducts)
}

func Test_Load_UnresolvedContent_ReportsEachKind(t *testing.T) {
	missingSocial := uuid.New()
	missingImage := uuid.New()

	aggregator := NewAggregator(
		&fakeProductLoader{products: map[uuid.UUID]*products.Product{}},
		&fakeContentLoader{},
	)

	_, err := aggregator.Load(nil, []*workspaces_models.WorkspaceContent{
		contentRef(workspaces_models.ContentTypeSocial, missingSocial),
		contentRef(workspaces_models.ContentTypeImage, missingImage),
	})

	var partial *PartialLoadError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []uuid.UUID{missingSocial}, partial.MissingSocial)
	assert.Equal(t, []uuid.UUID{missingImage}, partial.MissingImages)
	assert.Empty(t, partial.MissingProducts)
}

func Test_Load_StoreFailure_ReturnsWrappedError(t *testing.T) {
	storeErr := errors.New("connection refused")

	aggregator := NewAggregator(
		&fakeProductLoader{err: storeErr},
		&fakeContentLoader{},
	)

	_, err := aggregator.Load([]uuid.UUID{uuid.New()}, nil)

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrPartialLoad)
}

func Test_Load_UnknownContentType_ReturnsError(t *testing.T) {
	aggregator := NewAggregator(
		&fakeProductLoader{products: map[uuid.UUID]*products.Product{}},
		&fakeContentLoader{},
	)

	_, err := aggregator.Load(nil, []*workspaces_models.WorkspaceContent{
		contentRef("carousel", uuid.New()),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content type")
	assert.NotErrorIs(t, err, ErrPartialLoad)
}

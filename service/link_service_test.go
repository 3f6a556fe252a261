// service/link_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	"github.com/SAHAYOGESHWARAN/guries-sub010/dao"
	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

func createService(t *testing.T, env *testEnv, name string) *model.Service {
	t.Helper()
	svc, err := env.services.Taxonomy.CreateService(context.Background(), model.Service{Name: name}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
	return svc
}

func TestStaticLinkCreatedOnUpload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := createService(t, env, "web-design")

	asset, err := env.services.Asset.CreateAsset(ctx, model.CreateAssetRequest{
		Name:            "service-banner",
		LinkedServiceID: &svc.ID,
	}, "creator1", auth.RoleUser)
	require.NoError(t, err)

	linked, err := env.services.Link.ListServiceAssets(ctx, svc.ID, false)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, asset.ID, linked[0].ID)
	assert.True(t, linked[0].LinkIsStatic)
}

func TestUnlinkStaticLinkRefused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := createService(t, env, "seo")

	asset, err := env.services.Asset.CreateAsset(ctx, model.CreateAssetRequest{
		Name:            "seo-guide",
		LinkedServiceID: &svc.ID,
	}, "creator1", auth.RoleUser)
	require.NoError(t, err)

	err = env.services.Link.UnlinkFromService(ctx, model.LinkRequest{
		AssetID:   asset.ID,
		ServiceID: svc.ID,
	}, "admin1", auth.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrStaticLinkProtected))

	// The link row must survive the refused removal.
	linked, err := env.services.Link.ListServiceAssets(ctx, svc.ID, false)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.True(t, linked[0].LinkIsStatic)
}

func TestDynamicLinkRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := createService(t, env, "content-marketing")

	asset, err := env.services.Asset.CreateAsset(ctx, model.CreateAssetRequest{Name: "case-study"}, "creator1", auth.RoleUser)
	require.NoError(t, err)

	link, err := env.services.Link.LinkToService(ctx, model.LinkRequest{
		AssetID:   asset.ID,
		ServiceID: svc.ID,
	}, "manager1", auth.RoleManager)
	require.NoError(t, err)
	assert.False(t, link.IsStatic)

	// Linking the same pair again returns the existing row.
	again, err := env.services.Link.LinkToService(ctx, model.LinkRequest{
		AssetID:   asset.ID,
		ServiceID: svc.ID,
	}, "manager1", auth.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, link.ID, again.ID)

	err = env.services.Link.UnlinkFromService(ctx, model.LinkRequest{
		AssetID:   asset.ID,
		ServiceID: svc.ID,
	}, "manager1", auth.RoleManager)
	require.NoError(t, err)

	linked, err := env.services.Link.ListServiceAssets(ctx, svc.ID, false)
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestLinkToUnknownAssetFails(t *testing.T) {
	env := newTestEnv(t)
	svc := createService(t, env, "ppc")

	_, err := env.services.Link.LinkToService(context.Background(), model.LinkRequest{
		AssetID:   4242,
		ServiceID: svc.ID,
	}, "manager1", auth.RoleManager)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrAssetNotFound))
}

func TestLinkDeniedWithoutManageLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := createService(t, env, "email")

	asset, err := env.services.Asset.CreateAsset(ctx, model.CreateAssetRequest{Name: "newsletter"}, "creator1", auth.RoleUser)
	require.NoError(t, err)

	_, err = env.services.Link.LinkToService(ctx, model.LinkRequest{
		AssetID:   asset.ID,
		ServiceID: svc.ID,
	}, "user1", auth.RoleUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrPermissionDenied))
}

func TestVisibleListingFollowsApproval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := createService(t, env, "branding")

	asset, err := env.services.Asset.CreateAsset(ctx, model.CreateAssetRequest{
		Name:            "logo-pack",
		LinkedServiceID: &svc.ID,
	}, "creator1", auth.RoleUser)
	require.NoError(t, err)

	// Before approval the link exists but the asset is not visible.
	visible, err := env.services.Link.ListServiceAssets(ctx, svc.ID, true)
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = env.services.Asset.SubmitForQC(ctx, asset.ID, "creator1", auth.RoleUser)
	require.NoError(t, err)
	_, err = env.services.Asset.ReviewAsset(ctx, asset.ID, model.QCDecisionRequest{Action: "approve"}, "reviewer1", auth.RoleQC)
	require.NoError(t, err)

	visible, err = env.services.Link.ListServiceAssets(ctx, svc.ID, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, asset.ID, visible[0].ID)

	// Rejection hides the asset again without touching the link.
	_, err = env.services.Asset.ReviewAsset(ctx, asset.ID, model.QCDecisionRequest{Action: "reject"}, "reviewer1", auth.RoleQC)
	require.NoError(t, err)

	visible, err = env.services.Link.ListServiceAssets(ctx, svc.ID, true)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := env.services.Link.ListServiceAssets(ctx, svc.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubServiceLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := createService(t, env, "development")

	sub, err := env.services.Taxonomy.CreateSubService(ctx, model.SubService{
		Name:      "frontend",
		ServiceID: svc.ID,
	}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)

	asset, err := env.services.Asset.CreateAsset(ctx, model.CreateAssetRequest{
		Name:                "component-library",
		LinkedSubServiceIDs: []int64{sub.ID},
	}, "creator1", auth.RoleUser)
	require.NoError(t, err)

	linked, err := env.services.Link.ListSubServiceAssets(ctx, sub.ID, false)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, asset.ID, linked[0].ID)
	assert.True(t, linked[0].LinkIsStatic)

	err = env.services.Link.UnlinkFromSubService(ctx, model.LinkRequest{
		AssetID:      asset.ID,
		SubServiceID: sub.ID,
	}, "admin1", auth.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrStaticLinkProtected))
}

func TestCreateWithoutSelectionHasNoLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	asset, err := env.services.Asset.CreateAsset(ctx, model.CreateAssetRequest{Name: "unlinked"}, "creator1", auth.RoleUser)
	require.NoError(t, err)

	count, err := dao.NewLinkDAO(env.db).CountServiceLinks(ctx, asset.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUnknownServiceListsEmpty(t *testing.T) {
	env := newTestEnv(t)

	linked, err := env.services.Link.ListServiceAssets(context.Background(), 777, false)
	require.NoError(t, err)
	assert.Empty(t, linked)
}

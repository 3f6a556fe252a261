// service/taxonomy_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

func TestServiceCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.services.Taxonomy.CreateService(ctx, model.Service{
		Name: "Web Design",
		Slug: "web-design",
	}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := env.services.Taxonomy.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web Design", fetched.Name)

	fetched.Description = "full site builds"
	updated, err := env.services.Taxonomy.UpdateService(ctx, *fetched, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "full site builds", updated.Description)

	services, err := env.services.Taxonomy.ListServices(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestGetUnknownService(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Taxonomy.GetService(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrServiceNotFound))
}

func TestCreateSubServiceRequiresParent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Taxonomy.CreateSubService(ctx, model.SubService{
		Name:      "orphan",
		ServiceID: 999,
	}, "admin1", auth.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrServiceNotFound))

	parent, err := env.services.Taxonomy.CreateService(ctx, model.Service{
		Name: "Development",
		Slug: "development",
	}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)

	sub, err := env.services.Taxonomy.CreateSubService(ctx, model.SubService{
		Name:      "Backend",
		Slug:      "backend",
		ServiceID: parent.ID,
	}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)

	subs, err := env.services.Taxonomy.ListSubServices(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.ID, subs[0].ID)
}

func TestTaxonomyMutationsRequireManageMasters(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Taxonomy.CreateService(context.Background(), model.Service{
		Name: "Denied",
		Slug: "denied",
	}, "manager1", auth.RoleManager)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrPermissionDenied))
}

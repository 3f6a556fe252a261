// service/master_service_test.go
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

func TestCountryCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.services.Master.CreateCountry(ctx, model.Country{
		Code: "IN",
		Name: "India",
	}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	countries, err := env.services.Master.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "IN", countries[0].Code)

	err = env.services.Master.DeleteCountry(ctx, created.ID, "admin1", auth.RoleAdmin)
	require.NoError(t, err)

	countries, err = env.services.Master.ListCountries(ctx)
	require.NoError(t, err)
	assert.Empty(t, countries)
}

func TestMasterMutationsRequireManageMasters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Master.CreateCountry(ctx, model.Country{Code: "US", Name: "United States"}, "user1", auth.RoleUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrPermissionDenied))

	_, err = env.services.Master.CreatePlatform(ctx, model.Platform{Name: "Instagram"}, "qc1", auth.RoleQC)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrPermissionDenied))
}

func TestPlatformCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.services.Master.CreatePlatform(ctx, model.Platform{
		Name:   "LinkedIn",
		Active: true,
	}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	platforms, err := env.services.Master.ListPlatforms(ctx)
	require.NoError(t, err)
	require.Len(t, platforms, 1)

	err = env.services.Master.DeletePlatform(ctx, created.ID, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
}

func TestWeightageConfigSumRule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Master.CreateWeightageConfig(ctx, model.QCWeightageConfig{
		Name:             "unbalanced",
		ContentWeight:    50,
		DesignWeight:     30,
		SEOWeight:        10,
		ComplianceWeight: 5,
	}, "admin1", auth.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrInvalidWeightage))

	created, err := env.services.Master.CreateWeightageConfig(ctx, model.QCWeightageConfig{
		Name:             "standard",
		ContentWeight:    40,
		DesignWeight:     30,
		SEOWeight:        20,
		ComplianceWeight: 10,
		Active:           true,
	}, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 100, created.WeightSum())

	fetched, err := env.services.Master.GetWeightageConfig(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, fetched.ContentWeight)

	// Updates re-validate the sum.
	fetched.DesignWeight = 50
	_, err = env.services.Master.UpdateWeightageConfig(ctx, *fetched, "admin1", auth.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrInvalidWeightage))

	fetched.ContentWeight = 20
	updated, err := env.services.Master.UpdateWeightageConfig(ctx, *fetched, "admin1", auth.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.WeightSum())
}

// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"codeberg.org/oliverandrich/nobias/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocation(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	loc := &models.Location{Name: "Germany", Kind: models.LocationCountry}
	err := repo.CreateLocation(ctx, loc)

	require.NoError(t, err)
	assert.NotZero(t, loc.ID)
}

func TestFindLocation(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	created := testutil.NewTestCountry(t, repo, "Germany")

	found, err := repo.FindLocation(ctx, "Germany", models.LocationCountry)

	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestFindLocation_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := repo.FindLocation(ctx, "Atlantis", models.LocationCountry)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListCountries(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestCountry(t, repo, "Germany")
	testutil.NewTestCountry(t, repo, "Austria")

	countries, err := repo.ListCountries(ctx)

	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Austria", countries[0].Name)
	assert.Equal(t, "Germany", countries[1].Name)
}

func TestListStatesByCountry(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	germany := testutil.NewTestCountry(t, repo, "Germany")
	austria := testutil.NewTestCountry(t, repo, "Austria")
	testutil.NewTestState(t, repo, "Bavaria", germany.ID)
	testutil.NewTestState(t, repo, "Tyrol", austria.ID)

	states, err := repo.ListStatesByCountry(ctx, germany.ID)

	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "Bavaria", states[0].Name)
}

func TestListCitiesByState(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	germany := testutil.NewTestCountry(t, repo, "Germany")
	bavaria := testutil.NewTestState(t, repo, "Bavaria", germany.ID)
	testutil.NewTestCity(t, repo, "Munich", bavaria.ID)
	testutil.NewTestCity(t, repo, "Augsburg", bavaria.ID)

	cities, err := repo.ListCitiesByState(ctx, bavaria.ID)

	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Augsburg", cities[0].Name)
}

func TestListStates_PopulatesCountryName(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	germany := testutil.NewTestCountry(t, repo, "Germany")
	testutil.NewTestState(t, repo, "Bavaria", germany.ID)

	states, err := repo.ListStates(ctx)

	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "Germany", states[0].CountryName)
}

func TestDeleteLocation_CascadesToChildren(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	germany := testutil.NewTestCountry(t, repo, "Germany")
	bavaria := testutil.NewTestState(t, repo, "Bavaria", germany.ID)
	munich := testutil.NewTestCity(t, repo, "Munich", bavaria.ID)

	err := repo.DeleteLocation(ctx, germany.ID)

	require.NoError(t, err)
	_, err = repo.GetLocation(ctx, bavaria.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetLocation(ctx, munich.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteLocation_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	err := repo.DeleteLocation(ctx, 999)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStateBelongsToCountry(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	germany := testutil.NewTestCountry(t, repo, "Germany")
	austria := testutil.NewTestCountry(t, repo, "Austria")
	bavaria := testutil.NewTestState(t, repo, "Bavaria", germany.ID)

	ok, err := repo.StateBelongsToCountry(ctx, bavaria.ID, germany.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.StateBelongsToCountry(ctx, bavaria.ID, austria.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCityBelongsToState(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	germany := testutil.NewTestCountry(t, repo, "Germany")
	bavaria := testutil.NewTestState(t, repo, "Bavaria", germany.ID)
	saxony := testutil.NewTestState(t, repo, "Saxony", germany.ID)
	munich := testutil.NewTestCity(t, repo, "Munich", bavaria.ID)

	ok, err := repo.CityBelongsToState(ctx, munich.ID, bavaria.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CityBelongsToState(ctx, munich.ID, saxony.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

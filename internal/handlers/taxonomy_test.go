// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"codeberg.org/oliverandrich/nobias/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDiscriminationTypeHandler(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	code, body := jsonRequest(t, h.CreateDiscriminationType, http.MethodPost, "/api/admin/discrimination-types",
		`{"name":"Workplace"}`)

	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, body, "Workplace")

	code, _ = jsonRequest(t, h.CreateDiscriminationType, http.MethodPost, "/api/admin/discrimination-types",
		`{"name":"Workplace"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = jsonRequest(t, h.CreateDiscriminationType, http.MethodPost, "/api/admin/discrimination-types",
		`{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDiscriminationTypesHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	testutil.NewTestDiscrimination(t, repo, "Workplace", "Unequal pay")

	code, body := jsonRequest(t, h.DiscriminationTypes, http.MethodGet, "/api/discrimination-types", "")

	assert.Equal(t, http.StatusOK, code)
	var types []models.DiscriminationType
	require.NoError(t, json.Unmarshal([]byte(body), &types))
	assert.Len(t, types, 1)
}

func TestUpdateDiscriminationTypeHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	ctx := context.Background()

	dt := &models.DiscriminationType{Name: "Workplace"}
	require.NoError(t, repo.CreateDiscriminationType(ctx, dt))
	other := &models.DiscriminationType{Name: "Housing"}
	require.NoError(t, repo.CreateDiscriminationType(ctx, other))
	id := strconv.FormatInt(dt.ID, 10)

	code, body := authedRequest(t, h.UpdateDiscriminationType, nil, http.MethodPut, "/api/admin/discrimination-types/1",
		`{"name":"Employment"}`, map[string]string{"id": id})
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Employment")

	// Renaming onto another type's name conflicts.
	code, _ = authedRequest(t, h.UpdateDiscriminationType, nil, http.MethodPut, "/api/admin/discrimination-types/1",
		`{"name":"Housing"}`, map[string]string{"id": id})
	assert.Equal(t, http.StatusConflict, code)

	// Renaming to its own name is a no-op, not a conflict.
	code, _ = authedRequest(t, h.UpdateDiscriminationType, nil, http.MethodPut, "/api/admin/discrimination-types/1",
		`{"name":"Employment"}`, map[string]string{"id": id})
	assert.Equal(t, http.StatusOK, code)

	code, _ = authedRequest(t, h.UpdateDiscriminationType, nil, http.MethodPut, "/api/admin/discrimination-types/999",
		`{"name":"Ghost"}`, map[string]string{"id": "999"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteDiscriminationTypeHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	dt, d := testutil.NewTestDiscrimination(t, repo, "Workplace", "Unequal pay")

	code, _ := authedRequest(t, h.DeleteDiscriminationType, nil, http.MethodDelete, "/api/admin/discrimination-types/1",
		"", map[string]string{"id": strconv.FormatInt(dt.ID, 10)})

	assert.Equal(t, http.StatusOK, code)
	_, err := repo.GetDiscrimination(context.Background(), d.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateDiscriminationHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	dt := &models.DiscriminationType{Name: "Workplace"}
	require.NoError(t, repo.CreateDiscriminationType(context.Background(), dt))

	payload := fmt.Sprintf(`{"name":"Unequal pay","type_id":%d,"description":"Pay gap."}`, dt.ID)
	code, body := jsonRequest(t, h.CreateDiscrimination, http.MethodPost, "/api/admin/discriminations", payload)

	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, body, "Unequal pay")

	code, _ = jsonRequest(t, h.CreateDiscrimination, http.MethodPost, "/api/admin/discriminations", payload)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = jsonRequest(t, h.CreateDiscrimination, http.MethodPost, "/api/admin/discriminations",
		`{"name":"Orphan","type_id":999}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDiscriminationsHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	testutil.NewTestDiscrimination(t, repo, "Workplace", "Unequal pay")

	code, body := jsonRequest(t, h.Discriminations, http.MethodGet, "/api/discriminations", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"type_name":"Workplace"`)
}

func TestDiscriminationsByTypeHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	dt, _ := testutil.NewTestDiscrimination(t, repo, "Workplace", "Unequal pay")
	testutil.NewTestDiscrimination(t, repo, "Housing", "Rental refusal")

	code, body := authedRequest(t, h.DiscriminationsByType, nil, http.MethodGet, "/api/discrimination-types/1/discriminations",
		"", map[string]string{"typeId": strconv.FormatInt(dt.ID, 10)})

	assert.Equal(t, http.StatusOK, code)
	var ds []models.Discrimination
	require.NoError(t, json.Unmarshal([]byte(body), &ds))
	require.Len(t, ds, 1)
	assert.Equal(t, "Unequal pay", ds[0].Name)
}

func TestGenderTypeHandlers(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	code, created := jsonRequest(t, h.CreateGenderType, http.MethodPost, "/api/admin/gender-types",
		`{"name":"non-binary"}`)
	assert.Equal(t, http.StatusCreated, code)

	code, _ = jsonRequest(t, h.CreateGenderType, http.MethodPost, "/api/admin/gender-types",
		`{"name":"non-binary"}`)
	assert.Equal(t, http.StatusConflict, code)

	var resp struct {
		Gender models.GenderType `json:"gender"`
	}
	require.NoError(t, json.Unmarshal([]byte(created), &resp))
	id := strconv.FormatInt(resp.Gender.ID, 10)

	code, _ = authedRequest(t, h.UpdateGenderType, nil, http.MethodPut, "/api/admin/gender-types/1",
		`{"name":"nonbinary"}`, map[string]string{"id": id})
	assert.Equal(t, http.StatusOK, code)

	code, body := jsonRequest(t, h.GenderTypes, http.MethodGet, "/api/gender-types", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "nonbinary")

	code, _ = authedRequest(t, h.DeleteGenderType, nil, http.MethodDelete, "/api/admin/gender-types/1",
		"", map[string]string{"id": id})
	assert.Equal(t, http.StatusOK, code)

	code, _ = authedRequest(t, h.DeleteGenderType, nil, http.MethodDelete, "/api/admin/gender-types/1",
		"", map[string]string{"id": id})
	assert.Equal(t, http.StatusNotFound, code)
}

// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCountryHandler(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	code, body := jsonRequest(t, h.CreateCountry, http.MethodPost, "/api/admin/locations/countries",
		`{"name":"Germany"}`)

	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, body, `"kind":"country"`)

	code, _ = jsonRequest(t, h.CreateCountry, http.MethodPost, "/api/admin/locations/countries",
		`{"name":"Germany"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = jsonRequest(t, h.CreateCountry, http.MethodPost, "/api/admin/locations/countries",
		`{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateStateHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	country := testutil.NewTestCountry(t, repo, "Germany")

	code, body := jsonRequest(t, h.CreateState, http.MethodPost, "/api/admin/locations/states",
		fmt.Sprintf(`{"name":"Bavaria","country_id":%d}`, country.ID))

	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, body, `"kind":"state"`)

	// Unknown parent country.
	code, _ = jsonRequest(t, h.CreateState, http.MethodPost, "/api/admin/locations/states",
		`{"name":"Nowhere","country_id":999}`)
	assert.Equal(t, http.StatusBadRequest, code)

	// A state cannot hang off another state.
	var resp struct {
		Location models.Location `json:"location"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	code, _ = jsonRequest(t, h.CreateState, http.MethodPost, "/api/admin/locations/states",
		fmt.Sprintf(`{"name":"Nested","country_id":%d}`, resp.Location.ID))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateCityHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	country := testutil.NewTestCountry(t, repo, "Germany")
	state := testutil.NewTestState(t, repo, "Bavaria", country.ID)

	code, body := jsonRequest(t, h.CreateCity, http.MethodPost, "/api/admin/locations/cities",
		fmt.Sprintf(`{"name":"Munich","state_id":%d}`, state.ID))

	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, body, `"kind":"city"`)

	// A city must hang off a state, not a country.
	code, _ = jsonRequest(t, h.CreateCity, http.MethodPost, "/api/admin/locations/cities",
		fmt.Sprintf(`{"name":"Berlin","state_id":%d}`, country.ID))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCountriesHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	testutil.NewTestCountry(t, repo, "Germany")
	testutil.NewTestCountry(t, repo, "Austria")

	code, body := jsonRequest(t, h.Countries, http.MethodGet, "/api/locations/countries", "")

	assert.Equal(t, http.StatusOK, code)
	var countries []models.Location
	require.NoError(t, json.Unmarshal([]byte(body), &countries))
	assert.Len(t, countries, 2)
}

func TestStatesByCountryHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	germany := testutil.NewTestCountry(t, repo, "Germany")
	austria := testutil.NewTestCountry(t, repo, "Austria")
	testutil.NewTestState(t, repo, "Bavaria", germany.ID)
	testutil.NewTestState(t, repo, "Tyrol", austria.ID)

	code, body := authedRequest(t, h.StatesByCountry, nil, http.MethodGet, "/api/locations/states/1", "",
		map[string]string{"countryId": strconv.FormatInt(germany.ID, 10)})

	assert.Equal(t, http.StatusOK, code)
	var states []models.Location
	require.NoError(t, json.Unmarshal([]byte(body), &states))
	require.Len(t, states, 1)
	assert.Equal(t, "Bavaria", states[0].Name)
}

func TestCitiesByStateHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	germany := testutil.NewTestCountry(t, repo, "Germany")
	bavaria := testutil.NewTestState(t, repo, "Bavaria", germany.ID)
	testutil.NewTestCity(t, repo, "Munich", bavaria.ID)

	code, body := authedRequest(t, h.CitiesByState, nil, http.MethodGet, "/api/locations/cities/1", "",
		map[string]string{"stateId": strconv.FormatInt(bavaria.ID, 10)})

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Munich")
}

func TestDeleteLocationHandler(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	country := testutil.NewTestCountry(t, repo, "Germany")

	code, body := authedRequest(t, h.DeleteLocation, nil, http.MethodDelete, "/api/admin/locations/1", "",
		map[string]string{"id": strconv.FormatInt(country.ID, 10)})

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "deleted successfully")

	code, _ = authedRequest(t, h.DeleteLocation, nil, http.MethodDelete, "/api/admin/locations/999", "",
		map[string]string{"id": "999"})
	assert.Equal(t, http.StatusNotFound, code)
}

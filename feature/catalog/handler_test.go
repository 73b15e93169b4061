package catalog_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"game-catalog/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp(t *testing.T, feed catalog.Feed) (*fiber.App, *catalog.Repository) {
	t.Helper()

	feature := newTestFeature(t, feed)
	app := fiber.New()
	assert.NoError(t, feature.Load(app))
	return app, feature.Repository()
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var out T
	assert.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHandler_GetAll(t *testing.T) {
	feed := &stubFeed{records: []catalog.RawRecord{minecraftRecord()}}
	app, _ := newTestApp(t, feed)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videogames", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entities := decodeBody[[]catalog.VideogameEntity](t, resp)
	assert.Len(t, entities, 1)
	assert.Equal(t, "Minecraft", entities[0].Title)
}

func TestHandler_GetAll_StrategyOverride(t *testing.T) {
	feed := &stubFeed{records: []catalog.RawRecord{minecraftRecord()}}
	app, _ := newTestApp(t, feed)

	// local_only against an empty store returns an empty catalog and never
	// touches the feed.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videogames?strategy=local_only", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]catalog.VideogameEntity](t, resp))
	assert.Equal(t, 0, feed.callCount())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames?strategy=nope", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_GetAll_FeedFailureIsBadGateway(t *testing.T) {
	feed := &stubFeed{err: catalog.NetworkError(assert.AnError)}
	app, _ := newTestApp(t, feed)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videogames?strategy=remote_only", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "network", body["kind"])
	assert.Equal(t, "The catalog feed could not be reached.", body["error"])
}

func TestHandler_GetByID(t *testing.T) {
	feed := &stubFeed{records: []catalog.RawRecord{minecraftRecord()}}
	app, _ := newTestApp(t, feed)

	// Populate through the API itself.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videogames", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames/Minecraft", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entity := decodeBody[catalog.VideogameEntity](t, resp)
	assert.Equal(t, "Mojang Studios", entity.Developer.Name)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames/Unknown", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "not_found", body["kind"])
}

func TestHandler_SaveValidatesBody(t *testing.T) {
	app, _ := newTestApp(t, &stubFeed{})

	req := httptest.NewRequest(http.MethodPost, "/videogames", strings.NewReader(`{"title": ""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/videogames", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_SaveAndDelete(t *testing.T) {
	app, _ := newTestApp(t, &stubFeed{})

	payload := `{
		"title": "Minecraft",
		"description": "A sandbox game.",
		"release_date": "2009-05-17T00:00:00Z",
		"logo": "minecraft.png",
		"developer": {"name": "Mojang Studios", "logo": "mojang.png"},
		"platforms": ["pc"],
		"screenshot_identifiers": ["minecraft-1.png"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/videogames", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decodeBody[catalog.VideogameEntity](t, resp)
	assert.Equal(t, "Minecraft", saved.ID)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/videogames/Minecraft", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/videogames/Minecraft", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_FavoriteFlow(t *testing.T) {
	feed := &stubFeed{records: []catalog.RawRecord{minecraftRecord()}}
	app, _ := newTestApp(t, feed)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videogames", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodPut, "/videogames/Minecraft/favorite", strings.NewReader(`{"is_favorite": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entity := decodeBody[catalog.VideogameEntity](t, resp)
	assert.True(t, entity.IsFavorite)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames/favorites", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	favorites := decodeBody[[]catalog.VideogameEntity](t, resp)
	assert.Len(t, favorites, 1)
	assert.Equal(t, "Minecraft", favorites[0].Title)
}

func TestHandler_Search(t *testing.T) {
	feed := &stubFeed{records: []catalog.RawRecord{minecraftRecord(), astroneerRecord()}}
	app, _ := newTestApp(t, feed)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videogames", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames/search?developer=system", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	matches := decodeBody[[]catalog.VideogameEntity](t, resp)
	assert.Len(t, matches, 1)
	assert.Equal(t, "Astroneer", matches[0].Title)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames/search?year=2009", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	matches = decodeBody[[]catalog.VideogameEntity](t, resp)
	assert.Len(t, matches, 1)
	assert.Equal(t, "Minecraft", matches[0].Title)

	// No match still returns an empty array, not null.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames/search?developer=valve", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	matches = decodeBody[[]catalog.VideogameEntity](t, resp)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/videogames/search", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_GetDevelopers(t *testing.T) {
	feed := &stubFeed{records: []catalog.RawRecord{minecraftRecord(), astroneerRecord()}}
	app, _ := newTestApp(t, feed)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videogames", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/developers", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	developers := decodeBody[[]catalog.DeveloperEntity](t, resp)
	assert.Len(t, developers, 2)
}

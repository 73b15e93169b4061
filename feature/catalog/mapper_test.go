package catalog_test

import (
	"testing"
	"time"

	"game-catalog/feature/catalog"
	"game-catalog/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func completeRawRecord() catalog.RawRecord {
	return catalog.RawRecord{
		"title":       "Minecraft",
		"description": "A sandbox game about placing blocks.",
		"releaseYear": "2009-05-17T00:00:00Z",
		"logo":        "minecraft.png",
		"developer": map[string]any{
			"name":    "Mojang Studios",
			"logo":    "mojang.png",
			"website": "https://www.minecraft.net",
		},
		"platforms":             []any{"PC", "Xbox"},
		"screenshotIdentifiers": []any{"minecraft-1.png", "minecraft-2.png"},
	}
}

func TestWireToEntity_MapsCompleteRecord(t *testing.T) {
	entity, ok := catalog.WireToEntity(completeRawRecord())
	assert.True(t, ok)

	assert.Equal(t, "Minecraft", entity.ID)
	assert.Equal(t, "Minecraft", entity.Title)
	assert.Equal(t, "A sandbox game about placing blocks.", entity.DescriptionText)
	assert.Equal(t, "2009-05-17T00:00:00Z", entity.ReleaseDateRaw)
	assert.Equal(t, "minecraft.png", entity.LogoAssetName)
	assert.Equal(t, []string{"minecraft-1.png", "minecraft-2.png"}, entity.ScreenshotIdentifiers)
	assert.Equal(t, []catalog.Platform{catalog.PlatformPC, catalog.PlatformXbox}, entity.Platforms)
	assert.False(t, entity.IsFavorite)

	assert.Equal(t, "Mojang Studios", entity.Developer.Name)
	assert.Equal(t, "Mojang Studios", entity.Developer.ID)
	assert.Equal(t, "mojang.png", entity.Developer.LogoAssetName)
	if assert.NotNil(t, entity.Developer.Website) {
		assert.Equal(t, "https://www.minecraft.net", *entity.Developer.Website)
	}
}

func TestWireToEntity_DropsRecordWhenRequiredFieldMissing(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(catalog.RawRecord)
	}{
		{"missing title", func(r catalog.RawRecord) { delete(r, "title") }},
		{"empty title", func(r catalog.RawRecord) { r["title"] = "" }},
		{"nil title", func(r catalog.RawRecord) { r["title"] = nil }},
		{"numeric title", func(r catalog.RawRecord) { r["title"] = 42 }},
		{"nil logo", func(r catalog.RawRecord) { r["logo"] = nil }},
		{"missing description", func(r catalog.RawRecord) { delete(r, "description") }},
		{"missing release date", func(r catalog.RawRecord) { delete(r, "releaseYear") }},
		{"missing logo", func(r catalog.RawRecord) { delete(r, "logo") }},
		{"missing developer", func(r catalog.RawRecord) { delete(r, "developer") }},
		{"developer missing name", func(r catalog.RawRecord) {
			r["developer"] = map[string]any{"logo": "mojang.png"}
		}},
		{"developer missing logo", func(r catalog.RawRecord) {
			r["developer"] = map[string]any{"name": "Mojang Studios"}
		}},
		{"developer nil name", func(r catalog.RawRecord) {
			r["developer"] = map[string]any{"name": nil, "logo": "mojang.png"}
		}},
		{"missing platforms", func(r catalog.RawRecord) { delete(r, "platforms") }},
		{"platforms wrong shape", func(r catalog.RawRecord) { r["platforms"] = "pc" }},
		{"missing screenshots", func(r catalog.RawRecord) { delete(r, "screenshotIdentifiers") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := completeRawRecord()
			tc.mutate(raw)

			_, ok := catalog.WireToEntity(raw)
			assert.False(t, ok)
		})
	}
}

func TestWireToEntity_DeveloperWebsiteIsOptional(t *testing.T) {
	raw := completeRawRecord()
	raw["developer"] = map[string]any{
		"name": "Mojang Studios",
		"logo": "mojang.png",
	}

	entity, ok := catalog.WireToEntity(raw)
	assert.True(t, ok)
	assert.Nil(t, entity.Developer.Website)
}

func TestWireToEntity_UnknownPlatformBecomesSentinel(t *testing.T) {
	raw := completeRawRecord()
	raw["platforms"] = []any{"dreamcast", "Nintendo Switch", "PlayStation"}

	entity, ok := catalog.WireToEntity(raw)
	assert.True(t, ok)
	assert.Equal(t, []catalog.Platform{
		catalog.PlatformMissing,
		catalog.PlatformNintendoSwitch,
		catalog.PlatformPlaystation,
	}, entity.Platforms)
}

func TestParsePlatform_NormalizesCaseAndSpaces(t *testing.T) {
	assert.Equal(t, catalog.PlatformPC, catalog.ParsePlatform("PC"))
	assert.Equal(t, catalog.PlatformNintendoSwitch, catalog.ParsePlatform("Nintendo Switch"))
	assert.Equal(t, catalog.PlatformMissing, catalog.ParsePlatform("dreamcast"))
	assert.Equal(t, catalog.PlatformMissing, catalog.ParsePlatform(""))
	// The sentinel itself round-trips.
	assert.Equal(t, catalog.PlatformMissing, catalog.ParsePlatform("missing"))
}

func TestEntityToRecord_ParsesFullDateAndYearFallback(t *testing.T) {
	entity := catalog.VideogameEntity{Title: "Minecraft", ReleaseDateRaw: "2009-05-17T00:00:00Z"}
	rec, dateOK := catalog.EntityToRecord(entity, nil)
	assert.True(t, dateOK)
	if assert.NotNil(t, rec.ReleaseDate) {
		assert.Equal(t, time.Date(2009, 5, 17, 0, 0, 0, 0, time.UTC), rec.ReleaseDate.UTC())
	}

	entity.ReleaseDateRaw = "2009"
	rec, dateOK = catalog.EntityToRecord(entity, nil)
	assert.True(t, dateOK)
	if assert.NotNil(t, rec.ReleaseDate) {
		assert.Equal(t, 2009, rec.ReleaseDate.Year())
	}

	entity.ReleaseDateRaw = "soonish"
	rec, dateOK = catalog.EntityToRecord(entity, nil)
	assert.False(t, dateOK)
	assert.Nil(t, rec.ReleaseDate)
}

func TestEntityToRecord_PreservesExistingFavorite(t *testing.T) {
	existing := models.VideogameRecord{
		Title:      "Minecraft",
		IsFavorite: true,
	}

	incoming := catalog.VideogameEntity{
		Title:           "Minecraft",
		DescriptionText: "Updated description from the feed.",
		ReleaseDateRaw:  "2009-05-17T00:00:00Z",
		IsFavorite:      false,
	}

	rec, _ := catalog.EntityToRecord(incoming, &existing)
	assert.True(t, rec.IsFavorite)
	assert.Equal(t, "Updated description from the feed.", rec.Description)
}

func TestEntityToRecord_NewRecordKeepsEntityFavorite(t *testing.T) {
	incoming := catalog.VideogameEntity{Title: "Minecraft", IsFavorite: true}
	rec, _ := catalog.EntityToRecord(incoming, nil)
	assert.True(t, rec.IsFavorite)
}

func TestRecordToEntity_RoundTripsStoredFields(t *testing.T) {
	website := "https://www.minecraft.net"
	rec := models.VideogameRecord{
		Title:            "Minecraft",
		Description:      "A sandbox game.",
		ReleaseDateRaw:   "2009-05-17T00:00:00Z",
		DeveloperName:    "Mojang Studios",
		DeveloperLogo:    "mojang.png",
		DeveloperWebsite: &website,
		Platforms:        []string{"pc", "dreamcast"},
		Logo:             "minecraft.png",
		Screenshots:      []string{"minecraft-1.png"},
		IsFavorite:       true,
	}

	entity := catalog.RecordToEntity(rec)
	assert.Equal(t, "Minecraft", entity.ID)
	assert.Equal(t, "Mojang Studios", entity.Developer.Name)
	assert.Equal(t, []catalog.Platform{catalog.PlatformPC, catalog.PlatformMissing}, entity.Platforms)
	assert.True(t, entity.IsFavorite)
	assert.Equal(t, "2009", entity.ReleaseYear())
}

package catalog_test

import (
	"context"
	"errors"
	"testing"

	"game-catalog/core/database"
	"game-catalog/feature/catalog"
	"game-catalog/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestStores builds the store pair over an in-memory sqlite database.
func newTestStores(t *testing.T) (*catalog.VideogameStore, *catalog.DeveloperStore) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, models.Migrate(db))

	store := catalog.NewStore(db, zap.NewNop())
	return catalog.NewVideogameStore(store), catalog.NewDeveloperStore(store)
}

func testVideogame(title, developer string) catalog.VideogameEntity {
	return catalog.VideogameEntity{
		ID:              title,
		Title:           title,
		DescriptionText: "A game.",
		ReleaseDateRaw:  "2009-05-17T00:00:00Z",
		Developer: catalog.DeveloperEntity{
			ID:            developer,
			Name:          developer,
			LogoAssetName: "dev.png",
		},
		Platforms:             []catalog.Platform{catalog.PlatformPC},
		LogoAssetName:         "logo.png",
		ScreenshotIdentifiers: []string{"shot-1.png"},
	}
}

func TestVideogameStore_UpsertAndGet(t *testing.T) {
	videogames, _ := newTestStores(t)
	ctx := context.Background()

	err := videogames.UpsertAll(ctx, []catalog.VideogameEntity{
		testVideogame("Minecraft", "Mojang Studios"),
		testVideogame("Astroneer", "System Era"),
	})
	assert.NoError(t, err)

	all, err := videogames.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	// Ordered by title.
	assert.Equal(t, "Astroneer", all[0].Title)
	assert.Equal(t, "Minecraft", all[1].Title)

	entity, err := videogames.GetByID(ctx, "Minecraft")
	assert.NoError(t, err)
	assert.Equal(t, "Mojang Studios", entity.Developer.Name)
	assert.Equal(t, []string{"shot-1.png"}, entity.ScreenshotIdentifiers)
}

func TestVideogameStore_UpsertIsIdempotentOnTitle(t *testing.T) {
	videogames, _ := newTestStores(t)
	ctx := context.Background()

	first := testVideogame("Minecraft", "Mojang Studios")
	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{first}))

	updated := first
	updated.DescriptionText = "Updated description."
	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{updated}))

	all, err := videogames.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Updated description.", all[0].DescriptionText)
}

func TestVideogameStore_UpsertPreservesFavoriteFlag(t *testing.T) {
	videogames, _ := newTestStores(t)
	ctx := context.Background()

	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{testVideogame("Minecraft", "Mojang Studios")}))

	_, err := videogames.UpdateFavoriteStatus(ctx, "Minecraft", true)
	assert.NoError(t, err)

	// A refresh from the feed never carries the favorite flag.
	refreshed := testVideogame("Minecraft", "Mojang Studios")
	refreshed.IsFavorite = false
	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{refreshed}))

	entity, err := videogames.GetByID(ctx, "Minecraft")
	assert.NoError(t, err)
	assert.True(t, entity.IsFavorite)
}

func TestVideogameStore_UnparseableDateIsClearedNotFatal(t *testing.T) {
	videogames, _ := newTestStores(t)
	ctx := context.Background()

	entity := testVideogame("Minecraft", "Mojang Studios")
	entity.ReleaseDateRaw = "soonish"
	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{entity}))

	stored, err := videogames.GetByID(ctx, "Minecraft")
	assert.NoError(t, err)
	// The raw string survives even when the parsed date is cleared.
	assert.Equal(t, "soonish", stored.ReleaseDateRaw)
}

func TestVideogameStore_GetByID_NotFound(t *testing.T) {
	videogames, _ := newTestStores(t)

	_, err := videogames.GetByID(context.Background(), "Unknown Game")
	assert.True(t, catalog.IsNotFound(err))
}

func TestVideogameStore_DeleteByID(t *testing.T) {
	videogames, _ := newTestStores(t)
	ctx := context.Background()

	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{testVideogame("Minecraft", "Mojang Studios")}))
	assert.NoError(t, videogames.DeleteByID(ctx, "Minecraft"))

	_, err := videogames.GetByID(ctx, "Minecraft")
	assert.True(t, catalog.IsNotFound(err))

	err = videogames.DeleteByID(ctx, "Minecraft")
	assert.True(t, catalog.IsNotFound(err))
}

func TestVideogameStore_DeleteAllReturnsDeletedKeys(t *testing.T) {
	videogames, _ := newTestStores(t)
	ctx := context.Background()

	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{
		testVideogame("Minecraft", "Mojang Studios"),
		testVideogame("Astroneer", "System Era"),
	}))

	titles, err := videogames.DeleteAll(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Minecraft", "Astroneer"}, titles)

	all, err := videogames.GetAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestVideogameStore_FetchFavorites(t *testing.T) {
	videogames, _ := newTestStores(t)
	ctx := context.Background()

	assert.NoError(t, videogames.UpsertAll(ctx, []catalog.VideogameEntity{
		testVideogame("Minecraft", "Mojang Studios"),
		testVideogame("Astroneer", "System Era"),
	}))

	_, err := videogames.UpdateFavoriteStatus(ctx, "Astroneer", true)
	assert.NoError(t, err)

	favorites, err := videogames.FetchFavorites(ctx)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	assert.Equal(t, "Astroneer", favorites[0].Title)

	_, err = videogames.UpdateFavoriteStatus(ctx, "Astroneer", false)
	assert.NoError(t, err)

	favorites, err = videogames.FetchFavorites(ctx)
	assert.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestVideogameStore_UpdateFavoriteStatus_NotFound(t *testing.T) {
	videogames, _ := newTestStores(t)

	_, err := videogames.UpdateFavoriteStatus(context.Background(), "Unknown Game", true)
	assert.True(t, catalog.IsNotFound(err))
}

func TestDeveloperStore_UpsertAndGet(t *testing.T) {
	_, developers := newTestStores(t)
	ctx := context.Background()

	website := "https://www.minecraft.net"
	err := developers.UpsertAll(ctx, []catalog.DeveloperEntity{
		{ID: "Mojang Studios", Name: "Mojang Studios", LogoAssetName: "mojang.png", Website: &website},
	})
	assert.NoError(t, err)

	entity, err := developers.GetByName(ctx, "Mojang Studios")
	assert.NoError(t, err)
	assert.Equal(t, "mojang.png", entity.LogoAssetName)
	if assert.NotNil(t, entity.Website) {
		assert.Equal(t, website, *entity.Website)
	}

	// Upserting the same name again updates instead of duplicating.
	err = developers.UpsertAll(ctx, []catalog.DeveloperEntity{
		{ID: "Mojang Studios", Name: "Mojang Studios", LogoAssetName: "mojang-v2.png"},
	})
	assert.NoError(t, err)

	all, err := developers.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "mojang-v2.png", all[0].LogoAssetName)
}

func TestDeveloperStore_GetByName_NotFound(t *testing.T) {
	_, developers := newTestStores(t)

	_, err := developers.GetByName(context.Background(), "Unknown Studio")
	assert.True(t, catalog.IsNotFound(err))
}

func TestDeveloperStore_DeleteByName(t *testing.T) {
	_, developers := newTestStores(t)
	ctx := context.Background()

	assert.NoError(t, developers.UpsertAll(ctx, []catalog.DeveloperEntity{
		{ID: "Mojang Studios", Name: "Mojang Studios", LogoAssetName: "mojang.png"},
	}))
	assert.NoError(t, developers.DeleteByName(ctx, "Mojang Studios"))
	assert.True(t, catalog.IsNotFound(developers.DeleteByName(ctx, "Mojang Studios")))
}

// newMockedStores builds stores over a sqlmock-backed connection for
// failure-path tests that sqlite cannot produce.
func newMockedStores(t *testing.T) (*catalog.VideogameStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	store := catalog.NewStore(db, zap.NewNop())
	return catalog.NewVideogameStore(store), mock
}

func TestVideogameStore_UpsertAll_TransactionFailureIsStorageError(t *testing.T) {
	videogames, mock := newMockedStores(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection lost"))

	err := videogames.UpsertAll(context.Background(), []catalog.VideogameEntity{
		testVideogame("Minecraft", "Mojang Studios"),
	})
	assert.Error(t, err)
	assert.Equal(t, catalog.KindStorage, catalog.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideogameStore_GetAll_QueryFailureIsStorageError(t *testing.T) {
	videogames, mock := newMockedStores(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("table corrupted"))

	_, err := videogames.GetAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, catalog.KindStorage, catalog.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

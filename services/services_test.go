package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lottohq/lotto-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Player{},
		&models.Game{},
		&models.Board{},
		&models.WinningBoard{},
		&models.Transaction{},
	))
	return db
}

func createPlayer(t *testing.T, db *gorm.DB, active bool) models.Player {
	t.Helper()
	player := models.Player{
		PlayerID:  uuid.New(),
		FirstName: "Anna",
		LastName:  "Jensen",
		Email:     uuid.NewString() + "@example.com",
		IsActive:  active,
	}
	require.NoError(t, db.Create(&player).Error)
	return player
}

func createOpenGame(t *testing.T, db *gorm.DB, expiresIn time.Duration) models.Game {
	t.Helper()
	game := models.Game{
		GameID:         uuid.New(),
		ExpirationDate: time.Now().Add(expiresIn).UTC(),
	}
	require.NoError(t, db.Create(&game).Error)
	return game
}

func drawGame(t *testing.T, db *gorm.DB, game *models.Game, winning []int) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, db.Model(game).Updates(map[string]any{
		"winning_numbers": datatypes.NewJSONSlice(winning),
		"draw_date":       &now,
	}).Error)
	game.WinningNumbers = datatypes.NewJSONSlice(winning)
	game.DrawDate = &now
}

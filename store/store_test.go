package store

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

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
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
	return New(db), db
}

func createGame(t *testing.T, db *gorm.DB, expiration time.Time, winning []int) models.Game {
	t.Helper()
	game := models.Game{GameID: uuid.New(), ExpirationDate: expiration}
	if winning != nil {
		now := time.Now().UTC()
		game.WinningNumbers = datatypes.NewJSONSlice(winning)
		game.DrawDate = &now
	}
	require.NoError(t, db.Create(&game).Error)
	return game
}

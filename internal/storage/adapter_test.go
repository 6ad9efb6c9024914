package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adityagv/homework-hub/internal/models"
)

// StorageAdapterTestSuite exercises the adapter against an in-memory sqlite
// database.
type StorageAdapterTestSuite struct {
	suite.Suite
	db      *gorm.DB
	adapter *Adapter
}

func (suite *StorageAdapterTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.AutoMigrate(&Slot{}))

	suite.adapter = NewAdapter(suite.db, "test_slot")
}

func (suite *StorageAdapterTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *StorageAdapterTestSuite) TestLoadMissingSlotReturnsEmpty() {
	assert.Empty(suite.T(), suite.adapter.Load())
}

func (suite *StorageAdapterTestSuite) TestLoadEmptyPayloadReturnsEmpty() {
	suite.Require().NoError(suite.db.Create(&Slot{Key: "test_slot", Payload: ""}).Error)

	assert.Empty(suite.T(), suite.adapter.Load())
}

func (suite *StorageAdapterTestSuite) TestLoadUndecodablePayloadReturnsEmpty() {
	suite.Require().NoError(suite.db.Create(&Slot{Key: "test_slot", Payload: "{not json"}).Error)

	assert.NotPanics(suite.T(), func() {
		assert.Empty(suite.T(), suite.adapter.Load())
	})
}

func (suite *StorageAdapterTestSuite) TestRoundTripPreservesCollection() {
	completedAt := time.Date(2026, 8, 20, 18, 30, 0, 0, time.UTC)
	saved := []models.Assignment{
		{
			ID:             1761500000001,
			Name:           "OS lab 3",
			Subject:        "Operating System",
			Deadline:       time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
			Description:    "paging exercises",
			IsCompleted:    true,
			CompletionDate: &completedAt,
		},
		{
			ID:       1761500000002,
			Name:     "Portfolio page",
			Subject:  "Web Development",
			Deadline: time.Date(2026, 9, 3, 23, 59, 0, 0, time.UTC),
		},
	}

	suite.Require().NoError(suite.adapter.Save(saved))
	loaded := suite.adapter.Load()

	suite.Require().Len(loaded, 2)
	for i := range saved {
		assert.Equal(suite.T(), saved[i].ID, loaded[i].ID)
		assert.Equal(suite.T(), saved[i].Name, loaded[i].Name)
		assert.Equal(suite.T(), saved[i].Subject, loaded[i].Subject)
		assert.Equal(suite.T(), saved[i].Description, loaded[i].Description)
		assert.Equal(suite.T(), saved[i].IsCompleted, loaded[i].IsCompleted)
		assert.True(suite.T(), saved[i].Deadline.Equal(loaded[i].Deadline))
	}
	suite.Require().NotNil(loaded[0].CompletionDate)
	assert.True(suite.T(), completedAt.Equal(*loaded[0].CompletionDate))
	assert.Nil(suite.T(), loaded[1].CompletionDate)
}

func (suite *StorageAdapterTestSuite) TestSaveRewritesTheSingleSlot() {
	first := []models.Assignment{
		{ID: 1, Name: "a", Deadline: time.Now()},
		{ID: 2, Name: "b", Deadline: time.Now()},
	}
	suite.Require().NoError(suite.adapter.Save(first))

	second := []models.Assignment{{ID: 3, Name: "c", Deadline: time.Now()}}
	suite.Require().NoError(suite.adapter.Save(second))

	loaded := suite.adapter.Load()
	suite.Require().Len(loaded, 1)
	assert.Equal(suite.T(), int64(3), loaded[0].ID)

	var count int64
	suite.Require().NoError(suite.db.Model(&Slot{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *StorageAdapterTestSuite) TestAdaptersWithDifferentKeysDoNotCollide() {
	other := NewAdapter(suite.db, "other_slot")

	suite.Require().NoError(suite.adapter.Save([]models.Assignment{{ID: 1, Name: "mine", Deadline: time.Now()}}))
	suite.Require().NoError(other.Save([]models.Assignment{{ID: 2, Name: "theirs", Deadline: time.Now()}}))

	mine := suite.adapter.Load()
	theirs := other.Load()
	suite.Require().Len(mine, 1)
	suite.Require().Len(theirs, 1)
	assert.Equal(suite.T(), "mine", mine[0].Name)
	assert.Equal(suite.T(), "theirs", theirs[0].Name)
}

func TestStorageAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(StorageAdapterTestSuite))
}

func newMockedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery("SELECT VERSION").
		WillReturnRows(sqlmock.NewRows([]string{"VERSION()"}).AddRow("8.0.32"))

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestLoadDegradesToEmptyWhenReadFails(t *testing.T) {
	gdb, mock := newMockedDB(t)
	mock.ExpectQuery("SELECT \\* FROM `slots`").WillReturnError(errors.New("disk read error"))

	adapter := NewAdapter(gdb, "test_slot")

	assert.NotPanics(t, func() {
		assert.Empty(t, adapter.Load())
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveReturnsErrorWhenWriteFails(t *testing.T) {
	gdb, mock := newMockedDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `slots`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	adapter := NewAdapter(gdb, "test_slot")
	err := adapter.Save([]models.Assignment{{ID: 1, Name: "doomed", Deadline: time.Now()}})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookmarkhub/internal/config"
)

// MockMigrator — мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

var testDB = config.DBConfig{DatabaseURI: "postgres://localhost/bookmarks", Migrations: "migrations"}

func TestMigration_Up(t *testing.T) {
	tests := []struct {
		name      string
		upErr     error
		closeErrs [2]error
		wantErr   string
	}{
		{name: "success"},
		{name: "no change", upErr: migrate.ErrNoChange},
		{name: "up failure", upErr: errors.New("dirty database"), wantErr: "migration up: dirty database"},
		{name: "close source failure", closeErrs: [2]error{errors.New("source"), nil}, wantErr: "source"},
		{name: "close db failure", closeErrs: [2]error{nil, errors.New("db")}, wantErr: "db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockM := new(MockMigrator)
			mockM.On("Up").Return(tt.upErr)
			mockM.On("Close").Return(tt.closeErrs[0], tt.closeErrs[1])

			var gotSource, gotDB string
			engine := func(source, db string) (Migrator, error) {
				gotSource, gotDB = source, db
				return mockM, nil
			}

			err := NewMigration(testDB, engine).Up()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "file://migrations", gotSource)
			assert.Equal(t, testDB.DatabaseURI, gotDB)
			mockM.AssertExpectations(t)
		})
	}
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testDB, engine).Up()
	assert.EqualError(t, err, "engine crash")
}

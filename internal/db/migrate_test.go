package db

import (
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/db/migrations"
)

// recordingDriver is an in-memory database.Driver that remembers what the
// migrator did to it.
type recordingDriver struct {
	version int
	dirty   bool
	ran     int
	closed  bool
}

func newRecordingDriver() *recordingDriver {
	return &recordingDriver{version: database.NilVersion}
}

func (d *recordingDriver) Open(string) (database.Driver, error) { return d, nil }
func (d *recordingDriver) Close() error                         { d.closed = true; return nil }
func (d *recordingDriver) Lock() error                          { return nil }
func (d *recordingDriver) Unlock() error                        { return nil }
func (d *recordingDriver) Drop() error                          { return nil }

func (d *recordingDriver) Run(r io.Reader) error {
	if _, err := io.ReadAll(r); err != nil {
		return err
	}
	d.ran++
	return nil
}

func (d *recordingDriver) SetVersion(version int, dirty bool) error {
	d.version, d.dirty = version, dirty
	return nil
}

func (d *recordingDriver) Version() (int, bool, error) { return d.version, d.dirty, nil }

func TestMigrateWith_AppliesAndClosesDriver(t *testing.T) {
	d := newRecordingDriver()

	require.NoError(t, migrateWith(d, "recording"))

	assert.Equal(t, migrations.Version, d.version)
	assert.False(t, d.dirty)
	assert.Equal(t, 1, d.ran)
	assert.True(t, d.closed)
}

func TestMigrateWith_UpToDateStillCloses(t *testing.T) {
	d := newRecordingDriver()
	d.version = migrations.Version

	require.NoError(t, migrateWith(d, "recording"))

	assert.Zero(t, d.ran)
	assert.True(t, d.closed)
}

func TestMigrateWith_DirtyDatabase(t *testing.T) {
	d := newRecordingDriver()
	d.version, d.dirty = migrations.Version, true

	err := migrateWith(d, "recording")

	assert.EqualError(t, err, "database is in dirty state")
	assert.Zero(t, d.ran)
	assert.True(t, d.closed)
}

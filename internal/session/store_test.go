package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	email := gofakeit.Email()
	saved := &Credentials{
		Token:    gofakeit.UUID(),
		Email:    email,
		Login:    LoginFromEmail(email),
		IssuedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(saved))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	creds, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	creds := &Credentials{Token: "a"}
	require.NoError(t, store.Save(creds))
	creds.Token = "mutated"

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.Token)
}

func TestLoginFromEmail(t *testing.T) {
	assert.Equal(t, "runner", LoginFromEmail("runner@example.com"))
	assert.Equal(t, "no-at-sign", LoginFromEmail("no-at-sign"))
	assert.Equal(t, "@weird", LoginFromEmail("@weird"))
}

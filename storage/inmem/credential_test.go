package inmemdb

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/credential"
)

func setup(t *testing.T) credential.Repository {
	db, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCredentialRepository(db)
}

func TestCredentialRepository_SaveAndGet(t *testing.T) {
	repo := setup(t)

	require.NoError(t, repo.SaveToken("u1", "tok-1"))

	token, err := repo.GetToken("u1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestCredentialRepository_lastWriteWins(t *testing.T) {
	repo := setup(t)

	require.NoError(t, repo.SaveToken("u1", "old"))
	require.NoError(t, repo.SaveToken("u1", "new"))

	token, err := repo.GetToken("u1")
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestCredentialRepository_GetToken_unknownUser(t *testing.T) {
	repo := setup(t)

	_, err := repo.GetToken("nobody")
	assert.Equal(t, credential.ErrNotFound, err)
}

func TestCredentialRepository_SaveToken_emptyInput(t *testing.T) {
	tests := []struct {
		name       string
		uid, token string
		wantFields []string
	}{
		{"empty uid", "", "tok", []string{"uid"}},
		{"empty token", "u1", "", []string{"token"}},
		{"whitespace only", "  ", "\t", []string{"uid", "token"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setup(t)
			err := repo.SaveToken(tt.uid, tt.token)

			var vErr *core.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, len(tt.wantFields))
			for i, fld := range tt.wantFields {
				assert.Equal(t, fld, vErr.Fields[i].Field)
			}
		})
	}
}

func TestCredentialRepository_SaveToken_trimsInput(t *testing.T) {
	repo := setup(t)

	require.NoError(t, repo.SaveToken("  u1  ", " tok-1 "))

	token, err := repo.GetToken("u1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestCredentialRepository_concurrentAccess(t *testing.T) {
	repo := setup(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			uid := fmt.Sprintf("u%d", i%5)
			assert.NoError(t, repo.SaveToken(uid, fmt.Sprintf("tok-%d", i)))
		}()
		go func() {
			defer wg.Done()
			uid := fmt.Sprintf("u%d", i%5)
			if token, err := repo.GetToken(uid); err == nil {
				assert.NotEmpty(t, token)
			}
		}()
	}
	wg.Wait()
}

func TestDB_Close_clearsTokens(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewCredentialRepository(db)

	require.NoError(t, repo.SaveToken("u1", "tok"))
	require.NoError(t, db.Close())

	_, err = repo.GetToken("u1")
	assert.Equal(t, credential.ErrNotFound, err)
}

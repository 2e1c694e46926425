package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

func TestActivityRepo_MasRecientePrimero(t *testing.T) {
	repo := NewActivityRepository(3)
	for _, id := range []string{"1", "2"} {
		require.NoError(t, repo.Append(entity.Activity{EntityID: id}))
	}
	got, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].EntityID)
	assert.Equal(t, "1", got[1].EntityID)
}

func TestActivityRepo_Circular(t *testing.T) {
	repo := NewActivityRepository(3)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		_ = repo.Append(entity.Activity{EntityID: id})
	}
	got, _ := repo.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"5", "4", "3"}, []string{got[0].EntityID, got[1].EntityID, got[2].EntityID})

	got, _ = repo.Recent(1)
	assert.Equal(t, "5", got[0].EntityID)
}

func TestActivityRepo_Vacio(t *testing.T) {
	got, err := NewActivityRepository(0).Recent(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"luminax_client/internal/model"
	"luminax_client/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryKVRepository()

	_, ok, err := repo.Get(ctx, util.DarkModeStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, util.DarkModeStorageKey, "true"))
	v, ok, err := repo.Get(ctx, util.DarkModeStorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, repo.Remove(ctx, util.DarkModeStorageKey))
	require.NoError(t, repo.Remove(ctx, "never-set"))
	_, ok, _ = repo.Get(ctx, util.DarkModeStorageKey)
	assert.False(t, ok)
}

func TestRedisKVRepository_KeyNamespace(t *testing.T) {
	assert.Equal(t, "luminax:luminax_user", (&RedisKVRepository{Namespace: "luminax"}).key(util.UserStorageKey))
	assert.Equal(t, "luminax_user", (&RedisKVRepository{}).key(util.UserStorageKey))
}

func TestEmbeddedSeed(t *testing.T) {
	seed, err := NewEmbeddedSeedRepository().Load(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, seed.Users)
	assert.NotEmpty(t, seed.Courses)
	assert.NotEmpty(t, seed.Enrollments)
	for _, c := range seed.Courses {
		assert.NotEmpty(t, c.ID)
		if c.OriginalPrice != nil {
			assert.GreaterOrEqual(t, *c.OriginalPrice, c.Price, "course %s", c.ID)
		}
	}
	for _, e := range seed.Enrollments {
		assert.True(t, e.Consistent(), "enrollment %s", e.ID)
	}
	assert.False(t, seed.Users[0].CreatedAt.IsZero())
}

func TestFileSeedRepository_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "seed.json")
	yamlPath := filepath.Join(dir, "seed.yml")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"courses": [{"id": "c1", "title": "Go in Practice", "price": 25.5, "duration": "8 hours", "featured": true}],
		"enrollments": [{"id": "e1", "userId": "u1", "courseId": "c1", "progress": 0, "enrolledAt": "2024-01-01T00:00:00Z", "status": "active"}]
	}`), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(strings.Join([]string{
		"courses:",
		"  - id: c2",
		"    title: Rust Basics",
		"    price: 10",
		"    level: Beginner",
	}, "\n")), 0644))

	js, err := NewFileSeedRepository(jsonPath).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, js.Courses, 1)
	assert.Equal(t, 25.5, js.Courses[0].Price)
	require.Len(t, js.Enrollments, 1)
	assert.Equal(t, model.EnrollmentActive, js.Enrollments[0].Status)

	ym, err := NewFileSeedRepository(yamlPath).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ym.Courses, 1)
	assert.Equal(t, model.Beginner, ym.Courses[0].Level)

	_, err = NewFileSeedRepository(filepath.Join(dir, "missing.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func TestDecodeSeed_Malformed(t *testing.T) {
	_, err := DecodeSeed("bad.json", strings.NewReader("{"))
	assert.Error(t, err)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository([]model.User{
		{ID: "1", Email: "john@example.com", Role: model.Student},
		{ID: "2", Email: "sarah@example.com", Role: model.Instructor},
	})

	u, err := repo.FindByEmail("john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	_, err = repo.FindByEmail("JOHN@example.com")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	u, err = repo.FindFirstByRole(model.Instructor)
	require.NoError(t, err)
	assert.Equal(t, "2", u.ID)

	repo.Create(model.User{ID: "9", Email: "new@example.com", Role: model.Admin})
	repo.Replace([]model.User{{ID: "1", Email: "john@example.com", Role: model.Student}})

	_, err = repo.FindByEmail("sarah@example.com")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
	u, err = repo.FindFirstByRole(model.Admin)
	require.NoError(t, err)
	assert.Equal(t, "9", u.ID)
}

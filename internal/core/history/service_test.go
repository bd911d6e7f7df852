package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := local.Open(t.TempDir())
	require.NoError(t, err)
	return NewService(NewRepository(db))
}

func socialHookParams(t *testing.T) registry.ParameterSet {
	t.Helper()
	tpl, err := registry.Lookup("SocialHook")
	require.NoError(t, err)
	return tpl.Defaults.Clone()
}

func TestCreateStartsRendering(t *testing.T) {
	svc := newTestService(t)

	e, err := svc.Create(context.Background(), "u1", &CreateEntryRequest{
		CompositionType: "SocialHook",
		Params:          socialHookParams(t),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, StatusRendering, e.Status)
	assert.Equal(t, "SocialHook", e.CompositionType)
	assert.NotEmpty(t, e.CreatedAt)
}

func TestCreateUnknownCompositionType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), "u1", &CreateEntryRequest{
		CompositionType: "NoSuchComposition",
		Params:          registry.ParameterSet{},
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUpdateStatusToCompleted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "u1", &CreateEntryRequest{
		CompositionType: "SocialHook",
		Params:          socialHookParams(t),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, e.ID, &UpdateStatusRequest{
		Status:        StatusCompleted,
		OutputURL:     "file:///renders/out.mp4",
		FileSizeBytes: 1024,
		DurationMs:    3000,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, "file:///renders/out.mp4", updated.OutputURL)
	assert.Equal(t, int64(1024), updated.FileSizeBytes)
	assert.Equal(t, int64(3000), updated.DurationMs)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "u1", &CreateEntryRequest{
		CompositionType: "SocialHook",
		Params:          socialHookParams(t),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, e.ID, &UpdateStatusRequest{Status: Status("done")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusMissingEntry(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "missing", &UpdateStatusRequest{
		Status: StatusFailed,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListScopedToUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, user := range []string{"u1", "u2", "u1"} {
		_, err := svc.Create(ctx, user, &CreateEntryRequest{
			CompositionType: "TextReveal",
			Params:          registry.ParameterSet{},
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	empty, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.NotNil(t, empty.Entries)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusRendering.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusFailed.Valid())
	assert.False(t, Status("queued").Valid())
	assert.False(t, Status("").Valid())
}

package application

import (
	"context"
	"testing"

	"WhatToDo-App/internal/domain/model"
	"WhatToDo-App/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hike() model.Activity {
	return model.Activity{
		ActivityName:     "City Park Hike",
		CostPerPerson:    "$0",
		DurationEstimate: "2-3 hours",
		WebsiteLink:      "https://example.com/park",
		MapsLink:         "https://maps.google.com/?q=park",
		Description:      "A beautiful hike with scenic views.",
		Category:         "Outdoor Adventures",
	}
}

func tacos() model.Activity {
	return model.Activity{ActivityName: "Local Taco Tour", CostPerPerson: "$40", Category: "Food & Dining"}
}

func TestActivityStore_EmptyList(t *testing.T) {
	store := NewActivityStore(repository.NewMemoryBlobRepository())
	activities := store.List(context.Background())
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestActivityStore_AddDuplicateIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewActivityStore(repository.NewMemoryBlobRepository())

	first := store.Add(ctx, hike())
	require.Len(t, first, 1)

	duplicate := hike()
	duplicate.CostPerPerson = "$99"
	duplicate.Description = "different"
	second := store.Add(ctx, duplicate)

	require.Len(t, second, 1)
	assert.Equal(t, hike(), second[0], "最初に保存した内容が残る")
	assert.Equal(t, second, store.List(ctx))
}

func TestActivityStore_AddRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewActivityStore(repository.NewMemoryBlobRepository())

	store.Add(ctx, hike())
	before := store.List(ctx)

	store.Add(ctx, tacos())
	assert.Len(t, store.List(ctx), 2)

	after := store.Remove(ctx, tacos().ActivityName)
	assert.Equal(t, before, after)
	assert.Equal(t, before, store.List(ctx))
}

func TestActivityStore_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewActivityStore(repository.NewMemoryBlobRepository())

	store.Add(ctx, tacos())
	store.Add(ctx, hike())

	activities := store.List(ctx)
	require.Len(t, activities, 2)
	assert.Equal(t, "Local Taco Tour", activities[0].ActivityName)
	assert.Equal(t, "City Park Hike", activities[1].ActivityName)
}

func TestActivityStore_RemoveUnknownName(t *testing.T) {
	ctx := context.Background()
	store := NewActivityStore(repository.NewMemoryBlobRepository())
	store.Add(ctx, hike())

	activities := store.Remove(ctx, "Nope")
	assert.Equal(t, []model.Activity{hike()}, activities)
}

func TestActivityStore_Toggle(t *testing.T) {
	ctx := context.Background()
	store := NewActivityStore(repository.NewMemoryBlobRepository())

	activities, saved := store.Toggle(ctx, hike())
	assert.True(t, saved)
	assert.Len(t, activities, 1)
	assert.True(t, store.Contains(ctx, hike().ActivityName))

	activities, saved = store.Toggle(ctx, hike())
	assert.False(t, saved)
	assert.Empty(t, activities)
	assert.False(t, store.Contains(ctx, hike().ActivityName))
}

func TestActivityStore_PersistsProfileEnvelope(t *testing.T) {
	ctx := context.Background()
	blobs := repository.NewMemoryBlobRepository()
	NewActivityStore(blobs).Add(ctx, hike())

	data, found, err := blobs.Get(ctx, model.ProfileStorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, data, `"savedActivities":[{"activityName":"City Park Hike"`)

	// 別インスタンスからも読める
	assert.Equal(t, []model.Activity{hike()}, NewActivityStore(blobs).List(ctx))
}

func TestActivityStore_MalformedDataIsEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := repository.NewMemoryBlobRepository()
	require.NoError(t, blobs.Set(ctx, model.ProfileStorageKey, `{"savedActivities": [`))

	store := NewActivityStore(blobs)
	assert.Empty(t, store.List(ctx))

	activities := store.Add(ctx, hike())
	assert.Equal(t, []model.Activity{hike()}, activities)
}

func TestActivityStore_WriteFailureStillReturnsResult(t *testing.T) {
	ctx := context.Background()
	blobs := newFailingBlobRepository()
	blobs.failSet = true
	store := NewActivityStore(blobs)

	activities := store.Add(ctx, hike())
	assert.Equal(t, []model.Activity{hike()}, activities)
	assert.Equal(t, 1, blobs.setCalled)

	// 書き込みは失敗しているので永続化されていない
	assert.Empty(t, store.List(ctx))
}

func TestActivityStore_ReadFailureIsEmpty(t *testing.T) {
	blobs := newFailingBlobRepository()
	blobs.failGet = true
	store := NewActivityStore(blobs)

	assert.Empty(t, store.List(context.Background()))
	assert.False(t, store.Contains(context.Background(), "anything"))
}

func TestActivityStore_DuplicateAddDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	blobs := newFailingBlobRepository()
	store := NewActivityStore(blobs)

	store.Add(ctx, hike())
	store.Add(ctx, hike())
	assert.Equal(t, 1, blobs.setCalled)
}

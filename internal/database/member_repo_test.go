package database

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepo_Create(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	memberRepo := newMemberRepo(db.conn)

	t.Run("should create member successfully", func(t *testing.T) {
		member := &entity.Member{
			SlackUserID: "U123456789",
			Name:        "Alice",
			Kana:        "ありす",
			Grade:       "B4",
		}

		err := memberRepo.Create(ctx, member)

		require.NoError(t, err)
		assert.NotZero(t, member.ID)
	})

	t.Run("should fail on duplicate slack user id", func(t *testing.T) {
		member := &entity.Member{SlackUserID: "U123456789", Name: "Alice again", Grade: "B4"}

		err := memberRepo.Create(ctx, member)

		require.Error(t, err)
	})
}

func TestMemberRepo_GetBySlackID(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	memberRepo := newMemberRepo(db.conn)

	member := &entity.Member{SlackUserID: "U123456789", Name: "Alice", Kana: "ありす", Grade: "B4"}
	require.NoError(t, memberRepo.Create(ctx, member))

	t.Run("should get member by slack id", func(t *testing.T) {
		found, err := memberRepo.GetBySlackID(ctx, "U123456789")

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, member.ID, found.ID)
		assert.Equal(t, "Alice", found.Name)
		assert.Equal(t, "ありす", found.Kana)
		assert.Equal(t, "B4", found.Grade)
		assert.False(t, found.CreatedAt.IsZero())
	})

	t.Run("should return nil for unknown member", func(t *testing.T) {
		found, err := memberRepo.GetBySlackID(ctx, "U000000000")

		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestMemberRepo_Update(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	memberRepo := newMemberRepo(db.conn)

	member := &entity.Member{SlackUserID: "U123456789", Name: "Alice", Grade: "B4"}
	require.NoError(t, memberRepo.Create(ctx, member))

	member.Name = "Alice L."
	member.Kana = "ありす"
	member.Grade = "M1"
	require.NoError(t, memberRepo.Update(ctx, member))

	found, err := memberRepo.GetBySlackID(ctx, "U123456789")
	require.NoError(t, err)
	assert.Equal(t, "Alice L.", found.Name)
	assert.Equal(t, "ありす", found.Kana)
	assert.Equal(t, "M1", found.Grade)
}

func TestMemberRepo_List(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	memberRepo := newMemberRepo(db.conn)

	t.Run("should return empty list", func(t *testing.T) {
		members, err := memberRepo.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("should list members in insertion order", func(t *testing.T) {
		for _, id := range []string{"U3", "U1", "U2"} {
			require.NoError(t, memberRepo.Create(ctx, &entity.Member{SlackUserID: id, Name: id, Grade: "B4"}))
		}

		members, err := memberRepo.List(ctx)

		require.NoError(t, err)
		require.Len(t, members, 3)
		assert.Equal(t, "U3", members[0].SlackUserID)
		assert.Equal(t, "U1", members[1].SlackUserID)
		assert.Equal(t, "U2", members[2].SlackUserID)
	})
}

func TestMemberRepo_Delete(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	memberRepo := newMemberRepo(db.conn)
	rotationRepo := newRotationRepo(db.conn)
	statsRepo := newStatsRepo(db.conn)

	member := &entity.Member{SlackUserID: "U123456789", Name: "Alice", Grade: "B4"}
	require.NoError(t, memberRepo.Create(ctx, member))
	require.NoError(t, rotationRepo.Create(ctx, member.ID))
	require.NoError(t, statsRepo.Create(ctx, member.ID))

	require.NoError(t, memberRepo.Delete(ctx, member.ID))

	found, err := memberRepo.GetBySlackID(ctx, "U123456789")
	require.NoError(t, err)
	assert.Nil(t, found)

	t.Run("should cascade to rotation state and stats", func(t *testing.T) {
		states, err := rotationRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, states)

		stats, err := statsRepo.GetByMemberID(ctx, member.ID)
		require.NoError(t, err)
		assert.Nil(t, stats)
	})
}

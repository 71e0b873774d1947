package draft_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
	"github.com/arkham-tools/investigator-api/internal/pkg/clock"
	"github.com/arkham-tools/investigator-api/internal/pkg/idgen"
	"github.com/arkham-tools/investigator-api/internal/repositories/draft"
	"github.com/arkham-tools/investigator-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    draft.Repository
	cleanup func()
	now     time.Time
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	repo, err := draft.NewRedis(&draft.RedisConfig{
		Client:      client,
		Clock:       &clock.Fixed{Instant: s.now},
		IDGenerator: idgen.NewSequential("draft"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testDraft() *coc7e.Draft {
	return &coc7e.Draft{
		PlayerID: "player_456",
		Mode:     coc7e.ModeRolled,
		Age:      30,
		Name:     "Harvey Walters",
	}
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("assigns an ID and timestamps", func() {
		output, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
		s.Require().NoError(err)

		s.Equal("draft_1", output.Draft.ID)
		s.Equal(s.now.Unix(), output.Draft.CreatedAt)
		s.Equal(s.now.Unix(), output.Draft.UpdatedAt)
		s.Equal(s.now.Add(24*time.Hour).Unix(), output.Draft.ExpiresAt)
	})

	s.Run("replaces the player's previous draft", func() {
		first, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
		s.Require().NoError(err)

		second, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
		s.Require().NoError(err)
		s.NotEqual(first.Draft.ID, second.Draft.ID)

		_, err = s.repo.Get(s.ctx, draft.GetInput{ID: first.Draft.ID})
		s.True(errors.IsNotFound(err))

		byPlayer, err := s.repo.GetByPlayerID(s.ctx, draft.GetByPlayerIDInput{PlayerID: "player_456"})
		s.Require().NoError(err)
		s.Equal(second.Draft.ID, byPlayer.Draft.ID)
	})

	s.Run("rejects nil and anonymous drafts", func() {
		_, err := s.repo.Create(s.ctx, draft.CreateInput{})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.Create(s.ctx, draft.CreateInput{Draft: &coc7e.Draft{}})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("rejects an already-expired draft", func() {
		d := s.testDraft()
		d.ExpiresAt = s.now.Add(-time.Hour).Unix()
		_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	created, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
	s.Require().NoError(err)

	s.Run("round-trips the draft", func() {
		output, err := s.repo.Get(s.ctx, draft.GetInput{ID: created.Draft.ID})
		s.Require().NoError(err)
		s.Equal("Harvey Walters", output.Draft.Name)
		s.Equal(coc7e.ModeRolled, output.Draft.Mode)
		s.Equal(30, output.Draft.Age)
	})

	s.Run("unknown ID", func() {
		_, err := s.repo.Get(s.ctx, draft.GetInput{ID: "draft_nope"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty ID", func() {
		_, err := s.repo.Get(s.ctx, draft.GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGetByPlayerID() {
	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
	s.Require().NoError(err)

	s.Run("finds the player's draft", func() {
		output, err := s.repo.GetByPlayerID(s.ctx, draft.GetByPlayerIDInput{PlayerID: "player_456"})
		s.Require().NoError(err)
		s.Equal("Harvey Walters", output.Draft.Name)
	})

	s.Run("unknown player", func() {
		_, err := s.repo.GetByPlayerID(s.ctx, draft.GetByPlayerIDInput{PlayerID: "player_999"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	created, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
	s.Require().NoError(err)

	s.Run("persists changes", func() {
		updated := *created.Draft
		updated.Age = 45
		updated.Occupation = &coc7e.OccupationSelection{Name: "Journalist", CreditRating: 10}

		output, err := s.repo.Update(s.ctx, draft.UpdateInput{Draft: &updated})
		s.Require().NoError(err)
		s.Equal(s.now.Unix(), output.Draft.UpdatedAt)

		fetched, err := s.repo.Get(s.ctx, draft.GetInput{ID: created.Draft.ID})
		s.Require().NoError(err)
		s.Equal(45, fetched.Draft.Age)
		s.Require().NotNil(fetched.Draft.Occupation)
		s.Equal("Journalist", fetched.Draft.Occupation.Name)
	})

	s.Run("unknown draft", func() {
		missing := s.testDraft()
		missing.ID = "draft_nope"
		_, err := s.repo.Update(s.ctx, draft.UpdateInput{Draft: missing})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	created, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
	s.Require().NoError(err)

	s.Run("removes draft and player mapping", func() {
		_, err := s.repo.Delete(s.ctx, draft.DeleteInput{ID: created.Draft.ID})
		s.Require().NoError(err)

		_, err = s.repo.Get(s.ctx, draft.GetInput{ID: created.Draft.ID})
		s.True(errors.IsNotFound(err))

		_, err = s.repo.GetByPlayerID(s.ctx, draft.GetByPlayerIDInput{PlayerID: "player_456"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("unknown draft", func() {
		_, err := s.repo.Delete(s.ctx, draft.DeleteInput{ID: "draft_nope"})
		s.True(errors.IsNotFound(err))
	})
}

func TestDraftExpiry(t *testing.T) {
	mr, client, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	repo, err := draft.NewRedis(&draft.RedisConfig{
		Client:      client,
		Clock:       &clock.Real{},
		IDGenerator: idgen.NewUUID("draft"),
	})
	require.NoError(t, err)

	ctx := context.Background()
	created, err := repo.Create(ctx, draft.CreateInput{Draft: &coc7e.Draft{PlayerID: "player_1"}})
	require.NoError(t, err)

	_, err = repo.Get(ctx, draft.GetInput{ID: created.Draft.ID})
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	_, err = repo.Get(ctx, draft.GetInput{ID: created.Draft.ID})
	assert.True(t, errors.IsNotFound(err))

	// The player mapping shares the TTL, so the stale mapping is gone too.
	_, err = repo.GetByPlayerID(ctx, draft.GetByPlayerIDInput{PlayerID: "player_1"})
	assert.True(t, errors.IsNotFound(err))
}

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

// fakeScoreRepo mimics the store's transactional contract in memory: one
// award either fully applies (row + atomic total increment) or not at all.
type fakeScoreRepo struct {
	mu        sync.Mutex
	nextID    int64
	awards    []domain.ScoreAward
	teams     map[int64]*fakeTeam
	lastLimit int
	failWith  error
}

type fakeTeam struct {
	name  string
	score int64
}

func newFakeScoreRepo() *fakeScoreRepo {
	return &fakeScoreRepo{teams: map[int64]*fakeTeam{}}
}

func (r *fakeScoreRepo) addTeam(id int64, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[id] = &fakeTeam{name: name}
}

func (r *fakeScoreRepo) teamScore(id int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.teams[id].score
}

func (r *fakeScoreRepo) awardSum(id int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, a := range r.awards {
		if a.TeamID == id {
			sum += int64(a.Points)
		}
	}
	return sum
}

func (r *fakeScoreRepo) AwardPoints(ctx context.Context, req domain.AwardRequest) (*domain.AwardResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}

	if req.DedupToken != "" {
		for _, a := range r.awards {
			if a.DedupToken == req.DedupToken {
				return &domain.AwardResult{Award: a, Replayed: true}, nil
			}
		}
	}

	team, ok := r.teams[req.TeamID]
	if !ok {
		return nil, my_errors.ErrTeamNotFound
	}

	r.nextID++
	award := domain.ScoreAward{
		ID:         r.nextID,
		TeamID:     req.TeamID,
		TeamName:   team.name,
		Points:     req.Points,
		Challenge:  req.Challenge,
		Comment:    req.Comment,
		Actor:      req.Actor,
		DedupToken: req.DedupToken,
		CreatedAt:  time.Now(),
	}
	r.awards = append(r.awards, award)
	team.score += int64(req.Points)

	return &domain.AwardResult{Award: award, EventID: r.nextID}, nil
}

func (r *fakeScoreRepo) RecentAwards(ctx context.Context, limit int) ([]domain.ScoreAward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit

	out := []domain.ScoreAward{}
	for i := len(r.awards) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.awards[i])
	}
	return out, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *fakePublisher) Publish(event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *fakePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.events...)
}

func TestAwardPointsRejectsInvalidInput(t *testing.T) {
	repo := newFakeScoreRepo()
	repo.addTeam(1, "Alpha")
	pub := &fakePublisher{}
	svc := NewScoreService(repo, pub)

	cases := []struct {
		name string
		req  domain.AwardRequest
		want error
	}{
		{"zero points", domain.AwardRequest{TeamID: 1, Points: 0, Actor: "Admin"}, my_errors.ErrNonPositivePoints},
		{"negative points", domain.AwardRequest{TeamID: 1, Points: -5, Actor: "Admin"}, my_errors.ErrNonPositivePoints},
		{"missing team", domain.AwardRequest{TeamID: 0, Points: 10, Actor: "Admin"}, my_errors.ErrTeamRequired},
		{"missing actor", domain.AwardRequest{TeamID: 1, Points: 10, Actor: "  "}, my_errors.ErrActorRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AwardPoints(context.Background(), tc.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, my_errors.ErrValidation)
		})
	}

	// no side effects, no broadcast
	assert.Empty(t, repo.awards)
	assert.Empty(t, pub.published())
}

func TestAwardPointsUnknownTeam(t *testing.T) {
	repo := newFakeScoreRepo()
	pub := &fakePublisher{}
	svc := NewScoreService(repo, pub)

	_, err := svc.AwardPoints(context.Background(), domain.AwardRequest{TeamID: 999, Points: 10, Actor: "Admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, my_errors.ErrNotFound)
	assert.Empty(t, repo.awards)
	assert.Empty(t, pub.published())
}

func TestAwardPointsBroadcastsAfterCommit(t *testing.T) {
	repo := newFakeScoreRepo()
	repo.addTeam(1, "Alpha")
	pub := &fakePublisher{}
	svc := NewScoreService(repo, pub)

	result, err := svc.AwardPoints(context.Background(), domain.AwardRequest{
		TeamID: 1, Points: 50, Challenge: "SFEIR", Actor: "Admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alpha", result.Award.TeamName)
	assert.Equal(t, 50, result.Award.Points)
	assert.False(t, result.Replayed)
	assert.Equal(t, []string{BroadcastLeaderboardUpdate}, pub.published())
}

func TestAwardPointsDoesNotBroadcastOnFailure(t *testing.T) {
	repo := newFakeScoreRepo()
	repo.failWith = my_errors.StoreFailure("failed to commit award transaction", fmt.Errorf("disk full"))
	pub := &fakePublisher{}
	svc := NewScoreService(repo, pub)

	_, err := svc.AwardPoints(context.Background(), domain.AwardRequest{TeamID: 1, Points: 10, Actor: "Admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, my_errors.ErrStore)
	assert.Empty(t, pub.published())
}

func TestAwardPointsReplayDoesNotRebroadcast(t *testing.T) {
	repo := newFakeScoreRepo()
	repo.addTeam(1, "Alpha")
	pub := &fakePublisher{}
	svc := NewScoreService(repo, pub)

	req := domain.AwardRequest{TeamID: 1, Points: 25, Actor: "Admin", DedupToken: "tok-1"}

	first, err := svc.AwardPoints(context.Background(), req)
	require.NoError(t, err)
	require.False(t, first.Replayed)

	second, err := svc.AwardPoints(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Award.ID, second.Award.ID)

	// one award row, one broadcast, total incremented once
	assert.Len(t, repo.awards, 1)
	assert.Equal(t, []string{BroadcastLeaderboardUpdate}, pub.published())
	assert.Equal(t, int64(25), repo.teamScore(1))
}

func TestAwardPointsNoLostUpdates(t *testing.T) {
	repo := newFakeScoreRepo()
	repo.addTeam(1, "Alpha")
	svc := NewScoreService(repo, &fakePublisher{})

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.AwardPoints(context.Background(), domain.AwardRequest{TeamID: 1, Points: 10, Actor: "Admin"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10*workers), repo.teamScore(1))
	// conservation: aggregate equals the sum of committed awards
	assert.Equal(t, repo.awardSum(1), repo.teamScore(1))
}

func TestRecentAwardsOrderingAndLimit(t *testing.T) {
	repo := newFakeScoreRepo()
	repo.addTeam(1, "Alpha")
	svc := NewScoreService(repo, &fakePublisher{})

	for i := 1; i <= 5; i++ {
		_, err := svc.AwardPoints(context.Background(), domain.AwardRequest{TeamID: 1, Points: i, Actor: "Admin"})
		require.NoError(t, err)
	}

	awards, err := svc.RecentAwards(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, awards, 3)
	for i := 1; i < len(awards); i++ {
		assert.Greater(t, awards[i-1].ID, awards[i].ID)
	}

	// zero limit falls back to the default, oversized limits are clamped
	_, err = svc.RecentAwards(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultRecentLimit, repo.lastLimit)

	_, err = svc.RecentAwards(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, maxRecentLimit, repo.lastLimit)
}

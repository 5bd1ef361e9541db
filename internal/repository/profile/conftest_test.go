package profile

import (
	"context"
	"testing"

	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn      func(ctx context.Context, key string) ([]byte, error)
	setFn      func(ctx context.Context, key string, value []byte) error
	getMultiFn func(ctx context.Context, keys []string) ([][]byte, error)
	rpushFn    func(ctx context.Context, key string, values ...string) error
	lrangeFn   func(ctx context.Context, key string, start, stop int64) ([]string, error)
	lposFn     func(ctx context.Context, key, value string) (bool, error)
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

func (m *mockStore) GetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if m.getMultiFn != nil {
		return m.getMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) RPush(ctx context.Context, key string, values ...string) error {
	if m.rpushFn != nil {
		return m.rpushFn(ctx, key, values...)
	}
	return nil
}

func (m *mockStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if m.lrangeFn != nil {
		return m.lrangeFn(ctx, key, start, stop)
	}
	return nil, nil
}

func (m *mockStore) LPos(ctx context.Context, key, value string) (bool, error) {
	if m.lposFn != nil {
		return m.lposFn(ctx, key, value)
	}
	return false, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "match:"), ms
}

func testTalent(t *testing.T) domprof.Talent {
	t.Helper()
	tal, err := domprof.NewTalent(testTalentID, "Ada", "Backend engineer", "Builds APIs",
		[]domprof.Skill{{Name: "Go", Proficiency: "expert"}, {Name: "Redis"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tal
}

func testStartup(t *testing.T) domprof.Startup {
	t.Helper()
	s, err := domprof.NewStartup(testStartupID, "Acme", "Robots as a service", "We build robots",
		"robotics", domprof.StageSeed, []string{"Go", "React"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func testInvestor(t *testing.T) domprof.Investor {
	t.Helper()
	inv, err := domprof.NewInvestor(testStartupID, "Jo", "North Fund", "Backs infra companies",
		[]string{"fintech"}, []domprof.Stage{domprof.StageSeed, domprof.StageSeriesA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return inv
}

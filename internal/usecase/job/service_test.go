package job

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

const testStartupID = domain.SubjectID("2c1743a3-91b7-435f-950e-d8a4f6c0d9b1")

// mockRepository implements the Repository contract for tests.
type mockRepository struct {
	saveFn          func(ctx context.Context, j domjob.Job) error
	getFn           func(ctx context.Context, id string) (domjob.Job, error)
	listFn          func(ctx context.Context) ([]domjob.Job, error)
	listByStartupFn func(ctx context.Context, startupID domain.SubjectID) ([]domjob.Job, error)
}

func (m *mockRepository) Save(ctx context.Context, j domjob.Job) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, j)
	}
	return nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (domjob.Job, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domjob.Job{}, domain.ErrJobNotFound
}

func (m *mockRepository) List(ctx context.Context) ([]domjob.Job, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRepository) ListByStartup(ctx context.Context, startupID domain.SubjectID) ([]domjob.Job, error) {
	if m.listByStartupFn != nil {
		return m.listByStartupFn(ctx, startupID)
	}
	return nil, nil
}

// mockStartups implements the StartupReader contract for tests.
type mockStartups struct {
	getStartupFn func(ctx context.Context, id domain.SubjectID) (domprof.Startup, error)
}

func (m *mockStartups) GetStartup(ctx context.Context, id domain.SubjectID) (domprof.Startup, error) {
	if m.getStartupFn != nil {
		return m.getStartupFn(ctx, id)
	}
	s, err := domprof.NewStartup(id, "Acme", "", "", "", "", nil)
	return s, err
}

func newTestService(t *testing.T) (*Service, *mockRepository, *mockStartups) {
	t.Helper()
	mr := &mockRepository{}
	ms := &mockStartups{}
	return New(mr, ms, zap.NewNop()), mr, ms
}

func TestCreate(t *testing.T) {
	svc, mr, _ := newTestService(t)
	ctx := context.Background()

	var saved domjob.Job
	mr.saveFn = func(_ context.Context, j domjob.Job) error {
		saved = j
		return nil
	}

	j, err := svc.Create(ctx, testStartupID, "Backend Engineer", "Build the API",
		domjob.TypeFullTime, []string{"Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.ID() == "" {
		t.Error("expected generated job ID")
	}
	if saved.ID() != j.ID() || saved.Title() != "Backend Engineer" {
		t.Errorf("unexpected saved job: %+v", saved)
	}
}

func TestCreate_UnknownStartup(t *testing.T) {
	svc, _, ms := newTestService(t)
	ctx := context.Background()

	ms.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return domprof.Startup{}, domain.ErrProfileNotFound
	}

	_, err := svc.Create(ctx, testStartupID, "Backend Engineer", "", domjob.TypeFullTime, nil)
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestCreate_InvalidPosting(t *testing.T) {
	svc, mr, _ := newTestService(t)
	ctx := context.Background()

	mr.saveFn = func(_ context.Context, _ domjob.Job) error {
		t.Error("Save should not be called for an invalid posting")
		return nil
	}

	if _, err := svc.Create(ctx, testStartupID, "", "", domjob.TypeFullTime, nil); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "nonexistent")
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

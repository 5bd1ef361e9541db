package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	domconn "github.com/talentbridge/matchd/internal/domain/connection"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
	"github.com/talentbridge/matchd/internal/metrics"
	connectionuc "github.com/talentbridge/matchd/internal/usecase/connection"
	embeddinguc "github.com/talentbridge/matchd/internal/usecase/embedding"
	healthuc "github.com/talentbridge/matchd/internal/usecase/health"
	jobuc "github.com/talentbridge/matchd/internal/usecase/job"
	matchinguc "github.com/talentbridge/matchd/internal/usecase/matching"
	profileuc "github.com/talentbridge/matchd/internal/usecase/profile"
	rankinguc "github.com/talentbridge/matchd/internal/usecase/ranking"
)

func TestMain(m *testing.M) {
	metrics.RegisterMatchingMetrics()
	m.Run()
}

// memProfiles is an in-memory profile store shared by the handler tests.
type memProfiles struct {
	mu        sync.Mutex
	talents   map[domain.SubjectID]domprof.Talent
	startups  map[domain.SubjectID]domprof.Startup
	investors map[domain.SubjectID]domprof.Investor
	order     map[domain.Role][]domain.SubjectID
}

func newMemProfiles() *memProfiles {
	return &memProfiles{
		talents:   make(map[domain.SubjectID]domprof.Talent),
		startups:  make(map[domain.SubjectID]domprof.Startup),
		investors: make(map[domain.SubjectID]domprof.Investor),
		order:     make(map[domain.Role][]domain.SubjectID),
	}
}

func (m *memProfiles) index(role domain.Role, id domain.SubjectID) {
	for _, existing := range m.order[role] {
		if existing == id {
			return
		}
	}
	m.order[role] = append(m.order[role], id)
}

func (m *memProfiles) SaveTalent(_ context.Context, t domprof.Talent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.talents[t.SubjectID()] = t
	m.index(domain.RoleTalent, t.SubjectID())
	return nil
}

func (m *memProfiles) GetTalent(_ context.Context, id domain.SubjectID) (domprof.Talent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.talents[id]
	if !ok {
		return domprof.Talent{}, domain.ErrProfileNotFound
	}
	return t, nil
}

func (m *memProfiles) SaveStartup(_ context.Context, s domprof.Startup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startups[s.SubjectID()] = s
	m.index(domain.RoleStartup, s.SubjectID())
	return nil
}

func (m *memProfiles) GetStartup(_ context.Context, id domain.SubjectID) (domprof.Startup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.startups[id]
	if !ok {
		return domprof.Startup{}, domain.ErrProfileNotFound
	}
	return s, nil
}

func (m *memProfiles) SaveInvestor(_ context.Context, i domprof.Investor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.investors[i.SubjectID()] = i
	m.index(domain.RoleInvestor, i.SubjectID())
	return nil
}

func (m *memProfiles) GetInvestor(_ context.Context, id domain.SubjectID) (domprof.Investor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.investors[id]
	if !ok {
		return domprof.Investor{}, domain.ErrProfileNotFound
	}
	return i, nil
}

func (m *memProfiles) ListCandidates(_ context.Context, role domain.Role) ([]domain.SubjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SubjectID(nil), m.order[role]...), nil
}

// memJobs is an in-memory job store.
type memJobs struct {
	mu    sync.Mutex
	jobs  map[string]domjob.Job
	order []string
}

func newMemJobs() *memJobs {
	return &memJobs{jobs: make(map[string]domjob.Job)}
}

func (m *memJobs) Save(_ context.Context, j domjob.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[j.ID()]; !ok {
		m.order = append(m.order, j.ID())
	}
	m.jobs[j.ID()] = j
	return nil
}

func (m *memJobs) Get(_ context.Context, id string) (domjob.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return domjob.Job{}, domain.ErrJobNotFound
	}
	return j, nil
}

func (m *memJobs) List(_ context.Context) ([]domjob.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domjob.Job, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.jobs[id])
	}
	return out, nil
}

func (m *memJobs) ListByStartup(_ context.Context, startupID domain.SubjectID) ([]domjob.Job, error) {
	all, _ := m.List(context.Background())
	var out []domjob.Job
	for _, j := range all {
		if j.StartupID() == startupID {
			out = append(out, j)
		}
	}
	return out, nil
}

// memConns is an in-memory connection store.
type memConns struct {
	mu    sync.Mutex
	conns map[string]domconn.Request
	order []string
}

func newMemConns() *memConns {
	return &memConns{conns: make(map[string]domconn.Request)}
}

func (m *memConns) Create(_ context.Context, req domconn.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[req.ID()] = req
	m.order = append(m.order, req.ID())
	return nil
}

func (m *memConns) Update(_ context.Context, req domconn.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[req.ID()] = req
	return nil
}

func (m *memConns) Get(_ context.Context, id string) (domconn.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.conns[id]
	if !ok {
		return domconn.Request{}, domain.ErrConnectionNotFound
	}
	return req, nil
}

func (m *memConns) ListSent(_ context.Context, subjectID domain.SubjectID) ([]domconn.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domconn.Request
	for _, id := range m.order {
		if m.conns[id].Requester() == subjectID {
			out = append(out, m.conns[id])
		}
	}
	return out, nil
}

func (m *memConns) ListReceived(_ context.Context, subjectID domain.SubjectID) ([]domconn.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domconn.Request
	for _, id := range m.order {
		if m.conns[id].Target() == subjectID {
			out = append(out, m.conns[id])
		}
	}
	return out, nil
}

// memEmbeddings is an in-memory embedding store. Reads on an unseeded
// store report not-found, degrading matches to lexical-only scoring.
type memEmbeddings struct {
	mu   sync.Mutex
	rows map[string]domain.Embedding
}

func newMemEmbeddings() *memEmbeddings {
	return &memEmbeddings{rows: make(map[string]domain.Embedding)}
}

func embKey(id domain.SubjectID, source domain.Source) string {
	return string(id) + "/" + string(source)
}

func (m *memEmbeddings) Upsert(_ context.Context, emb domain.Embedding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[embKey(emb.SubjectID, emb.Source)] = emb
	return nil
}

func (m *memEmbeddings) Get(_ context.Context, id domain.SubjectID, source domain.Source) (domain.Embedding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	emb, ok := m.rows[embKey(id, source)]
	if !ok {
		return domain.Embedding{}, domain.ErrEmbeddingNotFound
	}
	return emb, nil
}

type stubPinger struct{}

func (stubPinger) Ping(_ context.Context) error { return nil }

// newTestRouter wires the full handler stack over in-memory stores.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	profiles := newMemProfiles()
	jobs := newMemJobs()
	conns := newMemConns()
	embeddings := newMemEmbeddings()

	profileSvc := profileuc.New(profiles, embeddings, embeddinguc.NewDisabled(), logger)
	jobSvc := jobuc.New(jobs, profiles, logger)
	matchingSvc := matchinguc.New(profiles, embeddings, logger)
	rankingSvc := rankinguc.New(matchingSvc, profiles, jobs, 4, logger)
	connSvc := connectionuc.New(conns, logger)
	healthSvc := healthuc.New(stubPinger{}, nil)

	server := NewServer(profileSvc, jobSvc, matchingSvc, rankingSvc, connSvc, healthSvc, logger)
	r := chi.NewRouter()
	server.Routes(r)
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return v
}

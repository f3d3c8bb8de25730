package analytics

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/cache"
)

type fakeSentimentRepo struct {
	rows    []*entities.RollingSentiment
	upserts int
}

func (f *fakeSentimentRepo) Upsert(_ context.Context, sentiment *entities.RollingSentiment) error {
	f.upserts++
	for _, row := range f.rows {
		if row.MeetingID == sentiment.MeetingID && row.Name == sentiment.Name {
			// Conflict keeps the existing row.
			return nil
		}
	}
	sentiment.ID = len(f.rows) + 1
	f.rows = append(f.rows, sentiment)
	return nil
}

func (f *fakeSentimentRepo) ListByMeeting(_ context.Context, meetingID string) ([]*entities.RollingSentiment, error) {
	var out []*entities.RollingSentiment
	for _, row := range f.rows {
		if row.MeetingID == meetingID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeSkillsRepo struct {
	rows []*entities.EmployeeSkills
}

func (f *fakeSkillsRepo) Create(_ context.Context, skills *entities.EmployeeSkills) error {
	skills.ID = len(f.rows) + 1
	f.rows = append(f.rows, skills)
	return nil
}

func (f *fakeSkillsRepo) ListByMeeting(_ context.Context, meetingID string) ([]*entities.EmployeeSkills, error) {
	var out []*entities.EmployeeSkills
	for _, row := range f.rows {
		if row.MeetingID == meetingID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeRecommendationRepo struct {
	skillRecs []*entities.SkillRecommendation
	taskRecs  []*entities.TaskRecommendation
}

func (f *fakeRecommendationRepo) CreateSkill(_ context.Context, rec *entities.SkillRecommendation) error {
	rec.ID = len(f.skillRecs) + 1
	f.skillRecs = append(f.skillRecs, rec)
	return nil
}

func (f *fakeRecommendationRepo) ListSkillsByMeeting(_ context.Context, meetingID string) ([]*entities.SkillRecommendation, error) {
	var out []*entities.SkillRecommendation
	for _, rec := range f.skillRecs {
		if rec.MeetingID == meetingID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecommendationRepo) CreateTask(_ context.Context, rec *entities.TaskRecommendation) error {
	rec.ID = len(f.taskRecs) + 1
	f.taskRecs = append(f.taskRecs, rec)
	return nil
}

func (f *fakeRecommendationRepo) ListTasksByMeeting(_ context.Context, meetingID string) ([]*entities.TaskRecommendation, error) {
	var out []*entities.TaskRecommendation
	for _, rec := range f.taskRecs {
		if rec.MeetingID == meetingID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecommendationRepo) UpdateTaskStatus(_ context.Context, id int, status entities.TaskStatus) error {
	for _, rec := range f.taskRecs {
		if rec.ID == id {
			rec.Status = status
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

func newTestService() (*Service, *fakeSentimentRepo, *fakeRecommendationRepo, cache.Store) {
	sentiments := &fakeSentimentRepo{}
	skills := &fakeSkillsRepo{}
	recs := &fakeRecommendationRepo{}
	store := cache.NewMemoryStore()
	svc := NewService(sentiments, skills, recs, store, zap.NewNop())
	return svc, sentiments, recs, store
}

func TestRecordSentiment_DuplicateKeepsFirst(t *testing.T) {
	svc, sentiments, _, _ := newTestService()
	ctx := context.Background()

	first := map[string]float64{"positive": 0.8, "negative": 0.2}
	if _, err := svc.RecordSentiment(ctx, "mtg_1", "John Doe", "employee", first); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	second := map[string]float64{"positive": 0.1, "negative": 0.9}
	if _, err := svc.RecordSentiment(ctx, "mtg_1", "John Doe", "employee", second); err != nil {
		t.Fatalf("duplicate record failed: %v", err)
	}

	if sentiments.upserts != 2 {
		t.Fatalf("expected 2 upserts, got %d", sentiments.upserts)
	}
	rows, _ := sentiments.ListByMeeting(ctx, "mtg_1")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after duplicate, got %d", len(rows))
	}
}

func TestRecommendTask_DefaultsPending(t *testing.T) {
	svc, _, _, _ := newTestService()

	deadline := time.Now().Add(72 * time.Hour)
	rec, err := svc.RecommendTask(context.Background(), "mtg_1", "Review sprint goals", "Jane Manager", "John Doe", &deadline)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if rec.Status != entities.TaskStatusPending {
		t.Fatalf("expected pending status, got %q", rec.Status)
	}
}

func TestUpdateTaskStatus_UnknownTask(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.UpdateTaskStatus(context.Background(), 42, entities.TaskStatusDone)
	if err != entities.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestMeetingOverview_AssemblesParticipants(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	dist := map[string]float64{"positive": 1}
	if _, err := svc.RecordSentiment(ctx, "mtg_1", "John Doe", "employee", dist); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if _, err := svc.RecordSentiment(ctx, "mtg_1", "Jane Manager", "manager", dist); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if _, err := svc.RecommendSkill(ctx, "mtg_1", "John Doe", "Practice concise status updates"); err != nil {
		t.Fatalf("recommend failed: %v", err)
	}

	overview, err := svc.MeetingOverview(ctx, "mtg_1", entities.AccessRoleManager)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if len(overview.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(overview.Participants))
	}
	if len(overview.SkillRecommendations) != 1 {
		t.Fatalf("expected 1 skill recommendation, got %d", len(overview.SkillRecommendations))
	}
}

func TestMeetingOverview_CachedForAllRowsRoles(t *testing.T) {
	svc, _, _, store := newTestService()
	ctx := context.Background()

	dist := map[string]float64{"positive": 1}
	if _, err := svc.RecordSentiment(ctx, "mtg_1", "John Doe", "employee", dist); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	if _, err := svc.MeetingOverview(ctx, "mtg_1", entities.AccessRoleHR); err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if _, found, _ := store.Get(ctx, cache.MeetingOverviewKey("mtg_1")); !found {
		t.Fatal("expected overview to be cached for hr")
	}
}

func TestMeetingOverview_NotCachedForEmployee(t *testing.T) {
	svc, _, _, store := newTestService()
	ctx := context.Background()

	dist := map[string]float64{"positive": 1}
	if _, err := svc.RecordSentiment(ctx, "mtg_1", "John Doe", "employee", dist); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	if _, err := svc.MeetingOverview(ctx, "mtg_1", entities.AccessRoleEmployee); err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	// Row-restricted roles see their own slice, which must not leak into
	// a shared cache entry.
	if _, found, _ := store.Get(ctx, cache.MeetingOverviewKey("mtg_1")); found {
		t.Fatal("expected no cache entry for employee view")
	}
}

func TestSentimentWrite_InvalidatesOverviewCache(t *testing.T) {
	svc, _, _, store := newTestService()
	ctx := context.Background()

	dist := map[string]float64{"positive": 1}
	if _, err := svc.RecordSentiment(ctx, "mtg_1", "John Doe", "employee", dist); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if _, err := svc.MeetingOverview(ctx, "mtg_1", entities.AccessRoleSudo); err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	if _, err := svc.RecordSentiment(ctx, "mtg_1", "Jane Manager", "manager", dist); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if _, found, _ := store.Get(ctx, cache.MeetingOverviewKey("mtg_1")); found {
		t.Fatal("expected cache entry to be invalidated by new sentiment")
	}
}

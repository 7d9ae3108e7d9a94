package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/mail"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
	"github.com/sourcehut/todosrht-core/test/util"
)

// captureEnqueuer satisfies mail.Enqueuer and webhook.Enqueuer in-memory,
// so tests can assert on what the lifecycle engine would have delivered
// without an outbox table or SMTP in the loop.
type captureEnqueuer struct {
	mu    sync.Mutex
	mails []mail.Envelope
	hooks []webhook.Payload
}

func (c *captureEnqueuer) EnqueueMail(_ context.Context, _ string, env mail.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mails = append(c.mails, env)
	return nil
}

func (c *captureEnqueuer) EnqueueWebhook(_ context.Context, _ string, _ webhook.Scope, _ string, payload webhook.Payload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, payload)
	return nil
}

func (c *captureEnqueuer) mailsTo(addr string) []mail.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []mail.Envelope
	for _, env := range c.mails {
		if env.To == addr {
			out = append(out, env)
		}
	}
	return out
}

func (c *captureEnqueuer) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mails = nil
	c.hooks = nil
}

func testConfig() *config.Config {
	return &config.Config{
		Origin:        "https://todo.example.org",
		PostingDomain: "todo.example.org",
		NotifyFrom:    "notify@todo.example.org",
		SigningKey:    "test signing key",
	}
}

// fixture wires the full service layer against a per-test database.
type fixture struct {
	client       *ent.Client
	cfg          *config.Config
	enq          *captureEnqueuer
	users        *UserService
	participants *ParticipantService
	trackers     *TrackerService
	labels       *LabelService
	subs         *SubscriptionService
	lifecycle    *LifecycleService
	impexp       *ImportExportService
}

func newFixture(t *testing.T) *fixture {
	client, _ := util.SetupTestDatabase(t)
	cfg := testConfig()
	enq := &captureEnqueuer{}
	mentions := NewMentionService(client, cfg.Origin)
	return &fixture{
		client:       client,
		cfg:          cfg,
		enq:          enq,
		users:        NewUserService(client),
		participants: NewParticipantService(client),
		trackers:     NewTrackerService(client, cfg, enq),
		labels:       NewLabelService(client, enq),
		subs:         NewSubscriptionService(client),
		lifecycle:    NewLifecycleService(client, cfg, mentions, enq, enq),
		impexp:       NewImportExportService(client, cfg),
	}
}

func (f *fixture) user(t *testing.T, id, username string) *ent.User {
	t.Helper()
	u, err := f.users.GetOrCreate(context.Background(), id, username, username+"@example.org")
	require.NoError(t, err)
	return u
}

func (f *fixture) participant(t *testing.T, u *ent.User) *ent.Participant {
	t.Helper()
	p, err := f.participants.Resolve(context.Background(), models.ParticipantRef{
		Variant: models.ParticipantVariantUser,
		UserID:  u.ID,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) tracker(t *testing.T, owner *ent.User, name string) *ent.Tracker {
	t.Helper()
	tr, err := f.trackers.Create(context.Background(), owner, models.CreateTrackerRequest{Name: name})
	require.NoError(t, err)
	return tr
}

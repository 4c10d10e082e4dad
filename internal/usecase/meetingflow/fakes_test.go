package meetingflow

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	"github.com/jarvis-assistant/assistant/internal/usecase/minutes"
	"github.com/jarvis-assistant/assistant/internal/usecase/notification"
)

// memStore backs the flow, meeting and contact fakes so that the
// unit of work can snapshot and restore all three together.
type memStore struct {
	mu       sync.Mutex
	flows    map[uuid.UUID]entities.MeetingFlow
	meetings map[uuid.UUID]entities.Meeting
	contacts []entities.Contact

	failUpdate error
	failCreate error
}

func newMemStore() *memStore {
	return &memStore{
		flows:    map[uuid.UUID]entities.MeetingFlow{},
		meetings: map[uuid.UUID]entities.Meeting{},
	}
}

func (st *memStore) snapshot() (map[uuid.UUID]entities.MeetingFlow, map[uuid.UUID]entities.Meeting, []entities.Contact) {
	st.mu.Lock()
	defer st.mu.Unlock()
	flows := make(map[uuid.UUID]entities.MeetingFlow, len(st.flows))
	for k, v := range st.flows {
		flows[k] = v
	}
	meetings := make(map[uuid.UUID]entities.Meeting, len(st.meetings))
	for k, v := range st.meetings {
		meetings[k] = v
	}
	return flows, meetings, append([]entities.Contact(nil), st.contacts...)
}

func (st *memStore) restore(flows map[uuid.UUID]entities.MeetingFlow, meetings map[uuid.UUID]entities.Meeting, contacts []entities.Contact) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.flows, st.meetings, st.contacts = flows, meetings, contacts
}

func (st *memStore) meetingCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.meetings)
}

func (st *memStore) onlyMeeting() entities.Meeting {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, m := range st.meetings {
		return m
	}
	return entities.Meeting{}
}

func (st *memStore) flowCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.flows)
}

type flowRepo struct{ st *memStore }

func (r flowRepo) Create(_ context.Context, flow *entities.MeetingFlow) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.failCreate != nil {
		return r.st.failCreate
	}
	for _, f := range r.st.flows {
		if f.OwnerUserID == flow.OwnerUserID && f.State.IsActive() {
			return entities.ErrFlowAlreadyActive
		}
	}
	r.st.flows[flow.ID] = *flow
	return nil
}

func (r flowRepo) GetActive(_ context.Context, owner uuid.UUID) (*entities.MeetingFlow, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, f := range r.st.flows {
		if f.OwnerUserID == owner && f.State.IsActive() {
			f := f
			return &f, nil
		}
	}
	return nil, entities.ErrFlowNotFound
}

func (r flowRepo) Update(ctx context.Context, id uuid.UUID, version int, patch repositories.FlowPatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.failUpdate != nil {
		return r.st.failUpdate
	}
	f, ok := r.st.flows[id]
	if !ok || f.Version != version {
		return entities.ErrFlowVersionStale
	}
	if patch.State != nil {
		f.State = *patch.State
	}
	if patch.Attendees != nil {
		f.AttendeesPayload, _ = entities.EncodeAttendees(*patch.Attendees)
	}
	if patch.SetNotes {
		f.NotesPayload, _ = entities.EncodeNotes(patch.Notes)
	}
	if patch.Summary != nil {
		f.SummaryPayload, _ = entities.EncodeSummary(*patch.Summary)
	}
	if patch.ClearSummary {
		f.SummaryPayload = nil
	}
	if patch.MeetingID != nil {
		id := *patch.MeetingID
		f.MeetingID = &id
	}
	f.Version++
	f.UpdatedAt = time.Now()
	r.st.flows[id] = f
	return nil
}

type meetingRepo struct{ st *memStore }

func (r meetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.meetings[m.ID] = *m
	return nil
}

func (r meetingRepo) Complete(_ context.Context, owner, id uuid.UUID, text string, endedAt time.Time) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	m, ok := r.st.meetings[id]
	if !ok || m.OwnerUserID != owner {
		return entities.ErrMeetingNotFound
	}
	m.Complete(text, endedAt)
	r.st.meetings[id] = m
	return nil
}

func (r meetingRepo) FindByID(_ context.Context, owner, id uuid.UUID) (*entities.Meeting, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	m, ok := r.st.meetings[id]
	if !ok || m.OwnerUserID != owner {
		return nil, entities.ErrMeetingNotFound
	}
	return &m, nil
}

func (r meetingRepo) ListByOwner(_ context.Context, owner uuid.UUID, _ int) ([]*entities.Meeting, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*entities.Meeting
	for _, m := range r.st.meetings {
		if m.OwnerUserID == owner {
			m := m
			out = append(out, &m)
		}
	}
	return out, nil
}

type contactRepo struct{ st *memStore }

func (r contactRepo) Upsert(_ context.Context, owner uuid.UUID, name, email string) (*entities.Contact, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	email = entities.NormalizeEmail(email)
	for i, c := range r.st.contacts {
		if c.OwnerUserID == owner && c.Email == email {
			r.st.contacts[i].Name = name
			c := r.st.contacts[i]
			return &c, nil
		}
	}
	c := entities.NewContact(owner, name, email)
	r.st.contacts = append(r.st.contacts, *c)
	return c, nil
}

func (r contactRepo) FindByName(_ context.Context, owner uuid.UUID, name string) (*entities.Contact, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, c := range r.st.contacts {
		if c.OwnerUserID == owner && strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, entities.ErrContactNotFound
}

func (r contactRepo) ListAll(_ context.Context, owner uuid.UUID) ([]*entities.Contact, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*entities.Contact
	for _, c := range r.st.contacts {
		if c.OwnerUserID == owner {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memUnitOfWork struct{ st *memStore }

func (u memUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, tx repositories.TxRepositories) error) error {
	flows, meetings, contacts := u.st.snapshot()
	err := fn(ctx, repositories.TxRepositories{
		Contacts: contactRepo{u.st},
		Flows:    flowRepo{u.st},
		Meetings: meetingRepo{u.st},
	})
	if err != nil {
		u.st.restore(flows, meetings, contacts)
	}
	return err
}

type fakeGenerator struct {
	result minutes.Result
	calls  atomic.Int32
}

func (g *fakeGenerator) GenerateMinutes(context.Context, uuid.UUID, string, string, string) minutes.Result {
	g.calls.Add(1)
	return g.result
}

type fakeDispatcher struct {
	mu       sync.Mutex
	messages []notification.Message
	fail     map[string]string
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
	onSend   func()
}

func (d *fakeDispatcher) Send(_ context.Context, msg notification.Message) notification.Result {
	n := d.inFlight.Add(1)
	defer d.inFlight.Add(-1)
	for {
		p := d.peak.Load()
		if n <= p || d.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if d.delay > 0 {
		time.Sleep(d.delay)
	}

	d.mu.Lock()
	d.messages = append(d.messages, msg)
	d.mu.Unlock()
	if d.onSend != nil {
		d.onSend()
	}

	if reason, ok := d.fail[msg.Recipient]; ok {
		return notification.Result{Recipient: msg.Recipient, Error: reason}
	}
	return notification.Result{Recipient: msg.Recipient, Success: true}
}

type fakeArchive struct {
	mu      sync.Mutex
	objects map[uuid.UUID]string
	err     error
}

func (a *fakeArchive) ArchiveMinutes(_ context.Context, _, meetingID uuid.UUID, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	if a.objects == nil {
		a.objects = map[uuid.UUID]string{}
	}
	a.objects[meetingID] = text
	return nil
}

var errBoom = errors.New("boom")

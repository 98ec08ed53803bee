package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtapi/booking-go/internal/core"
	"github.com/dtapi/booking-go/internal/domain/model"
	"github.com/dtapi/booking-go/internal/notify"
)

// CandidateAll is the sentinel recipient meaning "every eligible translator".
const CandidateAll = "*"

// contactResolveConcurrency bounds parallel cache lookups per dispatch.
const contactResolveConcurrency = 8

// SinkRegistration pairs a sink implementation with a human-readable name for
// logging and the channel it delivers on.
type SinkRegistration struct {
	Name    string
	Channel string
	Sink    notify.Sink
}

// DispatcherOptions configures the notification dispatcher.
type DispatcherOptions struct {
	Logger      *slog.Logger
	Sinks       []SinkRegistration
	Translators core.TranslatorRepository
	Contacts    core.ContactCache
	Eligibility *EligibilityPolicy

	// ContactTTL bounds how long resolved contact details stay cached.
	// Zero means the cache's own default.
	ContactTTL time.Duration
}

// DispatchSummary reports the outcome of one fan-out. Delivery is
// at-least-once and tolerant of partial failure: failed sends are counted
// and logged, never surfaced as an error to the triggering operation.
type DispatchSummary struct {
	Attempted int
	Failed    int
}

// Dispatcher fans booking notifications out to every registered sink for
// every resolved recipient.
type Dispatcher struct {
	logger      *slog.Logger
	sinks       []SinkRegistration
	translators core.TranslatorRepository
	contacts    core.ContactCache
	eligibility *EligibilityPolicy
	contactTTL  time.Duration
}

// NewDispatcher constructs a dispatcher. Sinks with a nil implementation are
// dropped; an unnamed sink gets a placeholder name for logging.
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "dispatcher")
	}

	var sinks []SinkRegistration
	for _, entry := range opts.Sinks {
		if entry.Sink == nil {
			continue
		}
		name := entry.Name
		if name == "" {
			name = "sink"
		}
		sinks = append(sinks, SinkRegistration{Name: name, Channel: entry.Channel, Sink: entry.Sink})
	}

	return &Dispatcher{
		logger:      logger,
		sinks:       sinks,
		translators: opts.Translators,
		contacts:    opts.Contacts,
		eligibility: opts.Eligibility,
		contactTTL:  opts.ContactTTL,
	}
}

// Enabled reports whether the dispatcher has any active sinks.
func (d *Dispatcher) Enabled() bool {
	return len(d.sinks) > 0
}

// Dispatch resolves the candidate list to contact details and sends one
// message per recipient to every sink. Passing CandidateAll as a candidate
// expands to all eligible translators for the job. The returned error covers
// recipient resolution only; delivery failures land in the summary.
func (d *Dispatcher) Dispatch(ctx context.Context, job *model.Job, kind notify.Kind, candidates []string) (DispatchSummary, error) {
	return d.dispatch(ctx, job, kind, candidates, d.sinks)
}

// DispatchChannel behaves like Dispatch but only uses sinks registered on the
// named channel (e.g. notify.ChannelSMS for an SMS-only resend).
func (d *Dispatcher) DispatchChannel(ctx context.Context, job *model.Job, kind notify.Kind, candidates []string, channel string) (DispatchSummary, error) {
	var sinks []SinkRegistration
	for _, entry := range d.sinks {
		if entry.Channel == channel {
			sinks = append(sinks, entry)
		}
	}
	return d.dispatch(ctx, job, kind, candidates, sinks)
}

// DispatchContacts skips candidate resolution and delivers straight to the
// given contacts. Used for customer-facing messages where the recipient is
// not a translator (the job's stored email address).
func (d *Dispatcher) DispatchContacts(ctx context.Context, job *model.Job, kind notify.Kind, contacts []*model.Contact) DispatchSummary {
	return d.fanOut(ctx, job, kind, contacts, d.sinks)
}

func (d *Dispatcher) dispatch(ctx context.Context, job *model.Job, kind notify.Kind, candidates []string, sinks []SinkRegistration) (DispatchSummary, error) {
	var summary DispatchSummary
	if len(sinks) == 0 || len(candidates) == 0 {
		return summary, nil
	}

	ids, err := d.expandCandidates(ctx, job, candidates)
	if err != nil {
		return summary, err
	}
	if len(ids) == 0 {
		return summary, nil
	}

	contacts, err := d.resolveContacts(ctx, ids)
	if err != nil {
		return summary, err
	}
	return d.fanOut(ctx, job, kind, contacts, sinks), nil
}

func (d *Dispatcher) fanOut(ctx context.Context, job *model.Job, kind notify.Kind, contacts []*model.Contact, sinks []SinkRegistration) DispatchSummary {
	var attempted, failed atomic.Int64
	var wg sync.WaitGroup
	for _, contact := range contacts {
		msg := buildMessage(job, kind, contact)
		for _, entry := range sinks {
			wg.Add(1)
			go func() {
				defer wg.Done()
				attempted.Add(1)
				if err := entry.Sink.Send(ctx, msg); err != nil {
					failed.Add(1)
					d.logger.Error("notification delivery error",
						"sink", entry.Name,
						"job_id", job.ID,
						"kind", string(kind),
						"translator_id", contact.TranslatorID,
						"error", err,
					)
				}
			}()
		}
	}
	wg.Wait()

	return DispatchSummary{
		Attempted: int(attempted.Load()),
		Failed:    int(failed.Load()),
	}
}

// expandCandidates turns the caller's candidate list into concrete translator
// ids, expanding the CandidateAll sentinel through the eligibility policy.
func (d *Dispatcher) expandCandidates(ctx context.Context, job *model.Job, candidates []string) ([]string, error) {
	seen := make(map[string]struct{}, len(candidates))
	var ids []string

	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, candidate := range candidates {
		if candidate != CandidateAll {
			add(candidate)
			continue
		}

		eligible, err := d.EligibleTranslators(ctx, job)
		if err != nil {
			return nil, err
		}
		for _, t := range eligible {
			add(t.ID)
		}
	}
	return ids, nil
}

// EligibleTranslators lists the active translators the policy matches to the job.
func (d *Dispatcher) EligibleTranslators(ctx context.Context, job *model.Job) ([]*model.Translator, error) {
	active, err := d.translators.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if d.eligibility == nil {
		return active, nil
	}

	jobDoc := jobDocument(job)
	var eligible []*model.Translator
	for _, t := range active {
		ok, err := d.eligibility.Eligible(jobDoc, translatorDocument(t))
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, t)
		}
	}
	return eligible, nil
}

// resolveContacts fetches contact details for the given translator ids,
// serving from the cache where possible and batching the misses into one
// database query.
func (d *Dispatcher) resolveContacts(ctx context.Context, ids []string) ([]*model.Contact, error) {
	cached := make([]*model.Contact, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(contactResolveConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			if d.contacts == nil {
				return nil
			}
			contact, ok, err := d.contacts.Get(gctx, id)
			if err != nil {
				// Cache trouble degrades to a database read.
				d.logger.Warn("contact cache read failed", "translator_id", id, "error", err)
				return nil
			}
			if ok {
				cached[i] = contact
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var missing []string
	for i, id := range ids {
		if cached[i] == nil {
			missing = append(missing, id)
		}
	}

	contacts := make([]*model.Contact, 0, len(ids))
	for _, c := range cached {
		if c != nil {
			contacts = append(contacts, c)
		}
	}

	if len(missing) > 0 {
		fetched, err := d.translators.ContactsByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, contact := range fetched {
			contacts = append(contacts, contact)
			if d.contacts != nil {
				if err := d.contacts.Set(ctx, contact, d.contactTTL); err != nil {
					d.logger.Warn("contact cache write failed", "translator_id", contact.TranslatorID, "error", err)
				}
			}
		}
	}
	return contacts, nil
}

// buildMessage assembles the canonical payload for one recipient.
func buildMessage(job *model.Job, kind notify.Kind, contact *model.Contact) notify.Message {
	title, body := messageText(job, kind)
	return notify.Message{
		JobID:        job.ID,
		Kind:         kind,
		Title:        title,
		Body:         body,
		LanguageFrom: job.LanguageFrom,
		LanguageTo:   job.LanguageTo,
		Region:       job.Region,
		DeviceToken:  contact.DeviceToken,
		PhoneNumber:  contact.Phone,
		EmailAddress: contact.Email,
		OccurredAt:   time.Now().UTC(),
	}
}

func messageText(job *model.Job, kind notify.Kind) (title, body string) {
	switch kind {
	case notify.KindOffer:
		return job.Title, job.Body
	case notify.KindAccepted:
		return "Booking confirmed", "A translator accepted your booking."
	case notify.KindCancelled:
		return "Booking cancelled", "The booking you were assigned to has been cancelled."
	case notify.KindSessionEnded:
		return "Session completed", "The translation session has ended."
	case notify.KindReopened:
		return job.Title, job.Body
	case notify.KindConfirmation:
		return "Booking confirmation", "Your booking details have been recorded."
	default:
		return job.Title, job.Body
	}
}

package notify

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Severity tags a toast for styling on the frontend.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultTTL is how long a toast stays visible before it expires on its own.
const DefaultTTL = 5 * time.Second

// Toast is a dismissible, auto-expiring notification.
type Toast struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher pushes toast events out to connected frontends.
type Publisher interface {
	PublishToast(ctx context.Context, t Toast) error
}

// Center holds the active toasts for the application. Expiry timers are
// fire-and-forget: once pushed, a toast disappears after the TTL unless it
// was dismissed first, and there is no way to cancel the countdown.
type Center struct {
	mu        sync.Mutex
	toasts    map[string]Toast
	ttl       time.Duration
	policy    *bluemonday.Policy
	publisher Publisher
}

// NewCenter creates a toast center. publisher may be nil, in which case
// pushes are recorded locally and the missing sink is logged once per push.
func NewCenter(ttl time.Duration, publisher Publisher) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		toasts:    make(map[string]Toast),
		ttl:       ttl,
		policy:    bluemonday.StrictPolicy(),
		publisher: publisher,
	}
}

// Push records a toast and schedules its expiry. Message markup is stripped
// before the toast ever leaves the server.
func (c *Center) Push(severity Severity, message string) Toast {
	switch severity {
	case SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo:
	default:
		severity = SeverityInfo
	}

	t := Toast{
		ID:        uuid.New().String(),
		Severity:  severity,
		Message:   c.policy.Sanitize(message),
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.toasts[t.ID] = t
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() { c.expire(t.ID) })

	if c.publisher == nil {
		log.Printf("notify: no publisher configured, toast %s stays local", t.ID)
		return t
	}
	if err := c.publisher.PublishToast(context.Background(), t); err != nil {
		log.Printf("notify: publish toast %s: %v", t.ID, err)
	}
	return t
}

// Dismiss removes a toast before its TTL elapses. Dismissing an already
// expired toast is a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	delete(c.toasts, id)
	c.mu.Unlock()
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	delete(c.toasts, id)
	c.mu.Unlock()
}

// Active returns the live toasts ordered oldest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	out := make([]Toast, 0, len(c.toasts))
	for _, t := range c.toasts {
		out = append(out, t)
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Package notification provides the notification manager for broadcasting
// session events to stream subscribers.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
)

const sendTimeout = 500 * time.Millisecond

// ErrTopicNotFound is returned when subscribing to a topic that was never
// opened or has been closed.
var ErrTopicNotFound = errors.New("topic not found")

// Stream represents a notification stream for a subscriber.
type Stream interface {
	Send(*musicv1.Notification) error
}

// subscription represents a subscriber's subscription.
type subscription struct {
	id     string
	topic  string
	stream Stream
	done   chan struct{} // closed when the topic is closed

	// sendMu orders sends to the stream. Subscribe holds it until the
	// initial notifications are out.
	sendMu sync.Mutex
}

func (s *subscription) send(n *musicv1.Notification) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	return s.stream.Send(n)
}

// topic groups the subscriptions of one session.
type topic struct {
	subs       map[string]*subscription
	sequenceNo uint64
}

// Manager manages notification subscriptions and broadcasting, scoped by
// topic (one topic per playback session).
type Manager struct {
	mu     sync.RWMutex
	topics map[string]*topic
	subs   map[string]*subscription
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		topics: make(map[string]*topic),
		subs:   make(map[string]*subscription),
	}
}

// OpenTopic registers topicID. Opening an existing topic is a no-op.
func (m *Manager) OpenTopic(topicID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.topics[topicID]; ok {
		return
	}
	m.topics[topicID] = &topic{subs: make(map[string]*subscription)}
}

// Subscribe adds a subscription to topicID. It returns the subscription ID
// and a channel that is closed when the topic is closed.
//
// initial is called once the subscription is registered. The notifications
// it returns are numbered and sent to stream before any later broadcast, so
// nothing broadcast after the snapshot is lost and nothing arrives ahead of
// it. initial may be nil.
func (m *Manager) Subscribe(topicID string, stream Stream, initial func() []*musicv1.Notification) (string, <-chan struct{}, error) {
	m.mu.Lock()
	t, ok := m.topics[topicID]
	if !ok {
		m.mu.Unlock()
		return "", nil, errors.Wrapf(ErrTopicNotFound, "topic %s", topicID)
	}

	id := uuid.New().String()
	sub := &subscription{
		id:     id,
		topic:  topicID,
		stream: stream,
		done:   make(chan struct{}),
	}
	sub.sendMu.Lock()
	t.subs[id] = sub
	m.subs[id] = sub

	var greeting []*musicv1.Notification
	if initial != nil {
		greeting = initial()
	}
	for _, n := range greeting {
		t.sequenceNo++
		n.SequenceNo = t.sequenceNo
		n.SessionId = topicID
	}
	m.mu.Unlock()

	zlog.Debug().Msgf("notification: subscribed: topic=%s subscription=%s", topicID, id)

	for _, n := range greeting {
		if err := stream.Send(n); err != nil {
			sub.sendMu.Unlock()
			m.Unsubscribe(id)
			return "", nil, errors.Wrap(err, "failed to send initial notification")
		}
	}
	sub.sendMu.Unlock()

	return id, sub.done, nil
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.subs[subscriptionID]
	if !ok {
		return
	}
	delete(m.subs, subscriptionID)
	if t, ok := m.topics[sub.topic]; ok {
		delete(t.subs, subscriptionID)
	}
}

// Broadcast sends a notification to every subscriber of topicID. It does
// nothing for a topic that is not open.
// Each stream send runs in its own goroutine with a timeout so one slow
// subscriber cannot hold up the others.
func (m *Manager) Broadcast(topicID string, notification *musicv1.Notification) {
	m.mu.Lock()
	t, ok := m.topics[topicID]
	if !ok {
		m.mu.Unlock()
		zlog.Debug().Msgf("notification: broadcast to unknown topic: topic=%s type=%s", topicID, notification.Type)
		return
	}
	t.sequenceNo++
	notification.SequenceNo = t.sequenceNo
	notification.SessionId = topicID

	// Copy subscriptions to avoid holding lock during sends
	subs := make([]*subscription, 0, len(t.subs))
	for _, sub := range t.subs {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(s *subscription) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- s.send(notification)
			}()

			select {
			case err := <-done:
				if err != nil {
					zlog.Debug().Err(err).Msgf("notification: send failed: topic=%s subscription=%s", topicID, s.id)
				}
			case <-ctx.Done():
				zlog.Debug().Msgf("notification: send timed out: topic=%s subscription=%s", topicID, s.id)
			}
		}(sub)
	}

	wg.Wait()
}

// SubscriberCount returns the number of subscribers of topicID.
func (m *Manager) SubscriberCount(topicID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.topics[topicID]; ok {
		return len(t.subs)
	}
	return 0
}

// TotalSubscribers returns the number of subscribers across all topics.
func (m *Manager) TotalSubscribers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

// TopicCount returns the number of open topics.
func (m *Manager) TopicCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.topics)
}

// CloseTopic removes topicID and signals its subscribers to stop.
func (m *Manager) CloseTopic(topicID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeTopicLocked(topicID)
}

// Close closes the manager and removes all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id := range m.topics {
		m.closeTopicLocked(id)
	}
}

func (m *Manager) closeTopicLocked(topicID string) {
	t, ok := m.topics[topicID]
	if !ok {
		return
	}
	for id, sub := range t.subs {
		close(sub.done)
		delete(m.subs, id)
	}
	delete(m.topics, topicID)
}

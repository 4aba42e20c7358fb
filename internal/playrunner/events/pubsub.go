package events

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// PubSub is an in-process publish-subscribe bus. Delivery is best effort: a
// subscriber whose buffer is full misses the message.
type PubSub[T any] interface {
	Publish(ctx context.Context, topic string, message T) error

	// Subscribe returns the message channel and a function that ends the
	// subscription. The subscription also ends when ctx is done.
	Subscribe(ctx context.Context, topic string) (<-chan Message[T], func(), error)

	// Stats returns counters for a topic, or false if nothing used it yet.
	Stats(topic string) (TopicStats, bool)

	Close() error
	Health(ctx context.Context) error
}

// Message is a published payload with delivery metadata.
type Message[T any] struct {
	ID        string
	Topic     string
	Payload   T
	Timestamp time.Time
}

// TopicStats describes traffic on one topic.
type TopicStats struct {
	Topic           string
	MessageCount    int64
	DroppedCount    int64
	SubscriberCount int
}

type memoryPubSub[T any] struct {
	topics      map[string]*topic[T]
	topicsMutex sync.RWMutex
	bufferSize  int
	closed      bool
	closeMutex  sync.RWMutex
	messageID   atomic.Int64
}

type topic[T any] struct {
	name        string
	subscribers map[int64]*subscriber[T]
	subMutex    sync.RWMutex
	messages    atomic.Int64
	dropped     atomic.Int64
}

type subscriber[T any] struct {
	channel chan Message[T]
	cancel  context.CancelFunc
}

// Option represents a functional option for configuring the PubSub system.
type Option[T any] func(*memoryPubSub[T])

// WithBufferSize sets the buffer size for subscriber channels.
func WithBufferSize[T any](size int) Option[T] {
	return func(p *memoryPubSub[T]) {
		if size > 0 {
			p.bufferSize = size
		}
	}
}

// NewPubSub creates a new in-memory pub-sub system.
func NewPubSub[T any](opts ...Option[T]) PubSub[T] {
	p := &memoryPubSub[T]{
		topics:     make(map[string]*topic[T]),
		bufferSize: 64,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *memoryPubSub[T]) Publish(ctx context.Context, topicName string, message T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	p.closeMutex.RLock()
	defer p.closeMutex.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	t := p.getOrCreateTopic(topicName)
	msg := Message[T]{
		ID:        strconv.FormatInt(p.messageID.Add(1), 10),
		Topic:     topicName,
		Payload:   message,
		Timestamp: time.Now(),
	}
	t.messages.Add(1)

	// Hold the read lock while sending so unsubscribe cannot close a
	// channel mid-delivery.
	t.subMutex.RLock()
	defer t.subMutex.RUnlock()
	for _, sub := range t.subscribers {
		select {
		case sub.channel <- msg:
		default:
			t.dropped.Add(1)
		}
	}
	return nil
}

func (p *memoryPubSub[T]) Subscribe(ctx context.Context, topicName string) (<-chan Message[T], func(), error) {
	p.closeMutex.RLock()
	defer p.closeMutex.RUnlock()
	if p.closed {
		return nil, nil, ErrSubscriberClosed
	}

	t := p.getOrCreateTopic(topicName)
	subCtx, cancel := context.WithCancel(ctx)
	id := p.messageID.Add(1)
	sub := &subscriber[T]{
		channel: make(chan Message[T], p.bufferSize),
		cancel:  cancel,
	}

	t.subMutex.Lock()
	t.subscribers[id] = sub
	t.subMutex.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			t.subMutex.Lock()
			if _, exists := t.subscribers[id]; exists {
				delete(t.subscribers, id)
				close(sub.channel)
			}
			t.subMutex.Unlock()
		})
	}

	go func() {
		<-subCtx.Done()
		unsubscribe()
	}()

	return sub.channel, unsubscribe, nil
}

func (p *memoryPubSub[T]) Stats(topicName string) (TopicStats, bool) {
	p.topicsMutex.RLock()
	t, ok := p.topics[topicName]
	p.topicsMutex.RUnlock()
	if !ok {
		return TopicStats{}, false
	}

	t.subMutex.RLock()
	n := len(t.subscribers)
	t.subMutex.RUnlock()
	return TopicStats{
		Topic:           topicName,
		MessageCount:    t.messages.Load(),
		DroppedCount:    t.dropped.Load(),
		SubscriberCount: n,
	}, true
}

func (p *memoryPubSub[T]) Close() error {
	p.closeMutex.Lock()
	defer p.closeMutex.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	p.topicsMutex.Lock()
	defer p.topicsMutex.Unlock()
	for _, t := range p.topics {
		t.subMutex.Lock()
		for id, sub := range t.subscribers {
			sub.cancel()
			close(sub.channel)
			delete(t.subscribers, id)
		}
		t.subMutex.Unlock()
	}
	p.topics = make(map[string]*topic[T])
	return nil
}

func (p *memoryPubSub[T]) Health(ctx context.Context) error {
	p.closeMutex.RLock()
	defer p.closeMutex.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	return nil
}

func (p *memoryPubSub[T]) getOrCreateTopic(name string) *topic[T] {
	p.topicsMutex.RLock()
	if t, exists := p.topics[name]; exists {
		p.topicsMutex.RUnlock()
		return t
	}
	p.topicsMutex.RUnlock()

	p.topicsMutex.Lock()
	defer p.topicsMutex.Unlock()

	// Double-check after acquiring write lock
	if t, exists := p.topics[name]; exists {
		return t
	}
	t := &topic[T]{
		name:        name,
		subscribers: make(map[int64]*subscriber[T]),
	}
	p.topics[name] = t
	return t
}

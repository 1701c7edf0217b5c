// Package realtime fans order snapshots out to store dashboards connected over
// websockets.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultSendBuffer = 16

// ErrHubClosed is returned by Subscribe after Close.
var ErrHubClosed = errors.New("realtime hub closed")

// Conn is one live client connection. Write is only ever called from the
// connection's writer goroutine.
type Conn interface {
	Write(data []byte) error
	Close() error
}

// message is a queued payload tagged with the store it was broadcast for.
type message struct {
	storeID uuid.UUID
	data    []byte
}

type subscriber struct {
	conn    Conn
	storeID uuid.UUID
	send    chan message
	done    chan struct{}
	exited  chan struct{}
	once    sync.Once
}

func (s *subscriber) stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *subscriber) discardQueued() {
	for {
		select {
		case <-s.send:
		default:
			return
		}
	}
}

// Hub keeps per-store subscriber sets. Each subscriber has its own bounded
// queue drained by a dedicated writer, so a slow client never stalls a
// broadcast or other clients.
type Hub struct {
	mu     sync.RWMutex
	stores map[uuid.UUID]map[*subscriber]struct{}
	conns  map[Conn]*subscriber
	closed bool

	sendBuffer int
	logger     *slog.Logger
	wg         sync.WaitGroup
}

// NewHub creates an empty hub. sendBuffer <= 0 falls back to the default.
func NewHub(sendBuffer int, logger *slog.Logger) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}

	return &Hub{
		stores:     make(map[uuid.UUID]map[*subscriber]struct{}),
		conns:      make(map[Conn]*subscriber),
		sendBuffer: sendBuffer,
		logger:     logger,
	}
}

// Subscribe registers conn for storeID. A connection already registered under
// another store is moved: its writer is kept and snapshots still queued for the
// old store are discarded.
func (h *Hub) Subscribe(conn Conn, storeID uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	if sub, ok := h.conns[conn]; ok {
		if sub.storeID == storeID {
			return nil
		}
		h.removeLocked(sub)
		sub.storeID = storeID
		h.addLocked(sub)
		sub.discardQueued()

		return nil
	}

	sub := &subscriber{
		conn:    conn,
		storeID: storeID,
		send:    make(chan message, h.sendBuffer),
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	h.conns[conn] = sub
	h.addLocked(sub)

	h.wg.Add(1)
	go h.writeLoop(sub)

	return nil
}

// Unsubscribe removes conn from storeID and waits for its writer to exit, so
// nothing is written to conn once it returns. Unknown pairs are ignored. The
// caller keeps ownership of the connection.
func (h *Hub) Unsubscribe(conn Conn, storeID uuid.UUID) {
	h.mu.Lock()
	sub, ok := h.conns[conn]
	if !ok || sub.storeID != storeID {
		h.mu.Unlock()

		return
	}
	delete(h.conns, conn)
	h.removeLocked(sub)
	h.mu.Unlock()

	sub.stop()
	<-sub.exited
}

// Broadcast marshals payload once and queues it for every subscriber of the
// store. Full queues drop the message.
func (h *Hub) Broadcast(ctx context.Context, storeID uuid.UUID, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode realtime payload",
			slog.String("store_id", storeID.String()),
			slog.Any("error", err),
		)

		return
	}

	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.stores[storeID]))
	for sub := range h.stores[storeID] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-sub.done:
		case sub.send <- message{storeID: storeID, data: data}:
		default:
			h.logger.WarnContext(ctx, "realtime queue full, dropping message",
				slog.String("store_id", storeID.String()),
			)
		}
	}
}

// SubscriberCount reports how many connections watch the store.
func (h *Hub) SubscriberCount(storeID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.stores[storeID])
}

// Close disconnects every subscriber and waits for the writers to exit.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil
	}
	h.closed = true
	subs := make([]*subscriber, 0, len(h.conns))
	for _, sub := range h.conns {
		subs = append(subs, sub)
	}
	h.conns = make(map[Conn]*subscriber)
	h.stores = make(map[uuid.UUID]map[*subscriber]struct{})
	h.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
		_ = sub.conn.Close()
	}
	h.wg.Wait()

	return nil
}

func (h *Hub) writeLoop(sub *subscriber) {
	defer h.wg.Done()
	defer close(sub.exited)

	for {
		select {
		case <-sub.done:
			return
		case msg := <-sub.send:
			// select picks ready cases at random; a stop must win over the queue.
			select {
			case <-sub.done:
				return
			default:
			}
			if msg.storeID != h.storeOf(sub) {
				continue
			}
			if err := sub.conn.Write(msg.data); err != nil {
				h.logger.Info("realtime write failed, dropping subscriber",
					slog.String("store_id", msg.storeID.String()),
					slog.Any("error", err),
				)
				h.evict(sub)

				return
			}
		}
	}
}

func (h *Hub) storeOf(sub *subscriber) uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return sub.storeID
}

func (h *Hub) evict(sub *subscriber) {
	h.mu.Lock()
	if current, ok := h.conns[sub.conn]; ok && current == sub {
		delete(h.conns, sub.conn)
		h.removeLocked(sub)
	}
	h.mu.Unlock()

	sub.stop()
	_ = sub.conn.Close()
}

func (h *Hub) addLocked(sub *subscriber) {
	set, ok := h.stores[sub.storeID]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.stores[sub.storeID] = set
	}
	set[sub] = struct{}{}
}

func (h *Hub) removeLocked(sub *subscriber) {
	set := h.stores[sub.storeID]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.stores, sub.storeID)
	}
}

// HubParams holds dependencies for the hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLifecycleHub builds the process-wide hub and closes it on shutdown.
func NewLifecycleHub(params HubParams) *Hub {
	var sendBuffer int
	if params.Config.Realtime != nil {
		sendBuffer = params.Config.Realtime.SendBuffer
	}

	hub := NewHub(sendBuffer, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing realtime hub")

			return hub.Close()
		},
	})

	return hub
}

func asBroadcaster(hub *Hub) service.OrderBroadcaster {
	return hub
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLifecycleHub, asBroadcaster),
)

package stream

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/shenikar/abhaya_command_center/internal/metrics"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

// MessageTypeSubjectUpdate - тип сообщения с обновлением туриста
const MessageTypeSubjectUpdate = "subject_update"

// Message - конверт сообщения websocket
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub хранит подключенных клиентов и рассылает им обновления ростера
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run обслуживает хаб до завершения ctx
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("Starting stream hub...")
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			metrics.StreamClients.Set(0)
			h.logger.Info("Stream hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			metrics.StreamClients.Set(float64(total))
			h.logger.WithField("total_clients", total).Info("Stream client connected")

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Медленный клиент: буфер переполнен, отключаем
					close(client.send)
					delete(h.clients, client)
				}
			}
			total := len(h.clients)
			h.mu.Unlock()
			metrics.StreamClients.Set(float64(total))
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mu.Unlock()
	metrics.StreamClients.Set(float64(total))
	h.logger.WithField("total_clients", total).Info("Stream client disconnected")
}

// Broadcast ставит обновление в очередь рассылки. Если очередь заполнена,
// обновление отбрасывается: следующее обновление того же туриста его заменит.
func (h *Hub) Broadcast(update models.SubjectUpdate) {
	select {
	case h.broadcast <- Message{Type: MessageTypeSubjectUpdate, Data: update}:
	default:
		h.logger.WithField("subject_id", update.Subject.ID).Warn("Stream broadcast queue is full, dropping update")
	}
}

// Serve регистрирует соединение в хабе и запускает его циклы чтения и записи
func (h *Hub) Serve(conn *websocket.Conn) {
	client := newClient(h, conn)
	select {
	case h.register <- client:
		client.start()
	case <-h.done:
		_ = conn.Close()
	}
}

// leave снимает клиента с учета; после остановки хаба ничего не делает
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

package ws

import (
	"sync"

	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/services"
)

// Manager tracks connected clients by user id and fans events out to them.
// A user may hold several connections (multiple tabs); every one of them
// receives the event. Manager implements services.EventPublisher.
type Manager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes connect and disconnect events. Started once from app boot.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]struct{})
			}
			m.clients[client.UserID][client] = struct{}{}
			m.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.Send)
					if len(conns) == 0 {
						delete(m.clients, client.UserID)
					}
				}
			}
			m.mu.Unlock()
			logger.Debug("ws client unregistered", "user_id", client.UserID)
		}
	}
}

// Publish delivers an event to every connection of the given users. A client
// whose send buffer is full is dropped rather than blocking the publisher.
func (m *Manager) Publish(userIDs []string, event services.Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, userID := range userIDs {
		for client := range m.clients[userID] {
			select {
			case client.Send <- event:
			default:
				go func(c *Client) { m.unregister <- c }(client)
				logger.Warn("ws client dropped, send buffer full", "user_id", userID)
			}
		}
	}
}

// IsConnected reports whether the user has at least one open connection.
func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID]) > 0
}

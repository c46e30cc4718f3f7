// Package sse provides Server-Sent Events client management for the
// built-in preview server's live reload.
package sse

import "sync"

type Client struct {
	ID  string
	Msg chan string

	// Doc is the document name the client is watching; empty means all.
	Doc string
}

type Clients struct {
	clients map[*Client]bool
	mu      sync.RWMutex
}

func NewClients() *Clients {
	return &Clients{
		clients: make(map[*Client]bool),
	}
}

func (s *Clients) Add(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[client] = true
}

func (s *Clients) Delete(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, client)
	close(client.Msg)
}

func (s *Clients) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Broadcast delivers msg to every client watching doc. Slow clients are
// skipped rather than blocked on.
func (s *Clients) Broadcast(doc, msg string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for client := range s.clients {
		if client.Doc == "" || client.Doc == doc {
			select {
			case client.Msg <- msg:
			default:
			}
		}
	}
}

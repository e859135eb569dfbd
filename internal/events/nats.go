// Package events publishes parse results to NATS so downstream systems
// (quote builders, CRM sync) can react without polling.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"quotemaster/internal/flight"
)

// DefaultSubject is the subject parsed itineraries are published on.
const DefaultSubject = "quotemaster.itinerary.parsed"

// ParsedEvent is the payload published after each successful extraction.
type ParsedEvent struct {
	Format   string       `json:"format"`
	ParsedAt time.Time    `json:"parsedAt"`
	Legs     []flight.Leg `json:"legs"`
}

// Publisher publishes parse events to a NATS server.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// Connect dials the NATS server at url. An empty subject falls back to
// DefaultSubject.
func Connect(url, subject string) (*Publisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}

	nc, err := nats.Connect(url,
		nats.Name("quotemaster"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return &Publisher{nc: nc, subject: subject}, nil
}

// PublishParsed publishes one extraction result. Fire and forget; delivery
// is best effort.
func (p *Publisher) PublishParsed(format string, legs []flight.Leg) error {
	event := ParsedEvent{
		Format:   format,
		ParsedAt: time.Now().UTC(),
		Legs:     legs,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.nc.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	return nil
}

// Close flushes pending publishes and closes the connection.
func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}
	_ = p.nc.Flush()
	p.nc.Close()
}

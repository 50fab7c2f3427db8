// Package events publishes fight lifecycle notifications to NATS
// JetStream so downstream consumers (display boards, club notifications)
// can react without polling.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// Event types carried on the stream.
const (
	EventDraftGenerated  = "draft_generated"
	EventFightsCommitted = "fights_committed"
)

type Config struct {
	URL           string
	StreamName    string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
	MaxAge        time.Duration
	Replicas      int
}

func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		StreamName:    "FIGHT_EVENTS",
		SubjectPrefix: "fights.events",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		MaxAge:        7 * 24 * time.Hour,
		Replicas:      1,
	}
}

// Publisher emits fight lifecycle events to a JetStream stream. Publishing
// is best-effort: a broker failure is logged, never surfaced to the
// operation that triggered it.
type Publisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	config Config
}

func NewPublisher(cfg Config) (*Publisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := &Publisher{nc: nc, js: js, config: cfg}
	if err := p.ensureStream(context.Background()); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}
	return p, nil
}

func (p *Publisher) ensureStream(ctx context.Context) error {
	sc := jetstream.StreamConfig{
		Name:      p.config.StreamName,
		Subjects:  []string{fmt.Sprintf("%s.>", p.config.SubjectPrefix)},
		Retention: jetstream.LimitsPolicy,
		MaxAge:    p.config.MaxAge,
		Storage:   jetstream.FileStorage,
		Replicas:  p.config.Replicas,
	}

	if _, err := p.js.Stream(ctx, p.config.StreamName); err != nil {
		if _, err := p.js.CreateStream(ctx, sc); err != nil {
			return fmt.Errorf("create stream: %w", err)
		}
		log.Info().Str("stream", p.config.StreamName).Msg("created JetStream stream")
	}
	return nil
}

// DraftGenerated announces a fresh draft for a competition.
func (p *Publisher) DraftGenerated(ctx context.Context, competitionID uuid.UUID, fightCount int) {
	p.publish(ctx, EventDraftGenerated, competitionID, fightCount)
}

// FightsCommitted announces that a draft's fights became durable.
func (p *Publisher) FightsCommitted(ctx context.Context, competitionID uuid.UUID, fightCount int) {
	p.publish(ctx, EventFightsCommitted, competitionID, fightCount)
}

func (p *Publisher) publish(ctx context.Context, eventType string, competitionID uuid.UUID, fightCount int) {
	subject := fmt.Sprintf("%s.%s", p.config.SubjectPrefix, eventType)
	eventID := uuid.New()

	env := map[string]interface{}{
		"eventId":       eventID.String(),
		"eventType":     eventType,
		"competitionId": competitionID.String(),
		"fightCount":    fightCount,
		"timestamp":     time.Now().UTC(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to marshal event")
		return
	}

	ack, err := p.js.PublishMsg(ctx, &nats.Msg{
		Subject: subject,
		Data:    data,
		Header: nats.Header{
			"Event-Type":     []string{eventType},
			"Competition-ID": []string{competitionID.String()},
			"Event-ID":       []string{eventID.String()},
		},
	},
		jetstream.WithMsgID(eventID.String()),
		jetstream.WithExpectStream(p.config.StreamName),
	)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("failed to publish event")
		return
	}

	log.Info().
		Str("subject", subject).
		Str("competition_id", competitionID.String()).
		Uint64("sequence", ack.Sequence).
		Msg("published fight event")
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

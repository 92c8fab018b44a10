package adapters

import (
	"encoding/json"
	"strconv"
	"sync/atomic"

	"github.com/donovanhide/eventsource"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/domain"
)

type statusStreamEvent struct {
	id   string
	data string
}

func (e *statusStreamEvent) Id() string    { return e.id }
func (e *statusStreamEvent) Event() string { return "status" }
func (e *statusStreamEvent) Data() string  { return e.data }

// eventsourceProgressPublisher fans status events out to the SSE stream of
// the generation they belong to. Each generation ID is its own channel.
type eventsourceProgressPublisher struct {
	server *eventsource.Server
	logger outbound.LoggerPort
	lastID atomic.Int64
}

func NewEventsourceProgressPublisher(server *eventsource.Server, logger outbound.LoggerPort) outbound.ProgressPublisherPort {
	return &eventsourceProgressPublisher{
		server: server,
		logger: logger,
	}
}

func (p *eventsourceProgressPublisher) Publish(event domain.StatusEvent) {
	event.Seq = p.lastID.Add(1)

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(err, "Failed to marshal the status event")
		return
	}

	p.server.Publish([]string{event.GenerationID}, &statusStreamEvent{
		id:   strconv.FormatInt(event.Seq, 10),
		data: string(data),
	})
}

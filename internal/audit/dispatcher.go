package audit

import "log"

type Event struct {
	ServiceCenterID string
	UserID          string
	Action          string
	Entity          string
	EntityID        string
	Metadata        any
}

// Dispatcher writes audit events off the request path. The queue is bounded;
// when it fills, events are dropped rather than stalling an API call.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

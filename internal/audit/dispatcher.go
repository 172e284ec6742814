package audit

import "log"

// Ações registradas pelo núcleo de agendamento
const (
	ActionBookingCreated       = "booking_created"
	ActionBookingStatusChanged = "booking_status_changed"
	ActionScheduleUpdated      = "schedule_updated"
	ActionBreakCreated         = "break_created"
	ActionBreakDeleted         = "break_deleted"
	ActionBlockedSlotCreated   = "blocked_slot_created"
	ActionBlockedSlotDeleted   = "blocked_slot_deleted"
)

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

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

// Dispatch enfileira sem bloquear; auditoria nunca derruba a API.
// Com dispatcher nil (testes) vira no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

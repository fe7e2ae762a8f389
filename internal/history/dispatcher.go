package history

import "log"

type Event struct {
	AppointmentID  uint
	PreviousStatus string
	NewStatus      string
	Type           string
	Reason         string
	Actor          string
}

// Dispatcher grava a trilha fora do caminho da requisição. Falha de
// histórico nunca derruba a mutação primária: é registrada no log para
// reconciliação posterior.
type Dispatcher struct {
	recorder *Recorder
	queue    chan Event
}

func NewDispatcher(recorder *Recorder) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			log.Println("[history] record error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	// sem dispatcher configurado a trilha é simplesmente omitida
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos histórico (nunca quebrar API)
		log.Println("[history] queue full, dropping event")
	}
}

package notify

import "log"

type message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher desacopla o envio de e-mail da request: fila com buffer e
// um worker. Falha de envio é logada e engolida; fila cheia descarta
// (nunca quebrar a API por causa de e-mail).
type Dispatcher struct {
	mailer Mailer
	queue  chan message
	done   chan struct{}
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan message, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for msg := range d.queue {
		if err := d.mailer.Send(msg.To, msg.Subject, msg.Body); err != nil {
			log.Println("email send error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(to, subject, body string) {
	select {
	case d.queue <- message{To: to, Subject: subject, Body: body}:
	default:
		log.Println("email queue full, dropping message to", to)
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

package services

import (
	"MediBook/config"
	"MediBook/utils"
	"log"
)

// Mail is one outbound notification.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// SendFunc delivers a single mail. Production wires utils.SendMail;
// tests substitute a recorder.
type SendFunc func(Mail) error

// Notifier dispatches notification mail off the request path. Delivery
// failures are logged and dropped; a full queue drops the mail rather
// than block a booking.
type Notifier struct {
	send  SendFunc
	queue chan Mail
}

func NewNotifier(send SendFunc) *Notifier {
	n := &Notifier{
		send:  send,
		queue: make(chan Mail, 100),
	}
	go n.worker()
	return n
}

func (n *Notifier) worker() {
	for m := range n.queue {
		if err := n.send(m); err != nil {
			log.Printf("notification error: %v", err)
		}
	}
}

// SendWithConfig delivers a Mail over SMTP; the production SendFunc.
func SendWithConfig(cfg config.MailConfig, m Mail) error {
	return utils.SendMail(cfg, m.To, m.Subject, m.Body)
}

// Notify enqueues a mail without blocking.
func (n *Notifier) Notify(m Mail) {
	select {
	case n.queue <- m:
	default:
		log.Println("notification queue full, dropping mail")
	}
}

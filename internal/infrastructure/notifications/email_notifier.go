package notifications

import (
	"log"
	"os"
	"strconv"
	"sync"

	"rids_ngo/internal/domain/entities"
	"rids_ngo/internal/usecase/interfaces"

	gomail "gopkg.in/gomail.v2"
)

const defaultQueueSize = 64

// EmailNotifier dispatches notifications over SMTP from a single background
// worker. Enqueue never blocks the request path: when the queue is full the
// notification is dropped and logged. When SMTP is not configured every
// notification is silently dropped (logged once at startup), matching the
// fail-silent relay behavior of the rest of the site.

type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	queue  chan entities.Notification

	closeOnce sync.Once
	done      chan struct{}
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

// NewEmailNotifierFromEnv builds the notifier from SMTP_* env vars and starts
// its worker. The returned notifier is always usable; configuration absence
// only disables delivery.
func NewEmailNotifierFromEnv() *EmailNotifier {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	n := &EmailNotifier{
		queue: make(chan entities.Notification, defaultQueueSize),
		done:  make(chan struct{}),
	}

	if host == "" || user == "" || password == "" {
		log.Printf("[donation][notifier] SMTP not configured; notifications disabled")
	} else {
		n.dialer = gomail.NewDialer(host, port, user, password)
		n.from = user
	}

	go n.run()
	return n
}

// Enqueue hands a notification to the worker without blocking.
func (n *EmailNotifier) Enqueue(msg entities.Notification) {
	if msg.To == "" {
		return
	}
	select {
	case n.queue <- msg:
	default:
		log.Printf("[donation][notifier] queue full; notification dropped to=%s subject=%q", msg.To, msg.Subject)
	}
}

// Close stops the worker after draining queued notifications.
func (n *EmailNotifier) Close() {
	n.closeOnce.Do(func() {
		close(n.queue)
		<-n.done
	})
}

func (n *EmailNotifier) run() {
	defer close(n.done)
	for msg := range n.queue {
		n.send(msg)
	}
}

func (n *EmailNotifier) send(msg entities.Notification) {
	if n.dialer == nil {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Printf("[donation][notifier] delivery failed to=%s subject=%q err=%v", msg.To, msg.Subject, err)
		return
	}
	log.Printf("[donation][notifier] delivered to=%s subject=%q", msg.To, msg.Subject)
}

package mailer

import (
	"log"

	"storefront/internal/config"

	"github.com/wneessen/go-mail"
)

// メール1通分。
type Message struct {
	To      string
	Subject string
	Body    string
}

// Usecaseが依存する送信の約束。
type Sender interface {
	Send(msg Message) error
}

// SMTPで実際に送る実装（go-mail）。
type SMTPSender struct {
	cfg config.Config
}

func NewSMTPSender(cfg config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(msg Message) error {
	m := mail.NewMsg()

	if err := m.From(s.cfg.MailFrom); err != nil {
		return err
	}
	if err := m.To(msg.To); err != nil {
		return err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(s.cfg.SMTPHost,
		mail.WithPort(s.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(s.cfg.SMTPUsername),
		mail.WithPassword(s.cfg.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(m)
}

// Dispatcher はメール送信をリクエスト処理から切り離す。
// Enqueueは積むだけですぐ戻る。送信失敗はログに残して捨てる
// （注文やパスワード再設定自体は失敗させない）。
type Dispatcher struct {
	sender Sender
	queue  chan Message
	done   chan struct{}
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}

	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, queueSize),
		done:   make(chan struct{}),
	}

	go d.run()
	return d
}

// キューに積む。満杯なら諦めてログだけ残す。
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		log.Printf("mailer: queue full, dropping mail to %s", msg.To)
	}
}

// Close はキューを閉じて、積まれた分を送り切るまで待つ。
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for msg := range d.queue {
		if err := d.sender.Send(msg); err != nil {
			//1回だけリトライ
			if err2 := d.sender.Send(msg); err2 != nil {
				log.Printf("mailer: failed to send to %s: %v", msg.To, err2)
			}
		}
	}
}

package mailer_test

import (
	"errors"
	"sync"
	"testing"

	"storefront/internal/mailer"

	"github.com/stretchr/testify/assert"
)

// 送信を記録するフェイクSender
type recordingSender struct {
	mu       sync.Mutex
	sent     []mailer.Message
	failWith error
	failN    int // 先頭からfailN回だけ失敗させる
}

func (s *recordingSender) Send(msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failN > 0 {
		s.failN--
		return s.failWith
	}

	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) Sent() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mailer.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

func TestDispatcher_DeliversEnqueuedMessages(t *testing.T) {
	sender := &recordingSender{}
	d := mailer.NewDispatcher(sender, 8)

	d.Enqueue(mailer.Message{To: "a@example.com", Subject: "hi", Body: "one"})
	d.Enqueue(mailer.Message{To: "b@example.com", Subject: "hi", Body: "two"})

	//Closeは積まれた分を送り切ってから戻る
	d.Close()

	sent := sender.Sent()
	if assert.Equal(t, 2, len(sent)) {
		assert.Equal(t, "a@example.com", sent[0].To)
		assert.Equal(t, "b@example.com", sent[1].To)
	}
}

func TestDispatcher_RetriesOnceOnFailure(t *testing.T) {
	//1回目は失敗、リトライで成功する
	sender := &recordingSender{failWith: errors.New("smtp down"), failN: 1}
	d := mailer.NewDispatcher(sender, 8)

	d.Enqueue(mailer.Message{To: "a@example.com", Subject: "hi", Body: "one"})
	d.Close()

	assert.Equal(t, 1, len(sender.Sent()))
}

func TestDispatcher_DropsAfterRetryFails(t *testing.T) {
	//2回とも失敗したら捨てる（パニックもブロックもしない）
	sender := &recordingSender{failWith: errors.New("smtp down"), failN: 2}
	d := mailer.NewDispatcher(sender, 8)

	d.Enqueue(mailer.Message{To: "a@example.com", Subject: "hi", Body: "one"})
	d.Close()

	assert.Equal(t, 0, len(sender.Sent()))
}

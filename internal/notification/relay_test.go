package notification

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/vinaythakkar13/yatra-backend/internal/registration"
)

type scriptedReader struct {
	msgs      []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type recordingSink struct {
	yatras []uint
}

func (s *recordingSink) Broadcast(_ context.Context, yatraID uint, _ []byte) error {
	s.yatras = append(s.yatras, yatraID)
	return nil
}

func TestRelayForwardsAndCommits(t *testing.T) {
	ev := registration.Event{RegistrationID: 9, YatraID: 3, Action: "REGISTRATION_CREATED", OccurredAt: time.Now()}
	good, err := eventMessage(ev)
	if err != nil {
		t.Fatalf("eventMessage: %v", err)
	}
	good.Offset = 1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &scriptedReader{
		msgs: []kafka.Message{
			good,
			{Offset: 2, Value: []byte("{not json")},
		},
		cancel: cancel,
	}
	sink := &recordingSink{}

	relay(ctx, reader, sink)

	if len(sink.yatras) != 1 || sink.yatras[0] != 3 {
		t.Fatalf("broadcasts = %v, want [3]", sink.yatras)
	}
	if len(reader.committed) != 2 {
		t.Fatalf("committed offsets = %v, want both messages", reader.committed)
	}
}

func TestEventMessageKeyedByRegistration(t *testing.T) {
	ev := registration.Event{RegistrationID: 42, YatraID: 1, Action: "REGISTRATION_APPROVED"}
	msg, err := eventMessage(ev)
	if err != nil {
		t.Fatalf("eventMessage: %v", err)
	}
	if string(msg.Key) != strconv.Itoa(42) {
		t.Errorf("key = %q", msg.Key)
	}
	var decoded registration.Event
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if decoded.Action != ev.Action || decoded.YatraID != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
	if YatraChannel(1) != "registrations:yatra:1" {
		t.Errorf("channel = %s", YatraChannel(1))
	}
}

package patients

import (
	"context"
	"testing"
	"time"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/app/services/shared/events"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type queueSource struct {
	deliveries chan amqp091.Delivery
}

func (q *queueSource) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error) {
	return q.deliveries, nil
}

type signalAcknowledger struct {
	results chan string
}

func (a *signalAcknowledger) Ack(tag uint64, multiple bool) error {
	a.results <- "ack"
	return nil
}

func (a *signalAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.results <- "nack"
	return nil
}

func (a *signalAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestPatientUsecase_PeerEventRefetchesList(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := new(mockRecordClient)
	client.On("GetPatients", mock.Anything).Return(listing[:1], nil).Once()
	client.On("GetPatients", mock.Anything).Return(listing, nil).Once()
	client.On("GetPatientRecord", mock.Anything, mock.Anything).Return(nil, nil)
	client.On("InvalidatePatient", mock.Anything, "2").Return(nil).Once()

	usecase, _ := newTestUsecase(client, &recordingPublisher{})

	source := &queueSource{deliveries: make(chan amqp091.Delivery)}
	consumer := events.NewConsumer(zap.NewNop(), source, "patient-events", "instance-a", usecase)
	stop, err := consumer.Start(ctx)
	require.NoError(t, err)
	defer stop()

	before, err := usecase.ListPatients(ctx, requests.PatientFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, before.Total)

	body, err := json.Marshal(models.PatientEvent{
		Type:      constvars.PatientEventCreated,
		PatientID: "2",
		Origin:    "instance-b",
	})
	require.NoError(t, err)

	ack := &signalAcknowledger{results: make(chan string, 1)}
	source.deliveries <- amqp091.Delivery{Acknowledger: ack, Body: body}

	select {
	case result := <-ack.results:
		require.Equal(t, "ack", result)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the event to be handled")
	}

	after, err := usecase.ListPatients(ctx, requests.PatientFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, after.Total)

	client.AssertNumberOfCalls(t, "GetPatients", 2)
	client.AssertExpectations(t)
}

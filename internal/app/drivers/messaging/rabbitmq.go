package messaging

import (
	"fmt"
	"log"

	"patient-records-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// DeclareFanout opens a channel and makes sure the durable fanout exchange exists.
func DeclareFanout(conn *amqp091.Connection, exchange string) (*amqp091.Channel, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(exchange, amqp091.ExchangeFanout, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}
	return channel, nil
}

// BindInstanceQueue declares a server named exclusive queue bound to exchange,
// so every instance receives every event.
func BindInstanceQueue(channel *amqp091.Channel, exchange string) (string, error) {
	queue, err := channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return "", err
	}

	err = channel.QueueBind(queue.Name, "", exchange, false, nil)
	if err != nil {
		return "", err
	}
	return queue.Name, nil
}

package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"vigil/internal/pipeline"
)

// KafkaExporter streams incident and camera events to a Kafka topic so
// downstream systems (SIEM, analytics) can consume them without polling.
type KafkaExporter struct {
	producer sarama.AsyncProducer
	topic    string

	unsubscribe []func()
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

// KafkaConfig holds the Kafka exporter configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type eventEnvelope struct {
	Type      string    `json:"type"`
	CameraID  string    `json:"camera_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// NewKafkaExporter connects to the brokers and starts the error drain
func NewKafkaExporter(config KafkaConfig) (*KafkaExporter, error) {
	if len(config.Brokers) == 0 || config.Topic == "" {
		return nil, fmt.Errorf("kafka brokers and topic are required")
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Compression = sarama.CompressionSnappy
	saramaCfg.Producer.Flush.Frequency = 500 * time.Millisecond
	saramaCfg.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(config.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	ke := &KafkaExporter{
		producer: producer,
		topic:    config.Topic,
	}

	ke.wg.Add(1)
	go func() {
		defer ke.wg.Done()
		for err := range producer.Errors() {
			log.Printf("[KafkaExporter] Failed to publish event: %v", err)
		}
	}()

	return ke, nil
}

// Start subscribes the exporter to incident and camera lifecycle events
func (ke *KafkaExporter) Start(bus *pipeline.EventBus) {
	kinds := []pipeline.EventKind{
		pipeline.EventNewIncident,
		pipeline.EventIncidentUpdate,
		pipeline.EventCameraStatus,
	}
	for _, kind := range kinds {
		ke.unsubscribe = append(ke.unsubscribe,
			bus.SubscribeKind(kind, pipeline.EventHandlerFunc(ke.export)))
	}
}

func (ke *KafkaExporter) export(evt pipeline.Event) {
	envelope := eventEnvelope{
		Type:      string(evt.Kind()),
		CameraID:  evt.Camera(),
		Timestamp: time.Now().UTC(),
		Payload:   evt,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("[KafkaExporter] Failed to marshal %s event: %v", evt.Kind(), err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: ke.topic,
		Key:   sarama.StringEncoder(evt.Camera()),
		Value: sarama.ByteEncoder(data),
	}

	select {
	case ke.producer.Input() <- msg:
	default:
		log.Printf("[KafkaExporter] Producer input full, dropping %s event", evt.Kind())
	}
}

// Close unsubscribes from the bus and shuts the producer down
func (ke *KafkaExporter) Close() error {
	var err error
	ke.closeOnce.Do(func() {
		for _, unsub := range ke.unsubscribe {
			unsub()
		}
		err = ke.producer.Close()
		ke.wg.Wait()
	})
	return err
}

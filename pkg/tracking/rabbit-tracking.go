package tracking

import (
	"net/http"

	"github.com/matst80/slask-storefront/pkg/messaging"
	"github.com/matst80/slask-storefront/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type RabbitTracking struct {
	country    string
	connection *amqp.Connection
	logger     *zap.Logger
}

func NewRabbitTracking(conn *amqp.Connection, country string, logger *zap.Logger) (*RabbitTracking, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ret := RabbitTracking{
		connection: conn,
		country:    country,
		logger:     logger,
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	if err = messaging.DefineTopic(ch, "global", messaging.TrackingTopic); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) Close() error {
	return nil
}

func (t *RabbitTracking) send(data any) error {
	return messaging.SendChange(t.connection, "global", messaging.TrackingTopic, data)
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Country   string `json:"country,omitempty"`
	Context   string `json:"context,omitempty"`
	Event     uint16 `json:"event"`
}

const (
	sessionEvent uint16 = 0
	browseEvent  uint16 = 1
)

type Session struct {
	*BaseEvent
	UserAgent    string `json:"user_agent,omitempty"`
	Ip           string `json:"ip,omitempty"`
	Language     string `json:"language,omitempty"`
	PragmaHeader string `json:"pragma,omitempty"`
}

func clientIp(r *http.Request) string {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}

func (rt *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	err := rt.send(Session{
		BaseEvent:    &BaseEvent{Event: sessionEvent, SessionId: sessionId, Country: rt.country, Context: "b2c"},
		Language:     r.Header.Get("Accept-Language"),
		UserAgent:    r.UserAgent(),
		Ip:           clientIp(r),
		PragmaHeader: r.Header.Get("Pragma"),
	})
	if err != nil {
		rt.logger.Warn("error sending session event", zap.Error(err))
	}
}

type BrowseEventData struct {
	*BaseEvent
	types.Selection
	Grid            GridInfo `json:"grid"`
	NumberOfResults int      `json:"noi"`
	Referer         string   `json:"referer,omitempty"`
}

func (rt *RabbitTracking) TrackBrowse(sessionId string, sel types.Selection, resultLen int, grid GridInfo, r *http.Request) {
	err := rt.send(&BrowseEventData{
		BaseEvent:       &BaseEvent{Event: browseEvent, SessionId: sessionId, Country: rt.country, Context: "b2c"},
		Selection:       sel,
		Grid:            grid,
		NumberOfResults: resultLen,
		Referer:         r.Header.Get("Referer"),
	})
	if err != nil {
		rt.logger.Warn("error sending browse event", zap.Error(err))
	}
}

package messaging

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-storefront/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ProductHandler receives catalogue changes.
type ProductHandler interface {
	Upsert(products ...types.Product)
	Remove(ids ...types.ProductId)
}

type ProductListener struct {
	Prefix  string
	Handler ProductHandler
	Logger  *zap.Logger
}

func (l *ProductListener) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Listen starts consumers for upserts and deletes on their own channels.
func (l *ProductListener) Listen(conn *amqp.Connection) error {
	upsertCh, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if err = ListenToTopic(upsertCh, l.Prefix, ProductsUpserted, l.logger(), l.HandleUpserted); err != nil {
		upsertCh.Close()
		return fmt.Errorf("listen %s: %w", ProductsUpserted, err)
	}
	deleteCh, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if err = ListenToTopic(deleteCh, l.Prefix, ProductsDeleted, l.logger(), l.HandleDeleted); err != nil {
		deleteCh.Close()
		return fmt.Errorf("listen %s: %w", ProductsDeleted, err)
	}
	l.logger().Info("listening for product changes", zap.String("prefix", l.Prefix))
	return nil
}

func (l *ProductListener) HandleUpserted(d amqp.Delivery) error {
	var products []types.Product
	if err := sonic.Unmarshal(d.Body, &products); err != nil {
		return fmt.Errorf("decode upserts: %w", err)
	}
	l.logger().Debug("got upserts", zap.Int("count", len(products)))
	l.Handler.Upsert(products...)
	return nil
}

func (l *ProductListener) HandleDeleted(d amqp.Delivery) error {
	var ids []types.ProductId
	if err := sonic.Unmarshal(d.Body, &ids); err != nil {
		return fmt.Errorf("decode deletes: %w", err)
	}
	l.logger().Debug("got deletes", zap.Int("count", len(ids)))
	l.Handler.Remove(ids...)
	return nil
}

// ProductPublisher announces catalogue changes to listening storefronts.
type ProductPublisher struct {
	Conn   *amqp.Connection
	Prefix string
}

func NewProductPublisher(conn *amqp.Connection, prefix string) (*ProductPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	for _, topic := range []ChangeTopic{ProductsUpserted, ProductsDeleted} {
		if err := DefineTopic(ch, prefix, topic); err != nil {
			return nil, fmt.Errorf("define %s: %w", topic, err)
		}
	}
	return &ProductPublisher{Conn: conn, Prefix: prefix}, nil
}

func (p *ProductPublisher) SendUpserted(products []types.Product) error {
	return SendChange(p.Conn, p.Prefix, ProductsUpserted, products)
}

func (p *ProductPublisher) SendDeleted(ids []types.ProductId) error {
	return SendChange(p.Conn, p.Prefix, ProductsDeleted, ids)
}

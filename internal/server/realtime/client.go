package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/unipress/pkg/api"
)

type subscription struct {
	table  string
	filter api.Filter
}

// client одно websocket соединение
type client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan api.Frame
	subs     map[string]subscription
	identity Identity
	mu       sync.Mutex
}

// matching топики подписок клиента, которым адресовано изменение
func (c *client) matching(ch change) []string {
	if !ch.visible(c.identity) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var topics []string
	for topic, sub := range c.subs {
		if sub.table == ch.table && ch.matches(sub.filter) {
			topics = append(topics, topic)
		}
	}
	return topics
}

// reply кладет служебный кадр в очередь. Хаб может закрыть очередь
// в любой момент, поэтому проверка идет под его блокировкой.
func (c *client) reply(frame api.Frame) {
	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()

	if _, ok := c.hub.clients[c]; !ok {
		return
	}
	select {
	case c.send <- frame:
	default:
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	settings := c.hub.settings
	c.conn.SetReadLimit(settings.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(settings.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(settings.PongTimeout))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Info("Realtime read failed", "error", err)
			}
			return
		}

		var frame api.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			c.reply(api.Frame{Type: api.FrameError, Message: "malformed frame"})
			continue
		}
		c.handle(frame)
	}
}

func (c *client) handle(frame api.Frame) {
	switch frame.Type {
	case api.FrameSubscribe:
		if frame.Topic == "" {
			c.reply(api.Frame{Type: api.FrameError, Message: "topic is required"})
			return
		}
		if err := authorize(c.identity, frame.Table, frame.Filter); err != nil {
			c.hub.logger.Debug("Subscription rejected", "topic", frame.Topic, "user_id", c.identity.UserID, "error", err)
			c.reply(api.Frame{Type: api.FrameError, Topic: frame.Topic, Message: err.Error()})
			return
		}

		c.mu.Lock()
		_, existed := c.subs[frame.Topic]
		c.subs[frame.Topic] = subscription{table: frame.Table, filter: frame.Filter}
		c.mu.Unlock()

		if !existed {
			c.hub.settings.Observer.Subscribed(frame.Table)
		}
		c.reply(api.Frame{Type: api.FrameSubscribed, Topic: frame.Topic})

	case api.FrameUnsubscribe:
		c.mu.Lock()
		sub, ok := c.subs[frame.Topic]
		delete(c.subs, frame.Topic)
		c.mu.Unlock()

		if ok {
			c.hub.settings.Observer.Unsubscribed(sub.table)
		}

	default:
		c.reply(api.Frame{Type: api.FrameError, Topic: frame.Topic, Message: "unknown frame type " + frame.Type})
	}
}

func (c *client) writePump() {
	settings := c.hub.settings
	ticker := time.NewTicker(settings.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(settings.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(frame); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					c.hub.logger.Debug("Realtime write failed", "error", err)
				}
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(settings.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

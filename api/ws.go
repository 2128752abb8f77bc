package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"fintrack/events"
	"fintrack/logging"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/olahol/melody"
)

const topicsKey = "topics"

// Subscriber 事件源
type Subscriber interface {
	Subscribe() (<-chan events.Event, func())
}

// WSHandler 通过 websocket 推送数据变更，浏览器收到后重新拉取
type WSHandler struct {
	M      *melody.Melody
	source Subscriber
	log    *logging.Logger
}

// NewWSHandler 创建 websocket 处理器
func NewWSHandler(source Subscriber, logger *logging.Logger) *WSHandler {
	if logger == nil {
		logger = logging.FromContext(context.Background())
	}
	logger = logger.WithComponent(logging.ComponentWS)

	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		topics, _ := s.Get(topicsKey)
		logger.Debug("client connected", logging.FieldTopic, topics)
	})
	m.HandleDisconnect(func(s *melody.Session) {
		logger.Debug("client disconnected")
	})
	m.HandleError(func(s *melody.Session, err error) {
		logger.Warn("websocket error", logging.FieldError, err)
	})

	return &WSHandler{M: m, source: source, log: logger}
}

// parseTopics 解析 ?topics=transactions,budgets，为空时订阅全部
func parseTopics(raw string) (map[string]bool, bool) {
	topics := map[string]bool{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if t != events.TopicTransactions && t != events.TopicBudgets {
			return nil, false
		}
		topics[t] = true
	}
	if len(topics) == 0 {
		topics[events.TopicTransactions] = true
		topics[events.TopicBudgets] = true
	}
	return topics, true
}

// HandleWS 升级为 websocket 连接
// @Summary 订阅数据变更
// @Description 建立 websocket 连接，交易或预算变更后推送 {topic, action, id, at}
// @Tags 通知
// @Param topics query string false "订阅主题，逗号分隔：transactions,budgets"
// @Success 101 {object} events.Event "切换协议"
// @Failure 400 {object} MessageResponse "未知主题"
// @Router /api/ws [get]
func (h *WSHandler) HandleWS(c *gin.Context) {
	topics, ok := parseTopics(c.Query("topics"))
	if !ok {
		BadRequest(c, "invalid field topics: expected transactions or budgets")
		return
	}

	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{topicsKey: topics}); err != nil {
		h.log.Warn("failed to upgrade websocket", logging.FieldError, err)
	}
}

// Broadcast 推送给订阅了该主题的连接
func (h *WSHandler) Broadcast(e events.Event) error {
	msg, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		v, exists := s.Get(topicsKey)
		if !exists {
			return false
		}
		topics, _ := v.(map[string]bool)
		return topics[e.Topic]
	})
}

// Run 转发事件直到 ctx 结束或事件源关闭
func (h *WSHandler) Run(ctx context.Context) {
	ch, cancel := h.source.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			if h.M.IsClosed() {
				return
			}
			if err := h.Broadcast(e); err != nil {
				h.log.Log(ctx, slog.LevelWarn, "broadcast failed", logging.FieldTopic, e.Topic, logging.FieldError, err)
			}
		}
	}
}

// Close 关闭所有连接
func (h *WSHandler) Close() error {
	if h.M.IsClosed() {
		return nil
	}
	return h.M.CloseWithMsg(melody.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
}

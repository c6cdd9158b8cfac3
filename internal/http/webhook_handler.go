package httpapi

import (
	"context"
	"errors"
	"net/http"

	"holiday-reportbot/internal/domain"
	"holiday-reportbot/internal/line"
	"holiday-reportbot/internal/report"
	"holiday-reportbot/internal/service"

	"go.uber.org/zap"
)

// EventSource 验签并解析 webhook 请求
type EventSource interface {
	ParseEvents(r *http.Request) ([]domain.MessageEvent, error)
}

// Messenger 消息平台的出站操作
type Messenger interface {
	DisplayName(ctx context.Context, userID string) (string, error)
	ReplyText(ctx context.Context, replyToken, text string) error
}

// EventClaimer 重投去重；Claim 返回 false 表示已处理过
type EventClaimer interface {
	Claim(ctx context.Context, eventID string) (bool, error)
}

// WebhookHandler POST /callback
type WebhookHandler struct {
	Source    EventSource
	Messenger Messenger
	Reports   service.ReportService
	Dedup     EventClaimer // 可选，未启用 Redis 时为 nil
	Logger    *zap.Logger
}

func NewWebhookHandler(source EventSource, messenger Messenger, reports service.ReportService, dedup EventClaimer, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		Source:    source,
		Messenger: messenger,
		Reports:   reports,
		Dedup:     dedup,
		Logger:    logger,
	}
}

// Callback 签名不对回 400，读不出内容回 500，其余一律 200 OK
func (h *WebhookHandler) Callback(w http.ResponseWriter, r *http.Request) {
	events, err := h.Source.ParseEvents(r)
	if err != nil {
		if errors.Is(err, line.ErrInvalidSignature) {
			h.Logger.Warn("Rejected webhook with invalid signature",
				zap.String("request_id", RequestIDFromContext(r.Context())),
			)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.Logger.Error("Failed to parse webhook", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, ev := range events {
		h.handleEvent(r.Context(), ev)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (h *WebhookHandler) handleEvent(ctx context.Context, ev domain.MessageEvent) {
	if !ev.IsText() {
		return
	}

	if h.Dedup != nil && ev.EventID != "" {
		claimed, err := h.Dedup.Claim(ctx, ev.EventID)
		if err != nil {
			// Redis 不可用时照常处理
			h.Logger.Warn("Failed to claim webhook event", zap.String("event_id", ev.EventID), zap.Error(err))
		} else if !claimed {
			h.Logger.Info("Skipping redelivered webhook event",
				zap.String("event_id", ev.EventID),
				zap.Bool("redelivery", ev.Redelivery),
			)
			return
		}
	}

	var reply service.Reply
	if ev.DisplayName == "" && ev.SenderID != "" {
		name, err := h.Messenger.DisplayName(ctx, ev.SenderID)
		if err != nil {
			h.Logger.Error("Failed to get sender profile", zap.String("sender_id", ev.SenderID), zap.Error(err))
			reply = service.Reply{Text: report.ReplyServerError}
		}
		ev.DisplayName = name
	}
	if reply.Empty() {
		reply = h.Reports.HandleMessage(ctx, ev)
	}
	if reply.Empty() {
		return
	}

	if err := h.Messenger.ReplyText(ctx, ev.ReplyToken, reply.Text); err != nil {
		h.Logger.Error("Failed to send reply",
			zap.String("event_id", ev.EventID),
			zap.String("sender_id", ev.SenderID),
			zap.Error(err),
		)
	}
}

package line

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"holiday-reportbot/internal/config"
	"holiday-reportbot/internal/domain"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"
)

// ErrInvalidSignature X-Line-Signature 校验失败
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Client LINE Messaging API 适配层：验签、事件转换、查显示名称、回复
type Client struct {
	bot    *linebot.Client
	logger *zap.Logger
}

func NewClient(cfg config.LineConfig, logger *zap.Logger) (*Client, error) {
	var opts []linebot.ClientOption
	if cfg.EndpointBase != "" {
		opts = append(opts, linebot.WithEndpointBase(cfg.EndpointBase))
	}
	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create line client: %w", err)
	}
	return &Client{bot: bot, logger: logger}, nil
}

// ParseEvents 校验签名并转换成 domain.MessageEvent（不含显示名称）
func (c *Client) ParseEvents(r *http.Request) ([]domain.MessageEvent, error) {
	events, err := c.bot.ParseRequest(r)
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("failed to parse webhook request: %w", err)
	}

	out := make([]domain.MessageEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, toMessageEvent(ev))
	}
	return out, nil
}

// DisplayName 查询发送者的显示名称
func (c *Client) DisplayName(ctx context.Context, userID string) (string, error) {
	profile, err := c.bot.GetProfile(userID).WithContext(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get profile: %w", err)
	}
	return profile.DisplayName, nil
}

// ReplyText 用 reply token 回复一则文字消息
func (c *Client) ReplyText(ctx context.Context, replyToken, text string) error {
	if _, err := c.bot.ReplyMessage(replyToken, linebot.NewTextMessage(text)).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("failed to reply message: %w", err)
	}
	return nil
}

func toMessageEvent(ev *linebot.Event) domain.MessageEvent {
	out := domain.MessageEvent{
		Kind:       domain.MessageEventUnsupported,
		EventID:    ev.WebhookEventID,
		ReplyToken: ev.ReplyToken,
		Redelivery: ev.DeliveryContext.IsRedelivery,
	}
	if ev.Source != nil {
		out.SenderID = ev.Source.UserID
	}
	if ev.Type != linebot.EventTypeMessage {
		return out
	}
	if msg, ok := ev.Message.(*linebot.TextMessage); ok {
		out.Kind = domain.MessageEventText
		out.Text = msg.Text
	}
	return out
}

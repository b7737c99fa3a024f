package notify

import (
	"fmt"

	"tienda/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Notifier шлёт уведомления персоналу. Отправка fire-and-forget:
// ошибки только логируются и никогда не влияют на транзакцию заказа.
type Notifier interface {
	OrderCreated(order *models.OrderWithItems)
	OrderStatusChanged(orderID int, status models.OrderStatus)
	RepairReceived(req *models.RepairRequest)
}

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *logrus.Logger
}

func NewTelegram(token string, chatID int64, log *logrus.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.WithField("bot", bot.Self.UserName).Info("telegram notifier authorized")
	return &Telegram{bot: bot, chatID: chatID, log: log}, nil
}

func (t *Telegram) OrderCreated(order *models.OrderWithItems) {
	text := fmt.Sprintf("Nuevo pedido #%d\nTotal: %.2f\nArtículos: %d",
		order.Order.ID, order.Order.Total, len(order.Items))
	t.send(text)
}

func (t *Telegram) OrderStatusChanged(orderID int, status models.OrderStatus) {
	t.send(fmt.Sprintf("Pedido #%d → %s", orderID, status))
}

func (t *Telegram) RepairReceived(req *models.RepairRequest) {
	text := fmt.Sprintf("Nueva solicitud de reparación #%d\nEquipo: %s\nCódigo: %s",
		req.ID, req.Device, req.TrackingCode)
	t.send(text)
}

func (t *Telegram) send(text string) {
	go func() {
		msg := tgbotapi.NewMessage(t.chatID, text)
		if _, err := t.bot.Send(msg); err != nil {
			t.log.WithError(err).Warn("telegram notification failed")
		}
	}()
}

// Noop используется, когда токен бота не задан.
type Noop struct{}

func (Noop) OrderCreated(*models.OrderWithItems)        {}
func (Noop) OrderStatusChanged(int, models.OrderStatus) {}
func (Noop) RepairReceived(*models.RepairRequest)       {}

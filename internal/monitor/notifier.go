package monitor

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// Min interval between two Telegram messages to the same chat to stay
// clear of the ~30 messages/min API limit.
const telegramSendInterval = 2 * time.Second

// Notifier pushes value-bet alerts to a Telegram chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	mu       sync.Mutex
	lastSend time.Time
}

// NewNotifier creates a notifier, or returns nil when the token is empty
// or the bot cannot authenticate. A nil notifier disables alerts.
func NewNotifier(token string, chatID int64) *Notifier {
	if token == "" || chatID == 0 {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		slog.Error("Telegram bot authentication failed", "error", err)
		return nil
	}

	slog.Info("Telegram notifier ready", "chat_id", chatID)
	return &Notifier{bot: bot, chatID: chatID}
}

// NotifyValueBets sends one message per analysis summarizing its value
// bets. Sends are throttled; a failed send is logged and dropped.
func (n *Notifier) NotifyValueBets(analysis models.MarketAnalysis) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if wait := telegramSendInterval - time.Since(n.lastSend); wait > 0 {
		time.Sleep(wait)
	}

	msg := tgbotapi.NewMessage(n.chatID, formatValueBetMessage(analysis))
	if _, err := n.bot.Send(msg); err != nil {
		slog.Error("Failed to send telegram alert", "match", analysis.MatchID.Name(), "error", err)
		return
	}
	n.lastSend = time.Now()
}

func formatValueBetMessage(analysis models.MarketAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Value bet: %s\n", analysis.MatchID.Name())
	fmt.Fprintf(&b, "%s, kickoff %s\n\n", analysis.MatchID.Competition, analysis.MatchID.Kickoff.Format("02.01 15:04"))

	for _, bet := range analysis.ValueBets {
		fmt.Fprintf(&b, "%s @ %.2f (%s), fair prob %s\n",
			outcomeLabel(bet.Outcome), bet.Price, bet.Bookmaker, bet.FormattedProbability())
	}

	if analysis.MarketMargin != nil {
		fmt.Fprintf(&b, "\nMarket margin: %.2f%%", *analysis.MarketMargin)
	}

	return b.String()
}

func outcomeLabel(outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeHome:
		return "Home win"
	case models.OutcomeDraw:
		return "Draw"
	case models.OutcomeAway:
		return "Away win"
	case models.OutcomeOver25:
		return "Over 2.5"
	case models.OutcomeUnder25:
		return "Under 2.5"
	default:
		return string(outcome)
	}
}

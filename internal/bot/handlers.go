package bot

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"blackjack/internal/config"
	"blackjack/internal/game"
	"blackjack/internal/stats"
	"blackjack/internal/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler struct {
	bot      *tgbotapi.BotAPI
	cfg      *config.Config
	tallies  stats.Repository
	render   view.Renderer
	sessions *sessionManager
}

func NewHandler(bot *tgbotapi.BotAPI, cfg *config.Config, tallies stats.Repository, render view.Renderer) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		tallies:  tallies,
		render:   render,
		sessions: newSessionManager(),
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	h.bot.Request(tgbotapi.NewCallback(id, text))
}

func playerKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// ============== COMMANDS ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		h.send(msg.Chat.ID, "Use /play to start a round.")
		return
	}

	switch msg.Command() {
	case "start":
		h.HandleStart(msg.Chat.ID)
	case "play":
		h.startRound(msg.Chat.ID)
	case "stats":
		h.HandleStats(msg.Chat.ID)
	case "top":
		h.HandleTop(msg.Chat.ID)
	default:
		h.HandleHelp(msg.Chat.ID)
	}
}

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play — play a round\n"+
			"/stats — session stats\n"+
			"/top — top players\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Goal: beat the dealer without going over 21\n\n"+
			"📊 Card values:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — draw a card\n"+
			"• Stand — stop drawing\n\n"+
			"🃏 The dealer draws to 17 and stands.")
}

func (h *Handler) HandleStats(chatID int64) {
	tally, err := h.tallies.Summary(playerKey(chatID))
	if err != nil {
		h.send(chatID, "❌ Something went wrong, try again later.")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"📊 Session stats:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Ties: %d",
		tally.Rounds, tally.Wins, tally.WinRate(), tally.Losses, tally.Ties))
}

func (h *Handler) HandleTop(chatID int64) {
	top, err := h.tallies.TopByWins(10)
	if err != nil {
		h.send(chatID, "❌ Something went wrong, try again later.")
		return
	}

	if len(top) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, t := range top {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %s | %d wins in %d rounds (%.0f%%)\n",
			medal, t.Player, t.Wins, t.Rounds, t.WinRate()))
	}

	h.send(chatID, sb.String())
}

// ============== ROUND LIFECYCLE ==============

// startRound launches one engine round in its own goroutine. The
// round blocks inside session.NextDecision until a button callback
// supplies hit or stand.
func (h *Handler) startRound(chatID int64) {
	sess, ok := h.sessions.Start(chatID)
	if !ok {
		h.send(chatID, "⏳ Finish the current round first.")
		return
	}

	go func() {
		defer h.sessions.Delete(chatID)

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		outcome := game.NewRound(rng, sess, &roundObserver{h: h, chatID: chatID}).Play()

		if err := h.tallies.Record(playerKey(chatID), outcome); err != nil {
			log.Printf("Failed to record outcome: %v", err)
		}
	}()
}

func (h *Handler) HandleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	switch query.Data {
	case CallbackHit, CallbackStand:
		sess := h.sessions.Get(chatID)
		if sess == nil {
			h.answerCallback(query.ID, "No round in progress")
			return
		}
		if !sess.offer(game.Decision(query.Data)) {
			h.answerCallback(query.ID, "Hold on...")
			return
		}
		h.answerCallback(query.ID, "")
	case CallbackPlayAgain:
		h.answerCallback(query.ID, "")
		h.startRound(chatID)
	case CallbackStats:
		h.answerCallback(query.ID, "")
		h.HandleStats(chatID)
	default:
		h.answerCallback(query.ID, "Unknown action")
	}
}

// ============== PRESENTATION SINK ==============

// roundObserver relays engine notifications to one chat.
type roundObserver struct {
	h      *Handler
	chatID int64
}

func (o *roundObserver) HandsDealt(player, dealer *game.Hand) {
	// hole card stays hidden until resolution
	o.h.send(o.chatID, fmt.Sprintf("🃏 Dealer shows: %s, ?", o.h.render.Card(dealer.Cards[0])))
}

func (o *roundObserver) PlayerTurn(player *game.Hand) {
	text := fmt.Sprintf("🎴 Your hand: %s (%d)", view.Hand(o.h.render, player), player.Score())
	o.h.sendWithKeyboard(o.chatID, text, GameKeyboard())
}

func (o *roundObserver) InvalidDecision(input game.Decision) {
	o.h.send(o.chatID, "❌ Use the Hit and Stand buttons.")
}

func (o *roundObserver) DealerDrew(dealer *game.Hand) {
	o.h.send(o.chatID, fmt.Sprintf("🃏 Dealer hits: %s (%d)",
		view.Hand(o.h.render, dealer), dealer.Score()))
}

func (o *roundObserver) Resolved(outcome game.Outcome, player, dealer *game.Hand) {
	var verdict string
	switch outcome {
	case game.OutcomePlayerBust:
		verdict = "💥 Bust! Dealer wins."
	case game.OutcomeDealerBust:
		verdict = "💥 Dealer busts! You win!"
	case game.OutcomePlayerWin:
		verdict = "🎉 You win!"
		if game.IsNatural(player.Cards) {
			verdict = "🎰 Blackjack! You win!"
		}
	case game.OutcomeDealerWin:
		verdict = "😔 Dealer wins."
	default:
		verdict = "🤝 Push."
	}

	text := fmt.Sprintf("🎴 You: %s (%d)\n🃏 Dealer: %s (%d)\n\n%s",
		view.Hand(o.h.render, player), player.Score(),
		view.Hand(o.h.render, dealer), dealer.Score(),
		verdict)

	o.h.sendWithKeyboard(o.chatID, text, EndGameKeyboard())
}

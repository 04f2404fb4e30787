package notifierimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-extractor/internal/notifier"
	"github.com/orgball2608/insta-extractor/pkg/config"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Config *config.Config
	Logger logger.Logger
}

type Noop struct{}

func (Noop) SendMessageToUser(message string) {}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// New builds the Telegram notifier, or a no-op when no token is configured
// or the bot cannot be reached.
func New(opts Opts) notifier.Client {
	log := opts.Logger.WithComponent("Notifier")

	if opts.Config.Telegram.Token == "" || opts.Config.Telegram.User == 0 {
		return Noop{}
	}

	bot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Warn("Failed to initialize Telegram bot, notifications disabled", "error", err)
		return Noop{}
	}

	return &TelegramImpl{
		TgBot:  bot,
		Config: opts.Config,
		Logger: log,
	}
}

var _ notifier.Client = (*TelegramImpl)(nil)
var _ notifier.Client = Noop{}

// SendMessageToUser sends a text message to the configured user.
func (tg *TelegramImpl) SendMessageToUser(message string) {
	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, message)
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
		return
	}

	tg.Logger.Info("Message sent to user",
		"userID", tg.Config.Telegram.User)
}

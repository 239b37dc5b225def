package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"insert-inspector/internal/container"
	"insert-inspector/internal/infrastructure/frames"
	"insert-inspector/internal/logging"
)

const (
	msgStart = `👋 Привет! Я бот контроля радиуса скругления режущих пластин.

📸 Отправьте кадр пластины со стенда, и я измерю радиус дуги.

📋 Команды:
/check — начать проверку пластины
/stats — счётчики за смену
/history — последние проверки
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте кадр пластины (фото или файлом без сжатия)
2️⃣ Бот найдёт опорные кромки и дугу
3️⃣ Вы получите вердикт: ГОДНА / БРАК / НЕ ОПРЕДЕЛЕНО и график профиля

💡 Рекомендации:
• Кадр должен быть с рабочей камеры стенда, без масштабирования
• Файлом без сжатия результат точнее

📋 Команды:
/check — начать проверку
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте кадр пластины для проверки."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте кадр пластины для проверки."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю кадр..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте отправить кадр ещё раз."
	msgNoHistory       = "🗂 История проверок пуста."

	historyLimit = 5
)

// Bot представляет Telegram-бота
type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
	log *logging.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container, log *logging.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized", "account", api.Self.UserName)

	return &Bot{
		api: api,
		app: app,
		log: log,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка фото и файлов-изображений
	if fileID, ok := imageFileID(msg); ok {
		b.handleFrame(ctx, msg, fileID)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// imageFileID возвращает файл кадра: фото максимального размера или
// документ с изображением
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}
	return "", false
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	operators := b.app.OperatorService
	userID, chatID := msg.From.ID, msg.Chat.ID

	var err error
	switch msg.Command() {
	case "start":
		_, err = operators.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "check":
		_, err = operators.BeginCheck(ctx, userID, chatID)
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "cancel":
		_, err = operators.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgCancelled)

	case "stats":
		op, getErr := operators.Get(ctx, userID, chatID)
		if getErr != nil {
			err = getErr
			break
		}
		b.sendMessage(chatID, FormatOperatorStats(op))

	case "history":
		results, histErr := b.app.InspectionService.History(ctx, historyLimit)
		if histErr != nil {
			err = histErr
			break
		}
		b.sendMessage(chatID, FormatHistory(results))

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}

	if err != nil {
		b.log.Error("command failed", "command", msg.Command(), "user", userID, "error", err)
	}
}

// handleFrame скачивает кадр, запускает инспекцию и отправляет результат
func (b *Bot) handleFrame(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	operators := b.app.OperatorService
	userID, chatID := msg.From.ID, msg.Chat.ID

	// Устанавливаем состояние "обработка"
	if _, err := operators.StartProcessing(ctx, userID, chatID); err != nil {
		b.log.Error("failed to update operator", "user", userID, "error", err)
	}
	b.sendMessage(chatID, msgProcessing)

	fail := func(stage string, err error) {
		b.log.Error("frame processing failed", "stage", stage, "user", userID, "error", err)
		b.sendMessage(chatID, msgProcessingError)
		if _, err := operators.BeginCheck(ctx, userID, chatID); err != nil {
			b.log.Error("failed to update operator", "user", userID, "error", err)
		}
	}

	data, err := b.downloadFile(fileID)
	if err != nil {
		fail("download", err)
		return
	}
	frame, err := frames.DecodeGray(data)
	if err != nil {
		fail("decode", err)
		return
	}

	out, err := b.app.InspectionService.Run(ctx, frame)
	if err != nil {
		fail("inspect", err)
		return
	}

	if _, err := operators.Record(ctx, userID, chatID, out.Result); err != nil {
		b.log.Error("failed to record result", "user", userID, "error", err)
	}

	text := FormatResult(out.Result, out.Score)
	if len(out.Profile) == 0 {
		b.sendMessage(chatID, text)
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "profile.png", Bytes: out.Profile})
	photo.Caption = text
	if _, err := b.api.Send(photo); err != nil {
		b.log.Error("failed to send profile", "error", err)
		b.sendMessage(chatID, text)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("failed to send message", "chat", chatID, "error", err)
	}
}

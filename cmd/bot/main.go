// Telegram front end for the problem-scan flow: a student sends a photo of a
// workbook page, the bot replies with the extracted problems.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"academy-ai/internal/config"
	"academy-ai/internal/ocr"
	"academy-ai/internal/ocr/anthropic"
	"academy-ai/internal/ocr/gemini"
	"academy-ai/internal/ocr/openai"
	"academy-ai/internal/ocr/vision"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func main() {
	token := mustEnv("TELEGRAM_BOT_TOKEN")
	cfg := config.Load()

	engines := ocr.NewEngines(
		openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel),
		gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		vision.New(cfg.VisionAPIKey),
	)
	client := ocr.New(engines)

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false
	log.Printf("bot authorized as @%s", bot.Self.UserName)

	runPolling(context.Background(), bot, func(upd tgbotapi.Update) {
		handleUpdate(bot, client, upd)
	})
}

func handleUpdate(bot *tgbotapi.BotAPI, client *ocr.Client, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			reply(bot, msg.Chat.ID, "문제 페이지 사진을 보내주세요. 인식된 문제를 목록으로 보여드립니다.")
		case "providers":
			avail := client.AvailableProviders()
			if len(avail) == 0 {
				reply(bot, msg.Chat.ID, "설정된 공급자가 없습니다 (mock 모드).")
			} else {
				parts := make([]string, len(avail))
				for i, p := range avail {
					parts[i] = string(p)
				}
				reply(bot, msg.Chat.ID, "사용 가능: "+strings.Join(parts, ", "))
			}
		}
		return
	}

	if len(msg.Photo) == 0 {
		return
	}

	// largest photo size is last
	fileID := msg.Photo[len(msg.Photo)-1].FileID
	img, err := downloadPhoto(bot, fileID)
	if err != nil {
		log.Printf("photo download: %v", err)
		reply(bot, msg.Chat.ID, "사진을 내려받지 못했습니다. 다시 보내주세요.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	// telegram photos are always jpeg
	res, err := client.ExtractText(ctx, img, "image/jpeg", "", "")
	if err != nil {
		log.Printf("extract: %v", err)
		reply(bot, msg.Chat.ID, "인식에 실패했습니다: "+err.Error())
		return
	}
	reply(bot, msg.Chat.ID, formatResult(res))
}

func downloadPhoto(bot *tgbotapi.BotAPI, fileID string) ([]byte, error) {
	url, err := bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 20<<20))
}

func formatResult(res ocr.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "인식 결과 (%s, 신뢰도 %.0f%%)\n\n", res.Provider, res.Confidence*100)
	for _, p := range res.Problems {
		fmt.Fprintf(&sb, "%s. [%s] %s\n", p.Number, typeLabel(p.Type), p.Content)
		for i, c := range p.Choices {
			fmt.Fprintf(&sb, "   %d) %s\n", i+1, c)
		}
	}
	return strings.TrimSpace(sb.String())
}

func typeLabel(t ocr.ProblemType) string {
	switch t {
	case ocr.TypeMultipleChoice:
		return "객관식"
	case ocr.TypeEssay:
		return "서술형"
	default:
		return "단답형"
	}
}

func reply(bot *tgbotapi.BotAPI, chatID int64, text string) {
	if _, err := bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send: %v", err)
	}
}

// ---------------- Polling loop -----------------

var reRetryAfter = regexp.MustCompile(`(?i)retry after\s+(\d+)`)

func retryDelayFromError(err error) time.Duration {
	if err == nil {
		return 0
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "too many requests") { // HTTP 429 from Telegram
		if m := reRetryAfter.FindStringSubmatch(s); len(m) == 2 {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				return time.Duration(n) * time.Second
			}
		}
		return 3 * time.Second
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return 2 * time.Second
	}
	return 1 * time.Second
}

func runPolling(ctx context.Context, bot *tgbotapi.BotAPI, handle func(tgbotapi.Update)) {
	offset := 0
	baseDelay := 1 * time.Second
	maxDelay := 15 * time.Second

	for {
		select {
		case <-ctx.Done():
			log.Printf("polling: context cancelled")
			return
		default:
		}

		u := tgbotapi.NewUpdate(offset)
		u.Timeout = 30 // long polling timeout (sec)

		updates, err := bot.GetUpdates(u)
		if err != nil {
			d := retryDelayFromError(err)
			if d < baseDelay {
				d = baseDelay
			}
			if d > maxDelay {
				d = maxDelay
			}
			log.Printf("polling error: %v; retry in %v", err, d)
			time.Sleep(d)
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			handle(upd)
		}

		if len(updates) == 0 {
			time.Sleep(200 * time.Millisecond)
		}
	}
}

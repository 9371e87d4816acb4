package main

import (
	"context"
	"fmt"

	// Embed tzdata so Europe/Vienna resolves inside minimal containers.
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/application/service/cache"
	chatservice "github.com/maximilianstepf/Tim-Chatbot-Backend/internal/application/service/chat"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/application/service/fetch"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/application/service/syllabus"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/config"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/handler"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/logger"
	chatmodel "github.com/maximilianstepf/Tim-Chatbot-Backend/internal/models/chat"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/router"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logger.Info(ctx, "no .env file loaded, using process environment")
	}

	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	if cfg.ModelProvider != config.ProviderOpenAI {
		logger.Warnf(ctx, "unsupported model provider %q configured, chat requests will fail", cfg.ModelProvider)
	}
	if cfg.SyllabiIndexURL == "" {
		logger.Warnf(ctx, "SYLLABI_INDEX_URL not set, answering without syllabus context")
	}

	documentCache := cache.NewService()
	fetcher := fetch.NewHTTPFetcher(nil)
	syllabusService := syllabus.NewService(documentCache, fetcher, cfg.SyllabiIndexURL, cfg.CacheTTL)

	model := chatmodel.New(cfg)
	assembler := chatservice.NewContextAssembler(nil)
	chatService := chatservice.NewService(syllabusService, model, assembler)

	r := router.New(cfg,
		handler.NewChatHandler(chatService),
		handler.NewDebugHandler(syllabusService, nil),
	)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info(ctx, "listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Errorf(ctx, "server stopped: %v", err)
	}
}

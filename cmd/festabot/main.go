package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"festabot/internal/assistant"
	"festabot/internal/config"
	"festabot/internal/corpus"
	"festabot/internal/domain"
	"festabot/internal/embedding/openai"
	"festabot/internal/embedding/wordhash"
	"festabot/internal/event"
	"festabot/internal/intent"
	"festabot/internal/memory"
	"festabot/internal/retrieval"
	"festabot/internal/rules"
	"festabot/internal/tui"
	memstore "festabot/internal/vectorstore/memory"
	"festabot/internal/vectorstore/qdrant"
)

const bannerBody = "Sou o assistente da festa de passagem de ano 🎉 Pergunta-me o que quiseres: horário, morada, wi-fi, dress code..."

func main() {
	_ = godotenv.Load()

	var cfgPath, user string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.StringVar(&user, "user", "", "Display name for this session")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if user == "" {
		user = os.Getenv("FESTABOT_USER")
	}

	emb := buildEmbedder(cfg)
	store := buildStore(cfg)
	sessions := buildSessions(cfg)

	info := event.Load(cfg.EventPath)

	gen := corpus.NewGenerator(corpus.Config{
		MinEntries:         cfg.Corpus.MinEntries,
		MaxEntries:         cfg.Corpus.MaxEntries,
		AnswersPerQuestion: cfg.Corpus.AnswersPerQuestion,
		SynonymProb:        cfg.Corpus.SynonymProb,
	}, corpus.SeedSets(), corpus.SlotVocabularies(), rand.New(rand.NewSource(cfg.Corpus.Seed)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	feeder := corpus.NewFeeder(store, emb)
	if err := feeder.Bootstrap(ctx, cfg.Corpus.MinPoints, gen); err != nil {
		log.Fatalf("corpus bootstrap failed: %v", err)
	}
	cancel()

	engine := retrieval.NewEngine(store, emb, retrieval.Config{
		Threshold:        cfg.Retrieval.Threshold,
		ContextThreshold: cfg.Retrieval.ContextThreshold,
		Fanout:           cfg.Retrieval.Fanout,
	})
	classifier := intent.NewClassifier(store, emb, intent.Config{
		Floor:  cfg.Intent.Floor,
		Fanout: cfg.Intent.Fanout,
	})

	bot := assistant.New(engine, classifier, store, emb, rules.DefaultTable(info), sessions,
		rand.New(rand.NewSource(time.Now().UnixNano())), assistant.Config{})

	banner := assistant.Salutation(time.Now()) + "! " + bannerBody
	m := tui.New(bot, uuid.NewString(), user, banner)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func buildEmbedder(cfg *config.AppConfig) domain.Embedder {
	switch cfg.Embedder.Type {
	case "wordhash", "":
		return wordhash.NewEmbedder(cfg.Embedder.Dimension)
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			log.Fatalf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Dimension: cfg.Embedder.Dimension,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		return client
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
		return nil
	}
}

func buildStore(cfg *config.AppConfig) domain.VectorStore {
	switch cfg.VectorStore.Type {
	case "memory", "":
		return memstore.NewStore()
	case "qdrant":
		if cfg.VectorStore.Qdrant == nil {
			log.Fatalf("qdrant config missing")
		}
		return qdrant.NewStore(qdrant.Config{
			URL:        cfg.VectorStore.Qdrant.URL,
			APIKey:     cfg.VectorStore.Qdrant.APIKey,
			Collection: cfg.VectorStore.Qdrant.Collection,
			Timeout:    time.Duration(cfg.VectorStore.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		log.Fatalf("unknown vector store: %s", cfg.VectorStore.Type)
		return nil
	}
}

func buildSessions(cfg *config.AppConfig) memory.Store {
	switch cfg.Memory.Store {
	case "memory", "":
		return memory.NewInProcessStore(cfg.Memory.Window)
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s, err := memory.NewRedisStore(ctx, cfg.Memory.Redis.URL, cfg.Memory.Window,
			time.Duration(cfg.Memory.Redis.TTLSecs)*time.Second)
		if err != nil {
			log.Fatalf("redis session store init failed: %v", err)
		}
		return s
	default:
		log.Fatalf("unknown session store: %s", cfg.Memory.Store)
		return nil
	}
}

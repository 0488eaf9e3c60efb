// Command feeder generates the question/answer corpus offline and loads
// it into the vector store. It also offers an inspect mode that reports
// the collection size and prints a sample, useful after a rebuild.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"festabot/internal/config"
	"festabot/internal/corpus"
	"festabot/internal/domain"
	"festabot/internal/embedding/openai"
	"festabot/internal/embedding/wordhash"
	memstore "festabot/internal/vectorstore/memory"
	"festabot/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, mode, topic string
	var seed int64
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.StringVar(&mode, "mode", "rebuild", "rebuild | upload | inspect")
	flag.StringVar(&topic, "topic", "", "Topic filter for inspect mode")
	flag.Int64Var(&seed, "seed", 0, "Override the generator seed")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if seed != 0 {
		cfg.Corpus.Seed = seed
	}

	emb := buildEmbedder(cfg)
	store := buildStore(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	switch mode {
	case "rebuild", "upload":
		gen := corpus.NewGenerator(corpus.Config{
			MinEntries:         cfg.Corpus.MinEntries,
			MaxEntries:         cfg.Corpus.MaxEntries,
			AnswersPerQuestion: cfg.Corpus.AnswersPerQuestion,
			SynonymProb:        cfg.Corpus.SynonymProb,
		}, corpus.SeedSets(), corpus.SlotVocabularies(), rand.New(rand.NewSource(cfg.Corpus.Seed)))
		pairs := gen.Generate()
		log.WithField("pairs", len(pairs)).Info("corpus generated")

		feeder := corpus.NewFeeder(store, emb)
		if mode == "rebuild" {
			err = feeder.Rebuild(ctx, pairs)
		} else {
			err = feeder.Upload(ctx, pairs)
		}
		if err != nil {
			log.Fatalf("feed failed: %v", err)
		}
		log.Info("corpus loaded")
	case "inspect":
		inspect(ctx, store, topic)
	default:
		log.Fatalf("unknown mode: %s", mode)
	}
}

func inspect(ctx context.Context, store domain.VectorStore, topic string) {
	dim, count, err := store.Info(ctx)
	if err != nil {
		log.Fatalf("collection info failed: %v", err)
	}
	fmt.Printf("collection: %d points, dimension %d\n", count, dim)

	var filter *domain.Filter
	if topic != "" {
		filter = domain.TopicFilter(topic)
	}
	entries, err := store.Scroll(ctx, filter, 10)
	if err != nil {
		log.Fatalf("scroll failed: %v", err)
	}
	for i, e := range entries {
		fmt.Printf("%2d. [%s] Q: %s\n    A: %s\n", i+1, e.Topic, e.Question, e.Answer)
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

package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"festabot/internal/domain"
)

// Store is a minimal REST client to Qdrant for a single collection.
// It assumes cosine distance.
type Store struct {
	url        string
	apiKey     string
	collection string
	client     *http.Client
}

type Config struct {
	URL        string
	APIKey     string
	Collection string
	Timeout    time.Duration
}

func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Store{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *Store) CreateCollection(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	// Qdrant returns 200 OK if the collection already exists with the same schema.
	return s.do(ctx, http.MethodPut, s.collectionURL(""), body, nil)
}

func (s *Store) DeleteCollection(ctx context.Context) error {
	err := s.do(ctx, http.MethodDelete, s.collectionURL(""), nil, nil)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Store) Info(ctx context.Context) (int, int, error) {
	var resp struct {
		Result struct {
			PointsCount int `json:"points_count"`
			Config      struct {
				Params struct {
					Vectors struct {
						Size int `json:"size"`
					} `json:"vectors"`
				} `json:"params"`
			} `json:"config"`
		} `json:"result"`
	}
	if err := s.do(ctx, http.MethodGet, s.collectionURL(""), nil, &resp); err != nil {
		return 0, 0, err
	}
	return resp.Result.Config.Params.Vectors.Size, resp.Result.PointsCount, nil
}

func (s *Store) Upsert(ctx context.Context, points []domain.Point) error {
	if len(points) == 0 {
		return nil
	}
	list := make([]map[string]any, 0, len(points))
	for _, p := range points {
		list = append(list, map[string]any{
			"id":      p.ID,
			"vector":  p.Vector,
			"payload": encodePayload(p.Entry),
		})
	}
	body := map[string]any{"points": list}
	return s.do(ctx, http.MethodPut, s.collectionURL("/points?wait=true"), body, nil)
}

func (s *Store) Search(ctx context.Context, vector []float64, k int, filter *domain.Filter) ([]domain.Hit, error) {
	if k <= 0 {
		k = 5
	}
	req := map[string]any{
		"vector":       vector,
		"limit":        k,
		"with_payload": true,
	}
	if f := encodeFilter(filter); f != nil {
		req["filter"] = f
	}
	var resp struct {
		Result []struct {
			ID      any            `json:"id"`
			Score   float64        `json:"score"`
			Payload map[string]any `json:"payload"`
		} `json:"result"`
	}
	if err := s.do(ctx, http.MethodPost, s.collectionURL("/points/search"), req, &resp); err != nil {
		return nil, err
	}
	hits := make([]domain.Hit, 0, len(resp.Result))
	for _, r := range resp.Result {
		hits = append(hits, domain.Hit{Entry: decodePayload(r.ID, r.Payload), Score: r.Score})
	}
	return hits, nil
}

func (s *Store) Scroll(ctx context.Context, filter *domain.Filter, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 100
	}
	req := map[string]any{
		"limit":        limit,
		"with_payload": true,
	}
	if f := encodeFilter(filter); f != nil {
		req["filter"] = f
	}
	var resp struct {
		Result struct {
			Points []struct {
				ID      any            `json:"id"`
				Payload map[string]any `json:"payload"`
			} `json:"points"`
		} `json:"result"`
	}
	if err := s.do(ctx, http.MethodPost, s.collectionURL("/points/scroll"), req, &resp); err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(resp.Result.Points))
	for _, p := range resp.Result.Points {
		entries = append(entries, decodePayload(p.ID, p.Payload))
	}
	return entries, nil
}

func (s *Store) collectionURL(suffix string) string {
	return fmt.Sprintf("%s/collections/%s%s", s.url, s.collection, suffix)
}

func encodeFilter(filter *domain.Filter) map[string]any {
	if filter == nil {
		return nil
	}
	return map[string]any{
		"must": []map[string]any{
			{"key": filter.Field, "match": map[string]any{"value": filter.Value}},
		},
	}
}

func encodePayload(e domain.Entry) map[string]any {
	payload := map[string]any{
		"question": e.Question,
		"answer":   e.Answer,
		"topic":    e.Topic,
	}
	if e.User != "" {
		payload["user"] = e.User
	}
	if !e.Timestamp.IsZero() {
		payload["timestamp"] = e.Timestamp.Unix()
	}
	return payload
}

func decodePayload(id any, payload map[string]any) domain.Entry {
	e := domain.Entry{ID: fmt.Sprint(id)}
	if v, ok := payload["question"].(string); ok {
		e.Question = v
	}
	if v, ok := payload["answer"].(string); ok {
		e.Answer = v
	}
	if v, ok := payload["topic"].(string); ok {
		e.Topic = v
	}
	if v, ok := payload["user"].(string); ok {
		e.User = v
	}
	if v, ok := payload["timestamp"].(float64); ok {
		e.Timestamp = time.Unix(int64(v), 0)
	}
	return e
}

func (s *Store) do(ctx context.Context, method, url string, body, out any) error {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("qdrant %s %s: %w", method, url, domain.ErrNotFound)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant %s %s failed: %s", method, url, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

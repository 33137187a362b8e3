package zendesk

import (
	"AssistHub/entity"
	"AssistHub/internal/config"
	"AssistHub/internal/lib/sl"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const searchPath = "/api/v2/help_center/articles/search.json"

var ErrConnection = errors.New("api request failed")

var tagPattern = regexp.MustCompile(`<.*?>`)

// Service searches articles of one Zendesk help center.
type Service struct {
	client *resty.Client
	log    *slog.Logger
}

// NewService returns nil when no company is configured.
func NewService(conf *config.Config, logger *slog.Logger) *Service {
	if conf.Zendesk.Company == "" && conf.Zendesk.BaseURL == "" {
		return nil
	}
	baseURL := conf.Zendesk.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.zendesk.com", conf.Zendesk.Company)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(conf.Zendesk.Username, conf.Zendesk.Password).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &Service{
		client: client,
		log:    logger.With(sl.Module("zendesk"), slog.String("url", baseURL)),
	}
}

func (s *Service) search(ctx context.Context, query string) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrConnection, resp.StatusCode())
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json response", ErrConnection)
	}
	return body, nil
}

// SearchZendesk returns the bodies of matching articles, without html tags,
// as a JSON array of strings.
func (s *Service) SearchZendesk(ctx context.Context, query string) (string, error) {
	body, err := s.search(ctx, query)
	if err != nil {
		return "", err
	}

	results := gjson.GetBytes(body, "results.#.body").Array()
	articles := make([]string, 0, len(results))
	for _, result := range results {
		articles = append(articles, StripTags(result.String()))
	}

	data, err := json.Marshal(articles)
	if err != nil {
		return "", fmt.Errorf("marshal articles: %w", err)
	}

	s.log.With(
		slog.String("query", query),
		slog.Int("found", len(articles)),
	).Debug("search zendesk")

	return string(data), nil
}

// Search returns matching articles with their metadata.
func (s *Service) Search(ctx context.Context, query string) ([]entity.Article, error) {
	body, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	articles := make([]entity.Article, 0)
	gjson.GetBytes(body, "results").ForEach(func(_, value gjson.Result) bool {
		articles = append(articles, entity.Article{
			ID:      value.Get("id").Int(),
			Title:   value.Get("title").String(),
			HTMLURL: value.Get("html_url").String(),
			Body:    StripTags(value.Get("body").String()),
		})
		return true
	})

	s.log.With(
		slog.String("query", query),
		slog.Int("found", len(articles)),
	).Debug("search articles")

	return articles, nil
}

func StripTags(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}

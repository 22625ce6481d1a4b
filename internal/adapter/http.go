package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/utils"
)

type httpTextGenerator struct {
	client   *utils.HTTPClient
	endpoint string

	logger *logger.Logger
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
	Options    generateOptions    `json:"options"`
}

type generateParameters struct {
	MaxLength      int     `json:"max_length"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

// NewHTTPTextGenerator constructs an HTTP implementation of [TextGenerator]
// posting prompts to cfg.Endpoint. The client makes exactly one attempt per
// prompt and gives up after cfg.Timeout. When cfg.APIToken is set it is
// sent as a bearer token.
//
// Returns ErrGeneratorNotConfigured if the endpoint is empty and
// ErrInvalidEndpoint if it cannot be parsed as an absolute URL.
func NewHTTPTextGenerator(cfg config.Chatbot, logger *logger.Logger) (TextGenerator, error) {
	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(cfg.Timeout)
	if cfg.APIToken != "" {
		client.SetAuthToken(cfg.APIToken)
	}

	return &httpTextGenerator{client: client, endpoint: endpoint, logger: logger}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrGeneratorNotConfigured
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidEndpoint)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Generate implements [TextGenerator]. It POSTs the prompt in the inference
// API format and returns the first generated text. The backend answers
// either with a list of generations or with a single object.
func (g *httpTextGenerator) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(generateRequest{
			Inputs: prompt,
			Parameters: generateParameters{
				MaxLength:      params.MaxLength,
				Temperature:    params.Temperature,
				TopP:           params.TopP,
				DoSample:       params.DoSample,
				ReturnFullText: true,
			},
			Options: generateOptions{WaitForModel: false, UseCache: false},
		}).
		Post(g.endpoint)
	if err != nil {
		log.Err(err).Str("func", "*httpTextGenerator.Generate").Msg("generate request failed")
		return "", fmt.Errorf("%w: %w", ErrGeneratorUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "*httpTextGenerator.Generate").
			Int("status", resp.StatusCode()).
			Msg("text generator returned an error status")
		return "", err
	}

	text, err := decodeGeneratedText(resp.Body())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}

func decodeGeneratedText(body []byte) (string, error) {
	var list []generatedText
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", ErrEmptyCompletion
		}
		return list[0].GeneratedText, nil
	}

	var single generatedText
	if err := json.Unmarshal(body, &single); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return single.GeneratedText, nil
}

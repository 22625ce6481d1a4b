package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-wellness/internal/adapter"
	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/metrics"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/validators"
	"github.com/MKhiriev/go-wellness/models"
)

// DefaultContextLimit is the number of context entries returned when the
// caller does not ask for a specific number.
const DefaultContextLimit = 10

// Sampling settings of the generative backend.
const (
	generationTemperature = 0.7
	generationTopP        = 0.9
)

type chatService struct {
	// generator is nil when no backend is configured; every reply is then
	// scripted.
	generator     adapter.TextGenerator
	conversations store.ConversationStore
	checkIns      store.CheckInRepository
	validator     validators.Validator

	maxLength  int
	maxContext int

	metrics *metrics.Metrics
	now     func() time.Time

	logger *logger.Logger
}

// NewChatService constructs a ChatService. generator may be nil.
func NewChatService(
	generator adapter.TextGenerator,
	conversations store.ConversationStore,
	checkIns store.CheckInRepository,
	cfg *config.StructuredConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) ChatService {
	return &chatService{
		generator:     generator,
		conversations: conversations,
		checkIns:      checkIns,
		validator:     validators.NewWellnessValidator(),
		maxLength:     cfg.Chatbot.MaxLength,
		maxContext:    cfg.Chat.MaxMessagesPerUser,
		metrics:       m,
		now:           time.Now,
		logger:        logger,
	}
}

// SendMessage validates message, answers it and returns the exchange.
//
// Only replies produced by the generative backend are added to the user's
// context. Any backend failure is logged and answered from the scripted
// replies; it is never returned.
func (s *chatService) SendMessage(ctx context.Context, userID int64, message string) (models.ChatReply, error) {
	if err := s.validator.Validate(ctx, models.ChatMessageRequest{Message: message}); err != nil {
		return models.ChatReply{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	text := strings.TrimSpace(message)

	response, err := s.generate(ctx, userID, text)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("using scripted chatbot reply")
		s.metrics.ObserveChatReply(metrics.ReplySourceFallback)

		return models.ChatReply{
			UserMessage: text,
			BotResponse: fallbackReply(text),
			Timestamp:   s.now().UTC(),
		}, nil
	}

	now := s.now().UTC()
	s.conversations.Append(userID,
		models.ChatMessage{Role: models.ChatRoleUser, Content: text, Timestamp: now},
		models.ChatMessage{Role: models.ChatRoleAssistant, Content: response, Timestamp: now},
	)
	s.metrics.ObserveChatReply(metrics.ReplySourceGenerated)

	return models.ChatReply{
		UserMessage: text,
		BotResponse: response,
		Timestamp:   now,
	}, nil
}

var errNoGenerator = errors.New("no text generator configured")

func (s *chatService) generate(ctx context.Context, userID int64, text string) (string, error) {
	if s.generator == nil {
		return "", errNoGenerator
	}

	prompt := buildPrompt(s.conversations.Recent(userID, promptContextEntries), text)
	generated, err := s.generator.Generate(ctx, prompt, adapter.GenerationParams{
		MaxLength:   s.maxLength,
		Temperature: generationTemperature,
		TopP:        generationTopP,
		DoSample:    true,
	})
	if err != nil {
		s.metrics.ObserveGeneratorError()
		return "", err
	}

	response := extractResponse(generated)
	if response == "" {
		s.metrics.ObserveGeneratorError()
		return "", adapter.ErrEmptyCompletion
	}

	return response, nil
}

// Context returns up to limit of the newest context entries, oldest first.
// A non-positive limit means DefaultContextLimit.
func (s *chatService) Context(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultContextLimit
	}
	if s.maxContext > 0 && limit > s.maxContext {
		limit = s.maxContext
	}

	return s.conversations.Recent(userID, limit), nil
}

func (s *chatService) ClearContext(ctx context.Context, userID int64) error {
	s.conversations.Clear(userID)
	return nil
}

// SuggestedQuestions picks conversation starters for the mood of the latest
// check-in, assuming a neutral mood when there is none.
func (s *chatService) SuggestedQuestions(ctx context.Context, userID int64) (models.SuggestedQuestions, error) {
	mood := defaultSuggestionMood

	latest, err := s.checkIns.LatestCheckIn(ctx, userID)
	switch {
	case err == nil:
		mood = latest.Mood
	case !errors.Is(err, store.ErrCheckInNotFound):
		return models.SuggestedQuestions{}, fmt.Errorf("error loading latest check-in: %w", err)
	}

	return models.SuggestedQuestions{
		LatestMood:         mood,
		SuggestedQuestions: questionsFor(mood),
		Tip:                suggestionTip,
	}, nil
}

package store

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
	"time"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/models"
)

const conversationShards = 16

type conversation struct {
	messages   []models.ChatMessage
	lastActive time.Time
}

type conversationShard struct {
	mu            sync.RWMutex
	conversations map[int64]*conversation
}

// memoryConversationStore is the in-process [ConversationStore]. Users are
// spread over a fixed number of shards by an FNV-1a hash of their ID so that
// unrelated users rarely contend for the same lock.
type memoryConversationStore struct {
	shards     [conversationShards]*conversationShard
	maxPerUser int
	ttl        time.Duration
	now        func() time.Time
}

// NewMemoryConversationStore constructs a [ConversationStore] that keeps at
// most cfg.MaxMessagesPerUser entries per user and forgets conversations idle
// for longer than cfg.ContextTTL once EvictIdle runs.
func NewMemoryConversationStore(cfg config.Chat) ConversationStore {
	return newMemoryConversationStore(cfg, time.Now)
}

func newMemoryConversationStore(cfg config.Chat, now func() time.Time) *memoryConversationStore {
	s := &memoryConversationStore{
		maxPerUser: cfg.MaxMessagesPerUser,
		ttl:        cfg.ContextTTL,
		now:        now,
	}
	for i := range s.shards {
		s.shards[i] = &conversationShard{conversations: make(map[int64]*conversation)}
	}
	return s
}

func (s *memoryConversationStore) shard(userID int64) *conversationShard {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], uint64(userID))

	h := fnv.New32a()
	_, _ = h.Write(key[:])
	return s.shards[h.Sum32()%conversationShards]
}

// Append implements [ConversationStore].
func (s *memoryConversationStore) Append(userID int64, messages ...models.ChatMessage) {
	if len(messages) == 0 {
		return
	}

	sh := s.shard(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	conv, ok := sh.conversations[userID]
	if !ok {
		conv = &conversation{}
		sh.conversations[userID] = conv
	}

	conv.messages = append(conv.messages, messages...)
	if s.maxPerUser > 0 && len(conv.messages) > s.maxPerUser {
		n := copy(conv.messages, conv.messages[len(conv.messages)-s.maxPerUser:])
		clear(conv.messages[n:])
		conv.messages = conv.messages[:n]
	}
	conv.lastActive = s.now()
}

// Recent implements [ConversationStore].
func (s *memoryConversationStore) Recent(userID int64, limit int) []models.ChatMessage {
	sh := s.shard(userID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	conv, ok := sh.conversations[userID]
	if !ok {
		return []models.ChatMessage{}
	}

	from := 0
	if limit > 0 && limit < len(conv.messages) {
		from = len(conv.messages) - limit
	}

	out := make([]models.ChatMessage, len(conv.messages)-from)
	copy(out, conv.messages[from:])
	return out
}

// Clear implements [ConversationStore].
func (s *memoryConversationStore) Clear(userID int64) {
	sh := s.shard(userID)
	sh.mu.Lock()
	delete(sh.conversations, userID)
	sh.mu.Unlock()
}

// EvictIdle implements [ConversationStore].
func (s *memoryConversationStore) EvictIdle(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	evicted := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		for userID, conv := range sh.conversations {
			if now.Sub(conv.lastActive) > s.ttl {
				delete(sh.conversations, userID)
				evicted++
			}
		}
		sh.mu.Unlock()
	}

	return evicted
}

// Len implements [ConversationStore].
func (s *memoryConversationStore) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.conversations)
		sh.mu.RUnlock()
	}
	return total
}

//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/repository"
)

type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLogsRepository) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockLogsRepository) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	docs, _ := args.Get(0).([]*repository.LogEntryDocument)
	return docs, args.Error(1)
}

func (m *MockLogsRepository) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func quoteRequestEntry() *model.LogEntry {
	return &model.LogEntry{
		Level:      "info",
		Message:    "request completed",
		Method:     "POST",
		Path:       "/api/quote",
		StatusCode: 200,
	}
}

func TestLoggingService_CreateLog_FillsIDAndTimestamp(t *testing.T) {
	repo := new(MockLogsRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
		return !doc.ID.IsZero() && !doc.Timestamp.IsZero()
	})).Return(nil)

	entry := quoteRequestEntry()
	err := NewLoggingService(repo).CreateLog(context.Background(), entry)

	require.NoError(t, err)
	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())
	repo.AssertExpectations(t)
}

func TestLoggingService_CreateLog_KeepsCallerID(t *testing.T) {
	id := primitive.NewObjectID()
	stamped := time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC)

	repo := new(MockLogsRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
		return doc.ID == id && doc.Timestamp.Equal(stamped)
	})).Return(nil)

	entry := quoteRequestEntry()
	entry.ID = id
	entry.Timestamp = stamped

	require.NoError(t, NewLoggingService(repo).CreateLog(context.Background(), entry))
	repo.AssertExpectations(t)
}

func TestLoggingService_CreateLog_Error(t *testing.T) {
	repo := new(MockLogsRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write concern failure"))

	err := NewLoggingService(repo).CreateLog(context.Background(), quoteRequestEntry())
	assert.Error(t, err)
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("batch of two", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2
		})).Return(nil)

		entries := []*model.LogEntry{quoteRequestEntry(), quoteRequestEntry()}
		require.NoError(t, NewLoggingService(repo).CreateLogs(context.Background(), entries))
		repo.AssertExpectations(t)
	})

	t.Run("empty batch skips the repository", func(t *testing.T) {
		repo := new(MockLogsRepository)
		require.NoError(t, NewLoggingService(repo).CreateLogs(context.Background(), nil))
		repo.AssertExpectations(t)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("bulk write failed"))

		err := NewLoggingService(repo).CreateLogs(context.Background(), []*model.LogEntry{quoteRequestEntry()})
		assert.Error(t, err)
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	t.Run("filters are forwarded to the repository", func(t *testing.T) {
		start := time.Now().Add(-time.Hour)
		docs := []*repository.LogEntryDocument{
			{ID: primitive.NewObjectID(), RequestID: "req-42", Level: "error", Path: "/api/itineraries"},
		}

		repo := new(MockLogsRepository)
		repo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
			return opts.RequestID == "req-42" && opts.Level == "error" &&
				opts.StartTime != nil && opts.StartTime.Equal(start) && opts.Limit == 25
		})).Return(docs, nil)

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), model.LogQueryOptions{
			RequestID: "req-42",
			Level:     "error",
			StartTime: &start,
			Limit:     25,
		})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-42", entries[0].RequestID)
		assert.Equal(t, "/api/itineraries", entries[0].Path)
		repo.AssertExpectations(t)
	})

	t.Run("no matches", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("Query", mock.Anything, mock.Anything).Return([]*repository.LogEntryDocument{}, nil)

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), model.LogQueryOptions{Path: "/api/places"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("cursor timeout"))

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), model.LogQueryOptions{})
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	t.Run("count with level filter", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("Count", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
			return opts.Level == "warn"
		})).Return(int64(7), nil)

		count, err := NewLoggingService(repo).CountLogs(context.Background(), model.LogQueryOptions{Level: "warn"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))

		_, err := NewLoggingService(repo).CountLogs(context.Background(), model.LogQueryOptions{})
		assert.Error(t, err)
	})
}

func TestToLogDocument(t *testing.T) {
	entry := &model.LogEntry{
		Level:      "error",
		Message:    "catalog lookup failed",
		RequestID:  "req-9",
		Method:     "GET",
		Path:       "/api/accommodations",
		StatusCode: 500,
		Duration:   132,
		IP:         "10.0.4.2",
		UserAgent:  "safari-cli/1.2",
		Error:      "context deadline exceeded",
		ActionType: "catalog_read",
		Fields:     map[string]interface{}{"place": "serengeti"},
	}

	doc := toLogDocument(entry)

	assert.False(t, doc.ID.IsZero())
	assert.False(t, doc.Timestamp.IsZero())
	assert.Equal(t, entry.Level, doc.Level)
	assert.Equal(t, entry.Message, doc.Message)
	assert.Equal(t, entry.RequestID, doc.RequestID)
	assert.Equal(t, entry.Method, doc.Method)
	assert.Equal(t, entry.Path, doc.Path)
	assert.Equal(t, entry.StatusCode, doc.StatusCode)
	assert.Equal(t, entry.Duration, doc.Duration)
	assert.Equal(t, entry.IP, doc.IP)
	assert.Equal(t, entry.UserAgent, doc.UserAgent)
	assert.Equal(t, entry.Error, doc.Error)
	assert.Equal(t, entry.ActionType, doc.ActionType)
	assert.Equal(t, entry.Fields, doc.Fields)
}

func TestLogEntryFromDocument(t *testing.T) {
	doc := &repository.LogEntryDocument{
		ID:         primitive.NewObjectID(),
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    "itinerary exported",
		RequestID:  "req-3",
		Method:     "GET",
		Path:       "/api/itineraries/it-1/export",
		StatusCode: 200,
		Duration:   41,
		ActionType: "itinerary_export",
		Fields:     map[string]interface{}{"format": "csv"},
	}

	entry := logEntryFromDocument(doc)

	assert.Equal(t, doc.ID, entry.ID)
	assert.Equal(t, doc.Timestamp, entry.Timestamp)
	assert.Equal(t, doc.Message, entry.Message)
	assert.Equal(t, doc.Path, entry.Path)
	assert.Equal(t, doc.Duration, entry.Duration)
	assert.Equal(t, doc.ActionType, entry.ActionType)
	assert.Equal(t, doc.Fields, entry.Fields)
}

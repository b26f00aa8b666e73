package tests

import (
	"context"
	"errors"
	"testing"

	"movierama/broker"
	"movierama/opinions-svc/internal/domain"
	"movierama/opinions-svc/internal/mocks"
	"movierama/opinions-svc/internal/service"
	"movierama/opinions-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_HandleMessage(t *testing.T) {
	validBody := []byte(`{"id":"event-1","movie_id":"tt0111161","rating":5,"comment":"Great","timestamp":"2024-05-01T12:00:00Z","origin":"rating-service"}`)

	tests := []struct {
		name         string
		body         []byte
		prepareMocks func(*mocks.OpinionStore, *mocks.AggregateCache)
		expected     service.Outcome
	}{
		{
			name: "new_event_processed",
			body: validBody,
			prepareMocks: func(store *mocks.OpinionStore, cache *mocks.AggregateCache) {
				store.On("HasOpinion", mock.Anything, "event-1").Return(false, nil).Once()
				store.On("RecordOpinion", mock.Anything, mock.MatchedBy(func(o domain.Opinion) bool {
					return o.MessageID == "event-1" && o.MovieID == "tt0111161" &&
						o.Rating == 5 && o.Source == "rating-service"
				})).Return(domain.MovieAggregate{MovieID: "tt0111161", RatingSum: 5, RatingsCount: 1}, nil).Once()
				cache.On("RecordRating", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expected: service.OutcomeProcessed,
		},
		{
			name: "duplicate_detected_by_lookup",
			body: validBody,
			prepareMocks: func(store *mocks.OpinionStore, cache *mocks.AggregateCache) {
				store.On("HasOpinion", mock.Anything, "event-1").Return(true, nil).Once()
			},
			expected: service.OutcomeDuplicate,
		},
		{
			name: "duplicate_detected_on_insert",
			body: validBody,
			prepareMocks: func(store *mocks.OpinionStore, cache *mocks.AggregateCache) {
				store.On("HasOpinion", mock.Anything, "event-1").Return(false, nil).Once()
				store.On("RecordOpinion", mock.Anything, mock.Anything).
					Return(domain.MovieAggregate{}, storage.ErrDuplicateOpinion).Once()
			},
			expected: service.OutcomeDuplicate,
		},
		{
			name:         "malformed_json",
			body:         []byte(`{{{not json`),
			prepareMocks: func(*mocks.OpinionStore, *mocks.AggregateCache) {},
			expected:     service.OutcomeMalformed,
		},
		{
			name:         "missing_event_id",
			body:         []byte(`{"movie_id":"tt0111161","rating":3}`),
			prepareMocks: func(*mocks.OpinionStore, *mocks.AggregateCache) {},
			expected:     service.OutcomeMalformed,
		},
		{
			name:         "rating_out_of_range",
			body:         []byte(`{"id":"event-2","movie_id":"tt0111161","rating":9}`),
			prepareMocks: func(*mocks.OpinionStore, *mocks.AggregateCache) {},
			expected:     service.OutcomeMalformed,
		},
		{
			name: "lookup_error_requeues",
			body: validBody,
			prepareMocks: func(store *mocks.OpinionStore, cache *mocks.AggregateCache) {
				store.On("HasOpinion", mock.Anything, "event-1").
					Return(false, errors.New("mongo down")).Once()
			},
			expected: service.OutcomeFailed,
		},
		{
			name: "record_error_requeues",
			body: validBody,
			prepareMocks: func(store *mocks.OpinionStore, cache *mocks.AggregateCache) {
				store.On("HasOpinion", mock.Anything, "event-1").Return(false, nil).Once()
				store.On("RecordOpinion", mock.Anything, mock.Anything).
					Return(domain.MovieAggregate{}, errors.New("transaction aborted")).Once()
			},
			expected: service.OutcomeFailed,
		},
		{
			name: "cache_error_is_not_fatal",
			body: validBody,
			prepareMocks: func(store *mocks.OpinionStore, cache *mocks.AggregateCache) {
				store.On("HasOpinion", mock.Anything, "event-1").Return(false, nil).Once()
				store.On("RecordOpinion", mock.Anything, mock.Anything).
					Return(domain.MovieAggregate{MovieID: "tt0111161", RatingSum: 5, RatingsCount: 1}, nil).Once()
				cache.On("RecordRating", mock.Anything, mock.Anything).
					Return(errors.New("redis down")).Once()
			},
			expected: service.OutcomeProcessed,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewOpinionStore(t)
			cache := mocks.NewAggregateCache(t)
			testCase.prepareMocks(store, cache)

			consumer := service.NewConsumer(store, cache)
			outcome := consumer.HandleMessage(context.Background(), testCase.body)

			assert.Equal(t, testCase.expected, outcome)
		})
	}
}

func TestConsumer_MalformedMessageTouchesNothing(t *testing.T) {
	store := mocks.NewOpinionStore(t)
	cache := mocks.NewAggregateCache(t)
	consumer := service.NewConsumer(store, cache)

	consumer.HandleMessage(context.Background(), []byte(`garbage`))

	store.AssertNotCalled(t, "HasOpinion")
	store.AssertNotCalled(t, "RecordOpinion")
	cache.AssertNotCalled(t, "RecordRating")
}

// fakeDelivery implements broker.Delivery and records how it was settled.
type fakeDelivery struct {
	body      []byte
	acked     bool
	requeued  bool
	discarded bool
}

func (d *fakeDelivery) Body() []byte  { return d.body }
func (d *fakeDelivery) Ack() error    { d.acked = true; return nil }
func (d *fakeDelivery) Requeue() error { d.requeued = true; return nil }
func (d *fakeDelivery) Discard() error { d.discarded = true; return nil }

func TestConsumer_StartSettlesDeliveries(t *testing.T) {
	store := mocks.NewOpinionStore(t)
	cache := mocks.NewAggregateCache(t)

	store.On("HasOpinion", mock.Anything, "event-ok").Return(false, nil).Once()
	store.On("RecordOpinion", mock.Anything, mock.Anything).
		Return(domain.MovieAggregate{MovieID: "tt0111161", RatingSum: 4, RatingsCount: 1}, nil).Once()
	cache.On("RecordRating", mock.Anything, mock.Anything).Return(nil).Once()

	store.On("HasOpinion", mock.Anything, "event-dup").Return(true, nil).Once()
	store.On("HasOpinion", mock.Anything, "event-fail").
		Return(false, errors.New("mongo down")).Once()

	processed := &fakeDelivery{body: []byte(`{"id":"event-ok","movie_id":"tt0111161","rating":4}`)}
	duplicate := &fakeDelivery{body: []byte(`{"id":"event-dup","movie_id":"tt0111161","rating":4}`)}
	malformed := &fakeDelivery{body: []byte(`garbage`)}
	failed := &fakeDelivery{body: []byte(`{"id":"event-fail","movie_id":"tt0111161","rating":4}`)}

	deliveries := make(chan broker.Delivery, 4)
	deliveries <- processed
	deliveries <- duplicate
	deliveries <- malformed
	deliveries <- failed
	close(deliveries)

	consumer := service.NewConsumer(store, cache)
	consumer.Start(context.Background(), deliveries)

	assert.True(t, processed.acked)
	assert.True(t, duplicate.acked)
	assert.True(t, malformed.discarded)
	assert.False(t, malformed.requeued)
	assert.True(t, failed.requeued)
	assert.False(t, failed.acked)
}

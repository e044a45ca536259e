package app

import (
	"context"
	"sync"
	"time"

	"area-match-service/internal/domain"
)

// SessionRepository abstracts how quiz sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	GetOrCreate(sessionID string) *Session
	Get(sessionID string) (*Session, bool)
	DeleteIfEmpty(sessionID string)
}

// CatalogRepository loads the content catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
}

// MatchService contains the quiz use cases: walking a visitor through the
// question set and streaming the live recommendation ranking.
type MatchService struct {
	sessions SessionRepository
	catalogs CatalogRepository
}

func NewMatchService(store SessionRepository, catalogs CatalogRepository) *MatchService {
	return &MatchService{sessions: store, catalogs: catalogs}
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string) *Session {
	return newSession(id)
}

// Join registers a watcher on a quiz session, creating it on first contact.
// The catalog is preloaded so a misconfigured content store fails the join
// rather than the first answer.
func (s *MatchService) Join(ctx context.Context, sessionID, watcherID string) (domain.Ranking, error) {
	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return domain.Ranking{}, err
	}

	session := s.sessions.GetOrCreate(sessionID)
	session.join(watcherID)
	return s.ranking(catalog, session, session.answers()), nil
}

// SubmitAnswer records one answer (overwriting any prior answer to the same
// question) and returns the refreshed ranking. Entries pointing at unknown
// questions or out-of-range options are stored but contribute no score.
func (s *MatchService) SubmitAnswer(ctx context.Context, sessionID string, questionID, optionIndex int) (domain.Ranking, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Ranking{}, domain.ErrSessionNotFound
	}

	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return domain.Ranking{}, err
	}

	answers := session.recordAnswer(questionID, optionIndex)
	ranking := s.ranking(catalog, session, answers)
	session.publish(ranking)
	return ranking, nil
}

// Results computes the final recommendations for a session, including the
// display descriptions for each recommended area.
func (s *MatchService) Results(ctx context.Context, sessionID string) (domain.Ranking, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Ranking{}, domain.ErrSessionNotFound
	}

	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return domain.Ranking{}, err
	}

	ranking := s.ranking(catalog, session, session.answers())
	for i := range ranking.Results {
		ranking.Results[i].Description = ResultDescription(catalog, ranking.Results[i].QuizResult)
	}
	return ranking, nil
}

// Subscribe returns a channel that receives ranking updates for a session.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *MatchService) Subscribe(ctx context.Context, sessionID string) (<-chan domain.Ranking, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}

	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	initial := s.ranking(catalog, session, session.answers())
	ch, cancel := session.subscribe(initial)
	return ch, cancel, nil
}

// Leave removes a watcher and drops the session once nobody is attached.
func (s *MatchService) Leave(_ context.Context, sessionID, watcherID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.leave(watcherID)
	if session.isEmpty() {
		s.sessions.DeleteIfEmpty(sessionID)
	}
}

func (s *MatchService) ranking(catalog domain.Catalog, session *Session, answers domain.QuizAnswers) domain.Ranking {
	results := CalculateResults(catalog, answers)
	maxScore := MaxScore(catalog.Questions)

	ranked := make([]domain.RankedResult, 0, len(results))
	for _, result := range results {
		percent, err := MatchPercentage(result.Score, maxScore)
		if err != nil {
			// Question set with no scored options; nothing meaningful to show.
			percent = 0
		}
		ranked = append(ranked, domain.RankedResult{QuizResult: result, MatchPercent: percent})
	}

	return domain.Ranking{
		SessionID: session.id,
		Answered:  len(answers),
		Results:   ranked,
		UpdatedAt: session.now(),
	}
}

// Session is the in-memory state of one visitor's quiz run: the answer set
// plus the watchers and subscribers attached to it.
type Session struct {
	id        string
	createdAt time.Time
	now       func() time.Time

	mu          sync.RWMutex
	answerSet   domain.QuizAnswers
	watchers    map[string]struct{}
	subscribers map[chan domain.Ranking]struct{}
}

func newSession(id string) *Session {
	return newSessionWithClock(id, time.Now)
}

// newSessionWithClock allows deterministic timestamps in tests.
func newSessionWithClock(id string, now func() time.Time) *Session {
	return &Session{
		id:          id,
		createdAt:   now(),
		now:         now,
		answerSet:   make(domain.QuizAnswers),
		watchers:    make(map[string]struct{}),
		subscribers: make(map[chan domain.Ranking]struct{}),
	}
}

func (s *Session) join(watcherID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers[watcherID] = struct{}{}
}

func (s *Session) leave(watcherID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.watchers, watcherID)
}

func (s *Session) isEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.watchers) == 0
}

// IsEmpty reports whether the session has no attached watchers.
func (s *Session) IsEmpty() bool {
	return s.isEmpty()
}

// recordAnswer stores one answer and returns a copy of the full answer set.
func (s *Session) recordAnswer(questionID, optionIndex int) domain.QuizAnswers {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answerSet[questionID] = optionIndex
	return copyAnswers(s.answerSet)
}

// answers returns a copy of the current answer set.
func (s *Session) answers() domain.QuizAnswers {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAnswers(s.answerSet)
}

func copyAnswers(answers domain.QuizAnswers) domain.QuizAnswers {
	dup := make(domain.QuizAnswers, len(answers))
	for questionID, optionIndex := range answers {
		dup[questionID] = optionIndex
	}
	return dup
}

func (s *Session) subscribe(initial domain.Ranking) (<-chan domain.Ranking, func()) {
	ch := make(chan domain.Ranking, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// publish fans a ranking snapshot out to all subscribers. Slow consumers have
// their stale snapshot replaced rather than blocking the broadcast.
func (s *Session) publish(ranking domain.Ranking) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subscribers {
		select {
		case ch <- ranking:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- ranking
		}
	}
}

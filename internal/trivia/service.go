package trivia

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// QuestionStore is the persistence contract for questions. List results are
// ordered by ascending id. Absent rows surface as ErrNotFound.
type QuestionStore interface {
	List(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Get(ctx context.Context, id int) (Question, error)
	Insert(ctx context.Context, q Question) (int, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (Category, error)
}

// Service orchestrates store access with pagination, search and quiz
// selection. Stores are explicit dependencies; the service holds no other
// cross-request state.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	pageSize   int
	logger     zerolog.Logger
}

// ServiceOptions tunes gameplay defaults.
type ServiceOptions struct {
	QuestionsPerPage int
}

// NewService wires stores into a trivia service.
func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.QuestionsPerPage
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{
		questions:  questions,
		categories: categories,
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// PageSize reports the configured questions-per-page.
func (s *Service) PageSize() int { return s.pageSize }

// Categories returns every category keyed by id.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	byID := make(map[int]string, len(cats))
	for _, c := range cats {
		byID[c.ID] = c.Type
	}
	return byID, nil
}

// QuestionPage is the payload of the paginated question listing.
type QuestionPage struct {
	Questions  []Question
	Categories []Category
	Total      int
}

// ListQuestions returns one page of the full question list together with all
// categories and the total count. A page beyond the end of the list yields
// ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list categories: %w", err)
	}
	current := Paginate(all, page, s.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{Questions: current, Categories: cats, Total: len(all)}, nil
}

// MutationResult reports the state of the question list after a write: the
// refreshed first page and the new total.
type MutationResult struct {
	ID        int
	Questions []Question
	Total     int
}

// DeleteQuestion removes a question by id and reports the refreshed first
// page. A missing id yields ErrNotFound.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (MutationResult, error) {
	if _, err := s.questions.Get(ctx, id); err != nil {
		return MutationResult{}, err
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return MutationResult{}, err
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return s.refreshFirstPage(ctx, id)
}

// CreateQuestion validates the category reference, inserts the question and
// reports the refreshed first page. A dangling category yields
// ErrUnknownCategory.
func (s *Service) CreateQuestion(ctx context.Context, q Question) (MutationResult, error) {
	if _, err := s.categories.Get(ctx, q.Category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return MutationResult{}, ErrUnknownCategory
		}
		return MutationResult{}, err
	}
	id, err := s.questions.Insert(ctx, q)
	if err != nil {
		return MutationResult{}, fmt.Errorf("insert question: %w", err)
	}
	s.logger.Info().Int("question_id", id).Int("category", q.Category).Msg("question created")
	return s.refreshFirstPage(ctx, id)
}

func (s *Service) refreshFirstPage(ctx context.Context, id int) (MutationResult, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return MutationResult{}, fmt.Errorf("list questions: %w", err)
	}
	page := Paginate(all, 1, s.pageSize)
	if page == nil {
		page = []Question{}
	}
	return MutationResult{
		ID:        id,
		Questions: page,
		Total:     len(all),
	}, nil
}

// SearchResult is the payload of a question search.
type SearchResult struct {
	Questions []Question
	Total     int
}

// SearchQuestions returns the questions whose text contains term. Zero
// matches is a successful empty result; empty-term rejection is the
// handler's responsibility.
func (s *Service) SearchQuestions(ctx context.Context, term string) (SearchResult, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("list questions: %w", err)
	}
	matched := Search(term, all)
	return SearchResult{Questions: matched, Total: len(matched)}, nil
}

// CategoryQuestions is the payload of the per-category listing.
type CategoryQuestions struct {
	Questions  []Question
	Categories []Category
	Current    Category
	Total      int
}

// QuestionsByCategory lists every question in a category. An unknown
// category id yields ErrNotFound; a known category with no questions yields
// an empty list.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) (CategoryQuestions, error) {
	current, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, err
	}
	qs, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list questions by category: %w", err)
	}
	if qs == nil {
		qs = []Question{}
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list categories: %w", err)
	}
	return CategoryQuestions{
		Questions:  qs,
		Categories: cats,
		Current:    current,
		Total:      len(qs),
	}, nil
}

// NextQuizQuestion picks one random question from the category's pool
// (AllCategories means every question), excluding previously asked ids. A
// nil result with a nil error means the pool is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*Question, error) {
	var (
		pool []Question
		err  error
	)
	if categoryID == AllCategories {
		pool, err = s.questions.List(ctx)
	} else {
		pool, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}
	q, ok := NextQuestion(pool, previous)
	if !ok {
		return nil, nil
	}
	return &q, nil
}

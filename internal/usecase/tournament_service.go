package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/competition"
	"github.com/riskibarqy/school-tournament/internal/domain/fixture"
	"github.com/riskibarqy/school-tournament/internal/domain/leaguestanding"
	"github.com/riskibarqy/school-tournament/internal/domain/score"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

const (
	EmptyScheduleMessage  = "Add at least two schools to generate a schedule."
	EmptyStandingsMessage = "No standings yet. Add at least two schools."
)

type TournamentConfig struct {
	StorageKey     string
	DefaultSchools []string
	Now            func() time.Time
}

// TournamentService owns the single tournament state. Every operation runs to
// completion under one lock and persists immediately after a mutation.
type TournamentService struct {
	mu             sync.Mutex
	repo           tournament.Repository
	storageKey     string
	defaultSchools []string
	now            func() time.Time
	logger         *logging.Logger
	state          *tournament.State
}

type CompetitionSchedule struct {
	Competition  competition.Competition
	Title        string
	Rounds       []fixture.Round
	Scores       score.Book
	EmptyMessage string
}

type CompetitionStandings struct {
	Competition  competition.Competition
	Title        string
	Rows         []leaguestanding.Standing
	EmptyMessage string
}

func NewTournamentService(repo tournament.Repository, cfg TournamentConfig, logger *logging.Logger) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	key := strings.TrimSpace(cfg.StorageKey)
	if key == "" {
		key = tournament.DefaultStorageKey
	}
	schools := team.Normalize(cfg.DefaultSchools)
	if len(schools) == 0 {
		schools = append([]string(nil), tournament.DefaultSchools...)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &TournamentService{
		repo:           repo,
		storageKey:     key,
		defaultSchools: schools,
		now:            now,
		logger:         logger,
	}
}

// GenerateDefaultState builds a fresh tournament from the configured default
// schools without touching the stored state.
func (s *TournamentService) GenerateDefaultState() tournament.State {
	return tournament.NewDefault(s.defaultSchools)
}

func (s *TournamentService) State(ctx context.Context) (tournament.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.State")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return tournament.State{}, err
	}
	return current.Clone(), nil
}

func (s *TournamentService) SetActiveCompetition(ctx context.Context, value string) (tournament.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.SetActiveCompetition")
	defer span.End()

	comp, err := competition.Parse(value)
	if err != nil {
		return tournament.State{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return tournament.State{}, err
	}

	next := current.Clone()
	next.ActiveCompetition = comp
	return s.commit(ctx, next)
}

// ApplyTeamList replaces the school list with the normalized text and
// regenerates both competitions, clearing every score.
func (s *TournamentService) ApplyTeamList(ctx context.Context, rawText string, confirm Confirmer) (tournament.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ApplyTeamList")
	defer span.End()

	schools := team.ParseList(rawText)
	if len(schools) == 0 {
		return tournament.State{}, fmt.Errorf("%w: %w", ErrInvalidInput, team.ErrEmptyTeamList)
	}
	if !confirmed(ctx, confirm, PromptApplySchools) {
		return tournament.State{}, fmt.Errorf("%w: apply school changes", ErrNotConfirmed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return tournament.State{}, err
	}

	next, err := s.commit(ctx, tournament.WithSchools(current, schools))
	if err != nil {
		return tournament.State{}, err
	}
	s.logger.InfoContext(ctx, "school list applied", "schools", len(schools))
	return next, nil
}

// Regenerate rebuilds both schedules from the current school list, clearing
// every score.
func (s *TournamentService) Regenerate(ctx context.Context, confirm Confirmer) (tournament.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Regenerate")
	defer span.End()

	if !confirmed(ctx, confirm, PromptRegenerate) {
		return tournament.State{}, fmt.Errorf("%w: regenerate schedules", ErrNotConfirmed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return tournament.State{}, err
	}

	next, err := s.commit(ctx, tournament.Regenerate(current))
	if err != nil {
		return tournament.State{}, err
	}
	s.logger.InfoContext(ctx, "schedules regenerated", "schools", len(next.Schools))
	return next, nil
}

// Reset replaces the stored tournament with the default one.
func (s *TournamentService) Reset(ctx context.Context, confirm Confirmer) (tournament.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Reset")
	defer span.End()

	if !confirmed(ctx, confirm, PromptReset) {
		return tournament.State{}, fmt.Errorf("%w: reset tournament", ErrNotConfirmed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.commit(ctx, s.GenerateDefaultState())
	if err != nil {
		return tournament.State{}, err
	}
	s.logger.InfoContext(ctx, "tournament reset to defaults")
	return next, nil
}

func (s *TournamentService) Schedule(ctx context.Context, value string) (CompetitionSchedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Schedule")
	defer span.End()

	comp, err := competition.Parse(value)
	if err != nil {
		return CompetitionSchedule{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return CompetitionSchedule{}, err
	}

	out := CompetitionSchedule{
		Competition: comp,
		Title:       comp.Title() + " Schedule",
		Rounds:      []fixture.Round{},
		Scores:      score.NewBook(),
	}
	if !team.CanSchedule(current.Schools) {
		out.EmptyMessage = EmptyScheduleMessage
		return out, nil
	}

	cs := current.Competition(comp)
	out.Rounds = fixture.CloneSchedule(cs.Schedule)
	out.Scores = cs.Scores.Clone()
	return out, nil
}

// RecordScore validates the raw goal fields and stores, overwrites or clears
// the match score. Invalid input leaves the stored score untouched.
func (s *TournamentService) RecordScore(ctx context.Context, value, matchID, rawHome, rawAway string) (score.Input, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.RecordScore")
	defer span.End()

	comp, err := competition.Parse(value)
	if err != nil {
		return score.Input{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	input, err := score.ParseInput(rawHome, rawAway)
	if err != nil {
		return score.Input{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.updateScores(ctx, comp, matchID, func(book score.Book) error {
		return input.Apply(book, matchID)
	}); err != nil {
		return score.Input{}, err
	}

	s.logger.DebugContext(ctx, "score recorded",
		"competition", comp.String(),
		"match_id", matchID,
		"cleared", input.Clear,
	)
	return input, nil
}

func (s *TournamentService) ClearScore(ctx context.Context, value, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ClearScore")
	defer span.End()

	comp, err := competition.Parse(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.updateScores(ctx, comp, matchID, func(book score.Book) error {
		book.Clear(matchID)
		return nil
	}); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "score cleared", "competition", comp.String(), "match_id", matchID)
	return nil
}

func (s *TournamentService) Standings(ctx context.Context, value string) (CompetitionStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Standings")
	defer span.End()

	comp, err := competition.Parse(value)
	if err != nil {
		return CompetitionStandings{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return CompetitionStandings{}, err
	}

	out := CompetitionStandings{
		Competition: comp,
		Title:       comp.Title() + " Standings",
		Rows:        []leaguestanding.Standing{},
	}
	if !team.CanSchedule(current.Schools) {
		out.EmptyMessage = EmptyStandingsMessage
		return out, nil
	}

	cs := current.Competition(comp)
	out.Rows = leaguestanding.Compute(current.Schools, cs.Schedule, cs.Scores)
	return out, nil
}

func (s *TournamentService) updateScores(ctx context.Context, comp competition.Competition, matchID string, mutate func(score.Book) error) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return err
	}

	if _, ok := fixture.FindMatch(current.Competition(comp).Schedule, matchID); !ok {
		return fmt.Errorf("%w: %w: competition=%s match=%s", ErrNotFound, fixture.ErrMatchNotFound, comp, matchID)
	}

	next := current.Clone()
	cs := next.Competition(comp)
	if err := mutate(cs.Scores); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	next.Competitions[comp] = cs

	_, err = s.commit(ctx, next)
	return err
}

// current returns the in-memory state, loading it on first use. Callers must
// hold s.mu.
func (s *TournamentService) current(ctx context.Context) (tournament.State, error) {
	if s.state != nil {
		return *s.state, nil
	}

	loaded, err := s.load(ctx)
	if err != nil {
		return tournament.State{}, err
	}
	s.state = &loaded
	return loaded, nil
}

func (s *TournamentService) load(ctx context.Context) (tournament.State, error) {
	data, exists, err := s.repo.Get(ctx, s.storageKey)
	if err != nil {
		return tournament.State{}, fmt.Errorf("%w: load tournament: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		s.logger.InfoContext(ctx, "no stored tournament, using defaults", "key", s.storageKey)
		return s.GenerateDefaultState(), nil
	}

	state, err := tournament.Decode(data)
	if err != nil {
		if !errors.Is(err, tournament.ErrMalformedRecord) {
			return tournament.State{}, fmt.Errorf("decode tournament: %w", err)
		}
		s.logger.WarnContext(ctx, "stored tournament unusable, using defaults", "key", s.storageKey, "error", err)
		return s.GenerateDefaultState(), nil
	}
	return state, nil
}

// commit stamps, persists and then adopts next. Callers must hold s.mu.
func (s *TournamentService) commit(ctx context.Context, next tournament.State) (tournament.State, error) {
	stamp := s.now().UTC()
	next.LastSaved = &stamp

	data, err := tournament.Encode(next)
	if err != nil {
		return tournament.State{}, fmt.Errorf("encode tournament: %w", err)
	}
	if err := s.repo.Put(ctx, s.storageKey, data); err != nil {
		return tournament.State{}, fmt.Errorf("%w: save tournament: %w", ErrDependencyUnavailable, err)
	}

	s.state = &next
	return next.Clone(), nil
}

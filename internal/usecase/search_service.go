package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchcenter/internal/domain/person"
	"github.com/riskibarqy/matchcenter/internal/domain/search"
	"github.com/riskibarqy/matchcenter/internal/platform/fanout"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
)

type SearchService struct {
	provider FootballDataProvider
	opts     Options
	logger   *logging.Logger
}

func NewSearchService(provider FootballDataProvider, opts Options, logger *logging.Logger) *SearchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SearchService{
		provider: provider,
		opts:     opts.normalize(),
		logger:   logger,
	}
}

// SearchTeams looks for teams across the configured competitions. A competition
// whose team list cannot be fetched is skipped.
func (s *SearchService) SearchTeams(ctx context.Context, rawQuery string) (search.TeamResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.SearchTeams")
	defer span.End()

	q, err := s.parseQuery(rawQuery)
	if err != nil {
		return search.TeamResult{}, err
	}

	codes := s.opts.TeamSearchCompetitions
	hits := make([]search.TeamHit, 0, 32)
	err = fanout.Ordered(ctx, len(codes), s.opts.FanoutWidth,
		func(ctx context.Context, i int) (ExternalCompetitionTeams, error) {
			return s.provider.FetchCompetitionTeams(ctx, codes[i], 0)
		},
		func(i int, list ExternalCompetitionTeams, err error) bool {
			if err != nil {
				s.logger.WarnContext(ctx, "team search skipped competition", "competition", codes[i], "error", err)
				return true
			}
			origin := competitionOrigin(codes[i], list.Competition)
			for _, item := range list.Teams {
				hit := search.TeamHit{
					Team:        NormalizeTeam(ExternalMatchSide{ExternalTeamRef: item.ExternalTeamRef, Coach: item.Coach}),
					Competition: origin,
				}
				if q.Matches(hit.Names()...) {
					hits = append(hits, hit)
				}
			}
			return true
		},
	)
	if err != nil {
		return search.TeamResult{}, err
	}

	hits = search.Dedup(hits, teamKey)
	search.Rank(hits, q, search.TeamHit.DisplayNames)

	s.logger.DebugContext(ctx, "team search finished", "query", q.Raw(), "matches", len(hits))
	return search.TeamResult{
		Teams: search.Truncate(hits, s.opts.TeamResultLimit),
		Total: len(hits),
		Query: q.Raw(),
	}, nil
}

// SearchPlayers looks for players and managers. With a team id only that squad
// is searched; otherwise the first squads of each configured competition are
// walked until enough matches are collected.
func (s *SearchService) SearchPlayers(ctx context.Context, rawQuery, teamID string) (search.PlayerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.SearchPlayers")
	defer span.End()

	q, err := s.parseQuery(rawQuery)
	if err != nil {
		return search.PlayerResult{}, err
	}

	collector := &personCollector{query: q}
	teamID = strings.TrimSpace(teamID)
	if teamID != "" {
		squad, err := s.provider.FetchTeam(ctx, teamID)
		if err != nil {
			s.logger.ErrorContext(ctx, "player search squad fetch failed", "team_id", teamID, "error", err)
			return search.PlayerResult{}, newOperationError("SearchPlayers", "Failed to search players", err)
		}
		collector.add(squad)
	} else if err := s.walkSquads(ctx, collector); err != nil {
		return search.PlayerResult{}, err
	}

	players := search.Dedup(collector.players, search.PersonHit.Key)
	managers := search.Dedup(collector.managers, search.PersonHit.Key)
	search.Rank(players, q, personNames)
	search.Rank(managers, q, personNames)

	s.logger.DebugContext(ctx, "player search finished",
		"query", q.Raw(),
		"scoped", teamID != "",
		"players", len(players),
		"managers", len(managers),
	)
	return search.PlayerResult{
		Players:  search.Truncate(players, s.opts.PlayerResultLimit),
		Managers: search.Truncate(managers, s.opts.ManagerResultLimit),
		Total:    len(players) + len(managers),
		Query:    q.Raw(),
	}, nil
}

func (s *SearchService) walkSquads(ctx context.Context, collector *personCollector) error {
	codes := s.opts.PlayerSearchCompetitions
	width := s.opts.FanoutWidth
	var walkErr error

	err := fanout.Ordered(ctx, len(codes), width,
		func(ctx context.Context, i int) (ExternalCompetitionTeams, error) {
			return s.provider.FetchCompetitionTeams(ctx, codes[i], 0)
		},
		func(i int, list ExternalCompetitionTeams, err error) bool {
			if err != nil {
				s.logger.WarnContext(ctx, "player search skipped competition", "competition", codes[i], "error", err)
				return true
			}

			teams := list.Teams
			if len(teams) > s.opts.TeamsPerCompetition {
				teams = teams[:s.opts.TeamsPerCompetition]
			}

			walkErr = fanout.Ordered(ctx, len(teams), width,
				func(ctx context.Context, j int) (ExternalTeam, error) {
					return s.provider.FetchTeam(ctx, strconv.FormatInt(teams[j].ID, 10))
				},
				func(j int, squad ExternalTeam, err error) bool {
					if err != nil {
						s.logger.WarnContext(ctx, "player search skipped team",
							"competition", codes[i],
							"team_id", teams[j].ID,
							"error", err,
						)
						return true
					}
					if squad.ID == 0 {
						squad.ExternalTeamRef = teams[j].ExternalTeamRef
					}
					collector.add(squad)
					return !collector.full(s.opts.PlayerSearchEarlyExit)
				},
			)
			if walkErr != nil {
				return false
			}
			return !collector.full(s.opts.PlayerSearchEarlyExit)
		},
	)
	if err != nil {
		return err
	}
	return walkErr
}

func (s *SearchService) parseQuery(raw string) (search.Query, error) {
	q := search.NewQuery(raw)
	if q.Len() < s.opts.MinQueryLength {
		return search.Query{}, fmt.Errorf("%w: search query must be at least %d characters long", ErrInvalidInput, s.opts.MinQueryLength)
	}
	return q, nil
}

// personCollector accumulates matching squad members in walk order.
type personCollector struct {
	query    search.Query
	players  []search.PersonHit
	managers []search.PersonHit
}

func (c *personCollector) add(squad ExternalTeam) {
	origin := search.Origin{
		ID:    squad.ID,
		Name:  orDefault(squad.Name, unknownTeam),
		Crest: strings.TrimSpace(squad.Crest),
	}

	members := make([]person.Person, 0, len(squad.Squad)+1)
	if squad.Coach != nil {
		members = append(members, NormalizeCoach(squad.Coach))
	}
	for _, item := range squad.Squad {
		members = append(members, NormalizePerson(item, person.RolePlayer))
	}

	for _, member := range members {
		if !c.query.Matches(member.Names()...) {
			continue
		}
		hit := search.PersonHit{Person: member, Team: origin}
		if member.IsManager() {
			c.managers = append(c.managers, hit)
		} else {
			c.players = append(c.players, hit)
		}
	}
}

func (c *personCollector) full(limit int) bool {
	return len(c.players)+len(c.managers) >= limit
}

func personNames(hit search.PersonHit) []string {
	return hit.Person.Names()
}

type teamIdentity struct {
	id   int64
	name string
}

func teamKey(hit search.TeamHit) teamIdentity {
	if hit.Team.HasID() {
		return teamIdentity{id: hit.Team.ID}
	}
	return teamIdentity{name: hit.Team.Name}
}

func competitionOrigin(code string, raw ExternalCompetitionRef) search.Origin {
	return search.Origin{
		ID:    raw.ID,
		Name:  strings.TrimSpace(raw.Name),
		Code:  orDefault(raw.Code, code),
		Crest: strings.TrimSpace(raw.Emblem),
	}
}

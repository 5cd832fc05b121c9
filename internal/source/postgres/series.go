package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/moguls753/football-kpi/internal/kpi"
)

// Leagues returns every league that has at least one season
func (s *Store) Leagues(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT name FROM possible_leagues_and_seasons ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query leagues: %w", err)
	}
	defer rows.Close()

	var leagues []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan league: %w", err)
		}
		leagues = append(leagues, name)
	}
	return leagues, rows.Err()
}

// Seasons returns the season years available for league
func (s *Store) Seasons(ctx context.Context, league string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT season_year FROM possible_leagues_and_seasons WHERE name = $1 ORDER BY season_year",
		league)
	if err != nil {
		return nil, fmt.Errorf("query seasons: %w", err)
	}
	defer rows.Close()

	var seasons []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, year)
	}
	return seasons, rows.Err()
}

// SeasonID resolves the id that names the match table of a league season
func (s *Store) SeasonID(ctx context.Context, league string, seasonYear int) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx,
		"SELECT season_id FROM possible_leagues_and_seasons WHERE name = $1 AND season_year = $2",
		league, seasonYear).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s %d", ErrSeasonNotFound, league, seasonYear)
	}
	if err != nil {
		return 0, fmt.Errorf("query season id: %w", err)
	}
	return id, nil
}

// Teams returns the teams that played in a season
func (s *Store) Teams(ctx context.Context, seasonID int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, teamsQuery(seasonID))
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// TeamSeries loads one team's KPI per game week. Missing values stay as gaps.
func (s *Store) TeamSeries(ctx context.Context, seasonID int, team string, k kpi.KPI) (kpi.Series, error) {
	rows, err := s.db.QueryContext(ctx, teamSeriesQuery(seasonID, k), team)
	if err != nil {
		return kpi.Series{}, fmt.Errorf("query %s for %s: %w", k, team, err)
	}
	defer rows.Close()

	points, err := scanPoints(rows)
	if err != nil {
		return kpi.Series{}, fmt.Errorf("scan %s for %s: %w", k, team, err)
	}
	return kpi.Series{Name: team, Points: points}, nil
}

// LeagueSeries loads the KPI aggregated over all teams per game week
func (s *Store) LeagueSeries(ctx context.Context, seasonID int, name string, k kpi.KPI, agg kpi.AggregationKind) (kpi.Series, error) {
	rows, err := s.db.QueryContext(ctx, leagueSeriesQuery(seasonID, k, agg))
	if err != nil {
		return kpi.Series{}, fmt.Errorf("query league %s %s: %w", agg, k, err)
	}
	defer rows.Close()

	points, err := scanPoints(rows)
	if err != nil {
		return kpi.Series{}, fmt.Errorf("scan league %s %s: %w", agg, k, err)
	}
	return kpi.Series{Name: name, Points: points}, nil
}

// Standings returns the league table for a season ordered by points, with
// the per-match average of every kpi.MatchStats column.
func (s *Store) Standings(ctx context.Context, seasonID int) ([]kpi.Standing, error) {
	stats := kpi.MatchStats()
	rows, err := s.db.QueryContext(ctx, standingsQuery(seasonID, stats))
	if err != nil {
		return nil, fmt.Errorf("query standings: %w", err)
	}
	defer rows.Close()

	var table []kpi.Standing
	for rows.Next() {
		st, err := scanStanding(rows.Scan, stats)
		if err != nil {
			return nil, fmt.Errorf("scan standing: %w", err)
		}
		table = append(table, st)
	}
	return table, rows.Err()
}

// MatchDetails returns a team's match log ordered by game week
func (s *Store) MatchDetails(ctx context.Context, seasonID int, team string) ([]kpi.Match, error) {
	stats := kpi.MatchStats()
	rows, err := s.db.QueryContext(ctx, matchDetailsQuery(seasonID, stats), team)
	if err != nil {
		return nil, fmt.Errorf("query matches for %s: %w", team, err)
	}
	defer rows.Close()

	var matches []kpi.Match
	for rows.Next() {
		m, err := scanMatch(rows.Scan, stats)
		if err != nil {
			return nil, fmt.Errorf("scan match for %s: %w", team, err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// scanFunc is the signature of (*sql.Rows).Scan
type scanFunc func(dest ...any) error

func scanStanding(scan scanFunc, stats []kpi.KPI) (kpi.Standing, error) {
	st := kpi.Standing{Averages: make(map[kpi.KPI]float64, len(stats))}
	avgs := make([]float64, len(stats))

	dest := []any{&st.Team, &st.GamesPlayed, &st.TotalPoints}
	for i := range avgs {
		dest = append(dest, &avgs[i])
	}
	if err := scan(dest...); err != nil {
		return kpi.Standing{}, err
	}

	for i, k := range stats {
		st.Averages[k] = avgs[i]
	}
	return st, nil
}

func scanMatch(scan scanFunc, stats []kpi.KPI) (kpi.Match, error) {
	m := kpi.Match{Stats: make(map[kpi.KPI]sql.NullFloat64, len(stats))}
	values := make([]sql.NullFloat64, len(stats))

	dest := []any{&m.GameWeek, &m.Opponent, &m.HomeOrAway, &m.Stadium}
	for i := range values {
		dest = append(dest, &values[i])
	}
	if err := scan(dest...); err != nil {
		return kpi.Match{}, err
	}

	for i, k := range stats {
		m.Stats[k] = values[i]
	}
	return m, nil
}

func scanPoints(rows *sql.Rows) ([]kpi.Point, error) {
	var points []kpi.Point
	for rows.Next() {
		var p kpi.Point
		if err := rows.Scan(&p.GameWeek, &p.Value); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

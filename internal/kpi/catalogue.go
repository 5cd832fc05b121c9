package kpi

import (
	"fmt"
	"strings"
)

// KPI is a per-match statistic column of the league-season match tables
type KPI string

// Points is the league points a team earned in a match. It is summed, not
// averaged, in the league table.
const Points KPI = "points"

// Catalogue lists every KPI the match tables carry, in display order.
var Catalogue = []KPI{
	"goals_scored",
	"goals_conceded",
	"corners_for",
	"corners_against",
	"offsides_for",
	"offsides_against",
	"yellow_cards_for",
	"yellow_cards_against",
	"red_cards_for",
	"red_cards_against",
	"shotsontarget_for",
	"shotsontarget_against",
	"shotsofftarget_for",
	"shotsofftarget_against",
	"shots_for",
	"shots_against",
	"fouls_for",
	"fouls_against",
	"possession_for",
	"possession_against",
	Points,
}

// MatchStats returns the catalogue without Points, in display order.
// These are the columns averaged in the league table and listed in a match log.
func MatchStats() []KPI {
	out := make([]KPI, 0, len(Catalogue)-1)
	for _, k := range Catalogue {
		if k != Points {
			out = append(out, k)
		}
	}
	return out
}

// Column returns the column name. Only catalogue entries should reach SQL.
func (k KPI) Column() string {
	return string(k)
}

// Title renders the KPI for table headers, e.g. "Shots On Target For"
func (k KPI) Title() string {
	words := strings.Split(string(k), "_")
	for i, w := range words {
		switch w {
		case "shotsontarget":
			w = "shots on target"
		case "shotsofftarget":
			w = "shots off target"
		}
		words[i] = w
	}
	words = strings.Fields(strings.Join(words, " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// LookupKPI validates name against the catalogue
func LookupKPI(name string) (KPI, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Catalogue {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKPI, name)
}

package service

import (
	"strings"
	"unicode/utf8"

	"cs_sprint_backend/internal/catalog"
)

// minQueryLength is the shortest query the search endpoints answer; anything
// shorter returns an empty result rather than an error.
const minQueryLength = 2

type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

type ModuleResult struct {
	Module     catalog.Module `json:"module"`
	MatchField string         `json:"matchField"`
}

type UserResult struct {
	User       catalog.DirectoryUser `json:"user"`
	MatchField string                `json:"matchField"`
}

type SearchResult struct {
	Modules []ModuleResult `json:"modules,omitempty"`
	Users   []UserResult   `json:"users,omitempty"`
}

// SearchModules matches the query case-insensitively against title, subtitle,
// tag and outcomes, in that priority order. The first matching field names
// the result's matchField; later fields are not checked for that module.
func (s *SearchService) SearchModules(query string) []ModuleResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < minQueryLength {
		return []ModuleResult{}
	}

	results := []ModuleResult{}
	for _, mod := range catalog.Modules {
		switch {
		case strings.Contains(strings.ToLower(mod.Title), query):
			results = append(results, ModuleResult{Module: mod, MatchField: "title"})
		case strings.Contains(strings.ToLower(mod.Subtitle), query):
			results = append(results, ModuleResult{Module: mod, MatchField: "subtitle"})
		case strings.Contains(strings.ToLower(mod.Tag), query):
			results = append(results, ModuleResult{Module: mod, MatchField: "tag"})
		default:
			for _, outcome := range mod.Outcomes {
				if strings.Contains(strings.ToLower(outcome), query) {
					results = append(results, ModuleResult{Module: mod, MatchField: "outcome"})
					break
				}
			}
		}
	}
	return results
}

// SearchUsers matches the fixed directory by name or email substring.
func (s *SearchService) SearchUsers(query string) []UserResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < minQueryLength {
		return []UserResult{}
	}

	results := []UserResult{}
	for _, user := range catalog.Directory {
		switch {
		case strings.Contains(strings.ToLower(user.Name), query):
			results = append(results, UserResult{User: user, MatchField: "name"})
		case strings.Contains(strings.ToLower(user.Email), query):
			results = append(results, UserResult{User: user, MatchField: "email"})
		}
	}
	return results
}

// Search answers the combined endpoint; searchType is module, user or all.
func (s *SearchService) Search(query, searchType string) *SearchResult {
	result := &SearchResult{}
	switch searchType {
	case "module":
		result.Modules = s.SearchModules(query)
	case "user":
		result.Users = s.SearchUsers(query)
	default:
		result.Modules = s.SearchModules(query)
		result.Users = s.SearchUsers(query)
	}
	return result
}

package service

import "testing"

func TestSearchModulesByTitle(t *testing.T) {
	svc := NewSearchService()

	results := svc.SearchModules("git")
	if len(results) != 1 {
		t.Fatalf("expected 1 result for 'git', got %d", len(results))
	}
	if results[0].Module.ID != "branching-basics" {
		t.Fatalf("unexpected module: %s", results[0].Module.ID)
	}
	if results[0].MatchField != "title" {
		t.Fatalf("expected title match, got %q", results[0].MatchField)
	}
}

func TestSearchQueryTooShort(t *testing.T) {
	svc := NewSearchService()

	if results := svc.SearchModules("a"); len(results) != 0 {
		t.Fatalf("one-rune query must return empty, got %d results", len(results))
	}
	if results := svc.SearchModules("   "); len(results) != 0 {
		t.Fatalf("whitespace query must return empty, got %d results", len(results))
	}
	if results := svc.SearchUsers("a"); len(results) != 0 {
		t.Fatalf("one-rune user query must return empty, got %d results", len(results))
	}
}

func TestSearchMatchFieldPriority(t *testing.T) {
	svc := NewSearchService()

	// "포인터" appears in both the subtitle and an outcome of the Git
	// module; the first matching field wins.
	results := svc.SearchModules("포인터")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].MatchField != "subtitle" {
		t.Fatalf("expected subtitle to take priority, got %q", results[0].MatchField)
	}
}

func TestSearchModulesCaseInsensitive(t *testing.T) {
	svc := NewSearchService()

	upper := svc.SearchModules("GIT")
	lower := svc.SearchModules("git")
	if len(upper) != len(lower) {
		t.Fatalf("case changed result count: %d vs %d", len(upper), len(lower))
	}
}

func TestSearchUsersByNameAndEmail(t *testing.T) {
	svc := NewSearchService()

	byName := svc.SearchUsers("김서연")
	if len(byName) != 1 || byName[0].MatchField != "name" {
		t.Fatalf("name search failed: %+v", byName)
	}

	byEmail := svc.SearchUsers("junho.lee")
	if len(byEmail) != 1 || byEmail[0].MatchField != "email" {
		t.Fatalf("email search failed: %+v", byEmail)
	}
}

func TestCombinedSearchRespectsType(t *testing.T) {
	svc := NewSearchService()

	moduleOnly := svc.Search("git", "module")
	if len(moduleOnly.Modules) == 0 || len(moduleOnly.Users) != 0 {
		t.Fatalf("module-typed search leaked users: %+v", moduleOnly)
	}

	userOnly := svc.Search("minji", "user")
	if len(userOnly.Users) == 0 || len(userOnly.Modules) != 0 {
		t.Fatalf("user-typed search leaked modules: %+v", userOnly)
	}
}

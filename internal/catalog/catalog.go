// Package catalog holds the static learning content tables: modules, the
// four fixed session stages, the weakness category set, the default
// recommendation ranking and the mock user directory. Everything here is
// immutable after process start and safe for concurrent reads.
package catalog

import "cs_sprint_backend/internal/model"

type Module struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Outcomes   []string `json:"outcomes"`
	Difficulty string   `json:"difficulty"`
	Minutes    int      `json:"minutes"`
	Tag        string   `json:"tag"`
	Color      string   `json:"color"`
}

type Stage struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// TotalSessionSeconds is the full budget of one session run.
const TotalSessionSeconds = 1800

// Stages is the fixed, order-significant four-stage flow. Minutes sum to 30.
var Stages = []Stage{
	{ID: "viz", Label: "개념 시각화", Minutes: 12},
	{ID: "quiz", Label: "퀴즈", Minutes: 7},
	{ID: "apply", Label: "적용하기", Minutes: 6},
	{ID: "reflection", Label: "회고", Minutes: 3},
}

// Categories is the fixed weakness-map category set.
var Categories = []string{
	"networking",
	"concurrency",
	"version-control",
	"os-basics",
	"data-structures",
}

var Modules = []Module{
	{
		ID:       "tcp-handshake",
		Slug:     "tcp-handshake",
		Title:    "TCP 3-Way Handshake",
		Subtitle: "연결이 만들어지는 3번의 왕복",
		Outcomes: []string{
			"SYN, SYN-ACK, ACK 각 단계의 역할을 설명할 수 있다",
			"연결 수립 실패 상황을 패킷 흐름으로 추적할 수 있다",
		},
		Difficulty: "입문",
		Minutes:    30,
		Tag:        "networking",
		Color:      "#3B82F6",
	},
	{
		ID:       "branching-basics",
		Slug:     "branching-basics",
		Title:    "Git 브랜치의 원리",
		Subtitle: "포인터로 이해하는 버전 관리",
		Outcomes: []string{
			"브랜치가 커밋 포인터라는 것을 설명할 수 있다",
			"merge와 rebase의 차이를 그림으로 그릴 수 있다",
		},
		Difficulty: "입문",
		Minutes:    30,
		Tag:        "version-control",
		Color:      "#F97316",
	},
	{
		ID:       "process-vs-thread",
		Slug:     "process-vs-thread",
		Title:    "프로세스와 스레드",
		Subtitle: "운영체제가 일을 나누는 두 가지 방법",
		Outcomes: []string{
			"프로세스와 스레드의 메모리 구조 차이를 설명할 수 있다",
			"컨텍스트 스위칭 비용이 어디서 오는지 말할 수 있다",
		},
		Difficulty: "초급",
		Minutes:    30,
		Tag:        "os-basics",
		Color:      "#10B981",
	},
	{
		ID:       "race-and-locks",
		Slug:     "race-and-locks",
		Title:    "경쟁 상태와 락",
		Subtitle: "동시성 버그는 왜 재현이 어려운가",
		Outcomes: []string{
			"경쟁 상태가 발생하는 조건을 예시 코드로 보일 수 있다",
			"뮤텍스와 세마포어의 용도 차이를 설명할 수 있다",
		},
		Difficulty: "중급",
		Minutes:    30,
		Tag:        "concurrency",
		Color:      "#8B5CF6",
	},
	{
		ID:       "hash-table-internals",
		Slug:     "hash-table-internals",
		Title:    "해시 테이블의 내부",
		Subtitle: "O(1)은 공짜가 아니다",
		Outcomes: []string{
			"해시 충돌 해결 전략 두 가지를 비교할 수 있다",
			"로드 팩터와 리사이징의 관계를 설명할 수 있다",
		},
		Difficulty: "초급",
		Minutes:    30,
		Tag:        "data-structures",
		Color:      "#EC4899",
	},
	{
		ID:       "dns-journey",
		Slug:     "dns-journey",
		Title:    "DNS 질의의 여정",
		Subtitle: "주소창 입력부터 IP까지",
		Outcomes: []string{
			"재귀 질의와 반복 질의를 구분할 수 있다",
			"캐시 계층이 응답 속도에 미치는 영향을 설명할 수 있다",
		},
		Difficulty: "입문",
		Minutes:    30,
		Tag:        "networking",
		Color:      "#06B6D4",
	},
}

// DefaultRecommendations is the fixed ranked list served to every caller.
// Weakness-aware personalization is a stated future extension and is
// intentionally not wired to stored scores yet.
var DefaultRecommendations = []model.Recommendation{
	{ModuleID: "tcp-handshake", Title: "TCP 3-Way Handshake", Reason: "가장 많이 선택된 입문 모듈", Rank: 1},
	{ModuleID: "branching-basics", Title: "Git 브랜치의 원리", Reason: "실무 비중이 높은 주제", Rank: 2},
	{ModuleID: "hash-table-internals", Title: "해시 테이블의 내부", Reason: "면접 단골 주제", Rank: 3},
}

type DirectoryUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Handle string `json:"handle"`
}

// Directory is the mock user list backing user search.
var Directory = []DirectoryUser{
	{ID: 1, Name: "김서연", Email: "seoyeon.kim@example.com", Handle: "seoyeon"},
	{ID: 2, Name: "이준호", Email: "junho.lee@example.com", Handle: "junho"},
	{ID: 3, Name: "박민지", Email: "minji.park@example.com", Handle: "minji"},
	{ID: 4, Name: "최다은", Email: "daeun.choi@example.com", Handle: "daeun"},
	{ID: 5, Name: "정우진", Email: "woojin.jung@example.com", Handle: "woojin"},
}

var moduleByID = func() map[string]*Module {
	m := make(map[string]*Module, len(Modules))
	for i := range Modules {
		m[Modules[i].ID] = &Modules[i]
	}
	return m
}()

var moduleBySlug = func() map[string]*Module {
	m := make(map[string]*Module, len(Modules))
	for i := range Modules {
		m[Modules[i].Slug] = &Modules[i]
	}
	return m
}()

func ModuleByID(id string) (*Module, bool) {
	mod, ok := moduleByID[id]
	return mod, ok
}

func ModuleBySlug(slug string) (*Module, bool) {
	mod, ok := moduleBySlug[slug]
	return mod, ok
}

// Resolve looks a module up by id first, then by slug.
func Resolve(ref string) (*Module, bool) {
	if mod, ok := moduleByID[ref]; ok {
		return mod, true
	}
	mod, ok := moduleBySlug[ref]
	return mod, ok
}

func StageByID(id string) (*Stage, bool) {
	for i := range Stages {
		if Stages[i].ID == id {
			return &Stages[i], true
		}
	}
	return nil, false
}

func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/open-salary/salary-board/internal/domain/model"
)

type recordingSalaryRepo struct {
	lastQuery model.SalaryQuery
	rows      []model.CompensationRow
	total     int64
	calls     int
}

func (r *recordingSalaryRepo) Exists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *recordingSalaryRepo) Create(_ context.Context, _ model.SalaryRecord) error {
	return nil
}

func (r *recordingSalaryRepo) FindPage(_ context.Context, query model.SalaryQuery) ([]model.CompensationRow, int64, error) {
	r.calls++
	r.lastQuery = query
	return r.rows, r.total, nil
}

func (r *recordingSalaryRepo) DeleteAll(_ context.Context) error {
	return nil
}

type memoryQueryCache struct {
	entries map[string][]byte
	lastTTL time.Duration
}

func newMemoryQueryCache() *memoryQueryCache {
	return &memoryQueryCache{entries: map[string][]byte{}}
}

func (c *memoryQueryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *memoryQueryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.entries[key] = value
	c.lastTTL = ttl
	return nil
}

func (c *memoryQueryCache) Flush(_ context.Context) error {
	c.entries = map[string][]byte{}
	return nil
}

func newQueryServiceForTest(salaries *recordingSalaryRepo, cache *memoryQueryCache) QueryService {
	args := QueryArgs{
		Salaries:    salaries,
		Occupations: newFakeOccupationRepo(&callLog{}),
		CacheTTL:    time.Minute,
		Logger:      nopLogger{},
	}
	if cache != nil {
		args.Cache = cache
	}
	return NewQueryService(args)
}

func TestListCompensationClampsPaging(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{name: "ページ0は1に丸める", page: 0, limit: 100, wantLimit: 100, wantPage: 1, wantOffset: 0},
		{name: "負のページは1に丸める", page: -5, limit: 100, wantLimit: 100, wantPage: 1, wantOffset: 0},
		{name: "件数0は下限に丸める", page: 1, limit: 0, wantLimit: 1, wantPage: 1, wantOffset: 0},
		{name: "件数の上限超過は上限に丸める", page: 1, limit: 99999, wantLimit: 10000, wantPage: 1, wantOffset: 0},
		{name: "3ページ目のオフセット", page: 3, limit: 50, wantLimit: 50, wantPage: 3, wantOffset: 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			salaries := &recordingSalaryRepo{}
			service := newQueryServiceForTest(salaries, nil)

			result, err := service.ListCompensation(context.Background(), CompensationParams{
				Page:  c.page,
				Limit: c.limit,
			})
			if err != nil {
				t.Fatalf("ListCompensation() error = %v", err)
			}

			if result.Page != c.wantPage {
				t.Errorf("Page = %d, want %d", result.Page, c.wantPage)
			}
			if result.Limit != c.wantLimit {
				t.Errorf("Limit = %d, want %d", result.Limit, c.wantLimit)
			}
			if salaries.lastQuery.Offset != c.wantOffset {
				t.Errorf("Offset = %d, want %d", salaries.lastQuery.Offset, c.wantOffset)
			}
		})
	}
}

func TestListCompensationTotalPages(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "0件は0ページ", total: 0, limit: 1000, want: 0},
		{name: "割り切れる件数", total: 2000, limit: 1000, want: 2},
		{name: "端数は切り上げ", total: 1001, limit: 1000, want: 2},
		{name: "1件でも1ページ", total: 1, limit: 1000, want: 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			salaries := &recordingSalaryRepo{total: c.total}
			service := newQueryServiceForTest(salaries, nil)

			result, err := service.ListCompensation(context.Background(), CompensationParams{Page: 1, Limit: c.limit})
			if err != nil {
				t.Fatalf("ListCompensation() error = %v", err)
			}
			if result.TotalPages != c.want {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, c.want)
			}
		})
	}
}

func TestListCompensationOrderMapping(t *testing.T) {
	cases := []struct {
		name  string
		order string
		want  model.SortOrder
	}{
		{name: "ascは昇順", order: "asc", want: model.OrderAsc},
		{name: "descは降順", order: "desc", want: model.OrderDesc},
		{name: "未指定は降順", order: "", want: model.OrderDesc},
		{name: "不明な値は降順", order: "sideways", want: model.OrderDesc},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			salaries := &recordingSalaryRepo{}
			service := newQueryServiceForTest(salaries, nil)

			if _, err := service.ListCompensation(context.Background(), CompensationParams{Page: 1, Limit: 10, Order: c.order}); err != nil {
				t.Fatalf("ListCompensation() error = %v", err)
			}
			if salaries.lastQuery.Order != c.want {
				t.Errorf("Order = %q, want %q", salaries.lastQuery.Order, c.want)
			}
			if salaries.lastQuery.Sort != model.SortByAnnualSalary {
				t.Errorf("Sort = %q, want %q", salaries.lastQuery.Sort, model.SortByAnnualSalary)
			}
		})
	}
}

func TestListCompensationPassesFilters(t *testing.T) {
	salaries := &recordingSalaryRepo{}
	service := newQueryServiceForTest(salaries, nil)

	ageFrom := 25
	ageTo := 35
	params := CompensationParams{
		Page:          1,
		Limit:         10,
		OccupationIDs: []string{"occ-1", "occ-2"},
		AgeFrom:       &ageFrom,
		AgeTo:         &ageTo,
	}

	if _, err := service.ListCompensation(context.Background(), params); err != nil {
		t.Fatalf("ListCompensation() error = %v", err)
	}

	query := salaries.lastQuery
	if len(query.OccupationIDs) != 2 || query.OccupationIDs[0] != "occ-1" || query.OccupationIDs[1] != "occ-2" {
		t.Errorf("OccupationIDs = %v, want [occ-1 occ-2]", query.OccupationIDs)
	}
	if query.AgeFrom == nil || *query.AgeFrom != 25 {
		t.Errorf("AgeFrom = %v, want 25", query.AgeFrom)
	}
	if query.AgeTo == nil || *query.AgeTo != 35 {
		t.Errorf("AgeTo = %v, want 35", query.AgeTo)
	}
}

func TestListCompensationUsesCache(t *testing.T) {
	salaries := &recordingSalaryRepo{
		rows:  []model.CompensationRow{{CompanyName: "A社", JobTitle: "エンジニア", Age: 30, AnnualSalary: 800}},
		total: 1,
	}
	cache := newMemoryQueryCache()
	service := newQueryServiceForTest(salaries, cache)

	params := CompensationParams{Page: 1, Limit: 10}

	first, err := service.ListCompensation(context.Background(), params)
	if err != nil {
		t.Fatalf("ListCompensation() error = %v", err)
	}
	if salaries.calls != 1 {
		t.Fatalf("FindPage calls = %d, want 1", salaries.calls)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("cache entries = %d, want 1", len(cache.entries))
	}
	if cache.lastTTL != time.Minute {
		t.Errorf("cache TTL = %v, want 1m", cache.lastTTL)
	}

	second, err := service.ListCompensation(context.Background(), params)
	if err != nil {
		t.Fatalf("ListCompensation() error = %v", err)
	}
	if salaries.calls != 1 {
		t.Errorf("FindPage calls = %d, want 1 (cache hit expected)", salaries.calls)
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("cached result differs:\nfirst  = %s\nsecond = %s", firstJSON, secondJSON)
	}
}

func TestListCompensationCacheKeyDependsOnFilters(t *testing.T) {
	salaries := &recordingSalaryRepo{}
	cache := newMemoryQueryCache()
	service := newQueryServiceForTest(salaries, cache)

	if _, err := service.ListCompensation(context.Background(), CompensationParams{Page: 1, Limit: 10}); err != nil {
		t.Fatalf("ListCompensation() error = %v", err)
	}
	if _, err := service.ListCompensation(context.Background(), CompensationParams{Page: 1, Limit: 10, OccupationIDs: []string{"occ-1"}}); err != nil {
		t.Fatalf("ListCompensation() error = %v", err)
	}

	if salaries.calls != 2 {
		t.Errorf("FindPage calls = %d, want 2 (distinct cache keys expected)", salaries.calls)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/open-salary/salary-board/internal/domain/model"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"github.com/open-salary/salary-board/internal/logger"
)

const (
	minLimit = 1
	maxLimit = 10000
)

// CompensationParamsは、一覧APIのクエリパラメータです。
// 不正な値はエラーにせず、有効な既定値へ丸められます。
type CompensationParams struct {
	Page          int
	Limit         int
	Sort          string
	Order         string
	OccupationIDs []string
	AgeFrom       *int
	AgeTo         *int
}

// CompensationPageは、一覧APIのレスポンスです。
type CompensationPage struct {
	Data       []model.CompensationRow `json:"data"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"totalPages"`
}

// QueryServiceは、蓄積済みの給与レコードの読み取りを提供します。
type QueryService interface {
	ListCompensation(ctx context.Context, params CompensationParams) (CompensationPage, error)
	ListOccupations(ctx context.Context) ([]model.Occupation, error)
}

// QueryArgsは、クエリサービスを構築するための引数を保持します。
type QueryArgs struct {
	Salaries    repository.SalaryRepository
	Occupations repository.OccupationRepository
	Cache       repository.QueryCache
	CacheTTL    time.Duration
	Logger      logger.AppLogger
}

type queryService struct {
	salaries    repository.SalaryRepository
	occupations repository.OccupationRepository
	cache       repository.QueryCache
	cacheTTL    time.Duration
	logger      logger.AppLogger
}

func NewQueryService(args QueryArgs) QueryService {
	return &queryService{
		salaries:    args.Salaries,
		occupations: args.Occupations,
		cache:       args.Cache,
		cacheTTL:    args.CacheTTL,
		logger:      args.Logger,
	}
}

// ListCompensationは、絞り込み・並び替え・ページングを適用した一覧を返します。
// ページ番号は1未満を1に、件数は[1, 10000]の範囲に丸めます。
// ソートキーはannualSalaryのみ認識し、それ以外は既定の年収降順に落とします。
func (s *queryService) ListCompensation(ctx context.Context, params CompensationParams) (CompensationPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	limit := params.Limit
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	order := model.OrderDesc
	if params.Order == string(model.OrderAsc) {
		order = model.OrderAsc
	}

	query := model.SalaryQuery{
		OccupationIDs: params.OccupationIDs,
		AgeFrom:       params.AgeFrom,
		AgeTo:         params.AgeTo,
		Sort:          model.SortByAnnualSalary,
		Order:         order,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}

	cacheKey := compensationCacheKey(query, page)
	if s.cache != nil {
		if cached, found, err := s.cache.Get(ctx, cacheKey); err != nil {
			s.logger.Warn("キャッシュの取得に失敗しました", "error", err)
		} else if found {
			var result CompensationPage
			if err := json.Unmarshal(cached, &result); err == nil {
				return result, nil
			}
			s.logger.Warn("キャッシュの復元に失敗しました", "key", cacheKey)
		}
	}

	rows, total, err := s.salaries.FindPage(ctx, query)
	if err != nil {
		return CompensationPage{}, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	result := CompensationPage{
		Data:       rows,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, cacheKey, encoded, s.cacheTTL); err != nil {
				s.logger.Warn("キャッシュの保存に失敗しました", "error", err)
			}
		}
	}

	return result, nil
}

// ListOccupationsは、全ての職種を名前の昇順で返します。
func (s *queryService) ListOccupations(ctx context.Context) ([]model.Occupation, error) {
	return s.occupations.FindAllByNameAsc(ctx)
}

func compensationCacheKey(query model.SalaryQuery, page int) string {
	return fmt.Sprintf("%d:%d:%s:%s:%s:%s",
		page,
		query.Limit,
		query.Order,
		strings.Join(query.OccupationIDs, ","),
		formatOptionalInt(query.AgeFrom),
		formatOptionalInt(query.AgeTo),
	)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

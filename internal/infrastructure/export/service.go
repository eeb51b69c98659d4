// Package export renders substitution plans and playtime summaries as CSV
// and XLSX documents. Rendering is read-only against the usecase layer.
package export

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/haakonrs/kampplan/internal/usecase"
)

const defaultWorkers = 4

// MatchData is everything one match contributes to an export document.
type MatchData struct {
	Grid     usecase.PlanGrid
	Playtime usecase.MatchPlaytime
}

// Service assembles export documents from plan grids and playtime
// summaries. Multi-match workbooks fetch per-match data concurrently on a
// bounded pool; the workbook itself is written serially since the XLSX
// writer is not safe for concurrent use.
type Service struct {
	plans     *usecase.PlanService
	playtimes *usecase.PlaytimeService
	workers   int
}

func NewService(plans *usecase.PlanService, playtimes *usecase.PlaytimeService, workers int) *Service {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{
		plans:     plans,
		playtimes: playtimes,
		workers:   workers,
	}
}

// MatchCSV renders one match's plan grid and playtime summary as CSV.
func (s *Service) MatchCSV(ctx context.Context, ownerID, matchID string) ([]byte, error) {
	data, err := s.fetch(ctx, ownerID, matchID)
	if err != nil {
		return nil, err
	}
	return renderCSV(data)
}

// Workbook renders one sheet per match into a single XLSX workbook. Match
// ids are deduplicated; sheet order follows the request order.
func (s *Service) Workbook(ctx context.Context, ownerID string, matchIDs []string) ([]byte, error) {
	ids := dedupe(matchIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one match id is required", usecase.ErrInvalidInput)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create export pool: %w", err)
	}
	defer pool.Release()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		data = make([]MatchData, len(ids))
		errs = make([]error, 0, len(ids))
	)
	for i, matchID := range ids {
		i, matchID := i, matchID
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			d, fetchErr := s.fetch(ctx, ownerID, matchID)
			if fetchErr != nil {
				mu.Lock()
				errs = append(errs, fetchErr)
				mu.Unlock()
				return
			}
			data[i] = d
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submit export task: %w", submitErr))
			mu.Unlock()
		}
	}
	wg.Wait()

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return nil, errs[0]
	}

	return renderWorkbook(data)
}

func (s *Service) fetch(ctx context.Context, ownerID, matchID string) (MatchData, error) {
	grid, err := s.plans.Grid(ctx, ownerID, matchID)
	if err != nil {
		return MatchData{}, err
	}

	summary, err := s.playtimes.Summary(ctx, ownerID, matchID)
	if err != nil {
		return MatchData{}, err
	}

	return MatchData{Grid: grid, Playtime: summary}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	httpClient "github.com/iudanet/bookkeeper/internal/client/api"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// DefaultConcurrency количество одновременных операций внутри фазы
const DefaultConcurrency = 4

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс сверки локального кэша с сервером
type Service interface {
	// Sync читает оба хранилища и выполняет один проход сверки
	Sync(ctx context.Context) (*Result, error)

	// Reconcile выполняет проход сверки по уже прочитанным спискам
	Reconcile(ctx context.Context, local, remote []models.Book) (*Result, error)

	// LastSync возвращает итог последнего завершенного прохода
	LastSync(ctx context.Context) (storage.SyncInfo, error)
}

// Result итог одного прохода сверки
type Result struct {
	PassID  string        // идентификатор прохода для корреляции логов
	Books   []models.Book // объединенный список, по одной записи на title
	Pushed  int           // локальные записи, созданные на сервере
	Pulled  int           // удаленные записи, вставленные в локальный кэш
	Updated int           // записи, отправленные на сервер из-за расхождения
	Failed  int           // записи, завершившиеся ошибкой
	Skipped int           // повторы title внутри фазы и записи сервера без числового id
}

type service struct {
	apiClient       httpClient.BookAPI
	cache           storage.BookCache
	metadataStorage storage.MetadataStorage
	logger          *slog.Logger
	now             func() time.Time
	concurrency     int
	running         atomic.Bool
}

// NewService creates a new reconciliation service.
// concurrency <= 0 означает DefaultConcurrency.
func NewService(
	apiClient httpClient.BookAPI,
	cache storage.BookCache,
	metadataStorage storage.MetadataStorage,
	concurrency int,
	logger *slog.Logger,
) Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &service{
		apiClient:       apiClient,
		cache:           cache,
		metadataStorage: metadataStorage,
		logger:          logger,
		now:             time.Now,
		concurrency:     concurrency,
	}
}

// Sync reads local and remote lists and reconciles them
func (s *service) Sync(ctx context.Context) (*Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrPassInProgress
	}
	defer s.running.Store(false)

	local, err := s.cache.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local books: %w", err)
	}

	// Чтение с сервера fail-soft: при ошибке список пуст
	remote := s.apiClient.ListBooks(ctx)

	return s.reconcile(ctx, local, remote)
}

// Reconcile performs one pass over the given snapshots
func (s *service) Reconcile(ctx context.Context, local, remote []models.Book) (*Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrPassInProgress
	}
	defer s.running.Store(false)

	return s.reconcile(ctx, local, remote)
}

// LastSync returns summary of the last completed pass
func (s *service) LastSync(ctx context.Context) (storage.SyncInfo, error) {
	return s.metadataStorage.GetLastSync(ctx)
}

// diffItem локальные значения, адресованные удаленной записи с тем же title
type diffItem struct {
	book     models.Book
	remoteID int64
}

// counters счетчики прохода, изменяются из нескольких горутин
type counters struct {
	pushed  atomic.Int32
	pulled  atomic.Int32
	updated atomic.Int32
	failed  atomic.Int32
}

func (s *service) reconcile(ctx context.Context, local, remote []models.Book) (*Result, error) {
	result := &Result{PassID: uuid.NewString()}
	logger := s.logger.With("pass_id", result.PassID)

	logger.Info("Starting reconciliation", "local", len(local), "remote", len(remote))

	remoteByTitle := make(map[string]models.Book, len(remote))
	for _, b := range remote {
		if _, ok := remoteByTitle[b.Title]; !ok {
			remoteByTitle[b.Title] = b
		}
	}

	localTitles := make(map[string]struct{}, len(local))
	for _, b := range local {
		localTitles[b.Title] = struct{}{}
	}

	// Рабочие списки фаз. Повтор title внутри фазы пропускается.
	var (
		push []models.Book
		pull []models.Book
		diff []diffItem
	)

	pushed := make(map[string]struct{})
	diffed := make(map[string]struct{})
	for _, b := range local {
		r, inRemote := remoteByTitle[b.Title]
		if !inRemote {
			if _, dup := pushed[b.Title]; dup {
				result.Skipped++
				continue
			}
			pushed[b.Title] = struct{}{}
			push = append(push, b)
			continue
		}

		if _, dup := diffed[b.Title]; dup {
			result.Skipped++
			continue
		}
		diffed[b.Title] = struct{}{}
		if b.SameContent(r) {
			continue
		}
		if r.ID == 0 {
			// Без числового id запись нельзя адресовать через PUT
			logger.Warn("Remote book has no numeric id, skipping update", "title", b.Title)
			result.Skipped++
			continue
		}
		diff = append(diff, diffItem{book: b, remoteID: r.ID})
	}

	pulled := make(map[string]struct{})
	for _, b := range remote {
		if _, inLocal := localTitles[b.Title]; inLocal {
			continue
		}
		if _, dup := pulled[b.Title]; dup {
			result.Skipped++
			continue
		}
		pulled[b.Title] = struct{}{}
		pull = append(pull, b)
	}

	c := &counters{}

	s.pushPhase(ctx, logger, push, local, c)
	s.pullPhase(ctx, logger, pull, c)
	s.diffPhase(ctx, logger, diff, c)

	result.Pushed = int(c.pushed.Load())
	result.Pulled = int(c.pulled.Load())
	result.Updated = int(c.updated.Load())
	result.Failed = int(c.failed.Load())

	// Перечитываем оба хранилища
	localAfter, err := s.cache.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local books after reconciliation: %w", err)
	}
	remoteAfter := s.apiClient.ListBooks(ctx)

	result.Books = Merge(localAfter, remoteAfter)

	logger.Info("Reconciliation completed",
		"pushed", result.Pushed,
		"pulled", result.Pulled,
		"updated", result.Updated,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"books", len(result.Books))

	info := storage.SyncInfo{
		FinishedAt: s.now(),
		PassID:     result.PassID,
		Pushed:     result.Pushed,
		Pulled:     result.Pulled,
		Updated:    result.Updated,
		Failed:     result.Failed,
	}
	if err := s.metadataStorage.SaveLastSync(ctx, info); err != nil {
		logger.Warn("Failed to save sync metadata", "error", err)
	}

	return result, nil
}

// fanOut вызывает fn для индексов [0, n) не более чем в s.concurrency горутинах.
// Ошибка одной записи не останавливает остальные.
func (s *service) fanOut(n int, fn func(i int)) {
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}

	_ = g.Wait()
}

// pushPhase создает на сервере записи, которых там нет.
// Если сервер назначил другой id, локальная строка получает его, когда этот
// id свободен в локальном снимке local; иначе строка сохраняет свой id.
func (s *service) pushPhase(ctx context.Context, logger *slog.Logger, books, local []models.Book, c *counters) {
	if len(books) == 0 {
		return
	}

	assigned := make([]int64, len(books))
	created := make([]bool, len(books))
	s.fanOut(len(books), func(i int) {
		book := books[i]
		book.ID = 0 // сервер назначает id сам

		remote, err := s.apiClient.CreateBook(ctx, book)
		if err != nil {
			logger.Warn("Failed to push book", "title", book.Title, "error", err)
			c.failed.Add(1)
			return
		}
		assigned[i] = remote.ID
		created[i] = true
	})

	var moves []int
	for i := range books {
		if !created[i] {
			continue
		}
		if assigned[i] == 0 || assigned[i] == books[i].ID {
			c.pushed.Add(1)
			continue
		}
		moves = append(moves, i)
	}

	moves = s.dropCollisions(logger, books, local, assigned, moves, c)

	// Переназначаем id в два шага через временные отрицательные значения,
	// чтобы перестановка id между записями не упиралась в PRIMARY KEY.
	staged := make([]bool, len(books))
	for _, i := range moves {
		if err := s.cache.ReassignID(ctx, books[i].Title, -assigned[i]); err != nil {
			logger.Warn("Failed to patch local id", "title", books[i].Title, "remote_id", assigned[i], "error", err)
			c.failed.Add(1)
			continue
		}
		staged[i] = true
	}

	for _, i := range moves {
		if !staged[i] {
			continue
		}
		if err := s.cache.ReassignID(ctx, books[i].Title, assigned[i]); err != nil {
			logger.Warn("Failed to patch local id", "title", books[i].Title, "remote_id", assigned[i], "error", err)
			c.failed.Add(1)
			s.restoreID(ctx, logger, books[i])
			continue
		}
		c.pushed.Add(1)
	}
}

// dropCollisions убирает из moves записи, чей новый id занят локальной строкой,
// которая сама не переезжает. Такие записи считаются отправленными и
// сохраняют локальный id.
func (s *service) dropCollisions(logger *slog.Logger, books, local []models.Book, assigned []int64, moves []int, c *counters) []int {
	holder := make(map[int64]string, len(local))
	for _, b := range local {
		holder[b.ID] = b.Title
	}

	// Отказ от переезда освобождает меньше id, поэтому повторяем до неподвижной точки
	for {
		moving := make(map[string]struct{}, len(moves))
		for _, i := range moves {
			moving[books[i].Title] = struct{}{}
		}

		kept := moves[:0:0]
		for _, i := range moves {
			title, taken := holder[assigned[i]]
			if _, alsoMoving := moving[title]; taken && !alsoMoving {
				logger.Warn("Server id is taken by another local book, keeping local id",
					"title", books[i].Title,
					"local_id", books[i].ID,
					"remote_id", assigned[i],
					"holder", title)
				c.pushed.Add(1)
				continue
			}
			kept = append(kept, i)
		}

		if len(kept) == len(moves) {
			return kept
		}
		moves = kept
	}
}

// restoreID возвращает строке исходный id после неудачного второго шага
func (s *service) restoreID(ctx context.Context, logger *slog.Logger, book models.Book) {
	if err := s.cache.ReassignID(ctx, book.Title, book.ID); err != nil {
		logger.Error("Failed to restore local id", "title", book.Title, "local_id", book.ID, "error", err)
	}
}

// pullPhase вставляет в локальный кэш записи, которых там нет
func (s *service) pullPhase(ctx context.Context, logger *slog.Logger, books []models.Book, c *counters) {
	s.fanOut(len(books), func(i int) {
		book := books[i]
		if _, err := s.cache.InsertBook(ctx, &book); err != nil {
			logger.Warn("Failed to pull book", "title", book.Title, "error", err)
			c.failed.Add(1)
			return
		}
		c.pulled.Add(1)
	})
}

// diffPhase отправляет на сервер локальные значения расходящихся записей
func (s *service) diffPhase(ctx context.Context, logger *slog.Logger, items []diffItem, c *counters) {
	s.fanOut(len(items), func(i int) {
		book := items[i].book
		book.ID = items[i].remoteID

		if _, err := s.apiClient.UpdateBook(ctx, book); err != nil {
			logger.Warn("Failed to update remote book", "title", book.Title, "remote_id", book.ID, "error", err)
			c.failed.Add(1)
			return
		}
		c.updated.Add(1)
	})
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
)

// resourceService implements the generic CRUD use case over one repository.
// notFound carries the resource-specific 404 so both instantiations report
// their own kind.
type resourceService[T any] struct {
	repo     repository.RecordRepository[T]
	notFound *domainerrors.BaseError
	logger   *slog.Logger
}

// NewItemService creates the items resource service.
func NewItemService(repo repository.ItemRepository, logger *slog.Logger) usecase.ResourceUsecase[entity.Item] {
	return &resourceService[entity.Item]{
		repo:     repo,
		notFound: domainerrors.ErrItemNotFound,
		logger:   logger,
	}
}

// NewOutOfStockService creates the out-of-stock resource service.
func NewOutOfStockService(repo repository.OutOfStockRepository, logger *slog.Logger) usecase.ResourceUsecase[entity.OutOfStockRequest] {
	return &resourceService[entity.OutOfStockRequest]{
		repo:     repo,
		notFound: domainerrors.ErrOutOfStockNotFound,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *resourceService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListAll returns every record in the collection.
func (s *resourceService[T]) ListAll(ctx context.Context) ([]T, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.internalError(ctx, err, "failed to list records")
	}

	return records, nil
}

// GetByID returns the record with the given id.
func (s *resourceService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(ctx, err, "failed to find record")
	}

	return record, nil
}

// Create inserts the payload and returns the database-assigned id.
func (s *resourceService[T]) Create(ctx context.Context, payload *T) (string, error) {
	id, err := s.repo.Insert(ctx, payload)
	if err != nil {
		return "", s.internalError(ctx, err, "failed to insert record")
	}

	return id, nil
}

// Replace fully replaces the record with the given id.
func (s *resourceService[T]) Replace(ctx context.Context, id string, payload *T) error {
	if err := s.repo.Replace(ctx, id, payload); err != nil {
		return s.mapLookupError(ctx, err, "failed to replace record")
	}

	return nil
}

// Delete removes the record with the given id.
func (s *resourceService[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapLookupError(ctx, err, "failed to delete record")
	}

	return nil
}

// mapLookupError maps repository sentinels to application errors. A malformed
// id is reported exactly like an absent one.
func (s *resourceService[T]) mapLookupError(ctx context.Context, err error, details string) error {
	if errors.Is(err, repository.ErrRecordNotFound) || errors.Is(err, repository.ErrInvalidRecordID) {
		return s.notFound.WrapMessage(details)
	}

	return s.internalError(ctx, err, details)
}

// internalError logs the underlying failure server-side; the returned error
// carries only the generic operation phrase, never database internals.
func (s *resourceService[T]) internalError(ctx context.Context, err error, details string) error {
	s.log(ctx).Error(details, slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, details)
}

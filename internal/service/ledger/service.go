// Package ledger реализует журнал баллов: append-only записи и баланс как свертка
package ledger

import (
	"context"
	"fmt"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	"github.com/prepmate/MIP-BookingService/internal/service/ledger/models"
)

// Service сервис журнала баллов
//
// Единственный источник истины - таблица points_transactions: баланс нигде
// не хранится как отдельное число, только вычисляется сверткой журнала.
// Redis держит проекцию баланса и инвалидируется на каждый append.
type Service struct {
	pointsRepo PointsRepository
	cache      BalanceCache
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса журнала
// cache может быть nil - тогда баланс всегда считается по БД
func NewService(
	pointsRepo PointsRepository,
	cache BalanceCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		pointsRepo: pointsRepo,
		cache:      cache,
		txManager:  txManager,
		logger:     logger,
	}
}

// Earn начисляет пользователю баллы
func (s *Service) Earn(ctx context.Context, userID int64, amount int64, description string) (*domain.PointsTransaction, error) {
	return s.append(ctx, userID, amount, domain.TransactionEarned, description)
}

// Refund возвращает пользователю баллы
func (s *Service) Refund(ctx context.Context, userID int64, amount int64, description string) (*domain.PointsTransaction, error) {
	return s.append(ctx, userID, amount, domain.TransactionRefunded, description)
}

// Spend списывает баллы с баланса пользователя
// Проверка баланса и запись выполняются в одной serializable-транзакции,
// поэтому конкурентные списания не могут увести баланс в минус.
// Если вызывающий уже открыл транзакцию, Spend присоединяется к ней.
func (s *Service) Spend(ctx context.Context, userID int64, amount int64, description string) (*domain.PointsTransaction, error) {
	if amount <= 0 {
		s.logger.Warn("Spend: invalid amount=%d for user=%d", amount, userID)
		return nil, ErrInvalidAmount
	}

	var created *domain.PointsTransaction

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		balance, err := s.pointsRepo.SumByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("%w: Spend - sum balance: %v", ErrInternal, err)
		}

		if balance < amount {
			s.logger.Warn("Spend: insufficient balance for user=%d: required=%d, available=%d",
				userID, amount, balance)
			return &InsufficientBalanceError{Required: amount, Available: balance}
		}

		created, err = s.pointsRepo.Append(ctx, &domain.PointsTransaction{
			UserID:      userID,
			Amount:      amount,
			Type:        domain.TransactionSpent,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("%w: Spend - append transaction: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, userID)

	s.logger.Info("Spend: user=%d spent %d points, transaction id=%d", userID, amount, created.ID)
	return created, nil
}

// Balance возвращает текущий баланс пользователя
// Сначала пробует кэш, при промахе считает свертку по БД и кэширует результат
func (s *Service) Balance(ctx context.Context, userID int64) (*models.BalanceResponse, error) {
	if s.cache != nil {
		if balance, err := s.cache.Get(ctx, userID); err == nil {
			return &models.BalanceResponse{UserID: userID, Balance: balance}, nil
		}
	}

	balance, err := s.pointsRepo.SumByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Balance: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Balance - sum balance: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, balance); err != nil {
			// Кэш не критичен: логируем и отдаем баланс из БД
			s.logger.Warn("Balance: failed to cache balance for user=%d: %v", userID, err)
		}
	}

	return &models.BalanceResponse{UserID: userID, Balance: balance}, nil
}

// History возвращает страницу истории транзакций пользователя, сначала новые
func (s *Service) History(ctx context.Context, req *models.GetHistoryRequest) (*models.HistoryResponse, error) {
	req.Normalize()

	offset := uint64(req.Page-1) * uint64(req.PageSize)

	transactions, err := s.pointsRepo.ListByUser(ctx, req.UserID, uint64(req.PageSize), offset)
	if err != nil {
		s.logger.Error("History: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: History - list transactions: %v", ErrInternal, err)
	}

	s.logger.Info("History: fetched %d transactions for user=%d (page=%d, pageSize=%d)",
		len(transactions), req.UserID, req.Page, req.PageSize)
	return models.FromDomainTransactionList(transactions, req.Page, req.PageSize), nil
}

// append добавляет пополняющую запись (earned или refunded)
func (s *Service) append(ctx context.Context, userID int64, amount int64, txType domain.TransactionType, description string) (*domain.PointsTransaction, error) {
	if amount <= 0 {
		s.logger.Warn("append: invalid amount=%d for user=%d, type=%s", amount, userID, txType)
		return nil, ErrInvalidAmount
	}

	created, err := s.pointsRepo.Append(ctx, &domain.PointsTransaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
	})
	if err != nil {
		s.logger.Error("append: repository error for user=%d, type=%s: %v", userID, txType, err)
		return nil, fmt.Errorf("%w: append transaction: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, userID)

	s.logger.Info("append: user=%d got %d points (%s), transaction id=%d", userID, amount, txType, created.ID)
	return created, nil
}

// invalidateCache сбрасывает проекцию баланса после записи в журнал
// Ошибки кэша не влияют на результат операции.
//
// Внутри внешней транзакции сброс происходит до ее коммита: конкурентный
// Balance может успеть закэшировать баланс до коммита. Устаревшее значение
// живет не дольше TTL кэша, журнал при этом всегда точен
func (s *Service) invalidateCache(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("invalidateCache: failed for user=%d: %v", userID, err)
	}
}

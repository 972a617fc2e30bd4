package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/ratelimit"
	"github.com/cwrk-planet/geo-room-service/internal/storage"

	"github.com/google/uuid"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
}

// Publisher получает каждое принятое сообщение после коммита (WS-хаб).
type Publisher interface {
	Publish(msg domain.Message)
}

type AccessService struct {
	store     storage.Store
	now       Clock
	limiter   Limiter
	publisher Publisher
	maxLen    int
}

type AccessOption func(*AccessService)

func WithLimiter(l Limiter) AccessOption {
	return func(s *AccessService) {
		if l != nil {
			s.limiter = l
		}
	}
}

func WithPublisher(p Publisher) AccessOption {
	return func(s *AccessService) { s.publisher = p }
}

// WithMaxMessageLength: 0 и меньше снимает ограничение.
func WithMaxMessageLength(n int) AccessOption {
	return func(s *AccessService) { s.maxLen = n }
}

func NewAccessService(store storage.Store, now Clock, opts ...AccessOption) *AccessService {
	s := &AccessService{
		store:   store,
		now:     now,
		limiter: ratelimit.Noop{},
		maxLen:  domain.DefaultMaxMessageLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckAccess вычисляет состояние окна (user, room) на текущий момент. Ничего не пишет.
func (s *AccessService) CheckAccess(ctx context.Context, userID, roomID string) (domain.AccessStatus, error) {
	if _, err := s.store.GetRoom(ctx, roomID); err != nil {
		return domain.AccessStatus{}, fmt.Errorf("roomRepo.Get: %w", err)
	}

	rec, err := s.store.GetAccess(ctx, userID, roomID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return domain.AccessStatus{}, fmt.Errorf("accessRepo.Get: %w", err)
		}
		rec = nil
	}
	return domain.EvaluateAccess(rec, s.now.stamp()), nil
}

// AdmitSend единственный путь записи сообщения.
// Проверка окна, первая запись доступа, append и добавление в visitors идут одной транзакцией.
func (s *AccessService) AdmitSend(ctx context.Context, userID, roomID, body string) (*domain.Message, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	body, err := domain.NormalizeBody(body, s.maxLen)
	if err != nil {
		return nil, err
	}

	// Истёкшее окно не закрывается обратно, поэтому отказ до лимитера не тратит квоту.
	// Транзакция ниже всё равно перепроверяет окно под блокировкой комнаты.
	st, err := s.CheckAccess(ctx, userID, roomID)
	if err != nil {
		return nil, err
	}
	if st.State == domain.AccessExpired {
		return nil, domain.ErrAccessExpired
	}

	if err := s.checkRate(ctx, userID); err != nil {
		return nil, err
	}

	var (
		msg   *domain.Message
		first bool
	)
	err = s.store.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.LockRoom(ctx, roomID); err != nil {
			return err
		}

		now := s.now.stamp()
		rec, err := tx.GetAccess(ctx, userID, roomID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("accessRepo.Get: %w", err)
		}
		if errors.Is(err, storage.ErrNotFound) {
			rec = nil
		}

		status := domain.EvaluateAccess(rec, now)
		if status.State == domain.AccessExpired {
			return domain.ErrAccessExpired
		}

		if status.State == domain.AccessUnvisited {
			stored, created, err := tx.CreateAccessIfAbsent(ctx, domain.AccessRecord{
				UserID:        userID,
				RoomID:        roomID,
				FirstAccessAt: now,
			})
			if err != nil {
				return fmt.Errorf("accessRepo.CreateIfAbsent: %w", err)
			}
			// запись мог создать параллельный writer: решает его время
			if domain.EvaluateAccess(stored, now).State == domain.AccessExpired {
				return domain.ErrAccessExpired
			}
			first = created
		}

		msg = &domain.Message{
			ID:        uuid.NewString(),
			RoomID:    roomID,
			SenderID:  userID,
			Body:      body,
			CreatedAt: now,
		}
		if err := tx.AppendMessage(ctx, msg); err != nil {
			return fmt.Errorf("chatRepo.Append: %w", err)
		}
		if err := tx.AddVisitor(ctx, roomID, userID); err != nil {
			return fmt.Errorf("roomRepo.AddVisitor: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if first {
		slog.InfoContext(ctx, "access window opened", "room", roomID, "user", userID)
	}
	if s.publisher != nil {
		s.publisher.Publish(*msg)
	}
	return msg, nil
}

// checkRate: ошибка самого лимитера не блокирует отправку, только логируется.
func (s *AccessService) checkRate(ctx context.Context, userID string) error {
	res, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "rate limiter unavailable", "user", userID, "err", err)
		return nil
	}
	if !res.Allowed {
		return fmt.Errorf("%w: retry after %s", domain.ErrRateLimited, res.RetryAfter)
	}
	return nil
}

package redis

import (
	"context"
	"math/rand"
	"time"

	"quiz-player/internal/domain"
	"quiz-player/internal/quizfile"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// BankLoader fetches a parsed quiz bank from its backing file.
type BankLoader interface {
	LoadBank(ctx context.Context, bankID string) (domain.Bank, error)
}

// BankRepository caches parsed banks in Redis and falls back to a loader on cache miss.
// Each bank is a list of records in the quiz-bank text format, in bank order:
// RPUSH quiz:bank:{bankID} "Q: ...\nA. ...\n...Answer: B\n"
// Empty banks are not cached.
type BankRepository struct {
	client *redis.Client
	loader BankLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewBankRepository(client *redis.Client, loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context, bankID string) (domain.Bank, error) {
	if bank, ok := r.cached(ctx, bankID); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.cached(ctx, bankID); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx, bankID)
		if err != nil {
			return domain.Bank{}, err
		}
		if len(bank.Questions) == 0 {
			return bank, nil
		}

		key := r.key(bankID)
		records := make([]interface{}, 0, len(bank.Questions))
		for _, q := range bank.Questions {
			records = append(records, quizfile.Format(q))
		}

		pipe := r.client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, records...)
		if ttl := r.ttlWithJitter(); ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		_, _ = pipe.Exec(ctx)

		return bank, nil
	})
	if err != nil {
		return domain.Bank{}, err
	}
	return result.(domain.Bank), nil
}

func (r *BankRepository) cached(ctx context.Context, bankID string) (domain.Bank, bool) {
	records, err := r.client.LRange(ctx, r.key(bankID), 0, -1).Result()
	if err != nil || len(records) == 0 {
		return domain.Bank{}, false
	}
	questions := make([]domain.Question, 0, len(records))
	for _, record := range records {
		q, err := quizfile.ParseRecord(record)
		if err != nil {
			return domain.Bank{}, false
		}
		questions = append(questions, q)
	}
	return domain.Bank{ID: bankID, Questions: questions}, true
}

func (r *BankRepository) key(bankID string) string {
	return "quiz:bank:" + bankID
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

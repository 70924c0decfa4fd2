package scheduler

import (
	"math/rand"
	"time"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

// RandomSource breaks ties between equally preferred candidates. *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

func newTimeSeededSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// pick chooses uniformly among candidates, which must not be empty.
func pick(rnd RandomSource, candidates []domain.Person) domain.Person {
	return candidates[rnd.Intn(len(candidates))]
}

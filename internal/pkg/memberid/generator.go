package memberid

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Generator produces membership identifiers.
type Generator interface {
	Generate() string
}

// Pattern matches every identifier this package produces.
var Pattern = regexp.MustCompile(`^COM-\d{6}-\d{3}$`)

const prefix = "COM"

// TimeRandomGenerator builds identifiers from the current clock and a small
// random component: COM-<last six digits of unix millis>-<three random digits>.
// The token is cheap and presentable but not collision-free; the storage
// uniqueness constraint is the source of truth and the registration workflow
// regenerates on collision.
type TimeRandomGenerator struct {
	now  func() time.Time
	intN func(int) int
}

// NewTimeRandomGenerator constructs generator backed by the real clock.
func NewTimeRandomGenerator() *TimeRandomGenerator {
	return &TimeRandomGenerator{now: time.Now, intN: rand.Intn}
}

// Generate returns a fresh identifier. It never fails and never retries.
func (g *TimeRandomGenerator) Generate() string {
	millis := g.now().UnixMilli()
	return fmt.Sprintf("%s-%06d-%03d", prefix, millis%1_000_000, g.intN(1000))
}

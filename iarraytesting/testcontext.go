// Package iarraytesting provides deterministic content generation and a
// shared test context for exercising persistent array implementations.
package iarraytesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type TestConfig struct {
	// Seed fixes the RNG so generated content is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

type TestContext struct {
	Log logger.Logger
	Rng *rand.Rand
	T   *testing.T
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	logger.New("NOOP")
	c := TestContext{
		T:   t,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// GenerateIdentities returns n distinct uuid backed payload strings, drawn
// from the seeded rng so runs are reproducible.
func (c *TestContext) GenerateIdentities(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := uuid.NewRandomFromReader(c.Rng)
		if err != nil {
			c.T.Fatalf("failed to generate uuid: %v", err)
		}
		ids = append(ids, fmt.Sprintf("%s/%d", c.T.Name(), id))
	}
	return ids
}

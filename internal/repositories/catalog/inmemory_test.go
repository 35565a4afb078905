package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/build-roller/internal/errors"
	"github.com/KirkDiggler/build-roller/internal/pkg/clock"
	"github.com/KirkDiggler/build-roller/internal/repositories/catalog"
	"github.com/KirkDiggler/build-roller/internal/testutils"
)

type InMemoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  *catalog.InMemoryRepository
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	s.repo = catalog.NewInMemory(s.clock)
}

func (s *InMemoryTestSuite) TestPutThenGet() {
	c := testutils.CreateTestCatalog()

	_, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "abc", Catalog: c})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "abc"})
	s.Require().NoError(err)
	s.Same(c, out.Catalog)
}

func (s *InMemoryTestSuite) TestGetMissing() {
	out, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "nope"})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestExpiry() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{
		Key:     "abc",
		Catalog: testutils.CreateTestCatalog(),
		TTL:     time.Minute,
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Key: "abc"})
	s.Require().NoError(err)

	s.clock.T = s.clock.T.Add(2 * time.Minute)
	_, err = s.repo.Get(s.ctx, catalog.GetInput{Key: "abc"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestInvalidInput() {
	testCases := []struct {
		name  string
		input catalog.PutInput
	}{
		{name: "empty key", input: catalog.PutInput{Catalog: testutils.CreateTestCatalog()}},
		{name: "nil catalog", input: catalog.PutInput{Key: "abc"}},
		{name: "negative ttl", input: catalog.PutInput{Key: "abc", Catalog: testutils.CreateTestCatalog(), TTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.repo.Get(s.ctx, catalog.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryTestSuite) TestConcurrentAccess() {
	c := testutils.CreateTestCatalog()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.repo.Put(s.ctx, catalog.PutInput{Key: "shared", Catalog: c})
			_, _ = s.repo.Get(s.ctx, catalog.GetInput{Key: "shared"})
		}()
	}
	wg.Wait()

	out, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "shared"})
	s.Require().NoError(err)
	s.Same(c, out.Catalog)
}

package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
	"github.com/KirkDiggler/build-roller/internal/orchestrators/build"
	buildmock "github.com/KirkDiggler/build-roller/internal/orchestrators/build/mock"
	"github.com/KirkDiggler/build-roller/internal/render"
	catalogsvc "github.com/KirkDiggler/build-roller/internal/services/catalog"
	catalogmock "github.com/KirkDiggler/build-roller/internal/services/catalog/mock"
	"github.com/KirkDiggler/build-roller/internal/testutils"
)

const testPath = "/data/Classeur2.csv"

type SessionTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCatalogs *catalogmock.MockService
	mockBuilds   *buildmock.MockService
	session      *session
	ctx          context.Context
	catalog      *armory.Catalog
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalogs = catalogmock.NewMockService(s.ctrl)
	s.mockBuilds = buildmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.catalog = testutils.CreateTestCatalog()

	s.session = &session{
		catalogs: s.mockCatalogs,
		builds:   s.mockBuilds,
		path:     testPath,
		format:   render.FormatText,
	}
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) expectRolls(builds ...*armory.Build) {
	for _, b := range builds {
		s.mockCatalogs.EXPECT().
			Load(s.ctx, &catalogsvc.LoadInput{Path: testPath}).
			Return(&catalogsvc.LoadOutput{Catalog: s.catalog, Cached: true}, nil)
		s.mockBuilds.EXPECT().
			Generate(s.ctx, &build.GenerateInput{Catalog: s.catalog}).
			Return(&build.GenerateOutput{Build: b}, nil)
	}
}

func testBuild(mainHand string) *armory.Build {
	return &armory.Build{
		MainHand: mainHand,
		Grip:     armory.GripOneHanded,
		OffHand:  armory.OffHandNone,
		Armor:    "Knight Set",
		Spells:   []string{},
		Spirit:   armory.SpiritNone,
	}
}

func (s *SessionTestSuite) TestGenerate() {
	s.expectRolls(testBuild(testutils.WeaponBroadsword))

	var out bytes.Buffer
	s.Require().NoError(s.session.generate(s.ctx, &out))
	s.Contains(out.String(), "Main Hand: Broadsword")
}

func (s *SessionTestSuite) TestGenerate_CatalogError() {
	s.mockCatalogs.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("missing").WithMeta("path", testPath))

	var out bytes.Buffer
	err := s.session.generate(s.ctx, &out)
	s.True(errors.IsNotFound(err))
	s.Empty(out.String())
}

func (s *SessionTestSuite) TestGenerate_BuildError() {
	s.mockCatalogs.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(&catalogsvc.LoadOutput{Catalog: s.catalog}, nil)
	s.mockBuilds.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("no weapons"))

	err := s.session.generate(s.ctx, &bytes.Buffer{})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestInteractive_RegeneratesUntilQuit() {
	s.expectRolls(
		testBuild(testutils.WeaponBroadsword),
		testBuild(testutils.WeaponLongsword),
		testBuild(testutils.WeaponGreatsword),
	)

	var out bytes.Buffer
	s.Require().NoError(s.session.interactive(s.ctx, strings.NewReader("\n\nq\n"), &out))

	text := out.String()
	s.Contains(text, "Broadsword")
	s.Contains(text, "Longsword")
	s.Contains(text, "Greatsword")
	s.Equal(3, strings.Count(text, prompt))
}

func (s *SessionTestSuite) TestInteractive_StopsAtEndOfInput() {
	s.expectRolls(testBuild(testutils.WeaponBroadsword))

	var out bytes.Buffer
	s.Require().NoError(s.session.interactive(s.ctx, strings.NewReader(""), &out))
	s.Equal(1, strings.Count(out.String(), "EQUIPMENT"))
}

func (s *SessionTestSuite) TestInteractive_JSON() {
	s.session.format = render.FormatJSON
	s.expectRolls(testBuild(testutils.WeaponBroadsword))

	var out bytes.Buffer
	s.Require().NoError(s.session.interactive(s.ctx, strings.NewReader("QUIT\n"), &out))
	s.Contains(out.String(), `"main_hand": "Broadsword"`)
}

func (s *SessionTestSuite) TestInteractive_ReturnsWhenCanceledDuringRead() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.ctx = ctx

	s.mockCatalogs.EXPECT().
		Load(ctx, &catalogsvc.LoadInput{Path: testPath}).
		Return(&catalogsvc.LoadOutput{Catalog: s.catalog, Cached: true}, nil)
	s.mockBuilds.EXPECT().
		Generate(ctx, &build.GenerateInput{Catalog: s.catalog}).
		Return(&build.GenerateOutput{Build: testBuild(testutils.WeaponBroadsword)}, nil)

	// Nothing is ever written, so the reader stays blocked like an idle terminal.
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- s.session.interactive(ctx, pr, &out)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("interactive did not return after cancel")
	}
	s.Equal(1, strings.Count(out.String(), prompt))
}

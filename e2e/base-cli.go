package e2e

import (
	"bytes"
	"fmt"
	"log/slog"
	"pqdate/cli"
	"pqdate/internal"
	"pqdate/intl"
	"pqdate/services"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type BaseCLISuite struct {
	suite.Suite
	Config Config
	App    internal.Config
	clock  fixedClock
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseCLISuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.App, err = internal.LoadConfig()
	s.Require().NoError(err)

	now, err := time.Parse(time.RFC3339, s.Config.Now)
	s.Require().NoError(err, "E2E_NOW must be RFC 3339")
	s.clock = fixedClock{now: now}
}

// Exec runs one pqdate invocation in-process, rendering local values in UTC
// so outputs do not depend on the host zone.
func (s *BaseCLISuite) Exec(name string, args ...string) (string, error) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	service := services.NewDateService(log, s.clock, intl.NewFormatter(time.UTC))
	root := cli.NewRootCommand(cli.Dependencies{
		Log:     log,
		Service: service,
		Options: s.App.FormatOptions(),
		Colours: false,
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	if s.Config.Debug {
		s.T().Logf("pqdate %v\n%s", args, out.String())
		if err != nil {
			s.T().Log(cli.RenderError(err, s.Config.Colours))
		}
	}
	return out.String(), err
}

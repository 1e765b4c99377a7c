package hzk

import (
	"context"
	"testing"

	"github.com/npillmayer/dotmatrix/gb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type RegistryTestEnviron struct {
	suite.Suite
	reg *Registry
}

// listen for 'go test' command --> run test methods
func TestRegistryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	suite.Run(t, new(RegistryTestEnviron))
}

// run before each test method
func (env *RegistryTestEnviron) SetupTest() {
	env.reg = NewRegistry(gb.NewEncoder(nil))
	for _, name := range []string{"HZK16", "HZK12", "HZK24"} {
		size := 16
		switch name {
		case "HZK12":
			size = 12
		case "HZK24":
			size = 24
		}
		desc, err := NewDescriptor(name, size, size, false)
		env.Require().NoError(err)
		data := make([]byte, desc.BytesPerGlyph()*94*94)
		_, err = env.reg.Register(desc, func(ctx context.Context) ([]byte, error) {
			return data, nil
		})
		env.Require().NoError(err)
	}
}

// --- Tests -----------------------------------------------------------------

func (env *RegistryTestEnviron) TestNamesKeepRegistrationOrder() {
	env.Equal([]string{"HZK16", "HZK12", "HZK24"}, env.reg.Names())
}

func (env *RegistryTestEnviron) TestDuplicateRegistration() {
	desc, err := NewDescriptor("HZK16", 16, 16, false)
	env.Require().NoError(err)
	_, err = env.reg.Register(desc, nil)
	env.Error(err, "duplicate font names must be rejected")
}

func (env *RegistryTestEnviron) TestGetUnknown() {
	env.Nil(env.reg.Get("HZK48"), "unknown names resolve to nil")
}

func (env *RegistryTestEnviron) TestSetCurrentLoadsOnDemand() {
	store := env.reg.Get("HZK12")
	env.Require().NotNil(store)
	env.False(store.Loaded(), "stores register unloaded")
	env.Require().NoError(env.reg.SetCurrent(context.Background(), "HZK12"))
	env.True(store.Loaded(), "SetCurrent triggers the load")
	env.Same(store, env.reg.Current())
}

func (env *RegistryTestEnviron) TestSetCurrentUnknown() {
	env.Error(env.reg.SetCurrent(context.Background(), "HZK99"))
	env.Nil(env.reg.Current(), "failed selection must not change the current font")
}

func (env *RegistryTestEnviron) TestFailedLoadKeepsSelection() {
	desc, err := NewDescriptor("BROKEN", 16, 16, false)
	env.Require().NoError(err)
	_, err = env.reg.Register(desc, func(ctx context.Context) ([]byte, error) {
		return nil, context.DeadlineExceeded
	})
	env.Require().NoError(err)
	env.Require().NoError(env.reg.SetCurrent(context.Background(), "HZK16"))
	previous := env.reg.Current()
	env.Error(env.reg.SetCurrent(context.Background(), "BROKEN"))
	env.Same(previous, env.reg.Current(), "previous selection stays active after a failed load")
}

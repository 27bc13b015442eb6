package siman

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/cucumber/godog"

	"github.com/anneal-go/siman/moves/invsort"
	tspmove "github.com/anneal-go/siman/moves/tsp"
	"github.com/anneal-go/siman/tsplib"
)

type annealFeatureContext struct {
	sortMgr   *invsort.Manager
	tspMgr    *tspmove.Manager
	intercept float64
}

func (c *annealFeatureContext) reset() {
	c.sortMgr = nil
	c.tspMgr = nil
	c.intercept = 0
}

func (c *annealFeatureContext) aShuffledIntegerSequenceOfSizeWithSeed(size, seed int) error {
	mgr, err := invsort.NewManager(size, uint32(seed))
	if err != nil {
		return err
	}
	c.sortMgr = mgr
	return nil
}

func (c *annealFeatureContext) iAnnealTheSequence() error {
	cfg := NewAnnealerConfig()
	a := NewAnnealer[invsort.Move, int](cfg, nil)
	return a.Optimize(context.Background(), c.sortMgr)
}

func (c *annealFeatureContext) theInversionCountShouldBe(want int) error {
	if got := c.sortMgr.Score(); got != want {
		return fmt.Errorf("inversion count = %d, want %d", got, want)
	}
	return nil
}

func (c *annealFeatureContext) aCitySquareTSPInstanceWithSeed(cities, seed int) error {
	inst := tsplib.Instance{
		Name: "square",
		X:    []float64{0, 0, 1, 1},
		Y:    []float64{0, 1, 1, 0},
	}
	mgr, err := tspmove.NewManager(inst, uint32(seed))
	if err != nil {
		return err
	}
	c.tspMgr = mgr
	return nil
}

func (c *annealFeatureContext) iAnnealTheTour() error {
	cfg := NewAnnealerConfig()
	cfg.ZeroIsOptimal = false
	a := NewAnnealer[tspmove.Move, float64](cfg, nil)
	return a.Optimize(context.Background(), c.tspMgr)
}

func (c *annealFeatureContext) theTourCostShouldBeAtMost(max float64) error {
	if got := c.tspMgr.Score(); got > max+1e-6 {
		return fmt.Errorf("tour cost = %v, want <= %v", got, max)
	}
	return nil
}

func (c *annealFeatureContext) thePointsFixedSet() error {
	return nil
}

func (c *annealFeatureContext) iProjectThePoints() error {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{11, 12, 13, 14, 15}
	c.intercept = Project(x, y)
	return nil
}

func (c *annealFeatureContext) theInterceptShouldBeApproximately(want float64) error {
	if math.Abs(c.intercept-want) > 1e-6 {
		return fmt.Errorf("intercept = %v, want %v", c.intercept, want)
	}
	return nil
}

func InitializeScenario(sc *godog.ScenarioContext) {
	fc := &annealFeatureContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		fc.reset()
		return ctx, nil
	})

	sc.Step(`^a shuffled integer sequence of size (\d+) with seed (\d+)$`, fc.aShuffledIntegerSequenceOfSizeWithSeed)
	sc.Step(`^I anneal the sequence$`, fc.iAnnealTheSequence)
	sc.Step(`^the inversion count should be (\d+)$`, fc.theInversionCountShouldBe)

	sc.Step(`^a (\d+)-city square TSP instance with seed (\d+)$`, fc.aCitySquareTSPInstanceWithSeed)
	sc.Step(`^I anneal the tour$`, fc.iAnnealTheTour)
	sc.Step(`^the tour cost should be at most ([\d.]+)$`, fc.theTourCostShouldBeAtMost)

	sc.Step(`^the points \(1,11\) \(2,12\) \(3,13\) \(4,14\) \(5,15\)$`, fc.thePointsFixedSet)
	sc.Step(`^I project the points$`, fc.iProjectThePoints)
	sc.Step(`^the intercept should be approximately ([\d.]+)$`, fc.theInterceptShouldBeApproximately)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

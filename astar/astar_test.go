package astar_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/astar"
)

// adjacency is a directed test graph keyed by node name.
// Successor order is the slice order.
type adjacency map[string][]astar.Successor[string]

func (a adjacency) Successors(n string) []astar.Successor[string] { return a[n] }

// edge is shorthand for a Successor literal.
func edge(to string, cost float64) astar.Successor[string] {
	return astar.Successor[string]{Child: to, Cost: cost}
}

// buildDiamond returns A→B(1), A→C(4), B→C(1), B→D(5), C→D(1) plus an
// isolated node E that has no edges at all.
func buildDiamond() adjacency {
	return adjacency{
		"A": {edge("B", 1), edge("C", 4)},
		"B": {edge("C", 1), edge("D", 5)},
		"C": {edge("D", 1)},
		"D": nil,
		"E": nil,
	}
}

// counter is an infinite chain n → n+1 with unit costs.
var counter = astar.GraphFunc[int](func(n int) []astar.Successor[int] {
	return []astar.Successor[int]{{Child: n + 1, Cost: 1}}
})

// never is a goal that no node satisfies.
func never[N comparable](N) bool { return false }

// steppingClock returns a clock that advances by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

// ------------------------------------------------------------------------
// 1. Reference scenarios.
// ------------------------------------------------------------------------

func TestSearch_DiamondShortestPath(t *testing.T) {
	g := buildDiamond()
	res := astar.Search[string](g, "A", astar.GoalSet("D"), astar.Zero[string](), time.Minute)

	require.Equal(t, astar.StatusSuccess, res.Status)
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, []astar.Successor[string]{edge("B", 1), edge("C", 1), edge("D", 1)}, res.Path)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Nodes("A"))
	// closed {A,B,C}, D dequeued as goal → closed as well, nothing pending.
	assert.Equal(t, 4, res.Visited)
	assert.Equal(t, 4, res.Expanded)
}

func TestSearch_DisconnectedGoalFails(t *testing.T) {
	g := buildDiamond()
	res := astar.Search[string](g, "A", astar.GoalSet("E"), astar.Zero[string](), time.Minute)

	assert.Equal(t, astar.StatusFailure, res.Status)
	assert.Equal(t, -1.0, res.Cost)
	assert.Empty(t, res.Path)
	assert.Nil(t, res.Nodes("A"))
	// Stale records for C and D are discarded, not counted twice.
	assert.Equal(t, 4, res.Visited)
	assert.Equal(t, 4, res.Expanded)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := buildDiamond()
	res := astar.Search[string](g, "A", astar.GoalSet("A"), astar.Zero[string](), time.Minute)

	assert.Equal(t, astar.StatusSuccess, res.Status)
	assert.Equal(t, 0.0, res.Cost)
	assert.Empty(t, res.Path)
	assert.Equal(t, []string{"A"}, res.Nodes("A"))
	assert.Equal(t, 1, res.Visited)
}

func TestSearch_NoSuccessorsAnywhere(t *testing.T) {
	g := adjacency{}
	res := astar.Search[string](g, "solo", astar.GoalSet("other"), astar.Zero[string](), time.Minute)

	assert.Equal(t, astar.StatusFailure, res.Status)
	assert.Equal(t, 1, res.Visited)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_SelfLoopIgnored(t *testing.T) {
	g := adjacency{"X": {edge("X", 0)}}
	res := astar.Search[string](g, "X", astar.GoalSet("Y"), astar.Zero[string](), time.Minute)

	assert.Equal(t, astar.StatusFailure, res.Status)
	assert.Equal(t, 1, res.Visited)
}

// ------------------------------------------------------------------------
// 2. Time budget and cancellation.
// ------------------------------------------------------------------------

func TestSearch_ZeroBudgetTimesOut(t *testing.T) {
	g := buildDiamond()
	res := astar.Search[string](g, "A", astar.GoalSet("D"), astar.Zero[string](), 0)

	// The first iteration expands A; the check before the second one fails.
	assert.Equal(t, astar.StatusTimeout, res.Status)
	assert.Equal(t, -1.0, res.Cost)
	assert.Empty(t, res.Path)
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, 3, res.Visited) // A closed, B and C pending
}

func TestSearch_ZeroBudgetStartIsGoal(t *testing.T) {
	res := astar.Search[int](counter, 7, astar.GoalSet(7), astar.Zero[int](), 0)

	assert.Equal(t, astar.StatusSuccess, res.Status)
	assert.Equal(t, 0.0, res.Cost)
}

func TestSearch_BudgetCheckedOncePerIteration(t *testing.T) {
	// began=0s; checks at 1s, 2s pass; 3s ≥ 2.5s stops before the 4th dequeue.
	res := astar.Search[int](counter, 0, never[int], astar.Zero[int](), 2500*time.Millisecond,
		astar.WithClock(steppingClock(time.Second)))

	assert.Equal(t, astar.StatusTimeout, res.Status)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, 4, res.Visited) // 0,1,2 closed; 3 pending
	assert.Equal(t, 4*time.Second, res.Elapsed)
}

func TestSearch_InfiniteGraphTimesOutWithRealClock(t *testing.T) {
	res := astar.Search[int](counter, 0, never[int], astar.Zero[int](), 20*time.Millisecond)

	assert.Equal(t, astar.StatusTimeout, res.Status)
	assert.Greater(t, res.Expanded, 1)
	assert.GreaterOrEqual(t, res.Elapsed, 20*time.Millisecond)
}

func TestSearch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := astar.Search[int](counter, 0, never[int], astar.Zero[int](), time.Minute, astar.WithContext(ctx))

	assert.Equal(t, astar.StatusCanceled, res.Status)
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, -1.0, res.Cost)
}

func TestSearch_ContextCancelDoesNotPreemptStartGoal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := astar.Search[int](counter, 0, astar.GoalSet(0), astar.Zero[int](), time.Minute, astar.WithContext(ctx))

	assert.Equal(t, astar.StatusSuccess, res.Status)
}

// ------------------------------------------------------------------------
// 3. Tie-breaking and bookkeeping.
// ------------------------------------------------------------------------

func TestSearch_TieBreakPrefersLowerHeuristic(t *testing.T) {
	// X: g=1,h=1 and Y: g=2,h=0 share f=2; Y is listed second but wins.
	g := adjacency{
		"S": {edge("X", 1), edge("Y", 2)},
		"X": {edge("T", 1)},
		"Y": {edge("T", 0)},
	}
	h := map[string]float64{"S": 2, "X": 1, "Y": 0, "T": 0}

	var order []string
	res := astar.Search[string](g, "S", astar.GoalSet("T"), func(n string) float64 { return h[n] }, time.Minute,
		astar.WithOnExpand(func(n any, _, _ float64) { order = append(order, n.(string)) }))

	require.Equal(t, astar.StatusSuccess, res.Status)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, []string{"S", "Y", "T"}, order)
	assert.Equal(t, []string{"S", "Y", "T"}, res.Nodes("S"))
}

func TestSearch_TieBreakKeepsSuccessorOrder(t *testing.T) {
	g := adjacency{
		"S": {edge("P", 1), edge("Q", 1)},
		"P": {edge("T", 1)},
		"Q": {edge("T", 1)},
	}

	res := astar.Search[string](g, "S", astar.GoalSet("T"), astar.Zero[string](), time.Minute)
	require.Equal(t, astar.StatusSuccess, res.Status)
	assert.Equal(t, []string{"S", "P", "T"}, res.Nodes("S"))

	// Reversing the caller order flips the equal-cost choice.
	g["S"] = []astar.Successor[string]{edge("Q", 1), edge("P", 1)}
	res = astar.Search[string](g, "S", astar.GoalSet("T"), astar.Zero[string](), time.Minute)
	assert.Equal(t, []string{"S", "Q", "T"}, res.Nodes("S"))
}

func TestSearch_CheaperPathReplacesRecord(t *testing.T) {
	type push struct {
		Node     string
		G        float64
		Improved bool
	}
	var pushes []push
	astar.Search[string](buildDiamond(), "A", astar.GoalSet("D"), astar.Zero[string](), time.Minute,
		astar.WithOnEnqueue(func(n any, g, _ float64, improved bool) {
			pushes = append(pushes, push{n.(string), g, improved})
		}))

	want := []push{
		{"A", 0, false},
		{"B", 1, false},
		{"C", 4, false},
		{"C", 2, true},
		{"D", 6, false},
		{"D", 3, true},
	}
	if diff := cmp.Diff(want, pushes); diff != "" {
		t.Errorf("enqueue sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_DominatedPathNotEnqueued(t *testing.T) {
	// B is expanded first and offers C at cost 3, worse than the queued 1.
	g := adjacency{
		"A": {edge("B", 1), edge("C", 1)},
		"B": {edge("C", 2)},
		"C": {edge("Z", 10)},
	}
	pushes := map[string]int{}
	astar.Search[string](g, "A", astar.GoalSet("Z"), astar.Zero[string](), time.Minute,
		astar.WithOnEnqueue(func(n any, _, _ float64, _ bool) { pushes[n.(string)]++ }))

	assert.Equal(t, 1, pushes["C"])
}

func TestSearch_HeuristicEvaluatedOncePerNode(t *testing.T) {
	calls := map[string]int{}
	h := func(n string) float64 {
		calls[n]++
		return 0
	}
	astar.Search[string](buildDiamond(), "A", astar.GoalSet("D"), h, time.Minute)

	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}, calls)
}

func TestSearch_GoalEvaluatedOncePerDequeuedNode(t *testing.T) {
	calls := map[string]int{}
	goal := func(n string) bool {
		calls[n]++
		return false
	}
	astar.Search[string](buildDiamond(), "A", goal, astar.Zero[string](), time.Minute)

	// Stale C and D records are skipped before the goal test.
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}, calls)
}

func TestSearch_Idempotent(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(7)), 60, 240)
	goal := astar.GoalSet("v59")

	first := astar.Search[string](g, "v0", goal, astar.Zero[string](), time.Minute)
	second := astar.Search[string](g, "v0", goal, astar.Zero[string](), time.Minute)

	ignoreElapsed := cmpopts.IgnoreFields(astar.Result[string]{}, "Elapsed")
	if diff := cmp.Diff(first, second, ignoreElapsed); diff != "" {
		t.Errorf("repeated search differs (-first +second):\n%s", diff)
	}
}

// ------------------------------------------------------------------------
// 4. Optimality against an exhaustive relaxation oracle.
// ------------------------------------------------------------------------

// randomGraph builds n vertices "v0".."v(n-1)" and m directed edges with
// integer costs in [0..9]. Parallel edges and loops are allowed.
func randomGraph(r *rand.Rand, n, m int) adjacency {
	g := make(adjacency, n)
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		from := fmt.Sprintf("v%d", u)
		g[from] = append(g[from], edge(fmt.Sprintf("v%d", v), float64(r.Intn(10))))
	}

	return g
}

// distancesTo returns the exact cost from every vertex to target by
// Bellman-Ford relaxation over reversed edges. Unreachable vertices are +Inf.
func distancesTo(g adjacency, n int, target string) map[string]float64 {
	dist := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		dist[fmt.Sprintf("v%d", i)] = math.Inf(1)
	}
	dist[target] = 0
	for round := 0; round < n; round++ {
		changed := false
		for from, out := range g {
			for _, e := range out {
				if d := dist[e.Child] + e.Cost; d < dist[from] {
					dist[from] = d
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// walkCost verifies the path is a chain of real edges from start and
// returns its total cost.
func walkCost(t *testing.T, g adjacency, start string, path []astar.Successor[string]) float64 {
	t.Helper()
	cur, total := start, 0.0
	for _, step := range path {
		assert.Contains(t, g[cur], step, "edge %s→%s not in graph", cur, step.Child)
		total += step.Cost
		cur = step.Child
	}

	return total
}

func TestSearch_OptimalOnRandomGraphs(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewSource(42))
	heuristics := map[string]func(exact map[string]float64) astar.Heuristic[string]{
		"zero":  func(map[string]float64) astar.Heuristic[string] { return astar.Zero[string]() },
		"exact": func(exact map[string]float64) astar.Heuristic[string] { return func(v string) float64 { return finite(exact[v]) } },
		"half":  func(exact map[string]float64) astar.Heuristic[string] { return func(v string) float64 { return finite(exact[v]) / 2 } },
	}

	for trial := 0; trial < 25; trial++ {
		g := randomGraph(r, n, 3*n)
		target := fmt.Sprintf("v%d", r.Intn(n))
		exact := distancesTo(g, n, target)

		for name, mk := range heuristics {
			res := astar.Search[string](g, "v0", astar.GoalSet(target), mk(exact), time.Minute,
				astar.WithAssertions())

			if math.IsInf(exact["v0"], 1) {
				assert.Equal(t, astar.StatusFailure, res.Status, "trial %d %s", trial, name)
				continue
			}
			require.Equal(t, astar.StatusSuccess, res.Status, "trial %d %s", trial, name)
			assert.Equal(t, exact["v0"], res.Cost, "trial %d %s", trial, name)
			assert.Equal(t, res.Cost, walkCost(t, g, "v0", res.Path), "trial %d %s", trial, name)
			if len(res.Path) > 0 {
				assert.Equal(t, target, res.Path[len(res.Path)-1].Child)
			}
		}
	}
}

// finite maps +Inf (no route to target) to a large admissible value;
// such vertices can never lie on a successful path.
func finite(v float64) float64 {
	if math.IsInf(v, 1) {
		return 1e9
	}
	return v
}

// ------------------------------------------------------------------------
// 5. Assertion layer.
// ------------------------------------------------------------------------

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err, _ = p.(error)
		}
	}()
	fn()

	return nil
}

func TestSearch_AssertionsRejectNegativeCost(t *testing.T) {
	g := adjacency{"A": {edge("B", -1)}}
	err := recoverErr(func() {
		astar.Search[string](g, "A", astar.GoalSet("B"), astar.Zero[string](), time.Minute, astar.WithAssertions())
	})

	assert.True(t, errors.Is(err, astar.ErrNegativeCost), "got %v", err)
}

func TestSearch_AssertionsRejectNegativeHeuristic(t *testing.T) {
	err := recoverErr(func() {
		astar.Search[string](buildDiamond(), "A", astar.GoalSet("D"), func(string) float64 { return -1 }, time.Minute,
			astar.WithAssertions())
	})

	assert.True(t, errors.Is(err, astar.ErrNegativeHeuristic), "got %v", err)
}

func TestSearch_NegativeCostWithoutAssertionsDoesNotPanic(t *testing.T) {
	g := adjacency{"A": {edge("B", -1)}}
	assert.NotPanics(t, func() {
		res := astar.Search[string](g, "A", astar.GoalSet("B"), astar.Zero[string](), time.Minute)
		assert.Equal(t, astar.StatusSuccess, res.Status)
		assert.Equal(t, -1.0, res.Cost)
	})
}

// ------------------------------------------------------------------------
// 6. Small helpers.
// ------------------------------------------------------------------------

func TestStatus_String(t *testing.T) {
	cases := map[astar.Status]string{
		astar.StatusSuccess:  "success",
		astar.StatusFailure:  "failure",
		astar.StatusTimeout:  "timeout",
		astar.StatusCanceled: "canceled",
		astar.Status(42):     "unknown",
	}
	for s, want := range cases {
		assert.Equal(t, want, s.String())
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, astar.Seconds(1.5))
	assert.Equal(t, time.Duration(0), astar.Seconds(0))
	assert.Equal(t, time.Duration(0), astar.Seconds(-3))
	assert.Equal(t, time.Duration(0), astar.Seconds(math.NaN()))
	assert.Equal(t, time.Duration(math.MaxInt64), astar.Seconds(1e10))
	assert.Equal(t, time.Duration(math.MaxInt64), astar.Seconds(math.Inf(1)))
	assert.Positive(t, astar.Seconds(9e9))
}

func TestSearch_SaturatedBudgetDoesNotTimeOut(t *testing.T) {
	res := astar.Search[string](buildDiamond(), "A", astar.GoalSet("D"), astar.Zero[string](), astar.Seconds(math.Inf(1)))
	assert.Equal(t, astar.StatusSuccess, res.Status)
	assert.Equal(t, 3.0, res.Cost)
}

// cell is a non-pointer-sized node: boxing it into an interface allocates.
type cell struct{ X, Y int }

func TestSearch_UnobservedSearchSkipsHooks(t *testing.T) {
	opts := astar.DefaultOptions()
	assert.Nil(t, opts.OnExpand)
	assert.Nil(t, opts.OnEnqueue)

	const n = 200
	chain := astar.GraphFunc[cell](func(c cell) []astar.Successor[cell] {
		if c.X == n-1 {
			return nil
		}
		return []astar.Successor[cell]{{Child: cell{X: c.X + 1}, Cost: 1}}
	})
	goal := astar.GoalSet(cell{X: n - 1})
	run := func(opts ...astar.Option) {
		res := astar.Search[cell](chain, cell{}, goal, astar.Zero[cell](), time.Minute, opts...)
		if !res.Found() {
			t.Fatal("chain end not reached")
		}
	}

	bare := testing.AllocsPerRun(20, func() { run() })
	hooked := testing.AllocsPerRun(20, func() {
		run(
			astar.WithOnExpand(func(any, float64, float64) {}),
			astar.WithOnEnqueue(func(any, float64, float64, bool) {}),
		)
	})
	// Each of the n expansions and n pushes boxes the node once.
	assert.GreaterOrEqual(t, hooked-bare, float64(n))
}

func TestHooks_Accumulate(t *testing.T) {
	var calls []string
	res := astar.Search[string](buildDiamond(), "A", astar.GoalSet("A"), astar.Zero[string](), time.Second,
		astar.WithOnExpand(func(any, float64, float64) { calls = append(calls, "first") }),
		astar.WithOnExpand(nil),
		astar.WithOnExpand(func(any, float64, float64) { calls = append(calls, "second") }),
	)
	require.True(t, res.Found())
	assert.Equal(t, []string{"first", "second"}, calls)
}

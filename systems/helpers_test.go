package systems

import (
	"testing"

	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/gamemath"
	"github.com/automoto/skyswing/levelgen"
	"github.com/automoto/skyswing/systems/factory"
	"github.com/automoto/skyswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testSeed = 7

func newSession(t *testing.T, modeName string) *ecs.ECS {
	t.Helper()
	mode, err := cfg.LookupMode(modeName)
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.StartSession(e, mode, testSeed)
	return e
}

// runFrame runs every system of a frame except input polling
func runFrame(e *ecs.ECS) {
	for _, system := range FrameSystems() {
		system(e)
	}
}

// setLayout replaces the generated level with the given rooftops and coins
func setLayout(t *testing.T, e *ecs.ECS, bound float64, platforms []gamemath.Rect, coins []gamemath.Rect) {
	t.Helper()

	var stale []*donburi.Entry
	tags.Platform.Each(e.World, func(entry *donburi.Entry) { stale = append(stale, entry) })
	tags.Coin.Each(e.World, func(entry *donburi.Entry) { stale = append(stale, entry) })
	for _, entry := range stale {
		e.World.Remove(entry.Entity())
	}

	space := factory.ReplaceSpace(e, int(bound)+cfg.C.Width, cfg.C.Height*2, cfg.World.CellSize, cfg.World.CellSize)
	for _, r := range platforms {
		factory.CreatePlatform(e, space, r)
	}
	for i, r := range coins {
		factory.CreateCoin(e, space, levelgen.CoinSpot{Rect: r, Platform: i})
	}
	space.Add(playerObject(t, e).Object)

	level := levelData(t, e)
	level.Bound = bound
	level.TotalCoins = len(coins)
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return entry
}

func playerObject(t *testing.T, e *ecs.ECS) *components.ObjectData {
	return components.Object.Get(playerEntry(t, e))
}

func playerPhysics(t *testing.T, e *ecs.ECS) *components.PhysicsData {
	return components.Physics.Get(playerEntry(t, e))
}

func levelData(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	entry, ok := components.Level.First(e.World)
	if !ok {
		t.Fatal("no level")
	}
	return components.Level.Get(entry)
}

func cameraData(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("no camera")
	}
	return components.Camera.Get(entry)
}

func sessionData(t *testing.T, e *ecs.ECS) *components.SessionData {
	t.Helper()
	session := getSession(e)
	if session == nil {
		t.Fatal("no session")
	}
	return session
}

// placePlayer moves the player's hit box to top-left (x, y)
func placePlayer(t *testing.T, e *ecs.ECS, x, y float64) {
	t.Helper()
	obj := playerObject(t, e)
	obj.X, obj.Y = x, y
	obj.Update()
}

// press marks actions as newly pressed this frame
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func countPlatforms(e *ecs.ECS) int {
	n := 0
	tags.Platform.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

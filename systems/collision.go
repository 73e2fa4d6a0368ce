package systems

import (
	"sort"

	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/gamemath"
	"github.com/automoto/skyswing/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions rests the player on the rooftops it overlaps and
// collects every coin it touches. There is no horizontal response.
func UpdateCollisions(e *ecs.ECS) {
	session := getSession(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		player.Grounded = false
		platforms := overlapping(obj, tags.ResolvPlatform)
		if len(platforms) > 0 {
			resolveSupport(session.Mode.Support, obj, platforms)
			physics.SpeedY = 0
			player.Grounded = true
			obj.Update()
		}

		collectCoins(e, obj)
	})
}

// cellShifts offsets a check so the scanned cells cover floor(X)..floor(X+W)
// on each axis. A single resolv check stops at floor(X+W-1).
var cellShifts = [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// overlapping returns the objects with tag whose boxes strictly overlap obj,
// ordered left to right. The resolv checks are only the broadphase.
func overlapping(obj *components.ObjectData, tag string) []*resolv.Object {
	box := obj.Rect()
	seen := map[*resolv.Object]bool{}
	var hits []*resolv.Object

	for _, d := range cellShifts {
		check := obj.Check(d[0], d[1], tag)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tag) {
			if seen[o] {
				continue
			}
			seen[o] = true
			if box.Overlaps(rectOf(o)) {
				hits = append(hits, o)
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].X < hits[j].X })
	return hits
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// resolveSupport snaps the player on top of the supporting rooftops.
// platforms must be ordered left to right.
func resolveSupport(policy cfg.SupportPolicyID, obj *components.ObjectData, platforms []*resolv.Object) {
	switch policy {
	case cfg.SupportCompound:
		for _, p := range platforms {
			obj.Y = p.Y - obj.H
		}
	default:
		highest := platforms[0]
		for _, p := range platforms[1:] {
			if p.Y < highest.Y {
				highest = p
			}
		}
		obj.Y = highest.Y - obj.H
	}
}

// collectCoins removes every coin the player overlaps and counts it once
func collectCoins(e *ecs.ECS, obj *components.ObjectData) {
	coins := overlapping(obj, tags.ResolvCoin)
	if len(coins) == 0 {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, coin := range coins {
		if coin.Space != nil {
			coin.Space.Remove(coin)
		}
		if entry, ok := coin.Data.(*donburi.Entry); ok && entry.Valid() {
			e.World.Remove(entry.Entity())
		}
		level.CoinsCollected++
	}
}

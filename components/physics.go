package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX    float64
	SpeedY    float64
	Gravity   float64
	MoveSpeed float64
	Friction  float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GroundSensorData keeps the last downward probe for debug drawing.
type GroundSensorData struct {
	Length float64
	Origin Vector
	Hit    bool
	// Probe is the broadphase object of the ray, owned by the sensor.
	Probe *resolv.Object
}

var GroundSensor = donburi.NewComponentType[GroundSensorData]()

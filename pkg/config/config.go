package config

// Resolved CLI/env configuration values.
var (
	CircuitFile string // path to a YAML circuit definition; empty selects the built-in circuit
	Autopilot   bool   // start the ride with the autopilot engaged
	Scale       int    // window scale factor
	LogLevel    string // zap log level
)

// Params holds the engine tuning values. All rates are per tick at the fixed
// 60 TPS step; speeds are world units per tick.
type Params struct {
	MaxSpeed     float64
	Accel        float64
	Brake        float64 // must exceed Accel
	PassiveDecel float64

	SteerRate        float64 // lateral shift per tick at full speed
	Centrifugal      float64 // outward push per unit curvature at full speed
	LateralClamp     float64 // hard bound on |lateralOffset|
	OffRoadThreshold float64 // |lateralOffset| beyond this is off the road
	OffRoadDecay     float64 // multiplicative speed decay while off-road

	SpeedDisplayFactor float64 // internal speed units to display units

	CameraHeight float64
	CameraFOVDeg float64
	RoadWidth    float64 // full road width in world units
	DrawDistance int     // segments projected ahead of the camera
	FogThreshold float64 // fraction of draw distance below which fog is zero
}

// Default returns the stock tuning.
func Default() Params {
	return Params{
		MaxSpeed:     24.0,
		Accel:        0.12,
		Brake:        0.36,
		PassiveDecel: 0.06,

		SteerRate:        0.05,
		Centrifugal:      0.008,
		LateralClamp:     2.5,
		OffRoadThreshold: 1.0,
		OffRoadDecay:     0.97,

		SpeedDisplayFactor: 8.0,

		CameraHeight: 1000,
		CameraFOVDeg: 100,
		RoadWidth:    2000,
		DrawDistance: 180,
		FogThreshold: 0.15,
	}
}

package config

// TuningConfig is the root config for tuning.yaml
type TuningConfig struct {
	Display DisplayConfig `yaml:"display"`
	Player  PlayerConfig  `yaml:"player"`
	Tower   TowerConfig   `yaml:"tower"`
	Shield  ShieldConfig  `yaml:"shield"`
	Spawner SpawnerConfig `yaml:"spawner"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

// PlayerConfig holds movement and shooting rules for the player
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"`         // px/s at full input
	SmoothingRate float64 `yaml:"smoothingRate"` // seconds; horizontal velocity lerp uses dt/rate
	Gravity       float64 `yaml:"gravity"`       // px/s²
	JumpVelocity  float64 `yaml:"jumpVelocity"`  // negative is up
	JumpCut       float64 `yaml:"jumpCut"`       // vy multiplier when jump is released while rising
	MaxJumps      int     `yaml:"maxJumps"`

	GunOffsetLeft  PointConfig `yaml:"gunOffsetLeft"`
	GunOffsetRight PointConfig `yaml:"gunOffsetRight"`

	// Shot speed = aim distance * ShotDistanceFactor + ShotBaseSpeed
	ShotDistanceFactor float64 `yaml:"shotDistanceFactor"`
	ShotBaseSpeed      float64 `yaml:"shotBaseSpeed"`

	AnimationFPS    float64 `yaml:"animationFps"`
	AnimationFrames int     `yaml:"animationFrames"`

	// Minimum |vx| that advances the walk animation
	AnimationMinSpeed float64 `yaml:"animationMinSpeed"`
}

type TowerConfig struct {
	NormalDamage   float64 `yaml:"normalDamage"`
	ReversedDamage float64 `yaml:"reversedDamage"`
	FlashDuration  float64 `yaml:"flashDuration"`
	Countdown      float64 `yaml:"countdown"`
	ShieldGap      float64 `yaml:"shieldGap"`
}

type ShieldConfig struct {
	TimeConstant    float64 `yaml:"timeConstant"`
	DistanceDivisor float64 `yaml:"distanceDivisor"`
	MinTimeConstant float64 `yaml:"minTimeConstant"`
	FlashDuration   float64 `yaml:"flashDuration"`
}

// SpawnerConfig configures enemy bullet spawns and role reversal timing.
// Integer ranges are half-open [min, max).
type SpawnerConfig struct {
	IntervalMin float64 `yaml:"intervalMin"`
	IntervalMax float64 `yaml:"intervalMax"`
	SpeedMin    int     `yaml:"speedMin"`
	SpeedMax    int     `yaml:"speedMax"`
	DriftMin    int     `yaml:"driftMin"`
	DriftMax    int     `yaml:"driftMax"`

	TopMargin    int `yaml:"topMargin"`
	BottomMargin int `yaml:"bottomMargin"`

	ReversalMin    float64 `yaml:"reversalMin"`
	ReversalMax    float64 `yaml:"reversalMax"`
	TriggerMargin  float64 `yaml:"triggerMargin"` // px added on both sides of the tower for the no-trigger strip
	BannerDuration float64 `yaml:"bannerDuration"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

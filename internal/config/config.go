package config

const (
	// Element counts
	ParticleCount       = 36
	BackgroundLampCount = 18
	ForegroundLampCount = 5
	TrayLampCount       = 3

	// Particle generation
	ParticleDelayMod    = 7
	ParticleDelayStep   = 0.6 // seconds per delay slot
	ParticleDurationMin = 6   // seconds
	ParticleDurationMod = 5
	ParticleScaleBase   = 0.5
	ParticleScaleMod    = 4
	ParticleScaleStep   = 0.15
	ParticleLeftMul     = 47
	ParticleTopMul      = 83

	// Background lamp grid
	LampColumns   = 6
	LampColStep   = 16 // percent
	LampRowStep   = 22 // percent
	LampGridInset = 5  // percent

	// Foreground diya cluster
	DiyaSpacingPx = 65

	// Lamp flicker profile
	LampPeriodBase = 3.0 // seconds
	LampPeriodStep = 0.4 // seconds per custom index

	// Figure motion
	HandsPeriod = 6.0 // seconds
	TrayPeriod  = 7.0 // seconds

	// Terminal mapping
	PixelsPerCol = 8.0  // CSS px covered by one terminal column
	PixelsPerRow = 16.0 // CSS px covered by one terminal row
	AspectRatio  = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)

	// Host
	DefaultFPS     = 30
	MinFPS         = 1
	MaxFPS         = 60
	FrameHistory   = 32 // frame intervals kept for fps measurement
	MinStageWidth  = 20
	MinStageHeight = 8

	// App
	AppName    = "DIYA-SCENE"
	AppVersion = "1.0"
	EnvPrefix  = "DIYA"
)

// Palette (hex) for the palace at night.
const (
	ColorNight      = "#12060A"
	ColorSmoke      = "#2A1218"
	ColorStone      = "#5C3B2E"
	ColorStoneLight = "#8A6048"
	ColorGold       = "#FFBC5C"
	ColorFlame      = "#FFD27A"
	ColorFlameCore  = "#FFF4D6"
	ColorEmber      = "#FF8A3D"
	ColorMarigold   = "#F5A524"
	ColorRose       = "#C2185B"
	ColorSilhouette = "#3A1C1C"
	ColorSari       = "#B0303E"
	ColorTurban     = "#D9A441"
	ColorFloor      = "#2B1410"
)

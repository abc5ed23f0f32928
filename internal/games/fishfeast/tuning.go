package fishfeast

// Gameplay tuning. These values define the game's balance and are not
// exposed through configuration.
const (
	// Player
	PlayerStartRadius   = 18.0
	PlayerMinRadius     = 12.0
	PlayerMaxRadius     = 90.0
	PlayerAccel         = 260.0 // units/s² per held direction
	PlayerDrag          = 0.9   // velocity multiplier, once per frame
	PlayerCurrentFactor = 0.2
	StartingLives       = 3
	MouthDecay          = 0.1 // per frame

	// Bounds
	BoundsPadding = 2.0 // added to the radius when clamping
	BounceDamping = 0.7
	CullMargin    = 80.0 // enemies despawn this far outside the arena

	// Enemies
	EnemyFloor         = 16
	InitialEnemies     = 16
	EnemySpawnMargin   = 40.0
	EnemyMinRadius     = 10.0
	EnemyMaxRadius     = 42.0
	EnemyCurrentFactor = 0.1
	EnemyReach         = 0.9  // player radius fraction used in enemy collisions
	EatThreshold       = 0.9  // enemies below this fraction of the player are edible
	EnemyGrowthFactor  = 0.6  // growth from an eaten enemy before the rate applies
	EnemyGrowthCap     = 8.0
	EnemyGrowthRate    = 0.25
	EnemyEatRadiusCap  = 80.0 // player radius cap after eating an enemy
	HitShrink          = 0.8
	KnockbackSpeed     = 200.0

	// Food
	FoodFloor         = 20
	InitialFood       = 22
	FoodSpawnMargin   = 30.0
	FoodMinRadius     = 4.0
	FoodMaxRadius     = 10.0
	FoodMaxSpeed      = 15.0
	FoodCurrentFactor = 0.05
	FoodReach         = 0.8 // player radius fraction used in food collisions
	FoodGrowthRate    = 0.15

	// Waves
	WavePeriodMS    = 8000.0
	WaveBurst       = 3
	WaveRadiusBonus = 0.6 // added to every new enemy's radius per wave
)

package pet

import "time"

// Game constants
const (
	DefaultPetName = "EGG-420"
	MaxStat        = 100
	MinStat        = 0

	// Starting stats for a freshly hatched pet
	InitialHunger = 20
	InitialFun    = 60
	InitialClean  = 70
	InitialEnergy = 80

	// One decay step is roughly one hour of pet time
	StepDuration = 6 * time.Second

	// Stat change per decay step
	HungerPerStep = 1.0
	FunPerStep    = -0.5
	CleanPerStep  = -0.4
	EnergyPerStep = 0.2 // small recharge while idle

	FeedHungerDecrease = 25
	FeedEnergyIncrease = 5
	PlayFunIncrease    = 20
	PlayEnergyDecrease = 8
	PlayHungerIncrease = 8
	CleanIncrease      = 30
	SleepEnergyGain    = 25

	// Mood thresholds
	SleepyEnergyThreshold = 20
	HungryThreshold       = 70
	DirtyThreshold        = 30
	HappyFunThreshold     = 80
	BoredFunThreshold     = 30

	// Evolution stage thresholds on overall health
	StageThreeHealth = 85
	StageTwoHealth   = 65

	// Days until the age bar is full
	AgeBarDays = 7

	// Name prefix stripped when showing the egg id
	EggPrefix = "EGG-"

	// StorageKey names the single persisted snapshot
	StorageKey = "reddi.pet"

	dayLayout = "2006-01-02"
	oneDay    = 24 * time.Hour
)

// Mood classifies the pet's state and selects its sprite.
type Mood string

const (
	MoodSleeping Mood = "sleeping"
	MoodHungry   Mood = "hungry"
	MoodDirty    Mood = "dirty"
	MoodHappy    Mood = "happy"
	MoodBored    Mood = "bored"
	MoodIdle     Mood = "idle"
)

// Moods lists every mood in rule-evaluation order.
var Moods = []Mood{MoodSleeping, MoodHungry, MoodDirty, MoodHappy, MoodBored, MoodIdle}

// Action names a discrete user transition.
type Action string

const (
	ActionFeed   Action = "feed"
	ActionPlay   Action = "play"
	ActionClean  Action = "clean"
	ActionSleep  Action = "sleep"
	ActionRename Action = "rename"
	ActionReset  Action = "reset"
)

// Actions lists the action surface in menu order.
var Actions = []Action{ActionFeed, ActionPlay, ActionClean, ActionSleep, ActionRename, ActionReset}

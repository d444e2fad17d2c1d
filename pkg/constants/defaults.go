package constants

// Profile validation bounds
const (
	MinAge    = 12
	MaxAge    = 120
	MinHeight = 100
	MaxHeight = 250
	MinWeight = 30
	MaxWeight = 300
)

// Water tracking defaults (ml)
const (
	DefaultWaterGoal = 2000
	MinWaterGoal     = 500
	MaxWaterGoal     = 10000
	MaxWaterEntry    = 3000
)

// Weight record bounds (kg); looser than profile bounds to allow tracking edge cases
const (
	MinWeightRecord = 20
	MaxWeightRecord = 300
)

// Scheduler settings
const (
	ScheduleCheckIntervalSecs = 60
)

// DateFormat is the storage format for dates (TEXT columns)
const DateFormat = "2006-01-02"

// DisplayDateFormat is the user-facing date format
const DisplayDateFormat = "02.01.2006"

// Telegram message size limit with headroom for formatting
const MaxMessageLen = 4000

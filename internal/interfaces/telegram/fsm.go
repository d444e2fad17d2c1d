package telegram

import "sync"

// State is one step of a multi-message dialog
type State string

const (
	StateNone State = ""

	// registration
	StateRegName     State = "reg_name"
	StateRegGender   State = "reg_gender"
	StateRegAge      State = "reg_age"
	StateRegHeight   State = "reg_height"
	StateRegWeight   State = "reg_weight"
	StateRegActivity State = "reg_activity"
	StateRegGoal     State = "reg_goal"

	// diary
	StateDiaryFood    State = "diary_food"
	StateDiaryWeight  State = "diary_food_weight"
	StateDiaryNatural State = "diary_natural"

	// water
	StateWaterCustom State = "water_custom"
	StateWaterGoal   State = "water_goal"

	// weight
	StateWeightInput State = "weight_input"

	// recipe creation
	StateRecipeName         State = "recipe_name"
	StateRecipeIngredients  State = "recipe_ingredients"
	StateRecipeInstructions State = "recipe_instructions"
	StateRecipeCalories     State = "recipe_calories"
	StateRecipeProtein      State = "recipe_protein"
	StateRecipeFat          State = "recipe_fat"
	StateRecipeCarbs        State = "recipe_carbs"

	// cart
	StateCartManual State = "cart_manual"

	// reminders
	StateReminderTime State = "reminder_time"
)

type session struct {
	state State
	data  map[string]string
}

// FSM tracks per-user dialog state in memory. A bot restart drops
// in-progress dialogs, which matches how the flows are designed: every
// entry point re-establishes its own state.
type FSM struct {
	mu       sync.RWMutex
	sessions map[int64]*session
}

func NewFSM() *FSM {
	return &FSM{sessions: make(map[int64]*session)}
}

// State returns the user's current dialog state
func (f *FSM) State(userID int64) State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if s, ok := f.sessions[userID]; ok {
		return s.state
	}
	return StateNone
}

// SetState moves the user to a dialog state, keeping collected data
func (f *FSM) SetState(userID int64, state State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[userID]
	if !ok {
		s = &session{data: make(map[string]string)}
		f.sessions[userID] = s
	}
	s.state = state
}

// Data returns a collected dialog value
func (f *FSM) Data(userID int64, key string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if s, ok := f.sessions[userID]; ok {
		return s.data[key]
	}
	return ""
}

// SetData stores a collected dialog value
func (f *FSM) SetData(userID int64, key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[userID]
	if !ok {
		s = &session{data: make(map[string]string)}
		f.sessions[userID] = s
	}
	s.data[key] = value
}

// Clear drops the user's dialog state and data
func (f *FSM) Clear(userID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, userID)
}

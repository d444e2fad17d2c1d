package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/config"
	"github.com/dietplanner/backend/internal/domain/ports"
	"github.com/dietplanner/backend/internal/infrastructure/database"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/formula"
)

// Integrations are the optional external adapters. Nil fields disable
// the corresponding feature instead of failing startup.
type Integrations struct {
	FoodProvider ports.FoodDataProvider
	Translator   ports.Translator
	Generator    ports.RecipeGenerator
	Charts       ports.ChartRenderer
	Notifier     ports.Notifier
}

// ServiceManager orchestrates all services with dependency injection
type ServiceManager struct {
	db *database.Connection

	// Repositories, exposed for bootstrap and tests
	Users     *persistence.UserRepository
	Admins    *persistence.AdminRepository
	Reminders *persistence.ReminderRepository

	Profile   *ProfileService
	Diary     *DiaryService
	Food      *FoodService
	Water     *WaterService
	Weight    *WeightService
	Recipes   *RecipeService
	MealPlans *MealPlanService
	Cart      *CartService
	Content   *ContentService
	Stats     *StatsService
	Reminder  *ReminderService
	Auth      *AuthService
	Scheduler *SchedulerService
}

// NewServiceManager creates a service manager with all dependencies wired
func NewServiceManager(conn *database.Connection, cfg *config.Config, integrations Integrations, log *zap.Logger) *ServiceManager {
	sm := &ServiceManager{db: conn}
	db := conn.DB()

	users := persistence.NewUserRepository(db)
	diary := persistence.NewDiaryRepository(db)
	water := persistence.NewWaterRepository(db)
	weights := persistence.NewWeightRepository(db)
	recipes := persistence.NewRecipeRepository(db)
	plans := persistence.NewMealPlanRepository(db)
	cart := persistence.NewCartRepository(db)
	content := persistence.NewContentRepository(db)
	reminders := persistence.NewReminderRepository(db)
	admins := persistence.NewAdminRepository(db)

	sm.Users = users
	sm.Admins = admins
	sm.Reminders = reminders

	sm.Profile = NewProfileService(users, formula.NewEngine(), log)
	sm.Diary = NewDiaryService(diary, users, log)
	sm.Food = NewFoodService(integrations.FoodProvider, integrations.Translator, log)
	sm.Water = NewWaterService(water, users, log)
	sm.Weight = NewWeightService(weights, users, sm.Profile, integrations.Charts, log)
	sm.Recipes = NewRecipeService(recipes, users, integrations.Generator, log)
	sm.MealPlans = NewMealPlanService(plans, recipes, sm.Diary, log)
	sm.Cart = NewCartService(cart, plans, diary, recipes, log)
	sm.Content = NewContentService(content)
	sm.Stats = NewStatsService(sm.Diary, sm.Water, users, admins, integrations.Charts)
	sm.Reminder = NewReminderService(reminders)
	sm.Auth = NewAuthService(admins, log)

	if integrations.Notifier != nil {
		interval := time.Duration(cfg.SchedulerIntervalSecs) * time.Second
		sm.Scheduler = NewSchedulerService(reminders, integrations.Notifier, interval, log)
	}

	return sm
}

// AttachNotifier wires the reminder scheduler once a notifier exists.
// The bot is constructed after the service manager, so the scheduler
// cannot be created inside NewServiceManager when the bot delivers the
// notifications.
func (sm *ServiceManager) AttachNotifier(cfg *config.Config, notifier ports.Notifier, log *zap.Logger) {
	interval := time.Duration(cfg.SchedulerIntervalSecs) * time.Second
	sm.Scheduler = NewSchedulerService(sm.Reminders, notifier, interval, log)
}

// Ping verifies the database connection is alive
func (sm *ServiceManager) Ping(ctx context.Context) error {
	return sm.db.DB().PingContext(ctx)
}

// StartScheduler launches the reminder loop in a goroutine
func (sm *ServiceManager) StartScheduler() {
	if sm.Scheduler != nil {
		go sm.Scheduler.Start()
	}
}

// StopScheduler stops the reminder loop gracefully
func (sm *ServiceManager) StopScheduler() {
	if sm.Scheduler != nil {
		sm.Scheduler.Stop()
	}
}

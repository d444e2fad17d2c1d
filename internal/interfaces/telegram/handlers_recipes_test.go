package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dietplanner/backend/internal/domain/models"
)

// A generated recipe is stashed as a dialog draft so the save button
// persists it the same way manual creation does.
func TestStashRecipeDraftRoundTrip(t *testing.T) {
	b := &Bot{fsm: NewFSM()}

	generated := &models.Recipe{
		Name:         "Овсянка с ягодами",
		Ingredients:  "Овсяные хлопья - 60 г\nЧерника - 100 г",
		Instructions: "Залить хлопья кипятком, добавить ягоды.",
		Calories:     320,
		Protein:      11,
		Fat:          6.5,
		Carbs:        54,
	}
	b.stashRecipeDraft(7, generated)

	draft := b.draftRecipe(7)
	assert.Equal(t, int64(7), draft.UserID)
	assert.Zero(t, draft.ID)
	assert.Equal(t, generated.Name, draft.Name)
	assert.Equal(t, generated.Ingredients, draft.Ingredients)
	assert.Equal(t, generated.Instructions, draft.Instructions)
	assert.Equal(t, generated.Calories, draft.Calories)
	assert.Equal(t, generated.Protein, draft.Protein)
	assert.Equal(t, generated.Fat, draft.Fat)
	assert.Equal(t, generated.Carbs, draft.Carbs)
}

// stashing a draft replaces whatever dialog data was collected before
func TestStashRecipeDraftClearsPreviousDialog(t *testing.T) {
	b := &Bot{fsm: NewFSM()}
	b.fsm.SetState(7, StateRecipeCarbs)
	b.fsm.SetData(7, "r_name", "Старый черновик")

	b.stashRecipeDraft(7, &models.Recipe{Name: "Новый рецепт"})

	assert.Equal(t, StateNone, b.fsm.State(7))
	assert.Equal(t, "Новый рецепт", b.fsm.Data(7, "r_name"))
}

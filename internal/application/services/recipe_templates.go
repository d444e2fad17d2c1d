package services

import (
	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/constants"
)

// baseRecipes are the built-in fallback recipes per goal, used when
// the AI generator is unavailable or fails
var baseRecipes = map[string][]models.Recipe{
	constants.GoalLose: {
		{
			Name:         "Салат с куриной грудкой",
			Ingredients:  "Куриная грудка - 150 г\nЛистья салата - 80 г\nОгурец - 1 шт\nПомидор - 1 шт\nОливковое масло - 1 ч.л.\nЛимонный сок - 1 ст.л.\nСоль, перец - по вкусу",
			Instructions: "1. Куриную грудку отварить и нарезать кубиками\n2. Овощи нарезать и смешать с курицей\n3. Заправить оливковым маслом и лимонным соком\n4. Посолить, поперчить по вкусу",
			Calories:     220,
			Protein:      30,
			Fat:          8,
			Carbs:        10,
		},
		{
			Name:         "Овощной омлет",
			Ingredients:  "Яйца - 3 шт\nМолоко 1% - 30 мл\nШпинат - 50 г\nПомидор - 1 шт\nСладкий перец - 1/2 шт\nСоль, перец - по вкусу",
			Instructions: "1. Яйца взбить с молоком, посолить и поперчить\n2. Овощи мелко нарезать\n3. Смешать овощи с яичной смесью\n4. Вылить на разогретую сковороду\n5. Готовить под крышкой на среднем огне 5-7 минут",
			Calories:     250,
			Protein:      20,
			Fat:          15,
			Carbs:        8,
		},
	},
	constants.GoalGain: {
		{
			Name:         "Протеиновый коктейль с бананом",
			Ingredients:  "Молоко 3.2% - 250 мл\nПротеин - 30 г (1 мерная ложка)\nБанан - 1 шт\nМед - 1 ст.л.\nОвсяные хлопья - 30 г",
			Instructions: "1. Добавить все ингредиенты в блендер\n2. Взбить до однородной массы\n3. Подавать охлажденным",
			Calories:     450,
			Protein:      35,
			Fat:          10,
			Carbs:        55,
		},
		{
			Name:         "Паста с куриным филе",
			Ingredients:  "Макароны - 100 г\nКуриное филе - 200 г\nСливки 20% - 100 мл\nСыр пармезан - 30 г\nЧеснок - 2 зубчика\nОливковое масло - 2 ст.л.\nСоль, перец, специи - по вкусу",
			Instructions: "1. Макароны отварить согласно инструкции\n2. Куриное филе нарезать, обжарить на оливковом масле\n3. Добавить измельченный чеснок и сливки\n4. Тушить 5-7 минут\n5. Добавить макароны, перемешать\n6. Посыпать тертым сыром",
			Calories:     650,
			Protein:      50,
			Fat:          25,
			Carbs:        60,
		},
	},
	constants.GoalMaintain: {
		{
			Name:         "Киноа с овощами",
			Ingredients:  "Киноа - 70 г\nБрокколи - 100 г\nМорковь - 1 шт\nСладкий перец - 1 шт\nОливковое масло - 1 ст.л.\nЛимонный сок - 1 ч.л.\nСоль, перец, зелень - по вкусу",
			Instructions: "1. Киноа промыть и отварить\n2. Овощи нарезать и обжарить на оливковом масле\n3. Смешать киноа с овощами\n4. Добавить лимонный сок, соль, перец и зелень",
			Calories:     350,
			Protein:      12,
			Fat:          10,
			Carbs:        55,
		},
		{
			Name:         "Творожная запеканка",
			Ingredients:  "Творог 5% - 250 г\nЯйца - 2 шт\nМед - 2 ст.л.\nВанилин - на кончике ножа\nЯблоко - 1 шт\nОвсяные хлопья - 30 г",
			Instructions: "1. Творог смешать с яйцами и медом\n2. Яблоко натереть на терке\n3. Добавить яблоко, овсяные хлопья и ванилин к творожной массе\n4. Выложить в форму и выпекать при 180°C 30-35 минут",
			Calories:     400,
			Protein:      30,
			Fat:          15,
			Carbs:        35,
		},
	},
}

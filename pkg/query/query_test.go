package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/store"
)

func newSeededClient(t *testing.T) *Client {
	t.Helper()
	return NewClient(store.New())
}

func recipeIDs(recipes []*entities.Recipe) []string {
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func harmonizationIDs(hs []*entities.Harmonization) []string {
	ids := make([]string, 0, len(hs))
	for _, h := range hs {
		ids = append(ids, h.ID)
	}
	return ids
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	big := func(n int) bool { return n > 2 }

	assert.Equal(t, []int{4, 6}, Filter([]int{1, 2, 3, 4, 5, 6}, even, big))
	assert.Equal(t, []int{1, 2}, Filter([]int{1, 2}))

	got := Filter([]int{1, 3}, even)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name   string
		q      string
		fields []string
		want   bool
	}{
		{name: "upper query", q: "LASANHA", fields: []string{"Lasanha Tradicional Italiana"}, want: true},
		{name: "lower query", q: "lasanha", fields: []string{"Lasanha Tradicional Italiana"}, want: true},
		{name: "second field", q: "bolonhesa", fields: []string{"Lasanha", "molho Bolonhesa"}, want: true},
		{name: "accented", q: "SALMÃO", fields: []string{"Sashimi de Salmão"}, want: true},
		{name: "no match", q: "cabernet", fields: []string{"Saquê", "Sashimi de Salmão"}, want: false},
		{name: "no fields", q: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsFold(tt.q, tt.fields...))
		})
	}
}

func TestRecipeFindMany_NoFilterReturnsAllInInsertionOrder(t *testing.T) {
	c := newSeededClient(t)

	got, err := c.Recipe.FindMany(context.Background(), domain.RecipeWhere{}, domain.RecipeInclude{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"recipe-1", "recipe-2", "recipe-3", "recipe-4",
		"recipe-5", "recipe-6", "recipe-7", "recipe-8",
	}, recipeIDs(got))
	for _, r := range got {
		assert.Nil(t, r.User)
		assert.Nil(t, r.Nationality)
		assert.Nil(t, r.Category)
	}
}

func TestRecipeFindMany_Filters(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		where domain.RecipeWhere
		want  []string
	}{
		{name: "nationality", where: domain.RecipeWhere{NationalityID: "it"}, want: []string{"recipe-1", "recipe-8"}},
		{name: "category", where: domain.RecipeWhere{CategoryID: "dinner"}, want: []string{"recipe-1", "recipe-2", "recipe-4"}},
		{name: "nationality and category", where: domain.RecipeWhere{NationalityID: "it", CategoryID: "soup"}, want: []string{"recipe-8"}},
		{name: "user", where: domain.RecipeWhere{UserID: "admin"}, want: []string{"recipe-7", "recipe-8"}},
		{name: "search title", where: domain.RecipeWhere{Search: "LASANHA"}, want: []string{"recipe-1"}},
		{name: "search description", where: domain.RecipeWhere{Search: "frios"}, want: []string{"recipe-8"}},
		{name: "search and category", where: domain.RecipeWhere{Search: "tomate", CategoryID: "fitness"}, want: []string{"recipe-6"}},
		{name: "nothing matches", where: domain.RecipeWhere{NationalityID: "ru"}, want: []string{}},
		{name: "search nothing matches", where: domain.RecipeWhere{Search: "pizza"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Recipe.FindMany(ctx, tt.where, domain.RecipeInclude{})
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, recipeIDs(got))

			again, err := c.Recipe.FindMany(ctx, tt.where, domain.RecipeInclude{})
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestRecipeFindMany_Hydration(t *testing.T) {
	c := newSeededClient(t)

	got, err := c.Recipe.FindMany(context.Background(), domain.RecipeWhere{NationalityID: "it"}, domain.RecipeInclude{Nationality: true})
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, r := range got {
		require.NotNil(t, r.Nationality)
		assert.Equal(t, "Italiana", r.Nationality.Name)
		assert.Nil(t, r.User)
		assert.Nil(t, r.Category)
	}
}

func TestRecipeFindUnique_DanglingReferencesHydrateToNil(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	recipe := &entities.Recipe{
		Title:         "Pierogi",
		Description:   "Pastéis poloneses",
		Ingredients:   []string{"Farinha"},
		Instructions:  []string{"Misture"},
		PrepTime:      60,
		Servings:      4,
		Difficulty:    domain.DifficultyMedium,
		UserID:        "ghost",
		NationalityID: "atlantis",
		CategoryID:    "dinner",
	}
	require.NoError(t, c.Recipe.Create(ctx, recipe))

	got, err := c.Recipe.FindUnique(ctx, recipe.ID, domain.AllRecipeRelations)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Nationality)
	assert.Nil(t, got.User)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Jantar", got.Category.Name)
}

func TestRecipeFindUnique_Missing(t *testing.T) {
	c := newSeededClient(t)

	got, err := c.Recipe.FindUnique(context.Background(), "recipe-999", domain.AllRecipeRelations)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecipeCreate_ReadYourWritesAndOrder(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	recipe := &entities.Recipe{
		Title:         "Pão de Queijo",
		Description:   "Clássico mineiro",
		Ingredients:   []string{"Polvilho", "Queijo", "Ovo"},
		Instructions:  []string{"Misture", "Modele", "Asse"},
		Utensils:      []string{},
		PrepTime:      40,
		Servings:      20,
		Difficulty:    domain.DifficultyEasy,
		UserID:        "user-1",
		NationalityID: "br",
		CategoryID:    "breakfast",
	}
	require.NoError(t, c.Recipe.Create(ctx, recipe))
	assert.Equal(t, "recipe-9", recipe.ID)
	assert.False(t, recipe.CreatedAt.IsZero())

	got, err := c.Recipe.FindUnique(ctx, recipe.ID, domain.RecipeInclude{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Polvilho", "Queijo", "Ovo"}, got.Ingredients)
	assert.Equal(t, []string{"Misture", "Modele", "Asse"}, got.Instructions)

	all, err := c.Recipe.FindMany(ctx, domain.RecipeWhere{}, domain.RecipeInclude{})
	require.NoError(t, err)
	ids := recipeIDs(all)
	require.Len(t, ids, 9)
	assert.Equal(t, "recipe-9", ids[8])

	count := 0
	for _, id := range ids {
		if id == recipe.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecipeFindMany_ResultsDoNotAliasStore(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	got, err := c.Recipe.FindUnique(ctx, "recipe-1", domain.RecipeInclude{})
	require.NoError(t, err)
	got.Ingredients[0] = "mutated"
	got.Title = "mutated"

	again, err := c.Recipe.FindUnique(ctx, "recipe-1", domain.RecipeInclude{})
	require.NoError(t, err)
	assert.Equal(t, "500g de massa de lasanha", again.Ingredients[0])
	assert.Equal(t, "Lasanha Tradicional Italiana", again.Title)
}

func TestHarmonizationFindMany(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		where domain.HarmonizationWhere
		want  []string
	}{
		{name: "all", where: domain.HarmonizationWhere{}, want: []string{"harm-1", "harm-2", "harm-3", "harm-4", "harm-5", "harm-6", "harm-7"}},
		{name: "user", where: domain.HarmonizationWhere{UserID: "user-2"}, want: []string{"harm-2", "harm-5"}},
		{name: "item1Name", where: domain.HarmonizationWhere{Search: "chardonnay"}, want: []string{"harm-2"}},
		{name: "item2Name", where: domain.HarmonizationWhere{Search: "TIRAMISU"}, want: []string{"harm-6"}},
		{name: "description", where: domain.HarmonizationWhere{Search: "taninos"}, want: []string{"harm-3"}},
		{name: "user and search", where: domain.HarmonizationWhere{UserID: "user-2", Search: "salmão"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Harmonization.FindMany(ctx, tt.where, domain.HarmonizationInclude{})
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, harmonizationIDs(got))
		})
	}
}

func TestHarmonizationCreateThenSearch(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	h := &entities.Harmonization{
		Title:       "Saquê gelado & Sashimi",
		Description: "Leve e fresco",
		Item1Name:   "Saquê",
		Item2Name:   "Sashimi de Salmão",
		ImageURL:    "https://example.com/sashimi.png",
		Item1Color:  "text-blue-600",
		UserID:      "user-2",
	}
	require.NoError(t, c.Harmonization.Create(ctx, h))
	assert.Equal(t, "harm-8", h.ID)

	found, err := c.Harmonization.FindMany(ctx, domain.HarmonizationWhere{Search: "sashimi"}, domain.HarmonizationInclude{User: true})
	require.NoError(t, err)
	assert.Contains(t, harmonizationIDs(found), h.ID)
	for _, got := range found {
		require.NotNil(t, got.User)
	}

	none, err := c.Harmonization.FindMany(ctx, domain.HarmonizationWhere{Search: "cabernet"}, domain.HarmonizationInclude{})
	require.NoError(t, err)
	assert.NotContains(t, harmonizationIDs(none), h.ID)
}

func TestHarmonizationFindUnique(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	got, err := c.Harmonization.FindUnique(ctx, "harm-6", domain.HarmonizationInclude{User: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.User)
	assert.Equal(t, "admin@gcsfood.com", got.User.Email)

	missing, err := c.Harmonization.FindUnique(ctx, "harm-0", domain.HarmonizationInclude{User: true})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogDelegates(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	nationalities, err := c.Nationality.FindMany(ctx)
	require.NoError(t, err)
	assert.Len(t, nationalities, 10)

	require.NoError(t, c.Nationality.Create(ctx, &entities.Nationality{ID: "pt", Name: "Portuguesa", FlagEmoji: "🇵🇹"}))
	err = c.Nationality.Create(ctx, &entities.Nationality{ID: "pt", Name: "Outra"})
	assert.ErrorIs(t, err, domain.ErrNationalityExists)

	pt, err := c.Nationality.FindUnique(ctx, "pt")
	require.NoError(t, err)
	require.NotNil(t, pt)
	assert.Equal(t, "Portuguesa", pt.Name)

	categories, err := c.Category.FindMany(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 9)
	assert.Equal(t, "fitness", categories[0].ID)

	err = c.Category.Create(ctx, &entities.Category{ID: "soup", Name: "Sopas"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestUserDelegate(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	u, err := c.User.FindByEmail(ctx, "MARIA@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "user-2", u.ID)

	created := &entities.User{Email: "ana@example.com", FirstName: "Ana", LastName: "Costa"}
	require.NoError(t, c.User.Create(ctx, created))
	assert.Equal(t, "user-4", created.ID)

	err = c.User.Create(ctx, &entities.User{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailRegistered)
}

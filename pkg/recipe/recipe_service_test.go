package recipe

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/store"
	"gcs-food-backend/internal/utils/storage"
	"gcs-food-backend/pkg/query"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) FindMany(ctx context.Context, where domain.RecipeWhere, include domain.RecipeInclude) ([]*entities.Recipe, error) {
	args := m.Called(ctx, where, include)
	recipes, _ := args.Get(0).([]*entities.Recipe)
	return recipes, args.Error(1)
}

func (m *mockRecipeRepository) FindUnique(ctx context.Context, id string, include domain.RecipeInclude) (*entities.Recipe, error) {
	args := m.Called(ctx, id, include)
	recipe, _ := args.Get(0).(*entities.Recipe)
	return recipe, args.Error(1)
}

func (m *mockRecipeRepository) Create(ctx context.Context, recipe *entities.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

type stubReferences struct {
	users, nationalities, categories map[string]bool
}

func (s stubReferences) UserExists(_ context.Context, id string) (bool, error) {
	return s.users[id], nil
}

func (s stubReferences) NationalityExists(_ context.Context, id string) (bool, error) {
	return s.nationalities[id], nil
}

func (s stubReferences) CategoryExists(_ context.Context, id string) (bool, error) {
	return s.categories[id], nil
}

type stubImages struct {
	folder string
	img    *storage.Image
}

func (s *stubImages) UploadImage(_ context.Context, img *storage.Image, folder string) (string, error) {
	s.img, s.folder = img, folder
	return "https://cdn.example.com/" + folder + "/img.png", nil
}

func validRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:         "Feijoada",
		Description:   "Prato brasileiro",
		Ingredients:   []string{"feijão preto", "linguiça"},
		Instructions:  []string{"cozinhe o feijão"},
		PrepTime:      240,
		Servings:      10,
		Difficulty:    domain.DifficultyHard,
		UserID:        "user-1",
		NationalityID: "br",
		CategoryID:    "dinner",
	}
}

func TestRecipeService_ListRecipesHydrates(t *testing.T) {
	svc := NewRecipeService(query.NewClient(store.New()).Recipe, nil, nil)

	recipes, err := svc.ListRecipes(context.Background(), domain.RecipeFilter{NationalityID: " jp "})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Sushi Variado", recipes[0].Title)
	require.NotNil(t, recipes[0].User)
	require.NotNil(t, recipes[0].Nationality)
	require.NotNil(t, recipes[0].Category)
	assert.Equal(t, "Japonesa", recipes[0].Nationality.Name)
}

func TestRecipeService_ListRecipesNeverNil(t *testing.T) {
	repo := new(mockRecipeRepository)
	repo.On("FindMany", mock.Anything, domain.RecipeWhere{}, domain.AllRecipeRelations).Return(nil, nil)

	recipes, err := NewRecipeService(repo, nil, nil).ListRecipes(context.Background(), domain.RecipeFilter{})
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	repo.AssertExpectations(t)
}

func TestRecipeService_GetRecipe(t *testing.T) {
	svc := NewRecipeService(query.NewClient(store.New()).Recipe, nil, nil)

	recipe, err := svc.GetRecipe(context.Background(), "recipe-2")
	require.NoError(t, err)
	assert.Equal(t, "Feijoada Completa", recipe.Title)

	_, err = svc.GetRecipe(context.Background(), "recipe-999")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_GetRecipeRepositoryError(t *testing.T) {
	repo := new(mockRecipeRepository)
	boom := errors.New("connection reset")
	repo.On("FindUnique", mock.Anything, "recipe-1", domain.AllRecipeRelations).Return(nil, boom)

	_, err := NewRecipeService(repo, nil, nil).GetRecipe(context.Background(), "recipe-1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	client := query.NewClient(store.New())
	svc := NewRecipeService(client.Recipe, nil, nil)

	created, err := svc.CreateRecipe(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "recipe-9", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NotNil(t, created.Utensils)

	found, err := svc.GetRecipe(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Feijoada", found.Title)
	assert.Equal(t, []string{"feijão preto", "linguiça"}, found.Ingredients)
}

func TestRecipeService_CreateRecipeDanglingReferencesAllowedByDefault(t *testing.T) {
	svc := NewRecipeService(query.NewClient(store.New()).Recipe, nil, nil)

	req := validRequest()
	req.NationalityID = "atlantida"
	created, err := svc.CreateRecipe(context.Background(), req)
	require.NoError(t, err)

	found, err := svc.GetRecipe(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Nationality)
	assert.NotNil(t, found.Category)
}

func TestRecipeService_CreateRecipeStrictReferences(t *testing.T) {
	refs := stubReferences{
		users:         map[string]bool{"user-1": true},
		nationalities: map[string]bool{"br": true},
		categories:    map[string]bool{"dinner": true},
	}
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, refs, nil)

	tests := []struct {
		name   string
		modify func(*domain.CreateRecipeRequest)
		want   error
	}{
		{"unknown user", func(r *domain.CreateRecipeRequest) { r.UserID = "user-404" }, domain.ErrUnknownUser},
		{"unknown nationality", func(r *domain.CreateRecipeRequest) { r.NationalityID = "atlantida" }, domain.ErrUnknownNationality},
		{"unknown category", func(r *domain.CreateRecipeRequest) { r.CategoryID = "ceia" }, domain.ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			_, err := svc.CreateRecipe(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecipeService_CreateRecipeUploadsDataURL(t *testing.T) {
	images := &stubImages{}
	svc := NewRecipeService(query.NewClient(store.New()).Recipe, nil, images)

	req := validRequest()
	req.ImageURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png"))
	created, err := svc.CreateRecipe(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "recipes", images.folder)
	assert.Equal(t, []byte("png"), images.img.Data)
	assert.Equal(t, "https://cdn.example.com/recipes/img.png", created.ImageURL)
}

func TestRecipeService_CreateRecipeRejectsBadDataURL(t *testing.T) {
	svc := NewRecipeService(new(mockRecipeRepository), nil, &stubImages{})

	req := validRequest()
	req.ImageURL = "data:text/html;base64,PGgxPg=="
	_, err := svc.CreateRecipe(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestRecipeService_CreateRecipeKeepsExternalURL(t *testing.T) {
	images := &stubImages{}
	svc := NewRecipeService(query.NewClient(store.New()).Recipe, nil, images)

	req := validRequest()
	req.ImageURL = "https://images.example.com/feijoada.jpg"
	created, err := svc.CreateRecipe(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.ImageURL, created.ImageURL)
	assert.Nil(t, images.img)
}
